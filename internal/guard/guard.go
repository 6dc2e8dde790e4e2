// Package guard throttles admin login attempts per client identity.
// An identity moves through Clear -> Warned(n) -> Locked as failures
// accumulate; the lock expires lazily on the next access.
package guard

import (
	"context"
	"log/slog"
	"time"
)

// Fixed policy: callers needing a different threshold or window wrap the guard.
const (
	FailureThreshold = 3
	LockoutWindow    = 15 * time.Minute
)

// Attempt is the per-identity failure record
type Attempt struct {
	Count       int       `json:"count"`
	LastFailure time.Time `json:"last_failure"`
}

// AttemptStore is the backing table for attempt records. Implementations
// must return (nil, nil) for absent identities. The in-memory store covers
// single-process deployments; the Redis store shares lockout state across
// instances.
type AttemptStore interface {
	Get(ctx context.Context, identity string) (*Attempt, error)
	Put(ctx context.Context, identity string, attempt Attempt, ttl time.Duration) error
	Delete(ctx context.Context, identity string) error
}

// LoginAttemptGuard gates whether a login attempt is evaluated at all
type LoginAttemptGuard struct {
	store  AttemptStore
	logger *slog.Logger
	now    func() time.Time
}

// NewLoginAttemptGuard creates a guard over the given store
func NewLoginAttemptGuard(store AttemptStore, logger *slog.Logger) *LoginAttemptGuard {
	return &LoginAttemptGuard{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// MayAttempt reports whether a login attempt for the identity should be
// evaluated. A lockout that has run out its window is cleared here; there
// is no background sweep. Store errors fail open so an unreachable shared
// store cannot lock out a legitimate admin.
func (g *LoginAttemptGuard) MayAttempt(ctx context.Context, identity string) bool {
	attempt, err := g.store.Get(ctx, identity)
	if err != nil {
		g.logger.Error("attempt store read failed", slog.Any("error", err))
		return true
	}
	if attempt == nil {
		return true
	}

	if attempt.Count >= FailureThreshold {
		lockoutUntil := attempt.LastFailure.Add(LockoutWindow)
		if g.now().Before(lockoutUntil) {
			return false
		}
		// Lockout window elapsed: reset to Clear
		if err := g.store.Delete(ctx, identity); err != nil {
			g.logger.Error("attempt store delete failed", slog.Any("error", err))
		}
	}

	return true
}

// RecordFailure increments the failure count and stamps the failure time
func (g *LoginAttemptGuard) RecordFailure(ctx context.Context, identity string) {
	attempt, err := g.store.Get(ctx, identity)
	if err != nil {
		g.logger.Error("attempt store read failed", slog.Any("error", err))
		return
	}
	if attempt == nil {
		attempt = &Attempt{}
	}

	attempt.Count++
	attempt.LastFailure = g.now()

	// Keep records past the window so the lazy expiry in MayAttempt is the
	// one deciding when a lock clears.
	if err := g.store.Put(ctx, identity, *attempt, 2*LockoutWindow); err != nil {
		g.logger.Error("attempt store write failed", slog.Any("error", err))
		return
	}

	if attempt.Count >= FailureThreshold {
		g.logger.Warn("identity locked out",
			slog.String("identity", identity),
			slog.Int("failures", attempt.Count))
	}
}

// RecordSuccess clears all failure state for the identity
func (g *LoginAttemptGuard) RecordSuccess(ctx context.Context, identity string) {
	if err := g.store.Delete(ctx, identity); err != nil {
		g.logger.Error("attempt store delete failed", slog.Any("error", err))
	}
}
