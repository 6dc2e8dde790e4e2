package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/durangezer/portfolio-api/internal/auth"
	"github.com/durangezer/portfolio-api/internal/guard"
	"github.com/durangezer/portfolio-api/internal/models"
	pkgauth "github.com/durangezer/portfolio-api/pkg/auth"
	"golang.org/x/crypto/bcrypt"
)

// AdminService orchestrates the admin login path: attempt guard, password
// verification, token issuance. The single admin credential comes from
// configuration; there is no user table.
type AdminService struct {
	passwordHash string
	tm           *auth.TokenManager
	totp         *auth.TOTPVerifier
	guard        *guard.LoginAttemptGuard
	logger       *slog.Logger
}

// NewAdminService creates a new AdminService
func NewAdminService(passwordHash string, tm *auth.TokenManager, totp *auth.TOTPVerifier, g *guard.LoginAttemptGuard, logger *slog.Logger) *AdminService {
	return &AdminService{
		passwordHash: passwordHash,
		tm:           tm,
		totp:         totp,
		guard:        g,
		logger:       logger,
	}
}

// Login verifies the admin password for the given throttling identity and
// returns a bearer token. A locked-out identity is rejected before the
// password is looked at and without touching the failure counter. Wrong
// passwords and internal verification faults produce the same error so the
// caller cannot tell them apart; the distinction lives in the logs.
func (s *AdminService) Login(ctx context.Context, identity, password, totpCode string) (string, error) {
	if !s.guard.MayAttempt(ctx, identity) {
		s.logger.Warn("login rejected: identity locked out", slog.String("identity", identity))
		return "", models.ErrRateLimited
	}

	if err := pkgauth.ComparePassword(s.passwordHash, password); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			s.logger.Info("login failed: invalid credentials", slog.String("identity", identity))
		} else {
			// Malformed stored hash or similar fault. Caller still sees
			// the generic failure.
			s.logger.Error("password verification fault", slog.Any("error", err))
		}
		s.guard.RecordFailure(ctx, identity)
		return "", models.ErrInvalidCredentials
	}

	if s.totp.Enabled() && !s.totp.Verify(totpCode) {
		s.logger.Info("login failed: invalid one-time code", slog.String("identity", identity))
		s.guard.RecordFailure(ctx, identity)
		return "", models.ErrInvalidCredentials
	}

	s.guard.RecordSuccess(ctx, identity)

	token, err := s.tm.Issue(identity)
	if err != nil {
		s.logger.Error("failed to issue admin token", slog.Any("error", err))
		return "", models.ErrInternalServer
	}

	s.logger.Info("admin logged in", slog.String("identity", identity))
	return token, nil
}
