package guard

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGuard() (*LoginAttemptGuard, *time.Time) {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	g := NewLoginAttemptGuard(NewMemoryStore(), logger)

	now := time.Now()
	g.now = func() time.Time { return now }
	return g, &now
}

func TestGuard_CleanIdentityMayAttempt(t *testing.T) {
	g, _ := newTestGuard()
	assert.True(t, g.MayAttempt(context.Background(), "203.0.113.7"))
}

func TestGuard_LockedAfterThreeFailures(t *testing.T) {
	g, _ := newTestGuard()
	ctx := context.Background()

	g.RecordFailure(ctx, "203.0.113.7")
	g.RecordFailure(ctx, "203.0.113.7")
	assert.True(t, g.MayAttempt(ctx, "203.0.113.7"), "two failures must not lock")

	g.RecordFailure(ctx, "203.0.113.7")
	assert.False(t, g.MayAttempt(ctx, "203.0.113.7"), "third failure must lock")
}

func TestGuard_LockoutExpiresAfterWindow(t *testing.T) {
	g, now := newTestGuard()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		g.RecordFailure(ctx, "203.0.113.7")
	}
	assert.False(t, g.MayAttempt(ctx, "203.0.113.7"))

	// Just inside the window: still locked
	*now = now.Add(LockoutWindow - time.Second)
	assert.False(t, g.MayAttempt(ctx, "203.0.113.7"))

	// Window elapsed: lazily cleared
	*now = now.Add(2 * time.Second)
	assert.True(t, g.MayAttempt(ctx, "203.0.113.7"))

	// The record was deleted, not just ignored
	attempt, err := g.store.Get(ctx, "203.0.113.7")
	require.NoError(t, err)
	assert.Nil(t, attempt)
}

func TestGuard_WindowCountsFromLastFailure(t *testing.T) {
	g, now := newTestGuard()
	ctx := context.Background()

	g.RecordFailure(ctx, "203.0.113.7")
	g.RecordFailure(ctx, "203.0.113.7")

	*now = now.Add(10 * time.Minute)
	g.RecordFailure(ctx, "203.0.113.7")
	assert.False(t, g.MayAttempt(ctx, "203.0.113.7"))

	// 15 minutes after the first failures but not the last: still locked
	*now = now.Add(6 * time.Minute)
	assert.False(t, g.MayAttempt(ctx, "203.0.113.7"))

	// 15 minutes after the last failure: clear
	*now = now.Add(10 * time.Minute)
	assert.True(t, g.MayAttempt(ctx, "203.0.113.7"))
}

func TestGuard_RecordSuccessClearsState(t *testing.T) {
	g, _ := newTestGuard()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		g.RecordFailure(ctx, "203.0.113.7")
	}
	assert.False(t, g.MayAttempt(ctx, "203.0.113.7"))

	g.RecordSuccess(ctx, "203.0.113.7")
	assert.True(t, g.MayAttempt(ctx, "203.0.113.7"))

	attempt, err := g.store.Get(ctx, "203.0.113.7")
	require.NoError(t, err)
	assert.Nil(t, attempt)
}

func TestGuard_IdentitiesAreIndependent(t *testing.T) {
	g, _ := newTestGuard()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		g.RecordFailure(ctx, "203.0.113.7")
	}

	assert.False(t, g.MayAttempt(ctx, "203.0.113.7"))
	assert.True(t, g.MayAttempt(ctx, "198.51.100.2"))
}

func TestMemoryStore_TTLExpiry(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	err := store.Put(ctx, "id", Attempt{Count: 1, LastFailure: time.Now()}, -time.Second)
	require.NoError(t, err)

	attempt, err := store.Get(ctx, "id")
	require.NoError(t, err)
	assert.Nil(t, attempt, "expired entries must read as absent")
}
