package guard

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is a process-local AttemptStore. Lockout state is lost on
// restart and not shared across instances.
type MemoryStore struct {
	mu       sync.Mutex
	attempts map[string]memoryEntry
}

type memoryEntry struct {
	attempt   Attempt
	expiresAt time.Time
}

// NewMemoryStore creates an empty in-process attempt store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		attempts: make(map[string]memoryEntry),
	}
}

func (s *MemoryStore) Get(_ context.Context, identity string) (*Attempt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.attempts[identity]
	if !ok {
		return nil, nil
	}
	if time.Now().After(entry.expiresAt) {
		delete(s.attempts, identity)
		return nil, nil
	}

	attempt := entry.attempt
	return &attempt, nil
}

func (s *MemoryStore) Put(_ context.Context, identity string, attempt Attempt, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.attempts[identity] = memoryEntry{
		attempt:   attempt,
		expiresAt: time.Now().Add(ttl),
	}
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, identity string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.attempts, identity)
	return nil
}
