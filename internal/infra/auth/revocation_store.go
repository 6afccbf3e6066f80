package auth

import (
	"sync"
	"time"
)

const defaultJanitorInterval = time.Minute

// RevocationStore tracks tokens that were invalidated before their natural
// expiry. Entries only need to live as long as the token itself would.
type RevocationStore interface {
	Revoke(token string, ttl time.Duration)
	IsRevoked(token string) bool
	Close()
}

// memoryRevocationStore is an in-memory RevocationStore. A janitor goroutine
// prunes expired entries so the set stays bounded by the number of live
// revoked tokens.
type memoryRevocationStore struct {
	mu      sync.RWMutex
	entries map[string]time.Time
	done    chan struct{}
	once    sync.Once
}

// NewMemoryRevocationStore creates a RevocationStore backed by a map and
// starts its janitor goroutine.
func NewMemoryRevocationStore(janitorInterval time.Duration) RevocationStore {
	if janitorInterval <= 0 {
		janitorInterval = defaultJanitorInterval
	}

	store := &memoryRevocationStore{
		entries: make(map[string]time.Time),
		done:    make(chan struct{}),
	}

	go store.janitor(janitorInterval)

	return store
}

// Revoke marks a token as revoked for the given remaining lifetime.
// Tokens that are already past their expiry need no entry at all.
func (s *memoryRevocationStore) Revoke(token string, ttl time.Duration) {
	if ttl <= 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[token] = time.Now().Add(ttl)
}

// IsRevoked reports whether the token is currently revoked.
func (s *memoryRevocationStore) IsRevoked(token string) bool {
	s.mu.RLock()
	expiresAt, ok := s.entries[token]
	s.mu.RUnlock()

	if !ok {
		return false
	}

	// An expired entry means the token itself already expired; the regular
	// expiry check covers it from here on.
	return time.Now().Before(expiresAt)
}

// Close stops the janitor goroutine.
func (s *memoryRevocationStore) Close() {
	s.once.Do(func() {
		close(s.done)
	})
}

func (s *memoryRevocationStore) janitor(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			s.prune(time.Now())
		}
	}
}

func (s *memoryRevocationStore) prune(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for token, expiresAt := range s.entries {
		if !now.Before(expiresAt) {
			delete(s.entries, token)
		}
	}
}
