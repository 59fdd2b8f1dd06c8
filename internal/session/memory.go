package session

import (
	"context" // Context for store operations
	"sync"    // Mutex guarding the map
	"time"    // Expiry checks

	"github.com/segmentio/ksuid" // Opaque token generation
)

// MemoryStore is an in-process session store for local development (no Redis)
// and for tests. Sessions do not survive a restart.
type MemoryStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]memoryEntry
}

type memoryEntry struct {
	data      Data
	expiresAt time.Time
}

// NewMemoryStore returns an empty in-memory session store
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{ttl: ttl, entries: make(map[string]memoryEntry)}
}

// Create binds a fresh token to the identity
func (s *MemoryStore) Create(ctx context.Context, data Data) (string, error) {
	token := ksuid.New().String()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[token] = memoryEntry{data: data, expiresAt: time.Now().Add(s.ttl)}
	return token, nil
}

// Get resolves a token; unknown or expired tokens yield (nil, nil)
func (s *MemoryStore) Get(ctx context.Context, token string) (*Data, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.entries[token]
	if !ok {
		return nil, nil // Unknown token
	}
	if time.Now().After(entry.expiresAt) {
		delete(s.entries, token) // Drop the stale entry on access
		return nil, nil
	}
	data := entry.data
	return &data, nil
}
