package geocode

import (
	"context"
	"sync"
	"time"

	"github.com/astrarium/natalchart/internal/domain/chart"
)

type memoryEntry struct {
	coords    chart.Coordinates
	expiresAt time.Time
}

// MemoryStore is an in-memory geocode cache for tests/dev.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

// NewMemoryStore constructs a store backed by process memory.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]memoryEntry)}
}

// Get implements Store.
func (s *MemoryStore) Get(_ context.Context, key string) (chart.Coordinates, bool, error) {
	s.mu.RLock()
	entry, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return chart.Coordinates{}, false, nil
	}
	if hasExpired(entry.expiresAt) {
		s.mu.Lock()
		delete(s.entries, key)
		s.mu.Unlock()
		return chart.Coordinates{}, false, nil
	}
	return entry.coords, true, nil
}

// Save caches coordinates with optional TTL.
func (s *MemoryStore) Save(_ context.Context, key string, coords chart.Coordinates, ttl time.Duration) error {
	exp := time.Time{}
	if ttl > 0 {
		exp = time.Now().Add(ttl)
	}
	s.mu.Lock()
	s.entries[key] = memoryEntry{coords: coords, expiresAt: exp}
	s.mu.Unlock()
	return nil
}

func hasExpired(ts time.Time) bool {
	if ts.IsZero() {
		return false
	}
	return ts.Before(time.Now())
}

var _ Store = (*MemoryStore)(nil)
