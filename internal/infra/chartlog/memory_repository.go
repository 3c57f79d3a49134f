// Package chartlog stores computed charts so recent queries can be
// listed back.
package chartlog

import (
	"context"
	"sync"

	"github.com/astrarium/natalchart/internal/domain/chart"
)

const memoryCapacity = 256

// MemoryRepository is an in-memory chart history used for tests/dev.
// It keeps the newest entries up to a fixed capacity.
type MemoryRepository struct {
	mu      sync.RWMutex
	records []chart.Record
}

// NewMemoryRepository constructs the repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

// Insert prepends a record, evicting the oldest past capacity.
func (r *MemoryRepository) Insert(_ context.Context, rec chart.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append([]chart.Record{rec}, r.records...)
	if len(r.records) > memoryCapacity {
		r.records = r.records[:memoryCapacity]
	}
	return nil
}

// Recent returns up to limit records, newest first.
func (r *MemoryRepository) Recent(_ context.Context, limit int) ([]chart.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if limit <= 0 || limit > len(r.records) {
		limit = len(r.records)
	}
	out := make([]chart.Record, limit)
	copy(out, r.records[:limit])
	return out, nil
}

var _ chart.HistoryRepository = (*MemoryRepository)(nil)
