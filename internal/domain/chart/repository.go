package chart

import "context"

// HistoryRepository persists computed charts so recent queries can be
// listed. Implementations must be safe for concurrent use.
type HistoryRepository interface {
	Insert(ctx context.Context, rec Record) error
	Recent(ctx context.Context, limit int) ([]Record, error)
}
