package driven

import (
	"context"

	"github.com/custodia-labs/wotr-save-editor/internal/core/domain"
)

// HistoryStore persists records of completed saves.
type HistoryStore interface {
	// Record stores one save record.
	Record(ctx context.Context, record domain.SaveRecord) error

	// Get returns a record by ID, or domain.ErrNotFound.
	Get(ctx context.Context, id string) (*domain.SaveRecord, error)

	// List returns up to limit records, newest first. limit <= 0 means all.
	List(ctx context.Context, limit int) ([]domain.SaveRecord, error)
}
