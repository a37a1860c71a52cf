package driving

import (
	"context"

	"github.com/custodia-labs/wotr-save-editor/internal/core/domain"
)

// HistoryService exposes the record of completed saves.
type HistoryService interface {
	// List returns up to limit records, newest first.
	List(ctx context.Context, limit int) ([]domain.SaveRecord, error)

	// Get returns one record.
	Get(ctx context.Context, id string) (*domain.SaveRecord, error)
}
