package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/wotr-save-editor/internal/core/domain"
	"github.com/custodia-labs/wotr-save-editor/internal/core/ports/driven"
	"github.com/custodia-labs/wotr-save-editor/internal/core/ports/driving"
)

// Ensure HistoryService implements the interface.
var _ driving.HistoryService = (*HistoryService)(nil)

// HistoryService reads the record of completed saves.
type HistoryService struct {
	store driven.HistoryStore
}

// NewHistoryService creates a history service over store.
func NewHistoryService(store driven.HistoryStore) *HistoryService {
	return &HistoryService{store: store}
}

// List returns up to limit records, newest first. A non-positive limit
// returns every record.
func (s *HistoryService) List(ctx context.Context, limit int) ([]domain.SaveRecord, error) {
	records, err := s.store.List(ctx, max(limit, 0))
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	return records, nil
}

// Get returns one record.
func (s *HistoryService) Get(ctx context.Context, id string) (*domain.SaveRecord, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: record id is required", domain.ErrInvalidInput)
	}
	return s.store.Get(ctx, id)
}
