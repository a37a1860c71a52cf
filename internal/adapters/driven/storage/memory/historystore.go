package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/custodia-labs/wotr-save-editor/internal/core/domain"
	"github.com/custodia-labs/wotr-save-editor/internal/core/ports/driven"
)

// Ensure HistoryStore implements the interface.
var _ driven.HistoryStore = (*HistoryStore)(nil)

// HistoryStore is an in-memory implementation of driven.HistoryStore, used
// when history is disabled and in tests.
type HistoryStore struct {
	mu      sync.RWMutex
	records []domain.SaveRecord
}

// NewHistoryStore creates a new in-memory history store.
func NewHistoryStore() *HistoryStore {
	return &HistoryStore{}
}

// Record stores one save record.
func (s *HistoryStore) Record(_ context.Context, record domain.SaveRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, record)
	return nil
}

// Get retrieves a record by ID.
func (s *HistoryStore) Get(_ context.Context, id string) (*domain.SaveRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.records {
		if r.ID == id {
			return &r, nil
		}
	}
	return nil, domain.ErrNotFound
}

// List returns up to limit records, newest first.
func (s *HistoryStore) List(_ context.Context, limit int) ([]domain.SaveRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := slices.Clone(s.records)
	slices.SortStableFunc(result, func(a, b domain.SaveRecord) int {
		return b.SavedAt.Compare(a.SavedAt)
	})
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}
