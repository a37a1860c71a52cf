package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/custodia-labs/wotr-save-editor/internal/core/domain"
	"github.com/custodia-labs/wotr-save-editor/internal/core/ports/driven"
)

// timeLayout is fixed-width so saved_at sorts chronologically as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// historyStore implements driven.HistoryStore.
type historyStore struct {
	store *Store
}

var _ driven.HistoryStore = (*historyStore)(nil)

// Record stores one save record.
func (s *historyStore) Record(ctx context.Context, record domain.SaveRecord) error {
	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO save_history (id, source_path, output_path, save_name, player_patches, party_patches, saved_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, record.ID, record.SourcePath, record.OutputPath, record.SaveName,
		record.PlayerPatches, record.PartyPatches, record.SavedAt.UTC().Format(timeLayout))
	if err != nil {
		return fmt.Errorf("recording save: %w", err)
	}
	return nil
}

// Get retrieves a record by ID.
func (s *historyStore) Get(ctx context.Context, id string) (*domain.SaveRecord, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, source_path, output_path, save_name, player_patches, party_patches, saved_at
		FROM save_history WHERE id = ?
	`, id)

	record, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting save record: %w", err)
	}
	return record, nil
}

// List returns up to limit records, newest first.
func (s *historyStore) List(ctx context.Context, limit int) ([]domain.SaveRecord, error) {
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}

	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, source_path, output_path, save_name, player_patches, party_patches, saved_at
		FROM save_history
		ORDER BY saved_at DESC, rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing save history: %w", err)
	}
	defer rows.Close()

	var records []domain.SaveRecord
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning save record: %w", err)
		}
		records = append(records, *record)
	}
	return records, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (*domain.SaveRecord, error) {
	var r domain.SaveRecord
	var savedAt string
	if err := row.Scan(&r.ID, &r.SourcePath, &r.OutputPath, &r.SaveName,
		&r.PlayerPatches, &r.PartyPatches, &savedAt); err != nil {
		return nil, err
	}

	t, err := time.Parse(timeLayout, savedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing saved_at %q: %w", savedAt, err)
	}
	r.SavedAt = t
	return &r, nil
}
