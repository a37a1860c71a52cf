package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/wotr-save-editor/internal/core/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestNewStore(t *testing.T) {
	dir := t.TempDir()

	store, err := NewStore(dir)
	require.NoError(t, err)
	defer store.Close()

	assert.Equal(t, filepath.Join(dir, "history.db"), store.Path())
}

func TestNewStore_ReopenKeepsSchema(t *testing.T) {
	dir := t.TempDir()

	first, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, first.HistoryStore().Record(context.Background(), domain.SaveRecord{
		ID: "r1", SourcePath: "a.zks", OutputPath: "a - Copy.zks", SaveName: "A - Edited", SavedAt: time.Now(),
	}))
	require.NoError(t, first.Close())

	second, err := NewStore(dir)
	require.NoError(t, err)
	defer second.Close()

	var versions int
	require.NoError(t, second.db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&versions))
	assert.Equal(t, 1, versions)

	got, err := second.HistoryStore().Get(context.Background(), "r1")
	require.NoError(t, err)
	assert.Equal(t, "A - Edited", got.SaveName)
}

func TestStore_SchemaVersion(t *testing.T) {
	version, err := newTestStore(t).SchemaVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, version)
}

func TestLoadMigrations(t *testing.T) {
	fsys := fstest.MapFS{
		"002_more.up.sql":      {Data: []byte("CREATE TABLE b (id TEXT);")},
		"001_initial.up.sql":   {Data: []byte("CREATE TABLE a (id TEXT);")},
		"001_initial.down.sql": {Data: []byte("DROP TABLE a;")},
		"embed.go":             {Data: []byte("package migrations")},
	}

	list, err := loadMigrations(fsys)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, 1, list[0].version)
	assert.Equal(t, "002_more.up.sql", list[1].name)
}

func TestLoadMigrations_Invalid(t *testing.T) {
	tests := []struct {
		name string
		fsys fstest.MapFS
	}{
		{"missing version", fstest.MapFS{"initial.up.sql": {Data: []byte("SELECT 1;")}}},
		{"duplicate version", fstest.MapFS{
			"001_a.up.sql": {Data: []byte("SELECT 1;")},
			"001_b.up.sql": {Data: []byte("SELECT 1;")},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadMigrations(tt.fsys)
			assert.Error(t, err)
		})
	}
}

func TestOpen_AppliesOnlyNewMigrations(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), dbFileName)
	ctx := context.Background()

	first, err := open(dbPath, fstest.MapFS{
		"001_a.up.sql": {Data: []byte("CREATE TABLE a (id TEXT);")},
	})
	require.NoError(t, err)
	require.NoError(t, first.Close())

	// 001 would fail if it ran twice.
	second, err := open(dbPath, fstest.MapFS{
		"001_a.up.sql": {Data: []byte("CREATE TABLE a (id TEXT);")},
		"002_b.up.sql": {Data: []byte("CREATE TABLE b (id TEXT);")},
	})
	require.NoError(t, err)
	defer second.Close()

	version, err := second.SchemaVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, version)
}

func TestHistoryStore_RecordAndGet(t *testing.T) {
	history := newTestStore(t).HistoryStore()
	ctx := context.Background()

	saved := time.Date(2026, 5, 4, 10, 11, 12, 345, time.UTC)
	record := domain.SaveRecord{
		ID:            "0b6f0c9e-1d1e-4d4c-9a34-000000000001",
		SourcePath:    "/saves/Drezen.zks",
		OutputPath:    "/saves/Drezen - Copy.zks",
		SaveName:      "Drezen - Edited",
		PlayerPatches: 2,
		PartyPatches:  5,
		SavedAt:       saved,
	}
	require.NoError(t, history.Record(ctx, record))

	got, err := history.Get(ctx, record.ID)
	require.NoError(t, err)
	assert.Equal(t, record.OutputPath, got.OutputPath)
	assert.Equal(t, 2, got.PlayerPatches)
	assert.Equal(t, 5, got.PartyPatches)
	assert.True(t, saved.Equal(got.SavedAt))
}

func TestHistoryStore_Get_NotFound(t *testing.T) {
	_, err := newTestStore(t).HistoryStore().Get(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestHistoryStore_Record_DuplicateID(t *testing.T) {
	history := newTestStore(t).HistoryStore()
	ctx := context.Background()
	record := domain.SaveRecord{ID: "dup", SavedAt: time.Now()}

	require.NoError(t, history.Record(ctx, record))
	assert.Error(t, history.Record(ctx, record))
}

func TestHistoryStore_List(t *testing.T) {
	history := newTestStore(t).HistoryStore()
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	// Sub-second offsets check that text ordering stays chronological.
	offsets := map[string]time.Duration{
		"first":  0,
		"second": 500 * time.Millisecond,
		"third":  time.Second,
	}
	for _, id := range []string{"second", "third", "first"} {
		require.NoError(t, history.Record(ctx, domain.SaveRecord{ID: id, SavedAt: base.Add(offsets[id])}))
	}

	all, err := history.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"third", "second", "first"}, []string{all[0].ID, all[1].ID, all[2].ID})

	limited, err := history.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, "third", limited[0].ID)
}

func TestHistoryStore_List_Empty(t *testing.T) {
	records, err := newTestStore(t).HistoryStore().List(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, records)
}
