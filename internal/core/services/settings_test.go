package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/wotr-save-editor/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/wotr-save-editor/internal/core/domain"
)

func TestSettingsService_Get_ReturnsDefaults(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	settings, err := service.Get()

	require.NoError(t, err)
	defaults := domain.DefaultAppSettings()
	assert.Equal(t, &defaults, settings)
}

func TestSettingsService_Get_ReturnsStoredValues(t *testing.T) {
	store := memory.NewConfigStoreWith(map[string]any{
		"saves.directory":    "/games/saves",
		"save.copy_suffix":   " - Backup",
		"save.edited_suffix": " (mod)",
		"save.max_copies":    int64(3),
		"history.enabled":    false,
		"ui.progress":        "plain",
	})

	settings, err := NewSettingsService(store).Get()

	require.NoError(t, err)
	assert.Equal(t, &domain.AppSettings{
		SavesDirectory: "/games/saves",
		CopySuffix:     " - Backup",
		EditedSuffix:   " (mod)",
		MaxCopies:      3,
		HistoryEnabled: false,
		Progress:       domain.ProgressPlain,
	}, settings)
}

func TestSettingsService_Get_InvalidValuesReturnDefaults(t *testing.T) {
	store := memory.NewConfigStoreWith(map[string]any{
		"save.max_copies": -4,
		"ui.progress":     "fancy",
	})

	settings, err := NewSettingsService(store).Get()

	require.NoError(t, err)
	assert.Equal(t, 10, settings.MaxCopies)
	assert.Equal(t, domain.ProgressAuto, settings.Progress)
}

func TestSettingsService_Set(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	require.NoError(t, service.Set("save.max_copies", "4"))
	require.NoError(t, service.Set("history.enabled", "false"))
	require.NoError(t, service.Set("ui.progress", "bar"))
	require.NoError(t, service.Set("saves.directory", "/tmp/saves"))

	settings, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, 4, settings.MaxCopies)
	assert.False(t, settings.HistoryEnabled)
	assert.Equal(t, domain.ProgressBar, settings.Progress)
	assert.Equal(t, "/tmp/saves", settings.SavesDirectory)
}

func TestSettingsService_Set_Invalid(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	tests := []struct {
		key   string
		value string
	}{
		{"save.max_copies", "zero"},
		{"save.max_copies", "0"},
		{"history.enabled", "maybe"},
		{"ui.progress", "fancy"},
		{"unknown.key", "x"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			assert.ErrorIs(t, service.Set(tt.key, tt.value), domain.ErrInvalidInput)
		})
	}
}

func TestSettingsService_Unset(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)
	require.NoError(t, service.Set("save.copy_suffix", " - Mine"))

	require.NoError(t, service.Unset("save.copy_suffix"))

	settings, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, " - Copy", settings.CopySuffix)
	assert.ErrorIs(t, service.Unset("nope"), domain.ErrInvalidInput)
}

func TestSettingsService_Save(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)
	settings := domain.DefaultAppSettings()
	settings.EditedSuffix = " - Cheated"

	require.NoError(t, service.Save(&settings))

	assert.Equal(t, " - Cheated", store.GetString("save.edited_suffix"))
	assert.Equal(t, 10, store.GetInt("save.max_copies"))
	assert.True(t, store.GetBool("history.enabled"))
}

func TestSettingsService_KeysAndPath(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	keys := service.Keys()
	assert.Contains(t, keys, "save.copy_suffix")
	assert.Len(t, keys, 6)
	keys[0] = "mutated"
	assert.NotEqual(t, "mutated", service.Keys()[0])

	assert.Equal(t, ":memory:", service.Path())
}
