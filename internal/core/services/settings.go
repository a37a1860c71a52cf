package services

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/custodia-labs/wotr-save-editor/internal/core/domain"
	"github.com/custodia-labs/wotr-save-editor/internal/core/ports/driven"
	"github.com/custodia-labs/wotr-save-editor/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keySavesDirectory = "saves.directory"
	keyCopySuffix     = "save.copy_suffix"
	keyEditedSuffix   = "save.edited_suffix"
	keyMaxCopies      = "save.max_copies"
	keyHistoryEnabled = "history.enabled"
	keyProgress       = "ui.progress"
)

var settingKeys = []string{
	keySavesDirectory,
	keyCopySuffix,
	keyEditedSuffix,
	keyMaxCopies,
	keyHistoryEnabled,
	keyProgress,
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	return &domain.AppSettings{
		SavesDirectory: s.configStore.GetString(keySavesDirectory), // No default - resolved by the CLI
		CopySuffix:     s.getString(keyCopySuffix, defaults.CopySuffix),
		EditedSuffix:   s.getString(keyEditedSuffix, defaults.EditedSuffix),
		MaxCopies:      s.getInt(keyMaxCopies, defaults.MaxCopies),
		HistoryEnabled: s.getBool(keyHistoryEnabled, defaults.HistoryEnabled),
		Progress:       s.getProgressMode(defaults.Progress),
	}, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	values := []struct {
		key   string
		value any
	}{
		{keySavesDirectory, settings.SavesDirectory},
		{keyCopySuffix, settings.CopySuffix},
		{keyEditedSuffix, settings.EditedSuffix},
		{keyMaxCopies, settings.MaxCopies},
		{keyHistoryEnabled, settings.HistoryEnabled},
		{keyProgress, string(settings.Progress)},
	}
	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}
	return nil
}

// Set parses value for key and persists it.
func (s *SettingsService) Set(key, value string) error {
	var typed any
	switch key {
	case keySavesDirectory, keyCopySuffix, keyEditedSuffix:
		typed = value
	case keyMaxCopies:
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			return fmt.Errorf("%w: %s must be a positive integer, got %q", domain.ErrInvalidInput, key, value)
		}
		typed = n
	case keyHistoryEnabled:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: %s must be true or false, got %q", domain.ErrInvalidInput, key, value)
		}
		typed = b
	case keyProgress:
		mode := domain.ProgressMode(value)
		if !mode.IsValid() {
			return fmt.Errorf("%w: %s must be auto, bar or plain, got %q", domain.ErrInvalidInput, key, value)
		}
		typed = value
	default:
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}

	if err := s.configStore.Set(key, typed); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Unset removes key so its default applies again.
func (s *SettingsService) Unset(key string) error {
	if !slices.Contains(settingKeys, key) {
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}
	if err := s.configStore.Delete(key); err != nil {
		return fmt.Errorf("unset %s: %w", key, err)
	}
	return nil
}

// Keys returns the recognised setting keys.
func (s *SettingsService) Keys() []string {
	return slices.Clone(settingKeys)
}

// Path returns the config file location.
func (s *SettingsService) Path() string {
	return s.configStore.Path()
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val <= 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

func (s *SettingsService) getProgressMode(defaultVal domain.ProgressMode) domain.ProgressMode {
	mode := domain.ProgressMode(s.configStore.GetString(keyProgress))
	if !mode.IsValid() {
		return defaultVal
	}
	return mode
}
