package driving

import "github.com/custodia-labs/wotr-save-editor/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings, filling in defaults.
	Get() (*domain.AppSettings, error)

	// Set updates one setting by key and persists it.
	Set(key, value string) error

	// Unset removes a setting so its default applies again.
	Unset(key string) error

	// Keys returns the recognised setting keys.
	Keys() []string

	// Path returns where settings are stored.
	Path() string
}
