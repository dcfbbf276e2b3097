package driving

import "github.com/ceplan/fichas/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current settings, with defaults for unset keys.
	Get() domain.Settings

	// Set updates one setting by key. Unknown keys and invalid values
	// return domain.ErrInvalidInput.
	Set(key, value string) error

	// Reset restores one setting to its default.
	Reset(key string) error

	// Keys returns the supported setting keys.
	Keys() []string

	// Path returns the configuration file path.
	Path() string
}
