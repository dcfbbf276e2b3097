package services

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/ceplan/fichas/internal/core/domain"
	"github.com/ceplan/fichas/internal/core/ports/driven"
	"github.com/ceplan/fichas/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyDataDir     = "storage.data_dir"
	keyCatalogPath = "catalog.path"
	keyInputDir    = "input.dir"
	keyWorkers     = "batch.workers"
	keyOutput      = "output.format"
	keyStrictAudit = "audit.strict"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current settings. Unset or invalid keys take their defaults.
func (s *SettingsService) Get() domain.Settings {
	settings := domain.DefaultSettings()
	if s.configStore == nil {
		return settings
	}

	settings.DataDir = s.configStore.GetString(keyDataDir)
	settings.CatalogPath = s.configStore.GetString(keyCatalogPath)
	if dir := s.configStore.GetString(keyInputDir); dir != "" {
		settings.InputDir = dir
	}
	if workers := s.configStore.GetInt(keyWorkers); workers > 0 {
		settings.Workers = workers
	}
	if format := domain.OutputFormat(s.configStore.GetString(keyOutput)); format.IsValid() {
		settings.Output = format
	}
	settings.StrictAudit = s.configStore.GetBool(keyStrictAudit)

	settings.Normalise()
	return settings
}

// Set validates and stores one setting.
func (s *SettingsService) Set(key, value string) error {
	if s.configStore == nil {
		return domain.ErrNotImplemented
	}

	switch key {
	case keyDataDir, keyCatalogPath, keyInputDir:
		return s.configStore.Set(key, value)
	case keyWorkers:
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return fmt.Errorf("%w: %s must be a positive integer", domain.ErrInvalidInput, key)
		}
		return s.configStore.Set(key, int64(n))
	case keyOutput:
		if !domain.OutputFormat(value).IsValid() {
			return fmt.Errorf("%w: %s must be auto, text or json", domain.ErrInvalidInput, key)
		}
		return s.configStore.Set(key, value)
	case keyStrictAudit:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: %s must be true or false", domain.ErrInvalidInput, key)
		}
		return s.configStore.Set(key, b)
	default:
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}
}

// Reset removes one setting so that its default applies again.
func (s *SettingsService) Reset(key string) error {
	if s.configStore == nil {
		return domain.ErrNotImplemented
	}
	if !isSettingKey(key) {
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}
	return s.configStore.Unset(key)
}

// Keys returns the supported setting keys, sorted.
func (s *SettingsService) Keys() []string {
	keys := []string{keyDataDir, keyCatalogPath, keyInputDir, keyWorkers, keyOutput, keyStrictAudit}
	sort.Strings(keys)
	return keys
}

// Path returns the configuration file path.
func (s *SettingsService) Path() string {
	if s.configStore == nil {
		return ""
	}
	return s.configStore.Path()
}

func isSettingKey(key string) bool {
	switch key {
	case keyDataDir, keyCatalogPath, keyInputDir, keyWorkers, keyOutput, keyStrictAudit:
		return true
	default:
		return false
	}
}
