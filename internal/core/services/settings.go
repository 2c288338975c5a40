package services

import (
	"errors"
	"fmt"

	"github.com/custodia-labs/phonebook-cli/internal/core/domain"
	"github.com/custodia-labs/phonebook-cli/internal/core/ports/driven"
	"github.com/custodia-labs/phonebook-cli/internal/core/ports/driving"
	"github.com/custodia-labs/phonebook-cli/internal/logger"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyBackend   = "directory.backend"
	keySampleDir = "samples.dir"
)

// errNoConfigStore is returned when the service has no backing store.
var errNoConfigStore = errors.New("settings: config store not configured")

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current settings. Unset or unrecognised values fall back
// to the defaults.
func (s *SettingsService) Get() (*domain.Settings, error) {
	if s.configStore == nil {
		return nil, errNoConfigStore
	}
	settings := domain.DefaultSettings()

	if raw := s.configStore.GetString(keyBackend); raw != "" {
		backend := domain.Backend(raw)
		if backend.IsValid() {
			settings.Backend = backend
		} else {
			logger.Warn("ignoring unknown backend %q in %s", raw, s.configStore.Path())
		}
	}
	if dir := s.configStore.GetString(keySampleDir); dir != "" {
		settings.SampleDir = dir
	}
	return settings, nil
}

// SetBackend stores the default backend.
func (s *SettingsService) SetBackend(backend domain.Backend) error {
	if s.configStore == nil {
		return errNoConfigStore
	}
	if !backend.IsValid() {
		return fmt.Errorf("%w: backend %q", domain.ErrUnsupportedType, backend)
	}
	return s.configStore.Set(keyBackend, backend.String())
}

// SetSampleDir stores the sample phone book directory.
func (s *SettingsService) SetSampleDir(dir string) error {
	if s.configStore == nil {
		return errNoConfigStore
	}
	if dir == "" {
		return fmt.Errorf("%w: sample directory must not be empty", domain.ErrInvalidInput)
	}
	return s.configStore.Set(keySampleDir, dir)
}
