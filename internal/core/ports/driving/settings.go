package driving

import "github.com/custodia-labs/phonebook-cli/internal/core/domain"

// SettingsService manages persisted user preferences.
type SettingsService interface {
	// Get returns the current settings, with defaults for unset values.
	Get() (*domain.Settings, error)

	// SetBackend stores the default backend.
	SetBackend(backend domain.Backend) error

	// SetSampleDir stores the sample phone book directory.
	SetSampleDir(dir string) error
}
