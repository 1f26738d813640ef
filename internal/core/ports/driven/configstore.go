package driven

import "github.com/tawa-digital/tawa-content/internal/core/domain"

// ConfigStore provides access to application settings.
// Implementations handle persistence (e.g., TOML files) and environment overrides.
type ConfigStore interface {
	// Load reads settings from storage, applies defaults and overrides,
	// and validates the result.
	Load() (domain.Settings, error)

	// Save persists settings to storage.
	Save(settings domain.Settings) error

	// Path returns the configuration file path.
	Path() string
}
