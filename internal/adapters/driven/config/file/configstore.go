package file

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"github.com/tawa-digital/tawa-content/internal/core/domain"
	"github.com/tawa-digital/tawa-content/internal/core/ports/driven"
)

// DefaultPath is the configuration file used when none is given.
const DefaultPath = "tawa.toml"

// Environment variables that override the configuration file.
const (
	EnvRepository = "PRISMIC_REPOSITORY_NAME"
	EnvToken      = "PRISMIC_API_TOKEN"
	EnvLocale     = "PRISMIC_REPOSITORY_LOCALE"
	EnvSourceKind = "TAWA_SOURCE"
	EnvSourcePath = "TAWA_SOURCE_PATH"
	EnvHTTPAddr   = "TAWA_HTTP_ADDR"
	EnvPlacehold  = "TAWA_PLACEHOLDERS"
)

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// ConfigStore is a file-based implementation of driven.ConfigStore using TOML.
// A missing file is not an error; defaults and environment apply alone.
type ConfigStore struct {
	mu       sync.Mutex
	filePath string
	envFiles []string
	lookup   func(string) (string, bool)
}

// NewConfigStore creates a TOML-based config store.
// If path is empty, defaults to ./tawa.toml.
func NewConfigStore(path string) *ConfigStore {
	if path == "" {
		path = DefaultPath
	}
	return &ConfigStore{
		filePath: path,
		envFiles: []string{".env.local", ".env"},
		lookup:   os.LookupEnv,
	}
}

// SetEnvFiles replaces the dotenv files loaded before overrides are applied.
// Earlier files take precedence; existing environment variables always win.
func (s *ConfigStore) SetEnvFiles(files ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.envFiles = files
}

// Path returns the configuration file path.
func (s *ConfigStore) Path() string {
	return s.filePath
}

// Load reads the TOML file over the defaults, applies environment overrides
// and validates the result.
func (s *ConfigStore) Load() (domain.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.loadEnvFiles(); err != nil {
		return domain.Settings{}, err
	}

	settings := domain.DefaultSettings()

	data, err := os.ReadFile(s.filePath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// No config file yet, defaults and environment only
	case err != nil:
		return domain.Settings{}, fmt.Errorf("read config %s: %w", s.filePath, err)
	default:
		if err := toml.Unmarshal(data, &settings); err != nil {
			return domain.Settings{}, fmt.Errorf("%w: parse %s: %w", domain.ErrInvalidSettings, s.filePath, err)
		}
	}

	if err := s.applyEnv(&settings); err != nil {
		return domain.Settings{}, err
	}

	if err := settings.Validate(); err != nil {
		return domain.Settings{}, err
	}
	return settings, nil
}

// Save writes settings to the TOML file with restricted permissions.
func (s *ConfigStore) Save(settings domain.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := toml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	if dir := filepath.Dir(s.filePath); dir != "." {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	return os.WriteFile(s.filePath, data, 0600)
}

// loadEnvFiles loads dotenv files without overriding variables already set.
func (s *ConfigStore) loadEnvFiles() error {
	for _, name := range s.envFiles {
		if err := godotenv.Load(name); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", name, err)
		}
	}
	return nil
}

func (s *ConfigStore) applyEnv(settings *domain.Settings) error {
	if v, ok := s.lookup(EnvRepository); ok && v != "" {
		settings.Prismic.Repository = v
	}
	if v, ok := s.lookup(EnvToken); ok {
		settings.Prismic.Token = v
	}
	if v, ok := s.lookup(EnvLocale); ok {
		settings.Prismic.Locale = v
	}
	if v, ok := s.lookup(EnvSourceKind); ok && v != "" {
		settings.Source.Kind = domain.SourceKind(v)
	}
	if v, ok := s.lookup(EnvSourcePath); ok && v != "" {
		settings.Source.Path = v
	}
	if v, ok := s.lookup(EnvHTTPAddr); ok && v != "" {
		settings.HTTP.Addr = v
	}
	if v, ok := s.lookup(EnvPlacehold); ok && v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a boolean", domain.ErrInvalidSettings, EnvPlacehold, v)
		}
		settings.Placeholder.Enabled = enabled
	}
	return nil
}
