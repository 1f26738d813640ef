package domain

import (
	"fmt"
	"time"
)

const unknownDescription = "Unknown"

// DefaultRepository is the content repository used when none is configured.
const DefaultRepository = "tawa-website-poc"

// SourceKind selects the content source adapter.
type SourceKind string

// Available content sources.
const (
	// SourceKindPrismic reads from the hosted CMS.
	SourceKindPrismic SourceKind = "prismic"

	// SourceKindFilesystem reads CMS-shaped JSON documents from a directory.
	SourceKindFilesystem SourceKind = "filesystem"
)

// IsValid returns true if the source kind is recognised.
func (k SourceKind) IsValid() bool {
	switch k {
	case SourceKindPrismic, SourceKindFilesystem:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (k SourceKind) String() string {
	return string(k)
}

// Description returns a human-readable description of the source kind.
func (k SourceKind) Description() string {
	switch k {
	case SourceKindPrismic:
		return "Prismic (hosted CMS)"
	case SourceKindFilesystem:
		return "Filesystem (local JSON documents)"
	default:
		return unknownDescription
	}
}

// Settings is the process-wide configuration. It is loaded once at startup
// and never mutated afterwards.
type Settings struct {
	Source      SourceSettings      `toml:"source"`
	Prismic     PrismicSettings     `toml:"prismic"`
	Retry       RetrySettings       `toml:"retry"`
	Placeholder PlaceholderSettings `toml:"placeholder"`
	HTTP        HTTPSettings        `toml:"http"`
	Export      ExportSettings      `toml:"export"`
}

// SourceSettings selects where documents come from.
type SourceSettings struct {
	// Kind is the content source adapter.
	Kind SourceKind `toml:"kind"`

	// Path is the document directory for the filesystem source.
	Path string `toml:"path"`
}

// PrismicSettings holds CMS connection settings.
type PrismicSettings struct {
	// Repository is the CMS repository name.
	Repository string `toml:"repository"`

	// Token is the API access token. Empty for public repositories.
	Token string `toml:"token"`

	// Locale restricts queries to a language, e.g. "en-nz".
	Locale string `toml:"locale"`

	// RequestsPerSecond throttles outgoing requests. Zero disables throttling.
	RequestsPerSecond float64 `toml:"requests_per_second"`

	// TimeoutSeconds bounds each HTTP request.
	TimeoutSeconds int `toml:"timeout_seconds"`
}

// APIURL returns the REST API root for the repository.
func (p PrismicSettings) APIURL() string {
	return fmt.Sprintf("https://%s.cdn.prismic.io/api/v2", p.Repository)
}

// Timeout returns the per-request timeout.
func (p PrismicSettings) Timeout() time.Duration {
	return time.Duration(p.TimeoutSeconds) * time.Second
}

// RetrySettings bounds retries of transient content source failures.
type RetrySettings struct {
	// MaxAttempts includes the first attempt; 1 disables retries.
	MaxAttempts int `toml:"max_attempts"`

	// InitialDelayMS is the first backoff delay in milliseconds.
	InitialDelayMS int `toml:"initial_delay_ms"`
}

// InitialDelay returns the first backoff delay.
func (r RetrySettings) InitialDelay() time.Duration {
	return time.Duration(r.InitialDelayMS) * time.Millisecond
}

// PlaceholderSettings configures blur placeholder generation.
type PlaceholderSettings struct {
	// Enabled turns placeholder generation on. When off, blur URLs are empty.
	Enabled bool `toml:"enabled"`

	// Concurrency caps parallel placeholder fetches per assembly. Zero is unbounded.
	Concurrency int `toml:"concurrency"`

	// Width is the pixel width of the generated preview.
	Width int `toml:"width"`
}

// HTTPSettings configures the JSON API server.
type HTTPSettings struct {
	// Addr is the listen address.
	Addr string `toml:"addr"`
}

// ExportSettings configures static export.
type ExportSettings struct {
	// Database is the snapshot database directory.
	Database string `toml:"database"`
}

// DefaultSettings returns settings with every default applied.
func DefaultSettings() Settings {
	return Settings{
		Source: SourceSettings{
			Kind: SourceKindPrismic,
			Path: "content",
		},
		Prismic: PrismicSettings{
			Repository:        DefaultRepository,
			RequestsPerSecond: 20,
			TimeoutSeconds:    30,
		},
		Retry: RetrySettings{
			MaxAttempts:    3,
			InitialDelayMS: 200,
		},
		Placeholder: PlaceholderSettings{
			Enabled: true,
			Width:   10,
		},
		HTTP: HTTPSettings{
			Addr: ":8080",
		},
		Export: ExportSettings{
			Database: ".tawa",
		},
	}
}

// Validate checks that the settings can drive the application.
func (s Settings) Validate() error {
	if !s.Source.Kind.IsValid() {
		return fmt.Errorf("%w: unknown source kind %q", ErrInvalidSettings, s.Source.Kind)
	}
	if s.Source.Kind == SourceKindPrismic && s.Prismic.Repository == "" {
		return fmt.Errorf("%w: prismic repository is required", ErrInvalidSettings)
	}
	if s.Source.Kind == SourceKindFilesystem && s.Source.Path == "" {
		return fmt.Errorf("%w: source path is required for the filesystem source", ErrInvalidSettings)
	}
	if s.Prismic.RequestsPerSecond < 0 {
		return fmt.Errorf("%w: requests_per_second must not be negative", ErrInvalidSettings)
	}
	if s.Retry.MaxAttempts < 1 {
		return fmt.Errorf("%w: retry max_attempts must be at least 1", ErrInvalidSettings)
	}
	if s.Placeholder.Concurrency < 0 {
		return fmt.Errorf("%w: placeholder concurrency must not be negative", ErrInvalidSettings)
	}
	if s.Placeholder.Enabled && s.Placeholder.Width <= 0 {
		return fmt.Errorf("%w: placeholder width must be positive", ErrInvalidSettings)
	}
	return nil
}
