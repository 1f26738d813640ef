// Package cli implements the tawa command line.
//
// Commands run against services assembled by a Builder, which the process
// entry point registers with SetBuilder. Tests install services directly.
package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/tawa-digital/tawa-content/internal/adapters/driving/mcp"
	"github.com/tawa-digital/tawa-content/internal/core/domain"
	"github.com/tawa-digital/tawa-content/internal/core/ports/driven"
	"github.com/tawa-digital/tawa-content/internal/core/ports/driving"
	"github.com/tawa-digital/tawa-content/internal/logger"
)

// version is overridden at build time.
var version = "dev"

// annotationSnapshots marks commands that write export snapshots.
const annotationSnapshots = "tawa/snapshots"

// annotationOffline marks commands that run without services.
const annotationOffline = "tawa/offline"

// Services are the core services commands run against.
type Services struct {
	Settings domain.Settings
	Config   driven.ConfigStore
	Content  driving.ContentService
	Export   driving.ExportService

	// Watcher reports source changes. Nil when the source cannot be watched.
	Watcher driven.ContentWatcher

	// Close releases whatever the builder opened. May be nil.
	Close func() error
}

// BuildOptions tell the builder what the running command needs.
type BuildOptions struct {
	ConfigPath string

	// Snapshots asks for a persistent snapshot store.
	Snapshots bool
}

// Builder assembles services for a command.
type Builder func(opts BuildOptions) (*Services, error)

var (
	configPath string
	verbose    bool
	pretty     bool

	builder Builder
	deps    *Services
)

var rootCmd = &cobra.Command{
	Use:   "tawa",
	Short: "Fetch and normalise the Tawa website content",
	Long: `tawa reads the Tawa website content from Prismic (or a directory of
Prismic-shaped JSON documents) and turns it into the view-models the site
renders: pages, blog posts, layout and events.

Settings come from tawa.toml, .env files and PRISMIC_* environment variables.`,
	SilenceUsage:       true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
}

// SetBuilder registers the function that assembles services.
func SetBuilder(b Builder) {
	builder = b
}

// SetVersion sets the version reported by the version command and the MCP
// server.
func SetVersion(v string) {
	version = v
	mcp.Version = v
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default is ./tawa.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log progress to stderr")
	rootCmd.PersistentFlags().BoolVar(&pretty, "pretty", false, "render output as text (default when stdout is a terminal)")
}

func setup(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)
	logger.SetOutput(cmd.ErrOrStderr())

	if cmd.Annotations[annotationOffline] == "true" || deps != nil {
		return nil
	}
	if builder == nil {
		return errors.New("no service builder configured")
	}

	built, err := builder(BuildOptions{
		ConfigPath: configPath,
		Snapshots:  cmd.Annotations[annotationSnapshots] == "true",
	})
	if err != nil {
		return err
	}
	deps = built
	logger.Debug("Source: %s", deps.Settings.Source.Kind)
	return nil
}

func teardown(_ *cobra.Command, _ []string) error {
	if deps == nil || deps.Close == nil {
		return nil
	}
	err := deps.Close()
	deps = nil
	return err
}

// contentService returns the content service or an error when none is set.
func contentService() (driving.ContentService, error) {
	if deps == nil || deps.Content == nil {
		return nil, errors.New("content service not configured")
	}
	return deps.Content, nil
}

// exportService returns the export service or an error when none is set.
func exportService() (driving.ExportService, error) {
	if deps == nil || deps.Export == nil {
		return nil, errors.New("export service not configured")
	}
	return deps.Export, nil
}
