// Command tawa fetches the Tawa website content and serves it as
// normalised view-models.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/tawa-digital/tawa-content/internal/adapters/driven/config/file"
	"github.com/tawa-digital/tawa-content/internal/adapters/driven/placeholder"
	"github.com/tawa-digital/tawa-content/internal/adapters/driven/prismic"
	"github.com/tawa-digital/tawa-content/internal/adapters/driven/storage/filesystem"
	"github.com/tawa-digital/tawa-content/internal/adapters/driven/storage/memory"
	"github.com/tawa-digital/tawa-content/internal/adapters/driven/storage/sqlite"
	"github.com/tawa-digital/tawa-content/internal/adapters/driving/cli"
	"github.com/tawa-digital/tawa-content/internal/core/domain"
	"github.com/tawa-digital/tawa-content/internal/core/ports/driven"
	"github.com/tawa-digital/tawa-content/internal/core/services"
	"github.com/tawa-digital/tawa-content/internal/logger"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.SetVersion(version)
	cli.SetBuilder(build)

	if err := cli.Execute(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}

// build wires the adapters selected by the settings into the core services.
func build(opts cli.BuildOptions) (*cli.Services, error) {
	config := file.NewConfigStore(opts.ConfigPath)
	settings, err := config.Load()
	if err != nil {
		return nil, err
	}

	out := &cli.Services{Settings: settings, Config: config}

	var source driven.ContentSource
	switch settings.Source.Kind {
	case domain.SourceKindFilesystem:
		fs := filesystem.New(settings.Source.Path)
		source = fs
		out.Watcher = fs
	default:
		source = prismic.NewClient(prismic.ConfigFromSettings(settings))
	}

	content := services.NewContentService(source, placeholder.NewFromSettings(settings.Placeholder))
	content.SetConcurrency(settings.Placeholder.Concurrency)
	content.SetLocale(settings.Prismic.Locale)
	out.Content = content

	var store driven.SnapshotStore = memory.NewSnapshotStore()
	if opts.Snapshots {
		db, err := sqlite.NewStore(settings.Export.Database)
		if err != nil {
			return nil, fmt.Errorf("open snapshot store: %w", err)
		}
		logger.Debug("Snapshot database: %s", db.Path())
		store = db
		out.Close = db.Close
	}

	export := services.NewExportService(content, store)
	export.SetReporter(func(run *domain.ExportRun, err error) {
		if err == nil {
			fmt.Fprintf(os.Stderr, "Export %s: %d route(s)\n", run.ID, run.Routes)
		}
	})
	out.Export = export

	return out, nil
}
