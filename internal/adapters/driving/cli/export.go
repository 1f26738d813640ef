package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tawa-digital/tawa-content/internal/core/domain"
)

var (
	exportWatch bool
	exportList  bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write every route's view-model to the snapshot store",
	Long: `Assembles the view-model of every route of the site (home, pages,
articles, layout and events) and saves them as one export run in the
snapshot database.

With --watch the export repeats whenever a document changes. Watching needs
the filesystem content source.`,
	Args:        cobra.NoArgs,
	Annotations: map[string]string{annotationSnapshots: "true"},
	RunE:        runExport,
}

func init() {
	exportCmd.Flags().BoolVarP(&exportWatch, "watch", "w", false, "re-export when documents change")
	exportCmd.Flags().BoolVar(&exportList, "list", false, "print the routes without exporting")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	svc, err := exportService()
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	if exportList {
		routes, err := svc.Routes(ctx)
		if err != nil {
			return err
		}
		for _, r := range routes {
			cmd.Println(r)
		}
		return nil
	}

	run, err := svc.Export(ctx)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}
	printRun(cmd, run)

	if !exportWatch {
		return nil
	}
	if deps.Watcher == nil {
		return fmt.Errorf("%w: --watch needs the filesystem source", domain.ErrInvalidInput)
	}

	changes, err := deps.Watcher.Watch(ctx)
	if err != nil {
		return fmt.Errorf("watch source: %w", err)
	}
	cmd.Println("Watching for changes. Press Ctrl+C to stop.")
	if err := svc.Watch(ctx, changes); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func printRun(cmd *cobra.Command, run *domain.ExportRun) {
	cmd.Printf("Export %s: %d route(s) in %s\n",
		run.ID, run.Routes, run.FinishedAt.Sub(run.StartedAt).Round(time.Millisecond))
}
