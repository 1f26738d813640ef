package cli

import (
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview <route>",
	Short: "Render one route as text",
	Long: `Assembles the view-model of a route and renders it as styled text, the
same way the browse command does. Routes are site paths such as /, /about,
/articles or /articles/my-post, or one of posts, layout/header,
layout/footer and events.

Use "tawa export --list" to see every route.`,
	Args: cobra.ExactArgs(1),
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) error {
	svc, err := exportService()
	if err != nil {
		return err
	}
	view, err := svc.View(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	return writePretty(cmd, view)
}
