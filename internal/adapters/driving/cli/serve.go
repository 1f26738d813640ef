package cli

import (
	"github.com/spf13/cobra"

	"github.com/tawa-digital/tawa-content/internal/adapters/driving/httpapi"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the view-models as a JSON API",
	Long: `Starts an HTTP server exposing every view-model as JSON, for example
GET /api/home or GET /api/posts/{uid}, with Prometheus metrics on /metrics.

The address defaults to http.addr from the settings.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides http.addr)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	svc, err := contentService()
	if err != nil {
		return err
	}

	addr := serveAddr
	if addr == "" {
		addr = deps.Settings.HTTP.Addr
	}

	server := httpapi.NewServer(addr, svc)
	cmd.Printf("Serving on %s\n", server.Addr())
	return server.Run(cmd.Context())
}
