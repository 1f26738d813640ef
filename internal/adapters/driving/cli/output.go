package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tawa-digital/tawa-content/internal/adapters/driving/tui/preview"
	"github.com/tawa-digital/tawa-content/internal/core/domain"
)

// writeView prints a view-model as JSON, or as text when pretty output is on.
func writeView(cmd *cobra.Command, route, kind string, view any) error {
	if usePretty(cmd) {
		return writePretty(cmd, &domain.RouteView{Route: route, Kind: kind, View: view})
	}
	return writeJSON(cmd, view)
}

// usePretty honours --pretty when given and otherwise follows the terminal.
func usePretty(cmd *cobra.Command) bool {
	if f := cmd.Flags().Lookup("pretty"); f != nil && f.Changed {
		return pretty
	}
	_, tty := terminalWidth(cmd)
	return tty
}

// terminalWidth reports the width of stdout when it is a terminal.
func terminalWidth(cmd *cobra.Command) (int, bool) {
	f, ok := cmd.OutOrStdout().(*os.File)
	if !ok {
		return 0, false
	}
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return 0, false
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		width = preview.DefaultWidth
	}
	return width, true
}

func writePretty(cmd *cobra.Command, view *domain.RouteView) error {
	width, tty := terminalWidth(cmd)
	if !tty {
		width = preview.DefaultWidth
	}
	r, err := preview.NewRenderer(nil, width, !tty)
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}
	out, err := r.Render(view)
	if err != nil {
		return fmt.Errorf("render %s: %w", view.Route, err)
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), out)
	return err
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}
