package tui

import "errors"

// ErrMissingExportService is returned when the TUI is built without an
// export service.
var ErrMissingExportService = errors.New("tui: export service is required")
