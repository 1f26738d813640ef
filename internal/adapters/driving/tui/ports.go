package tui

import "github.com/tawa-digital/tawa-content/internal/core/ports/driving"

// Ports holds the driving ports the TUI depends on.
type Ports struct {
	Export driving.ExportService
}

// Validate checks that every required port is set.
func (p *Ports) Validate() error {
	if p == nil || p.Export == nil {
		return ErrMissingExportService
	}
	return nil
}
