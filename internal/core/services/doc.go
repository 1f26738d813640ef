// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// ContentService turns content source documents into view-models.
// ExportService walks every route and persists those view-models.
package services
