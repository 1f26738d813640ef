// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/tawa-digital/tawa-content/internal/core/domain"
)

// RoutesLoaded carries the site's route list back to the model.
type RoutesLoaded struct {
	Routes []string
	Err    error
}

// RouteSelected is sent when a route is opened from the list.
type RouteSelected struct {
	Route string
}

// ViewLoaded carries an assembled route view-model back to the model.
type ViewLoaded struct {
	Route string
	View  *domain.RouteView
	Err   error
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewRoutes is the route list.
	ViewRoutes ViewType = iota
	// ViewPreview shows one route's rendered view-model.
	ViewPreview
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewRoutes:
		return "routes"
	case ViewPreview:
		return "preview"
	default:
		return "unknown"
	}
}
