// Package page provides the preview view: one route's view-model rendered
// into a scrollable viewport.
package page

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tawa-digital/tawa-content/internal/adapters/driving/tui/keymap"
	"github.com/tawa-digital/tawa-content/internal/adapters/driving/tui/messages"
	"github.com/tawa-digital/tawa-content/internal/adapters/driving/tui/preview"
	"github.com/tawa-digital/tawa-content/internal/adapters/driving/tui/styles"
	"github.com/tawa-digital/tawa-content/internal/core/ports/driving"
)

// View is the preview view.
type View struct {
	styles   *styles.Styles
	keymap   *keymap.KeyMap
	export   driving.ExportService
	ctx      context.Context
	renderer *preview.Renderer
	viewport viewport.Model
	route    string
	content  string
	loading  bool
	err      error
}

// NewView creates a new preview view.
func NewView(s *styles.Styles, km *keymap.KeyMap, export driving.ExportService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	return &View{
		styles:   s,
		keymap:   km,
		export:   export,
		ctx:      context.Background(),
		viewport: viewport.New(preview.DefaultWidth, 20),
	}
}

// WithContext sets the context used for loading.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// SetRoute switches to a route and starts loading it.
func (v *View) SetRoute(route string) tea.Cmd {
	v.route = route
	v.content = ""
	v.err = nil
	v.viewport.SetContent("")
	return v.load()
}

func (v *View) load() tea.Cmd {
	v.loading = true
	ctx, export, route := v.ctx, v.export, v.route
	return func() tea.Msg {
		view, err := export.View(ctx, route)
		return messages.ViewLoaded{Route: route, View: view, Err: err}
	}
}

// Update handles messages for the preview.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case messages.ViewLoaded:
		if msg.Route != v.route {
			return v, nil
		}
		v.loading = false
		v.err = msg.Err
		if msg.Err != nil {
			return v, nil
		}
		if err := v.ensureRenderer(); err != nil {
			v.err = err
			return v, nil
		}
		content, err := v.renderer.Render(msg.View)
		if err != nil {
			v.err = err
			return v, nil
		}
		v.content = content
		v.viewport.SetContent(content)
		v.viewport.GotoTop()
		return v, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, v.keymap.Back):
			return v, func() tea.Msg { return messages.ViewChanged{View: messages.ViewRoutes} }
		case key.Matches(msg, v.keymap.Reload):
			return v, v.load()
		}
	}

	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return v, cmd
}

func (v *View) ensureRenderer() error {
	if v.renderer != nil {
		return nil
	}
	r, err := preview.NewRenderer(v.styles, v.viewport.Width, false)
	if err != nil {
		return err
	}
	v.renderer = r
	return nil
}

// View renders the preview.
func (v *View) View() string {
	switch {
	case v.err != nil:
		return v.styles.Error.Render(v.route+": "+v.err.Error()) + "\n"
	case v.loading && v.content == "":
		return v.styles.Muted.Render("Loading "+v.route+"...") + "\n"
	default:
		return v.viewport.View()
	}
}

// SetDimensions sets the available space. The renderer is rebuilt on the
// next load so text wraps to the new width.
func (v *View) SetDimensions(width, height int) {
	if width != v.viewport.Width {
		v.renderer = nil
	}
	v.viewport.Width = width
	v.viewport.Height = height
}

// Route returns the route being previewed.
func (v *View) Route() string {
	return v.route
}

// Content returns the rendered content.
func (v *View) Content() string {
	return v.content
}

// Loading reports whether a load is in flight.
func (v *View) Loading() bool {
	return v.loading
}

// Err returns the last load or render error.
func (v *View) Err() error {
	return v.err
}
