// Package routes provides the route list view: every page of the site,
// filterable, opened with enter.
package routes

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tawa-digital/tawa-content/internal/adapters/driving/tui/keymap"
	"github.com/tawa-digital/tawa-content/internal/adapters/driving/tui/messages"
	"github.com/tawa-digital/tawa-content/internal/adapters/driving/tui/styles"
	"github.com/tawa-digital/tawa-content/internal/core/domain"
	"github.com/tawa-digital/tawa-content/internal/core/ports/driving"
)

// item is one route in the list.
type item string

func (i item) Title() string       { return string(i) }
func (i item) Description() string { return Describe(string(i)) }
func (i item) FilterValue() string { return string(i) }

// Describe names the kind of page a route shows.
func Describe(route string) string {
	switch route {
	case domain.PathRoot:
		return "home page"
	case domain.PathArticles:
		return "article listing"
	case domain.RoutePosts:
		return "every post, newest first"
	case domain.RouteHeader:
		return "site header"
	case domain.RouteFooter:
		return "site footer"
	case domain.RouteEvents:
		return "upcoming events"
	}
	if strings.HasPrefix(route, domain.PathArticles+"/") {
		return "article"
	}
	return "page"
}

// View is the route list view.
type View struct {
	styles *styles.Styles
	keymap *keymap.KeyMap
	export driving.ExportService
	ctx    context.Context
	list   list.Model
	routes []string
	err    error
}

// NewView creates a new route list view.
func NewView(s *styles.Styles, km *keymap.KeyMap, export driving.ExportService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(s.Theme().Primary).
		BorderLeftForeground(s.Theme().Primary)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(s.Theme().Secondary).
		BorderLeftForeground(s.Theme().Primary)

	l := list.New(nil, delegate, 80, 20)
	l.Title = "Routes"
	l.Styles.Title = s.Title
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)

	return &View{
		styles: s,
		keymap: km,
		export: export,
		ctx:    context.Background(),
		list:   l,
	}
}

// WithContext sets the context used for loading.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init loads the routes.
func (v *View) Init() tea.Cmd {
	return v.loadRoutes()
}

func (v *View) loadRoutes() tea.Cmd {
	ctx, export := v.ctx, v.export
	return func() tea.Msg {
		routes, err := export.Routes(ctx)
		return messages.RoutesLoaded{Routes: routes, Err: err}
	}
}

// Update handles messages for the route list.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case messages.RoutesLoaded:
		v.err = msg.Err
		if msg.Err != nil {
			return v, nil
		}
		v.routes = msg.Routes
		items := make([]list.Item, len(msg.Routes))
		for i, r := range msg.Routes {
			items[i] = item(r)
		}
		return v, v.list.SetItems(items)

	case tea.KeyMsg:
		if v.Filtering() {
			break
		}
		switch {
		case key.Matches(msg, v.keymap.Select):
			selected, ok := v.list.SelectedItem().(item)
			if !ok {
				return v, nil
			}
			route := string(selected)
			return v, func() tea.Msg { return messages.RouteSelected{Route: route} }
		case key.Matches(msg, v.keymap.Reload):
			return v, v.loadRoutes()
		}
	}

	var cmd tea.Cmd
	v.list, cmd = v.list.Update(msg)
	return v, cmd
}

// View renders the route list.
func (v *View) View() string {
	if v.err != nil {
		return v.styles.Error.Render("Could not list routes: "+v.err.Error()) + "\n"
	}
	return v.list.View()
}

// SetDimensions sets the available space.
func (v *View) SetDimensions(width, height int) {
	v.list.SetSize(width, height)
}

// Routes returns the loaded routes.
func (v *View) Routes() []string {
	return v.routes
}

// Selected returns the highlighted route, or "" when the list is empty.
func (v *View) Selected() string {
	selected, ok := v.list.SelectedItem().(item)
	if !ok {
		return ""
	}
	return string(selected)
}

// Filtering reports whether the user is typing a filter.
func (v *View) Filtering() bool {
	return v.list.FilterState() == list.Filtering
}

// Err returns the last load error.
func (v *View) Err() error {
	return v.err
}
