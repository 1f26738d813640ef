package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tawa-digital/tawa-content/internal/adapters/driving/tui/components/status"
	"github.com/tawa-digital/tawa-content/internal/adapters/driving/tui/keymap"
	"github.com/tawa-digital/tawa-content/internal/adapters/driving/tui/messages"
	"github.com/tawa-digital/tawa-content/internal/adapters/driving/tui/styles"
	"github.com/tawa-digital/tawa-content/internal/adapters/driving/tui/views/page"
	"github.com/tawa-digital/tawa-content/internal/adapters/driving/tui/views/routes"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	styles *styles.Styles
	keymap *keymap.KeyMap
	help   help.Model

	// routesView lists every route of the site.
	routesView *routes.View

	// pageView previews the selected route.
	pageView *page.View

	statusBar *status.Bar

	// currentView tracks which view is active.
	currentView messages.ViewType

	// showHelp expands the help footer.
	showHelp bool

	width  int
	height int

	// ready indicates if the app has received its first window size.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	bar := status.NewBar(s, km)
	bar.SetState(status.StateLoading)

	return &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		keymap:      km,
		help:        help.New(),
		routesView:  routes.NewView(s, km, ports.Export),
		pageView:    page.NewView(s, km, ports.Export),
		statusBar:   bar,
		currentView: messages.ViewRoutes,
	}, nil
}

// WithContext sets the context for the app and its views.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.routesView.WithContext(ctx)
	a.pageView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("tawa - content preview"),
		a.routesView.Init(),
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.resize()
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case messages.RoutesLoaded:
		a.routesView, cmd = a.routesView.Update(msg)
		if msg.Err != nil {
			a.statusBar.SetState(status.StateError)
			a.statusBar.SetMessage(msg.Err.Error())
			return a, cmd
		}
		a.statusBar.SetState(status.StateReady)
		a.statusBar.SetMessage("")
		a.statusBar.SetRouteCount(len(msg.Routes))
		return a, cmd

	case messages.RouteSelected:
		a.currentView = messages.ViewPreview
		a.statusBar.SetState(status.StateLoading)
		a.statusBar.SetMessage(msg.Route)
		return a, a.pageView.SetRoute(msg.Route)

	case messages.ViewLoaded:
		a.pageView, cmd = a.pageView.Update(msg)
		if err := a.pageView.Err(); err != nil {
			a.statusBar.SetState(status.StateError)
			a.statusBar.SetMessage(err.Error())
			return a, cmd
		}
		a.statusBar.SetState(status.StatePreview)
		a.statusBar.SetMessage(a.pageView.Route())
		return a, cmd

	case messages.ViewChanged:
		a.currentView = msg.View
		if msg.View == messages.ViewRoutes {
			a.statusBar.SetState(status.StateReady)
			a.statusBar.SetMessage("")
		}
		return a, nil
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	// ctrl+c always quits; q only when not typing a filter.
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}
	filtering := a.currentView == messages.ViewRoutes && a.routesView.Filtering()
	if !filtering {
		switch {
		case key.Matches(msg, a.keymap.Quit):
			return a, tea.Quit
		case key.Matches(msg, a.keymap.Help):
			a.showHelp = !a.showHelp
			a.resize()
			return a, nil
		}
	}

	switch a.currentView {
	case messages.ViewRoutes:
		if !filtering && key.Matches(msg, a.keymap.Reload) {
			a.statusBar.SetState(status.StateLoading)
		}
		a.routesView, cmd = a.routesView.Update(msg)
	case messages.ViewPreview:
		if key.Matches(msg, a.keymap.Reload) {
			a.statusBar.SetState(status.StateLoading)
		}
		a.pageView, cmd = a.pageView.Update(msg)
	}
	return a, cmd
}

// resize hands the space left after the footer to both views.
func (a *App) resize() {
	a.statusBar.SetWidth(a.width)
	a.help.Width = a.width
	height := a.height - lipgloss.Height(a.footer()) - 1
	if height < 1 {
		height = 1
	}
	a.routesView.SetDimensions(a.width, height)
	a.pageView.SetDimensions(a.width, height)
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	var body string
	switch a.currentView {
	case messages.ViewPreview:
		body = a.pageView.View()
	default:
		body = a.routesView.View()
	}
	return body + "\n" + a.footer()
}

func (a *App) footer() string {
	if a.showHelp {
		return a.help.FullHelpView(a.keymap.FullHelp())
	}
	return a.statusBar.View()
}

// Run starts the TUI and blocks until the user quits.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// CurrentView returns the active view.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// StatusBar returns the status bar component.
func (a *App) StatusBar() *status.Bar {
	return a.statusBar
}

// RoutesView returns the route list view.
func (a *App) RoutesView() *routes.View {
	return a.routesView
}

// PageView returns the preview view.
func (a *App) PageView() *page.View {
	return a.pageView
}

// ShowHelp reports whether the expanded help is visible.
func (a *App) ShowHelp() bool {
	return a.showHelp
}
