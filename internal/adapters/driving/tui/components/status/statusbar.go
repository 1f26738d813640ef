// Package status renders the one-line footer of the TUI: what the app is
// doing on the left, key hints on the right.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/tawa-digital/tawa-content/internal/adapters/driving/tui/keymap"
	"github.com/tawa-digital/tawa-content/internal/adapters/driving/tui/styles"
)

// State is what the footer reports on its left side.
type State string

const (
	StateReady   State = "ready"
	StateLoading State = "loading"
	StateError   State = "error"
	StatePreview State = "preview"
)

// Bar is the footer component.
type Bar struct {
	styles     *styles.Styles
	keymap     *keymap.KeyMap
	hints      help.Model
	state      State
	message    string
	routeCount int
	width      int
}

// NewBar creates a footer in the ready state. Nil arguments fall back to
// the defaults.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	hints := help.New()
	hints.Styles.ShortKey = s.Muted.Bold(true)
	hints.Styles.ShortDesc = s.Muted
	hints.Styles.ShortSeparator = s.Muted

	return &Bar{styles: s, keymap: km, hints: hints, state: StateReady, width: 80}
}

// View renders the footer at its width.
func (s *Bar) View() string {
	left, right := s.status(), s.hints.ShortHelpView(s.Bindings())
	gap := max(1, s.width-lipgloss.Width(left)-lipgloss.Width(right)-2)
	return s.styles.StatusBar.Width(s.width).Render(left + strings.Repeat(" ", gap) + right)
}

func (s *Bar) status() string {
	switch s.state {
	case StateLoading:
		return s.styles.Muted.Render("Loading " + s.message + "...")
	case StateError:
		if s.message == "" {
			return s.styles.Error.Render("Error")
		}
		return s.styles.Error.Render("Error: " + s.message)
	case StatePreview:
		return s.styles.Text.Render(s.message)
	}
	if s.routeCount > 0 {
		return s.styles.Text.Render(fmt.Sprintf("%d routes", s.routeCount))
	}
	return s.styles.Muted.Render("Ready")
}

// Bindings returns the hints for the current state.
func (s *Bar) Bindings() []key.Binding {
	if s.state == StatePreview {
		return s.keymap.PreviewHelp()
	}
	return s.keymap.ShortHelp()
}

func (s *Bar) SetState(state State) { s.state = state }
func (s *Bar) State() State { return s.state }
func (s *Bar) SetMessage(msg string) { s.message = msg }
func (s *Bar) Message() string { return s.message }
func (s *Bar) SetRouteCount(count int) { s.routeCount = count }
func (s *Bar) RouteCount() int { return s.routeCount }
func (s *Bar) SetWidth(width int) { s.width = width }
func (s *Bar) Width() int { return s.width }
