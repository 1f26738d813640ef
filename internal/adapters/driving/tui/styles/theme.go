// Package styles holds the colours and lipgloss styles shared by the TUI
// and the terminal preview.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme is a palette of adaptive colours. Each colour has a light and a
// dark terminal variant; lipgloss picks one from the terminal background.
type Theme struct {
	Primary   lipgloss.AdaptiveColor // titles, selection
	Secondary lipgloss.AdaptiveColor // subtitles
	Text      lipgloss.AdaptiveColor
	Muted     lipgloss.AdaptiveColor // routes, dates, URLs
	Accent    lipgloss.AdaptiveColor // tags
	Error     lipgloss.AdaptiveColor
	Bar       lipgloss.AdaptiveColor // status bar background
}

// DefaultTheme is forest green, sky and ochre.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:   lipgloss.AdaptiveColor{Light: "#1F5E43", Dark: "#4CAF82"},
		Secondary: lipgloss.AdaptiveColor{Light: "#2F6F99", Dark: "#5BA4CF"},
		Text:      lipgloss.AdaptiveColor{Light: "#1E2420", Dark: "#E6E1D6"},
		Muted:     lipgloss.AdaptiveColor{Light: "#5E645D", Dark: "#7A8079"},
		Accent:    lipgloss.AdaptiveColor{Light: "#9A5B12", Dark: "#E0A458"},
		Error:     lipgloss.AdaptiveColor{Light: "#B3243A", Dark: "#D1495B"},
		Bar:       lipgloss.AdaptiveColor{Light: "#E4E8E2", Dark: "#1B221E"},
	}
}

// Styles are the lipgloss styles built from a theme.
type Styles struct {
	theme *Theme

	Title     lipgloss.Style
	Subtitle  lipgloss.Style
	Text      lipgloss.Style
	Muted     lipgloss.Style
	Tag       lipgloss.Style
	Link      lipgloss.Style
	Error     lipgloss.Style
	StatusBar lipgloss.Style
}

// NewStyles builds styles from theme, or from DefaultTheme when nil.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}
	base := lipgloss.NewStyle()

	return &Styles{
		theme:     theme,
		Title:     base.Bold(true).Foreground(theme.Primary),
		Subtitle:  base.Bold(true).Foreground(theme.Secondary),
		Text:      base.Foreground(theme.Text),
		Muted:     base.Foreground(theme.Muted),
		Tag:       base.Italic(true).Foreground(theme.Accent),
		Link:      base.Underline(true).Foreground(theme.Secondary),
		Error:     base.Bold(true).Foreground(theme.Error),
		StatusBar: base.Foreground(theme.Muted).Background(theme.Bar).Padding(0, 1),
	}
}

// DefaultStyles returns styles built from DefaultTheme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the palette the styles were built from.
func (s *Styles) Theme() *Theme {
	return s.theme
}
