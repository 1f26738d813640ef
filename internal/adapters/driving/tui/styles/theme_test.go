package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTheme(t *testing.T) {
	theme := DefaultTheme()
	require.NotNil(t, theme)

	colours := map[string]lipgloss.AdaptiveColor{
		"primary":   theme.Primary,
		"secondary": theme.Secondary,
		"text":      theme.Text,
		"muted":     theme.Muted,
		"accent":    theme.Accent,
		"error":     theme.Error,
		"bar":       theme.Bar,
	}
	for name, c := range colours {
		t.Run(name, func(t *testing.T) {
			assert.NotEmpty(t, c.Light)
			assert.NotEmpty(t, c.Dark)
		})
	}
}

func TestDefaultTheme_AccentsAreDistinct(t *testing.T) {
	theme := DefaultTheme()

	seen := make(map[string]bool)
	for _, c := range []lipgloss.AdaptiveColor{theme.Primary, theme.Secondary, theme.Accent, theme.Error} {
		assert.False(t, seen[c.Dark], "duplicate colour: %s", c.Dark)
		seen[c.Dark] = true
	}
}

func TestNewStyles(t *testing.T) {
	t.Run("with theme", func(t *testing.T) {
		theme := DefaultTheme()
		s := NewStyles(theme)

		require.NotNil(t, s)
		assert.Same(t, theme, s.Theme())
		assert.True(t, s.Title.GetBold())
		assert.Equal(t, lipgloss.TerminalColor(theme.Primary), s.Title.GetForeground())
		assert.True(t, s.Tag.GetItalic())
		assert.True(t, s.Link.GetUnderline())
	})

	t.Run("nil theme uses default", func(t *testing.T) {
		s := NewStyles(nil)

		require.NotNil(t, s.Theme())
		assert.Equal(t, DefaultTheme().Primary, s.Theme().Primary)
	})
}

func TestStyles_RenderKeepsText(t *testing.T) {
	s := DefaultStyles()

	assert.Contains(t, s.Title.Render("Kia ora"), "Kia ora")
	assert.Contains(t, s.Muted.Render("/about"), "/about")
	assert.Contains(t, s.Link.Render("/articles/hello"), "/articles/hello")
}
