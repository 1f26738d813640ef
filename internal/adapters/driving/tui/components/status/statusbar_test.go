package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tawa-digital/tawa-content/internal/adapters/driving/tui/keymap"
	"github.com/tawa-digital/tawa-content/internal/adapters/driving/tui/styles"
)

func TestNewBar(t *testing.T) {
	bar := NewBar(styles.DefaultStyles(), keymap.DefaultKeyMap())

	require.NotNil(t, bar)
	assert.Equal(t, StateReady, bar.State())
	assert.Equal(t, "", bar.Message())
	assert.Equal(t, 0, bar.RouteCount())
	assert.Equal(t, 80, bar.Width())
}

func TestNewBar_NilStyles(t *testing.T) {
	bar := NewBar(nil, nil)

	require.NotNil(t, bar)
	assert.NotNil(t, bar.styles)
	assert.NotNil(t, bar.keymap)
}

func TestStatusBar_View(t *testing.T) {
	tests := []struct {
		name     string
		state    State
		message  string
		routes   int
		contains []string
	}{
		{name: "ready without routes", state: StateReady, contains: []string{"Ready", "enter open"}},
		{name: "ready with routes", state: StateReady, routes: 12, contains: []string{"12 routes"}},
		{name: "loading", state: StateLoading, message: "/about", contains: []string{"Loading /about..."}},
		{name: "error", state: StateError, message: "not found", contains: []string{"Error: not found"}},
		{name: "error without message", state: StateError, contains: []string{"Error"}},
		{name: "preview", state: StatePreview, message: "/about", contains: []string{"/about", "esc back"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := NewBar(nil, nil)
			bar.SetWidth(120)
			bar.SetState(tt.state)
			bar.SetMessage(tt.message)
			bar.SetRouteCount(tt.routes)

			view := bar.View()
			for _, want := range tt.contains {
				assert.Contains(t, view, want)
			}
		})
	}
}

func TestStatusBar_Bindings(t *testing.T) {
	km := keymap.DefaultKeyMap()
	bar := NewBar(nil, km)

	assert.Equal(t, km.ShortHelp(), bar.Bindings())

	bar.SetState(StatePreview)
	assert.Equal(t, km.PreviewHelp(), bar.Bindings())
}
