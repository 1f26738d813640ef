// Package keymap holds the TUI key bindings. KeyMap satisfies the
// bubbles help.KeyMap interface so the help footer can render it.
package keymap

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

var _ help.KeyMap = (*KeyMap)(nil)

// KeyMap groups the bindings of both views.
type KeyMap struct {
	Quit   key.Binding
	Help   key.Binding
	Back   key.Binding // preview → route list
	Up     key.Binding
	Down   key.Binding
	Select key.Binding // open the highlighted route
	Reload key.Binding // refetch the routes or the previewed view
}

func binding(keys []string, hint, desc string) key.Binding {
	return key.NewBinding(key.WithKeys(keys...), key.WithHelp(hint, desc))
}

// DefaultKeyMap returns vim-flavoured defaults.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit:   binding([]string{"q", "ctrl+c"}, "q", "quit"),
		Help:   binding([]string{"?"}, "?", "help"),
		Back:   binding([]string{"esc", "backspace"}, "esc", "back"),
		Up:     binding([]string{"up", "k"}, "↑/k", "up"),
		Down:   binding([]string{"down", "j"}, "↓/j", "down"),
		Select: binding([]string{"enter"}, "enter", "open"),
		Reload: binding([]string{"r"}, "r", "reload"),
	}
}

// ShortHelp lists the route list hints.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.Reload, k.Quit, k.Help}
}

// PreviewHelp lists the preview hints.
func (k *KeyMap) PreviewHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Reload, k.Back}
}

// FullHelp lists every binding in columns.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select},
		{k.Reload, k.Back},
		{k.Help, k.Quit},
	}
}
