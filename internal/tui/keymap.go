package tui

import (
	"github.com/Veraticus/prodchart/internal/tui/components"
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keyboard shortcuts.
type KeyMap struct {
	// Navigation
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding
	Focus  key.Binding

	// Selection
	Select      key.Binding
	SelectAll   key.Binding
	DeselectAll key.Binding

	// Actions
	Run        key.Binding
	Clear      key.Binding
	TogglePlot key.Binding

	// Application
	Help key.Binding
	Quit key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	list := components.DefaultListKeys()
	return KeyMap{
		Up:          list.Up,
		Down:        list.Down,
		Top:         list.Top,
		Bottom:      list.Bottom,
		Select:      list.Select,
		SelectAll:   list.SelectAll,
		DeselectAll: list.DeselectAll,
		Focus: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "switch list"),
		),
		Run: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "run report"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear"),
		),
		TogglePlot: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "toggle plot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ListKeys returns the bindings handed to the list components.
func (k KeyMap) ListKeys() components.ListKeys {
	return components.ListKeys{
		Up:          k.Up,
		Down:        k.Down,
		Top:         k.Top,
		Bottom:      k.Bottom,
		Select:      k.Select,
		SelectAll:   k.SelectAll,
		DeselectAll: k.DeselectAll,
	}
}

// ShortHelp returns the bindings shown in the compact help bar.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Focus, k.Select, k.Run, k.Clear, k.Help, k.Quit}
}

// FullHelp returns all bindings grouped into columns.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Top, k.Bottom, k.Focus},
		{k.Select, k.SelectAll, k.DeselectAll},
		{k.Run, k.Clear, k.TogglePlot},
		{k.Help, k.Quit},
	}
}
