package types

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings of the picker
type KeyMap struct {
	// Both modes
	Down    key.Binding
	Up      key.Binding
	Confirm key.Binding
	Cancel  key.Binding

	// Normal mode
	LineDown key.Binding
	LineUp   key.Binding
	Top      key.Binding
	Bottom   key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	PickNth  key.Binding
	PickLast key.Binding
	Search   key.Binding
	Quit     key.Binding
	Help     key.Binding

	// Search mode
	ClearQuery key.Binding
	ExitSearch key.Binding
}

// DefaultKeyMap returns the default bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Down: key.NewBinding(
			key.WithKeys("down", "tab", "ctrl+n"),
			key.WithHelp("↓/tab", "down"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "shift+tab", "ctrl+p"),
			key.WithHelp("↑/S-tab", "up"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "cancel"),
		),
		LineDown: key.NewBinding(
			key.WithKeys("j"),
			key.WithHelp("j", "down"),
		),
		LineUp: key.NewBinding(
			key.WithKeys("k"),
			key.WithHelp("k", "up"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "first"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "last"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "page down"),
		),
		PickNth: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8"),
			key.WithHelp("1-8", "pick nth"),
		),
		PickLast: key.NewBinding(
			key.WithKeys("9"),
			key.WithHelp("9", "pick last"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		ClearQuery: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("ctrl+u", "clear"),
		),
		ExitSearch: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "list"),
		),
	}
}

// ShortHelp returns the bindings shown in the one-line help view
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Down, k.Up, k.Confirm, k.Search, k.Cancel, k.Help}
}

// FullHelp returns the bindings shown in the expanded help view
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Down, k.Up, k.Confirm, k.Cancel},
		{k.LineDown, k.LineUp, k.Top, k.Bottom, k.PageUp, k.PageDown},
		{k.PickNth, k.PickLast, k.Search, k.Quit},
		{k.ClearQuery, k.ExitSearch, k.Help},
	}
}
