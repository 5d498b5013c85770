package demo

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the demo's key bindings. Tab selection itself is mouse only.
type KeyMap struct {
	Quit        key.Binding
	Help        key.Binding
	NewTab      key.Binding
	ToggleClose key.Binding
	Activate    key.Binding
	Find        key.Binding
	Confirm     key.Binding
	Cancel      key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		NewTab: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new tab"),
		),
		ToggleClose: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "close buttons"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "press"),
		),
		Find: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "find tab"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "add"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NewTab, k.ToggleClose, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NewTab, k.ToggleClose},
		{k.Activate, k.Find},
		{k.Help, k.Quit},
	}
}
