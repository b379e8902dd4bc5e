package picker

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the session picker.
type KeyMap struct {
	Connect key.Binding
	Close   key.Binding
	Refresh key.Binding
	Quit    key.Binding
	Yes     key.Binding
	No      key.Binding
}

// DefaultKeyMap is the default set of keybindings.
var DefaultKeyMap = KeyMap{
	Connect: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "connect"),
	),
	Close: key.NewBinding(
		key.WithKeys("ctrl+x"),
		key.WithHelp("ctrl+x", "close session"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("ctrl+r"),
		key.WithHelp("ctrl+r", "refresh"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
	Yes: key.NewBinding(
		key.WithKeys("y", "Y", "enter"),
		key.WithHelp("y", "close session"),
	),
	No: key.NewBinding(
		key.WithKeys("n", "N", "esc"),
		key.WithHelp("n/esc", "cancel"),
	),
}

// ShortHelp returns keybindings to be shown in the list's help line.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Connect, k.Close, k.Refresh}
}
