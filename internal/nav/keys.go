package nav

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Trigger key.Binding
	Up      key.Binding
	Down    key.Binding
	Select  key.Binding
	Jump    key.Binding
	Dismiss key.Binding
	Next    key.Binding
	Prev    key.Binding
}

// Keys are the key bindings of the navigation bar.
var Keys = keyMap{
	Trigger: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "menu"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "go"),
	),
	Jump: key.NewBinding(
		key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
		key.WithHelp("1-9", "go to page"),
	),
	Dismiss: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "close menu"),
	),
	Next: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next page"),
	),
	Prev: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "previous page"),
	),
}
