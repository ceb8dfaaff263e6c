package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Maker makes the model for the page at path.
type Maker interface {
	Make(path string, width, height int) (tea.Model, error)
}

// ModelHelpBindings is implemented by models that surface a list of their key
// bindings in the help widget.
type ModelHelpBindings interface {
	HelpBindings() []key.Binding
}

// ModelTitle is implemented by models that render a title above their
// content.
type ModelTitle interface {
	Title() string
}
