package navigator

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Go sends an instruction to navigate to the page at path.
func Go(path string) tea.Cmd {
	return func() tea.Msg {
		return GoMsg(path)
	}
}

// GoMsg is an instruction to navigate to the page at a path.
type GoMsg string
