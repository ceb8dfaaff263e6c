package notfound

import (
	"fmt"

	"github.com/42-short/council/internal/tui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var codeStyle = tui.Bold.Foreground(tui.Accent).MarginBottom(1)

type Maker struct{}

func (mm *Maker) Make(path string, width, height int) (tea.Model, error) {
	return model{path: path, width: width, height: height}, nil
}

type model struct {
	path   string
	width  int
	height int
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m model) Title() string {
	return tui.Bold.Render("Not found")
}

func (m model) View() string {
	content := lipgloss.JoinVertical(lipgloss.Center,
		codeStyle.Render("404"),
		fmt.Sprintf("no page at %s", m.path),
		tui.Regular.Foreground(tui.Muted).Render("press esc to go back"),
	)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}
