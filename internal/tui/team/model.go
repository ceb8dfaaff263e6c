package team

import (
	_ "embed"
	"fmt"

	"github.com/42-short/council/internal/tui"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/lipgloss"
)

//go:embed team.md
var content string

type Maker struct{}

func (mm *Maker) Make(_ string, width, height int) (tea.Model, error) {
	m := model{viewport: viewport.New(max(0, width-tui.ScrollbarWidth), height)}
	if err := m.render(); err != nil {
		return nil, err
	}
	return m, nil
}

type model struct {
	viewport viewport.Model
}

func newRenderer(width int) (*glamour.TermRenderer, error) {
	return glamour.NewTermRenderer(
		glamour.WithStandardStyle(styles.TokyoNightStyle),
		glamour.WithWordWrap(max(0, width-2)),
	)
}

// render renders the markdown, wrapped to the viewport width, into the
// viewport.
func (m *model) render() error {
	renderer, err := newRenderer(m.viewport.Width)
	if err != nil {
		return fmt.Errorf("constructing markdown renderer: %w", err)
	}
	out, err := renderer.Render(content)
	if err != nil {
		return fmt.Errorf("rendering team page: %w", err)
	}
	m.viewport.SetContent(out)
	return nil
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewport.Width = max(0, msg.Width-tui.ScrollbarWidth)
		m.viewport.Height = msg.Height
		if err := m.render(); err != nil {
			return m, tui.ReportError(err, "resizing team page")
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m model) Title() string {
	return tui.Bold.Render("My Team")
}

func (m model) View() string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		m.viewport.View(),
		tui.Scrollbar(m.viewport),
	)
}

func (m model) HelpBindings() []key.Binding {
	return []key.Binding{
		m.viewport.KeyMap.Up,
		m.viewport.KeyMap.Down,
	}
}
