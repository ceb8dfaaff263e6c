// Package logs is the page listing the application's log messages, newest
// first.
package logs

import (
	"slices"
	"strings"

	"github.com/42-short/council/internal/logging"
	"github.com/42-short/council/internal/pubsub"
	"github.com/42-short/council/internal/tui"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/exp/maps"
)

const timeFormat = "2006-01-02T15:04:05.000"

var (
	timeStyle = tui.Regular.Foreground(tui.Muted)
	keyStyle  = tui.Bold
)

type Maker struct {
	Logger *logging.Logger
}

func (mm *Maker) Make(_ string, width, height int) (tea.Model, error) {
	m := model{
		viewport: viewport.New(max(0, width-tui.ScrollbarWidth), height),
		messages: make(map[uint]logging.Message),
	}
	for _, msg := range mm.Logger.List() {
		m.messages[msg.Serial] = msg
	}
	m.render()
	return m, nil
}

type model struct {
	viewport viewport.Model
	// messages keyed by serial: a message may be both listed upon making the
	// model and then received as an event.
	messages map[uint]logging.Message
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case pubsub.Event[logging.Message]:
		if msg.Type == pubsub.CreatedEvent {
			m.messages[msg.Payload.Serial] = msg.Payload
			m.render()
		}
		return m, nil
	case tea.WindowSizeMsg:
		m.viewport.Width = max(0, msg.Width-tui.ScrollbarWidth)
		m.viewport.Height = msg.Height
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *model) render() {
	sorted := maps.Values(m.messages)
	slices.SortFunc(sorted, logging.BySerialDesc)

	lines := make([]string, len(sorted))
	for i, msg := range sorted {
		lines[i] = renderMessage(msg)
	}
	m.viewport.SetContent(strings.Join(lines, "\n"))
}

func renderMessage(msg logging.Message) string {
	var levelColor lipgloss.TerminalColor
	switch msg.Level {
	case "ERROR":
		levelColor = tui.ErrorLogLevel
	case "WARN":
		levelColor = tui.WarnLogLevel
	case "DEBUG":
		levelColor = tui.DebugLogLevel
	default:
		levelColor = tui.InfoLogLevel
	}

	var b strings.Builder
	b.WriteString(timeStyle.Render(msg.Time.Format(timeFormat)))
	b.WriteRune(' ')
	// Width of widest level, ERROR
	b.WriteString(tui.Bold.Foreground(levelColor).Width(5).Render(msg.Level))
	b.WriteRune(' ')
	b.WriteString(msg.Message)
	for _, attr := range msg.Attributes {
		b.WriteRune(' ')
		b.WriteString(keyStyle.Render(attr.Key + "="))
		b.WriteString(attr.Value)
	}
	return b.String()
}

func (m model) Title() string {
	return tui.Bold.Render("Logs")
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
