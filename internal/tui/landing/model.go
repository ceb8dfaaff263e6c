// Package landing is the landing page: a heading above a carousel of day
// cards.
package landing

import (
	"fmt"

	"github.com/42-short/council/internal/tui"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const Heading = "Rust Piscine"

const (
	cardWidth  = 30
	cardHeight = 9
)

var (
	headingStyle = tui.Bold.Foreground(tui.Accent).MarginBottom(1)
	cardStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(tui.Muted)
	cardHeaderStyle = tui.Bold.
			Background(tui.CardHeaderBackground).
			Padding(0, 2).
			Width(cardWidth)
	cardBodyStyle = tui.Bold.
			Width(cardWidth).
			Height(cardHeight).
			Align(lipgloss.Center, lipgloss.Center)
	arrowStyle = tui.Regular.Foreground(tui.Muted).Padding(0, 1)
)

type Maker struct {
	// Days is the number of day cards in the carousel.
	Days int
}

func (mm *Maker) Make(_ string, width, height int) (tea.Model, error) {
	if mm.Days < 1 {
		return nil, fmt.Errorf("invalid number of days: %d", mm.Days)
	}
	p := paginator.New()
	p.Type = paginator.Dots
	p.PerPage = 1
	p.SetTotalPages(mm.Days)
	p.ActiveDot = tui.Bold.Foreground(tui.Accent).Render("•")
	p.InactiveDot = tui.Regular.Foreground(tui.Muted).Render("•")

	return model{
		carousel: p,
		width:    width,
		height:   height,
	}, nil
}

type model struct {
	carousel paginator.Model
	width    int
	height   int
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		var cmd tea.Cmd
		m.carousel, cmd = m.carousel.Update(msg)
		return m, cmd
	}
	return m, nil
}

// Day returns the day shown on the current card, starting at 1.
func (m model) Day() int {
	return m.carousel.Page + 1
}

func (m model) Title() string {
	return tui.Bold.Render("Home")
}

func (m model) View() string {
	card := cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		cardHeaderStyle.Render(fmt.Sprintf("Day %d", m.Day())),
		cardBodyStyle.Render(fmt.Sprintf("%d", m.Day())),
	))

	prev, next := " ", " "
	if !m.carousel.OnFirstPage() {
		prev = "‹"
	}
	if !m.carousel.OnLastPage() {
		next = "›"
	}
	carousel := lipgloss.JoinHorizontal(lipgloss.Center,
		arrowStyle.Render(prev),
		card,
		arrowStyle.Render(next),
	)

	content := lipgloss.JoinVertical(lipgloss.Center,
		headingStyle.Render(Heading),
		carousel,
		m.carousel.View(),
	)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m model) HelpBindings() []key.Binding {
	return []key.Binding{
		key.NewBinding(
			key.WithKeys(m.carousel.KeyMap.PrevPage.Keys()...),
			key.WithHelp("←/h", "previous day"),
		),
		key.NewBinding(
			key.WithKeys(m.carousel.KeyMap.NextPage.Keys()...),
			key.WithHelp("→/l", "next day"),
		),
	}
}
