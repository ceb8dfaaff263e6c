package top

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

var (
	shortHelpKeyStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
		Light: "248",
		Dark:  "#626262",
	}).Bold(true).Margin(0, 1, 0, 0)

	shortHelpDescStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
		Light: "#B2B2B2",
		Dark:  "#4A4A4A",
	})
)

// shortHelpSeparator separates bindings in the short help.
const shortHelpSeparator = "   "

// shortHelpView renders help for key bindings on a single line, omitting any
// bindings that would exceed the maximum width.
func shortHelpView(bindings []key.Binding, maxWidth int) string {
	var (
		items []string
		width int
	)
	for _, b := range bindings {
		item := shortHelpKeyStyle.Render(b.Help().Key) + shortHelpDescStyle.Render(b.Help().Desc)
		itemWidth := lipgloss.Width(item)
		if len(items) > 0 {
			itemWidth += len(shortHelpSeparator)
		}
		if width+itemWidth > maxWidth {
			break
		}
		width += itemWidth
		items = append(items, item)
	}
	return strings.Join(items, shortHelpSeparator)
}

var (
	longHelpHeadingStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
		Light: "#909090",
		Dark:  "#626262",
	}).Bold(true).Margin(0, 3, 0, 0)

	longHelpKeyStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
		Light: "#909090",
		Dark:  "#626262",
	}).Bold(true).Margin(0, 1, 0, 0)

	longHelpDescStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
		Light: "#B2B2B2",
		Dark:  "#4A4A4A",
	}).Margin(0, 3, 0, 0)
)

// fullHelpView renders a table of three columns describing the key bindings,
// categorised into page, navigation, and general keys.
func fullHelpView(page, navigation, general []key.Binding) string {
	return lipgloss.JoinHorizontal(
		lipgloss.Left,
		helpColumn("PAGE", page),
		helpColumn("NAVIGATION", navigation),
		helpColumn("GENERAL", general),
	)
}

func helpColumn(heading string, bindings []key.Binding) string {
	keys := make([]string, len(bindings))
	descs := make([]string, len(bindings))
	for i, kb := range bindings {
		keys[i] = longHelpKeyStyle.Render(kb.Help().Key)
		descs[i] = longHelpDescStyle.Render(kb.Help().Desc)
	}
	return lipgloss.JoinVertical(lipgloss.Top,
		longHelpHeadingStyle.Render(heading),
		lipgloss.JoinHorizontal(lipgloss.Left,
			strings.Join(keys, "\n"),
			strings.Join(descs, "\n"),
		),
	)
}
