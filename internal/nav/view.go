package nav

import (
	"strings"

	"github.com/42-short/council/internal/icon"
	"github.com/42-short/council/internal/tui"
	"github.com/charmbracelet/lipgloss"
)

// Brand is rendered alongside the trigger and atop the panel.
const Brand = "STUDENT COUNCIL"

const (
	// PanelWidth is the width of the slide-out panel, including its border.
	PanelWidth = 25
	// panelEntryOffset is the number of panel rows above the first entry.
	panelEntryOffset = 2
	// linkGap is the number of spaces between inline links.
	linkGap = 2
)

// ActiveFunc reports whether path is the path of the current page.
type ActiveFunc func(path string) bool

var (
	activeLinkStyle   = tui.Bold.Underline(true).Foreground(tui.Accent)
	inactiveLinkStyle = tui.Regular

	activeRowStyle   = tui.Bold.Foreground(tui.Accent)
	inactiveRowStyle = tui.Regular

	brandStyle        = tui.Bold.Foreground(tui.Accent)
	triggerStyle      = tui.Bold
	panelHeadingStyle = tui.Bold.Foreground(tui.Muted)
	panelStyle        = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder(), false, true, false, false).
				BorderForeground(tui.Muted).
				Padding(0, 1).
				Width(PanelWidth - 1)
)

// linkStyle returns the style of an inline link.
func linkStyle(active bool) lipgloss.Style {
	if active {
		return activeLinkStyle
	}
	return inactiveLinkStyle
}

// rowStyle returns the style of a panel row.
func rowStyle(active bool) lipgloss.Style {
	if active {
		return activeRowStyle
	}
	return inactiveRowStyle
}

func renderLink(e Entry, active bool) string {
	return linkStyle(active).Render(e.Label)
}

// RenderWide renders one inline link per entry, in order, with the active
// entry highlighted.
func RenderWide(entries []Entry, active ActiveFunc) string {
	links := make([]string, len(entries))
	for i, e := range entries {
		links[i] = renderLink(e, active(e.Path))
	}
	return " " + strings.Join(links, strings.Repeat(" ", linkGap))
}

// RenderNarrow renders the trigger and, if the panel is open, the panel
// listing every entry in order with the active entry highlighted. The entry
// at cursor is marked; pass -1 for no cursor.
func RenderNarrow(entries []Entry, active ActiveFunc, state PanelState, cursor int) (trigger, panel string) {
	trigger = " " + triggerStyle.Render(icon.Glyph(icon.Menu)) + "  " + brandStyle.Render(Brand)
	if state == Open {
		panel = renderPanel(entries, active, cursor, 0)
	}
	return trigger, panel
}

func renderPanel(entries []Entry, active ActiveFunc, cursor, height int) string {
	rows := make([]string, 0, len(entries)+panelEntryOffset)
	rows = append(rows, panelHeadingStyle.Render(Brand), "")
	for i, e := range entries {
		prefix := "  "
		if i == cursor {
			prefix = "› "
		}
		row := icon.Glyph(e.Icon) + "  " + e.Label
		rows = append(rows, prefix+rowStyle(active(e.Path)).Render(row))
	}
	return panelStyle.Height(height).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// triggerWidth is the number of columns, from the left edge, that respond to
// a click on the trigger.
func triggerWidth() int {
	return 1 + lipgloss.Width(icon.Glyph(icon.Menu))
}
