package nav

import (
	"strconv"
	"strings"

	"github.com/42-short/council/internal/tui"
	"github.com/42-short/council/internal/tui/navigator"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HeaderHeight is the height of the bar's header: the inline links or the
// trigger, followed by a horizontal rule.
const HeaderHeight = 2

var ruleStyle = tui.Regular.Foreground(tui.Muted)

// Bar is the navigation bar. In wide mode it renders the entries inline; in
// narrow mode it renders a trigger that toggles a panel listing the entries.
//
// Bar is not itself a tea.Model: its parent decides which messages reach it
// (see Captures) and where the panel is placed.
type Bar struct {
	model      Model
	active     ActiveFunc
	breakpoint int
	width      int

	state  PanelState
	cursor int
}

// NewBar constructs a bar. The active func is consulted on every render and
// keypress to determine the current entry.
func NewBar(model Model, active ActiveFunc, breakpoint int) Bar {
	return Bar{
		model:      model,
		active:     active,
		breakpoint: breakpoint,
	}
}

func (b Bar) Mode() Mode {
	return ModeFor(b.width, b.breakpoint)
}

func (b Bar) State() PanelState {
	return b.state
}

// Open reports whether the panel is open.
func (b Bar) Open() bool {
	return b.state == Open
}

// Captures reports whether the bar handles the key. Every key is captured
// while the panel is open.
func (b Bar) Captures(msg tea.KeyMsg) bool {
	if b.state == Open {
		return true
	}
	if b.Mode() == Narrow {
		return key.Matches(msg, Keys.Trigger)
	}
	if key.Matches(msg, Keys.Next, Keys.Prev) {
		return true
	}
	return b.jumpIndex(msg) >= 0
}

func (b Bar) Update(msg tea.Msg) (Bar, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.width = msg.Width
		if b.Mode() == Wide {
			// The panel only exists in narrow mode.
			b.state = Closed
		}
	case tea.KeyMsg:
		if b.Mode() == Wide {
			return b.updateWide(msg)
		}
		return b.updateNarrow(msg)
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return b, nil
		}
		return b.click(msg.X, msg.Y)
	}
	return b, nil
}

func (b Bar) updateWide(msg tea.KeyMsg) (Bar, tea.Cmd) {
	switch {
	case key.Matches(msg, Keys.Next):
		return b, b.selectEntry(b.step(1))
	case key.Matches(msg, Keys.Prev):
		return b, b.selectEntry(b.step(-1))
	}
	if i := b.jumpIndex(msg); i >= 0 {
		return b, b.selectEntry(i)
	}
	return b, nil
}

func (b Bar) updateNarrow(msg tea.KeyMsg) (Bar, tea.Cmd) {
	if b.state == Closed {
		if key.Matches(msg, Keys.Trigger) {
			b = b.toggle()
		}
		return b, nil
	}
	switch {
	case key.Matches(msg, Keys.Trigger, Keys.Dismiss):
		b.state = Closed
	case key.Matches(msg, Keys.Up):
		b.cursor = max(0, b.cursor-1)
	case key.Matches(msg, Keys.Down):
		b.cursor = min(b.model.Len()-1, b.cursor+1)
	case key.Matches(msg, Keys.Select):
		cmd := b.selectEntry(b.cursor)
		b.state = Closed
		return b, cmd
	default:
		if i := b.jumpIndex(msg); i >= 0 {
			cmd := b.selectEntry(i)
			b.state = Closed
			return b, cmd
		}
	}
	return b, nil
}

// toggle opens or closes the panel. Opening places the cursor on the current
// entry.
func (b Bar) toggle() Bar {
	b.state = b.state.Toggle()
	if b.state == Open {
		b.cursor = max(0, b.activeIndex())
	}
	return b
}

func (b Bar) click(x, y int) (Bar, tea.Cmd) {
	if b.Mode() == Wide {
		if y != 0 {
			return b, nil
		}
		if i := b.linkAt(x); i >= 0 {
			return b, b.selectEntry(i)
		}
		return b, nil
	}
	if y == 0 && x < triggerWidth() {
		return b.toggle(), nil
	}
	if b.state == Closed {
		return b, nil
	}
	// Any click outside the panel dismisses it.
	if x >= PanelWidth || y < HeaderHeight {
		b.state = Closed
		return b, nil
	}
	i := y - HeaderHeight - panelEntryOffset
	if i >= 0 && i < b.model.Len() {
		cmd := b.selectEntry(i)
		b.state = Closed
		return b, cmd
	}
	return b, nil
}

// linkAt returns the index of the inline link at column x, or -1.
func (b Bar) linkAt(x int) int {
	start := 1
	for i, e := range b.model.entries {
		end := start + lipgloss.Width(e.Label)
		if x >= start && x < end {
			return i
		}
		start = end + linkGap
	}
	return -1
}

// selectEntry returns the command navigating to the entry at index i.
func (b Bar) selectEntry(i int) tea.Cmd {
	if i < 0 || i >= b.model.Len() {
		return nil
	}
	return navigator.Go(b.model.entries[i].Path)
}

// step returns the index n entries along from the active entry, wrapping
// around. With no active entry the first entry is the starting point.
func (b Bar) step(n int) int {
	count := b.model.Len()
	if count == 0 {
		return -1
	}
	i := b.activeIndex()
	if i < 0 {
		if n > 0 {
			return 0
		}
		return count - 1
	}
	return ((i+n)%count + count) % count
}

func (b Bar) activeIndex() int {
	for i, e := range b.model.entries {
		if b.active(e.Path) {
			return i
		}
	}
	return -1
}

// jumpIndex returns the index of the entry selected by a digit key, or -1.
func (b Bar) jumpIndex(msg tea.KeyMsg) int {
	if !key.Matches(msg, Keys.Jump) {
		return -1
	}
	n, err := strconv.Atoi(msg.String())
	if err != nil || n > b.model.Len() {
		return -1
	}
	return n - 1
}

// View renders the header: the inline links or the trigger, followed by a
// horizontal rule.
func (b Bar) View() string {
	var line string
	if b.Mode() == Wide {
		line = RenderWide(b.model.entries, b.active)
	} else {
		line, _ = RenderNarrow(b.model.entries, b.active, b.state, b.cursor)
	}
	line = lipgloss.NewStyle().MaxWidth(b.width).Inline(true).Render(line)
	return lipgloss.JoinVertical(lipgloss.Left,
		line,
		ruleStyle.Render(strings.Repeat("─", b.width)),
	)
}

// PanelView renders the open panel at the given height, or an empty string
// if the panel is closed.
func (b Bar) PanelView(height int) string {
	if b.state == Closed {
		return ""
	}
	return renderPanel(b.model.entries, b.active, b.cursor, height)
}

func (b Bar) HelpBindings() []key.Binding {
	if b.Mode() == Wide {
		return []key.Binding{Keys.Jump, Keys.Next, Keys.Prev}
	}
	if b.state == Open {
		return []key.Binding{Keys.Up, Keys.Down, Keys.Select, Keys.Dismiss}
	}
	return []key.Binding{Keys.Trigger}
}
