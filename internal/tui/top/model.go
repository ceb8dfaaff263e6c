package top

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/42-short/council/internal/logging"
	"github.com/42-short/council/internal/nav"
	"github.com/42-short/council/internal/tui"
	"github.com/42-short/council/internal/tui/keys"
	"github.com/42-short/council/internal/tui/navigator"
	"github.com/42-short/council/internal/tui/notfound"
	"github.com/42-short/council/internal/version"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"
)

const (
	titleHeight  = 1
	footerHeight = 1
)

type model struct {
	router *navigator.Navigator
	bar    nav.Bar

	width  int
	height int

	showHelp bool

	showQuitPrompt bool
	quitPrompt     textinput.Model

	// Either an error or an informational message is rendered in the footer.
	err  error
	info string

	logger logging.Interface
	dump   io.Writer
}

type Options struct {
	Logger     *logging.Logger
	Nav        nav.Model
	FirstPage  string
	Breakpoint int
	Days       int
	Debug      bool
}

// New constructs the top-level TUI model.
func New(opts Options) (tea.Model, error) {
	if opts.Logger == nil {
		return nil, errors.New("a logger is required")
	}

	var dump io.Writer
	if opts.Debug {
		f, err := os.OpenFile("messages.log", os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("opening debug log: %w", err)
		}
		dump = f
	}

	router, err := navigator.New(navigator.Options{
		FirstPage: opts.FirstPage,
		Makers:    makeMakers(opts),
		NotFound:  &notfound.Maker{},
		Logger:    opts.Logger,
	})
	if err != nil {
		return nil, err
	}

	return model{
		router: router,
		bar:    nav.NewBar(opts.Nav, router.IsActive, opts.Breakpoint),
		logger: opts.Logger,
		dump:   dump,
	}, nil
}

func (m model) Init() tea.Cmd {
	return m.router.CurrentModel().Init()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		cmd  tea.Cmd
		cmds []tea.Cmd
	)

	if m.dump != nil {
		spew.Fdump(m.dump, msg)
	}

	if m.showQuitPrompt {
		switch msg := msg.(type) {
		case tea.KeyMsg:
			switch {
			case key.Matches(msg, keys.Global.Quit):
				// pressing ctrl-c again quits the app
				return m, tea.Quit
			case key.Matches(msg, localKeys.Yes):
				// 'y' quits the app
				return m, tea.Quit
			default:
				// any other key closes the prompt and returns to the app
				m.showQuitPrompt = false
				m.info = "canceled quitting"
			}
		}
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		m.bar, _ = m.bar.Update(msg)

		// Inform navigator of new dimensions for when it makes new pages
		m.router.SetWidth(m.width)
		m.router.SetHeight(m.bodyHeight())

		// Forward resized body to all cached pages.
		cmds = append(cmds, m.router.UpdateAll(tea.WindowSizeMsg{
			Width:  m.width,
			Height: m.bodyHeight(),
		})...)
	case tea.MouseMsg:
		m.bar, cmd = m.bar.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		// Pressing any key makes any info/error message in the footer disappear
		m.info = ""
		m.err = nil

		switch {
		case key.Matches(msg, keys.Global.Quit):
			// ctrl-c quits the app, but not before prompting the user for
			// confirmation.
			m.quitPrompt = textinput.New()
			m.quitPrompt.Prompt = ""
			m.quitPrompt.Focus()
			m.showQuitPrompt = true
			return m, textinput.Blink
		case m.bar.Captures(msg):
			m.bar, cmd = m.bar.Update(msg)
			return m, cmd
		case key.Matches(msg, keys.Global.Back):
			// <esc> closes help or goes back to last page
			if m.showHelp {
				m.showHelp = false
			} else if !m.router.GoBack() {
				return m, tui.ReportInfo("no previous page")
			}
		case key.Matches(msg, keys.Global.Help):
			m.showHelp = !m.showHelp
		case key.Matches(msg, keys.Global.Logs):
			return m, navigator.Go(LogsPath)
		default:
			// Send other keys to current page.
			return m, m.router.UpdateCurrent(msg)
		}
	case navigator.GoMsg:
		m.showHelp = false
		cmds = append(cmds, m.router.Update(msg))
	case tui.ErrorMsg:
		if msg.Error != nil {
			err := msg.Error
			msg := fmt.Sprintf(msg.Message, msg.Args...)

			// Both print error in footer as well as log it.
			m.err = fmt.Errorf("%s: %w", msg, err)
			m.logger.Error(msg, "error", err)
		}
	case tui.InfoMsg:
		m.info = string(msg)
	default:
		// Send remaining msg types to all cached pages
		cmds = append(cmds, m.router.UpdateAll(msg)...)
	}
	return m, tea.Batch(cmds...)
}

// bodyHeight is the height available to the current page.
func (m model) bodyHeight() int {
	return max(0, m.height-nav.HeaderHeight-titleHeight-footerHeight)
}

var (
	pathStyle  = tui.Regular.Foreground(tui.Muted)
	errorStyle = tui.Padded.Foreground(tui.Red)
	infoStyle  = tui.Padded
)

func (m model) View() string {
	var (
		content           string
		shortHelpBindings []key.Binding
	)

	current := m.router.CurrentModel()

	var pageBindings []key.Binding
	if bindings, ok := current.(tui.ModelHelpBindings); ok {
		pageBindings = bindings.HelpBindings()
	}

	if m.showHelp {
		content = lipgloss.NewStyle().
			Margin(1).
			Render(
				fullHelpView(
					pageBindings,
					keys.KeyMapToSlice(nav.Keys),
					keys.KeyMapToSlice(keys.Global),
				),
			)
		shortHelpBindings = []key.Binding{
			key.NewBinding(
				key.WithKeys("?"),
				key.WithHelp("?", "close help"),
			),
		}
	} else if m.showQuitPrompt {
		content = lipgloss.NewStyle().
			Margin(0, 1).
			Render(fmt.Sprintf("Quit council? (y/N): %s", m.quitPrompt.View()))
	} else {
		content = current.View()
		shortHelpBindings = append(m.bar.HelpBindings(), pageBindings...)
		shortHelpBindings = append(shortHelpBindings, keys.Global.Help, keys.Global.Quit)
	}

	// Render page title, with the page's path on the right.
	var title string
	if titled, ok := current.(tui.ModelTitle); ok {
		title = titled.Title()
	}
	path := pathStyle.Render(m.router.CurrentPath())
	titleLine := tui.Padded.Render(title) + lipgloss.PlaceHorizontal(
		max(0, m.width-tui.Width(title)-2),
		lipgloss.Right,
		path+" ",
	)

	main := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().MaxWidth(m.width).Inline(true).Render(titleLine),
		lipgloss.NewStyle().
			Height(m.bodyHeight()).
			MaxHeight(m.bodyHeight()).
			Render(content),
	)
	if m.bar.Open() {
		panel := m.bar.PanelView(titleHeight + m.bodyHeight())
		main = lipgloss.JoinHorizontal(lipgloss.Top,
			panel,
			lipgloss.NewStyle().MaxWidth(max(0, m.width-nav.PanelWidth)).Render(main),
		)
	}

	// Version goes in the bottom right corner of the footer.
	metadata := tui.Padded.Render(version.Version)

	// Render any error/info message, otherwise short help, in the bottom left
	// corner of the footer, using whatever space is remaining to the left of
	// the metadata.
	available := max(0, m.width-tui.Width(metadata))
	var footerMsg string
	if m.err != nil {
		footerMsg = errorStyle.Render("Error: " + m.err.Error())
	} else if m.info != "" {
		footerMsg = infoStyle.Render(m.info)
	} else {
		footerMsg = " " + shortHelpView(shortHelpBindings, max(0, available-1))
	}
	footer := lipgloss.JoinHorizontal(lipgloss.Left,
		lipgloss.NewStyle().
			Inline(true).
			MaxWidth(available).
			Width(available).
			Render(footerMsg),
		metadata,
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		m.bar.View(),
		main,
		footer,
	)
}
