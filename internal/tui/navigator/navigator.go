package navigator

import (
	"fmt"
	"strings"

	"github.com/42-short/council/internal/logging"
	"github.com/42-short/council/internal/tui"
	tea "github.com/charmbracelet/bubbletea"
)

// Navigator navigates the user from page to page, creating and caching
// models accordingly. Pages are identified by their path.
type Navigator struct {
	// history tracks the paths a user has visited, in LIFO order.
	history []string
	// cache each model visited, keyed by path
	cache *cache
	// directory of model makers for each path
	makers map[string]tui.Maker
	// notFound makes the model for any path without a maker
	notFound tui.Maker
	// navigator needs to know width and height when making a model
	width  int
	height int

	logger logging.Interface
}

type Options struct {
	FirstPage string
	Makers    map[string]tui.Maker
	NotFound  tui.Maker
	Logger    logging.Interface
	Width     int
	Height    int
}

func New(opts Options) (*Navigator, error) {
	if opts.NotFound == nil {
		return nil, fmt.Errorf("a not found maker is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard
	}
	n := &Navigator{
		makers:   opts.Makers,
		notFound: opts.NotFound,
		cache:    newCache(),
		width:    opts.Width,
		height:   opts.Height,
		logger:   logger,
	}
	// ignore returned init cmd; instead the main model should invoke it
	if _, err := n.visit(opts.FirstPage); err != nil {
		return nil, err
	}
	return n, nil
}

func (n *Navigator) SetHeight(h int) {
	n.height = h
}

func (n *Navigator) SetWidth(w int) {
	n.width = w
}

// CurrentPath returns the path of the current page.
func (n *Navigator) CurrentPath() string {
	return n.history[len(n.history)-1]
}

// IsActive reports whether path is the path of the current page.
func (n *Navigator) IsActive(path string) bool {
	return normalize(path) == n.CurrentPath()
}

func (n *Navigator) CurrentModel() tea.Model {
	return n.cache.get(n.CurrentPath())
}

// Update handles navigation messages, returning the Init command of a newly
// made page.
func (n *Navigator) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case GoMsg:
		init, err := n.visit(string(msg))
		if err != nil {
			return tui.ReportError(err, "navigating to %s", string(msg))
		}
		return init
	}
	return nil
}

func (n *Navigator) visit(path string) (tea.Cmd, error) {
	path = normalize(path)

	// Silently ignore the user's request to navigate again to the current page.
	if len(n.history) > 0 && path == n.CurrentPath() {
		return nil, nil
	}

	// Check target page model is cached; if not then create and cache it
	var created bool
	if !n.cache.exists(path) {
		maker, ok := n.makers[path]
		if !ok {
			n.logger.Warn("no page found", "path", path)
			maker = n.notFound
		}
		model, err := maker.Make(path, n.width, n.height)
		if err != nil {
			return nil, fmt.Errorf("making page: %w", err)
		}
		n.cache.put(path, model)
		created = true
	}
	n.history = append(n.history, path)
	n.logger.Debug("navigating", "path", path, "history", len(n.history))

	if created {
		return n.CurrentModel().Init(), nil
	}
	return nil, nil
}

func (n *Navigator) UpdateCurrent(msg tea.Msg) tea.Cmd {
	return n.cache.update(n.CurrentPath(), msg)
}

func (n *Navigator) UpdateAll(msg tea.Msg) []tea.Cmd {
	return n.cache.updateAll(msg)
}

// GoBack returns to the previous page, reporting whether there was one.
func (n *Navigator) GoBack() bool {
	if len(n.history) == 1 {
		// Refuse to go back further than the first page.
		return false
	}
	// Pop current page from history
	n.history = n.history[:len(n.history)-1]
	n.logger.Debug("navigating back", "path", n.CurrentPath())
	return true
}

// normalize strips any trailing slash, other than the root path's.
func normalize(path string) string {
	if path == "" {
		return "/"
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
		if path == "" {
			return "/"
		}
	}
	return path
}
