package nav

// PanelState is the open/closed state of the slide-out panel.
type PanelState int

const (
	Closed PanelState = iota
	Open
)

func (s PanelState) String() string {
	if s == Open {
		return "open"
	}
	return "closed"
}

// Toggle returns the opposite state.
func (s PanelState) Toggle() PanelState {
	if s == Open {
		return Closed
	}
	return Open
}

// Mode is the presentation variant of the navigation bar.
type Mode int

const (
	// Narrow presents the entries in a slide-out panel.
	Narrow Mode = iota
	// Wide presents the entries inline.
	Wide
)

// ModeFor returns the mode for a terminal of the given width.
func ModeFor(width, breakpoint int) Mode {
	if width >= breakpoint {
		return Wide
	}
	return Narrow
}
