package nav

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func init() {
	// Render styles so that active and inactive entries can be told apart.
	lipgloss.SetColorProfile(termenv.TrueColor)
}
