package tui

import "github.com/charmbracelet/lipgloss"

const (
	Black     = lipgloss.Color("#000000")
	Red       = lipgloss.Color("#FF5353")
	Yellow    = lipgloss.Color("#DBBD70")
	Green     = lipgloss.Color("34")
	LightGrey = lipgloss.Color("245")
	Grey      = lipgloss.Color("#737373")
	DarkGrey  = lipgloss.Color("#606362")
	White     = lipgloss.Color("#ffffff")
	Blue      = lipgloss.Color("63")
	Violet    = lipgloss.Color("#7C3AED")
)

var (
	DebugLogLevel = Blue
	InfoLogLevel  = Green
	ErrorLogLevel = Red
	WarnLogLevel  = Yellow

	// Accent is the colour of the active navigation entry and the brand.
	Accent = Violet

	Muted = lipgloss.AdaptiveColor{
		Dark:  string(LightGrey),
		Light: string(Grey),
	}

	CardHeaderBackground = lipgloss.AdaptiveColor{
		Dark:  string(DarkGrey),
		Light: "253",
	}
)
