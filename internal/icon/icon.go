// Package icon maps icon names to the glyphs rendered in the terminal.
package icon

import (
	"fmt"
	"slices"

	"golang.org/x/exp/maps"
)

// Name references an icon.
type Name string

const (
	Home    Name = "home"
	Info    Name = "info"
	Menu    Name = "menu"
	Warning Name = "warning"
	Message Name = "message"
	GitHub  Name = "github"
)

var glyphs = map[Name]string{
	Home:    "⌂",
	Info:    "ⓘ",
	Menu:    "☰",
	Warning: "⚠",
	Message: "✉",
	GitHub:  "⎇",
}

// fallback is rendered for an empty or unknown name, keeping rows aligned.
const fallback = "•"

// Glyph returns the glyph for the named icon.
func Glyph(name Name) string {
	if g, ok := glyphs[name]; ok {
		return g
	}
	return fallback
}

// Validate returns an error if name is non-empty and unknown.
func Validate(name Name) error {
	if name == "" {
		return nil
	}
	if _, ok := glyphs[name]; !ok {
		return fmt.Errorf("unknown icon %q, must be one of: %v", name, Names())
	}
	return nil
}

// Names returns the known icon names in alphabetical order.
func Names() []Name {
	names := maps.Keys(glyphs)
	slices.Sort(names)
	return names
}
