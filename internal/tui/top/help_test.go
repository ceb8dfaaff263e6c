package top

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func Test_shortHelpView(t *testing.T) {
	bindings := []key.Binding{
		key.NewBinding(key.WithHelp("a", "aaa")),
		key.NewBinding(key.WithHelp("b", "bbb")),
		key.NewBinding(key.WithHelp("c", "ccc")),
	}
	tests := []struct {
		name     string
		maxWidth int
		want     string
	}{
		{"all fit", 30, "a aaa   b bbb   c ccc"},
		{"truncated", 15, "a aaa   b bbb"},
		{"none fit", 3, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := shortHelpView(bindings, tt.maxWidth)
			assert.Equal(t, tt.want, got)
		})
	}
}

func Test_fullHelpView(t *testing.T) {
	got := ansi.Strip(fullHelpView(
		[]key.Binding{key.NewBinding(key.WithHelp("h", "previous day"))},
		[]key.Binding{key.NewBinding(key.WithHelp("m", "menu"))},
		[]key.Binding{key.NewBinding(key.WithHelp("?", "help"))},
	))

	lines := strings.Split(got, "\n")
	assert.Len(t, lines, 2)
	assert.Regexp(t, `PAGE\s+NAVIGATION\s+GENERAL`, lines[0])
	assert.Regexp(t, `h previous day\s+m menu\s+\? help`, lines[1])
}
