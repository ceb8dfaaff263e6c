package notfound

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotFound(t *testing.T) {
	mm := &Maker{}
	m, err := mm.Make("/nowhere", 60, 10)
	require.NoError(t, err)

	view := ansi.Strip(m.View())
	assert.Contains(t, view, "404")
	assert.Contains(t, view, "no page at /nowhere")
}
