package app

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
)

func TestQuit(t *testing.T) {
	t.Parallel()

	tm := setup(t)

	tm.Send(tea.KeyMsg{
		Type: tea.KeyCtrlC,
	})

	waitForText(t, tm, "Quit council? (y/N): ")

	tm.Send(tea.KeyMsg{
		Type:  tea.KeyRunes,
		Runes: []rune{'y'},
	})

	tm.WaitFinished(t, teatest.WithFinalTimeout(time.Second))
}
