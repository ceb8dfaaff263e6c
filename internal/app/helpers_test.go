package app

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/42-short/council/internal/logging"
	"github.com/charmbracelet/x/ansi"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/stretchr/testify/require"
)

type setupOption func(*setupOptions)

type setupOptions struct {
	firstPage string
	width     int
}

func withFirstPage(path string) setupOption {
	return func(opts *setupOptions) {
		opts.firstPage = path
	}
}

func withWidth(width int) setupOption {
	return func(opts *setupOptions) {
		opts.width = width
	}
}

func setup(t *testing.T, sopts ...setupOption) *teatest.TestModel {
	t.Helper()

	opts := setupOptions{
		firstPage: "/",
		width:     100,
	}
	for _, fn := range sopts {
		fn(&opts)
	}

	// Cancel context once test finishes.
	ctx, cancel := context.WithCancel(context.Background())

	app, m, err := newApp(
		config{
			FirstPage:  opts.firstPage,
			Breakpoint: defaultBreakpoint,
			Days:       defaultDays,
			loggingOptions: logging.Options{
				Level: "debug",
				AdditionalWriters: []io.Writer{
					&testLogger{t},
				},
			},
		},
	)
	require.NoError(t, err)

	tm := teatest.NewTestModel(
		t,
		m,
		teatest.WithInitialTermSize(opts.width, 30),
	)
	wait := app.start(ctx, tm)
	t.Cleanup(func() {
		cancel()
		wait()
	})
	return tm
}

// testLogger relays log records to the go test logger
type testLogger struct {
	t *testing.T
}

func (l *testLogger) Write(b []byte) (int, error) {
	l.t.Helper()

	l.t.Log(string(b))
	return len(b), nil
}

// waitFor waits for the condition to be true for the output of the TUI,
// with any styling removed.
func waitFor(t *testing.T, tm *teatest.TestModel, cond func(s string) bool) {
	t.Helper()

	teatest.WaitFor(
		t,
		tm.Output(),
		func(b []byte) bool {
			return cond(ansi.Strip(string(b)))
		},
		teatest.WithCheckInterval(time.Millisecond*100),
		teatest.WithDuration(time.Second*10),
	)
}

func waitForText(t *testing.T, tm *teatest.TestModel, text string) {
	t.Helper()

	waitFor(t, tm, func(s string) bool {
		return strings.Contains(s, text)
	})
}
