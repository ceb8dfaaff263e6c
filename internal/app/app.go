// package app is the main entrypoint into the application, responsible for
// configuring and starting the application.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/42-short/council/internal/logging"
	"github.com/42-short/council/internal/nav"
	"github.com/42-short/council/internal/tui/top"
	"github.com/42-short/council/internal/version"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/peterbourgon/ff/v4"
)

// Start the app, blocking until the user quits.
func Start(stdout, stderr io.Writer, args []string) error {
	cfg, err := parse(stderr, args)
	if errors.Is(err, ff.ErrHelp) {
		return nil
	} else if err != nil {
		return err
	}

	// Print version if requested
	if cfg.Version {
		fmt.Fprintln(stdout, version.Version)
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	app, m, err := newApp(cfg)
	if err != nil {
		return err
	}

	opts := []tea.ProgramOption{
		// use the full size of the terminal with its "alternate screen buffer"
		tea.WithAltScreen(),
	}
	if cfg.Mouse {
		// Disables selecting text with the mouse.
		opts = append(opts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(m, opts...)

	wait := app.start(ctx, p)
	// Stop relaying events before waiting for the relay to finish.
	defer wait()
	defer cancel()

	// Blocks until user quits
	_, err = p.Run()
	return err
}

type app struct {
	logger *logging.Logger
}

// sender sends messages to a running TUI.
type sender interface {
	Send(tea.Msg)
}

func newApp(cfg config) (*app, tea.Model, error) {
	// Setup logging
	logger := logging.NewLogger(cfg.loggingOptions)
	slog.SetDefault(logger.Logger)

	entries, err := nav.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("loading navigation: %w", err)
	}
	logger.Info("loaded navigation", "entries", entries.Len())

	m, err := top.New(top.Options{
		Logger:     logger,
		Nav:        entries,
		FirstPage:  cfg.FirstPage,
		Breakpoint: cfg.Breakpoint,
		Days:       cfg.Days,
		Debug:      cfg.Debug,
	})
	if err != nil {
		return nil, nil, err
	}
	return &app{logger: logger}, m, nil
}

// start relays log events to the TUI until the context is canceled. The
// returned func blocks until the relay has finished.
func (a *app) start(ctx context.Context, s sender) (wait func()) {
	var wg sync.WaitGroup

	sub := a.logger.Subscribe(ctx)
	wg.Add(1)
	go func() {
		defer wg.Done()
		for ev := range sub {
			s.Send(ev)
		}
	}()
	return wg.Wait
}
