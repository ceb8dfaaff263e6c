package top

import (
	"github.com/42-short/council/internal/tui"
	"github.com/42-short/council/internal/tui/landing"
	"github.com/42-short/council/internal/tui/logs"
	"github.com/42-short/council/internal/tui/team"
)

const (
	HomePath = "/"
	TeamPath = "/about"
	LogsPath = "/logs"
)

// makeMakers returns the page makers, keyed by path.
func makeMakers(opts Options) map[string]tui.Maker {
	return map[string]tui.Maker{
		HomePath: &landing.Maker{Days: opts.Days},
		TeamPath: &team.Maker{},
		LogsPath: &logs.Maker{Logger: opts.Logger},
	}
}
