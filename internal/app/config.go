package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/42-short/council/internal/logging"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
	"github.com/peterbourgon/ff/v4/ffyaml"
)

const (
	defaultBreakpoint = 80
	defaultDays       = 5
	maxDays           = 31
)

type config struct {
	FirstPage  string
	Breakpoint int
	Days       int
	Debug      bool
	Mouse      bool
	Version    bool

	loggingOptions logging.Options
}

// set config in order of precedence:
// 1. flags > 2. env vars > 3. config file
func parse(stderr io.Writer, args []string) (config, error) {
	var cfg config

	home, err := os.UserHomeDir()
	if err != nil {
		return config{}, fmt.Errorf("retrieving user's home directory: %w", err)
	}
	defaultConfigFile := filepath.Join(home, ".council.yaml")

	fs := ff.NewFlagSet("council")
	fs.StringVar(&cfg.FirstPage, 'f', "first-page", "/", "The path of the first page to show.")
	fs.IntVar(&cfg.Breakpoint, 'b', "breakpoint", defaultBreakpoint, "Terminal width at or above which navigation is shown inline rather than in a menu.")
	fs.IntVar(&cfg.Days, 0, "days", defaultDays, "The number of day cards on the landing page.")
	fs.BoolVar(&cfg.Debug, 'd', "debug", "Log bubbletea messages to messages.log")
	fs.BoolVar(&cfg.Mouse, 0, "mouse", "Enable mouse support.")
	fs.BoolVar(&cfg.Version, 'v', "version", "Print version.")
	_ = fs.String('c', "config", defaultConfigFile, "Path to config file.")

	{
		usage := fmt.Sprintf("Logging level (valid: %s).", strings.Join(logging.ValidLevels(), ","))
		fs.StringEnumVar(&cfg.loggingOptions.Level, 'l', "log-level", usage, logging.ValidLevels()...)
	}

	err = ff.Parse(fs, args,
		ff.WithEnvVarPrefix("COUNCIL"),
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ffyaml.Parse),
		ff.WithConfigAllowMissingFile(),
	)
	if err != nil {
		// ff.Parse returns an error if there is an error or if -h/--help is
		// passed; in either case print flag usage in addition to error message.
		fmt.Fprintln(stderr, ffhelp.Flags(fs))
		return config{}, err
	}

	if err := cfg.validate(); err != nil {
		return config{}, err
	}
	return cfg, nil
}

func (cfg config) validate() error {
	if cfg.Breakpoint < 1 {
		return fmt.Errorf("breakpoint must be positive: %d", cfg.Breakpoint)
	}
	if cfg.Days < 1 || cfg.Days > maxDays {
		return fmt.Errorf("days must be between 1 and %d: %d", maxDays, cfg.Days)
	}
	if !strings.HasPrefix(cfg.FirstPage, "/") {
		return fmt.Errorf("first page must begin with /: %q", cfg.FirstPage)
	}
	return nil
}
