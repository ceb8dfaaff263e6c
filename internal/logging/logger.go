package logging

import (
	"io"
	"log/slog"
	"slices"

	"github.com/42-short/council/internal/pubsub"
	"golang.org/x/exp/maps"
)

const DefaultLevel = "info"

var levels = map[string]slog.Level{
	"debug":      slog.LevelDebug,
	DefaultLevel: slog.LevelInfo,
	"warn":       slog.LevelWarn,
	"error":      slog.LevelError,
}

// ValidLevels returns valid strings for choosing a log level. Returns the
// default log level first.
func ValidLevels() []string {
	keys := maps.Keys(levels)
	slices.SortFunc(keys, func(a, b string) int {
		if a == DefaultLevel {
			return -1
		}
		if b == DefaultLevel {
			return 1
		}
		// Sort remaining in alphabetical order.
		if a < b {
			return -1
		}
		return 1
	})
	return keys
}

// Interface is the logging interface accepted by components that don't need
// access to the captured messages.
type Interface interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// NewLogger constructs Logger, a slog wrapper with additional functionality.
func NewLogger(opts Options) *Logger {
	broker := pubsub.NewBroker[Message]()
	writer := &writer{broker: broker}

	handler := slog.NewTextHandler(
		io.MultiWriter(append(opts.AdditionalWriters, writer)...),
		&slog.HandlerOptions{
			Level: levels[opts.Level],
		},
	)

	return &Logger{
		Logger: slog.New(handler),
		Broker: broker,
		writer: writer,
	}
}

type Options struct {
	// The log level of the logger
	Level string
	// Any additional writers the log handler should write to.
	AdditionalWriters []io.Writer
}

// Logger wraps slog, keeping a copy of every record in memory and emitting
// each record as an event.
type Logger struct {
	*slog.Logger
	*pubsub.Broker[Message]

	writer *writer
}

// List lists the log messages received thus far.
func (l *Logger) List() []Message {
	return l.writer.list()
}
