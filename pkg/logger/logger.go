package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

const serviceName = "split-wallet-engine"

// New creates the process logger. level: debug, info, warn, error.
// pretty switches to human-readable console output.
func New(level string, pretty bool) zerolog.Logger {
	var w io.Writer = os.Stdout
	if pretty {
		w = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}
	return build(w, level).With().Caller().Logger()
}

// NewWithWriter creates a logger writing JSON to w.
func NewWithWriter(level string, w io.Writer) zerolog.Logger {
	return build(w, level)
}

// Component returns a child logger tagged with the emitting subsystem.
func Component(log zerolog.Logger, name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

// Critical starts an error-level event tagged for paging. zerolog has no
// level above error that does not exit or panic.
func Critical(log zerolog.Logger) *zerolog.Event {
	return log.Error().Str("severity", "critical")
}

func build(w io.Writer, level string) zerolog.Logger {
	return zerolog.New(w).
		Level(parseLevel(level)).
		With().
		Timestamp().
		Str("service", serviceName).
		Logger()
}

// parseLevel accepts the four configured levels; anything else is info.
func parseLevel(level string) zerolog.Level {
	switch lvl, err := zerolog.ParseLevel(level); {
	case err != nil:
		return zerolog.InfoLevel
	case lvl < zerolog.DebugLevel, lvl > zerolog.ErrorLevel:
		return zerolog.InfoLevel
	default:
		return lvl
	}
}
