// Package log holds the process-wide zerolog logger used for diagnostics.
// Diagnostics go to stderr so they never interleave with the progress lines
// printed on stdout.
package log

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Config captures options for configuring the global logger.
type Config struct {
	Level   string    // optional log level ("debug", "info", etc.)
	Output  io.Writer // optional writer (defaults to os.Stderr)
	Console bool      // human-readable output instead of JSON lines
}

var (
	mu   sync.RWMutex
	base = New(Config{})
)

// New builds a logger from cfg without touching the global one.
// Unknown or empty levels fall back to CHART_UPLOADER_LOG_LEVEL, then warn.
func New(cfg Config) zerolog.Logger {
	level := zerolog.WarnLevel
	if parsed, ok := parseLevel(cfg.Level); ok {
		level = parsed
	} else if parsed, ok := parseLevel(os.Getenv("CHART_UPLOADER_LOG_LEVEL")); ok {
		level = parsed
	}

	writer := cfg.Output
	if writer == nil {
		writer = os.Stderr
	}
	if cfg.Console {
		writer = zerolog.ConsoleWriter{Out: writer, TimeFormat: time.Kitchen, NoColor: true}
	}

	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}

// Configure replaces the global logger. The CLI calls it once after flags
// are parsed.
func Configure(cfg Config) {
	l := New(cfg)
	mu.Lock()
	base = l
	mu.Unlock()
}

// Base returns the configured base logger instance.
func Base() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return base
}

// WithComponent returns a child logger annotated with the given component name.
func WithComponent(component string) zerolog.Logger {
	return Base().With().Str("component", component).Logger()
}

func parseLevel(s string) (zerolog.Level, bool) {
	if s == "" {
		return zerolog.NoLevel, false
	}
	l, err := zerolog.ParseLevel(s)
	if err != nil {
		return zerolog.NoLevel, false
	}
	return l, true
}
