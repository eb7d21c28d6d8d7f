// Package logging builds the leveled console loggers used across dayplan.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// Options controls logger construction.
type Options struct {
	Level           log.Level
	ReportTimestamp bool
	Prefix          string
}

// DefaultOptions logs warnings and above without timestamps.
func DefaultOptions() Options {
	return Options{
		Level:  log.WarnLevel,
		Prefix: "dayplan",
	}
}

// New returns a logger writing to w.
func New(w io.Writer, opts Options) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           opts.Level,
		ReportTimestamp: opts.ReportTimestamp,
		Prefix:          opts.Prefix,
	})
}

// FromEnv builds a stderr logger whose level comes from DAYPLAN_LOG_LEVEL.
// verbose forces debug output.
func FromEnv(verbose bool) *log.Logger {
	opts := DefaultOptions()
	if lvl := strings.TrimSpace(os.Getenv("DAYPLAN_LOG_LEVEL")); lvl != "" {
		if parsed, err := log.ParseLevel(lvl); err == nil {
			opts.Level = parsed
		}
	}
	if verbose {
		opts.Level = log.DebugLevel
		opts.ReportTimestamp = true
	}
	return New(os.Stderr, opts)
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return New(io.Discard, DefaultOptions())
}
