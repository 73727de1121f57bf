// Package logging builds the leveled console logger shared by the store and
// the front ends. Output goes to stderr so the shell protocol on stdout stays
// clean.
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// DefaultLevel keeps the logger quiet unless something goes wrong.
const DefaultLevel = "warn"

// Options holds configuration for the console logger.
type Options struct {
	Level           string
	ReportTimestamp bool
	Prefix          string
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		Level:  DefaultLevel,
		Prefix: "todo",
	}
}

// ParseLevel validates a level name (debug, info, warn, error, fatal).
func ParseLevel(name string) (log.Level, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = DefaultLevel
	}
	lvl, err := log.ParseLevel(name)
	if err != nil {
		return log.InfoLevel, fmt.Errorf("log level %q: %w", name, err)
	}
	return lvl, nil
}

// New creates a text logger writing to w.
func New(w io.Writer, opts Options) (*log.Logger, error) {
	lvl, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}
	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		Formatter:       log.TextFormatter,
		ReportTimestamp: opts.ReportTimestamp,
		Prefix:          opts.Prefix,
	}), nil
}
