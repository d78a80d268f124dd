// Package logging builds the charmbracelet/log loggers used by the
// simulator: a diagnostics logger and a plain announcer for score lines.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/slider-pong/internal/pong"
)

// New creates the diagnostics logger writing to w at the named level
// ("debug", "info", "warn", "error").
func New(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "pong",
		Level:           lvl,
	})
	return logger, nil
}

// OpenFile opens path for appending, creating parent directories.
// An empty path returns io.Discard wrapped as a no-op closer.
func OpenFile(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{io.Discard}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("logging: cannot create directory for %s: %w", path, err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("logging: cannot open %s: %w", path, err)
	}
	return f, nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// Announcer prints score lines through a bare logger: no level, prefix or
// timestamp, so the console shows exactly the announcement.
type Announcer struct {
	logger *log.Logger
}

// NewAnnouncer creates an announcer writing to w.
func NewAnnouncer(w io.Writer) *Announcer {
	return &Announcer{logger: log.NewWithOptions(w, log.Options{})}
}

// Announce prints the score line.
func (a *Announcer) Announce(ev pong.ScoreEvent) {
	a.logger.Print(ev.String())
}
