// Package logging builds the CLI's slog logger.
package logging

import (
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"
)

// Level maps the number of -v flags to a log level. Without -v only
// warnings are shown.
func Level(verbosity int) slog.Level {
	switch {
	case verbosity >= 2:
		return slog.LevelDebug
	case verbosity == 1:
		return slog.LevelInfo
	default:
		return slog.LevelWarn
	}
}

// New returns a logger writing to w: text when w is a terminal, JSON
// otherwise.
func New(w io.Writer, verbosity int) *slog.Logger {
	opts := &slog.HandlerOptions{Level: Level(verbosity)}
	if isTerminal(w) {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
