package main

import (
	"io"
	"log/slog"
	"os"

	slogmulti "github.com/samber/slog-multi"
)

// newLogger creates a logger to the terminal, and optionally to a JSON
// log file. The returned close function must be called when done.
func newLogger(terminal io.Writer, path string, verbose bool) (logger *slog.Logger, closer func() error, err error) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	handlers := []slog.Handler{
		slog.NewTextHandler(terminal, &slog.HandlerOptions{Level: level}),
	}

	closer = func() error { return nil }

	if len(path) != 0 {
		var logf *os.File
		logf, err = os.Create(path)
		if err != nil {
			return
		}
		closer = logf.Close
		handlers = append(handlers, slog.NewJSONHandler(logf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	logger = slog.New(slogmulti.Fanout(handlers...))
	return
}
