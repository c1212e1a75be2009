package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// newLogger returns a text logger writing to path, or a discarding logger
// when path is empty. The returned close function is never nil.
func newLogger(path string, verbose bool) (*slog.Logger, func() error, error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() error { return nil }, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600) //nolint:gosec // path comes from a command-line flag
	if err != nil {
		return nil, nil, fmt.Errorf("irena: open log file: %w", err)
	}

	return slog.New(newHandler(f, verbose)), f.Close, nil
}

func newHandler(w io.Writer, verbose bool) slog.Handler {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
}
