package logging

import (
	"io"
	"log/slog"
	"os"
)

var (
	// Logger is the global structured logger
	Logger *slog.Logger

	// level is shared by every handler Setup installs.
	level = new(slog.LevelVar)
)

func init() {
	Logger = slog.New(newHandler(os.Stderr, false))
}

func newHandler(w io.Writer, jsonOutput bool) slog.Handler {
	opts := &slog.HandlerOptions{Level: level}
	if jsonOutput {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

// Setup points the logger at w (stderr when nil) in text or JSON form.
// Debug records are only emitted when verbose is set.
func Setup(verbose bool, jsonOutput bool, w io.Writer) {
	if w == nil {
		w = os.Stderr
	}

	if verbose {
		level.Set(slog.LevelDebug)
	} else {
		level.Set(slog.LevelInfo)
	}
	Logger = slog.New(newHandler(w, jsonOutput))
}

// Debug logs a debug message
func Debug(msg string, args ...any) {
	Logger.Debug(msg, args...)
}

// Warn logs a warning message
func Warn(msg string, args ...any) {
	Logger.Warn(msg, args...)
}
