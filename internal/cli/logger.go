package cli

import (
	"log/slog"
	"os"
	"path/filepath"

	"mdnotes/internal/store"
)

// newTUILogger returns a logger for the interactive TUI. The TUI owns the
// terminal, so diagnostics go to a file under the user config dir instead
// of stderr; when that fails, logging is disabled rather than corrupting
// the display.
func newTUILogger() *slog.Logger {
	dir, err := store.ConfigDir()
	if err != nil {
		return slog.New(slog.DiscardHandler)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return slog.New(slog.DiscardHandler)
	}
	f, err := os.OpenFile(filepath.Join(dir, "mdnotes.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(f, nil))
}

// newCommandLogger returns a logger for one-shot commands, which can use
// stderr freely.
func newCommandLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
}
