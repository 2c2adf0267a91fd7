// Package logging installs the process-wide slog logger. clockr owns the
// terminal while it runs, so logs go to a file in the data directory.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// FileName is the log file created inside the data directory.
const FileName = "clockr.log"

// Setup opens <dir>/clockr.log with a single rotated history file (.1),
// installs a text handler at level as slog.Default and returns the file so
// callers can close it on shutdown.
func Setup(dir string, level slog.Level) (*os.File, error) {
	if dir == "" {
		return nil, fmt.Errorf("log directory is empty")
	}

	path := filepath.Join(dir, FileName)

	// Remove existing history to keep only one backup
	_ = os.Remove(path + ".1")

	if _, err := os.Stat(path); err == nil {
		if err := os.Rename(path, path+".1"); err != nil {
			return nil, fmt.Errorf("failed to rotate existing log: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}

	slog.SetDefault(New(f, level))

	return f, nil
}

// New builds the text logger used throughout clockr.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})).
		With("app", "clockr")
}
