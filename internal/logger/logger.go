// Package logger builds the diagnostics logger. The TUI owns the terminal,
// so logs always go to a file.
package logger

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// New opens (or creates) the log file at path and returns a JSON logger
// writing to it, plus a close func. An empty level means "info".
func New(path, level string) (zerolog.Logger, func() error, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("mkdir log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("open log file: %w", err)
	}

	log := zerolog.New(zerolog.SyncWriter(f)).Level(lvl).With().Timestamp().Logger()
	return log, f.Close, nil
}
