// Package logging builds the file-backed logger. The TUI owns the
// terminal, so diagnostics go to a log file under the config dir.
package logging

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// NewFileLogger returns a logger appending to path, creating the parent
// directory if needed. When the file cannot be opened, logging is
// disabled rather than failing startup.
func NewFileLogger(path string, level zerolog.Level) zerolog.Logger {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return zerolog.Nop()
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return zerolog.Nop()
	}
	return zerolog.New(f).Level(level).With().Timestamp().Logger()
}
