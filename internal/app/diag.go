package app

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// newDiagLogger opens logdeck's own diagnostics log. The TUI owns the
// terminal, so diagnostics go to a file. Any failure falls back to a
// no-op logger: diagnostics must never keep the console from starting.
func newDiagLogger(path string) (zerolog.Logger, func()) {
	if path == "" {
		return zerolog.Nop(), func() {}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return zerolog.Nop(), func() {}
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return zerolog.Nop(), func() {}
	}

	logger := zerolog.New(file).With().Timestamp().Logger()
	return logger, func() {
		_ = file.Close()
	}
}
