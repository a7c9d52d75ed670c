// Package prefs handles logdeck user preferences persistence.
// Preferences are stored in ~/.config/logdeck/prefs.toml.
package prefs

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/logdeck/logdeck/internal/logbuf"
)

// Prefs holds user preferences for logdeck.
type Prefs struct {
	Theme  string   `toml:"theme"`
	Levels []string `toml:"levels"` // severities shown by default
	Follow bool     `toml:"follow"`
}

const (
	defaultPrefsPath = "~/.config/logdeck/prefs.toml"
	defaultTheme     = "dark"
)

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

func defaults() Prefs {
	return Prefs{
		Theme:  defaultTheme,
		Levels: []string{"info", "warning", "error"},
		Follow: true,
	}
}

// Mask converts the persisted level names into a filter mask. Unknown
// names are ignored; an empty or all-unknown list falls back to all
// levels so a bad prefs file never blanks the view on startup.
func (p Prefs) Mask() logbuf.LevelMask {
	var mask logbuf.LevelMask
	for _, name := range p.Levels {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "info":
			mask |= logbuf.MaskInfo
		case "warning", "warn":
			mask |= logbuf.MaskWarning
		case "error", "err":
			mask |= logbuf.MaskError
		}
	}
	if mask == 0 {
		return logbuf.MaskAll
	}
	return mask
}

// SetMask records a filter mask as level names for persistence.
func (p *Prefs) SetMask(mask logbuf.LevelMask) {
	p.Levels = p.Levels[:0]
	if mask.Has(logbuf.SeverityInfo) {
		p.Levels = append(p.Levels, "info")
	}
	if mask.Has(logbuf.SeverityWarning) {
		p.Levels = append(p.Levels, "warning")
	}
	if mask.Has(logbuf.SeverityError) {
		p.Levels = append(p.Levels, "error")
	}
}

// Load reads preferences from the given path, falling back to defaults
// on any failure. Preferences are never load-bearing, so every error
// degrades gracefully.
func Load(path string) Prefs {
	prefs := defaults()

	resolved, err := resolvePath(path)
	if err != nil {
		return prefs
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return prefs
		}
		return prefs
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return prefs
	}

	if err := toml.Unmarshal(bytes, &prefs); err != nil {
		return defaults()
	}

	if strings.TrimSpace(prefs.Theme) == "" {
		prefs.Theme = defaultTheme
	}
	return prefs
}

// Save writes preferences to the given path, creating directories as needed.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	dir := filepath.Dir(resolved)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	bytes, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	if err := os.WriteFile(resolved, bytes, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}

	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultPrefsPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
