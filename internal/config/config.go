package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the fields logdeck needs to run.
type Config struct {
	LogPaths    []string // files to tail into the console
	Capacity    int      // retained entries in the buffer
	TailLines   int      // lines seeded from the end of each file at startup
	PollSeconds int      // follower poll cadence
	DiagLogPath string   // logdeck's own diagnostics file
	ExportDir   string   // directory for exported filtered views
}

const (
	defaultConfigPath  = "~/.config/logdeck/config.toml"
	defaultCapacity    = 10_000
	defaultTailLines   = 400
	defaultPollSeconds = 2
	defaultDiagPath    = "~/.local/share/logdeck/logdeck.log"
	defaultExportDir   = "~/.local/share/logdeck/exports"
)

// Load locates and parses the config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := defaults()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Logs        []string `toml:"logs"`
		Capacity    int      `toml:"capacity"`
		TailLines   int      `toml:"tail_lines"`
		PollSeconds int      `toml:"poll_seconds"`
		DiagLog     string   `toml:"diag_log"`
		ExportDir   string   `toml:"export_dir"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	for _, p := range raw.Logs {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			cfg.LogPaths = append(cfg.LogPaths, mustExpand(trimmed))
		}
	}
	if raw.Capacity > 0 {
		cfg.Capacity = raw.Capacity
	}
	if raw.TailLines > 0 {
		cfg.TailLines = raw.TailLines
	}
	if raw.PollSeconds > 0 {
		cfg.PollSeconds = raw.PollSeconds
	}
	if trimmed := strings.TrimSpace(raw.DiagLog); trimmed != "" {
		cfg.DiagLogPath = mustExpand(trimmed)
	}
	if trimmed := strings.TrimSpace(raw.ExportDir); trimmed != "" {
		cfg.ExportDir = mustExpand(trimmed)
	}

	return cfg, nil
}

func defaults() Config {
	return Config{
		Capacity:    defaultCapacity,
		TailLines:   defaultTailLines,
		PollSeconds: defaultPollSeconds,
		DiagLogPath: mustExpand(defaultDiagPath),
		ExportDir:   mustExpand(defaultExportDir),
	}
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
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
