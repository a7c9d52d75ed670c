package app

import (
	"context"
	"fmt"
	"time"

	"github.com/logdeck/logdeck/internal/config"
	"github.com/logdeck/logdeck/internal/logbuf"
	"github.com/logdeck/logdeck/internal/logtail"
	"github.com/logdeck/logdeck/internal/prefs"
	"github.com/logdeck/logdeck/internal/ui"
)

// Options configure the logdeck application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/logdeck/prefs.toml
	PollEvery  int    // seconds; zero uses the config value
}

// Run boots the logdeck TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	userPrefs := prefs.Load(opts.PrefsPath)

	diag, closeDiag := newDiagLogger(cfg.DiagLogPath)
	defer closeDiag()

	console := logbuf.New(cfg.Capacity)
	console.SetCriteria(userPrefs.Mask(), "")

	// Seed the window from the tail of each configured file through the
	// synchronous ingestion source, then follow growth via the poller.
	followers := make([]*logtail.Follower, 0, len(cfg.LogPaths))
	for _, path := range cfg.LogPaths {
		lines, err := logtail.Tail(path, cfg.TailLines)
		if err != nil {
			diag.Warn().Err(err).Str("path", path).Msg("seed tail failed")
			console.Push(logbuf.SeverityWarning, fmt.Sprintf("logdeck: cannot read %s: %v", path, err))
		}
		console.Ingest(logtail.Source(lines))
		followers = append(followers, logtail.NewFollower(path))
	}

	interval := time.Duration(cfg.PollSeconds) * time.Second
	if opts.PollEvery > 0 {
		interval = time.Duration(opts.PollEvery) * time.Second
	}

	StartPoller(ctx, console, followers, interval, diag)

	uiOpts := ui.Options{
		Context:   ctx,
		Console:   console,
		Prefs:     userPrefs,
		PrefsPath: opts.PrefsPath,
		ExportDir: cfg.ExportDir,
		PollTick:  interval,
	}
	diag.Info().Int("sources", len(followers)).Int("capacity", console.Capacity()).Msg("starting ui")
	return ui.Run(uiOpts)
}
