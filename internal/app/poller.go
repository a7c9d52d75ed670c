package app

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/logdeck/logdeck/internal/logbuf"
	"github.com/logdeck/logdeck/internal/logtail"
)

const (
	defaultPollInterval = 2 * time.Second
	maxBackoff          = 30 * time.Second
)

// pollSource wraps a follower with failure tracking so a broken file
// backs off instead of being hammered every tick.
type pollSource struct {
	follower *logtail.Follower
	failures int
	retryAt  time.Time
}

// StartPoller launches a background goroutine that reads new lines from
// every follower at a fixed cadence and pushes them into the console.
// It returns immediately.
func StartPoller(ctx context.Context, console *logbuf.Console, followers []*logtail.Follower, interval time.Duration, diag zerolog.Logger) {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	sources := make([]*pollSource, len(followers))
	for i, f := range followers {
		sources[i] = &pollSource{follower: f}
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			pollAll(console, sources, interval, diag)
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()
}

func pollAll(console *logbuf.Console, sources []*pollSource, interval time.Duration, diag zerolog.Logger) {
	now := time.Now()
	for _, src := range sources {
		if now.Before(src.retryAt) {
			continue
		}
		lines, err := src.follower.Poll()
		if err != nil {
			src.failures++
			src.retryAt = now.Add(calculateBackoff(src.failures, interval))
			diag.Warn().Err(err).Str("path", src.follower.Path()).Int("failures", src.failures).Msg("poll failed")
			if src.failures == 1 {
				console.Push(logbuf.SeverityWarning, fmt.Sprintf("logdeck: cannot read %s: %v", src.follower.Path(), err))
			}
			continue
		}
		if src.failures > 0 {
			src.failures = 0
			src.retryAt = time.Time{}
		}
		for _, line := range lines {
			console.Push(line.Severity, line.Text)
		}
	}
}

// calculateBackoff returns the poll delay after the given number of
// consecutive failures, doubling from the base interval and capped at
// maxBackoff.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return base
	}
	backoff := base << failures
	if backoff > maxBackoff || backoff <= 0 {
		return maxBackoff
	}
	return backoff
}
