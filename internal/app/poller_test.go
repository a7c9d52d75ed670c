package app

import (
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/logdeck/logdeck/internal/logbuf"
	"github.com/logdeck/logdeck/internal/logtail"
)

func TestCalculateBackoff(t *testing.T) {
	baseInterval := 2 * time.Second

	tests := []struct {
		name     string
		failures int
		want     time.Duration
	}{
		{"zero failures", 0, 2 * time.Second},
		{"negative failures", -1, 2 * time.Second},
		{"one failure", 1, 4 * time.Second},
		{"two failures", 2, 8 * time.Second},
		{"three failures", 3, 16 * time.Second},
		{"four failures capped", 4, 30 * time.Second}, // Would be 32s, capped to 30s
		{"many failures capped", 10, 30 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calculateBackoff(tt.failures, baseInterval)
			if got != tt.want {
				t.Errorf("calculateBackoff(%d, %v) = %v, want %v", tt.failures, baseInterval, got, tt.want)
			}
		})
	}
}

func TestCalculateBackoff_MaxCap(t *testing.T) {
	baseInterval := 2 * time.Second
	for failures := 0; failures <= 70; failures++ {
		got := calculateBackoff(failures, baseInterval)
		if got > maxBackoff {
			t.Errorf("calculateBackoff(%d, %v) = %v, exceeds maxBackoff %v", failures, baseInterval, got, maxBackoff)
		}
		if got <= 0 {
			t.Errorf("calculateBackoff(%d, %v) = %v, not positive", failures, baseInterval, got)
		}
	}
}

func TestPollAll_PushesNewLines(t *testing.T) {
	console := logbuf.New(100)
	sources := []*pollSource{{follower: logtail.NewFollower("/nonexistent/never/created.log")}}

	// A missing file is not a failure; it just yields nothing.
	pollAll(console, sources, time.Second, zerolog.Nop())
	console.Ingest(nil)
	if console.EntryCount() != 0 {
		t.Fatalf("EntryCount = %d, want 0", console.EntryCount())
	}
	if sources[0].failures != 0 {
		t.Fatalf("failures = %d, want 0 for missing file", sources[0].failures)
	}
}
