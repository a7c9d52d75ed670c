package logbuf

import (
	"iter"
	"sync"
	"time"
)

// Source yields (severity, message) items synchronously during an
// ingestion cycle, for producers that stream without buffering.
type Source = iter.Seq2[Severity, string]

// Console is the log buffer facade handed to the rendering layer: a
// bounded window of recent entries plus a cached filtered view over it.
//
// Everything except Push runs on the render goroutine. Push may be
// called from other goroutines; the pending queue is the only shared
// boundary and carries its own lock.
type Console struct {
	mu      sync.Mutex
	pending []pendingItem

	ring *ring

	mask   LevelMask
	query  string
	folded string // query lowercased once, for the ASCII fold scan

	filtered []int // logical ring indices passing the criteria, oldest first
	dirty    bool

	scrollTarget    int
	hasScrollTarget bool
	lastJump        int
}

type pendingItem struct {
	sev  Severity
	text string
}

// New creates a console retaining at most capacity entries. A
// non-positive capacity selects a default sized for interactive use.
func New(capacity int) *Console {
	return &Console{
		ring: newRing(capacity),
		mask: MaskAll,
	}
}

// Push queues a message for the next ingestion cycle. It never blocks
// beyond the queue lock and is safe to call from any goroutine.
func (c *Console) Push(sev Severity, text string) {
	c.mu.Lock()
	c.pending = append(c.pending, pendingItem{sev: sev, text: text})
	c.mu.Unlock()
}

// Ingest runs one cycle: it commits everything queued by Push in
// arrival order, then drains src (which may be nil), then runs the
// arena compaction check once. It reports whether any committed item
// carried error severity, so callers can surface a badge.
func (c *Console) Ingest(src Source) bool {
	c.mu.Lock()
	batch := c.pending
	c.pending = nil
	c.mu.Unlock()

	now := time.Now()
	hadError := false
	committed := false

	for _, item := range batch {
		c.ring.insert(item.sev, item.text, now)
		hadError = hadError || item.sev == SeverityError
		committed = true
	}
	if src != nil {
		for sev, text := range src {
			c.ring.insert(sev, text, now)
			hadError = hadError || sev == SeverityError
			committed = true
		}
	}

	if committed {
		c.dirty = true
	}
	c.ring.arena.maybeCompact()
	return hadError
}

// Clear drops every retained entry, the filter cache, and any pending
// scroll target. Criteria are kept.
func (c *Console) Clear() {
	c.ring.clear()
	c.filtered = c.filtered[:0]
	c.dirty = false
	c.hasScrollTarget = false
	c.lastJump = 0
}

// SeverityCounts returns the number of live entries per severity,
// indexed by Severity. The counters are maintained incrementally and
// ignore the filter criteria.
func (c *Console) SeverityCounts() [3]int {
	return c.ring.counts
}

// EntryCount returns the number of live entries regardless of filter.
func (c *Console) EntryCount() int {
	return c.ring.count
}

// Capacity returns the fixed retention limit.
func (c *Console) Capacity() int {
	return c.ring.capacity()
}
