package logbuf

import "time"

// MaxMessageLen bounds the stored size of a single message, truncation
// marker included. Longer messages keep their first MaxMessageLen-3
// bytes followed by a literal "...".
const MaxMessageLen = 4096

const defaultCapacity = 10_000

const truncationMarker = "..."

// ring is a fixed-capacity circular buffer of entry metadata with FIFO
// eviction. Logical index 0 is the oldest entry; logical index i lives
// in slot (head+i) % cap. Entry text is stored in the arena, and
// eviction advances the arena head so dead text can be reclaimed.
type ring struct {
	arena  arena
	slots  []Entry
	head   int
	count  int
	counts [severityCount]int
}

func newRing(capacity int) *ring {
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	return &ring{slots: make([]Entry, capacity)}
}

// insert commits one message. When the ring is full the oldest entry is
// evicted first: its severity counter drops and the arena head moves to
// the end of its span. Oversized text is truncated per MaxMessageLen.
func (r *ring) insert(sev Severity, text string, now time.Time) {
	if r.count == len(r.slots) {
		evicted := r.slots[r.head]
		r.counts[evicted.Severity]--
		r.arena.advanceHead(evicted.Span.End())
		r.head = (r.head + 1) % len(r.slots)
	} else {
		r.count++
	}
	slot := (r.head + r.count - 1) % len(r.slots)

	var span Span
	if len(text) > MaxMessageLen {
		// Two consecutive appends keep the span contiguous.
		span.Offset = r.arena.appendString(text[:MaxMessageLen-len(truncationMarker)])
		r.arena.appendString(truncationMarker)
		span.Length = MaxMessageLen
	} else {
		span.Offset = r.arena.appendString(text)
		span.Length = uint32(len(text))
	}

	r.slots[slot] = Entry{Severity: sev, Span: span, At: now}
	r.counts[sev]++
}

// entryAt returns the entry at logical index i, 0 = oldest. The caller
// guarantees i < count.
func (r *ring) entryAt(i int) Entry {
	return r.slots[(r.head+i)%len(r.slots)]
}

// text returns the arena bytes for an entry as a string copy, safe to
// hold across later inserts and compactions.
func (r *ring) text(e Entry) string {
	return string(r.arena.read(e.Span))
}

// clear empties the ring and the arena. Slot contents are left as
// garbage; they are unreachable until overwritten.
func (r *ring) clear() {
	r.head = 0
	r.count = 0
	r.counts = [severityCount]int{}
	r.arena.reset()
}

func (r *ring) capacity() int { return len(r.slots) }
