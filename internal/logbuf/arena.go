package logbuf

// arena is an append-only byte store for entry text. All spans use
// absolute offsets into a logical stream that never rewinds; base is
// the absolute offset of buf[0]. Bytes between base and head belong to
// evicted entries and are dead space until the next compaction.
//
// Invariants: base <= head <= tail, and tail-base == len(buf).
type arena struct {
	buf  []byte
	base uint64 // absolute offset of buf[0]
	head uint64 // start of the oldest still-referenced text
	tail uint64 // next byte to write
}

// append writes b at the tail and returns the absolute offset where it
// begins. Growth is handled by the built-in append (amortized doubling).
func (a *arena) append(b []byte) uint64 {
	off := a.tail
	a.buf = append(a.buf, b...)
	a.tail += uint64(len(b))
	return off
}

// appendString is append for string payloads without a []byte conversion copy.
func (a *arena) appendString(s string) uint64 {
	off := a.tail
	a.buf = append(a.buf, s...)
	a.tail += uint64(len(s))
	return off
}

// read returns the bytes for span. The caller must not ask for a span
// whose entry was evicted (span.Offset >= head); the ring never does.
// The returned slice aliases the arena and is only valid until the
// next append or compaction.
func (a *arena) read(s Span) []byte {
	start := s.Offset - a.base
	return a.buf[start : start+uint64(s.Length)]
}

// advanceHead marks everything before off as dead space. Called by the
// ring right after evicting an entry, with the end of the evicted span.
func (a *arena) advanceHead(off uint64) {
	if off > a.head {
		a.head = off
	}
}

// maybeCompact reclaims dead space once it has grown to at least the
// live size, by sliding the live bytes down to position 0. Spans are
// untouched: they are absolute, and read subtracts the new base.
// Checked once per ingestion cycle, this gives amortized O(1)
// reclamation per appended byte. Returns whether a compaction ran.
func (a *arena) maybeCompact() bool {
	dead := a.head - a.base
	live := a.tail - a.head
	if dead == 0 || dead < live {
		return false
	}
	n := copy(a.buf, a.buf[dead:])
	a.buf = a.buf[:n]
	a.base = a.head
	return true
}

// reset empties the arena and rewinds all offsets to zero.
func (a *arena) reset() {
	a.buf = a.buf[:0]
	a.base = 0
	a.head = 0
	a.tail = 0
}

func (a *arena) deadSize() uint64 { return a.head - a.base }
func (a *arena) liveSize() uint64 { return a.tail - a.head }
