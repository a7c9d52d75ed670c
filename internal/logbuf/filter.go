package logbuf

import (
	"strings"
	"time"
)

// SetCriteria stores the level mask and substring query. It only marks
// the cached view dirty when the criteria actually changed; the rescan
// happens lazily before the next read of the filtered view.
func (c *Console) SetCriteria(mask LevelMask, query string) {
	if mask == c.mask && query == c.query {
		return
	}
	c.mask = mask
	c.query = query
	c.folded = strings.ToLower(query)
	c.dirty = true
}

// Criteria returns the current level mask and query.
func (c *Console) Criteria() (LevelMask, string) {
	return c.mask, c.query
}

// RowCount returns the number of entries passing the current criteria.
func (c *Console) RowCount() int {
	c.rebuild()
	return len(c.filtered)
}

// Row returns the entry at the given filtered row (0 = oldest passing
// entry). The text is copied out of the arena, so it survives later
// ingestion. The caller guarantees row < RowCount().
func (c *Console) Row(row int) (Severity, string, time.Time) {
	c.rebuild()
	e := c.ring.entryAt(c.filtered[row])
	return e.Severity, c.ring.text(e), e.At
}

// rebuild rescans every live entry and recollects the passing logical
// indices in oldest-to-newest order. Deliberately not incremental: the
// window is bounded and an eviction shifts every logical index, so a
// full O(count) pass per cycle with new data is the simpler contract.
func (c *Console) rebuild() {
	if !c.dirty {
		return
	}
	c.filtered = c.filtered[:0]
	for i := 0; i < c.ring.count; i++ {
		e := c.ring.entryAt(i)
		if !c.mask.Has(e.Severity) {
			continue
		}
		if c.folded != "" && !containsFold(c.ring.arena.read(e.Span), c.folded) {
			continue
		}
		c.filtered = append(c.filtered, i)
	}
	c.dirty = false
	if c.lastJump >= len(c.filtered) {
		c.lastJump = 0
	}
}

// containsFold reports whether needle occurs in haystack under
// ASCII-only case folding (A-Z vs a-z; no locale rules). needle must
// already be lowercase. Scans without allocating, since it runs per
// entry on every rebuild.
func containsFold(haystack []byte, needle string) bool {
	if len(needle) > len(haystack) {
		return false
	}
	for i := 0; i+len(needle) <= len(haystack); i++ {
		if foldEqual(haystack[i:i+len(needle)], needle) {
			return true
		}
	}
	return false
}

func foldEqual(b []byte, lower string) bool {
	for i := 0; i < len(lower); i++ {
		ch := b[i]
		if ch >= 'A' && ch <= 'Z' {
			ch += 'a' - 'A'
		}
		if ch != lower[i] {
			return false
		}
	}
	return true
}
