package logbuf

// ScrollTo records a one-shot scroll target: a filtered row the
// rendering layer should bring into view on its next pass. It also
// anchors NextMatching's wrap-around scan at that row.
func (c *Console) ScrollTo(row int) {
	c.scrollTarget = row
	c.hasScrollTarget = true
	c.lastJump = row
}

// TakeScrollTarget returns and clears the pending scroll target.
func (c *Console) TakeScrollTarget() (int, bool) {
	if !c.hasScrollTarget {
		return 0, false
	}
	c.hasScrollTarget = false
	return c.scrollTarget, true
}

// NextMatching finds the next filtered row of the given severity,
// starting just after the last jumped-to row and wrapping to the start
// when the end is reached. It returns false only when no filtered
// entry has that severity at all. On a hit the row becomes the new
// anchor for the following call.
func (c *Console) NextMatching(sev Severity) (int, bool) {
	c.rebuild()
	n := len(c.filtered)
	if n == 0 {
		return 0, false
	}
	start := c.lastJump
	for i := 1; i <= n; i++ {
		row := (start + i) % n
		e := c.ring.entryAt(c.filtered[row])
		if e.Severity == sev {
			c.lastJump = row
			return row, true
		}
	}
	return 0, false
}
