package logbuf

import "strings"

// ExportText renders every currently filtered entry as
// "[TAG] text\n", oldest to newest, with the fixed-width severity tags
// INFO, WARN and "ERR ". The result is an owned string suitable for
// writing to a file or the clipboard.
func (c *Console) ExportText() string {
	c.rebuild()
	var b strings.Builder
	for _, idx := range c.filtered {
		e := c.ring.entryAt(idx)
		b.WriteByte('[')
		b.WriteString(e.Severity.Tag())
		b.WriteString("] ")
		b.Write(c.ring.arena.read(e.Span))
		b.WriteByte('\n')
	}
	return b.String()
}
