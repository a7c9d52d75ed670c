package logbuf

import "time"

// Severity classifies a log entry. The set is closed: persisted level
// masks and the per-severity counters both depend on severityCount.
type Severity uint8

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError

	severityCount = 3
)

// String returns the lowercase name used in config files and status text.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Tag returns the fixed-width (4 byte) export tag for the severity.
func (s Severity) Tag() string {
	switch s {
	case SeverityWarning:
		return "WARN"
	case SeverityError:
		return "ERR "
	default:
		return "INFO"
	}
}

// LevelMask selects which severities pass the filter, one bit per severity.
type LevelMask uint8

const (
	MaskInfo    LevelMask = 1 << SeverityInfo
	MaskWarning LevelMask = 1 << SeverityWarning
	MaskError   LevelMask = 1 << SeverityError
	MaskAll               = MaskInfo | MaskWarning | MaskError
)

// Has reports whether the mask admits the given severity.
func (m LevelMask) Has(s Severity) bool {
	return m&(1<<s) != 0
}

// Toggle flips the bit for the given severity.
func (m LevelMask) Toggle(s Severity) LevelMask {
	return m ^ (1 << s)
}

// Span locates an entry's text inside the arena. Offset is absolute
// (the arena's infinite logical stream), so spans stay valid across
// compaction without any fixup pass.
type Span struct {
	Offset uint64
	Length uint32
}

// End returns the absolute offset one past the last byte of the span.
func (s Span) End() uint64 {
	return s.Offset + uint64(s.Length)
}

// Entry is the metadata for one retained log line. Entries are values
// stored in ring slots and are overwritten in place when a slot is reused.
type Entry struct {
	Severity Severity
	Span     Span
	At       time.Time
}
