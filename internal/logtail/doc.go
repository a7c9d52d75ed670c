// Package logtail reads log files for ingestion into the console buffer.
//
// # Overview
//
// Two readers cover the console's two admission paths. Tail extracts
// the last N lines of a file in one pass using a ring buffer of size N,
// so startup cost is O(file) time but only O(N) memory; its result
// seeds the buffer through the synchronous ingestion source. Follower
// remembers a byte offset and returns only the lines appended since
// the previous poll, for the background poller that pushes new lines
// between render cycles.
//
// # Severity parsing
//
// ParseSeverity scans a line's fields for a conventional level token
// (ERROR, WARN, INFO and friends, bare or bracketed). Unrecognized
// lines are treated as info rather than dropped: the buffer is a
// retention window, not a validator.
//
// # Error handling
//
// A missing file is not an error; both readers return nil lines so
// the console can run before its sources exist. A file that shrinks
// under a Follower is re-read from the start. Real I/O failures are
// returned wrapped.
package logtail
