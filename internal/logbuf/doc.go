// Package logbuf implements a bounded, high-throughput log buffer with
// incremental filtering for interactive display.
//
// # Overview
//
// A Console accepts a continuous stream of severity-tagged messages,
// retains only the most recent entries under a fixed capacity, and
// serves a filtered, searchable view of that window cheaply enough to
// be read on every render tick of a TUI.
//
// # Storage layout
//
// Entry text lives in a single append-only byte arena; entry metadata
// (severity, text span, timestamp) lives in a fixed-capacity ring of
// value slots. The two are correlated on eviction: when the ring drops
// its oldest entry, the arena head advances past that entry's span,
// turning the bytes into dead space.
//
// Spans address the arena in absolute offsets, as if the arena were an
// infinite stream. Compaction slides the live bytes down and bumps the
// base offset instead of rewriting spans, so every live entry keeps
// working across a compaction with no metadata fixup. Compaction is
// checked once per ingestion cycle and runs only when dead space has
// grown to match live space, which amortizes to O(1) reclamation per
// appended byte.
//
// # Ingestion
//
// Producers have two paths with identical ordering and truncation
// rules: Push buffers items across cycles behind a small lock, and the
// Source argument to Ingest streams items synchronously during the
// cycle. Ingest drains pending first, then the source, then runs the
// compaction check, and reports whether an error-severity item arrived.
//
// Messages longer than MaxMessageLen are stored truncated with a
// literal "..." suffix rather than rejected; nothing in this package
// returns an error.
//
// # Filtering
//
// The filtered view is a cached list of logical indices rebuilt by a
// full linear rescan whenever the criteria change or new data commits.
// The rescan is deliberately not incremental: the window is bounded,
// and eviction shifts every logical index down by one, which makes
// incremental removal far trickier than it looks. Matching is an
// ASCII-case-insensitive substring scan; there is no locale handling
// and no index.
//
// # Concurrency
//
// Except for Push, the Console belongs to one goroutine (the render
// loop). Push may be called from pollers or watchers; the pending
// queue boundary carries the only lock in the package.
package logbuf
