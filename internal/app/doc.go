// Package app wires logdeck together and owns its lifecycle.
//
// # Startup sequence
//
// Run loads the TOML config and user preferences, opens the
// diagnostics log, builds the console buffer, seeds it from the tail
// of each configured file, starts the background poller, and finally
// hands control to the Bubble Tea UI until the context is cancelled.
//
// # Data flow
//
// The poller goroutine is the only producer that runs concurrently
// with the render loop. It reads newly appended lines from each
// followed file and hands them to Console.Push, which buffers them
// behind the pending-queue lock. The UI drains that queue once per
// tick via Console.Ingest and renders whatever the filtered view
// returns. Seeding at startup takes the other admission path: the
// tailed lines stream through the synchronous ingestion source
// without intermediate buffering.
//
// # Diagnostics
//
// logdeck's own diagnostics cannot go to the terminal (the TUI owns
// it), so they are written as structured zerolog events to a file
// configured by diag_log. A failure to open that file degrades to a
// no-op logger; diagnostics never block startup.
//
// # Failure policy
//
// A source file that cannot be read gets exponential backoff (capped
// at 30s) and a single warning entry pushed into the console itself,
// so the problem is visible where the user is already looking.
package app
