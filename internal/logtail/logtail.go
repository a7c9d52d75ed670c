package logtail

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/logdeck/logdeck/internal/logbuf"
)

// Line is one severity-tagged log line ready for ingestion.
type Line struct {
	Severity logbuf.Severity
	Text     string
}

// Tail returns at most maxLines from the end of the file at path,
// severity-parsed and in chronological order. A missing file yields
// nil, nil so the console can start before its sources exist.
func Tail(path string, maxLines int) ([]Line, error) {
	if maxLines <= 0 {
		return nil, nil
	}
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	ring := make([]string, maxLines)
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	count := 0
	idx := 0
	for scanner.Scan() {
		ring[idx] = scanner.Text()
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	lines := make([]Line, 0, count)
	if count == maxLines {
		for i := 0; i < count; i++ {
			lines = append(lines, parseLine(ring[(idx+i)%maxLines]))
		}
	} else {
		for i := 0; i < count; i++ {
			lines = append(lines, parseLine(ring[i]))
		}
	}
	return lines, nil
}

// Follower tracks a read position in a growing log file and returns
// the lines appended since the previous poll.
type Follower struct {
	path   string
	offset int64
}

// NewFollower creates a follower positioned at the current end of the
// file, so the first Poll only reports lines written afterwards. A
// missing file positions the follower at the start.
func NewFollower(path string) *Follower {
	f := &Follower{path: path}
	if info, err := os.Stat(path); err == nil {
		f.offset = info.Size()
	}
	return f
}

// Path returns the followed file path.
func (f *Follower) Path() string {
	return f.path
}

// Poll reads complete lines appended since the last call. When the
// file shrank underneath us (truncated in place) the follower restarts
// from the beginning rather than erroring.
func (f *Follower) Poll() ([]Line, error) {
	file, err := os.Open(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat log: %w", err)
	}
	if info.Size() < f.offset {
		f.offset = 0
	}
	if info.Size() == f.offset {
		return nil, nil
	}

	if _, err := file.Seek(f.offset, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seek log: %w", err)
	}

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	var lines []Line
	consumed := f.offset
	for scanner.Scan() {
		consumed += int64(len(scanner.Bytes())) + 1
		if consumed > info.Size() {
			// Final line has no newline yet; leave it for the next poll.
			break
		}
		lines = append(lines, parseLine(scanner.Text()))
		f.offset = consumed
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}
	return lines, nil
}

func parseLine(text string) Line {
	return Line{Severity: ParseSeverity(text), Text: text}
}

// ParseSeverity maps the level token of a log line to a severity.
// Lines without a recognizable token count as info.
func ParseSeverity(line string) logbuf.Severity {
	for _, field := range strings.Fields(line) {
		switch strings.Trim(field, "[]():") {
		case "ERROR", "ERR", "FATAL", "error", "err", "fatal":
			return logbuf.SeverityError
		case "WARN", "WARNING", "warn", "warning":
			return logbuf.SeverityWarning
		case "INFO", "DEBUG", "TRACE", "info", "debug", "trace":
			return logbuf.SeverityInfo
		}
	}
	return logbuf.SeverityInfo
}

// Source adapts a slice of lines into an ingestion source for
// logbuf.Console.Ingest. An empty slice yields a nil source.
func Source(lines []Line) logbuf.Source {
	if len(lines) == 0 {
		return nil
	}
	return func(yield func(logbuf.Severity, string) bool) {
		for _, l := range lines {
			if !yield(l.Severity, l.Text) {
				return
			}
		}
	}
}
