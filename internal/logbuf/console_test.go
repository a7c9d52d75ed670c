package logbuf

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sliceSource adapts a fixed slice of items into an ingestion Source.
func sliceSource(items []pendingItem) Source {
	return func(yield func(Severity, string) bool) {
		for _, item := range items {
			if !yield(item.sev, item.text) {
				return
			}
		}
	}
}

func TestConsoleRoundTrip(t *testing.T) {
	c := New(2)
	c.Push(SeverityInfo, "a")
	c.Push(SeverityWarning, "b")
	c.Push(SeverityError, "c")
	hadError := c.Ingest(nil)

	require.True(t, hadError)
	require.Equal(t, [3]int{0, 1, 1}, c.SeverityCounts(), "a must be evicted")

	c.SetCriteria(MaskError, "")
	require.Equal(t, 1, c.RowCount())
	sev, text, _ := c.Row(0)
	assert.Equal(t, SeverityError, sev)
	assert.Equal(t, "c", text)
}

func TestConsoleExportText(t *testing.T) {
	c := New(2)
	c.Push(SeverityInfo, "a")
	c.Push(SeverityWarning, "b")
	c.Push(SeverityError, "c")
	c.Ingest(nil)

	c.SetCriteria(MaskAll, "")
	require.Equal(t, "[WARN] b\n[ERR ] c\n", c.ExportText())
}

func TestConsoleIngestOrdering(t *testing.T) {
	c := New(10)

	// Pushed items commit before the synchronous source, both in order.
	c.Push(SeverityInfo, "first")
	c.Push(SeverityInfo, "second")
	c.Ingest(sliceSource([]pendingItem{
		{SeverityInfo, "third"},
		{SeverityInfo, "fourth"},
	}))

	require.Equal(t, 4, c.RowCount())
	var got []string
	for i := 0; i < c.RowCount(); i++ {
		_, text, _ := c.Row(i)
		got = append(got, text)
	}
	require.Equal(t, []string{"first", "second", "third", "fourth"}, got)
}

func TestConsoleIngestErrorSignal(t *testing.T) {
	c := New(10)

	c.Push(SeverityInfo, "ok")
	assert.False(t, c.Ingest(nil))

	c.Push(SeverityError, "boom")
	assert.True(t, c.Ingest(nil))

	// Error arriving via the synchronous source counts too.
	assert.True(t, c.Ingest(sliceSource([]pendingItem{{SeverityError, "bang"}})))

	// A cycle with nothing new reports false.
	assert.False(t, c.Ingest(nil))
}

func TestConsoleEmptyMaskYieldsNoRows(t *testing.T) {
	c := New(10)
	c.Push(SeverityError, "visible only with a mask bit")
	c.Ingest(nil)

	c.SetCriteria(0, "")
	assert.Zero(t, c.RowCount())
	assert.Equal(t, "", c.ExportText())

	_, ok := c.NextMatching(SeverityError)
	assert.False(t, ok)
}

func TestConsoleQueryMatchIsASCIICaseInsensitive(t *testing.T) {
	c := New(10)
	c.Push(SeverityInfo, "Connection RESET by peer")
	c.Push(SeverityInfo, "all quiet")
	c.Ingest(nil)

	c.SetCriteria(MaskAll, "reset")
	require.Equal(t, 1, c.RowCount())

	c.SetCriteria(MaskAll, "CONNECTION reset")
	require.Equal(t, 1, c.RowCount())

	c.SetCriteria(MaskAll, "nothing like this")
	require.Zero(t, c.RowCount())
}

func TestConsoleClear(t *testing.T) {
	c := New(4)
	for i := 0; i < 10; i++ {
		c.Push(SeverityWarning, "w")
	}
	c.Ingest(nil)
	c.ScrollTo(1)
	c.Clear()

	assert.Zero(t, c.RowCount())
	assert.Equal(t, [3]int{}, c.SeverityCounts())
	_, ok := c.TakeScrollTarget()
	assert.False(t, ok)

	// The console stays usable after a clear.
	c.Push(SeverityInfo, "fresh")
	c.Ingest(nil)
	assert.Equal(t, 1, c.RowCount())
}

func TestConsoleScrollTargetIsOneShot(t *testing.T) {
	c := New(4)
	c.ScrollTo(7)

	row, ok := c.TakeScrollTarget()
	require.True(t, ok)
	require.Equal(t, 7, row)

	_, ok = c.TakeScrollTarget()
	require.False(t, ok)
}

func TestConsoleNextMatchingWrapsAround(t *testing.T) {
	c := New(8)
	c.Push(SeverityInfo, "i0")
	c.Push(SeverityError, "e1")
	c.Push(SeverityInfo, "i2")
	c.Push(SeverityError, "e3")
	c.Ingest(nil)
	c.SetCriteria(MaskAll, "")

	c.ScrollTo(1) // anchor the scan at row 1

	row, ok := c.NextMatching(SeverityError)
	require.True(t, ok)
	require.Equal(t, 3, row)

	row, ok = c.NextMatching(SeverityError)
	require.True(t, ok)
	require.Equal(t, 1, row, "scan must wrap past the end")

	_, ok = c.NextMatching(SeverityWarning)
	require.False(t, ok, "no warnings exist in the filtered set")
}

func TestConsoleNextMatchingSingleMatch(t *testing.T) {
	c := New(8)
	c.Push(SeverityInfo, "i0")
	c.Push(SeverityError, "only")
	c.Ingest(nil)

	row, ok := c.NextMatching(SeverityError)
	require.True(t, ok)
	require.Equal(t, 1, row)

	// The sole match is found again from its own anchor.
	row, ok = c.NextMatching(SeverityError)
	require.True(t, ok)
	require.Equal(t, 1, row)
}

func TestConsoleFilterMatchesNaiveOracle(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	words := []string{"alpha", "BETA", "Gamma", "delta", "retry", "Timeout", "ok"}
	queries := []string{"", "beta", "TIME", "a", "zzz"}
	masks := []LevelMask{MaskAll, MaskError, MaskInfo | MaskError, MaskWarning, 0}

	c := New(64)
	type live struct {
		sev  Severity
		text string
	}
	var window []live

	for step := 0; step < 3000; step++ {
		sev := Severity(rng.Intn(severityCount))
		text := fmt.Sprintf("%s %s %d", words[rng.Intn(len(words))], words[rng.Intn(len(words))], step)
		c.Push(sev, text)
		window = append(window, live{sev, text})
		if len(window) > c.Capacity() {
			window = window[1:]
		}

		if step%7 != 0 {
			continue
		}
		c.Ingest(nil)
		mask := masks[rng.Intn(len(masks))]
		query := queries[rng.Intn(len(queries))]
		c.SetCriteria(mask, query)

		committed := window[len(window)-min(len(window), c.EntryCount()):]
		var want []string
		for _, e := range committed {
			if !mask.Has(e.sev) {
				continue
			}
			if query != "" && !strings.Contains(strings.ToLower(e.text), strings.ToLower(query)) {
				continue
			}
			want = append(want, e.text)
		}

		require.Equal(t, len(want), c.RowCount(), "row count diverged at step %d", step)
		for i := range want {
			_, text, _ := c.Row(i)
			require.Equal(t, want[i], text, "row %d diverged at step %d", i, step)
		}
	}
}

func TestConsolePushFromOtherGoroutine(t *testing.T) {
	c := New(100)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 50; i++ {
			c.Push(SeverityInfo, fmt.Sprintf("bg %d", i))
		}
	}()
	<-done

	c.Ingest(nil)
	require.Equal(t, 50, c.EntryCount())
	_, first, _ := c.Row(0)
	require.Equal(t, "bg 0", first)
}

func TestConsoleTimestampsCapturedAtCommit(t *testing.T) {
	c := New(4)
	before := time.Now()
	c.Push(SeverityInfo, "stamped")
	c.Ingest(nil)
	after := time.Now()

	_, _, at := c.Row(0)
	require.False(t, at.Before(before))
	require.False(t, at.After(after))
}
