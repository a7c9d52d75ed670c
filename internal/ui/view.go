package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/logdeck/logdeck/internal/logbuf"
)

// refreshContent re-renders the filtered rows into the viewport and
// honors any pending scroll target from the navigation helpers.
func (m *Model) refreshContent() {
	if !m.ready {
		return
	}

	styles := m.theme.Styles()
	rows := m.console.RowCount()

	var b strings.Builder
	for i := 0; i < rows; i++ {
		sev, text, _ := m.console.Row(i)
		b.WriteString(m.renderRow(i+1, sev, text, styles))
		if i < rows-1 {
			b.WriteByte('\n')
		}
	}
	if rows == 0 {
		b.WriteString(styles.Muted.Render("No matching entries"))
	}
	m.viewport.SetContent(b.String())

	if target, ok := m.console.TakeScrollTarget(); ok {
		m.viewport.SetYOffset(max(target-m.viewport.Height/2, 0))
	} else if m.follow {
		m.viewport.GotoBottom()
	}
}

// renderRow renders one filtered row: line number, severity tag, text.
func (m *Model) renderRow(lineNum int, sev logbuf.Severity, text string, styles Styles) string {
	num := styles.Faint.Render(fmt.Sprintf("%5d │ ", lineNum))
	tag := m.severityStyle(sev, styles).Bold(true).Render(sev.Tag())
	return num + tag + " " + styles.Text.Render(text)
}

func (m *Model) severityStyle(sev logbuf.Severity, styles Styles) lipgloss.Style {
	switch sev {
	case logbuf.SeverityError:
		return styles.Danger
	case logbuf.SeverityWarning:
		return styles.Warning
	default:
		return styles.Success
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	styles := m.theme.Styles()

	title := styles.Title.Render("logdeck") + "  " +
		styles.Muted.Render(fmt.Sprintf("%d retained / %d shown", m.console.EntryCount(), m.console.RowCount()))

	return title + "\n" + m.viewport.View() + "\n" + m.renderStatus(styles)
}

// renderStatus renders the bottom status bar.
func (m Model) renderStatus(styles Styles) string {
	if m.searchActive {
		return styles.Accent.Render("search: ") + m.searchInput.View()
	}

	counts := m.console.SeverityCounts()
	parts := []string{
		styles.Success.Render(fmt.Sprintf("%d info", counts[logbuf.SeverityInfo])),
		styles.Warning.Render(fmt.Sprintf("%d warn", counts[logbuf.SeverityWarning])),
		styles.Danger.Render(fmt.Sprintf("%d err", counts[logbuf.SeverityError])),
		styles.Muted.Render("levels " + maskIndicator(m.mask)),
	}

	if m.query != "" {
		parts = append(parts, styles.Accent.Render("/"+m.query))
	}
	follow := "follow off"
	if m.follow {
		follow = "follow on"
	}
	parts = append(parts, styles.Faint.Render(follow))

	if time.Since(m.errorFlash) < errorFlashFor {
		parts = append(parts, styles.Danger.Bold(true).Render("● new errors"))
	}
	if m.statusNote != "" {
		parts = append(parts, styles.Muted.Render(m.statusNote))
	}

	sep := styles.Faint.Render(" • ")
	return strings.Join(parts, sep)
}

// maskIndicator renders the level mask as a compact I/W/E indicator,
// dots marking severities filtered out.
func maskIndicator(mask logbuf.LevelMask) string {
	var b strings.Builder
	for i, letter := range []string{"I", "W", "E"} {
		if mask.Has(logbuf.Severity(i)) {
			b.WriteString(letter)
		} else {
			b.WriteString("·")
		}
	}
	return b.String()
}

// exportFiltered writes the current filtered view to a timestamped file
// in the export directory and returns a status note for the bar.
func (m *Model) exportFiltered() string {
	content := m.console.ExportText()
	if content == "" {
		return "nothing to export"
	}
	if err := os.MkdirAll(m.exportDir, 0o755); err != nil {
		return fmt.Sprintf("export failed: %v", err)
	}
	name := "logdeck-" + time.Now().Format("20060102-150405") + ".txt"
	path := filepath.Join(m.exportDir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Sprintf("export failed: %v", err)
	}
	return fmt.Sprintf("exported %d rows to %s", m.console.RowCount(), path)
}
