// Package ui provides the Bubble Tea console for logdeck.
package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/logdeck/logdeck/internal/logbuf"
	"github.com/logdeck/logdeck/internal/prefs"
)

const errorFlashFor = 3 * time.Second

// Options configures the UI.
type Options struct {
	Context   context.Context
	Console   *logbuf.Console
	Prefs     prefs.Prefs
	PrefsPath string
	ExportDir string
	PollTick  time.Duration
}

// Model is the root application state for Bubble Tea.
type Model struct {
	console   *logbuf.Console
	keys      keyMap
	theme     Theme
	prefsPath string
	exportDir string
	pollTick  time.Duration

	viewport    viewport.Model
	searchInput textinput.Model

	mask         logbuf.LevelMask
	query        string
	searchActive bool
	follow       bool

	width  int
	height int
	ready  bool

	errorFlash time.Time
	statusNote string
}

// New creates the root model.
func New(opts Options) Model {
	pollTick := opts.PollTick
	if pollTick <= 0 {
		pollTick = time.Second
	}

	ti := textinput.New()
	ti.Placeholder = "Search..."
	ti.CharLimit = 100

	return Model{
		console:     opts.Console,
		keys:        defaultKeyMap(),
		theme:       GetTheme(opts.Prefs.Theme),
		prefsPath:   opts.PrefsPath,
		exportDir:   opts.ExportDir,
		pollTick:    pollTick,
		searchInput: ti,
		mask:        opts.Prefs.Mask(),
		follow:      opts.Prefs.Follow,
	}
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	p := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

type tickMsg time.Time

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.pollTick)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(msg.Width, max(msg.Height-2, 1))
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = max(msg.Height-2, 1)
		}
		m.refreshContent()
		return m, nil

	case tickMsg:
		// One ingestion cycle per tick: drain pushed lines, rebuild the
		// filtered view, flash the badge on fresh errors.
		if m.console.Ingest(nil) {
			m.errorFlash = time.Now()
		}
		m.refreshContent()
		return m, tickCmd(m.pollTick)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searchActive {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.savePrefs()
		return m, tea.Quit

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = NextTheme(m.theme.Name)
		m.refreshContent()
		return m, nil

	case key.Matches(msg, m.keys.ToggleInfo):
		return m.toggleLevel(logbuf.SeverityInfo), nil

	case key.Matches(msg, m.keys.ToggleWarning):
		return m.toggleLevel(logbuf.SeverityWarning), nil

	case key.Matches(msg, m.keys.ToggleError):
		return m.toggleLevel(logbuf.SeverityError), nil

	case key.Matches(msg, m.keys.Search):
		m.searchActive = true
		m.searchInput.SetValue(m.query)
		m.searchInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Escape):
		if m.query != "" {
			m.query = ""
			m.console.SetCriteria(m.mask, "")
			m.refreshContent()
		}
		m.statusNote = ""
		return m, nil

	case key.Matches(msg, m.keys.NextError):
		return m.jumpTo(logbuf.SeverityError), nil

	case key.Matches(msg, m.keys.NextWarning):
		return m.jumpTo(logbuf.SeverityWarning), nil

	case key.Matches(msg, m.keys.ToggleFollow):
		m.follow = !m.follow
		if m.follow {
			m.viewport.GotoBottom()
		}
		return m, nil

	case key.Matches(msg, m.keys.Export):
		m.statusNote = m.exportFiltered()
		return m, nil

	case key.Matches(msg, m.keys.Clear):
		m.console.Clear()
		m.statusNote = "buffer cleared"
		m.refreshContent()
		return m, nil

	case key.Matches(msg, m.keys.Top):
		m.viewport.GotoTop()
		m.follow = false
		return m, nil

	case key.Matches(msg, m.keys.Bottom):
		m.viewport.GotoBottom()
		m.follow = true
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.viewport.ScrollDown(1)
		m.follow = false
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.viewport.ScrollUp(1)
		m.follow = false
		return m, nil

	case key.Matches(msg, m.keys.HalfPageDown):
		m.viewport.HalfPageDown()
		m.follow = false
		return m, nil

	case key.Matches(msg, m.keys.HalfPageUp):
		m.viewport.HalfPageUp()
		m.follow = false
		return m, nil

	case key.Matches(msg, m.keys.PageDown):
		m.viewport.PageDown()
		m.follow = false
		return m, nil

	case key.Matches(msg, m.keys.PageUp):
		m.viewport.PageUp()
		m.follow = false
		return m, nil
	}

	return m, nil
}

// handleSearchKey handles keyboard input while the search prompt is open.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.query = m.searchInput.Value()
		m.searchActive = false
		m.searchInput.Blur()
		m.console.SetCriteria(m.mask, m.query)
		m.refreshContent()
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		m.searchActive = false
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

func (m Model) toggleLevel(sev logbuf.Severity) Model {
	m.mask = m.mask.Toggle(sev)
	m.console.SetCriteria(m.mask, m.query)
	m.refreshContent()
	return m
}

// jumpTo moves the viewport to the next filtered row of the given
// severity, wrapping past the end of the list.
func (m Model) jumpTo(sev logbuf.Severity) Model {
	row, ok := m.console.NextMatching(sev)
	if !ok {
		m.statusNote = "no " + sev.String() + " entries in view"
		return m
	}
	m.console.ScrollTo(row)
	m.follow = false
	m.refreshContent()
	return m
}

func (m *Model) savePrefs() {
	p := prefs.Prefs{Theme: m.theme.Name, Follow: m.follow}
	p.SetMask(m.mask)
	_ = prefs.Save(m.prefsPath, p)
}
