package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/sdvxrgb/internal/capture"
	"github.com/muurk/sdvxrgb/internal/pipeline"
	"github.com/muurk/sdvxrgb/internal/reload"
	"github.com/muurk/sdvxrgb/internal/strip"
)

// PollInterval is how often the preview checks the file when no watcher is
// available.
const PollInterval = time.Second

type configChangedMsg struct{}

type watchErrMsg struct {
	err error
}

type pollMsg struct{}

// watchKeyMap defines key bindings for the live preview
type watchKeyMap struct {
	Reload  key.Binding
	Pattern key.Binding
	Input   key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k watchKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Reload, k.Pattern, k.Input, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k watchKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Reload, k.Pattern, k.Input},
		{k.Help, k.Quit},
	}
}

func newWatchKeyMap() watchKeyMap {
	return watchKeyMap{
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload now"),
		),
		Pattern: key.NewBinding(
			key.WithKeys("p", "tab"),
			key.WithHelp("p/tab", "next pattern"),
		),
		Input: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "toggle input row"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// WatchModel is the live configuration preview. It renders a test pattern
// through the scheduler's active snapshot and reloads when the watcher
// reports a change.
type WatchModel struct {
	sched   *reload.Scheduler
	watcher *reload.Watcher

	pattern   int
	input     capture.Frame
	output    capture.Frame
	showInput bool

	lastOutcome reload.Outcome
	lastErr     error
	lastCheck   time.Time
	reloads     int

	keys   watchKeyMap
	help   help.Model
	width  int
	height int
}

// NewWatchModel creates the preview. watcher may be nil, in which case the
// file is polled every PollInterval.
func NewWatchModel(sched *reload.Scheduler, watcher *reload.Watcher) WatchModel {
	width, height := GetTerminalSize()
	m := WatchModel{
		sched:     sched,
		watcher:   watcher,
		showInput: true,
		keys:      newWatchKeyMap(),
		help:      help.New(),
		width:     width,
		height:    height,
	}
	m.check()
	m.render()
	return m
}

// Init implements tea.Model
func (m WatchModel) Init() tea.Cmd {
	return m.next()
}

// next waits for the watcher or schedules a poll.
func (m WatchModel) next() tea.Cmd {
	if m.watcher == nil {
		return tea.Tick(PollInterval, func(time.Time) tea.Msg { return pollMsg{} })
	}
	w := m.watcher
	return func() tea.Msg {
		select {
		case _, ok := <-w.Changes():
			if !ok {
				return nil
			}
			return configChangedMsg{}
		case err := <-w.Errors():
			return watchErrMsg{err: err}
		}
	}
}

func (m *WatchModel) check() {
	outcome, err := m.sched.Check()
	m.lastCheck = time.Now()
	if outcome == reload.Unchanged || outcome == reload.Busy {
		return
	}
	m.lastOutcome = outcome
	m.lastErr = err
	if outcome == reload.Loaded || outcome == reload.Reset {
		m.reloads++
	}
}

// render runs the current pattern through the active snapshot.
func (m *WatchModel) render() {
	m.input = Patterns[m.pattern].Frame()
	m.output = m.input
	snap := m.sched.Snapshot()
	for _, id := range strip.All() {
		pipeline.Apply(snap.Strip(id), m.output.Strip(id))
	}
}

// Update implements tea.Model
func (m WatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = clampWidth(msg.Width)
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Reload):
			m.check()
			m.render()
		case key.Matches(msg, m.keys.Pattern):
			m.pattern = (m.pattern + 1) % len(Patterns)
			m.render()
		case key.Matches(msg, m.keys.Input):
			m.showInput = !m.showInput
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
		return m, nil

	case configChangedMsg:
		m.check()
		m.render()
		return m, m.next()

	case pollMsg:
		m.check()
		m.render()
		return m, m.next()

	case watchErrMsg:
		m.lastErr = msg.err
		return m, m.next()
	}

	return m, nil
}

func (m WatchModel) status() string {
	snap := m.sched.Snapshot()

	modTime := "none (identity)"
	if !snap.ModTime().IsZero() {
		modTime = snap.ModTime().Format(time.DateTime)
	}

	parts := []string{
		fmt.Sprintf("pattern %s", ActiveValueStyle.Render(Patterns[m.pattern].Name)),
		fmt.Sprintf("file %s", modTime),
		fmt.Sprintf("active %d/%d", len(snap.ActiveStrips()), strip.Count),
		fmt.Sprintf("reloads %d", m.reloads),
	}
	line := strings.Join(parts, IdentityValueStyle.Render("  │  "))

	if m.lastErr != nil {
		return line + "\n" + ErrorMessageStyle.Render(FailureMarker+" "+m.lastErr.Error())
	}
	if m.lastOutcome != reload.Unchanged {
		return line + "\n" + IdentityValueStyle.Render(fmt.Sprintf("last change: %s at %s", m.lastOutcome, m.lastCheck.Format(time.TimeOnly)))
	}
	return line
}

// View implements tea.Model
func (m WatchModel) View() string {
	snap := m.sched.Snapshot()
	nameWidth := len("lower_right_speaker") + 2
	cells := max(m.width-nameWidth-4, 8)

	var rows []string
	for _, id := range strip.All() {
		marker := IdentityValueStyle.Render(InactiveMarker)
		if snap.Strip(id).Active() {
			marker = lipgloss.NewStyle().Foreground(SuccessColor).Render(ActiveMarker)
		}
		name := marker + " " + padRight(id.Name(), nameWidth)
		if m.showInput {
			rows = append(rows, IdentityValueStyle.Render(padRight("", nameWidth+2))+RenderLEDs(m.input.Strip(id), cells))
		}
		rows = append(rows, name+RenderLEDs(m.output.Strip(id), cells))
	}

	header := NewHeader("Live Preview", "sdvxrgb watch", Param{Key: "Config", Value: m.sched.Path()}).
		SetWidth(m.width).
		Render()

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		strings.Join(rows, "\n"),
		"",
		m.status(),
		"",
		m.help.View(m.keys),
	)
}
