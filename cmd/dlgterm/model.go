package main

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/milk9111/dialogbox/dialog"
	"github.com/milk9111/dialogbox/prefabs"
	"github.com/milk9111/dialogbox/session"
)

const frameInterval = time.Second / 60

type frameMsg time.Time

func frame() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

var (
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	speakerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	hintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// model drives a dialog.Dialog from bubbletea messages. The dialog clock is
// the time elapsed since the first frame.
type model struct {
	dialog  *dialog.Dialog
	session *session.Session
	keys    keyMap
	logger  *log.Logger
	watcher *prefabs.Watcher

	start time.Time
	now   time.Duration
	width int
}

// newModel plays d. With a session and a watcher, edits to the prefab files
// are applied between frames.
func newModel(d *dialog.Dialog, s *session.Session, watcher *prefabs.Watcher, logger *log.Logger) model {
	return model{
		dialog:  d,
		session: s,
		keys:    defaultKeyMap(),
		logger:  logger,
		watcher: watcher,
		width:   72,
	}
}

func (m model) Init() tea.Cmd {
	return frame()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case frameMsg:
		t := time.Time(msg)
		if m.start.IsZero() {
			m.start = t
		}
		m.now = t.Sub(m.start)
		m.reload()
		m.dialog.Update(m.now, dialog.Input{})
		return m, frame()

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		m.dialog.Update(m.now, dialog.Input{
			Show: key.Matches(msg, m.keys.Show),
			Skip: key.Matches(msg, m.keys.Skip),
			Up:   key.Matches(msg, m.keys.Up),
			Down: key.Matches(msg, m.keys.Down),
		})
		return m, nil
	}

	return m, nil
}

func (m model) reload() {
	if m.watcher == nil || m.session == nil {
		return
	}
	changed := m.watcher.Poll()
	if len(changed) == 0 {
		return
	}
	if _, err := m.session.Reload(changed); err != nil {
		m.logger.Error("reload failed", "files", changed, "err", err)
	}
}

func (m model) View() string {
	v := m.dialog.View()
	if !v.Visible {
		return hintStyle.Render(m.helpLine()) + "\n"
	}

	width := m.width - boxStyle.GetHorizontalFrameSize()
	if width < 20 {
		width = 20
	}
	body := lipgloss.NewStyle().Width(width)

	var b strings.Builder
	if v.Speaker != "" {
		b.WriteString(speakerStyle.Render(v.Speaker) + "\n")
	}
	b.WriteString(body.Render(v.Revealed))
	for _, opt := range v.Options {
		b.WriteString("\n")
		text := strings.TrimSpace(opt.Text)
		if opt.Selected {
			b.WriteString(selectedStyle.Render("> " + text))
		} else {
			b.WriteString("  " + text)
		}
	}

	return boxStyle.Render(b.String()) + "\n" + hintStyle.Render(progressBar(v.Progress(), 20)+"  "+m.helpLine()) + "\n"
}

func (m model) helpLine() string {
	parts := make([]string, 0, 4)
	for _, b := range m.keys.help() {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}

func progressBar(p float64, width int) string {
	filled := int(p * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return "[" + strings.Repeat("=", filled) + strings.Repeat(" ", width-filled) + "]"
}
