package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hyprwire/hyprwire/event"
)

const maxWatchLines = 500

// EventMsg delivers one decoded event to the watch model. The listen
// goroutine sends it via Program.Send.
type EventMsg struct {
	Event event.Event
}

// StreamClosedMsg reports the event stream ending; Err is nil on an orderly
// close.
type StreamClosedMsg struct {
	Err error
}

// WatchModel is the full-screen live event viewer.
type WatchModel struct {
	signature string
	spinner   spinner.Model
	viewport  viewport.Model
	lines     []string
	count     int
	closed    bool
	err       error
	width     int
	height    int
	ready     bool
}

// NewWatchModel creates the viewer for one session.
func NewWatchModel(signature string) *WatchModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(ColorPrimary)
	return &WatchModel{
		signature: signature,
		spinner:   sp,
	}
}

func (m *WatchModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m *WatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		headerHeight := 2
		footerHeight := 1
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-headerHeight-footerHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - headerHeight - footerHeight
		}
		m.refresh()

	case EventMsg:
		m.count++
		m.lines = append(m.lines, FormatEvent(msg.Event))
		if len(m.lines) > maxWatchLines {
			m.lines = m.lines[len(m.lines)-maxWatchLines:]
		}
		m.refresh()

	case StreamClosedMsg:
		m.closed = true
		m.err = msg.Err
		if msg.Err != nil {
			return m, tea.Quit
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *WatchModel) refresh() {
	if !m.ready {
		return
	}
	atBottom := m.viewport.AtBottom()
	content := ""
	for i, line := range m.lines {
		if i > 0 {
			content += "\n"
		}
		content += line
	}
	m.viewport.SetContent(content)
	if atBottom {
		m.viewport.GotoBottom()
	}
}

// Err returns the stream error, if any, so the command can surface it after
// the program exits.
func (m *WatchModel) Err() error { return m.err }

func (m *WatchModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	title := TitleStyle.Render("hyprwire watch")
	session := SubtleStyle.Render(fmt.Sprintf("session %s", m.signature))
	header := fmt.Sprintf("%s %s\n", title, session)

	var status string
	switch {
	case m.closed && m.err != nil:
		status = ErrorStyle.Render(fmt.Sprintf("stream error: %v", m.err))
	case m.closed:
		status = MutedStyle.Render("stream closed")
	default:
		status = fmt.Sprintf("%s %s", m.spinner.View(),
			SubtleStyle.Render(fmt.Sprintf("%d events · [q] quit", m.count)))
	}

	return header + m.viewport.View() + "\n" + status
}
