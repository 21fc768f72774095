package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyprwire/hyprwire/event"
)

func TestWatchModelAppendsEvents(t *testing.T) {
	m := NewWatchModel("sig123")

	model, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = model.(*WatchModel)
	require.True(t, m.ready)

	model, _ = m.Update(EventMsg{Event: event.WorkspaceChanged{Workspace: event.Workspace{Name: "3"}}})
	m = model.(*WatchModel)
	assert.Equal(t, 1, m.count)
	assert.Len(t, m.lines, 1)

	view := m.View()
	assert.Contains(t, view, "hyprwire watch")
	assert.Contains(t, view, "sig123")
}

func TestWatchModelCapsScrollback(t *testing.T) {
	m := NewWatchModel("sig")
	model, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = model.(*WatchModel)

	for i := 0; i < maxWatchLines+50; i++ {
		model, _ = m.Update(EventMsg{Event: event.SubmapChanged{Submap: "resize"}})
		m = model.(*WatchModel)
	}
	assert.Len(t, m.lines, maxWatchLines)
	assert.Equal(t, maxWatchLines+50, m.count)
}

func TestWatchModelQuitKeys(t *testing.T) {
	m := NewWatchModel("sig")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestDescribeEvent(t *testing.T) {
	tests := []struct {
		ev   event.Event
		want string
	}{
		{event.WorkspaceMoved{Workspace: event.Workspace{Name: "2"}, Monitor: "DP-1"}, "2 -> DP-1"},
		{event.ActiveWindowChanged{}, "none"},
		{event.ActiveWindowChanged{Window: &event.ActiveWindow{Class: "kitty", Title: "sh", Address: "aa"}}, `kitty "sh" [aa]`},
		{event.FullscreenChanged{Fullscreen: true}, "entered fullscreen"},
		{event.SubmapChanged{}, "default"},
		{event.ScreencastChanged{Active: true, Owner: event.ScreencastOwnerWindow}, "started (window)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DescribeEvent(tt.ev))
	}
}
