package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/joaopnk/ignite-timer/internal/config"
	"github.com/joaopnk/ignite-timer/internal/session"
)

// TimerManager mirrors the session snapshot for rendering and keeps the
// terminal title in step with the countdown.
type TimerManager struct {
	Snapshot   session.Snapshot
	title      string
	titleDirty bool
}

func NewTimerManager() *TimerManager {
	return &TimerManager{}
}

// Observe is registered as a session subscriber.
func (t *TimerManager) Observe(s session.Snapshot) {
	t.Snapshot = s
	title := config.AppName
	if s.Active != nil {
		title = s.Display.String()
	}
	if title != t.title {
		t.title = title
		t.titleDirty = true
	}
}

// Running reports whether a cycle is counting down.
func (t *TimerManager) Running() bool {
	return t.Snapshot.Active != nil
}

// Title returns the last computed window title.
func (t *TimerManager) Title() string {
	return t.title
}

// TitleCmd returns a command updating the window title when it changed.
func (t *TimerManager) TitleCmd() tea.Cmd {
	if !t.titleDirty {
		return nil
	}
	t.titleDirty = false
	return tea.SetWindowTitle(t.title)
}
