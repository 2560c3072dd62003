package tui

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/joaopnk/ignite-timer/internal/config"
	"github.com/joaopnk/ignite-timer/internal/models"
	"github.com/joaopnk/ignite-timer/internal/report"
	"github.com/joaopnk/ignite-timer/internal/session"
	"github.com/joaopnk/ignite-timer/internal/tracker"
	"github.com/joaopnk/ignite-timer/internal/util"
)

type reportExportedMsg struct {
	Path string
	Err  error
}

// MainModel is the root bubbletea model. It owns the session and hands it to
// the form and countdown views.
type MainModel struct {
	session   *session.Session
	timer     *TimerManager
	form      FormModel
	keys      *HandlerRegistry
	theme     Theme
	reportDir string
	now       func() time.Time
	logger    *slog.Logger

	status string
	err    error
	width  int
	height int
}

// ModelOption configures a MainModel.
type ModelOption func(*MainModel)

// WithReportDir sets where ctrl+r writes PDF reports.
func WithReportDir(dir string) ModelOption {
	return func(m *MainModel) { m.reportDir = dir }
}

// WithLogger sets the UI logger.
func WithLogger(logger *slog.Logger) ModelOption {
	return func(m *MainModel) {
		if logger != nil {
			m.logger = logger
		}
	}
}

func NewMainModel(sess *session.Session, cfg *config.Config, opts ...ModelOption) MainModel {
	m := MainModel{
		session:   sess,
		timer:     NewTimerManager(),
		form:      NewFormModel(cfg),
		theme:     ThemeByName(cfg.UI.Theme),
		reportDir: util.UserDirs(config.AppName).Reports(),
		now:       time.Now,
		logger:    util.Discard(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.keys = newKeyRegistry()
	sess.Subscribe(m.timer.Observe)
	m.timer.Observe(sess.Snapshot())
	m.form.enabled = !m.timer.Running()
	m.form.Focus()
	return m
}

func newKeyRegistry() *HandlerRegistry {
	r := NewHandlerRegistry()
	r.Register(KeyBinding{Keys: []string{"ctrl+c"}, Handler: handleQuit, Description: "quit", Priority: 100})
	r.Register(KeyBinding{Keys: []string{"enter"}, Handler: handleSubmit, Description: "start", Modes: []int{modeIdle}, Priority: 50})
	r.Register(KeyBinding{Keys: []string{"shift+tab"}, Handler: handleToggleField, Description: "switch field", Modes: []int{modeIdle}, Priority: 40})
	r.Register(KeyBinding{Keys: []string{"up", "down"}, Handler: handleStepMinutes, Description: "minutes ±5", Modes: []int{modeIdle}, Priority: 30})
	r.Register(KeyBinding{Keys: []string{"ctrl+x", "esc"}, Handler: handleInterrupt, Description: "interrupt", Modes: []int{modeRunning}, Priority: 50})
	r.Register(KeyBinding{Keys: []string{"ctrl+r"}, Handler: handleExport, Description: "export report", Priority: 10})
	return r
}

func (m MainModel) mode() int {
	if m.timer.Running() {
		return modeRunning
	}
	return modeIdle
}

func (m MainModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.session.Resume(), m.timer.TitleCmd())
}

func (m MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tracker.TickMsg:
		wasRunning := m.timer.Running()
		cmd := m.session.Update(msg)
		if wasRunning && !m.timer.Running() {
			m.status = finishedStatus(m.session.Store().Cycles())
		}
		syncCmd := m.sync()
		return m, tea.Batch(cmd, syncCmd)

	case reportExportedMsg:
		if msg.Err != nil {
			util.LogError(m.logger, "export report", msg.Err)
			m.err = msg.Err
			return m, nil
		}
		m.logger.Info("report exported", "path", msg.Path)
		m.err = nil
		m.status = "Report saved to " + msg.Path
		return m, nil

	case tea.KeyMsg:
		next, cmd, handled := m.keys.Handle(m, msg.String())
		if handled {
			syncCmd := next.sync()
			return next, tea.Batch(cmd, syncCmd)
		}
		if m.timer.Running() {
			return m, nil
		}
		m.err = nil
		var formCmd tea.Cmd
		m.form, formCmd = m.form.Update(msg)
		return m, formCmd
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return m, cmd
}

// sync aligns the form with the session and emits a title update if needed.
func (m *MainModel) sync() tea.Cmd {
	return tea.Batch(m.form.SetEnabled(!m.timer.Running()), m.timer.TitleCmd())
}

func finishedStatus(cycles []models.Cycle) string {
	if len(cycles) == 0 {
		return ""
	}
	last := cycles[len(cycles)-1]
	if _, ok := last.FinishedDate(); ok {
		return fmt.Sprintf("Cycle finished: %s", last.Task)
	}
	return ""
}

func handleQuit(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	m.session.Close()
	return m, tea.Quit, true
}

func handleSubmit(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	if m.form.focus == fieldTask {
		if !m.form.CanSubmit() {
			m.status = "Inform the task."
			return m, nil, true
		}
		return m, m.form.ToggleField(), true
	}
	if !m.form.CanSubmit() {
		m.status = "Inform the task."
		return m, m.form.ToggleField(), true
	}

	req, err := m.form.Request()
	if err != nil {
		m.err = err
		return m, nil, true
	}
	cmd, err := m.session.Start(req.Task, req.MinutesAmount)
	if err != nil {
		m.err = err
		return m, nil, true
	}
	m.form.Reset()
	m.err = nil
	m.status = ""
	return m, cmd, true
}

func handleToggleField(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	return m, m.form.ToggleField(), true
}

// handleStepMinutes adjusts the duration when the minutes field has focus. On
// the task field up/down are left to the suggestion list.
func handleStepMinutes(m MainModel, key string) (MainModel, tea.Cmd, bool) {
	if m.form.focus != fieldMinutes {
		return m, nil, false
	}
	if key == "up" {
		m.form.StepMinutes(1)
	} else {
		m.form.StepMinutes(-1)
	}
	m.err = nil
	return m, nil, true
}

func handleInterrupt(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	if err := m.session.Interrupt(); err != nil {
		m.err = err
		return m, nil, true
	}
	m.err = nil
	m.status = "Cycle interrupted."
	return m, nil, true
}

func handleExport(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	cycles := m.session.Store().Cycles()
	dir := m.reportDir
	now := m.now()
	m.status = "Exporting report..."
	return m, func() tea.Msg {
		path, err := report.ExportPDF(dir, cycles, now)
		return reportExportedMsg{Path: path, Err: err}
	}, true
}
