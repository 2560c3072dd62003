package tui

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/joaopnk/ignite-timer/internal/config"
	"github.com/joaopnk/ignite-timer/internal/cycle"
	"github.com/joaopnk/ignite-timer/internal/util"
)

type formField int

const (
	fieldTask formField = iota
	fieldMinutes
)

// FormModel is the new-cycle form: a task label and a duration in minutes.
type FormModel struct {
	task           textinput.Model
	minutes        textinput.Model
	focus          formField
	enabled        bool
	defaultMinutes int
}

func NewFormModel(cfg *config.Config) FormModel {
	task := textinput.New()
	task.Placeholder = "Name your project"
	task.CharLimit = config.MaxTaskLength
	task.Width = config.TaskInputWidth
	task.Prompt = ""
	task.ShowSuggestions = true
	task.SetSuggestions(cfg.UI.Suggestions)

	minutes := textinput.New()
	minutes.Placeholder = "00"
	minutes.CharLimit = config.MaxMinutesDigits
	minutes.Width = config.MinutesInputWidth
	minutes.Prompt = ""

	f := FormModel{
		task:           task,
		minutes:        minutes,
		enabled:        true,
		defaultMinutes: cfg.Timer.DefaultMinutes,
	}
	f.Reset()
	return f
}

// Reset clears the task and restores the default duration.
func (f *FormModel) Reset() {
	f.task.Reset()
	f.minutes.SetValue(strconv.Itoa(f.defaultMinutes))
	f.focus = fieldTask
}

// Focus gives keyboard focus to the current field.
func (f *FormModel) Focus() tea.Cmd {
	if !f.enabled {
		return nil
	}
	if f.focus == fieldMinutes {
		f.task.Blur()
		return f.minutes.Focus()
	}
	f.minutes.Blur()
	return f.task.Focus()
}

// SetEnabled locks the form while a cycle runs.
func (f *FormModel) SetEnabled(enabled bool) tea.Cmd {
	if f.enabled == enabled {
		return nil
	}
	f.enabled = enabled
	if !enabled {
		f.task.Blur()
		f.minutes.Blur()
		return nil
	}
	return f.Focus()
}

func (f FormModel) Enabled() bool {
	return f.enabled
}

// ToggleField moves focus between the task and minutes inputs.
func (f *FormModel) ToggleField() tea.Cmd {
	if f.focus == fieldTask {
		f.focus = fieldMinutes
	} else {
		f.focus = fieldTask
	}
	return f.Focus()
}

// CanSubmit mirrors the disabled start button: a task must be typed first.
func (f FormModel) CanSubmit() bool {
	return f.enabled && strings.TrimSpace(f.task.Value()) != ""
}

// Request parses and validates the form into a creation request.
func (f FormModel) Request() (cycle.Request, error) {
	raw := strings.TrimSpace(f.minutes.Value())
	minutes, err := strconv.Atoi(raw)
	if err != nil {
		return cycle.Request{}, &cycle.ValidationError{Field: "minutesAmount", Value: raw, Reason: "enter a number of minutes"}
	}
	req := cycle.Request{Task: f.task.Value(), MinutesAmount: minutes}
	if err := cycle.ValidateRequest(req); err != nil {
		return cycle.Request{}, err
	}
	return req, nil
}

// Update forwards input to the focused field. Non-digits never reach the minutes field.
func (f FormModel) Update(msg tea.Msg) (FormModel, tea.Cmd) {
	if !f.enabled {
		return f, nil
	}
	var cmd tea.Cmd
	switch f.focus {
	case fieldMinutes:
		if key, ok := msg.(tea.KeyMsg); ok {
			switch {
			case key.String() == "up":
				f.StepMinutes(1)
				return f, nil
			case key.String() == "down":
				f.StepMinutes(-1)
				return f, nil
			case key.Type == tea.KeyRunes && !allDigits(key.Runes):
				return f, nil
			}
		}
		f.minutes, cmd = f.minutes.Update(msg)
	default:
		f.task, cmd = f.task.Update(msg)
	}
	return f, cmd
}

// StepMinutes moves the duration by n steps of config.MinutesStep, staying
// within the allowed range. An unparsable value restarts from the default.
func (f *FormModel) StepMinutes(n int) {
	v, err := strconv.Atoi(strings.TrimSpace(f.minutes.Value()))
	if err != nil {
		v = f.defaultMinutes
	} else {
		v += n * config.MinutesStep
	}
	v = util.Clamp(v, config.MinCycleMinutes, config.MaxCycleMinutes)
	f.minutes.SetValue(strconv.Itoa(v))
	f.minutes.CursorEnd()
}

func allDigits(runes []rune) bool {
	for _, r := range runes {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func (f FormModel) View(theme Theme) string {
	var b strings.Builder
	b.WriteString(theme.Label.Render("I'll work on "))
	b.WriteString(theme.Input.Render(f.task.View()))
	b.WriteString(theme.Label.Render("  for "))
	b.WriteString(theme.Input.Render(f.minutes.View()))
	b.WriteString(theme.Label.Render(" minutes."))
	return b.String()
}
