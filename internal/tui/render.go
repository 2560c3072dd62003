package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/joaopnk/ignite-timer/internal/config"
	"github.com/joaopnk/ignite-timer/internal/models"
	"github.com/joaopnk/ignite-timer/internal/report"
	"github.com/joaopnk/ignite-timer/internal/tracker"
)

func (m MainModel) View() string {
	sections := []string{
		m.theme.Header.Render("Ignite Timer"),
		m.form.View(m.theme),
		m.renderCountdown(),
		m.renderActive(),
		m.renderHistory(),
		m.theme.Dim.Render(report.Summarize(m.session.Store().Cycles()).String()),
		m.renderStatus(),
		m.theme.Dim.Render(m.keys.HelpForMode(m.mode())),
	}
	out := make([]string, 0, len(sections))
	for _, s := range sections {
		if s != "" {
			out = append(out, s)
		}
	}
	return m.theme.Base.Render(lipgloss.JoinVertical(lipgloss.Left, out...))
}

func (m MainModel) compact() bool {
	return m.width > 0 && m.width < config.CompactModeThreshold
}

// renderCountdown draws MM:SS as four digit boxes around a separator, or a
// single line in compact mode.
func (m MainModel) renderCountdown() string {
	d := m.timer.Snapshot.Display
	if m.compact() {
		return m.theme.Digit.Padding(0, 1).Render(d.String())
	}
	return renderDigits(m.theme, d)
}

func renderDigits(theme Theme, d tracker.Display) string {
	blocks := []string{
		theme.Digit.Render(string(d.Minutes[0])),
		theme.Digit.Render(string(d.Minutes[1])),
		theme.Separator.Render(":"),
		theme.Digit.Render(string(d.Seconds[0])),
		theme.Digit.Render(string(d.Seconds[1])),
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, blocks...)
}

func (m MainModel) renderActive() string {
	active := m.timer.Snapshot.Active
	if active == nil {
		return ""
	}
	return m.theme.Active.Render(fmt.Sprintf("▶ %s", truncateLabel(active.Task, m.labelWidth())))
}

func (m MainModel) renderHistory() string {
	cycles := m.session.Store().Cycles()
	if len(cycles) == 0 {
		return ""
	}
	start := 0
	if len(cycles) > config.MaxHistoryRows {
		start = len(cycles) - config.MaxHistoryRows
	}
	width := m.labelWidth()
	var b strings.Builder
	b.WriteString(m.theme.Label.Render("History"))
	for i := len(cycles) - 1; i >= start; i-- {
		b.WriteString("\n")
		b.WriteString(m.renderHistoryRow(cycles[i], width))
	}
	return m.historyFrame().Render(b.String())
}

func (m MainModel) historyFrame() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Border).
		Padding(0, 1)
}

func (m MainModel) renderHistoryRow(c models.Cycle, width int) string {
	status := c.Status()
	var style lipgloss.Style
	switch status {
	case models.StatusFinished:
		style = m.theme.Finished
	case models.StatusInterrupted:
		style = m.theme.Interrupted
	default:
		style = m.theme.Active
	}
	if m.compact() {
		return fmt.Sprintf("%s %s", style.Render(status.Display()), truncateLabel(c.Task, width))
	}
	return fmt.Sprintf("%-*s %3d min  %s  %s",
		width, truncateLabel(c.Task, width),
		c.MinutesAmount,
		m.theme.Dim.Render(c.StartDate.Format("Jan 02 15:04")),
		style.Render(status.Display()),
	)
}

func (m MainModel) renderStatus() string {
	if m.err != nil {
		return m.theme.Error.Render("Error: " + m.err.Error())
	}
	if m.status != "" {
		return m.theme.Focused.Render(m.status)
	}
	return ""
}

func (m MainModel) labelWidth() int {
	if m.compact() {
		return max(m.width-16, 8)
	}
	return config.TaskInputWidth
}

func truncateLabel(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if ansi.StringWidth(s) <= width {
		return s
	}
	return ansi.Truncate(s, width, config.TruncationSuffix)
}
