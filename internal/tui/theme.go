package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Base        lipgloss.Style
	Border      lipgloss.Color
	Header      lipgloss.Style
	Label       lipgloss.Style
	Digit       lipgloss.Style
	Separator   lipgloss.Style
	Input       lipgloss.Style
	Active      lipgloss.Style
	Finished    lipgloss.Style
	Interrupted lipgloss.Style
	Error       lipgloss.Style
	Focused     lipgloss.Style
	Dim         lipgloss.Style
}

var Themes = map[string]Theme{
	"default": {
		Base:        lipgloss.NewStyle().Margin(1, 2),
		Border:      lipgloss.Color("63"),
		Header:      lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Label:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true),
		Digit:       lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("236")).Bold(true).Padding(1, 2).MarginRight(1),
		Separator:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true).Padding(0, 1),
		Input:       lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, true, false).BorderForeground(lipgloss.Color("240")),
		Active:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		Finished:    lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Interrupted: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		Focused:     lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Dim:         lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	},
	"dracula": {
		Base:        lipgloss.NewStyle().Margin(1, 2),
		Border:      lipgloss.Color("62"),
		Header:      lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true),
		Label:       lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		Digit:       lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("59")).Bold(true).Padding(1, 2).MarginRight(1),
		Separator:   lipgloss.NewStyle().Foreground(lipgloss.Color("120")).Bold(true).Padding(0, 1),
		Input:       lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, true, false).BorderForeground(lipgloss.Color("60")),
		Active:      lipgloss.NewStyle().Foreground(lipgloss.Color("215")).Bold(true),
		Finished:    lipgloss.NewStyle().Foreground(lipgloss.Color("120")),
		Interrupted: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("210")).Bold(true),
		Focused:     lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Dim:         lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
	},
}

// ThemeByName returns the named theme, falling back to the default.
func ThemeByName(name string) Theme {
	if t, ok := Themes[name]; ok {
		return t
	}
	return Themes["default"]
}
