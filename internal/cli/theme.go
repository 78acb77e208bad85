package cli

import "github.com/charmbracelet/lipgloss"

type theme struct {
	Title   lipgloss.Style
	Heading lipgloss.Style
	Muted   lipgloss.Style
	OK      lipgloss.Style
	Error   lipgloss.Style
}

func defaultTheme() theme {
	return theme{
		Title:   lipgloss.NewStyle().Bold(true),
		Heading: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		Muted:   lipgloss.NewStyle().Faint(true),
		OK:      lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Error:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
	}
}

var styles = defaultTheme()
