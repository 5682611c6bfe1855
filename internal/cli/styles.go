package cli

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title   lipgloss.Style
	figure  lipgloss.Style
	label   lipgloss.Style
	user    lipgloss.Style
	empty   lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
	code    lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:   lipgloss.NewStyle().Bold(true),
		figure:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220")),
		label:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		user:    lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		empty:   lipgloss.NewStyle().Faint(true),
		success: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		failure: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		code:    lipgloss.NewStyle().Bold(true).Padding(0, 1).Border(lipgloss.RoundedBorder()),
	}
}
