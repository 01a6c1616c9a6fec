package tui

import "github.com/charmbracelet/lipgloss"

type styles struct {
	metrics    lipgloss.Style
	credit     lipgloss.Style
	debit      lipgloss.Style
	scene      lipgloss.Style
	dialogue   lipgloss.Style
	factTitle  lipgloss.Style
	box        lipgloss.Style
	popup      lipgloss.Style
	popupTitle lipgloss.Style
	panel      lipgloss.Style
	panelTitle lipgloss.Style
	choice     lipgloss.Style
	subtitle   lipgloss.Style
	locked     lipgloss.Style
	notice     lipgloss.Style
	fading     lipgloss.Style
	errorLine  lipgloss.Style
	spinner    lipgloss.Style
}

func newStyles() styles {
	return styles{
		metrics:    lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		credit:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		debit:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		scene:      lipgloss.NewStyle().Faint(true),
		dialogue:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		factTitle:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		box:        lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1),
		popup:      lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(lipgloss.Color("213")).Padding(0, 1),
		popupTitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213")),
		panel:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("69")).Padding(0, 1),
		panelTitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("69")),
		choice:     lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		subtitle:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		locked:     lipgloss.NewStyle().Faint(true),
		notice:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220")),
		fading:     lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("220")),
		errorLine:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		spinner:    lipgloss.NewStyle().Foreground(lipgloss.Color("69")),
	}
}
