package tui

import "github.com/charmbracelet/lipgloss"

type styles struct {
	Title     lipgloss.Style
	Direction lipgloss.Style
	Navi      lipgloss.Style
	IPA       lipgloss.Style
	Dim       lipgloss.Style
	Selected  lipgloss.Style
	Error     lipgloss.Style
	Status    lipgloss.Style
	Modal     lipgloss.Style
	FieldName lipgloss.Style
	Help      lipgloss.Style
}

func newStyles() styles {
	return styles{
		Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		Direction: lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		Navi:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("51")),
		IPA:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Dim:       lipgloss.NewStyle().Faint(true),
		Selected:  lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Error: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("203")).
			Foreground(lipgloss.Color("203")).
			Padding(0, 1),
		Status: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(1, 2),
		FieldName: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		Help:      lipgloss.NewStyle().Faint(true).MarginTop(1),
	}
}
