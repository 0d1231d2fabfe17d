package controller

import "github.com/charmbracelet/lipgloss"

type palette struct {
	enabled bool
	confirm lipgloss.Style
	warning lipgloss.Style
	failure lipgloss.Style
	dir     lipgloss.Style
	path    lipgloss.Style
}

func newPalette(enabled bool) palette {
	return palette{
		enabled: enabled,
		confirm: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		warning: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		failure: lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		dir:     lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		path:    lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	}
}

func (p palette) render(style lipgloss.Style, text string) string {
	if !p.enabled {
		return text
	}

	return style.Render(text)
}
