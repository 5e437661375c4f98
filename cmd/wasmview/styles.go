package main

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	title    lipgloss.Style
	section  lipgloss.Style
	offset   lipgloss.Style
	name     lipgloss.Style
	typ      lipgloss.Style
	err      lipgloss.Style
	help     lipgloss.Style
	selected lipgloss.Style
}

// newStyles binds styles to w. Writers that are not terminals get plain
// text.
func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		title: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1),
		section: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#87CEEB")),
		offset: r.NewStyle().
			Foreground(lipgloss.Color("#666666")),
		name: r.NewStyle().
			Foreground(lipgloss.Color("#98FB98")),
		typ: r.NewStyle().
			Foreground(lipgloss.Color("#87CEEB")),
		err: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")),
		help: r.NewStyle().
			Foreground(lipgloss.Color("#666666")),
		selected: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")),
	}
}
