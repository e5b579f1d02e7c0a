package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/kanban/internal/theme"
)

// styles are rebuilt from the active palette whenever the theme changes.
type styles struct {
	headerBar lipgloss.Style
	headerApp lipgloss.Style
	title     lipgloss.Style

	statusBar lipgloss.Style
	footer    lipgloss.Style
	helpKey   lipgloss.Style
	helpDesc  lipgloss.Style

	columnBox       lipgloss.Style
	columnBoxActive lipgloss.Style
	columnTitle     lipgloss.Style
	columnCount     lipgloss.Style

	task         lipgloss.Style
	taskSelected lipgloss.Style
	taskDim      lipgloss.Style
	cursor       lipgloss.Style

	modal      lipgloss.Style
	modalTitle lipgloss.Style
	separator  lipgloss.Style
	scroll     lipgloss.Style
}

func newStyles(p theme.Palette) styles {
	return styles{
		headerBar: lipgloss.NewStyle().
			Foreground(p.Text).
			Background(p.Mantle).
			Padding(0, 2),
		headerApp: lipgloss.NewStyle().
			Foreground(p.Accent).
			Bold(true),
		title: lipgloss.NewStyle().Foreground(p.Accent).Bold(true),

		statusBar: lipgloss.NewStyle().
			Foreground(p.Subtext).
			Background(p.Surface).
			Padding(0, 2),
		footer: lipgloss.NewStyle().
			Foreground(p.Subtext).
			Background(p.Mantle).
			Padding(0, 2),
		helpKey: lipgloss.NewStyle().
			Foreground(p.Accent).
			Background(p.Mantle).
			Bold(true),
		helpDesc: lipgloss.NewStyle().
			Foreground(p.Subtext).
			Background(p.Mantle),

		columnBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.SurfaceHi).
			Padding(0, 1),
		columnBoxActive: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Accent).
			Padding(0, 1),
		columnTitle: lipgloss.NewStyle().Foreground(p.Accent).Bold(true),
		columnCount: lipgloss.NewStyle().Foreground(p.Overlay),

		task:         lipgloss.NewStyle().Foreground(p.Text),
		taskSelected: lipgloss.NewStyle().Foreground(p.Focus).Bold(true),
		taskDim:      lipgloss.NewStyle().Foreground(p.Overlay),
		cursor:       lipgloss.NewStyle().Foreground(p.Accent).Bold(true),

		modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Accent).
			Padding(0, 1),
		modalTitle: lipgloss.NewStyle().Foreground(p.Accent).Bold(true),
		separator:  lipgloss.NewStyle().Foreground(p.SurfaceHi),
		scroll:     lipgloss.NewStyle().Foreground(p.Overlay),
	}
}
