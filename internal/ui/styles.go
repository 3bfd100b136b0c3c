// Package ui renders task tables and statistics with lipgloss and
// drives the interactive main menu with bubbletea. It holds no state
// of its own; everything comes in as arguments from the CLI layer.
package ui

import "github.com/charmbracelet/lipgloss"

// Theme bundles the styles used by the table and menu renderers.
type Theme struct {
	Title    lipgloss.Style
	Header   lipgloss.Style
	Cell     lipgloss.Style
	Selected lipgloss.Style
	Warning  lipgloss.Style
	Muted    lipgloss.Style
}

// NewTheme returns the named theme; unknown names fall back to default.
func NewTheme(name string) Theme {
	switch name {
	case "dark":
		return theme("63", "205", "245")
	case "light":
		return theme("25", "162", "240")
	default:
		return theme("62", "170", "241")
	}
}

func theme(title, selected, muted string) Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(title)).Padding(0, 1),
		Header:   lipgloss.NewStyle().Bold(true).Underline(true).Padding(0, 1),
		Cell:     lipgloss.NewStyle().Padding(0, 1),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(selected)),
		Warning:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color(muted)),
	}
}
