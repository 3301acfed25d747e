// Package theme centralizes Lip Gloss styles for the calendar UI.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme groups the styles used across the calendar views.
type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Help     lipgloss.Style
	Status   lipgloss.Style

	Calendar CalendarTheme
	Backlog  BacklogTheme
}

// CalendarTheme styles the month grid and day panes.
type CalendarTheme struct {
	Header   lipgloss.Style
	Empty    lipgloss.Style
	HasEvent lipgloss.Style
	Today    lipgloss.Style
	Selected lipgloss.Style
}

// BacklogTheme styles the backlog panel.
type BacklogTheme struct {
	Title        lipgloss.Style
	Item         lipgloss.Style
	SelectedItem lipgloss.Style
	Provenance   lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	title := lipgloss.NewStyle().
		Foreground(lipgloss.Color("212")).
		Bold(true)

	return Theme{
		Title:    title,
		Subtitle: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Help:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Status:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Calendar: CalendarTheme{
			Header:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
			Empty:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
			HasEvent: lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
			Today:    lipgloss.NewStyle().Underline(true),
			Selected: lipgloss.NewStyle().Reverse(true),
		},
		Backlog: BacklogTheme{
			Title:        title.Copy(),
			Item:         lipgloss.NewStyle(),
			SelectedItem: lipgloss.NewStyle().Reverse(true),
			Provenance:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		},
	}
}
