package viewer

import "github.com/charmbracelet/lipgloss"

// Theme centralizes Lip Gloss styles for the viewer.
type Theme struct {
	Title    lipgloss.Style
	Position lipgloss.Style
	SignalID lipgloss.Style
	Caption  lipgloss.Style
	Hint     lipgloss.Style
	Status   lipgloss.Style
	Broken   lipgloss.Style
	Dim      lipgloss.Style
}

// Default returns the built-in theme.
func Default() Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")),
		Position: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		SignalID: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Caption:  lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("252")),
		Hint:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Status:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Broken:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Dim:      lipgloss.NewStyle().Faint(true),
	}
}
