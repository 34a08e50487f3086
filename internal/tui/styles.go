package tui

import "github.com/charmbracelet/lipgloss"

// Theme colors
var (
	borderColor = lipgloss.Color("240")
	titleFg     = lipgloss.Color("#ffffff")
	statusFg    = lipgloss.Color("#cccccc")
	errorFg     = lipgloss.Color("#ff6b6b")
	successFg   = lipgloss.Color("#51cf66")
)

// Base styles
var (
	titleStyle = lipgloss.NewStyle().
			Foreground(titleFg).
			Bold(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(statusFg).
			AlignHorizontal(lipgloss.Right)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorFg).
			Bold(true)

	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor)
)

// connectedStatus returns a styled status indicator for connection state
func connectedStatus(connected bool) string {
	if connected {
		return lipgloss.NewStyle().Foreground(successFg).Render("🔗 Connected")
	}
	return lipgloss.NewStyle().Foreground(errorFg).Render("🔗 Disconnected")
}
