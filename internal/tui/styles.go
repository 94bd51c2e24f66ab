package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Header styles
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#1B2838")).
			Padding(0, 1)

	// Section title style
	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Underline(true).
			Foreground(lipgloss.Color("#66C0F4"))

	// Selected row style
	selectedRowStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("#66C0F4")).
				Foreground(lipgloss.Color("#000000"))

	// Persona status styles
	statusInGameStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#90BA3C"))

	statusOnlineStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#57CBDE"))

	statusOfflineStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#898989"))

	// Disabled control style
	disabledStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#555555"))

	// Auto-mode indicator style
	autoOnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90BA3C")).
			Bold(true)

	// Footer style
	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#808080"))

	// Error style
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			Bold(true)
)

// getStatusStyle returns the style for a persona status.
func getStatusStyle(status string) lipgloss.Style {
	switch status {
	case "in-game":
		return statusInGameStyle
	case "online":
		return statusOnlineStyle
	case "offline":
		return statusOfflineStyle
	default:
		return lipgloss.NewStyle()
	}
}
