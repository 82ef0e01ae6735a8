package tui

import "github.com/charmbracelet/lipgloss"

// Color palette - minimal and accessible.
var (
	ColorPrimary = lipgloss.Color("39")  // Blue
	ColorSuccess = lipgloss.Color("34")  // Green
	ColorWarning = lipgloss.Color("214") // Orange
	ColorError   = lipgloss.Color("196") // Red
	ColorMuted   = lipgloss.Color("240") // Dark gray
)

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	PassStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	WarnStyle = lipgloss.NewStyle().Foreground(ColorWarning)
	FailStyle = lipgloss.NewStyle().Foreground(ColorError).Bold(true)

	MutedStyle = lipgloss.NewStyle().Foreground(ColorMuted)

	SelectedStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			MarginTop(1)
)

// RenderStatus colors a pass/warn/fail word.
func RenderStatus(status string) string {
	switch status {
	case "pass":
		return PassStyle.Render(status)
	case "warn":
		return WarnStyle.Render(status)
	case "fail":
		return FailStyle.Render(status)
	default:
		return status
	}
}
