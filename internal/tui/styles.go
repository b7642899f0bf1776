package tui

import "github.com/charmbracelet/lipgloss"

var (
	activeTabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Background(lipgloss.Color("236")).
			Padding(0, 1).
			Bold(true)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240")).
				Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Margin(1, 0)

	subtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")).
			Bold(true)

	coachStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	userMsgStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	scoreHighStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	scoreMidStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	scoreLowStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

// scoreStyle picks a color band for a 0-100 score, mirroring the
// green/yellow/red banding of the score screen.
func scoreStyle(score int) lipgloss.Style {
	switch {
	case score >= 60:
		return scoreHighStyle
	case score >= 40:
		return scoreMidStyle
	default:
		return scoreLowStyle
	}
}
