package tui

import "github.com/charmbracelet/lipgloss"

// Colors follow the rest of the app: 170 marks the active pane, 240 inactive
// borders, 214 section headings.
var (
	activeColor   = lipgloss.Color("170")
	inactiveColor = lipgloss.Color("240")
	headingColor  = lipgloss.Color("214")
	focusColor    = lipgloss.Color("205")
	textColor     = lipgloss.Color("245")
	mutedColor    = lipgloss.Color("242")
	errorColor    = lipgloss.Color("196")

	logoStyle = lipgloss.NewStyle().Foreground(focusColor).Bold(true)

	titleStyle = lipgloss.NewStyle().Foreground(focusColor).Bold(true)

	paneHeadingStyle = lipgloss.NewStyle().Bold(true).Foreground(activeColor)
	paneColonStyle   = lipgloss.NewStyle().Foreground(activeColor)

	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(headingColor)

	labelStyle = lipgloss.NewStyle().Width(20).Foreground(textColor)

	normalStyle   = lipgloss.NewStyle().Foreground(textColor)
	focusedStyle  = lipgloss.NewStyle().Foreground(focusColor)
	selectedStyle = lipgloss.NewStyle().Background(lipgloss.Color("238"))
	commentStyle  = lipgloss.NewStyle().Foreground(mutedColor).Italic(true)
	errorStyle    = lipgloss.NewStyle().Foreground(errorColor)

	warningHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(headingColor)
	warningStyle       = lipgloss.NewStyle().Foreground(headingColor)

	activeBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(activeColor)

	helpBorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(inactiveColor).
			Padding(0, 1)

	tabStyle = lipgloss.NewStyle().
			Foreground(textColor).
			Padding(0, 2)

	activeTabStyle = lipgloss.NewStyle().
			Foreground(focusColor).
			Bold(true).
			Underline(true).
			Padding(0, 2)

	statusStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("62")).
			Foreground(lipgloss.Color("230")).
			Padding(0, 1)
)

// renderRow renders a list row with the cursor marker used across panels.
func renderRow(line string, selected bool) string {
	if selected {
		return selectedStyle.Render(focusedStyle.Render("▸ " + line))
	}
	return normalStyle.Render("  " + line)
}
