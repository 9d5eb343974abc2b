package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Version is shown in the header; cmd/walletdeck overrides it at startup.
var Version = "dev"

func renderHeader(width int, title string) string {
	logo := logoStyle.Render("◆ walletdeck") + " " + commentStyle.Render(Version)

	headerPadding := lipgloss.NewStyle().
		PaddingLeft(1).
		PaddingRight(1).
		Width(width)

	if title == "" {
		return headerPadding.Render(lipgloss.NewStyle().Width(width - 2).Align(lipgloss.Right).Render(logo))
	}

	// Title on the left, logo on the right
	titleRendered := titleStyle.Render(title)
	gap := width - 2 - lipgloss.Width(titleRendered) - lipgloss.Width(logo)
	if gap < 1 {
		gap = 1
	}
	return headerPadding.Render(titleRendered + strings.Repeat(" ", gap) + logo)
}

// renderPaneHeading renders "HEADING :::::" filling the pane width.
func renderPaneHeading(heading string, width int) string {
	remaining := width - len(heading) - 1
	if remaining < 0 {
		remaining = 0
	}
	return paneHeadingStyle.Render(heading) + " " + paneColonStyle.Render(strings.Repeat(":", remaining))
}
