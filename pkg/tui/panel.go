package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// panel is one side of a tab's content.
type panel interface {
	Update(msg tea.Msg) tea.Cmd
	View(width int) string
	// Capturing reports whether the panel consumes every key, e.g. while a
	// text input or confirmation has focus. Tab switching is disabled then.
	Capturing() bool
	Help() []key.Binding
}

// clampCursor keeps a list cursor inside [0, n).
func clampCursor(cursor, n int) int {
	if cursor >= n {
		cursor = n - 1
	}
	if cursor < 0 {
		cursor = 0
	}
	return cursor
}
