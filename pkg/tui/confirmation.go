package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

// ConfirmationType defines the visual style of the confirmation
type ConfirmationType int

const (
	ConfirmTypeInline ConfirmationType = iota // Simple inline message
	ConfirmTypeDialog                         // Full dialog with border
)

// ConfirmationConfig holds the configuration for a confirmation prompt
type ConfirmationConfig struct {
	Title       string           // Title for dialog type (optional)
	Message     string           // Main confirmation message
	Warning     string           // Optional warning text (shown in orange)
	Details     []string         // Optional detail lines
	Destructive bool             // If true, Yes is red, No is green
	Type        ConfirmationType // Visual style
	Width       int              // Width for dialog type
}

// ConfirmationModel handles yes/no prompts. onConfirm and onCancel run
// synchronously inside Update and their commands are returned from it.
type ConfirmationModel struct {
	active    bool
	config    ConfirmationConfig
	onConfirm func() tea.Cmd
	onCancel  func() tea.Cmd
}

// NewConfirmation creates a new confirmation model
func NewConfirmation() *ConfirmationModel {
	return &ConfirmationModel{}
}

// Show activates the confirmation with the given configuration
func (m *ConfirmationModel) Show(config ConfirmationConfig, onConfirm, onCancel func() tea.Cmd) {
	m.active = true
	m.config = config
	m.onConfirm = onConfirm
	m.onCancel = onCancel
}

// ShowInline shows a one-line confirmation.
func (m *ConfirmationModel) ShowInline(message string, destructive bool, onConfirm func() tea.Cmd) {
	m.Show(ConfirmationConfig{
		Message:     message,
		Destructive: destructive,
		Type:        ConfirmTypeInline,
	}, onConfirm, nil)
}

// ShowDialog shows a bordered confirmation dialog.
func (m *ConfirmationModel) ShowDialog(title, message, warning string, width int, onConfirm func() tea.Cmd) {
	m.Show(ConfirmationConfig{
		Title:       title,
		Message:     message,
		Warning:     warning,
		Destructive: true,
		Type:        ConfirmTypeDialog,
		Width:       width,
	}, onConfirm, nil)
}

// Active returns whether the confirmation is currently shown
func (m *ConfirmationModel) Active() bool {
	return m.active
}

// Update handles key events for the confirmation
func (m *ConfirmationModel) Update(msg tea.KeyMsg) tea.Cmd {
	if !m.active {
		return nil
	}

	switch msg.String() {
	case "y", "Y":
		m.active = false
		if m.onConfirm != nil {
			return m.onConfirm()
		}
	case "n", "N", "esc":
		m.active = false
		if m.onCancel != nil {
			return m.onCancel()
		}
	}

	return nil
}

// View renders the confirmation based on its type
func (m *ConfirmationModel) View() string {
	if !m.active {
		return ""
	}

	if m.config.Type == ConfirmTypeDialog {
		return m.renderDialog()
	}
	return fmt.Sprintf("%s %s", m.config.Message, formatConfirmOptions(m.config.Destructive))
}

func (m *ConfirmationModel) renderDialog() string {
	width := m.config.Width
	if width <= 0 {
		width = 60
	}
	contentWidth := width - 4 // Account for border and padding
	center := lipgloss.NewStyle().Width(contentWidth).Align(lipgloss.Center)

	var content strings.Builder

	if m.config.Title != "" {
		content.WriteString(center.Render(warningHeaderStyle.Render(m.config.Title)))
		content.WriteString("\n\n")
	}

	if m.config.Message != "" {
		content.WriteString(center.Render(wordwrap.String(m.config.Message, contentWidth)))
		content.WriteString("\n")
	}

	if m.config.Warning != "" {
		content.WriteString("\n")
		content.WriteString(center.Render(warningStyle.Render(wordwrap.String(m.config.Warning, contentWidth))))
		content.WriteString("\n")
	}

	for _, detail := range m.config.Details {
		content.WriteString(normalStyle.Render("  • " + detail))
		content.WriteString("\n")
	}

	content.WriteString("\n")
	content.WriteString(center.Render(formatConfirmOptions(m.config.Destructive) + "  (y / n)"))

	return activeBorderStyle.
		Width(width).
		Padding(1, 1).
		Render(content.String())
}

// formatConfirmOptions renders the Yes/No labels, coloring the destructive
// choice red.
func formatConfirmOptions(destructive bool) string {
	yes := lipgloss.NewStyle().Foreground(lipgloss.Color("82")).Bold(true)
	no := lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	if destructive {
		yes, no = no, yes
	}
	return yes.Render("[Y]es") + " / " + no.Render("[N]o")
}
