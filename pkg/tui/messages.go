package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pluqqy/walletdeck/pkg/models"
)

// StatusMsg is shown in the status bar.
type StatusMsg string

// toggleFlipMsg flips the panel on tab.
type toggleFlipMsg struct {
	tab Tab
}

// editNodeMsg opens the node form for a network, pre-filled when node is set.
type editNodeMsg struct {
	networkID models.NetworkID
	node      *models.NodeConfig
}

func statusCmd(format string, args ...interface{}) tea.Cmd {
	msg := StatusMsg(fmt.Sprintf(format, args...))
	return func() tea.Msg { return msg }
}

func toggleFlipCmd(tab Tab) tea.Cmd {
	return func() tea.Msg { return toggleFlipMsg{tab: tab} }
}
