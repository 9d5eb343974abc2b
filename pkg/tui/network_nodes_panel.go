package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/truncate"

	"github.com/pluqqy/walletdeck/pkg/models"
	"github.com/pluqqy/walletdeck/pkg/store"
)

// nodeRow is one line of the nodes list: a network heading, or one of its
// nodes when node is set.
type nodeRow struct {
	network models.Network
	node    *models.NodeConfig
}

// networkNodesPanel is the list side of the Network & Nodes tab. It shows
// only the networks the address book refers to.
type networkNodesPanel struct {
	addressBook AddressBookStore
	networks    NetworkStore
	cursor      int
}

func newNetworkNodesPanel(addressBook AddressBookStore, networks NetworkStore) *networkNodesPanel {
	return &networkNodesPanel{addressBook: addressBook, networks: networks}
}

func (p *networkNodesPanel) rows() []nodeRow {
	var rows []nodeRow
	for _, network := range store.DistinctNetworks(p.addressBook.Entries(), p.networks.NetworkByName) {
		rows = append(rows, nodeRow{network: network})
		for i := range network.Nodes {
			rows = append(rows, nodeRow{network: network, node: &network.Nodes[i]})
		}
	}
	return rows
}

func (p *networkNodesPanel) Capturing() bool { return false }

func (p *networkNodesPanel) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	rows := p.rows()
	p.cursor = clampCursor(p.cursor, len(rows))

	switch {
	case key.Matches(keyMsg, listKeys.Up):
		p.cursor = clampCursor(p.cursor-1, len(rows))
		return nil
	case key.Matches(keyMsg, listKeys.Down):
		p.cursor = clampCursor(p.cursor+1, len(rows))
		return nil
	}
	if len(rows) == 0 {
		return nil
	}
	row := rows[p.cursor]

	switch {
	case key.Matches(keyMsg, keyNew):
		return editNodeCmd(row.network.ID, nil)
	case key.Matches(keyMsg, keyEdit):
		if row.node == nil {
			return nil
		}
		if !row.node.IsCustom {
			return statusCmd("Only custom nodes can be edited")
		}
		return editNodeCmd(row.network.ID, row.node)
	}
	return nil
}

func editNodeCmd(id models.NetworkID, node *models.NodeConfig) tea.Cmd {
	msg := editNodeMsg{networkID: id}
	if node != nil {
		n := *node
		msg.node = &n
	}
	return func() tea.Msg { return msg }
}

func (p *networkNodesPanel) View(width int) string {
	rows := p.rows()
	p.cursor = clampCursor(p.cursor, len(rows))

	var b strings.Builder
	b.WriteString(renderPaneHeading("NETWORK & NODES", width))
	b.WriteString("\n\n")

	if len(rows) == 0 {
		b.WriteString(commentStyle.Render("  No networks in use. Add an address book entry to configure its network's nodes."))
		b.WriteString("\n")
		return b.String()
	}

	for i, row := range rows {
		var line string
		if row.node == nil {
			line = sectionStyle.Render(fmt.Sprintf("%s (chain %d)", row.network.Name, row.network.ChainID))
			if i > 0 {
				b.WriteString("\n")
			}
		} else {
			marker := "  "
			if row.network.SelectedNode == row.node.Name {
				marker = "● "
			}
			line = fmt.Sprintf("  %s%-20s %s", marker, row.node.Name, row.node.URL)
			if row.node.IsCustom {
				line += "  " + commentStyle.Render("custom")
			}
		}
		b.WriteString(renderRow(truncate.StringWithTail(line, uint(max(width-2, 0)), "…"), i == p.cursor))
		b.WriteString("\n")
	}
	return b.String()
}

func (p *networkNodesPanel) Help() []key.Binding {
	return []key.Binding{listKeys.Up, listKeys.Down, keyNew, keyEdit}
}
