package tui

import "github.com/pluqqy/walletdeck/pkg/models"

// Tab is one of the settings screen's tabs, in tab bar order.
type Tab int

const (
	TabAccounts Tab = iota
	TabAddresses
	TabNodes
	TabGeneral

	tabCount
)

// Tabs lists every tab in tab bar order.
var Tabs = []Tab{TabAccounts, TabAddresses, TabNodes, TabGeneral}

func (t Tab) Valid() bool {
	return t >= 0 && t < tabCount
}

// Key is the stable identifier used in logs and tests.
func (t Tab) Key() string {
	switch t {
	case TabAccounts:
		return "accounts"
	case TabAddresses:
		return "addresses"
	case TabNodes:
		return "nodes"
	case TabGeneral:
		return "general"
	default:
		return "unknown"
	}
}

// Title is the label shown in the tab bar.
func (t Tab) Title() string {
	switch t {
	case TabAccounts:
		return "Accounts"
	case TabAddresses:
		return "Addresses"
	case TabNodes:
		return "Network & Nodes"
	case TabGeneral:
		return "General"
	default:
		return ""
	}
}

// EditTarget is the node the Nodes tab's form edits. A nil Node means a new
// node is being added to NetworkID.
type EditTarget struct {
	NetworkID models.NetworkID
	Node      *models.NodeConfig
}

// ViewState is the settings screen's own state. Transitions return a new value.
type ViewState struct {
	Tab        Tab
	EditTarget EditTarget
}

func NewViewState(defaultNetwork models.NetworkID) ViewState {
	return ViewState{
		Tab:        TabAccounts,
		EditTarget: EditTarget{NetworkID: defaultNetwork},
	}
}

// Select makes t the active tab. Invalid tabs leave the state unchanged.
func (s ViewState) Select(t Tab) ViewState {
	if t.Valid() {
		s.Tab = t
	}
	return s
}

// Next selects the following tab, wrapping to the first.
func (s ViewState) Next() ViewState {
	return s.Select((s.Tab + 1) % tabCount)
}

// Prev selects the preceding tab, wrapping to the last.
func (s ViewState) Prev() ViewState {
	return s.Select((s.Tab + tabCount - 1) % tabCount)
}

// WithEditTarget records the node to edit. The node is copied.
func (s ViewState) WithEditTarget(id models.NetworkID, node *models.NodeConfig) ViewState {
	target := EditTarget{NetworkID: id}
	if node != nil {
		n := *node
		target.Node = &n
	}
	s.EditTarget = target
	return s
}
