package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pluqqy/walletdeck/internal/logging"
	"github.com/pluqqy/walletdeck/pkg/models"
)

const statusTimeout = 3 * time.Second

// clearStatusMsg clears the status bar if no newer status replaced it.
type clearStatusMsg struct {
	seq int
}

// App is the settings screen. It owns the selected tab, the node edit target
// and the flip state of the Addresses and Nodes tabs; everything else lives in
// the stores passed through Deps.
type App struct {
	deps  Deps
	state ViewState

	addressFlip Flippable
	nodesFlip   Flippable

	accounts    *accountListPanel
	addressBook *addressBookPanel
	addressForm *addressFormPanel
	nodes       *networkNodesPanel
	nodeForm    *nodeFormPanel
	general     *generalPanel

	keys globalKeyMap
	help help.Model

	width     int
	height    int
	statusMsg string
	statusSeq int
}

func NewApp(deps Deps) *App {
	deps = deps.withDefaults()
	return &App{
		deps:  deps,
		state: NewViewState(deps.DefaultNetwork),
		accounts: newAccountListPanel(deps.Accounts, deps.CopyToClipboard, AccountListOptions{
			Deletable:              true,
			Copyable:               true,
			PrivacyCheckboxEnabled: deps.Features.PrivateTags,
		}),
		addressBook: newAddressBookPanel(deps.AddressBook),
		addressForm: newAddressFormPanel(deps.AddressBook),
		nodes:       newNetworkNodesPanel(deps.AddressBook, deps.Networks),
		nodeForm:    newNodeFormPanel(deps.Networks),
		general:     newGeneralPanel(deps.Settings, deps.Reset),
		keys:        newGlobalKeyMap(),
		help:        help.New(),
	}
}

func (a *App) Init() tea.Cmd {
	return nil
}

// State returns the screen's current view state.
func (a *App) State() ViewState { return a.state }

func (a *App) CurrentTab() Tab { return a.state.Tab }

// Select switches to t. Selecting the active tab changes nothing.
func (a *App) Select(t Tab) {
	if t == a.state.Tab {
		return
	}
	a.state = a.state.Select(t)
	logging.Debug("tui", "selected tab %s", a.state.Tab.Key())
}

// AddressBookFlipped reports whether the add form is showing.
func (a *App) AddressBookFlipped() bool { return a.addressFlip.Flipped() }

// NodesFlipped reports whether the node form is showing.
func (a *App) NodesFlipped() bool { return a.nodesFlip.Flipped() }

// ToggleAddressBook flips between the address list and the add form.
func (a *App) ToggleAddressBook() tea.Cmd {
	a.addressFlip.Toggle()
	if a.addressFlip.Flipped() {
		name := string(a.deps.DefaultNetwork)
		if network, ok := a.deps.Networks.NetworkByID(a.deps.DefaultNetwork); ok {
			name = network.Name
		}
		return a.addressForm.Open(name)
	}
	return nil
}

// ToggleNodeEditor records the node to edit on network id, then flips the
// Nodes tab. A nil node opens an empty add form.
func (a *App) ToggleNodeEditor(id models.NetworkID, node *models.NodeConfig) tea.Cmd {
	a.state = a.state.WithEditTarget(id, node)
	a.nodesFlip.Toggle()
	if a.nodesFlip.Flipped() {
		return a.nodeForm.Open(a.state.EditTarget)
	}
	return nil
}

// currentPanel returns the one panel shown for the active tab.
func (a *App) currentPanel() panel {
	switch a.state.Tab {
	case TabAccounts:
		return a.accounts
	case TabAddresses:
		if a.addressFlip.Flipped() {
			return a.addressForm
		}
		return a.addressBook
	case TabNodes:
		if a.nodesFlip.Flipped() {
			return a.nodeForm
		}
		return a.nodes
	case TabGeneral:
		return a.general
	default:
		panic("tui: unknown tab " + a.state.Tab.Key())
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		return a, nil

	case StatusMsg:
		a.statusMsg = string(msg)
		a.statusSeq++
		seq := a.statusSeq
		return a, tea.Tick(statusTimeout, func(time.Time) tea.Msg { return clearStatusMsg{seq: seq} })

	case clearStatusMsg:
		if msg.seq == a.statusSeq {
			a.statusMsg = ""
		}
		return a, nil

	case toggleFlipMsg:
		switch msg.tab {
		case TabAddresses:
			return a, a.ToggleAddressBook()
		case TabNodes:
			if a.nodesFlip.Flipped() {
				a.nodesFlip.Toggle()
				return a, nil
			}
			return a, a.ToggleNodeEditor(a.state.EditTarget.NetworkID, nil)
		}
		return a, nil

	case editNodeMsg:
		return a, a.ToggleNodeEditor(msg.networkID, msg.node)

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}
		if !a.currentPanel().Capturing() {
			if cmd, handled := a.handleGlobalKey(msg); handled {
				return a, cmd
			}
		}
	}

	return a, a.currentPanel().Update(msg)
}

func (a *App) handleGlobalKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, a.keys.Quit):
		return tea.Quit, true
	case key.Matches(msg, a.keys.NextTab):
		a.Select(a.state.Next().Tab)
		return nil, true
	case key.Matches(msg, a.keys.PrevTab):
		a.Select(a.state.Prev().Tab)
		return nil, true
	}
	for _, t := range Tabs {
		if key.Matches(msg, a.keys.Jump[t]) {
			a.Select(t)
			return nil, true
		}
	}
	return nil, false
}

func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}

	contentWidth := max(a.width-4, 20)
	p := a.currentPanel()

	sections := []string{
		renderHeader(a.width, "SETTINGS"),
		a.renderTabBar(),
		activeBorderStyle.Width(contentWidth).Padding(0, 1).Render(p.View(contentWidth - 2)),
	}
	if a.statusMsg != "" {
		sections = append(sections, statusStyle.Render(a.statusMsg))
	}

	bindings := p.Help()
	if !p.Capturing() {
		bindings = append(bindings, a.keys.NextTab, a.keys.Jump[0], a.keys.Quit)
	}
	sections = append(sections, helpBorderStyle.Width(contentWidth).Render(a.help.ShortHelpView(bindings)))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (a *App) renderTabBar() string {
	labels := make([]string, 0, len(Tabs))
	for _, t := range Tabs {
		style := tabStyle
		if t == a.state.Tab {
			style = activeTabStyle
		}
		labels = append(labels, style.Render(t.Title()))
	}
	return " " + strings.Join(labels, commentStyle.Render("│"))
}
