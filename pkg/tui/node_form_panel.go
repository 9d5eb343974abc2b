package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pluqqy/walletdeck/internal/logging"
	"github.com/pluqqy/walletdeck/pkg/models"
	"github.com/pluqqy/walletdeck/pkg/store"
)

const (
	nodeFieldName = iota
	nodeFieldURL
)

// customNodeService is recorded as the service of user-added nodes.
const customNodeService = "Custom"

// nodeFormPanel is the flip side of the Network & Nodes tab. It adds a node
// to target.NetworkID, or edits target.Node when set.
type nodeFormPanel struct {
	networks NetworkStore
	target   EditTarget
	form     *form
	confirm  *ConfirmationModel
}

func newNodeFormPanel(networks NetworkStore) *nodeFormPanel {
	return &nodeFormPanel{
		networks: networks,
		confirm:  NewConfirmation(),
		form: newForm(
			newField("Name", "my_node", "Unique within the network", 32),
			newField("URL", "https://…", "http, https, ws or wss endpoint", 256),
		),
	}
}

// Open loads target into the form.
func (p *nodeFormPanel) Open(target EditTarget) tea.Cmd {
	p.target = target
	cmd := p.form.Reset()
	if target.Node != nil {
		p.form.SetValue(nodeFieldName, target.Node.Name)
		p.form.SetValue(nodeFieldURL, target.Node.URL)
	}
	return cmd
}

func (p *nodeFormPanel) editing() bool { return p.target.Node != nil }

// NameValue and URLValue expose the current input for tests.
func (p *nodeFormPanel) NameValue() string { return p.form.Value(nodeFieldName) }
func (p *nodeFormPanel) URLValue() string  { return p.form.Value(nodeFieldURL) }

func (p *nodeFormPanel) Capturing() bool { return true }

func (p *nodeFormPanel) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok && p.confirm.Active() {
		return p.confirm.Update(keyMsg)
	}
	if ok {
		switch {
		case key.Matches(keyMsg, keyCancel):
			return toggleFlipCmd(TabNodes)
		case key.Matches(keyMsg, keySave):
			return p.submit()
		case key.Matches(keyMsg, keyDeleteNode):
			if p.editing() {
				p.askDelete()
			}
			return nil
		case key.Matches(keyMsg, keyConfirm):
			if p.form.OnLast() {
				return p.submit()
			}
			return p.form.Next()
		case key.Matches(keyMsg, keyNextField):
			return p.form.Next()
		case key.Matches(keyMsg, keyPrevField):
			return p.form.Prev()
		}
	}
	return p.form.Update(msg)
}

func (p *nodeFormPanel) submit() tea.Cmd {
	node := models.NodeConfig{
		Name:     p.form.Value(nodeFieldName),
		Service:  customNodeService,
		URL:      p.form.Value(nodeFieldURL),
		IsCustom: true,
	}
	if err := node.Validate(); err != nil {
		p.form.SetErrors(models.ErrorLines(err))
		return nil
	}

	id := p.target.NetworkID
	nameChanged := !p.editing() || node.Name != p.target.Node.Name
	if nameChanged && !p.networks.IsNodeNameAvailable(id, node.Name) {
		p.form.SetErrors([]string{fmt.Sprintf("a node named %q already exists on this network", node.Name)})
		return nil
	}

	var err error
	if p.editing() {
		err = p.networks.UpdateNode(id, p.target.Node.Name, node)
	} else {
		err = p.networks.AddNodeToNetwork(id, node)
	}
	if err != nil {
		logging.Error("tui", err, "save node %s on %s", node.Name, id)
		if errors.Is(err, store.ErrNodeNameTaken) {
			p.form.SetErrors([]string{fmt.Sprintf("a node named %q already exists on this network", node.Name)})
		} else {
			p.form.SetErrors(models.ErrorLines(err))
		}
		return nil
	}
	return tea.Sequence(toggleFlipCmd(TabNodes), statusCmd("✓ Saved node %s", node.Name))
}

func (p *nodeFormPanel) askDelete() {
	id, name := p.target.NetworkID, p.target.Node.Name
	p.confirm.ShowInline(fmt.Sprintf("Delete node %q?", name), true, func() tea.Cmd {
		if err := p.networks.DeleteNode(id, name); err != nil {
			p.form.SetErrors(models.ErrorLines(err))
			return nil
		}
		return tea.Sequence(toggleFlipCmd(TabNodes), statusCmd("✓ Deleted node %s", name))
	})
}

func (p *nodeFormPanel) View(width int) string {
	heading := "ADD NODE"
	if p.editing() {
		heading = "EDIT NODE"
	}

	var b strings.Builder
	b.WriteString(renderPaneHeading(heading, width))
	b.WriteString("\n\n")

	networkName := string(p.target.NetworkID)
	if network, ok := p.networks.NetworkByID(p.target.NetworkID); ok {
		networkName = network.Name
	}
	b.WriteString("  " + labelStyle.Render("Network:") + " " + normalStyle.Render(networkName))
	b.WriteString("\n\n")
	b.WriteString(p.form.View())

	if p.confirm.Active() {
		b.WriteString("\n")
		b.WriteString(p.confirm.View())
		b.WriteString("\n")
	}
	return b.String()
}

func (p *nodeFormPanel) Help() []key.Binding {
	bindings := []key.Binding{keyNextField, keySave, keyCancel}
	if p.editing() {
		bindings = append(bindings, keyDeleteNode)
	}
	return bindings
}
