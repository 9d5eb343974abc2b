package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/truncate"

	"github.com/pluqqy/walletdeck/internal/logging"
)

// AccountListOptions mirrors the capabilities the Accounts tab grants its list.
type AccountListOptions struct {
	Deletable              bool
	Copyable               bool
	PrivacyCheckboxEnabled bool
}

type accountListPanel struct {
	store   AccountStore
	copyFn  func(string) error
	opts    AccountListOptions
	cursor  int
	confirm *ConfirmationModel
}

func newAccountListPanel(store AccountStore, copyFn func(string) error, opts AccountListOptions) *accountListPanel {
	return &accountListPanel{
		store:   store,
		copyFn:  copyFn,
		opts:    opts,
		confirm: NewConfirmation(),
	}
}

func (p *accountListPanel) Capturing() bool {
	return p.confirm.Active()
}

func (p *accountListPanel) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if p.confirm.Active() {
		return p.confirm.Update(keyMsg)
	}

	accounts := p.store.Accounts()
	p.cursor = clampCursor(p.cursor, len(accounts))

	switch {
	case key.Matches(keyMsg, listKeys.Up):
		p.cursor = clampCursor(p.cursor-1, len(accounts))
	case key.Matches(keyMsg, listKeys.Down):
		p.cursor = clampCursor(p.cursor+1, len(accounts))
	}
	if len(accounts) == 0 {
		return nil
	}
	account := accounts[p.cursor]

	switch {
	case p.opts.Copyable && key.Matches(keyMsg, keyCopy):
		if err := p.copyFn(account.Address); err != nil {
			logging.Warn("tui", "clipboard unavailable: %v", err)
			return statusCmd("Failed to copy address: %v", err)
		}
		return statusCmd("✓ Copied %s", account.Address)

	case p.opts.Deletable && key.Matches(keyMsg, keyDelete):
		label := account.Label
		if label == "" {
			label = account.Address
		}
		p.confirm.ShowInline(fmt.Sprintf("Delete account %q?", label), true, func() tea.Cmd {
			if err := p.store.DeleteAccount(account.UUID); err != nil {
				logging.Error("tui", err, "delete account %s", account.UUID)
				return statusCmd("Failed to delete account: %v", err)
			}
			return statusCmd("✓ Deleted account %s", label)
		})

	case p.opts.PrivacyCheckboxEnabled && key.Matches(keyMsg, keyTogglePrivate):
		if err := p.store.SetPrivate(account.UUID, !account.Private); err != nil {
			return statusCmd("Failed to update account: %v", err)
		}
	}
	return nil
}

func (p *accountListPanel) View(width int) string {
	accounts := p.store.Accounts()
	p.cursor = clampCursor(p.cursor, len(accounts))

	var b strings.Builder
	b.WriteString(renderPaneHeading("YOUR ACCOUNTS", width))
	b.WriteString("\n\n")

	if len(accounts) == 0 {
		b.WriteString(commentStyle.Render("  No accounts added yet. Use 'walletdeck accounts' to import one."))
		b.WriteString("\n")
		return b.String()
	}

	labelWidth := max(12, width/4)
	for i, a := range accounts {
		label := truncate.StringWithTail(a.Label, uint(labelWidth), "…")
		line := fmt.Sprintf("%-*s  %s  %-10s %s", labelWidth, label, a.Address, a.NetworkID, a.WalletType)
		if p.opts.PrivacyCheckboxEnabled {
			checkbox := "[ ]"
			if a.Private {
				checkbox = "[✓]"
			}
			line = checkbox + " " + line
		}
		b.WriteString(renderRow(truncate.String(line, uint(max(width-2, 0))), i == p.cursor))
		b.WriteString("\n")
	}

	if p.confirm.Active() {
		b.WriteString("\n")
		b.WriteString(p.confirm.View())
		b.WriteString("\n")
	}
	return b.String()
}

func (p *accountListPanel) Help() []key.Binding {
	bindings := []key.Binding{listKeys.Up, listKeys.Down}
	if p.opts.Copyable {
		bindings = append(bindings, keyCopy)
	}
	if p.opts.Deletable {
		bindings = append(bindings, keyDelete)
	}
	if p.opts.PrivacyCheckboxEnabled {
		bindings = append(bindings, keyTogglePrivate)
	}
	return bindings
}
