package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/truncate"

	"github.com/pluqqy/walletdeck/pkg/models"
	"github.com/pluqqy/walletdeck/pkg/search"
)

// addressBookPanel is the list side of the Addresses tab.
type addressBookPanel struct {
	store   AddressBookStore
	cursor  int
	confirm *ConfirmationModel

	filter    textinput.Model
	filtering bool
	engine    *search.Engine
	filterErr error

	editing  string // UUID of the entry being edited inline
	editForm *form
}

const (
	editFieldLabel = iota
	editFieldNotes
)

func newAddressBookPanel(store AddressBookStore) *addressBookPanel {
	filter := textinput.New()
	filter.Prompt = "/ "
	filter.Placeholder = "alice  network:goerli  NOT notes:old"
	filter.CharLimit = 64

	return &addressBookPanel{
		store:   store,
		confirm: NewConfirmation(),
		filter:  filter,
		engine:  search.NewEngine(),
		editForm: newForm(
			newField("Label", "Label", "", 64),
			newField("Notes", "Notes", "", 256),
		),
	}
}

// visible returns the entries matching the filter. An unparsable filter
// hides nothing and is reported under the input.
func (p *addressBookPanel) visible() []models.AddressBookEntry {
	entries := p.store.Entries()
	matched, err := p.engine.Search(entries, p.filter.Value())
	p.filterErr = err
	if err != nil {
		return entries
	}
	return matched
}

func (p *addressBookPanel) Capturing() bool {
	return p.confirm.Active() || p.filtering || p.editing != ""
}

func (p *addressBookPanel) Update(msg tea.Msg) tea.Cmd {
	keyMsg, isKey := msg.(tea.KeyMsg)

	switch {
	case p.editing != "":
		return p.updateEditing(msg)
	case p.filtering:
		if isKey {
			switch {
			case key.Matches(keyMsg, keyCancel):
				p.filtering = false
				p.filter.Blur()
				p.filter.SetValue("")
				return nil
			case key.Matches(keyMsg, keyConfirm):
				p.filtering = false
				p.filter.Blur()
				return nil
			}
		}
		var cmd tea.Cmd
		p.filter, cmd = p.filter.Update(msg)
		p.cursor = 0
		return cmd
	}

	if !isKey {
		return nil
	}
	if p.confirm.Active() {
		return p.confirm.Update(keyMsg)
	}

	entries := p.visible()
	p.cursor = clampCursor(p.cursor, len(entries))

	switch {
	case key.Matches(keyMsg, listKeys.Up):
		p.cursor = clampCursor(p.cursor-1, len(entries))
	case key.Matches(keyMsg, listKeys.Down):
		p.cursor = clampCursor(p.cursor+1, len(entries))
	case key.Matches(keyMsg, keyNew):
		return toggleFlipCmd(TabAddresses)
	case key.Matches(keyMsg, keyFilter):
		p.filtering = true
		return p.filter.Focus()
	case key.Matches(keyMsg, keyCancel):
		p.filter.SetValue("")
	case key.Matches(keyMsg, keyEdit) && len(entries) > 0:
		entry := entries[p.cursor]
		p.editing = entry.UUID
		p.editForm.errs = nil
		p.editForm.SetValue(editFieldLabel, entry.Label)
		p.editForm.SetValue(editFieldNotes, entry.Notes)
		return p.editForm.Focus(editFieldLabel)
	case key.Matches(keyMsg, keyDelete) && len(entries) > 0:
		entry := entries[p.cursor]
		p.confirm.ShowInline(fmt.Sprintf("Delete %q from the address book?", entry.Label), true, func() tea.Cmd {
			if err := p.store.Delete(entry.UUID); err != nil {
				return statusCmd("Failed to delete entry: %v", err)
			}
			return statusCmd("✓ Deleted %s", entry.Label)
		})
	}
	return nil
}

func (p *addressBookPanel) updateEditing(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keyCancel):
			p.editing = ""
			return nil
		case key.Matches(keyMsg, keyNextField):
			return p.editForm.Next()
		case key.Matches(keyMsg, keyPrevField):
			return p.editForm.Prev()
		case key.Matches(keyMsg, keyConfirm), key.Matches(keyMsg, keySave):
			return p.saveEdit()
		}
	}
	return p.editForm.Update(msg)
}

func (p *addressBookPanel) saveEdit() tea.Cmd {
	var current models.AddressBookEntry
	found := false
	for _, e := range p.store.Entries() {
		if e.UUID == p.editing {
			current, found = e, true
			break
		}
	}
	if !found {
		p.editing = ""
		return statusCmd("Entry no longer exists")
	}

	current.Label = p.editForm.Value(editFieldLabel)
	current.Notes = p.editForm.Value(editFieldNotes)
	if err := p.store.Update(p.editing, current); err != nil {
		p.editForm.SetErrors(models.ErrorLines(err))
		return nil
	}
	p.editing = ""
	return statusCmd("✓ Updated %s", current.Label)
}

func (p *addressBookPanel) View(width int) string {
	entries := p.visible()
	p.cursor = clampCursor(p.cursor, len(entries))

	var b strings.Builder
	b.WriteString(renderPaneHeading("ADDRESS BOOK", width))
	b.WriteString("\n\n")

	if p.filtering || p.filter.Value() != "" {
		b.WriteString("  " + p.filter.View())
		b.WriteString("\n")
		if p.filterErr != nil {
			b.WriteString(errorStyle.Render("  ✗ " + p.filterErr.Error()))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if len(entries) == 0 {
		if p.filter.Value() != "" {
			b.WriteString(commentStyle.Render("  No entries match the filter."))
		} else {
			b.WriteString(commentStyle.Render("  Your address book is empty. Press 'n' to add an address."))
		}
		b.WriteString("\n")
		return b.String()
	}

	labelWidth := max(12, width/5)
	for i, e := range entries {
		label := truncate.StringWithTail(e.Label, uint(labelWidth), "…")
		line := fmt.Sprintf("%-*s  %s  %s", labelWidth, label, e.Address, e.Network)
		if e.Notes != "" {
			line += "  " + commentStyle.Render(e.Notes)
		}
		b.WriteString(renderRow(truncate.StringWithTail(line, uint(max(width-2, 0)), "…"), i == p.cursor))
		b.WriteString("\n")

		if e.UUID == p.editing {
			b.WriteString("\n")
			b.WriteString(activeBorderStyle.Padding(0, 1).MarginLeft(2).Render(
				sectionStyle.Render("EDIT ENTRY") + "\n\n" + p.editForm.View()))
			b.WriteString("\n")
		}
	}

	if p.confirm.Active() {
		b.WriteString("\n")
		b.WriteString(p.confirm.View())
		b.WriteString("\n")
	}
	return b.String()
}

func (p *addressBookPanel) Help() []key.Binding {
	if p.editing != "" {
		return []key.Binding{keyNextField, keyConfirm, keyCancel}
	}
	if p.filtering {
		return []key.Binding{keyConfirm, keyCancel}
	}
	return []key.Binding{listKeys.Up, listKeys.Down, keyNew, keyEdit, keyDelete, keyFilter}
}

// addressFormPanel is the add side of the Addresses tab.
type addressFormPanel struct {
	store AddressBookStore
	form  *form
}

const (
	addFieldLabel = iota
	addFieldAddress
	addFieldNetwork
	addFieldNotes
)

func newAddressFormPanel(store AddressBookStore) *addressFormPanel {
	return &addressFormPanel{
		store: store,
		form: newForm(
			newField("Label", "e.g. Alice", "", 64),
			newField("Address", "0x…", "Hex address, 0x followed by 40 characters", 42),
			newField("Network", "Ethereum", "Network name from the registry", 32),
			newField("Notes", "optional", "", 256),
		),
	}
}

// Open clears the form and pre-selects the default network.
func (p *addressFormPanel) Open(defaultNetwork string) tea.Cmd {
	cmd := p.form.Reset()
	p.form.SetValue(addFieldNetwork, defaultNetwork)
	return cmd
}

func (p *addressFormPanel) Capturing() bool { return true }

func (p *addressFormPanel) Update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keyCancel):
			return toggleFlipCmd(TabAddresses)
		case key.Matches(keyMsg, keySave):
			return p.submit()
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

func (p *addressFormPanel) submit() tea.Cmd {
	entry := models.AddressBookEntry{
		Label:   p.form.Value(addFieldLabel),
		Address: p.form.Value(addFieldAddress),
		Network: p.form.Value(addFieldNetwork),
		Notes:   p.form.Value(addFieldNotes),
	}
	created, err := p.store.Create(entry)
	if err != nil {
		p.form.SetErrors(models.ErrorLines(err))
		return nil
	}
	return tea.Sequence(
		toggleFlipCmd(TabAddresses),
		statusCmd("✓ Added %s to the address book", created.Label),
	)
}

func (p *addressFormPanel) View(width int) string {
	var b strings.Builder
	b.WriteString(renderPaneHeading("ADD ADDRESS", width))
	b.WriteString("\n\n")
	b.WriteString(p.form.View())
	return b.String()
}

func (p *addressFormPanel) Help() []key.Binding {
	return []key.Binding{keyNextField, keyPrevField, keySave, keyCancel}
}
