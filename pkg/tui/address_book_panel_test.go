package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pluqqy/walletdeck/pkg/models"
	"github.com/pluqqy/walletdeck/pkg/tui/testhelpers"
)

func newAddressFixture(t *testing.T, entries ...models.AddressBookEntry) *fixture {
	t.Helper()
	f := newFixture(t, withEntries(entries...))
	f.app.Select(TabAddresses)
	return f
}

func TestAddressBookPanel_EmptyHint(t *testing.T) {
	f := newAddressFixture(t)
	assert.Contains(t, f.view(), "Your address book is empty")
}

func TestAddressBookPanel_CreateEntry(t *testing.T) {
	f := newAddressFixture(t, testhelpers.NewEntry(1, "alice").Build())

	f.press("n")
	require.True(t, f.app.AddressBookFlipped())
	assert.Equal(t, "Ethereum", f.app.addressForm.form.Value(addFieldNetwork))

	f.typeText("bob")
	f.press("tab")
	f.typeText(testhelpers.Address(2))
	f.press("tab", "tab")
	f.typeText("exchange")
	f.press("enter")

	assert.False(t, f.app.AddressBookFlipped())
	entries := f.book.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "bob", entries[1].Label)
	assert.Equal(t, testhelpers.Address(2), entries[1].Address)
	assert.Equal(t, "Ethereum", entries[1].Network)
	assert.Equal(t, "exchange", entries[1].Notes)
	assert.Contains(t, f.view(), "Added bob")
}

func TestAddressBookPanel_FormUsesDefaultNetworkName(t *testing.T) {
	mainnet := testhelpers.NewNetwork("eth", 1).Build()
	mainnet.Name = "Ethereum Mainnet"
	f := newFixture(t, withNetworks(mainnet), func(_ *fixture, d *Deps) { d.DefaultNetwork = "eth" })
	f.app.Select(TabAddresses)

	f.press("n")
	assert.Equal(t, "Ethereum Mainnet", f.app.addressForm.form.Value(addFieldNetwork))
}

func TestAddressBookPanel_CreateShowsValidationErrors(t *testing.T) {
	f := newAddressFixture(t)

	f.press("n")
	f.typeText("0xnope")
	f.press("ctrl+s")

	require.True(t, f.app.AddressBookFlipped())
	assert.Empty(t, f.book.Entries())
	view := f.view()
	assert.Contains(t, view, models.ErrInvalidAddress.Error())
}

func TestAddressBookPanel_EscapeDiscardsForm(t *testing.T) {
	f := newAddressFixture(t)

	f.press("n")
	f.typeText("draft")
	f.press("esc")

	assert.False(t, f.app.AddressBookFlipped())
	assert.Empty(t, f.book.Entries())

	f.press("n")
	assert.Empty(t, f.app.addressForm.form.Value(addFieldLabel))
}

func TestAddressBookPanel_EditInline(t *testing.T) {
	f := newAddressFixture(t, testhelpers.NewEntry(1, "alice").WithNotes("cold").Build())

	f.press("e")
	assert.Contains(t, f.view(), "EDIT ENTRY")

	f.typeText("2")
	f.press("tab")
	f.typeText(" storage")
	f.press("enter")

	entries := f.book.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "alice2", entries[0].Label)
	assert.Equal(t, "cold storage", entries[0].Notes)
	assert.Equal(t, testhelpers.Address(1), entries[0].Address)
	assert.NotContains(t, f.view(), "EDIT ENTRY")
}

func TestAddressBookPanel_EditCancel(t *testing.T) {
	f := newAddressFixture(t, testhelpers.NewEntry(1, "alice").Build())

	f.press("e")
	f.typeText("xyz")
	f.press("esc")

	assert.Equal(t, "alice", f.book.Entries()[0].Label)
}

func TestAddressBookPanel_Delete(t *testing.T) {
	f := newAddressFixture(t,
		testhelpers.NewEntry(1, "alice").Build(),
		testhelpers.NewEntry(2, "bob").Build(),
	)

	f.press("down", "d")
	assert.Contains(t, f.view(), `Delete "bob" from the address book?`)

	f.press("y")

	entries := f.book.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "alice", entries[0].Label)
}

func TestAddressBookPanel_Filter(t *testing.T) {
	f := newAddressFixture(t,
		testhelpers.NewEntry(1, "alice").Build(),
		testhelpers.NewEntry(2, "bob").WithNetwork("Goerli").Build(),
	)

	f.press("/")
	f.typeText("goerli")
	f.press("enter")

	view := f.view()
	assert.Contains(t, view, "bob")
	assert.NotContains(t, view, "alice")

	f.press("d", "y")
	require.Len(t, f.book.Entries(), 1)
	assert.Equal(t, "alice", f.book.Entries()[0].Label)

	f.press("esc")
	assert.Contains(t, f.view(), "alice")
}

func TestAddressBookPanel_FilterQueryLanguage(t *testing.T) {
	f := newAddressFixture(t,
		testhelpers.NewEntry(1, "alice").Build(),
		testhelpers.NewEntry(2, "bob").WithNetwork("Goerli").Build(),
	)

	f.press("/")
	f.typeText("NOT network:goerli")

	view := f.view()
	assert.Contains(t, view, "alice")
	assert.NotContains(t, view, "bob")
}

func TestAddressBookPanel_FilterFuzzyLabel(t *testing.T) {
	f := newAddressFixture(t,
		testhelpers.NewEntry(1, "Alice Savings").Build(),
		testhelpers.NewEntry(2, "bob").Build(),
	)

	f.press("/")
	f.typeText("savigns")

	view := f.view()
	assert.Contains(t, view, "Alice Savings")
	assert.NotContains(t, view, "bob")
}

func TestAddressBookPanel_InvalidFilterHidesNothing(t *testing.T) {
	f := newAddressFixture(t,
		testhelpers.NewEntry(1, "alice").Build(),
		testhelpers.NewEntry(2, "bob").Build(),
	)

	f.press("/")
	f.typeText("alice OR AND bob")

	view := f.view()
	assert.Contains(t, view, "operator AND cannot follow OR")
	assert.Contains(t, view, "alice")
	assert.Contains(t, view, "bob")
}
