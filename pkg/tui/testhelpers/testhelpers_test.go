package testhelpers

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pluqqy/walletdeck/pkg/models"
	"github.com/pluqqy/walletdeck/pkg/store"
)

func TestKey(t *testing.T) {
	assert.Equal(t, "enter", Key("enter").String())
	assert.Equal(t, "ctrl+s", Key("ctrl+s").String())
	assert.Equal(t, " ", Key(" ").String())
	assert.Equal(t, "n", Key("n").String())
	assert.Len(t, Type("abc"), 3)
}

func TestCollectMsgs(t *testing.T) {
	one := func() tea.Msg { return "one" }
	two := func() tea.Msg { return "two" }

	assert.Nil(t, CollectMsgs(nil))
	assert.Equal(t, []tea.Msg{"one"}, CollectMsgs(one))
	assert.Equal(t, []tea.Msg{"one", "two"}, CollectMsgs(tea.Batch(one, two)))
	assert.Equal(t, []tea.Msg{"two", "one"}, CollectMsgs(tea.Sequence(two, one)))
}

func TestAddress(t *testing.T) {
	assert.NoError(t, models.ValidateAddress(Address(1)))
	assert.NotEqual(t, Address(1), Address(2))
}

func TestFakeAddressBook(t *testing.T) {
	book := NewFakeAddressBook(NewEntry(1, "alice").Build())

	created, err := book.Create(models.AddressBookEntry{Label: "bob", Address: Address(2), Network: "Ethereum"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.UUID)
	assert.Len(t, book.Entries(), 2)

	_, err = book.Create(models.AddressBookEntry{Label: "bad"})
	assert.ErrorIs(t, err, models.ErrInvalidAddress)

	require.NoError(t, book.Delete("entry-1"))
	assert.ErrorIs(t, book.Delete("entry-1"), store.ErrNotFound)
}

func TestFakeNetworks(t *testing.T) {
	networks := NewFakeNetworks()

	assert.False(t, networks.IsNodeNameAvailable("Ethereum", "eth_mycrypto"))
	assert.True(t, networks.IsNodeNameAvailable("Ethereum", "mine"))

	require.NoError(t, networks.AddNodeToNetwork("Ethereum", models.NodeConfig{Name: "mine", URL: "https://x.example"}))
	assert.ErrorIs(t, networks.AddNodeToNetwork("Ethereum", models.NodeConfig{Name: "mine"}), store.ErrNodeNameTaken)
	assert.ErrorIs(t, networks.DeleteNode("Ethereum", "eth_mycrypto"), store.ErrNotCustomNode)
	require.NoError(t, networks.DeleteNode("Ethereum", "mine"))
}

func TestFakeResetter(t *testing.T) {
	called := false
	r := &FakeResetter{OnReset: func() { called = true }}
	require.NoError(t, r.ResetAll())
	assert.True(t, called)

	r.Err = errors.New("boom")
	assert.Error(t, r.ResetAll())
	assert.Equal(t, 2, r.Calls)
}
