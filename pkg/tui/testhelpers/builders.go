package testhelpers

import (
	"fmt"

	"github.com/pluqqy/walletdeck/pkg/models"
)

// Address returns a valid, deterministic hex address for n.
func Address(n int) string {
	return fmt.Sprintf("0x%040x", n)
}

// MakeTestAccount creates an Ethereum account with a derived address.
func MakeTestAccount(n int, label string) models.Account {
	return models.Account{
		UUID:       fmt.Sprintf("account-%d", n),
		Label:      label,
		Address:    Address(n),
		NetworkID:  models.DefaultNetworkID,
		WalletType: "Web3",
	}
}

// EntryBuilder provides a fluent interface for building address book entries.
type EntryBuilder struct {
	entry models.AddressBookEntry
}

// NewEntry starts an entry on Ethereum with a derived address.
func NewEntry(n int, label string) *EntryBuilder {
	return &EntryBuilder{entry: models.AddressBookEntry{
		UUID:    fmt.Sprintf("entry-%d", n),
		Label:   label,
		Address: Address(n),
		Network: string(models.DefaultNetworkID),
	}}
}

func (b *EntryBuilder) WithNetwork(name string) *EntryBuilder {
	b.entry.Network = name
	return b
}

func (b *EntryBuilder) WithNotes(notes string) *EntryBuilder {
	b.entry.Notes = notes
	return b
}

func (b *EntryBuilder) Build() models.AddressBookEntry {
	return b.entry
}

// NetworkBuilder provides a fluent interface for building networks.
type NetworkBuilder struct {
	network models.Network
}

func NewNetwork(id string, chainID int) *NetworkBuilder {
	return &NetworkBuilder{network: models.Network{
		ID:      models.NetworkID(id),
		Name:    id,
		ChainID: chainID,
		Unit:    "ETH",
	}}
}

func (b *NetworkBuilder) WithNode(name, url string) *NetworkBuilder {
	b.network.Nodes = append(b.network.Nodes, models.NodeConfig{Name: name, Service: name, URL: url})
	if b.network.SelectedNode == "" {
		b.network.SelectedNode = name
	}
	return b
}

func (b *NetworkBuilder) WithCustomNode(name, url string) *NetworkBuilder {
	b.network.Nodes = append(b.network.Nodes, models.NodeConfig{Name: name, Service: "Custom", URL: url, IsCustom: true})
	return b
}

func (b *NetworkBuilder) Build() models.Network {
	return b.network
}
