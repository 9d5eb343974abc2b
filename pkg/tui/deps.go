package tui

import (
	"github.com/atotto/clipboard"

	"github.com/pluqqy/walletdeck/pkg/models"
)

// AccountStore is the accounts capability the Accounts tab needs.
type AccountStore interface {
	Accounts() []models.Account
	DeleteAccount(uuid string) error
	SetPrivate(uuid string, private bool) error
}

// AddressBookStore is the address book capability the Addresses and Nodes tabs need.
type AddressBookStore interface {
	Entries() []models.AddressBookEntry
	Create(entry models.AddressBookEntry) (models.AddressBookEntry, error)
	Update(uuid string, entry models.AddressBookEntry) error
	Delete(uuid string) error
}

// NetworkStore is the network registry capability the Nodes tab needs.
type NetworkStore interface {
	NetworkByName(name string) (models.Network, bool)
	NetworkByID(id models.NetworkID) (models.Network, bool)
	AddNodeToNetwork(id models.NetworkID, node models.NodeConfig) error
	IsNodeNameAvailable(id models.NetworkID, name string) bool
	UpdateNode(id models.NetworkID, oldName string, node models.NodeConfig) error
	DeleteNode(id models.NetworkID, name string) error
}

// SettingsStore is the global settings capability the General tab needs.
type SettingsStore interface {
	Settings() models.Settings
	Update(settings models.Settings) error
}

// Resetter wipes all application data back to defaults.
type Resetter interface {
	ResetAll() error
}

// Features toggles optional UI.
type Features struct {
	PrivateTags bool
}

// Deps is everything the settings screen reads from or mutates.
type Deps struct {
	Accounts    AccountStore
	AddressBook AddressBookStore
	Networks    NetworkStore
	Settings    SettingsStore
	Reset       Resetter

	Features       Features
	DefaultNetwork models.NetworkID

	// CopyToClipboard defaults to the system clipboard.
	CopyToClipboard func(string) error
}

func (d Deps) withDefaults() Deps {
	if d.CopyToClipboard == nil {
		d.CopyToClipboard = clipboard.WriteAll
	}
	if d.DefaultNetwork == "" {
		d.DefaultNetwork = models.DefaultNetworkID
	}
	return d
}
