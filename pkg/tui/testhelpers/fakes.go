package testhelpers

import (
	"fmt"
	"slices"
	"sync"

	"github.com/pluqqy/walletdeck/pkg/models"
	"github.com/pluqqy/walletdeck/pkg/store"
)

// FakeAccounts is an in-memory account store. Err, when set, is returned
// from every mutation.
type FakeAccounts struct {
	mu       sync.Mutex
	accounts []models.Account
	Err      error
}

func NewFakeAccounts(accounts ...models.Account) *FakeAccounts {
	return &FakeAccounts{accounts: accounts}
}

func (f *FakeAccounts) Accounts() []models.Account {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.accounts)
}

func (f *FakeAccounts) DeleteAccount(uuid string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return f.Err
	}
	i := slices.IndexFunc(f.accounts, func(a models.Account) bool { return a.UUID == uuid })
	if i < 0 {
		return fmt.Errorf("account %s: %w", uuid, store.ErrAccountNotFound)
	}
	f.accounts = slices.Delete(f.accounts, i, i+1)
	return nil
}

func (f *FakeAccounts) SetPrivate(uuid string, private bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return f.Err
	}
	i := slices.IndexFunc(f.accounts, func(a models.Account) bool { return a.UUID == uuid })
	if i < 0 {
		return fmt.Errorf("account %s: %w", uuid, store.ErrAccountNotFound)
	}
	f.accounts[i].Private = private
	return nil
}

// FakeAddressBook is an in-memory address book. Create validates entries the
// same way the real store does and assigns sequential IDs.
type FakeAddressBook struct {
	mu      sync.Mutex
	entries []models.AddressBookEntry
	nextID  int
	Err     error
}

func NewFakeAddressBook(entries ...models.AddressBookEntry) *FakeAddressBook {
	return &FakeAddressBook{entries: entries}
}

func (f *FakeAddressBook) Entries() []models.AddressBookEntry {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.entries)
}

func (f *FakeAddressBook) Create(entry models.AddressBookEntry) (models.AddressBookEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return models.AddressBookEntry{}, f.Err
	}
	if err := entry.Validate(); err != nil {
		return models.AddressBookEntry{}, err
	}
	f.nextID++
	entry.UUID = fmt.Sprintf("fake-%d", f.nextID)
	f.entries = append(f.entries, entry)
	return entry, nil
}

func (f *FakeAddressBook) Update(uuid string, entry models.AddressBookEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return f.Err
	}
	if err := entry.Validate(); err != nil {
		return err
	}
	i := slices.IndexFunc(f.entries, func(e models.AddressBookEntry) bool { return e.UUID == uuid })
	if i < 0 {
		return fmt.Errorf("entry %s: %w", uuid, store.ErrNotFound)
	}
	entry.UUID = uuid
	f.entries[i] = entry
	return nil
}

func (f *FakeAddressBook) Delete(uuid string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return f.Err
	}
	i := slices.IndexFunc(f.entries, func(e models.AddressBookEntry) bool { return e.UUID == uuid })
	if i < 0 {
		return fmt.Errorf("entry %s: %w", uuid, store.ErrNotFound)
	}
	f.entries = slices.Delete(f.entries, i, i+1)
	return nil
}

// FakeNetworks is an in-memory network registry.
type FakeNetworks struct {
	mu       sync.Mutex
	networks []models.Network
	Err      error
}

// NewFakeNetworks seeds the registry with networks, or the default networks
// when none are given.
func NewFakeNetworks(networks ...models.Network) *FakeNetworks {
	if len(networks) == 0 {
		networks = models.DefaultNetworks()
	}
	return &FakeNetworks{networks: networks}
}

func (f *FakeNetworks) find(match func(models.Network) bool) (models.Network, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	i := slices.IndexFunc(f.networks, match)
	if i < 0 {
		return models.Network{}, false
	}
	return f.networks[i].Clone(), true
}

func (f *FakeNetworks) NetworkByName(name string) (models.Network, bool) {
	return f.find(func(n models.Network) bool { return n.Name == name })
}

func (f *FakeNetworks) NetworkByID(id models.NetworkID) (models.Network, bool) {
	return f.find(func(n models.Network) bool { return n.ID == id })
}

func (f *FakeNetworks) indexOf(id models.NetworkID) int {
	return slices.IndexFunc(f.networks, func(n models.Network) bool { return n.ID == id })
}

func (f *FakeNetworks) IsNodeNameAvailable(id models.NetworkID, name string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	i := f.indexOf(id)
	if i < 0 {
		return true
	}
	_, taken := f.networks[i].Node(name)
	return !taken
}

func (f *FakeNetworks) AddNodeToNetwork(id models.NetworkID, node models.NodeConfig) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return f.Err
	}
	i := f.indexOf(id)
	if i < 0 {
		return fmt.Errorf("network %s: %w", id, store.ErrNotFound)
	}
	if _, taken := f.networks[i].Node(node.Name); taken {
		return fmt.Errorf("%w: %s", store.ErrNodeNameTaken, node.Name)
	}
	node.IsCustom = true
	f.networks[i].Nodes = append(f.networks[i].Nodes, node)
	f.networks[i].SelectedNode = node.Name
	return nil
}

func (f *FakeNetworks) UpdateNode(id models.NetworkID, oldName string, node models.NodeConfig) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return f.Err
	}
	netIdx, nodeIdx, err := f.customNode(id, oldName)
	if err != nil {
		return err
	}
	if node.Name != oldName {
		if _, taken := f.networks[netIdx].Node(node.Name); taken {
			return fmt.Errorf("%w: %s", store.ErrNodeNameTaken, node.Name)
		}
	}
	node.IsCustom = true
	f.networks[netIdx].Nodes[nodeIdx] = node
	return nil
}

func (f *FakeNetworks) DeleteNode(id models.NetworkID, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return f.Err
	}
	netIdx, nodeIdx, err := f.customNode(id, name)
	if err != nil {
		return err
	}
	f.networks[netIdx].Nodes = slices.Delete(f.networks[netIdx].Nodes, nodeIdx, nodeIdx+1)
	return nil
}

func (f *FakeNetworks) customNode(id models.NetworkID, name string) (int, int, error) {
	netIdx := f.indexOf(id)
	if netIdx < 0 {
		return -1, -1, fmt.Errorf("network %s: %w", id, store.ErrNotFound)
	}
	nodeIdx := slices.IndexFunc(f.networks[netIdx].Nodes, func(n models.NodeConfig) bool { return n.Name == name })
	if nodeIdx < 0 {
		return -1, -1, fmt.Errorf("node %s: %w", name, store.ErrNotFound)
	}
	if !f.networks[netIdx].Nodes[nodeIdx].IsCustom {
		return -1, -1, fmt.Errorf("%w: %s", store.ErrNotCustomNode, name)
	}
	return netIdx, nodeIdx, nil
}

// FakeSettings holds settings in memory.
type FakeSettings struct {
	mu       sync.Mutex
	settings models.Settings
	Updates  int
}

func NewFakeSettings() *FakeSettings {
	return &FakeSettings{settings: *models.DefaultSettings()}
}

func (f *FakeSettings) Settings() models.Settings {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.settings
}

func (f *FakeSettings) Update(settings models.Settings) error {
	if err := settings.Validate(); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.settings = settings
	f.Updates++
	return nil
}

// FakeResetter counts ResetAll calls and optionally runs OnReset.
type FakeResetter struct {
	Calls   int
	OnReset func()
	Err     error
}

func (f *FakeResetter) ResetAll() error {
	f.Calls++
	if f.Err != nil {
		return f.Err
	}
	if f.OnReset != nil {
		f.OnReset()
	}
	return nil
}

// FakeClipboard records copied text.
type FakeClipboard struct {
	Copied []string
	Err    error
}

func (c *FakeClipboard) WriteAll(text string) error {
	if c.Err != nil {
		return c.Err
	}
	c.Copied = append(c.Copied, text)
	return nil
}
