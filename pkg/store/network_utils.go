package store

import "github.com/pluqqy/walletdeck/pkg/models"

// NetworkLookup resolves a network by its name.
type NetworkLookup func(name string) (models.Network, bool)

// DistinctNetworks returns the networks referenced by the address book, each
// once, in order of first reference. Names the lookup cannot resolve are
// skipped.
func DistinctNetworks(entries []models.AddressBookEntry, lookup NetworkLookup) []models.Network {
	seen := make(map[models.NetworkID]bool, len(entries))
	var networks []models.Network
	for _, entry := range entries {
		network, ok := lookup(entry.Network)
		if !ok || seen[network.ID] {
			continue
		}
		seen[network.ID] = true
		networks = append(networks, network)
	}
	return networks
}
