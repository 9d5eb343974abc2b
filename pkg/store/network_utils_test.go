package store

import (
	"reflect"
	"testing"

	"github.com/pluqqy/walletdeck/pkg/models"
)

func TestDistinctNetworks(t *testing.T) {
	registry := map[string]models.Network{
		"A": {ID: "A", Name: "A"},
		"B": {ID: "B", Name: "B"},
	}
	lookup := func(name string) (models.Network, bool) {
		n, ok := registry[name]
		return n, ok
	}

	tests := []struct {
		name     string
		networks []string
		want     []models.NetworkID
	}{
		{"duplicates and unknown dropped", []string{"A", "B", "A", "C"}, []models.NetworkID{"A", "B"}},
		{"first reference order", []string{"B", "A"}, []models.NetworkID{"B", "A"}},
		{"only unknown", []string{"C", "D"}, nil},
		{"empty address book", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var entries []models.AddressBookEntry
			for _, n := range tt.networks {
				entries = append(entries, models.AddressBookEntry{Network: n})
			}

			var got []models.NetworkID
			for _, n := range DistinctNetworks(entries, lookup) {
				got = append(got, n.ID)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("DistinctNetworks(%v) = %v, want %v", tt.networks, got, tt.want)
			}
		})
	}
}

func TestDistinctNetworksWithRegistry(t *testing.T) {
	s := NewNetworkStore(t.TempDir(), models.DefaultNetworks())
	entries := []models.AddressBookEntry{
		{Label: "a", Network: "Ethereum"},
		{Label: "b", Network: "Goerli"},
		{Label: "c", Network: "Ethereum"},
		{Label: "d", Network: "Dogechain"},
	}

	networks := DistinctNetworks(entries, s.NetworkByName)
	if len(networks) != 2 {
		t.Fatalf("Expected 2 networks, got %d", len(networks))
	}
	if networks[0].ID != "Ethereum" || networks[1].ID != "Goerli" {
		t.Errorf("Expected [Ethereum Goerli], got [%s %s]", networks[0].ID, networks[1].ID)
	}
}
