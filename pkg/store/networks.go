package store

import (
	"fmt"
	"slices"
	"sync"

	"github.com/pluqqy/walletdeck/internal/logging"
	"github.com/pluqqy/walletdeck/pkg/files"
	"github.com/pluqqy/walletdeck/pkg/models"
)

// NetworkStore is the network registry together with each network's nodes.
type NetworkStore struct {
	mu       sync.RWMutex
	dir      string
	networks []models.Network
}

func NewNetworkStore(dir string, networks []models.Network) *NetworkStore {
	return &NetworkStore{dir: dir, networks: cloneNetworks(networks)}
}

func (s *NetworkStore) Networks() []models.Network {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneNetworks(s.networks)
}

func (s *NetworkStore) NetworkByID(id models.NetworkID) (models.Network, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx := s.indexOf(id)
	if idx < 0 {
		return models.Network{}, false
	}
	return s.networks[idx].Clone(), true
}

func (s *NetworkStore) NetworkByName(name string) (models.Network, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, n := range s.networks {
		if n.Name == name {
			return n.Clone(), true
		}
	}
	return models.Network{}, false
}

// IsNodeNameAvailable reports whether no node on the network uses name.
// An unknown network has no nodes, so every name is available on it.
func (s *NetworkStore) IsNodeNameAvailable(id models.NetworkID, name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx := s.indexOf(id)
	if idx < 0 {
		return true
	}
	_, taken := s.networks[idx].Node(name)
	return !taken
}

// AddNodeToNetwork adds a custom node and selects it.
func (s *NetworkStore) AddNodeToNetwork(id models.NetworkID, node models.NodeConfig) error {
	if err := node.Validate(); err != nil {
		return err
	}
	node.IsCustom = true

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("network %s: %w", id, ErrNotFound)
	}
	if _, taken := s.networks[idx].Node(node.Name); taken {
		return fmt.Errorf("%w: %s", ErrNodeNameTaken, node.Name)
	}

	next := cloneNetworks(s.networks)
	next[idx].Nodes = append(next[idx].Nodes, node)
	next[idx].SelectedNode = node.Name
	if err := s.commit(next); err != nil {
		return err
	}
	logging.Info("store", "added node %s to %s", node.Name, id)
	return nil
}

// UpdateNode replaces the custom node named oldName. Renaming onto another
// existing node name fails with ErrNodeNameTaken.
func (s *NetworkStore) UpdateNode(id models.NetworkID, oldName string, node models.NodeConfig) error {
	if err := node.Validate(); err != nil {
		return err
	}
	node.IsCustom = true

	s.mu.Lock()
	defer s.mu.Unlock()

	netIdx, nodeIdx, err := s.customNode(id, oldName)
	if err != nil {
		return err
	}
	if node.Name != oldName {
		if _, taken := s.networks[netIdx].Node(node.Name); taken {
			return fmt.Errorf("%w: %s", ErrNodeNameTaken, node.Name)
		}
	}

	next := cloneNetworks(s.networks)
	next[netIdx].Nodes[nodeIdx] = node
	if next[netIdx].SelectedNode == oldName {
		next[netIdx].SelectedNode = node.Name
	}
	return s.commit(next)
}

// DeleteNode removes a custom node. If it was selected, selection falls back
// to the network's first remaining node.
func (s *NetworkStore) DeleteNode(id models.NetworkID, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	netIdx, nodeIdx, err := s.customNode(id, name)
	if err != nil {
		return err
	}

	next := cloneNetworks(s.networks)
	network := &next[netIdx]
	network.Nodes = slices.Delete(network.Nodes, nodeIdx, nodeIdx+1)
	if network.SelectedNode == name {
		network.SelectedNode = ""
		if len(network.Nodes) > 0 {
			network.SelectedNode = network.Nodes[0].Name
		}
	}
	if err := s.commit(next); err != nil {
		return err
	}
	logging.Info("store", "deleted node %s from %s", name, id)
	return nil
}

func (s *NetworkStore) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commit(models.DefaultNetworks())
}

func (s *NetworkStore) customNode(id models.NetworkID, name string) (int, int, error) {
	netIdx := s.indexOf(id)
	if netIdx < 0 {
		return -1, -1, fmt.Errorf("network %s: %w", id, ErrNotFound)
	}
	nodeIdx := slices.IndexFunc(s.networks[netIdx].Nodes, func(n models.NodeConfig) bool { return n.Name == name })
	if nodeIdx < 0 {
		return -1, -1, fmt.Errorf("node %s on %s: %w", name, id, ErrNotFound)
	}
	if !s.networks[netIdx].Nodes[nodeIdx].IsCustom {
		return -1, -1, fmt.Errorf("%w: %s", ErrNotCustomNode, name)
	}
	return netIdx, nodeIdx, nil
}

func (s *NetworkStore) indexOf(id models.NetworkID) int {
	return slices.IndexFunc(s.networks, func(n models.Network) bool { return n.ID == id })
}

func (s *NetworkStore) commit(next []models.Network) error {
	if err := files.WriteNetworks(s.dir, next); err != nil {
		return fmt.Errorf("failed to save networks: %w", err)
	}
	s.networks = next
	return nil
}

func cloneNetworks(networks []models.Network) []models.Network {
	out := make([]models.Network, len(networks))
	for i, n := range networks {
		out[i] = n.Clone()
	}
	return out
}
