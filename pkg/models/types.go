package models

// NetworkID identifies a network in the registry, e.g. "Ethereum".
type NetworkID string

type Account struct {
	UUID       string    `yaml:"uuid" json:"uuid"`
	Label      string    `yaml:"label" json:"label"`
	Address    string    `yaml:"address" json:"address"`
	NetworkID  NetworkID `yaml:"network_id" json:"network_id"`
	WalletType string    `yaml:"wallet_type" json:"wallet_type"`
	Private    bool      `yaml:"private,omitempty" json:"private,omitempty"`
}

// AddressBookEntry is a labelled address. Network holds the network name,
// which is resolved against the registry by name.
type AddressBookEntry struct {
	UUID    string `yaml:"uuid" json:"uuid"`
	Label   string `yaml:"label" json:"label"`
	Address string `yaml:"address" json:"address"`
	Network string `yaml:"network" json:"network"`
	Notes   string `yaml:"notes,omitempty" json:"notes,omitempty"`
}

// NodeConfig is an RPC endpoint for a network. Names are unique per network.
type NodeConfig struct {
	Name     string `yaml:"name" json:"name"`
	Service  string `yaml:"service" json:"service"`
	URL      string `yaml:"url" json:"url"`
	IsCustom bool   `yaml:"is_custom,omitempty" json:"is_custom,omitempty"`
}

type Network struct {
	ID           NetworkID    `yaml:"id" json:"id"`
	Name         string       `yaml:"name" json:"name"`
	ChainID      int          `yaml:"chain_id" json:"chain_id"`
	Unit         string       `yaml:"unit" json:"unit"`
	Nodes        []NodeConfig `yaml:"nodes" json:"nodes"`
	SelectedNode string       `yaml:"selected_node,omitempty" json:"selected_node,omitempty"`
}

// Node returns the node with the given name.
func (n Network) Node(name string) (NodeConfig, bool) {
	for _, node := range n.Nodes {
		if node.Name == name {
			return node, true
		}
	}
	return NodeConfig{}, false
}

// Clone returns a copy of the network that shares no slice storage.
func (n Network) Clone() Network {
	out := n
	out.Nodes = append([]NodeConfig(nil), n.Nodes...)
	return out
}

// DefaultNetworkID is used when no default network is configured.
const DefaultNetworkID NetworkID = "Ethereum"

// DefaultNetworks returns the built-in network registry.
func DefaultNetworks() []Network {
	return []Network{
		{
			ID:      "Ethereum",
			Name:    "Ethereum",
			ChainID: 1,
			Unit:    "ETH",
			Nodes: []NodeConfig{
				{Name: "eth_mycrypto", Service: "MyCrypto", URL: "https://api.mycryptoapi.com/eth"},
				{Name: "eth_ethscan", Service: "Etherscan", URL: "https://api.etherscan.io/api"},
				{Name: "eth_cloudflare", Service: "Cloudflare", URL: "https://cloudflare-eth.com"},
			},
			SelectedNode: "eth_mycrypto",
		},
		{
			ID:      "Goerli",
			Name:    "Goerli",
			ChainID: 5,
			Unit:    "GoerliETH",
			Nodes: []NodeConfig{
				{Name: "goerli_mycrypto", Service: "MyCrypto", URL: "https://goerli.mycryptoapi.com"},
			},
			SelectedNode: "goerli_mycrypto",
		},
		{
			ID:      "Sepolia",
			Name:    "Sepolia",
			ChainID: 11155111,
			Unit:    "SepoliaETH",
			Nodes: []NodeConfig{
				{Name: "sepolia_public", Service: "Public", URL: "https://rpc.sepolia.org"},
			},
			SelectedNode: "sepolia_public",
		},
		{
			ID:      "Polygon",
			Name:    "Polygon",
			ChainID: 137,
			Unit:    "MATIC",
			Nodes: []NodeConfig{
				{Name: "polygon_public", Service: "Polygon", URL: "https://polygon-rpc.com"},
			},
			SelectedNode: "polygon_public",
		},
	}
}
