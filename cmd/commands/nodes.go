package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pluqqy/walletdeck/internal/cli"
	"github.com/pluqqy/walletdeck/pkg/models"
	"github.com/pluqqy/walletdeck/pkg/store"
)

// NodesResult is the structured output of nodes list.
type NodesResult struct {
	Networks []models.Network `json:"networks" yaml:"networks"`
	Count    int              `json:"count" yaml:"count"`
}

var nodesListAll bool

// NewNodesCommand creates the nodes command
func NewNodesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nodes",
		Short: "Manage network RPC nodes",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List networks and their nodes",
		Long: `List the networks referenced by the address book and their nodes.
Use --all to list every network in the registry.

Examples:
  walletdeck nodes list
  walletdeck nodes list --all -o yaml`,
		Args: cobra.NoArgs,
		RunE: runNodesList,
	}
	list.Flags().BoolVarP(&nodesListAll, "all", "a", false, "List every network, not only those in use")

	add := &cobra.Command{
		Use:   "add <network> <name> <url>",
		Short: "Add a custom node to a network",
		Long: `Add a custom RPC node and select it for the network.

Examples:
  walletdeck nodes add Ethereum my_node https://rpc.example.org`,
		Args: cobra.ExactArgs(3),
		RunE: runNodesAdd,
	}

	del := &cobra.Command{
		Use:     "delete <network> <name>",
		Aliases: []string{"rm"},
		Short:   "Delete a custom node",
		Args:    cobra.ExactArgs(2),
		RunE:    runNodesDelete,
	}

	cmd.AddCommand(list, add, del)
	return cmd
}

// resolveNetwork accepts a network ID or name.
func resolveNetwork(networks *store.NetworkStore, ref string) (models.Network, error) {
	if n, ok := networks.NetworkByID(models.NetworkID(ref)); ok {
		return n, nil
	}
	if n, ok := networks.NetworkByName(ref); ok {
		return n, nil
	}
	return models.Network{}, fmt.Errorf("unknown network %q", ref)
}

func runNodesList(cmd *cobra.Command, args []string) error {
	out := Printer(cmd)
	stores, err := openStores(cmd)
	if err != nil {
		return err
	}

	networks := stores.Networks.Networks()
	if !nodesListAll {
		networks = store.DistinctNetworks(stores.AddressBook.Entries(), stores.Networks.NetworkByName)
	}

	if structuredOutput(cmd) {
		return cli.OutputResults(cmd.OutOrStdout(), outputFormat(cmd), NodesResult{Networks: networks, Count: len(networks)})
	}

	if len(networks) == 0 {
		out.Info("No networks in use. Add an address book entry, or pass --all.")
		return nil
	}

	table := cli.NewTableFormatter(cmd.OutOrStdout())
	table.Header("NETWORK", "NODE", "URL", "CUSTOM", "SELECTED")
	for _, n := range networks {
		for _, node := range n.Nodes {
			custom, selected := "", ""
			if node.IsCustom {
				custom = "yes"
			}
			if node.Name == n.SelectedNode {
				selected = "*"
			}
			table.Row(n.Name, node.Name, cli.TruncateString(node.URL, 48), custom, selected)
		}
	}
	table.Flush()
	return nil
}

func runNodesAdd(cmd *cobra.Command, args []string) error {
	out := Printer(cmd)
	stores, err := openStores(cmd)
	if err != nil {
		return err
	}
	network, err := resolveNetwork(stores.Networks, args[0])
	if err != nil {
		return err
	}

	node := models.NodeConfig{Name: args[1], Service: "Custom", URL: args[2]}
	if !stores.Networks.IsNodeNameAvailable(network.ID, node.Name) {
		return fmt.Errorf("%w: %s already has a node named %s", store.ErrNodeNameTaken, network.Name, node.Name)
	}
	if err := stores.Networks.AddNodeToNetwork(network.ID, node); err != nil {
		for _, line := range models.ErrorLines(err) {
			out.Error("%s", line)
		}
		return fmt.Errorf("failed to add node")
	}

	out.Success("Added node %s to %s and selected it", node.Name, network.Name)
	return nil
}

func runNodesDelete(cmd *cobra.Command, args []string) error {
	out := Printer(cmd)
	stores, err := openStores(cmd)
	if err != nil {
		return err
	}
	network, err := resolveNetwork(stores.Networks, args[0])
	if err != nil {
		return err
	}

	ok, err := out.Confirm(fmt.Sprintf("Delete node %s from %s?", args[1], network.Name), false)
	if err != nil {
		return err
	}
	if !ok {
		out.Info("Deletion cancelled")
		return nil
	}

	if err := stores.Networks.DeleteNode(network.ID, args[1]); err != nil {
		return fmt.Errorf("failed to delete node: %w", err)
	}
	out.Success("Deleted node %s from %s", args[1], network.Name)
	return nil
}
