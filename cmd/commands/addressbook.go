package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pluqqy/walletdeck/internal/cli"
	"github.com/pluqqy/walletdeck/pkg/models"
	"github.com/pluqqy/walletdeck/pkg/search"
)

// AddressBookResult is the structured output of addressbook list.
type AddressBookResult struct {
	Entries []models.AddressBookEntry `json:"entries" yaml:"entries"`
	Count   int                       `json:"count" yaml:"count"`
}

var (
	entryNetwork string
	entryNotes   string
	entryFilter  string
)

// NewAddressBookCommand creates the addressbook command
func NewAddressBookCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "addressbook",
		Aliases: []string{"ab"},
		Short:   "Manage the address book",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List address book entries",
		Long: `List address book entries, optionally filtered.

Filters combine words and field:value conditions (label, address, network,
notes) with AND, OR and NOT. Words also match labels within two typos.

Examples:
  walletdeck addressbook list
  walletdeck addressbook list --filter "network:goerli NOT notes:old"
  walletdeck addressbook list --filter alcie -o json`,
		Args: cobra.NoArgs,
		RunE: runAddressBookList,
	}
	list.Flags().StringVarP(&entryFilter, "filter", "f", "", "Only list entries matching this query")

	add := &cobra.Command{
		Use:   "add <label> <address>",
		Short: "Add an address book entry",
		Long: `Add a labelled address to the address book.

The network is a network name such as Ethereum or Goerli and defaults to
the configured default network.

Examples:
  walletdeck addressbook add alice 0x4bbeEB066eD09B7AEd07bF39EEe0460DFa261520
  walletdeck addressbook add faucet 0x... --network Goerli --notes "test ETH"`,
		Args: cobra.ExactArgs(2),
		RunE: runAddressBookAdd,
	}
	add.Flags().StringVar(&entryNetwork, "network", "", "Network name (default: configured default network)")
	add.Flags().StringVar(&entryNotes, "notes", "", "Free-form notes")

	del := &cobra.Command{
		Use:     "delete <uuid|label>",
		Aliases: []string{"rm"},
		Short:   "Delete an address book entry",
		Args:    cobra.ExactArgs(1),
		RunE:    runAddressBookDelete,
	}

	cmd.AddCommand(list, add, del)
	return cmd
}

func runAddressBookList(cmd *cobra.Command, args []string) error {
	out := Printer(cmd)
	stores, err := openStores(cmd)
	if err != nil {
		return err
	}
	entries, err := search.NewEngine().Search(stores.AddressBook.Entries(), entryFilter)
	if err != nil {
		return fmt.Errorf("invalid filter: %w", err)
	}

	if structuredOutput(cmd) {
		return cli.OutputResults(cmd.OutOrStdout(), outputFormat(cmd), AddressBookResult{Entries: entries, Count: len(entries)})
	}

	if len(entries) == 0 && entryFilter != "" {
		out.Info("No entries match %q", entryFilter)
		return nil
	}
	if len(entries) == 0 {
		out.Info("The address book is empty. Add an entry with 'walletdeck addressbook add'.")
		return nil
	}

	table := cli.NewTableFormatter(cmd.OutOrStdout())
	table.Header("LABEL", "ADDRESS", "NETWORK", "NOTES", "UUID")
	for _, e := range entries {
		table.Row(cli.TruncateString(e.Label, 24), e.Address, e.Network, cli.TruncateString(e.Notes, 32), e.UUID)
	}
	table.Flush()
	return nil
}

func runAddressBookAdd(cmd *cobra.Command, args []string) error {
	out := Printer(cmd)
	cc, err := CommandContext(cmd)
	if err != nil {
		return err
	}
	stores, err := cc.Stores(cmd.Context())
	if err != nil {
		return err
	}

	network := entryNetwork
	if network == "" {
		if n, ok := stores.Networks.NetworkByID(cc.Config.DefaultNetwork); ok {
			network = n.Name
		} else {
			network = string(cc.Config.DefaultNetwork)
		}
	}
	if _, ok := stores.Networks.NetworkByName(network); !ok {
		out.Warning("Network %q is not in the registry; its nodes will not be listed", network)
	}

	entry, err := stores.AddressBook.Create(models.AddressBookEntry{
		Label:   args[0],
		Address: args[1],
		Network: network,
		Notes:   entryNotes,
	})
	if err != nil {
		for _, line := range models.ErrorLines(err) {
			out.Error("%s", line)
		}
		return fmt.Errorf("invalid address book entry")
	}

	out.Success("Added %s (%s) on %s", entry.Label, cli.ShortAddress(entry.Address), entry.Network)
	return nil
}

func runAddressBookDelete(cmd *cobra.Command, args []string) error {
	out := Printer(cmd)
	stores, err := openStores(cmd)
	if err != nil {
		return err
	}

	var matches []models.AddressBookEntry
	for _, e := range stores.AddressBook.Entries() {
		if e.UUID == args[0] || e.Label == args[0] {
			matches = append(matches, e)
		}
	}
	switch len(matches) {
	case 0:
		return fmt.Errorf("address book entry %q not found", args[0])
	case 1:
	default:
		return fmt.Errorf("%d entries are labelled %q; delete by UUID instead", len(matches), args[0])
	}
	entry := matches[0]

	ok, err := out.Confirm(fmt.Sprintf("Delete %s (%s) from the address book?", entry.Label, cli.ShortAddress(entry.Address)), false)
	if err != nil {
		return err
	}
	if !ok {
		out.Info("Deletion cancelled")
		return nil
	}

	if err := stores.AddressBook.Delete(entry.UUID); err != nil {
		return fmt.Errorf("failed to delete entry: %w", err)
	}
	out.Success("Deleted %s", entry.Label)
	return nil
}
