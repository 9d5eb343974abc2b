package commands

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/pluqqy/walletdeck/internal/cli"
	"github.com/pluqqy/walletdeck/pkg/models"
)

// AccountsResult is the structured output of accounts list.
type AccountsResult struct {
	Accounts []models.Account `json:"accounts" yaml:"accounts"`
	Count    int              `json:"count" yaml:"count"`
}

var (
	accountNetwork    string
	accountWalletType string
)

// NewAccountsCommand creates the accounts command
func NewAccountsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "List and manage wallet accounts",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List accounts",
		Long: `List every account known to walletdeck.

Examples:
  walletdeck accounts list
  walletdeck accounts list -o json`,
		Args: cobra.NoArgs,
		RunE: runAccountsList,
	}

	add := &cobra.Command{
		Use:   "add <label> <address>",
		Short: "Add a watch-only account",
		Long: `Add an account by address. walletdeck never stores keys.

Examples:
  walletdeck accounts add savings 0x4bbeEB066eD09B7AEd07bF39EEe0460DFa261520
  walletdeck accounts add testing 0x4bbe... --network Goerli`,
		Args: cobra.ExactArgs(2),
		RunE: runAccountsAdd,
	}
	add.Flags().StringVar(&accountNetwork, "network", string(models.DefaultNetworkID), "Network ID of the account")
	add.Flags().StringVar(&accountWalletType, "wallet-type", "ViewOnly", "Wallet type label")

	del := &cobra.Command{
		Use:     "delete <uuid|label>",
		Aliases: []string{"rm"},
		Short:   "Delete an account",
		Args:    cobra.ExactArgs(1),
		RunE:    runAccountsDelete,
	}

	cmd.AddCommand(list, add, del)
	return cmd
}

func runAccountsList(cmd *cobra.Command, args []string) error {
	out := Printer(cmd)
	stores, err := openStores(cmd)
	if err != nil {
		return err
	}
	accounts := stores.Accounts.Accounts()

	if structuredOutput(cmd) {
		return cli.OutputResults(cmd.OutOrStdout(), outputFormat(cmd), AccountsResult{Accounts: accounts, Count: len(accounts)})
	}

	if len(accounts) == 0 {
		out.Info("No accounts found. Add one with 'walletdeck accounts add'.")
		return nil
	}

	table := cli.NewTableFormatter(cmd.OutOrStdout())
	table.Header("LABEL", "ADDRESS", "NETWORK", "TYPE", "PRIVATE", "UUID")
	for _, a := range accounts {
		private := ""
		if a.Private {
			private = "yes"
		}
		table.Row(cli.TruncateString(a.Label, 24), a.Address, string(a.NetworkID), a.WalletType, private, a.UUID)
	}
	table.Flush()
	return nil
}

func runAccountsAdd(cmd *cobra.Command, args []string) error {
	out := Printer(cmd)
	stores, err := openStores(cmd)
	if err != nil {
		return err
	}

	account := models.Account{
		UUID:       uuid.NewString(),
		Label:      args[0],
		Address:    args[1],
		NetworkID:  models.NetworkID(accountNetwork),
		WalletType: accountWalletType,
	}
	if _, ok := stores.Networks.NetworkByID(account.NetworkID); !ok {
		return fmt.Errorf("unknown network %q", accountNetwork)
	}
	if err := stores.Accounts.Add(account); err != nil {
		return fmt.Errorf("failed to add account: %w", err)
	}

	out.Success("Added account %s (%s)", account.Label, cli.ShortAddress(account.Address))
	return nil
}

func runAccountsDelete(cmd *cobra.Command, args []string) error {
	out := Printer(cmd)
	stores, err := openStores(cmd)
	if err != nil {
		return err
	}

	var matches []models.Account
	for _, a := range stores.Accounts.Accounts() {
		if a.UUID == args[0] || a.Label == args[0] {
			matches = append(matches, a)
		}
	}
	switch len(matches) {
	case 0:
		return fmt.Errorf("account %q not found", args[0])
	case 1:
	default:
		return fmt.Errorf("%d accounts are labelled %q; delete by UUID instead", len(matches), args[0])
	}
	account := matches[0]

	ok, err := out.Confirm(fmt.Sprintf("Delete account %s (%s)?", account.Label, cli.ShortAddress(account.Address)), false)
	if err != nil {
		return err
	}
	if !ok {
		out.Info("Deletion cancelled")
		return nil
	}

	if err := stores.Accounts.DeleteAccount(account.UUID); err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}
	out.Success("Deleted account %s", account.Label)
	return nil
}
