package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pluqqy/walletdeck/internal/logging"
)

// NewResetCommand creates the reset command
func NewResetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Reset all data to defaults",
		Long: `Remove every account, address book entry and custom node, and restore
the default networks and settings. This cannot be undone.

Examples:
  walletdeck reset
  walletdeck reset --yes`,
		Args: cobra.NoArgs,
		RunE: runReset,
	}
}

func runReset(cmd *cobra.Command, args []string) error {
	out := Printer(cmd)
	cc, err := CommandContext(cmd)
	if err != nil {
		return err
	}

	ok, err := out.Confirm(fmt.Sprintf("Reset all walletdeck data in %s?", cc.Config.DataDir), false)
	if err != nil {
		return err
	}
	if !ok {
		out.Info("Reset cancelled")
		return nil
	}

	stores, err := cc.Stores(cmd.Context())
	if err != nil {
		return err
	}
	if err := stores.ResetAll(); err != nil {
		return fmt.Errorf("failed to reset data: %w", err)
	}
	logging.Info("cli", "reset all data in %s", cc.Config.DataDir)
	out.Success("All data reset to defaults")
	return nil
}
