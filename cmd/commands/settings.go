package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pluqqy/walletdeck/internal/cli"
	"github.com/pluqqy/walletdeck/pkg/models"
)

const (
	settingFiat            = "fiat"
	settingInactivityTimer = "inactivity_timer"
)

// NewSettingsCommand creates the settings command
func NewSettingsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change global settings",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Show global settings",
		Args:  cobra.NoArgs,
		RunE:  runSettingsShow,
	}

	set := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Change a global setting",
		Long: fmt.Sprintf(`Change a global setting.

Keys:
  %-18s one of %s
  %-18s minutes, one of %s

Examples:
  walletdeck settings set fiat EUR
  walletdeck settings set inactivity_timer 10`,
			settingFiat, strings.Join(models.FiatCurrencies, ", "),
			settingInactivityTimer, joinInts(models.InactivityTimers)),
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{settingFiat, settingInactivityTimer},
		RunE:      runSettingsSet,
	}

	cmd.AddCommand(show, set)
	return cmd
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ", ")
}

func runSettingsShow(cmd *cobra.Command, args []string) error {
	stores, err := openStores(cmd)
	if err != nil {
		return err
	}
	settings := stores.Settings.Settings()

	if structuredOutput(cmd) {
		return cli.OutputResults(cmd.OutOrStdout(), outputFormat(cmd), settings)
	}

	table := cli.NewTableFormatter(cmd.OutOrStdout())
	table.Header("KEY", "VALUE")
	table.Row(settingFiat, settings.Fiat)
	table.Row(settingInactivityTimer, strconv.Itoa(settings.InactivityTimer))
	table.Flush()
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	out := Printer(cmd)
	stores, err := openStores(cmd)
	if err != nil {
		return err
	}

	settings := stores.Settings.Settings()
	key, value := strings.ToLower(args[0]), args[1]
	switch key {
	case settingFiat:
		settings.Fiat = strings.ToUpper(value)
	case settingInactivityTimer:
		minutes, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("inactivity_timer must be a number of minutes: %w", err)
		}
		settings.InactivityTimer = minutes
	default:
		return fmt.Errorf("unknown setting %q (must be: %s or %s)", args[0], settingFiat, settingInactivityTimer)
	}

	if err := stores.Settings.Update(settings); err != nil {
		return fmt.Errorf("failed to update settings: %w", err)
	}
	out.Success("Set %s to %s", key, value)
	return nil
}
