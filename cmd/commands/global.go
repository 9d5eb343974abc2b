package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pluqqy/walletdeck/internal/cli"
	"github.com/pluqqy/walletdeck/pkg/store"
)

const (
	flagConfig   = "config"
	flagDataDir  = "data-dir"
	flagLogLevel = "log-level"
	flagOutput   = "output"
	flagYes      = "yes"
	flagQuiet    = "quiet"
	flagNoColor  = "no-color"
)

// RegisterGlobalFlags adds the persistent flags every subcommand understands.
func RegisterGlobalFlags(root *cobra.Command) {
	flags := root.PersistentFlags()
	flags.String(flagConfig, "", "Config file (default: ~/.config/walletdeck/config.yaml)")
	flags.String(flagDataDir, "", "Data directory (default: ~/.walletdeck)")
	flags.String(flagLogLevel, "", "Log level: debug, info, warn or error")
	flags.StringP(flagOutput, "o", "text", "Output format: text, json or yaml")
	flags.BoolP(flagYes, "y", false, "Skip confirmation prompts")
	flags.BoolP(flagQuiet, "q", false, "Suppress informational output")
	flags.Bool(flagNoColor, false, "Disable symbols and colors in output")
}

// ApplyGlobalFlags validates the persistent flags.
func ApplyGlobalFlags(cmd *cobra.Command) error {
	format, _ := cmd.Flags().GetString(flagOutput)
	return cli.ValidateOutputFormat(format)
}

// Printer writes to cmd's streams with --quiet, --no-color and --yes applied.
func Printer(cmd *cobra.Command) *cli.Printer {
	p := cli.NewPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr(), cmd.InOrStdin())
	p.Quiet, _ = cmd.Flags().GetBool(flagQuiet)
	p.NoColor, _ = cmd.Flags().GetBool(flagNoColor)
	p.AssumeYes, _ = cmd.Flags().GetBool(flagYes)
	return p
}

// CommandContext loads configuration for cmd, applying the --config and
// --data-dir overrides.
func CommandContext(cmd *cobra.Command) (*cli.CommandContext, error) {
	cfgFile, _ := cmd.Flags().GetString(flagConfig)
	dataDir, _ := cmd.Flags().GetString(flagDataDir)

	ctx, err := cli.NewCommandContext(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return ctx.WithDataDir(dataDir), nil
}

func openStores(cmd *cobra.Command) (*store.Stores, error) {
	ctx, err := CommandContext(cmd)
	if err != nil {
		return nil, err
	}
	return ctx.Stores(cmd.Context())
}

func outputFormat(cmd *cobra.Command) string {
	format, _ := cmd.Flags().GetString(flagOutput)
	return format
}

func structuredOutput(cmd *cobra.Command) bool {
	format := outputFormat(cmd)
	return format == string(cli.FormatJSON) || format == string(cli.FormatYAML)
}
