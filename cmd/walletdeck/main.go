package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/pluqqy/walletdeck/cmd/commands"
	"github.com/pluqqy/walletdeck/internal/logging"
	"github.com/pluqqy/walletdeck/pkg/tui"
)

// Version is set during build with -ldflags
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "walletdeck",
	Short: "Terminal companion for wallet accounts, address book and network nodes",
	Long: `walletdeck keeps your watch-only accounts, address book, RPC nodes and
preferences as plain YAML files and provides a TUI settings screen for them.

Run without arguments to open the settings screen.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := commands.ApplyGlobalFlags(cmd); err != nil {
			return err
		}
		return initLogging(cmd)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Close()
	},
	RunE: runTUI,
}

// initLogging sends logs to the configured file for the TUI and to stderr
// for every other command. Subcommands only log warnings unless --log-level
// asks for more.
func initLogging(cmd *cobra.Command) error {
	cc, err := commands.CommandContext(cmd)
	if err != nil {
		return err
	}
	flag, _ := cmd.Flags().GetString("log-level")
	levelName := cc.Config.Log.Level
	if flag != "" {
		levelName = flag
	}
	level, err := logging.ParseLevel(levelName)
	if err != nil {
		return err
	}

	if cmd == cmd.Root() {
		return logging.InitForTUI(level, cc.Config.Log.File)
	}
	if flag == "" {
		level = max(level, logging.LevelWarn)
	}
	logging.InitForCLI(level)
	return nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cc, err := commands.CommandContext(cmd)
	if err != nil {
		return err
	}
	stores, err := cc.Stores(cmd.Context())
	if err != nil {
		return err
	}

	tui.Version = version
	app := tui.NewApp(tui.Deps{
		Accounts:       stores.Accounts,
		AddressBook:    stores.AddressBook,
		Networks:       stores.Networks,
		Settings:       stores.Settings,
		Reset:          stores,
		Features:       tui.Features{PrivateTags: cc.Config.Features.PrivateTags},
		DefaultNetwork: cc.Config.DefaultNetwork,
	})

	logging.Info("main", "starting settings screen with data in %s", cc.Config.DataDir)
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to start the terminal user interface: %w", err)
	}
	return nil
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the walletdeck data directory",
	Long:  `Creates the data directory and writes the default networks and settings`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cc, err := commands.CommandContext(cmd)
		if err != nil {
			return err
		}

		out := commands.Printer(cmd)
		out.Info("Initializing walletdeck in %s...", cc.Config.DataDir)

		stores, err := cc.Stores(cmd.Context())
		if err != nil {
			return err
		}
		if err := stores.Persist(); err != nil {
			return fmt.Errorf("failed to write data files: %w", err)
		}

		out.Success("Created %s", cc.Config.DataDir)
		out.Info("Run 'walletdeck' to open the settings screen.")
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of walletdeck",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "walletdeck version %s\n", version)
	},
}

func init() {
	commands.RegisterGlobalFlags(rootCmd)

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(commands.NewAccountsCommand())
	rootCmd.AddCommand(commands.NewAddressBookCommand())
	rootCmd.AddCommand(commands.NewNodesCommand())
	rootCmd.AddCommand(commands.NewSettingsCommand())
	rootCmd.AddCommand(commands.NewResetCommand())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		commands.Printer(rootCmd).Error("%v", err)
		os.Exit(1)
	}
}
