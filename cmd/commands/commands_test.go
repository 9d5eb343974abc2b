package commands

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/pluqqy/walletdeck/pkg/models"
	"github.com/pluqqy/walletdeck/pkg/store"
)

const (
	aliceAddress = "0x4bbeEB066eD09B7AEd07bF39EEe0460DFa261520"
	bobAddress   = "0x0000000000000000000000000000000000000b0b"
)

func newTestRoot() *cobra.Command {
	root := &cobra.Command{
		Use:           "walletdeck",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return ApplyGlobalFlags(cmd)
		},
	}
	RegisterGlobalFlags(root)
	root.AddCommand(
		NewAccountsCommand(),
		NewAddressBookCommand(),
		NewNodesCommand(),
		NewSettingsCommand(),
		NewResetCommand(),
	)
	return root
}

type testEnv struct {
	t       *testing.T
	dataDir string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("WALLETDECK_CONFIG", "")
	return &testEnv{t: t, dataDir: t.TempDir()}
}

func (e *testEnv) run(args ...string) (string, error) {
	e.t.Helper()
	stdout, _, err := e.exec("", append([]string{"--yes"}, args...)...)
	return stdout, err
}

// exec runs walletdeck with stdin as input and returns stdout and stderr
// separately. Unlike run it does not pass --yes.
func (e *testEnv) exec(stdin string, args ...string) (string, string, error) {
	e.t.Helper()
	root := newTestRoot()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append([]string{"--data-dir", e.dataDir}, args...))
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func (e *testEnv) mustRun(args ...string) string {
	e.t.Helper()
	out, err := e.run(args...)
	require.NoError(e.t, err, "walletdeck %v", args)
	return out
}

func TestCommandOutput(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"empty list", []string{"accounts", "list"}, "ℹ No accounts found. Add one with 'walletdeck accounts add'.\n"},
		{"accounts add", []string{"accounts", "add", "savings", aliceAddress}, "✓ Added account savings (0x4bbeEB…261520)\n"},
		{"addressbook add", []string{"addressbook", "add", "bob", bobAddress, "--network", "Goerli"}, "✓ Added bob (0x000000…000b0b) on Goerli\n"},
		{"nodes add", []string{"nodes", "add", "Ethereum", "mine", "https://rpc.example.org"}, "✓ Added node mine to Ethereum and selected it\n"},
		{"settings set", []string{"settings", "set", "fiat", "EUR"}, "✓ Set fiat to EUR\n"},
		{"no color", []string{"settings", "set", "fiat", "GBP", "--no-color"}, "OK: Set fiat to GBP\n"},
		{"quiet", []string{"settings", "set", "fiat", "USD", "--quiet"}, ""},
		{"reset", []string{"reset"}, "✓ All data reset to defaults\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := env.run(tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestCommandWarningsGoToStderr(t *testing.T) {
	env := newTestEnv(t)

	stdout, stderr, err := env.exec("", "addressbook", "add", "carol", bobAddress, "--network", "Dogechain", "--quiet")
	require.NoError(t, err)
	assert.Empty(t, stdout)
	assert.Equal(t, "⚠ Network \"Dogechain\" is not in the registry; its nodes will not be listed\n", stderr)
}

func TestDeleteAsksForConfirmation(t *testing.T) {
	env := newTestEnv(t)
	env.mustRun("addressbook", "add", "alice", aliceAddress)

	stdout, _, err := env.exec("n\n", "addressbook", "delete", "alice")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Delete alice (0x4bbeEB…261520) from the address book? [y/N]: ")
	assert.Contains(t, stdout, "ℹ Deletion cancelled")

	var result AddressBookResult
	require.NoError(t, json.Unmarshal([]byte(env.mustRun("addressbook", "list", "-o", "json")), &result))
	assert.Equal(t, 1, result.Count)

	stdout, _, err = env.exec("y\n", "addressbook", "delete", "alice")
	require.NoError(t, err)
	assert.Contains(t, stdout, "✓ Deleted alice")
}

func TestAddressBookCommands(t *testing.T) {
	env := newTestEnv(t)

	env.mustRun("addressbook", "add", "alice", aliceAddress)
	env.mustRun("addressbook", "add", "bob", bobAddress, "--network", "Goerli", "--notes", "faucet")

	var result AddressBookResult
	require.NoError(t, json.Unmarshal([]byte(env.mustRun("addressbook", "list", "-o", "json")), &result))
	require.Equal(t, 2, result.Count)
	assert.Equal(t, "alice", result.Entries[0].Label)
	assert.Equal(t, "Ethereum", result.Entries[0].Network)
	assert.Equal(t, "Goerli", result.Entries[1].Network)
	assert.Equal(t, "faucet", result.Entries[1].Notes)
	assert.NotEmpty(t, result.Entries[0].UUID)

	text := env.mustRun("addressbook", "list")
	assert.Contains(t, text, "LABEL")
	assert.Contains(t, text, aliceAddress)

	env.mustRun("addressbook", "delete", "alice")
	require.NoError(t, json.Unmarshal([]byte(env.mustRun("ab", "list", "-o", "json")), &result))
	assert.Equal(t, 1, result.Count)
	assert.Equal(t, "bob", result.Entries[0].Label)
}

func TestAddressBookList_Filter(t *testing.T) {
	env := newTestEnv(t)
	env.mustRun("addressbook", "add", "alice", aliceAddress)
	env.mustRun("addressbook", "add", "bob", bobAddress, "--network", "Goerli")

	var result AddressBookResult
	require.NoError(t, json.Unmarshal([]byte(env.mustRun("addressbook", "list", "--filter", "NOT network:goerli", "-o", "json")), &result))
	require.Equal(t, 1, result.Count)
	assert.Equal(t, "alice", result.Entries[0].Label)

	_, err := env.run("addressbook", "list", "--filter", "alice OR")
	assert.ErrorContains(t, err, "invalid filter")
}

func TestAddressBookAdd_RejectsInvalidEntry(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.run("addressbook", "add", "broken", "0x123")
	require.Error(t, err)

	var result AddressBookResult
	require.NoError(t, json.Unmarshal([]byte(env.mustRun("addressbook", "list", "-o", "json")), &result))
	assert.Zero(t, result.Count)
}

func TestAddressBookDelete_UnknownEntry(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.run("addressbook", "delete", "nobody")
	assert.ErrorContains(t, err, "not found")
}

func TestNodesCommands(t *testing.T) {
	env := newTestEnv(t)

	env.mustRun("nodes", "add", "Ethereum", "mine", "https://rpc.example.org")

	var result NodesResult
	require.NoError(t, yaml.Unmarshal([]byte(env.mustRun("nodes", "list", "--all", "-o", "yaml")), &result))
	require.Len(t, result.Networks, len(models.DefaultNetworks()))
	node, ok := result.Networks[0].Node("mine")
	require.True(t, ok)
	assert.True(t, node.IsCustom)
	assert.Equal(t, "mine", result.Networks[0].SelectedNode)

	_, err := env.run("nodes", "add", "Ethereum", "mine", "https://other.example.org")
	assert.ErrorIs(t, err, store.ErrNodeNameTaken)

	_, err = env.run("nodes", "delete", "Ethereum", "eth_mycrypto")
	assert.ErrorIs(t, err, store.ErrNotCustomNode)

	env.mustRun("nodes", "delete", "Ethereum", "mine")
	require.NoError(t, yaml.Unmarshal([]byte(env.mustRun("nodes", "list", "--all", "-o", "yaml")), &result))
	_, ok = result.Networks[0].Node("mine")
	assert.False(t, ok)
}

func TestNodesList_OnlyNetworksInUse(t *testing.T) {
	env := newTestEnv(t)

	assert.Contains(t, env.mustRun("nodes", "list"), "No networks in use")

	env.mustRun("addressbook", "add", "bob", bobAddress, "--network", "Goerli")

	text := env.mustRun("nodes", "list")
	assert.Contains(t, text, "goerli_mycrypto")
	assert.NotContains(t, text, "eth_mycrypto")
}

func TestNodesAdd_UnknownNetwork(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.run("nodes", "add", "Dogechain", "x", "https://x.example")
	assert.ErrorContains(t, err, "unknown network")
}

func TestSettingsCommands(t *testing.T) {
	env := newTestEnv(t)

	var settings models.Settings
	require.NoError(t, json.Unmarshal([]byte(env.mustRun("settings", "show", "-o", "json")), &settings))
	assert.Equal(t, *models.DefaultSettings(), settings)

	env.mustRun("settings", "set", "fiat", "eur")
	env.mustRun("settings", "set", "inactivity_timer", "10")

	require.NoError(t, json.Unmarshal([]byte(env.mustRun("settings", "show", "-o", "json")), &settings))
	assert.Equal(t, models.Settings{Fiat: "EUR", InactivityTimer: 10}, settings)

	tests := []struct {
		name string
		args []string
	}{
		{"unknown key", []string{"settings", "set", "theme", "dark"}},
		{"unsupported fiat", []string{"settings", "set", "fiat", "XYZ"}},
		{"timer not allowed", []string{"settings", "set", "inactivity_timer", "7"}},
		{"timer not a number", []string{"settings", "set", "inactivity_timer", "soon"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.run(tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestAccountsCommands(t *testing.T) {
	env := newTestEnv(t)

	env.mustRun("accounts", "add", "savings", aliceAddress)
	_, err := env.run("accounts", "add", "broken", "nope")
	assert.ErrorIs(t, err, models.ErrInvalidAddress)
	_, err = env.run("accounts", "add", "elsewhere", bobAddress, "--network", "Dogechain")
	assert.ErrorContains(t, err, "unknown network")

	text := env.mustRun("accounts", "list")
	assert.Contains(t, text, "savings")
	assert.Contains(t, text, aliceAddress)

	env.mustRun("accounts", "delete", "savings")

	var result AccountsResult
	require.NoError(t, json.Unmarshal([]byte(env.mustRun("accounts", "list", "-o", "json")), &result))
	assert.Zero(t, result.Count)
}

func TestResetCommand(t *testing.T) {
	env := newTestEnv(t)
	env.mustRun("addressbook", "add", "alice", aliceAddress)
	env.mustRun("nodes", "add", "Ethereum", "mine", "https://rpc.example.org")
	env.mustRun("settings", "set", "fiat", "GBP")

	env.mustRun("reset")

	var entries AddressBookResult
	require.NoError(t, json.Unmarshal([]byte(env.mustRun("addressbook", "list", "-o", "json")), &entries))
	assert.Zero(t, entries.Count)

	var settings models.Settings
	require.NoError(t, json.Unmarshal([]byte(env.mustRun("settings", "show", "-o", "json")), &settings))
	assert.Equal(t, *models.DefaultSettings(), settings)

	var nodes NodesResult
	require.NoError(t, json.Unmarshal([]byte(env.mustRun("nodes", "list", "--all", "-o", "json")), &nodes))
	assert.Equal(t, models.DefaultNetworks(), nodes.Networks)
}

func TestInvalidOutputFormat(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.run("settings", "show", "-o", "xml")
	assert.ErrorContains(t, err, "unsupported output format")
}
