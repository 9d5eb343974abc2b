// Package store holds the in-memory state behind each settings tab and
// persists it through package files after every mutation.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"

	"github.com/pluqqy/walletdeck/internal/logging"
	"github.com/pluqqy/walletdeck/pkg/files"
	"github.com/pluqqy/walletdeck/pkg/models"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrAccountNotFound = errors.New("account not found")
	ErrNodeNameTaken   = errors.New("node name already in use")
	ErrNotCustomNode   = errors.New("only custom nodes can be changed")
)

// Stores bundles the four stores backing the settings screen.
type Stores struct {
	Accounts    *AccountStore
	AddressBook *AddressBookStore
	Networks    *NetworkStore
	Settings    *SettingsStore
}

// Open creates dir if needed and loads every document concurrently.
func Open(ctx context.Context, dir string) (*Stores, error) {
	if err := files.InitDataDir(dir); err != nil {
		return nil, err
	}

	var (
		accounts []models.Account
		entries  []models.AddressBookEntry
		networks []models.Network
		settings *models.Settings
	)

	g, gctx := errgroup.WithContext(ctx)
	load := func(read func() error) func() error {
		return func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return read()
		}
	}
	g.Go(load(func() (err error) {
		accounts, err = files.ReadAccounts(dir)
		return err
	}))
	g.Go(load(func() (err error) {
		entries, err = files.ReadAddressBook(dir)
		return err
	}))
	g.Go(load(func() (err error) {
		networks, err = files.ReadNetworks(dir)
		return err
	}))
	g.Go(load(func() (err error) {
		settings, err = files.ReadSettings(dir)
		return err
	}))
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load stores from %s: %w", dir, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logging.Debug("store", "loaded %d accounts, %d address book entries, %d networks from %s",
		len(accounts), len(entries), len(networks), dir)

	return &Stores{
		Accounts:    NewAccountStore(dir, accounts),
		AddressBook: NewAddressBookStore(dir, entries),
		Networks:    NewNetworkStore(dir, networks),
		Settings:    NewSettingsStore(dir, *settings),
	}, nil
}

// ResetAll restores every store to its defaults and persists the result.
// Every store is attempted; failures are aggregated.
func (s *Stores) ResetAll() error {
	var result *multierror.Error
	for _, reset := range []func() error{s.Accounts.Reset, s.AddressBook.Reset, s.Networks.Reset, s.Settings.Reset} {
		if err := reset(); err != nil {
			result = multierror.Append(result, err)
		}
	}
	if err := result.ErrorOrNil(); err != nil {
		return fmt.Errorf("failed to reset application data: %w", err)
	}
	logging.Info("store", "application data reset to defaults")
	return nil
}

// Persist writes every store's current state, creating any missing documents.
func (s *Stores) Persist() error {
	settings := s.Settings.Settings()
	var result *multierror.Error
	for _, err := range []error{
		files.WriteAccounts(s.Accounts.dir, s.Accounts.Accounts()),
		files.WriteAddressBook(s.AddressBook.dir, s.AddressBook.Entries()),
		files.WriteNetworks(s.Networks.dir, s.Networks.Networks()),
		files.WriteSettings(s.Settings.dir, &settings),
	} {
		if err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}
