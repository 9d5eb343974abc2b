package store

import (
	"fmt"
	"slices"
	"sync"

	"github.com/pluqqy/walletdeck/internal/logging"
	"github.com/pluqqy/walletdeck/pkg/files"
	"github.com/pluqqy/walletdeck/pkg/models"
)

type AccountStore struct {
	mu       sync.RWMutex
	dir      string
	accounts []models.Account
}

func NewAccountStore(dir string, accounts []models.Account) *AccountStore {
	return &AccountStore{dir: dir, accounts: slices.Clone(accounts)}
}

func (s *AccountStore) Accounts() []models.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.accounts)
}

// Add appends an account. It is used by the CLI and by tests; the settings
// screen itself never creates accounts.
func (s *AccountStore) Add(account models.Account) error {
	if err := models.ValidateAddress(account.Address); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	next := append(slices.Clone(s.accounts), account)
	return s.commit(next)
}

func (s *AccountStore) DeleteAccount(uuid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(uuid)
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrAccountNotFound, uuid)
	}
	next := slices.Delete(slices.Clone(s.accounts), idx, idx+1)
	if err := s.commit(next); err != nil {
		return err
	}
	logging.Info("store", "deleted account %s", uuid)
	return nil
}

// SetPrivate marks an account as private, hiding it from shared views.
func (s *AccountStore) SetPrivate(uuid string, private bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(uuid)
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrAccountNotFound, uuid)
	}
	next := slices.Clone(s.accounts)
	next[idx].Private = private
	return s.commit(next)
}

func (s *AccountStore) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commit([]models.Account{})
}

func (s *AccountStore) indexOf(uuid string) int {
	return slices.IndexFunc(s.accounts, func(a models.Account) bool { return a.UUID == uuid })
}

// commit persists next and swaps it in. Callers hold s.mu.
func (s *AccountStore) commit(next []models.Account) error {
	if err := files.WriteAccounts(s.dir, next); err != nil {
		return fmt.Errorf("failed to save accounts: %w", err)
	}
	s.accounts = next
	return nil
}
