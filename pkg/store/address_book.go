package store

import (
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/pluqqy/walletdeck/internal/logging"
	"github.com/pluqqy/walletdeck/pkg/files"
	"github.com/pluqqy/walletdeck/pkg/models"
)

type AddressBookStore struct {
	mu      sync.RWMutex
	dir     string
	entries []models.AddressBookEntry
}

func NewAddressBookStore(dir string, entries []models.AddressBookEntry) *AddressBookStore {
	return &AddressBookStore{dir: dir, entries: slices.Clone(entries)}
}

func (s *AddressBookStore) Entries() []models.AddressBookEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.entries)
}

// Create validates entry, assigns it a UUID and stores it.
func (s *AddressBookStore) Create(entry models.AddressBookEntry) (models.AddressBookEntry, error) {
	if err := entry.Validate(); err != nil {
		return models.AddressBookEntry{}, err
	}
	entry.UUID = uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.commit(append(slices.Clone(s.entries), entry)); err != nil {
		return models.AddressBookEntry{}, err
	}
	logging.Info("store", "created address book entry %s (%s)", entry.UUID, entry.Label)
	return entry, nil
}

// Update replaces the entry with the given UUID. The UUID itself is kept.
func (s *AddressBookStore) Update(id string, entry models.AddressBookEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("address book entry %s: %w", id, ErrNotFound)
	}
	entry.UUID = id
	next := slices.Clone(s.entries)
	next[idx] = entry
	return s.commit(next)
}

func (s *AddressBookStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("address book entry %s: %w", id, ErrNotFound)
	}
	if err := s.commit(slices.Delete(slices.Clone(s.entries), idx, idx+1)); err != nil {
		return err
	}
	logging.Info("store", "deleted address book entry %s", id)
	return nil
}

func (s *AddressBookStore) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commit([]models.AddressBookEntry{})
}

func (s *AddressBookStore) indexOf(id string) int {
	return slices.IndexFunc(s.entries, func(e models.AddressBookEntry) bool { return e.UUID == id })
}

func (s *AddressBookStore) commit(next []models.AddressBookEntry) error {
	if err := files.WriteAddressBook(s.dir, next); err != nil {
		return fmt.Errorf("failed to save address book: %w", err)
	}
	s.entries = next
	return nil
}
