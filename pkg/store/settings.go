package store

import (
	"fmt"
	"sync"

	"github.com/pluqqy/walletdeck/internal/logging"
	"github.com/pluqqy/walletdeck/pkg/files"
	"github.com/pluqqy/walletdeck/pkg/models"
)

type SettingsStore struct {
	mu       sync.RWMutex
	dir      string
	settings models.Settings
}

func NewSettingsStore(dir string, settings models.Settings) *SettingsStore {
	return &SettingsStore{dir: dir, settings: settings}
}

func (s *SettingsStore) Settings() models.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

func (s *SettingsStore) Update(settings models.Settings) error {
	if err := settings.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.commit(settings); err != nil {
		return err
	}
	logging.Debug("store", "settings updated: fiat=%s inactivity=%dm", settings.Fiat, settings.InactivityTimer)
	return nil
}

func (s *SettingsStore) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commit(*models.DefaultSettings())
}

func (s *SettingsStore) commit(next models.Settings) error {
	if err := files.WriteSettings(s.dir, &next); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	s.settings = next
	return nil
}
