package files

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/pluqqy/walletdeck/pkg/models"
)

const (
	DataDirName     = ".walletdeck"
	AccountsFile    = "accounts.yaml"
	AddressBookFile = "addressbook.yaml"
	NetworksFile    = "networks.yaml"
	SettingsFile    = "settings.yaml"
)

// DefaultDataDir returns ~/.walletdeck, falling back to the working directory
// when no home directory is available.
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return DataDirName
	}
	return filepath.Join(home, DataDirName)
}

func InitDataDir(dir string) error {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("failed to create data directory %s: %w", dir, err)
	}
	return nil
}

// ReadYAML decodes the document at path into v. A missing file yields an
// error matching os.ErrNotExist.
func ReadYAML(path string, v interface{}) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(content, v); err != nil {
		return fmt.Errorf("failed to parse YAML %s: %w", path, err)
	}

	return nil
}

// WriteYAML encodes v to path through a temp file and rename so readers never
// observe a partial document.
func WriteYAML(path string, v interface{}) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}

	content, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s to YAML: %w", filepath.Base(path), err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", path, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}

	return nil
}

type accountsDoc struct {
	Accounts []models.Account `yaml:"accounts"`
}

type addressBookDoc struct {
	Entries []models.AddressBookEntry `yaml:"entries"`
}

type networksDoc struct {
	Networks []models.Network `yaml:"networks"`
}

// ReadAccounts returns the stored accounts, or an empty list if none exist.
func ReadAccounts(dir string) ([]models.Account, error) {
	var doc accountsDoc
	if err := ReadYAML(filepath.Join(dir, AccountsFile), &doc); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []models.Account{}, nil
		}
		return nil, err
	}
	return doc.Accounts, nil
}

func WriteAccounts(dir string, accounts []models.Account) error {
	return WriteYAML(filepath.Join(dir, AccountsFile), accountsDoc{Accounts: accounts})
}

// ReadAddressBook returns the stored address book, or an empty list if none exists.
func ReadAddressBook(dir string) ([]models.AddressBookEntry, error) {
	var doc addressBookDoc
	if err := ReadYAML(filepath.Join(dir, AddressBookFile), &doc); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []models.AddressBookEntry{}, nil
		}
		return nil, err
	}
	return doc.Entries, nil
}

func WriteAddressBook(dir string, entries []models.AddressBookEntry) error {
	return WriteYAML(filepath.Join(dir, AddressBookFile), addressBookDoc{Entries: entries})
}

// ReadNetworks returns the stored network registry, or the built-in networks
// if the file does not exist yet.
func ReadNetworks(dir string) ([]models.Network, error) {
	var doc networksDoc
	if err := ReadYAML(filepath.Join(dir, NetworksFile), &doc); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return models.DefaultNetworks(), nil
		}
		return nil, err
	}
	return doc.Networks, nil
}

func WriteNetworks(dir string, networks []models.Network) error {
	return WriteYAML(filepath.Join(dir, NetworksFile), networksDoc{Networks: networks})
}

// ReadSettings returns the stored settings, or the defaults if the file does
// not exist yet. Fields missing from the file keep their default values.
func ReadSettings(dir string) (*models.Settings, error) {
	settings := models.DefaultSettings()
	if err := ReadYAML(filepath.Join(dir, SettingsFile), settings); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return models.DefaultSettings(), nil
		}
		return nil, err
	}
	return settings, nil
}

func WriteSettings(dir string, settings *models.Settings) error {
	return WriteYAML(filepath.Join(dir, SettingsFile), settings)
}
