package models

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"slices"
	"strings"

	"github.com/hashicorp/go-multierror"
)

var addressPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)

var (
	ErrEmptyLabel      = errors.New("label is required")
	ErrInvalidAddress  = errors.New("address must be 0x followed by 40 hex characters")
	ErrEmptyNetwork    = errors.New("network is required")
	ErrEmptyNodeName   = errors.New("node name is required")
	ErrInvalidNodeURL  = errors.New("node URL must be an absolute http, https, ws or wss URL")
	ErrUnsupportedFiat = errors.New("unsupported fiat currency")
	ErrInvalidTimer    = errors.New("unsupported inactivity timer")
)

// ValidateAddress reports whether s is a hex account address.
func ValidateAddress(s string) error {
	if !addressPattern.MatchString(strings.TrimSpace(s)) {
		return fmt.Errorf("%w: %q", ErrInvalidAddress, s)
	}
	return nil
}

// Validate checks an address book entry, collecting every problem found.
func (e AddressBookEntry) Validate() error {
	var result *multierror.Error
	if strings.TrimSpace(e.Label) == "" {
		result = multierror.Append(result, ErrEmptyLabel)
	}
	if err := ValidateAddress(e.Address); err != nil {
		result = multierror.Append(result, err)
	}
	if strings.TrimSpace(e.Network) == "" {
		result = multierror.Append(result, ErrEmptyNetwork)
	}
	return result.ErrorOrNil()
}

// Validate checks a node configuration, collecting every problem found.
func (n NodeConfig) Validate() error {
	var result *multierror.Error
	if strings.TrimSpace(n.Name) == "" {
		result = multierror.Append(result, ErrEmptyNodeName)
	}
	u, err := url.Parse(strings.TrimSpace(n.URL))
	if err != nil || u.Host == "" || !slices.Contains([]string{"http", "https", "ws", "wss"}, u.Scheme) {
		result = multierror.Append(result, fmt.Errorf("%w: %q", ErrInvalidNodeURL, n.URL))
	}
	return result.ErrorOrNil()
}

func (s Settings) Validate() error {
	var result *multierror.Error
	if !slices.Contains(FiatCurrencies, s.Fiat) {
		result = multierror.Append(result, fmt.Errorf("%w: %q", ErrUnsupportedFiat, s.Fiat))
	}
	if !slices.Contains(InactivityTimers, s.InactivityTimer) {
		result = multierror.Append(result, fmt.Errorf("%w: %d", ErrInvalidTimer, s.InactivityTimer))
	}
	return result.ErrorOrNil()
}

// ErrorLines flattens an error into display lines, one per aggregated error.
func ErrorLines(err error) []string {
	if err == nil {
		return nil
	}
	var merr *multierror.Error
	if errors.As(err, &merr) {
		lines := make([]string, 0, len(merr.Errors))
		for _, e := range merr.Errors {
			lines = append(lines, e.Error())
		}
		return lines
	}
	return []string{err.Error()}
}
