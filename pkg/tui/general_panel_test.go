package tui

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pluqqy/walletdeck/pkg/models"
)

func TestStep(t *testing.T) {
	options := []string{"a", "b", "c"}

	assert.Equal(t, "b", step(options, "a", 1))
	assert.Equal(t, "a", step(options, "c", 1))
	assert.Equal(t, "c", step(options, "a", -1))
	assert.Equal(t, "a", step(options, "zzz", 1))
}

func newGeneralFixture(t *testing.T) *fixture {
	t.Helper()
	f := newFixture(t)
	f.app.Select(TabGeneral)
	return f
}

func TestGeneralPanel_ShowsCurrentSettings(t *testing.T) {
	f := newGeneralFixture(t)

	view := f.view()
	assert.Contains(t, view, "Fiat currency")
	assert.Contains(t, view, "USD")
	assert.Contains(t, view, "3 min")
	assert.Contains(t, view, "DANGER ZONE")
}

func TestGeneralPanel_CyclesValues(t *testing.T) {
	tests := []struct {
		name string
		keys []string
		want models.Settings
	}{
		{"fiat right", []string{"right"}, models.Settings{Fiat: "EUR", InactivityTimer: 3}},
		{"fiat left wraps", []string{"left"}, models.Settings{Fiat: "AUD", InactivityTimer: 3}},
		{"timer right", []string{"down", "right"}, models.Settings{Fiat: "USD", InactivityTimer: 5}},
		{"timer left", []string{"down", "h"}, models.Settings{Fiat: "USD", InactivityTimer: 1}},
		{"danger zone ignores cycling", []string{"down", "down", "right"}, *models.DefaultSettings()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newGeneralFixture(t)
			f.press(tt.keys...)
			assert.Equal(t, tt.want, f.settings.Settings())
		})
	}
}

func TestGeneralPanel_ResetRequiresConfirmation(t *testing.T) {
	f := newGeneralFixture(t)

	f.press("R")
	assert.Contains(t, f.view(), "RESET ALL DATA")
	assert.Zero(t, f.resetter.Calls)

	f.press("n")
	assert.Zero(t, f.resetter.Calls)
	assert.NotContains(t, f.view(), "RESET ALL DATA")

	f.press("R", "y")
	assert.Equal(t, 1, f.resetter.Calls)
	assert.Contains(t, f.view(), "All data reset to defaults")
}

func TestGeneralPanel_EnterOnDangerZoneOpensReset(t *testing.T) {
	f := newGeneralFixture(t)

	f.press("enter")
	assert.NotContains(t, f.view(), "RESET ALL DATA")

	f.press("down", "down", "enter")
	assert.Contains(t, f.view(), "RESET ALL DATA")
}

func TestGeneralPanel_ResetFailureShowsStatus(t *testing.T) {
	f := newGeneralFixture(t)
	f.resetter.Err = errors.New("disk full")

	f.press("R", "y")

	assert.Contains(t, f.view(), "Reset failed: disk full")
}
