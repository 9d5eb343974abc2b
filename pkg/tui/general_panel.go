package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wordwrap"

	"github.com/pluqqy/walletdeck/internal/logging"
	"github.com/pluqqy/walletdeck/pkg/models"
)

const (
	generalRowFiat = iota
	generalRowTimer
	generalRowDangerZone
	generalRowCount
)

const resetWarning = "This removes every account, address book entry and custom node, " +
	"and restores the default networks and settings. It cannot be undone."

// generalPanel holds the General tab: global settings plus the danger zone.
type generalPanel struct {
	settings SettingsStore
	resetter Resetter
	cursor   int
	width    int
	confirm  *ConfirmationModel
}

func newGeneralPanel(settings SettingsStore, resetter Resetter) *generalPanel {
	return &generalPanel{
		settings: settings,
		resetter: resetter,
		confirm:  NewConfirmation(),
	}
}

func (p *generalPanel) Capturing() bool {
	return p.confirm.Active()
}

func (p *generalPanel) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if p.confirm.Active() {
		return p.confirm.Update(keyMsg)
	}

	switch {
	case key.Matches(keyMsg, listKeys.Up):
		p.cursor = clampCursor(p.cursor-1, generalRowCount)
	case key.Matches(keyMsg, listKeys.Down):
		p.cursor = clampCursor(p.cursor+1, generalRowCount)
	case key.Matches(keyMsg, keyCycleLeft):
		return p.cycle(-1)
	case key.Matches(keyMsg, keyCycleRight):
		return p.cycle(1)
	case key.Matches(keyMsg, keyResetData),
		p.cursor == generalRowDangerZone && key.Matches(keyMsg, keyConfirm):
		p.cursor = generalRowDangerZone
		p.askReset()
	}
	return nil
}

// cycle moves the value on the cursor row by delta, wrapping around.
func (p *generalPanel) cycle(delta int) tea.Cmd {
	s := p.settings.Settings()
	switch p.cursor {
	case generalRowFiat:
		s.Fiat = step(models.FiatCurrencies, s.Fiat, delta)
	case generalRowTimer:
		s.InactivityTimer = step(models.InactivityTimers, s.InactivityTimer, delta)
	default:
		return nil
	}
	if err := p.settings.Update(s); err != nil {
		logging.Error("tui", err, "update settings")
		return statusCmd("Failed to save settings: %v", err)
	}
	return nil
}

// step returns the option delta places from current. Unknown values start
// from the first option.
func step[T comparable](options []T, current T, delta int) T {
	i := slices.Index(options, current)
	if i < 0 {
		return options[0]
	}
	n := len(options)
	return options[((i+delta)%n+n)%n]
}

func (p *generalPanel) askReset() {
	p.confirm.ShowDialog("⚠ RESET ALL DATA", "Reset walletdeck to its defaults?", resetWarning, min(max(p.width-4, 40), 64), func() tea.Cmd {
		if err := p.resetter.ResetAll(); err != nil {
			logging.Error("tui", err, "reset all data")
			return statusCmd("Reset failed: %v", err)
		}
		logging.Info("tui", "all data reset to defaults")
		return statusCmd("✓ All data reset to defaults")
	})
}

func (p *generalPanel) View(width int) string {
	p.width = width
	if p.confirm.Active() {
		return p.confirm.View()
	}

	s := p.settings.Settings()

	var b strings.Builder
	b.WriteString(renderPaneHeading("GENERAL", width))
	b.WriteString("\n\n")

	b.WriteString(renderRow(labelStyle.Render("Fiat currency")+"‹ "+s.Fiat+" ›", p.cursor == generalRowFiat))
	b.WriteString("\n")
	b.WriteString(renderRow(labelStyle.Render("Inactivity timer")+fmt.Sprintf("‹ %d min ›", s.InactivityTimer), p.cursor == generalRowTimer))
	b.WriteString("\n\n")

	b.WriteString(renderPaneHeading("DANGER ZONE", width))
	b.WriteString("\n\n")
	b.WriteString(warningStyle.Render(wordwrap.String(resetWarning, max(width-4, 20))))
	b.WriteString("\n\n")
	b.WriteString(renderRow(errorStyle.Render("Reset all data"), p.cursor == generalRowDangerZone))
	b.WriteString("\n")
	return b.String()
}

func (p *generalPanel) Help() []key.Binding {
	return []key.Binding{listKeys.Up, listKeys.Down, keyCycleLeft, keyResetData}
}
