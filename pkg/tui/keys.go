package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
)

// bindingFor turns an OS-aware shortcut into a key binding with help text.
func bindingFor(s ShortcutKey, desc string) key.Binding {
	return key.NewBinding(
		key.WithKeys(s.Get()),
		key.WithHelp(FormatShortcutForHelp(s), desc),
	)
}

type globalKeyMap struct {
	Quit    key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	Jump    [tabCount]key.Binding
}

func newGlobalKeyMap() globalKeyMap {
	km := globalKeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "quit"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("⇧tab", "prev tab"),
		),
	}
	for _, t := range Tabs {
		n := strconv.Itoa(int(t) + 1)
		km.Jump[t] = key.NewBinding(key.WithKeys(n), key.WithHelp("1-4", "jump to tab"))
	}
	return km
}

type listKeyMap struct {
	Up   key.Binding
	Down key.Binding
}

var listKeys = listKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
}

var (
	keyNew           = bindingFor(Shortcuts.New, "new")
	keyEdit          = bindingFor(Shortcuts.Edit, "edit")
	keyDelete        = bindingFor(Shortcuts.Delete, "delete")
	keyCopy          = bindingFor(Shortcuts.Copy, "copy address")
	keyFilter        = bindingFor(Shortcuts.Filter, "filter")
	keyTogglePrivate = bindingFor(Shortcuts.TogglePrivate, "toggle private")
	keyResetData     = bindingFor(Shortcuts.ResetData, "reset all data")
	keySave          = key.NewBinding(
		key.WithKeys(Shortcuts.Save.Get(), "ctrl+s"),
		key.WithHelp(FormatShortcutForHelp(Shortcuts.Save), "save"),
	)
	keyDeleteNode = key.NewBinding(
		key.WithKeys(Shortcuts.DeleteNode.Get(), "ctrl+d"),
		key.WithHelp(FormatShortcutForHelp(Shortcuts.DeleteNode), "delete node"),
	)
	keyCancel    = bindingFor(Shortcuts.Cancel, "cancel")
	keyConfirm   = bindingFor(Shortcuts.Confirm, "confirm")
	keyNextField = key.NewBinding(
		key.WithKeys("tab", "down"),
		key.WithHelp("tab", "next field"),
	)
	keyPrevField = key.NewBinding(
		key.WithKeys("shift+tab", "up"),
		key.WithHelp("⇧tab", "prev field"),
	)
	keyCycleLeft = key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/→", "change value"),
	)
	keyCycleRight = key.NewBinding(
		key.WithKeys("right", "l"),
	)
)
