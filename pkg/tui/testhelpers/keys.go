package testhelpers

import (
	"reflect"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

var specialKeys = map[string]tea.KeyType{
	"enter":     tea.KeyEnter,
	"esc":       tea.KeyEsc,
	"tab":       tea.KeyTab,
	"shift+tab": tea.KeyShiftTab,
	"up":        tea.KeyUp,
	"down":      tea.KeyDown,
	"left":      tea.KeyLeft,
	"right":     tea.KeyRight,
	"backspace": tea.KeyBackspace,
	"ctrl+c":    tea.KeyCtrlC,
	"ctrl+d":    tea.KeyCtrlD,
	"ctrl+s":    tea.KeyCtrlS,
	" ":         tea.KeySpace,
}

// Key builds the KeyMsg bubbletea delivers for a key name such as "enter",
// "ctrl+s" or a single character.
func Key(name string) tea.KeyMsg {
	if t, ok := specialKeys[name]; ok {
		msg := tea.KeyMsg{Type: t}
		if t == tea.KeySpace {
			msg.Runes = []rune{' '}
		}
		return msg
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(name)}
}

// Type returns one KeyMsg per rune of s.
func Type(s string) []tea.KeyMsg {
	msgs := make([]tea.KeyMsg, 0, len(s))
	for _, r := range s {
		msgs = append(msgs, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return msgs
}

// cmdTimeout bounds how long a command may take before it is treated as a
// timer (cursor blink, status expiry) and dropped.
const cmdTimeout = 50 * time.Millisecond

var cmdType = reflect.TypeOf((tea.Cmd)(nil))

// CollectMsgs runs cmd and returns the messages it produces, expanding
// batches and sequences in order. Commands that do not return promptly are
// skipped.
func CollectMsgs(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}

	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()

	var msg tea.Msg
	select {
	case msg = <-done:
	case <-time.After(cmdTimeout):
		return nil
	}
	if msg == nil {
		return nil
	}

	// tea.BatchMsg and the unexported sequence message are both []tea.Cmd.
	v := reflect.ValueOf(msg)
	if v.Kind() == reflect.Slice && v.Type().Elem() == cmdType {
		var msgs []tea.Msg
		for i := 0; i < v.Len(); i++ {
			sub, _ := v.Index(i).Interface().(tea.Cmd)
			msgs = append(msgs, CollectMsgs(sub)...)
		}
		return msgs
	}
	return []tea.Msg{msg}
}
