package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type formField struct {
	label   string
	comment string
	input   textinput.Model
}

func newField(label, placeholder, comment string, charLimit int) formField {
	input := textinput.New()
	input.Placeholder = placeholder
	input.CharLimit = charLimit
	input.Width = 44
	return formField{label: label, comment: comment, input: input}
}

// form is a vertical list of text inputs with a single focused field.
type form struct {
	fields []formField
	focus  int
	errs   []string
}

func newForm(fields ...formField) *form {
	return &form{fields: fields}
}

func (f *form) Focus(i int) tea.Cmd {
	f.focus = clampCursor(i, len(f.fields))
	for j := range f.fields {
		f.fields[j].input.Blur()
	}
	return f.fields[f.focus].input.Focus()
}

func (f *form) Next() tea.Cmd {
	return f.Focus((f.focus + 1) % len(f.fields))
}

func (f *form) Prev() tea.Cmd {
	return f.Focus((f.focus + len(f.fields) - 1) % len(f.fields))
}

func (f *form) OnLast() bool {
	return f.focus == len(f.fields)-1
}

func (f *form) Value(i int) string {
	return strings.TrimSpace(f.fields[i].input.Value())
}

func (f *form) SetValue(i int, v string) {
	f.fields[i].input.SetValue(v)
}

// Reset clears values and errors and focuses the first field.
func (f *form) Reset() tea.Cmd {
	for i := range f.fields {
		f.fields[i].input.SetValue("")
	}
	f.errs = nil
	return f.Focus(0)
}

func (f *form) SetErrors(lines []string) {
	f.errs = lines
}

func (f *form) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.fields[f.focus].input, cmd = f.fields[f.focus].input.Update(msg)
	return cmd
}

func (f *form) View() string {
	var b strings.Builder
	for i, field := range f.fields {
		line := labelStyle.Render(field.label+":") + " " + field.input.View()
		if i == f.focus {
			b.WriteString(focusedStyle.Render("▸ " + line))
		} else {
			b.WriteString(normalStyle.Render("  " + line))
		}
		b.WriteString("\n")
		if field.comment != "" {
			b.WriteString(commentStyle.Render("  # " + field.comment))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	for _, e := range f.errs {
		b.WriteString(errorStyle.Render("  ✗ " + e))
		b.WriteString("\n")
	}
	return b.String()
}
