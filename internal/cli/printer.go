package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Printer writes user-facing command output. Success and info lines go to Out
// and are dropped when Quiet is set; warnings and errors always reach Err.
type Printer struct {
	Out io.Writer
	Err io.Writer
	In  io.Reader

	Quiet     bool
	NoColor   bool
	AssumeYes bool
}

// NewPrinter returns a Printer on the given streams with every option off.
func NewPrinter(out, errOut io.Writer, in io.Reader) *Printer {
	return &Printer{Out: out, Err: errOut, In: in}
}

// Confirm asks a yes/no question on Out and reads the answer from In.
// AssumeYes answers yes without prompting. An empty answer, or end of input,
// yields defaultYes.
func (p *Printer) Confirm(prompt string, defaultYes bool) (bool, error) {
	if p.AssumeYes {
		return true, nil
	}

	suffix := " [y/N]: "
	if defaultYes {
		suffix = " [Y/n]: "
	}
	fmt.Fprint(p.Out, prompt+suffix)

	response, err := bufio.NewReader(p.In).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("read confirmation: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(response)) {
	case "":
		return defaultYes, nil
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

func (p *Printer) Success(format string, args ...interface{}) {
	if !p.Quiet {
		p.line(p.Out, "✓", "OK:", format, args...)
	}
}

func (p *Printer) Info(format string, args ...interface{}) {
	if !p.Quiet {
		p.line(p.Out, "ℹ", "INFO:", format, args...)
	}
}

func (p *Printer) Warning(format string, args ...interface{}) {
	p.line(p.Err, "⚠", "WARNING:", format, args...)
}

func (p *Printer) Error(format string, args ...interface{}) {
	p.line(p.Err, "✗", "ERROR:", format, args...)
}

// line writes one message prefixed by symbol, or by label when NoColor is set.
func (p *Printer) line(w io.Writer, symbol, label, format string, args ...interface{}) {
	prefix := symbol
	if p.NoColor {
		prefix = label
	}
	fmt.Fprintf(w, "%s %s\n", prefix, fmt.Sprintf(format, args...))
}
