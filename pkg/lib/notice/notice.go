package notice

import (
	"io"

	"github.com/fatih/color"
)

// Notifier surfaces transient user-visible notices, the terminal
// counterpart of toast popups.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

type Terminal struct {
	out io.Writer
}

func NewTerminal(out io.Writer) *Terminal {
	return &Terminal{out: out}
}

func (t *Terminal) Success(msg string) {
	color.New(color.FgGreen).Fprintln(t.out, "✔ "+msg)
}

func (t *Terminal) Error(msg string) {
	color.New(color.FgRed).Fprintln(t.out, "✖ "+msg)
}
