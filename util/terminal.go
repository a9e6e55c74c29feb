package util

import (
	"os"

	"golang.org/x/term"
)

// TerminalReader abstracts terminal detection so that callers can substitute
// a fake in tests.
type TerminalReader interface {
	IsTerminal(fd int) bool
}

type defaultTerminal struct{}

func (defaultTerminal) IsTerminal(fd int) bool {
	return term.IsTerminal(fd)
}

// NewTerminalReader returns a TerminalReader backed by golang.org/x/term
func NewTerminalReader() TerminalReader {
	return defaultTerminal{}
}

// IsTerminal reports whether f is attached to a terminal
func IsTerminal(f *os.File) bool {
	return NewTerminalReader().IsTerminal(int(f.Fd()))
}
