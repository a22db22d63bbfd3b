package terminal

import (
	"errors"
	"os"

	"golang.org/x/term"
)

// ErrNotTerminal is returned when stdin or stdout is not attached to a terminal
var ErrNotTerminal = errors.New("stdin/stdout is not a terminal")

// CheckTTY verifies the process is attached to an interactive terminal
func CheckTTY() error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return ErrNotTerminal
	}
	return nil
}
