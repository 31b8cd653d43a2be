package mux

import (
	"os"

	"golang.org/x/term"
)

// AttachInteractive saves the caller's terminal mode, attaches to name, and
// restores the terminal afterward regardless of how Attach returns. The
// multiplexer itself manages raw mode while attached; this only guards
// against a left-over mode change if attach-session exits abnormally.
func (a *Adapter) AttachInteractive(name string) error {
	fd := int(os.Stdin.Fd())
	var restore *term.State
	if term.IsTerminal(fd) {
		if state, err := term.GetState(fd); err == nil {
			restore = state
		}
	}

	err := a.Attach(name)

	if restore != nil {
		_ = term.Restore(fd, restore)
	}
	return err
}
