// ABOUTME: Process implements Terminal for a file descriptor using golang.org/x/term.
// ABOUTME: Fails with ErrNotTerminal when the descriptor is a pipe or regular file.

package terminal

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// Process is a real terminal on a file descriptor.
type Process struct {
	fd int
}

// NewProcess returns the terminal on fd.
func NewProcess(fd int) *Process {
	return &Process{fd: fd}
}

// Stdout returns the terminal on os.Stdout.
func Stdout() *Process {
	return NewProcess(int(os.Stdout.Fd()))
}

// Size returns the current terminal dimensions.
func (t *Process) Size() (cols, rows int, err error) {
	if !term.IsTerminal(t.fd) {
		return 0, 0, ErrNotTerminal
	}
	w, h, err := term.GetSize(t.fd)
	if err != nil {
		return 0, 0, fmt.Errorf("getting terminal size: %w", err)
	}
	return w, h, nil
}
