// ABOUTME: Defines the Terminal interface for character grid size queries.
// ABOUTME: Abstracts the host terminal so replays can target a real or virtual one.

package terminal

import "errors"

// ErrNotTerminal is returned when the output is not attached to a terminal.
var ErrNotTerminal = errors.New("not a terminal")

// Terminal reports the character grid of an output device.
type Terminal interface {
	Size() (cols, rows int, err error)
}
