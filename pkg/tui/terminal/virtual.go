// ABOUTME: Virtual implements Terminal with a fixed, settable size for tests.
// ABOUTME: Safe for concurrent use.

package terminal

import "sync"

// Virtual is a fake Terminal with a fixed size.
type Virtual struct {
	mu         sync.Mutex
	cols, rows int
}

// NewVirtual returns a Virtual of the given size.
func NewVirtual(cols, rows int) *Virtual {
	return &Virtual{cols: cols, rows: rows}
}

// Size returns the configured dimensions.
func (v *Virtual) Size() (cols, rows int, err error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.cols, v.rows, nil
}

// Resize changes the reported dimensions.
func (v *Virtual) Resize(cols, rows int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.cols, v.rows = cols, rows
}
