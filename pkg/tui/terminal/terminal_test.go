// ABOUTME: Tests for Virtual and Process terminals and panic restoration.
// ABOUTME: Uses table-driven and parallel sub-tests; no real TTY needed.

package terminal

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"
)

// compile-time checks.
var (
	_ Terminal = (*Virtual)(nil)
	_ Terminal = (*Process)(nil)
)

func TestVirtual_Size(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		cols, rows int
	}{
		{name: "standard 80x24", cols: 80, rows: 24},
		{name: "wide 200x50", cols: 200, rows: 50},
		{name: "zero dimensions", cols: 0, rows: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			vt := NewVirtual(tt.cols, tt.rows)

			c, r, err := vt.Size()
			if err != nil {
				t.Fatalf("Size() unexpected error: %v", err)
			}
			if c != tt.cols || r != tt.rows {
				t.Errorf("Size() = (%d, %d), want (%d, %d)", c, r, tt.cols, tt.rows)
			}
		})
	}
}

func TestVirtual_Resize(t *testing.T) {
	t.Parallel()

	vt := NewVirtual(80, 24)
	vt.Resize(120, 40)
	if c, r, _ := vt.Size(); c != 120 || r != 40 {
		t.Errorf("Size() after Resize = (%d, %d), want (120, 40)", c, r)
	}
}

func TestProcess_NotATerminal(t *testing.T) {
	t.Parallel()

	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	_, _, err = NewProcess(int(f.Fd())).Size()
	if !errors.Is(err, ErrNotTerminal) {
		t.Errorf("Size() on a regular file: err = %v, want ErrNotTerminal", err)
	}
}

func TestRestoreOnPanic(t *testing.T) {
	t.Parallel()

	var screen, errOut bytes.Buffer
	code := -1

	func() {
		defer RestoreOnPanic(&screen, &errOut, func(c int) { code = c })
		panic("boom")
	}()

	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if screen.String() != restoreSeq {
		t.Errorf("screen = %q, want restore sequence", screen.String())
	}
	if !strings.Contains(errOut.String(), "panic: boom") {
		t.Errorf("errOut = %q", errOut.String())
	}
}

func TestRestoreOnPanic_NoPanic(t *testing.T) {
	t.Parallel()

	var screen bytes.Buffer
	func() {
		defer RestoreOnPanic(&screen, &screen, func(int) { t.Error("exit called without panic") })
	}()
	if screen.Len() != 0 {
		t.Errorf("screen = %q, want nothing", screen.String())
	}
}
