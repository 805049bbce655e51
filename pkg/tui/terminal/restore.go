// ABOUTME: RestoreOnPanic recovers from panics, restores the screen, and prints the stack trace.
// ABOUTME: Intended for use as a deferred call in the goroutine that owns the terminal.

package terminal

import (
	"fmt"
	"io"
	"runtime/debug"
)

// restoreSeq shows the cursor and leaves the alternate screen.
const restoreSeq = "\033[?25h\033[?1049l"

// RestoreOnPanic should be deferred at the top of the function that owns
// the terminal. On panic it writes the restore sequence to screen, reports
// the panic value and stack trace to errOut, and calls exit(1).
func RestoreOnPanic(screen, errOut io.Writer, exit func(int)) {
	r := recover()
	if r == nil {
		return
	}

	_, _ = io.WriteString(screen, restoreSeq)
	fmt.Fprintf(errOut, "\npanic: %v\n\n%s\n", r, debug.Stack())
	exit(1)
}
