// ABOUTME: Delayed-callback primitives for single-threaded animation drivers
// ABOUTME: Clock schedules callbacks; Timer cancels them

// Package clock provides "run this later" primitives with cancellation.
//
// Every Clock in this package runs callbacks one at a time on a single
// goroutine, so state touched only from callbacks needs no locking.
package clock

import "time"

// Clock schedules fn to run once after d has elapsed.
type Clock interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

// Timer is a handle to a scheduled callback.
type Timer interface {
	// Stop prevents the callback from running. It reports whether the call
	// stopped the timer; false means it already ran or was stopped.
	Stop() bool
}
