// ABOUTME: Event loop clock: real timers whose callbacks run on one goroutine
// ABOUTME: Post queues work onto the loop; Run drains it until the context ends

package clock

import (
	"context"
	"sync/atomic"
	"time"
)

const loopQueueSize = 64

// Loop is a real-time Clock that runs every callback on the goroutine
// executing Run. Timer expiry happens on runtime timer goroutines, which only
// enqueue the callback; a timer stopped after it expired but before the loop
// reached it is skipped.
type Loop struct {
	tasks chan func()
	done  chan struct{}
}

// NewLoop returns a Loop. Callbacks queue up until Run is called.
func NewLoop() *Loop {
	return &Loop{
		tasks: make(chan func(), loopQueueSize),
		done:  make(chan struct{}),
	}
}

// Run executes queued callbacks until ctx is done. It returns nil on a
// normal shutdown.
func (l *Loop) Run(ctx context.Context) error {
	defer close(l.done)
	for {
		select {
		case <-ctx.Done():
			return nil
		case fn := <-l.tasks:
			fn()
		}
	}
}

// Post queues fn to run on the loop. It reports false if the loop has
// already stopped.
func (l *Loop) Post(fn func()) bool {
	select {
	case <-l.done:
		return false
	default:
	}
	select {
	case l.tasks <- fn:
		return true
	case <-l.done:
		return false
	}
}

// AfterFunc runs fn on the loop once d has elapsed.
func (l *Loop) AfterFunc(d time.Duration, fn func()) Timer {
	lt := &loopTimer{}
	lt.timer = time.AfterFunc(d, func() {
		l.Post(func() {
			if lt.state.CompareAndSwap(timerPending, timerFired) {
				fn()
			}
		})
	})
	return lt
}

const (
	timerPending int32 = iota
	timerStopped
	timerFired
)

type loopTimer struct {
	timer *time.Timer
	state atomic.Int32
}

func (t *loopTimer) Stop() bool {
	if !t.state.CompareAndSwap(timerPending, timerStopped) {
		return false
	}
	t.timer.Stop()
	return true
}
