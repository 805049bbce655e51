// ABOUTME: Clock whose timers fire as tea messages handled inside Update
// ABOUTME: Keeps every typing callback on the Bubble Tea event goroutine

package btea

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mauromedda/termsim/pkg/clock"
)

// teaClock turns real timer expiry into timerFiredMsg. The callback itself
// runs only when Update calls fire, so a timer stopped in between never runs.
type teaClock struct {
	mu      sync.Mutex
	send    func(tea.Msg)
	nextID  uint64
	pending map[uint64]*teaTimer
}

type teaTimer struct {
	c  *teaClock
	id uint64
	fn func()
	t  *time.Timer
}

func newTeaClock() *teaClock {
	return &teaClock{pending: make(map[uint64]*teaTimer)}
}

// setSend installs the program's Send. Expiries before that are dropped.
func (c *teaClock) setSend(send func(tea.Msg)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.send = send
}

func (c *teaClock) AfterFunc(d time.Duration, fn func()) clock.Timer {
	c.mu.Lock()
	c.nextID++
	tt := &teaTimer{c: c, id: c.nextID, fn: fn}
	c.pending[tt.id] = tt
	c.mu.Unlock()

	tt.t = time.AfterFunc(max(d, 0), func() { c.deliver(tt.id) })
	return tt
}

func (c *teaClock) deliver(id uint64) {
	c.mu.Lock()
	send := c.send
	c.mu.Unlock()
	if send != nil {
		send(timerFiredMsg{id: id})
	}
}

// fire runs the callback for id if it is still pending.
func (c *teaClock) fire(id uint64) bool {
	c.mu.Lock()
	tt, ok := c.pending[id]
	delete(c.pending, id)
	c.mu.Unlock()

	if ok {
		tt.fn()
	}
	return ok
}

// Pending returns the number of timers not yet fired or stopped.
func (c *teaClock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pending)
}

func (t *teaTimer) Stop() bool {
	t.c.mu.Lock()
	_, ok := t.c.pending[t.id]
	delete(t.c.pending, t.id)
	t.c.mu.Unlock()

	if t.t != nil {
		t.t.Stop()
	}
	return ok
}
