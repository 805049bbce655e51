// ABOUTME: Tests for Manual and Loop clocks
// ABOUTME: Covers ordering, nested scheduling, cancellation, and loop shutdown

package clock

import (
	"context"
	"reflect"
	"sync/atomic"
	"testing"
	"time"
)

var (
	_ Clock = (*Manual)(nil)
	_ Clock = (*Loop)(nil)
)

var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func TestManual_FiresInDeadlineOrder(t *testing.T) {
	t.Parallel()

	m := NewManual(epoch)
	var got []string
	m.AfterFunc(30*time.Millisecond, func() { got = append(got, "c") })
	m.AfterFunc(10*time.Millisecond, func() { got = append(got, "a") })
	m.AfterFunc(10*time.Millisecond, func() { got = append(got, "b") })

	m.Advance(20 * time.Millisecond)
	if want := []string{"a", "b"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("after 20ms got %v, want %v", got, want)
	}
	m.Advance(10 * time.Millisecond)
	if want := []string{"a", "b", "c"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("after 30ms got %v, want %v", got, want)
	}
	if !m.Now().Equal(epoch.Add(30 * time.Millisecond)) {
		t.Errorf("Now() = %v, want epoch+30ms", m.Now())
	}
}

func TestManual_NestedSchedulingWithinAdvance(t *testing.T) {
	t.Parallel()

	m := NewManual(epoch)
	var times []time.Duration
	var tick func()
	tick = func() {
		times = append(times, m.Now().Sub(epoch))
		if len(times) < 5 {
			m.AfterFunc(10*time.Millisecond, tick)
		}
	}
	m.AfterFunc(0, tick)

	m.Advance(25 * time.Millisecond)
	want := []time.Duration{0, 10 * time.Millisecond, 20 * time.Millisecond}
	if !reflect.DeepEqual(times, want) {
		t.Fatalf("ticks = %v, want %v", times, want)
	}
	if m.Pending() != 1 {
		t.Errorf("Pending() = %d, want 1", m.Pending())
	}
}

func TestManual_Stop(t *testing.T) {
	t.Parallel()

	m := NewManual(epoch)
	fired := false
	timer := m.AfterFunc(10*time.Millisecond, func() { fired = true })

	if !timer.Stop() {
		t.Error("first Stop() = false, want true")
	}
	if timer.Stop() {
		t.Error("second Stop() = true, want false")
	}
	m.Advance(time.Second)
	if fired {
		t.Error("stopped timer fired")
	}
}

func TestManual_StopAfterFire(t *testing.T) {
	t.Parallel()

	m := NewManual(epoch)
	timer := m.AfterFunc(time.Millisecond, func() {})
	m.Advance(time.Millisecond)
	if timer.Stop() {
		t.Error("Stop() after fire = true, want false")
	}
}

func TestLoop_RunsCallbacksOnLoop(t *testing.T) {
	t.Parallel()

	l := NewLoop()
	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- l.Run(ctx) }()

	done := make(chan []int, 1)
	var seen []int
	l.Post(func() { seen = append(seen, 1) })
	l.AfterFunc(5*time.Millisecond, func() {
		seen = append(seen, 2)
		done <- seen
	})

	select {
	case got := <-done:
		if want := []int{1, 2}; !reflect.DeepEqual(got, want) {
			t.Errorf("seen = %v, want %v", got, want)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timer never fired")
	}

	cancel()
	if err := <-errCh; err != nil {
		t.Errorf("Run() = %v, want nil", err)
	}
	if l.Post(func() {}) {
		t.Error("Post() after shutdown = true, want false")
	}
}

func TestLoop_StoppedTimerSkipped(t *testing.T) {
	t.Parallel()

	l := NewLoop()
	var fired atomic.Bool
	timer := l.AfterFunc(time.Millisecond, func() { fired.Store(true) })
	if !timer.Stop() {
		t.Fatal("Stop() = false, want true")
	}
	if timer.Stop() {
		t.Error("second Stop() = true, want false")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_ = l.Run(ctx)

	if fired.Load() {
		t.Error("stopped timer callback ran")
	}
}

func TestLoop_StopAfterExpiryBeforeRun(t *testing.T) {
	t.Parallel()

	l := NewLoop()
	var fired atomic.Bool
	timer := l.AfterFunc(0, func() { fired.Store(true) })

	// Let the runtime timer expire and enqueue while the loop is not running.
	deadline := time.Now().Add(time.Second)
	for len(l.tasks) == 0 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	if !timer.Stop() {
		t.Fatal("Stop() = false, want true for queued callback")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_ = l.Run(ctx)

	if fired.Load() {
		t.Error("callback queued before Stop still ran")
	}
}
