// ABOUTME: Cancellable, restartable character-by-character typing scheduler
// ABOUTME: Run ids invalidate superseded callbacks; pending timers are tracked for cancellation

// Package typing reveals wrapped lines one character at a time on a timer
// schedule.
//
// A Scheduler is not safe for concurrent use. It must be driven from the
// goroutine its clock.Clock runs callbacks on; every clock in pkg/clock and
// the interactive host satisfy this.
package typing

import (
	"math/rand/v2"
	"time"

	"github.com/mauromedda/termsim/internal/log"
	"github.com/mauromedda/termsim/pkg/clock"
	"github.com/mauromedda/termsim/pkg/tui/width"
)

// State is the phase of the live run.
type State int

const (
	// StateIdle means no run has started, or the last run was stopped.
	StateIdle State = iota
	// StateTyping means the next character reveal is scheduled.
	StateTyping
	// StatePausing means a line finished and its pause is scheduled.
	StatePausing
	// StateComplete means every line has been revealed.
	StateComplete
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateTyping:
		return "typing"
	case StatePausing:
		return "pausing"
	case StateComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// Hooks are the host callbacks of a run. Any of them may be nil.
type Hooks struct {
	// Render asks the host to redraw after the output buffer changed.
	Render func()
	// Complete fires once when every line has been revealed.
	Complete func()
	// Progress reports the cursor after each revealed character: the line
	// index and the number of characters of that line now visible.
	Progress func(line, char int)
}

// Scheduler types lines into a host-owned buffer. Each terminal owns its
// own Scheduler so separate terminals animate independently.
type Scheduler struct {
	clock   clock.Clock
	intN    func(n int64) int64
	runID   int
	state   State
	nextKey uint64
	pending map[uint64]clock.Timer
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithRand replaces the source of per-character jitter. intN must return a
// value in [0, n).
func WithRand(intN func(n int64) int64) Option {
	return func(s *Scheduler) {
		s.intN = intN
	}
}

// New returns a Scheduler whose delays run on c.
func New(c clock.Clock, opts ...Option) *Scheduler {
	s := &Scheduler{
		clock:   c,
		intN:    rand.Int64N,
		pending: make(map[uint64]clock.Timer),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RunID returns the live run generation.
func (s *Scheduler) RunID() int { return s.runID }

// State returns the phase of the live run.
func (s *Scheduler) State() State { return s.state }

// Pending returns the number of scheduled callbacks not yet run or cancelled.
func (s *Scheduler) Pending() int { return len(s.pending) }

// Start begins typing lines into *out and returns the run id.
//
// With no lines, or with animations disabled, the pending callbacks of any
// live run are cancelled, *out becomes a copy of lines at once, Render and
// Complete fire synchronously and the current run id is returned unchanged:
// no run was started. Otherwise any live run is stopped,
// *out is reset to one empty string per line, Progress(0, 0) fires, and the
// first character is scheduled after cfg.InitialDelay.
//
// The scheduler writes to *out until the run completes or is superseded.
func (s *Scheduler) Start(lines []string, out *[]string, cfg Config, hooks Hooks) int {
	if len(lines) == 0 || !cfg.EnableAnimations {
		s.ClearTimers()
		s.state = StateComplete
		*out = append((*out)[:0], lines...)
		call(hooks.Render)
		call(hooks.Complete)
		return s.runID
	}

	s.Stop()
	s.runID++

	r := &run{
		id:    s.runID,
		lines: make([][]string, len(lines)),
		out:   out,
		cfg:   cfg,
		hooks: hooks,
	}
	for i, line := range lines {
		r.lines[i] = width.Graphemes(line)
	}

	reset := (*out)[:0]
	for range lines {
		reset = append(reset, "")
	}
	*out = reset
	if hooks.Progress != nil {
		hooks.Progress(0, 0)
	}

	log.Debug("typing: run %d started, %d lines", r.id, len(lines))
	s.state = StateTyping
	s.schedule(cfg.InitialDelay, func() { s.step(r) })
	return r.id
}

// Stop invalidates the live run and cancels its pending callbacks. Safe to
// call repeatedly; every call advances the run id.
func (s *Scheduler) Stop() {
	s.runID++
	s.state = StateIdle
	s.ClearTimers()
}

// ClearTimers cancels pending callbacks without advancing the run id. Hosts
// call it on teardown.
func (s *Scheduler) ClearTimers() {
	for key, t := range s.pending {
		t.Stop()
		delete(s.pending, key)
	}
}

// run is one execution of the reveal sequence. Its cursor is (line, char).
type run struct {
	id    int
	lines [][]string
	out   *[]string
	cfg   Config
	hooks Hooks
	line  int
	char  int
}

// step advances r by one transition.
func (s *Scheduler) step(r *run) {
	if r.id != s.runID {
		return
	}

	if r.line >= len(r.lines) {
		s.state = StateComplete
		log.Debug("typing: run %d complete", r.id)
		call(r.hooks.Render)
		call(r.hooks.Complete)
		return
	}

	if r.char < len(r.lines[r.line]) {
		s.state = StateTyping
		s.schedule(s.charDelay(r.cfg), func() {
			if r.id != s.runID {
				return
			}
			(*r.out)[r.line] += r.lines[r.line][r.char]
			r.char++
			if r.hooks.Progress != nil {
				r.hooks.Progress(r.line, r.char)
			}
			call(r.hooks.Render)
			s.step(r)
		})
		return
	}

	s.state = StatePausing
	s.schedule(r.cfg.LinePause, func() {
		r.line++
		r.char = 0
		s.step(r)
	})
}

// schedule registers fn with the clock and tracks it until it runs.
func (s *Scheduler) schedule(d time.Duration, fn func()) {
	s.nextKey++
	key := s.nextKey
	s.pending[key] = s.clock.AfterFunc(d, func() {
		delete(s.pending, key)
		fn()
	})
}

// charDelay draws a delay uniformly from [TypingMin, TypingMax] at
// millisecond granularity. Reversed bounds are swapped.
func (s *Scheduler) charDelay(cfg Config) time.Duration {
	lo, hi := cfg.TypingMin.Milliseconds(), cfg.TypingMax.Milliseconds()
	if hi < lo {
		lo, hi = hi, lo
	}
	return time.Duration(lo+s.intN(hi-lo+1)) * time.Millisecond
}

func call(fn func()) {
	if fn != nil {
		fn()
	}
}
