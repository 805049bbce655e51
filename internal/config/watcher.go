// ABOUTME: Polling file watcher that reloads settings when any source file changes
// ABOUTME: Compares mtimes and sizes each interval; reports a change once per edit

package config

import (
	"context"
	"os"
	"sync"
	"time"
)

// DefaultWatchInterval is how often watched files are polled.
const DefaultWatchInterval = time.Second

type fileStamp struct {
	mtime time.Time
	size  int64
}

// Watcher polls a set of files and calls onChange after any of them is
// created, modified, or removed.
type Watcher struct {
	paths    []string
	onChange func()
	interval time.Duration

	mu     sync.Mutex
	stamps map[string]fileStamp
}

// NewWatcher creates a watcher over paths. Duplicate paths are watched once.
// The current state of every file is the baseline; only later edits count.
func NewWatcher(paths []string, onChange func()) *Watcher {
	seen := make(map[string]bool, len(paths))
	uniq := make([]string, 0, len(paths))
	for _, p := range paths {
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		uniq = append(uniq, p)
	}
	w := &Watcher{
		paths:    uniq,
		onChange: onChange,
		interval: DefaultWatchInterval,
		stamps:   make(map[string]fileStamp),
	}
	w.snapshotLocked()
	return w
}

// SetInterval overrides the polling interval.
func (w *Watcher) SetInterval(d time.Duration) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if d > 0 {
		w.interval = d
	}
}

// Paths returns the watched files.
func (w *Watcher) Paths() []string {
	return append([]string(nil), w.paths...)
}

// Run polls until ctx is done.
func (w *Watcher) Run(ctx context.Context) {
	w.mu.Lock()
	interval := w.interval
	w.mu.Unlock()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.Check()
		}
	}
}

// Check polls once and calls onChange synchronously when something changed.
// It reports whether a change was seen.
func (w *Watcher) Check() bool {
	w.mu.Lock()
	changed := w.changedLocked()
	if changed {
		w.snapshotLocked()
	}
	w.mu.Unlock()

	if changed && w.onChange != nil {
		w.onChange()
	}
	return changed
}

// changedLocked compares the files with the stored stamps. Must hold mu.
func (w *Watcher) changedLocked() bool {
	for _, path := range w.paths {
		info, err := os.Stat(path)
		prev, existed := w.stamps[path]
		if err != nil {
			if existed {
				return true
			}
			continue
		}
		if !existed || !info.ModTime().Equal(prev.mtime) || info.Size() != prev.size {
			return true
		}
	}
	return false
}

// snapshotLocked records the current stamps. Must hold mu.
func (w *Watcher) snapshotLocked() {
	for _, path := range w.paths {
		info, err := os.Stat(path)
		if err != nil {
			delete(w.stamps, path)
			continue
		}
		w.stamps[path] = fileStamp{mtime: info.ModTime(), size: info.Size()}
	}
}
