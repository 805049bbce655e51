// ABOUTME: Tests for the polling settings watcher
// ABOUTME: Drives Check directly so no test depends on the polling interval

package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcher_DetectsEdit(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("theme: dark\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	calls := 0
	w := NewWatcher([]string{path}, func() { calls++ })

	if w.Check() {
		t.Fatal("Check reported a change before any edit")
	}

	if err := os.WriteFile(path, []byte("theme: light\nplatform: windows\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if !w.Check() {
		t.Fatal("Check missed an edit that changed the file size")
	}
	if calls != 1 {
		t.Errorf("onChange calls = %d, want 1", calls)
	}
	if w.Check() {
		t.Error("the same edit was reported twice")
	}
}

func TestWatcher_CreateAndRemove(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "later.yaml")
	w := NewWatcher([]string{path}, nil)

	if w.Check() {
		t.Fatal("missing file reported as changed")
	}
	if err := os.WriteFile(path, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}
	if !w.Check() {
		t.Error("creation not detected")
	}
	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}
	if !w.Check() {
		t.Error("removal not detected")
	}
}

func TestWatcher_DedupesPaths(t *testing.T) {
	t.Parallel()

	w := NewWatcher([]string{"a", "", "b", "a"}, nil)
	got := w.Paths()
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("Paths() = %v, want [a b]", got)
	}
}

func TestWatcher_RunStopsOnCancel(t *testing.T) {
	t.Parallel()

	w := NewWatcher(nil, nil)
	w.SetInterval(time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
