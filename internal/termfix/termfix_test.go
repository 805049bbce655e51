// ABOUTME: Tests for the lipgloss background preset and theme switch
// ABOUTME: Not parallel: lipgloss background is process-global

package termfix

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestInitSetsDark(t *testing.T) {
	if !lipgloss.HasDarkBackground() {
		t.Error("HasDarkBackground() = false after init")
	}
}

func TestApply(t *testing.T) {
	t.Cleanup(func() { Apply("dark") })

	Apply("light")
	if lipgloss.HasDarkBackground() {
		t.Error("light theme still reports a dark background")
	}
	Apply("dark")
	if !lipgloss.HasDarkBackground() {
		t.Error("dark theme reports a light background")
	}
}
