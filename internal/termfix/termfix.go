// ABOUTME: Pre-sets the lipgloss background before BubbleTea's init() sends OSC queries
// ABOUTME: Must be imported (with _) before bubbletea; Apply switches to the theme's background

package termfix

import "github.com/charmbracelet/lipgloss"

func init() {
	// An explicit background stops lipgloss from querying the terminal
	// with OSC 10/11; the late replies would land in the input stream.
	// This package must not import bubbletea, directly or transitively.
	lipgloss.SetHasDarkBackground(true)
}

// Apply records whether the simulated window is drawn on a light theme so
// adaptive colors resolve against it rather than the host terminal.
func Apply(themeName string) {
	lipgloss.SetHasDarkBackground(themeName != "light")
}
