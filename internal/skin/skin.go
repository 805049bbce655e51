// ABOUTME: Window skins: platform prompt strings, titles, and framed rendering
// ABOUTME: Content lines are drawn prompt-first inside lipgloss-bordered chrome

// Package skin draws the simulated terminal window around typed lines.
// A skin's only contract with the reflow engine is its prompt: the prompt's
// character count is reserved on every line.
package skin

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mauromedda/termsim/pkg/tui/theme"
	"github.com/mauromedda/termsim/pkg/tui/width"
)

// Platform names a window style.
type Platform string

const (
	PlatformMac     Platform = "mac"
	PlatformWindows Platform = "windows"
)

// Platforms returns the supported platform names.
func Platforms() []string {
	return []string{string(PlatformMac), string(PlatformWindows)}
}

const cursorGlyph = "█"

// Frame is one render of the window.
type Frame struct {
	// Width and Height are the outer window size in cells.
	Width, Height int
	Title         string
	// Lines are the typed lines, without prompts.
	Lines []string
	// Cursor is the index into Lines that shows the cursor; -1 hides it.
	Cursor int
}

// Skin is a platform look.
type Skin interface {
	Platform() Platform
	// Prompt is the unstyled prompt printed before every line.
	Prompt() string
	// Title is the window title for a "COLSxROWS" size string.
	Title(size string) string
	// Render draws f with palette p.
	Render(f Frame, p theme.Palette) string
}

// New returns the skin for platform configured from mac or win.
func New(platform Platform, mac Mac, win Windows) (Skin, error) {
	switch platform {
	case PlatformMac:
		return mac, nil
	case PlatformWindows:
		return win, nil
	default:
		return nil, fmt.Errorf("unknown platform %q", platform)
	}
}

// ContentSize returns the cells available for prompt and text inside a
// window of the given outer size: one border cell and one padding cell on
// each side, and the border plus title bar rows.
func ContentSize(outerWidth, outerHeight int) (cols, rows int) {
	return max(0, outerWidth-4), max(0, outerHeight-3)
}

// chrome is what differs between platforms when drawing a window.
type chrome struct {
	border lipgloss.Border
	bar    func(inner int, title string, p theme.Palette) string
	prompt func(p theme.Palette) string
	plain  string
}

// render draws the shared window layout: title bar, then the tail of the
// typed lines that fits, each behind the prompt.
func render(f Frame, p theme.Palette, c chrome) string {
	inner := max(0, f.Width-2)
	cols, rows := ContentSize(f.Width, f.Height)

	out := make([]string, 0, rows+1)
	out = append(out, c.bar(inner, f.Title, p))

	first := max(0, len(f.Lines)-rows)
	pad := p.Style().Render(" ")
	for i := first; i < len(f.Lines); i++ {
		out = append(out, pad+contentRow(f.Lines[i], i == f.Cursor, cols, p, c)+pad)
	}
	blank := p.Style().Render(strings.Repeat(" ", inner))
	for len(out) < rows+1 {
		out = append(out, blank)
	}

	box := lipgloss.NewStyle().
		Border(c.border).
		BorderForeground(p.Border)
	return box.Render(strings.Join(out, "\n"))
}

// contentRow renders prompt, text and cursor padded to exactly cols cells.
func contentRow(text string, cursor bool, cols int, p theme.Palette, c chrome) string {
	plain := c.plain + text
	if cursor {
		plain += cursorGlyph
	}
	if width.VisibleWidth(plain) > cols {
		return p.Style().Render(width.PadRight(width.TruncateToWidth(plain, cols), cols))
	}

	var b strings.Builder
	b.WriteString(c.prompt(p))
	b.WriteString(p.Style().Render(text))
	if cursor {
		b.WriteString(p.Fg(p.Cursor).Render(cursorGlyph))
	}
	if gap := cols - width.VisibleWidth(plain); gap > 0 {
		b.WriteString(p.Style().Render(strings.Repeat(" ", gap)))
	}
	return b.String()
}

// barStyle paints title bar text.
func barStyle(p theme.Palette, fg lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(fg).Background(p.TitleBar)
}
