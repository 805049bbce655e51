// ABOUTME: Character counting and display width for wrapped terminal text
// ABOUTME: Len/Graphemes count user-perceived characters; VisibleWidth counts cells

package width

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Len returns the number of user-perceived characters (grapheme clusters)
// in s. ANSI escape sequences are not counted.
func Len(s string) int {
	if isPlainASCII(s) {
		return len(s)
	}
	return uniseg.GraphemeClusterCount(StripANSI(s))
}

// Graphemes splits s into its grapheme clusters, in order.
// For plain ASCII every byte is its own cluster.
func Graphemes(s string) []string {
	if s == "" {
		return nil
	}
	if isPlainASCII(s) {
		out := make([]string, len(s))
		for i := 0; i < len(s); i++ {
			out[i] = s[i : i+1]
		}
		return out
	}

	out := make([]string, 0, utf8.RuneCountInString(s))
	state := -1
	rest := s
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		out = append(out, cluster)
	}
	return out
}

// VisibleWidth returns the number of terminal cells s occupies. ANSI escape
// sequences contribute zero width; East Asian wide characters and emoji
// contribute two.
func VisibleWidth(s string) int {
	if s == "" {
		return 0
	}
	if isPlainASCII(s) {
		return len(s)
	}
	stripped := StripANSI(s)
	w := 0
	state := -1
	for len(stripped) > 0 {
		var cluster string
		cluster, stripped, _, state = uniseg.FirstGraphemeClusterInString(stripped, state)
		w += graphemeWidth(cluster)
	}
	return w
}

// PadRight pads s with spaces until it occupies n cells. Strings already
// n cells or wider are returned unchanged.
func PadRight(s string, n int) string {
	w := VisibleWidth(s)
	if w >= n {
		return s
	}
	return s + strings.Repeat(" ", n-w)
}

// TruncateToWidth cuts s so that it occupies at most maxWidth cells,
// replacing the last visible cell with an ellipsis when anything was cut.
// Escape sequences are dropped from truncated output.
func TruncateToWidth(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if VisibleWidth(s) <= maxWidth {
		return s
	}
	if maxWidth == 1 {
		return "…"
	}

	var b strings.Builder
	col := 0
	for _, cluster := range Graphemes(StripANSI(s)) {
		cw := graphemeWidth(cluster)
		if col+cw > maxWidth-1 {
			break
		}
		b.WriteString(cluster)
		col += cw
	}
	b.WriteRune('…')
	return b.String()
}

// isPlainASCII reports whether s holds only printable ASCII (0x20-0x7E).
func isPlainASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if b := s[i]; b < 0x20 || b > 0x7E {
			return false
		}
	}
	return true
}

func graphemeWidth(cluster string) int {
	if cluster == "" {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(cluster)
	return runewidth.RuneWidth(r)
}
