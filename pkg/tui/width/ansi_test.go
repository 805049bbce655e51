// ABOUTME: Tests for ANSI stripping
// ABOUTME: Covers CSI, OSC, DCS, charset, and truncated sequences

package width

import "testing"

func TestStripANSI(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "no ansi", input: "user@macbook-pro ~ % ", want: "user@macbook-pro ~ % "},
		{name: "sgr color", input: "\x1b[32muser\x1b[0m", want: "user"},
		{name: "combined sgr", input: "\x1b[38;5;214;1mPS\x1b[m", want: "PS"},
		{name: "osc bel", input: "\x1b]0;zsh\x07ls", want: "ls"},
		{name: "osc st", input: "\x1b]0;zsh\x1b\\ls", want: "ls"},
		{name: "dcs", input: "\x1bPq#0\x1b\\x", want: "x"},
		{name: "charset", input: "\x1b(Bok", want: "ok"},
		{name: "truncated csi", input: "ab\x1b[31", want: "ab"},
		{name: "lone esc", input: "ab\x1b", want: "ab"},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := StripANSI(tt.input); got != tt.want {
				t.Errorf("StripANSI(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
