// ABOUTME: Text source loading for the simulated terminal: inline, file, or stdin
// ABOUTME: Normalizes to NFC with ASCII spaces so reflow counts characters consistently

// Package content resolves the text a terminal types out.
package content

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mauromedda/termsim/pkg/tui/width"
	"golang.org/x/text/unicode/norm"
)

// DefaultText is typed when no source is configured.
const DefaultText = "Lorem ipsum dolor sit amet, consectetur adipiscing elit. " +
	"Sed do eiusmod tempor incididunt ut labore et dolore magna aliqua."

// StdinPath selects standard input as the text file.
const StdinPath = "-"

// ErrEmptySource is returned when inline text, a file or stdin holds no
// visible text.
var ErrEmptySource = errors.New("text source is empty")

// Source names where text comes from. Text wins over File; with neither,
// DefaultText is used.
type Source struct {
	Text  string
	File  string
	Stdin io.Reader
}

// Load reads and normalizes the text src points at. Files ending in .html
// or .htm are reduced to their readable paragraphs first.
func Load(src Source) (string, error) {
	if src.Text != "" {
		text := Normalize(src.Text)
		if strings.TrimSpace(text) == "" {
			return "", fmt.Errorf("text: %w", ErrEmptySource)
		}
		return text, nil
	}
	if src.File == "" {
		return DefaultText, nil
	}

	raw, err := readFile(src)
	if err != nil {
		return "", err
	}

	if isHTML(src.File) {
		raw, err = FromHTML(strings.NewReader(raw))
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", src.File, err)
		}
	}

	text := Normalize(raw)
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%s: %w", src.File, ErrEmptySource)
	}
	return text, nil
}

func readFile(src Source) (string, error) {
	if src.File == StdinPath {
		if src.Stdin == nil {
			return "", fmt.Errorf("stdin: %w", ErrEmptySource)
		}
		data, err := io.ReadAll(src.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(ExpandPath(src.File))
	if err != nil {
		return "", fmt.Errorf("reading text file: %w", err)
	}
	return string(data), nil
}

func isHTML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return true
	}
	return false
}

// Normalize composes s to NFC, drops escape sequences, and maps Unicode
// spaces to ASCII so that word splitting and grapheme counts agree.
func Normalize(s string) string {
	s = strings.TrimPrefix(s, "\uFEFF")
	s = width.StripANSI(s)
	s = norm.NFC.String(s)
	return NormalizeSpaces(s)
}

// NormalizeSpaces replaces Unicode space characters with ASCII space (U+0020).
// Covered codepoints: U+00A0, U+2000-U+200A, U+202F, U+205F, U+3000, and tab.
func NormalizeSpaces(s string) string {
	if !strings.ContainsFunc(s, isUnicodeSpace) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if isUnicodeSpace(r) {
			b.WriteByte(' ')
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isUnicodeSpace(r rune) bool {
	switch {
	case r == '\t', r == '\u00A0', r == '\u202F', r == '\u205F', r == '\u3000':
		return true
	case r >= '\u2000' && r <= '\u200A':
		return true
	}
	return false
}

// ExpandPath expands a leading "~" to the user home directory.
func ExpandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return home + path[1:]
		}
	}
	return path
}
