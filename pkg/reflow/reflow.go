// ABOUTME: Reflow engine: wraps raw text into prompt-aware display lines
// ABOUTME: Approximates monospace cells from font size; pure and deterministic

// Package reflow converts raw text and a measured container into wrapped
// display lines and a character grid size.
//
// Character cells are approximated as a fixed fraction of the font size
// (WrapConfig), so no glyph measurement is needed. Line lengths count
// grapheme clusters, which keeps combined characters and emoji whole.
package reflow

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/mauromedda/termsim/pkg/tui/width"
)

// Default cell ratios for a typical monospace font.
const (
	DefaultCharWidthRatio  = 0.6
	DefaultLineHeightRatio = 1.2
)

// WrapConfig approximates a glyph cell as a fraction of the font size.
// A zero (or negative) field falls back to its default.
type WrapConfig struct {
	CharWidthRatio  float64 `yaml:"char_width_ratio"`
	LineHeightRatio float64 `yaml:"line_height_ratio"`
}

// DefaultWrapConfig returns the ratios used when no override is given.
func DefaultWrapConfig() WrapConfig {
	return WrapConfig{
		CharWidthRatio:  DefaultCharWidthRatio,
		LineHeightRatio: DefaultLineHeightRatio,
	}
}

// Dimensions is a character grid size.
type Dimensions struct {
	Cols int
	Rows int
}

// String formats d as "COLSxROWS".
func (d Dimensions) String() string {
	return fmt.Sprintf("%dx%d", d.Cols, d.Rows)
}

var paragraphBreak = regexp.MustCompile(`\r?\n`)

// SplitText wraps text into lines that fit next to a prompt of promptLength
// characters inside a container widthPx wide.
//
// Paragraphs (split on LF or CRLF) are wrapped independently; whitespace
// runs collapse to single spaces; empty paragraphs produce no lines. Words
// are never broken: a word longer than the available columns occupies a
// line of its own and overflows it.
func SplitText(text string, widthPx, fontSizePx float64, promptLength int, cfg ...WrapConfig) []string {
	if text == "" {
		return []string{}
	}
	contentCols := ContentCols(widthPx, fontSizePx, promptLength, cfg...)

	lines := []string{}
	for _, paragraph := range paragraphBreak.Split(text, -1) {
		lines = appendWrapped(lines, strings.Fields(paragraph), contentCols)
	}
	return lines
}

// appendWrapped greedily packs words into lines of at most limit characters.
func appendWrapped(lines, words []string, limit int) []string {
	var current strings.Builder
	currentLen := 0
	for _, word := range words {
		wordLen := width.Len(word)
		if currentLen > 0 && currentLen+1+wordLen <= limit {
			current.WriteByte(' ')
			current.WriteString(word)
			currentLen += 1 + wordLen
			continue
		}
		if currentLen == 0 && wordLen <= limit {
			current.WriteString(word)
			currentLen = wordLen
			continue
		}
		if currentLen > 0 {
			lines = append(lines, current.String())
			current.Reset()
		}
		current.WriteString(word)
		currentLen = wordLen
	}
	if currentLen > 0 {
		lines = append(lines, current.String())
	}
	return lines
}

// ContentCols returns the columns left for text once the prompt is placed.
// It is never less than 1, so wrapping always makes progress.
func ContentCols(widthPx, fontSizePx float64, promptLength int, cfg ...WrapConfig) int {
	c := resolve(cfg)
	return max(1, cells(widthPx, fontSizePx*c.CharWidthRatio)-promptLength)
}

// CalculateDimensions returns the character grid that fits a container of
// widthPx by heightPx. Degenerate inputs yield zero columns or rows.
func CalculateDimensions(widthPx, heightPx, fontSizePx float64, cfg ...WrapConfig) Dimensions {
	c := resolve(cfg)
	return Dimensions{
		Cols: cells(widthPx, fontSizePx*c.CharWidthRatio),
		Rows: cells(heightPx, fontSizePx*c.LineHeightRatio),
	}
}

// FormatDimensions returns CalculateDimensions formatted as "COLSxROWS".
func FormatDimensions(widthPx, heightPx, fontSizePx float64, cfg ...WrapConfig) string {
	return CalculateDimensions(widthPx, heightPx, fontSizePx, cfg...).String()
}

// PixelSize returns a container size whose grid is exactly d. Each extent
// lands in the middle of its last cell so that flooring it back is exact.
func PixelSize(d Dimensions, fontSizePx float64, cfg ...WrapConfig) (widthPx, heightPx float64) {
	c := resolve(cfg)
	return (float64(max(0, d.Cols)) + 0.5) * fontSizePx * c.CharWidthRatio,
		(float64(max(0, d.Rows)) + 0.5) * fontSizePx * c.LineHeightRatio
}

// cells returns floor(extent/cell), treating any non-finite or negative
// result as zero.
func cells(extent, cell float64) int {
	if cell <= 0 || extent <= 0 {
		return 0
	}
	n := math.Floor(extent / cell)
	if math.IsInf(n, 0) || math.IsNaN(n) || n > math.MaxInt32 {
		return 0
	}
	return int(n)
}

// resolve merges an optional partial override onto the defaults.
func resolve(cfg []WrapConfig) WrapConfig {
	c := DefaultWrapConfig()
	if len(cfg) == 0 {
		return c
	}
	if cfg[0].CharWidthRatio > 0 {
		c.CharWidthRatio = cfg[0].CharWidthRatio
	}
	if cfg[0].LineHeightRatio > 0 {
		c.LineHeightRatio = cfg[0].LineHeightRatio
	}
	return c
}
