// ABOUTME: Settings validation with "did you mean" hints for mistyped names
// ABOUTME: Inverted typing bounds only warn; the scheduler swaps them

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mauromedda/termsim/internal/log"
	"github.com/mauromedda/termsim/internal/skin"
	"github.com/mauromedda/termsim/pkg/tui/fuzzy"
	"github.com/mauromedda/termsim/pkg/tui/theme"
)

// ErrInvalid marks a settings value that cannot be used.
var ErrInvalid = errors.New("invalid config")

// Validate reports every unusable field, joined. Each error wraps ErrInvalid.
func (s *Settings) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if err := checkName("platform", s.Platform, skin.Platforms()); err != nil {
		errs = append(errs, err)
	}
	if s.ThemeFile == "" {
		if err := checkName("theme", s.Theme, theme.BuiltinNames()); err != nil {
			errs = append(errs, err)
		}
	}
	if s.FontSize <= 0 {
		bad("font_size must be positive, got %v", s.FontSize)
	}
	if s.Wrap.CharWidthRatio < 0 {
		bad("wrap.char_width_ratio must be positive, got %v", s.Wrap.CharWidthRatio)
	}
	if s.Wrap.LineHeightRatio < 0 {
		bad("wrap.line_height_ratio must be positive, got %v", s.Wrap.LineHeightRatio)
	}
	if s.Text != "" && s.TextFile != "" {
		bad("text and text_file are mutually exclusive")
	}

	a := s.Animation
	for _, f := range []struct {
		name string
		v    *int
	}{
		{"typing_min_ms", a.TypingMinMs},
		{"typing_max_ms", a.TypingMaxMs},
		{"line_pause_ms", a.LinePauseMs},
		{"initial_delay_ms", a.InitialDelayMs},
		{"cursor_blink_ms", a.CursorBlinkMs},
	} {
		if f.v != nil && *f.v < 0 {
			bad("animation.%s must not be negative, got %d", f.name, *f.v)
		}
	}

	if a.TypingMinMs != nil && a.TypingMaxMs != nil && *a.TypingMinMs > *a.TypingMaxMs {
		log.Warn("config: typing_min_ms (%d) > typing_max_ms (%d); bounds will be swapped",
			*a.TypingMinMs, *a.TypingMaxMs)
	}

	return errors.Join(errs...)
}

// checkName rejects value when it is not one of known, suggesting the
// closest match.
func checkName(field, value string, known []string) error {
	for _, k := range known {
		if value == k {
			return nil
		}
	}
	if hint, ok := fuzzy.Suggest(value, known); ok {
		return fmt.Errorf("%w: unknown %s %q (did you mean %q?)", ErrInvalid, field, value, hint)
	}
	return fmt.Errorf("%w: unknown %s %q (known: %s)", ErrInvalid, field, value, strings.Join(known, ", "))
}
