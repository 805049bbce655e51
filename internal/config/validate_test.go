// ABOUTME: Tests for settings validation and name suggestions
// ABOUTME: Checks ErrInvalid wrapping and that inverted bounds only warn

package config

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/mauromedda/termsim/internal/log"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Settings)
		wantErr string
	}{
		{"defaults", func(*Settings) {}, ""},
		{"platform typo", func(s *Settings) { s.Platform = "win" }, `did you mean "windows"`},
		{"theme typo", func(s *Settings) { s.Theme = "drk" }, `did you mean "dark"`},
		{"unknown platform", func(s *Settings) { s.Platform = "qq" }, "known: mac, windows"},
		{"theme file skips name", func(s *Settings) { s.Theme = "custom"; s.ThemeFile = "x.yaml" }, ""},
		{"zero font", func(s *Settings) { s.FontSize = 0 }, "font_size"},
		{"negative ratio", func(s *Settings) { s.Wrap.CharWidthRatio = -1 }, "char_width_ratio"},
		{"text and file", func(s *Settings) { s.Text = "a"; s.TextFile = "b" }, "mutually exclusive"},
		{"negative pause", func(s *Settings) { s.Animation.LinePauseMs = ptr(-1) }, "line_pause_ms"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Defaults()
			tt.mutate(s)
			err := s.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, ErrInvalid) {
				t.Fatalf("Validate() = %v, want ErrInvalid", err)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_JoinsErrors(t *testing.T) {
	s := Defaults()
	s.Platform = "qq"
	s.FontSize = -3

	err := s.Validate()
	msg := err.Error()
	if !strings.Contains(msg, "platform") || !strings.Contains(msg, "font_size") {
		t.Errorf("Validate() = %q, want both problems", msg)
	}
}

func TestValidate_InvertedBoundsWarnOnly(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(nil) })

	s := Defaults()
	s.Animation.TypingMinMs = ptr(90)
	s.Animation.TypingMaxMs = ptr(60)

	if err := s.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
	if !strings.Contains(buf.String(), "[WARN]") {
		t.Errorf("expected a warning, log = %q", buf.String())
	}
}
