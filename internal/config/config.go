// ABOUTME: Settings loading with defaults, global, project and explicit file merge
// ABOUTME: YAML configuration via gopkg.in/yaml.v3; later layers override earlier ones

package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/mauromedda/termsim/internal/skin"
	"github.com/mauromedda/termsim/pkg/reflow"
	"github.com/mauromedda/termsim/pkg/tui/theme"
	"github.com/mauromedda/termsim/pkg/typing"
	"gopkg.in/yaml.v3"
)

// DefaultFontSize is the simulated font size in pixels.
const DefaultFontSize = 18

// Settings holds the merged configuration.
type Settings struct {
	Platform  string            `yaml:"platform,omitempty"`
	Theme     string            `yaml:"theme,omitempty"`
	ThemeFile string            `yaml:"theme_file,omitempty"`
	FontSize  float64           `yaml:"font_size,omitempty"`
	Text      string            `yaml:"text,omitempty"`
	TextFile  string            `yaml:"text_file,omitempty"`
	Wrap      reflow.WrapConfig `yaml:"wrap,omitempty"`
	Animation Animation         `yaml:"animation,omitempty"`
	Mac       skin.Mac          `yaml:"mac,omitempty"`
	Windows   skin.Windows      `yaml:"windows,omitempty"`
}

// Animation is the on-disk typing configuration. Pointers distinguish an
// explicit zero from an unset field.
type Animation struct {
	Enabled        *bool `yaml:"enabled,omitempty"`
	TypingMinMs    *int  `yaml:"typing_min_ms,omitempty"`
	TypingMaxMs    *int  `yaml:"typing_max_ms,omitempty"`
	LinePauseMs    *int  `yaml:"line_pause_ms,omitempty"`
	InitialDelayMs *int  `yaml:"initial_delay_ms,omitempty"`
	CursorBlinkMs  *int  `yaml:"cursor_blink_ms,omitempty"`
}

// Defaults returns the built-in settings every loaded file is merged onto.
func Defaults() *Settings {
	tc := typing.DefaultConfig()
	return &Settings{
		Platform: string(skin.PlatformMac),
		Theme:    theme.DefaultName,
		FontSize: DefaultFontSize,
		Wrap:     reflow.DefaultWrapConfig(),
		Animation: Animation{
			Enabled:        ptr(tc.EnableAnimations),
			TypingMinMs:    ptr(ms(tc.TypingMin)),
			TypingMaxMs:    ptr(ms(tc.TypingMax)),
			LinePauseMs:    ptr(ms(tc.LinePause)),
			InitialDelayMs: ptr(ms(tc.InitialDelay)),
			CursorBlinkMs:  ptr(ms(tc.CursorBlink)),
		},
		Mac:     skin.DefaultMac(),
		Windows: skin.DefaultWindows(),
	}
}

// Load merges, in increasing priority: defaults, the global config, the
// project config under projectRoot, and explicit (when non-empty). Missing
// global or project files are skipped; a missing explicit file is an error.
func Load(projectRoot, explicit string) (*Settings, error) {
	s := Defaults()

	layers := []struct {
		path     string
		required bool
	}{
		{GlobalConfigFile(), false},
		{ProjectConfigFile(projectRoot), false},
	}
	if explicit != "" {
		layers = append(layers, struct {
			path     string
			required bool
		}{explicit, true})
	}

	for _, l := range layers {
		over, err := LoadFile(l.path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) && !l.required {
				continue
			}
			return nil, fmt.Errorf("loading config %s: %w", l.path, err)
		}
		s = merge(s, over)
	}

	ResolveEnvVars(s)
	return s, nil
}

// LoadFile reads one YAML settings file without applying defaults.
func LoadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &s, nil
}

// merge overlays the set fields of over onto base.
func merge(base, over *Settings) *Settings {
	if base == nil {
		base = &Settings{}
	}
	if over == nil {
		return base
	}

	result := *base
	setString(&result.Platform, over.Platform)
	setString(&result.Theme, over.Theme)
	setString(&result.ThemeFile, over.ThemeFile)
	setString(&result.Text, over.Text)
	setString(&result.TextFile, over.TextFile)
	if over.FontSize != 0 {
		result.FontSize = over.FontSize
	}
	if over.Wrap.CharWidthRatio != 0 {
		result.Wrap.CharWidthRatio = over.Wrap.CharWidthRatio
	}
	if over.Wrap.LineHeightRatio != 0 {
		result.Wrap.LineHeightRatio = over.Wrap.LineHeightRatio
	}

	a, o := &result.Animation, over.Animation
	setPtr(&a.Enabled, o.Enabled)
	setPtr(&a.TypingMinMs, o.TypingMinMs)
	setPtr(&a.TypingMaxMs, o.TypingMaxMs)
	setPtr(&a.LinePauseMs, o.LinePauseMs)
	setPtr(&a.InitialDelayMs, o.InitialDelayMs)
	setPtr(&a.CursorBlinkMs, o.CursorBlinkMs)

	setString(&result.Mac.Username, over.Mac.Username)
	setString(&result.Mac.At, over.Mac.At)
	setString(&result.Mac.Hostname, over.Mac.Hostname)
	setString(&result.Mac.Tilde, over.Mac.Tilde)
	setString(&result.Mac.PromptSymbol, over.Mac.PromptSymbol)
	setString(&result.Mac.Interpreter, over.Mac.Interpreter)

	setString(&result.Windows.Path, over.Windows.Path)
	setString(&result.Windows.PromptSymbol, over.Windows.PromptSymbol)
	setString(&result.Windows.Interpreter, over.Windows.Interpreter)
	setString(&result.Windows.ShellPrefix, over.Windows.ShellPrefix)

	return &result
}

// TypingConfig converts the animation settings for the scheduler. Unset
// fields take the scheduler defaults.
func (s *Settings) TypingConfig() typing.Config {
	c := typing.DefaultConfig()
	a := s.Animation
	if a.Enabled != nil {
		c.EnableAnimations = *a.Enabled
	}
	setDuration(&c.TypingMin, a.TypingMinMs)
	setDuration(&c.TypingMax, a.TypingMaxMs)
	setDuration(&c.LinePause, a.LinePauseMs)
	setDuration(&c.InitialDelay, a.InitialDelayMs)
	setDuration(&c.CursorBlink, a.CursorBlinkMs)
	return c
}

// SetTypingConfig stores c back into the animation settings.
func (s *Settings) SetTypingConfig(c typing.Config) {
	s.Animation = Animation{
		Enabled:        ptr(c.EnableAnimations),
		TypingMinMs:    ptr(ms(c.TypingMin)),
		TypingMaxMs:    ptr(ms(c.TypingMax)),
		LinePauseMs:    ptr(ms(c.LinePause)),
		InitialDelayMs: ptr(ms(c.InitialDelay)),
		CursorBlinkMs:  ptr(ms(c.CursorBlink)),
	}
}

// ResolveTheme returns the theme file when one is set, else the named
// built-in.
func (s *Settings) ResolveTheme() (*theme.Theme, error) {
	if s.ThemeFile != "" {
		return theme.LoadFile(s.ThemeFile)
	}
	t, ok := theme.Builtin(s.Theme)
	if !ok {
		return nil, fmt.Errorf("%w: unknown theme %q", ErrInvalid, s.Theme)
	}
	return t, nil
}

// ResolveSkin returns the configured platform skin.
func (s *Settings) ResolveSkin() (skin.Skin, error) {
	sk, err := skin.New(skin.Platform(s.Platform), s.Mac, s.Windows)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return sk, nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setPtr[T any](dst **T, v *T) {
	if v != nil {
		c := *v
		*dst = &c
	}
}

func setDuration(dst *time.Duration, v *int) {
	if v != nil {
		*dst = time.Duration(*v) * time.Millisecond
	}
}

func ms(d time.Duration) int { return int(d / time.Millisecond) }

func ptr[T any](v T) *T { return &v }
