// ABOUTME: YAML theme file loading with fallback to a built-in base palette
// ABOUTME: Unset palette fields inherit from the base so every color is defined

package theme

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileTheme is the on-disk form: a base built-in plus overrides.
type fileTheme struct {
	Name    string  `yaml:"name"`
	Base    string  `yaml:"base"`
	Palette Palette `yaml:"palette"`
}

// LoadFile reads a YAML theme. Missing palette fields come from the theme
// named by "base" (dark when unset).
func LoadFile(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading theme file: %w", err)
	}

	var ft fileTheme
	if err := yaml.Unmarshal(data, &ft); err != nil {
		return nil, fmt.Errorf("parsing theme file %s: %w", path, err)
	}

	baseName := ft.Base
	if baseName == "" {
		baseName = DefaultName
	}
	base, ok := Builtin(baseName)
	if !ok {
		return nil, fmt.Errorf("theme file %s: unknown base theme %q", path, baseName)
	}

	name := ft.Name
	if name == "" {
		name = baseName
	}
	return &Theme{Name: name, Palette: ft.Palette.merge(base.Palette)}, nil
}
