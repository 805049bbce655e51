// ABOUTME: Built-in themes: dark (default) and light
// ABOUTME: Provides Builtin(name) lookup and BuiltinNames() enumeration

package theme

import "sort"

// DefaultName is the theme used when none is configured.
const DefaultName = "dark"

var builtins = map[string]*Theme{
	"dark": {
		Name: "dark",
		Palette: Palette{
			Background: "#1e1e1e",
			Foreground: "#e6e6e6",
			Cursor:     "#e6e6e6",
			Username:   "#5fd787",
			Hostname:   "#5fafff",
			Path:       "#87d7ff",
			Symbol:     "#e6e6e6",
			TitleBar:   "#323233",
			TitleText:  "#a0a0a0",
			Border:     "#4a4a4a",
			Close:      "#ff5f57",
			Minimize:   "#febc2e",
			Maximize:   "#28c840",
		},
	},
	"light": {
		Name: "light",
		Palette: Palette{
			Background: "#ffffff",
			Foreground: "#1e1e1e",
			Cursor:     "#1e1e1e",
			Username:   "#00875f",
			Hostname:   "#005fd7",
			Path:       "#005f87",
			Symbol:     "#1e1e1e",
			TitleBar:   "#e8e8e8",
			TitleText:  "#4d4d4d",
			Border:     "#c6c6c6",
			Close:      "#ff5f57",
			Minimize:   "#febc2e",
			Maximize:   "#28c840",
		},
	},
}

// Builtin returns the built-in theme called name.
func Builtin(name string) (*Theme, bool) {
	t, ok := builtins[name]
	return t, ok
}

// BuiltinNames returns the built-in theme names, sorted.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
