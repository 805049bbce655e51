// ABOUTME: Tests for built-in themes, the global theme pointer, and YAML loading
// ABOUTME: Verifies palette completeness, base fallback, and load errors

package theme

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestBuiltinNames(t *testing.T) {
	t.Parallel()

	if got, want := BuiltinNames(), []string{"dark", "light"}; !reflect.DeepEqual(got, want) {
		t.Errorf("BuiltinNames() = %v, want %v", got, want)
	}
}

func TestBuiltins_PalettesComplete(t *testing.T) {
	t.Parallel()

	for _, name := range BuiltinNames() {
		th, ok := Builtin(name)
		if !ok {
			t.Fatalf("Builtin(%q) missing", name)
		}
		v := reflect.ValueOf(th.Palette)
		for i := range v.NumField() {
			if v.Field(i).String() == "" {
				t.Errorf("%s palette: %s is empty", name, v.Type().Field(i).Name)
			}
		}
	}
}

func TestBuiltin_Unknown(t *testing.T) {
	t.Parallel()

	if _, ok := Builtin("solarized"); ok {
		t.Error("Builtin(solarized) = ok, want missing")
	}
}

func TestCurrentAndSet(t *testing.T) {
	old := Current()
	defer Set(old)

	if Current().Name != DefaultName {
		t.Errorf("Current().Name = %q, want %q", Current().Name, DefaultName)
	}
	light, _ := Builtin("light")
	Set(light)
	if Current().Name != "light" {
		t.Errorf("after Set, Current().Name = %q", Current().Name)
	}
	Set(nil)
	if Current().Name != DefaultName {
		t.Errorf("Set(nil) left %q, want default", Current().Name)
	}
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "ocean.yaml")
	data := "name: ocean\nbase: light\npalette:\n  background: \"#002b36\"\n  username: \"33\"\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	th, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	light, _ := Builtin("light")
	if th.Name != "ocean" {
		t.Errorf("Name = %q, want ocean", th.Name)
	}
	if th.Palette.Background != "#002b36" || th.Palette.Username != "33" {
		t.Errorf("overrides not applied: %+v", th.Palette)
	}
	if th.Palette.Foreground != light.Palette.Foreground || th.Palette.Close != light.Palette.Close {
		t.Errorf("unset fields did not inherit from base: %+v", th.Palette)
	}
}

func TestLoadFile_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	badYAML := filepath.Join(dir, "bad.yaml")
	badBase := filepath.Join(dir, "base.yaml")
	_ = os.WriteFile(badYAML, []byte("palette: [unclosed"), 0o644)
	_ = os.WriteFile(badBase, []byte("base: neon\n"), 0o644)

	tests := []struct {
		name    string
		path    string
		wantErr string
	}{
		{name: "missing file", path: filepath.Join(dir, "nope.yaml"), wantErr: "reading theme file"},
		{name: "bad yaml", path: badYAML, wantErr: "parsing theme file"},
		{name: "unknown base", path: badBase, wantErr: `unknown base theme "neon"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := LoadFile(tt.path)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("LoadFile(%s) error = %v, want containing %q", tt.name, err, tt.wantErr)
			}
		})
	}
}
