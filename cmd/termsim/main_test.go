// ABOUTME: Tests for flag parsing, config overlay, and the print and size paths
// ABOUTME: Runs the CLI in-process with buffers and an isolated HOME

package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/mauromedda/termsim/internal/config"
)

func runCLI(t *testing.T, stdin string, argv ...string) (code int, stdout, stderr string) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	var out, errOut bytes.Buffer
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	code = run(ctx, argv, strings.NewReader(stdin), &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestParseFlags_Defaults(t *testing.T) {
	t.Parallel()

	args, err := parseFlags(nil)
	if err != nil {
		t.Fatal(err)
	}
	if args.fontSize != config.DefaultFontSize || args.format != "text" {
		t.Errorf("defaults = %+v", args)
	}
	if args.changed("font-size") {
		t.Error("font-size reported as changed without being set")
	}
}

func TestParseFlags_Errors(t *testing.T) {
	t.Parallel()

	for _, argv := range [][]string{
		{"--nope"},
		{"--typing-min", "fast"},
		{"stray"},
	} {
		if _, err := parseFlags(argv); err == nil {
			t.Errorf("parseFlags(%q) = nil error", argv)
		}
	}
}

func TestApply_OnlyChangedFlags(t *testing.T) {
	t.Parallel()

	args, err := parseFlags([]string{"-p", "windows", "--typing-max", "120ms", "--no-animation", "--file", "notes.txt"})
	if err != nil {
		t.Fatal(err)
	}

	s := config.Defaults()
	s.Theme = "light"
	s.Text = "from config"
	args.apply(s)

	if s.Platform != "windows" {
		t.Errorf("Platform = %q", s.Platform)
	}
	if s.Theme != "light" {
		t.Errorf("Theme = %q; unset flag overrode config", s.Theme)
	}
	if s.TextFile != "notes.txt" || s.Text != "" {
		t.Errorf("text source = %q / %q", s.Text, s.TextFile)
	}
	tc := s.TypingConfig()
	if tc.TypingMax != 120*time.Millisecond || tc.TypingMin != 50*time.Millisecond {
		t.Errorf("typing bounds = %v..%v", tc.TypingMin, tc.TypingMax)
	}
	if tc.EnableAnimations {
		t.Error("--no-animation ignored")
	}
}

func TestRun_Version(t *testing.T) {
	code, out, _ := runCLI(t, "", "--version")
	if code != 0 || !strings.HasPrefix(out, "termsim dev") {
		t.Errorf("code %d, out %q", code, out)
	}
}

func TestRun_Help(t *testing.T) {
	code, out, _ := runCLI(t, "", "-h")
	if code != 0 || !strings.Contains(out, "--typing-min") {
		t.Errorf("code %d, out %q", code, out)
	}
}

func TestRun_BadFlag(t *testing.T) {
	code, _, errOut := runCLI(t, "", "--bogus")
	if code != 2 || !strings.Contains(errOut, "Usage") {
		t.Errorf("code %d, stderr %q", code, errOut)
	}
}

func TestRun_Size(t *testing.T) {
	code, out, errOut := runCLI(t, "", "--size", "--width", "675", "--height", "432", "--font-size", "14")
	if code != 0 {
		t.Fatalf("code %d, stderr %q", code, errOut)
	}
	if out != "80x25\n" {
		t.Errorf("out = %q, want 80x25", out)
	}
}

func TestRun_InvalidPlatform(t *testing.T) {
	code, _, errOut := runCLI(t, "", "--size", "--width", "100", "--height", "100", "-p", "winows")
	if code != 2 {
		t.Errorf("code = %d, want 2", code)
	}
	if !strings.Contains(errOut, `did you mean "windows"`) {
		t.Errorf("stderr = %q", errOut)
	}
}

func TestRun_Print(t *testing.T) {
	code, out, errOut := runCLI(t, "",
		"--print", "--platform", "windows",
		"--width", "300", "--height", "100",
		"--text", "hi there",
		"--typing-min", "1ms", "--typing-max", "1ms",
		"--line-pause", "0s", "--initial-delay", "0s",
	)
	if code != 0 {
		t.Fatalf("code %d, stderr %q", code, errOut)
	}
	if out != `C:\Users\user>hi there`+"\n" {
		t.Errorf("out = %q", out)
	}
}

func TestRun_PrintFromStdin(t *testing.T) {
	code, out, errOut := runCLI(t, "one two three\nfour",
		"--print", "--no-animation", "-f", "-",
		"--width", "400", "--height", "100",
	)
	if code != 0 {
		t.Fatalf("code %d, stderr %q", code, errOut)
	}
	want := "user@macbook-pro ~ % one two three\nuser@macbook-pro ~ % four\n"
	if out != want {
		t.Errorf("out = %q, want %q", out, want)
	}
}

func TestRun_EmptyStdin(t *testing.T) {
	code, _, errOut := runCLI(t, "  \n", "--print", "-f", "-", "--width", "400", "--height", "100")
	if code != 1 || !strings.Contains(errOut, "empty") {
		t.Errorf("code %d, stderr %q", code, errOut)
	}
}
