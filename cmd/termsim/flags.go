// ABOUTME: CLI flag parsing using spf13/pflag
// ABOUTME: Flags override config files only when explicitly set on the command line

package main

import (
	"fmt"
	"io"
	"time"

	"github.com/mauromedda/termsim/internal/config"
	"github.com/spf13/pflag"
)

type cliArgs struct {
	configFile string
	platform   string
	theme      string
	themeFile  string
	fontSize   float64
	text       string
	file       string

	noAnimation  bool
	typingMin    time.Duration
	typingMax    time.Duration
	linePause    time.Duration
	initialDelay time.Duration
	cursorBlink  time.Duration

	print   bool
	format  string
	widthPx float64
	height  float64
	size    bool

	verbose bool
	version bool
	help    bool

	fs *pflag.FlagSet
}

func parseFlags(argv []string) (cliArgs, error) {
	var args cliArgs
	fs := pflag.NewFlagSet("termsim", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	args.fs = fs

	fs.StringVarP(&args.configFile, "config", "c", "", "Config file merged over ~/.termsim and .termsim")
	fs.StringVarP(&args.platform, "platform", "p", "", "Window style: mac or windows")
	fs.StringVarP(&args.theme, "theme", "t", "", "Built-in theme: dark or light")
	fs.StringVar(&args.themeFile, "theme-file", "", "YAML theme file")
	fs.Float64Var(&args.fontSize, "font-size", config.DefaultFontSize, "Simulated font size in pixels")
	fs.StringVar(&args.text, "text", "", "Text to type")
	fs.StringVarP(&args.file, "file", "f", "", "Read text from a file (.txt or .html), or - for stdin")

	fs.BoolVar(&args.noAnimation, "no-animation", false, "Show the text at once")
	fs.DurationVar(&args.typingMin, "typing-min", 50*time.Millisecond, "Minimum delay per character")
	fs.DurationVar(&args.typingMax, "typing-max", 80*time.Millisecond, "Maximum delay per character")
	fs.DurationVar(&args.linePause, "line-pause", 300*time.Millisecond, "Pause after each line")
	fs.DurationVar(&args.initialDelay, "initial-delay", time.Second, "Delay before the first character")
	fs.DurationVar(&args.cursorBlink, "cursor-blink", 500*time.Millisecond, "Cursor blink interval (0 disables)")

	fs.BoolVar(&args.print, "print", false, "Type to stdout instead of opening the window")
	fs.StringVar(&args.format, "format", "text", "Print mode output: text or stream-json")
	fs.Float64Var(&args.widthPx, "width", 0, "Container width in pixels (default: terminal size)")
	fs.Float64Var(&args.height, "height", 0, "Container height in pixels (default: terminal size)")
	fs.BoolVar(&args.size, "size", false, "Print the COLSxROWS grid for the container and exit")

	fs.BoolVarP(&args.verbose, "verbose", "v", false, "Debug logging")
	fs.BoolVar(&args.version, "version", false, "Show version and exit")
	fs.BoolVarP(&args.help, "help", "h", false, "Show this help")

	if err := fs.Parse(argv); err != nil {
		return args, err
	}
	if n := fs.NArg(); n > 0 {
		return args, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}
	return args, nil
}

// changed reports whether name was given on the command line.
func (a cliArgs) changed(name string) bool {
	return a.fs != nil && a.fs.Changed(name)
}

// apply overlays the explicitly set flags onto s.
func (a cliArgs) apply(s *config.Settings) {
	if a.changed("platform") {
		s.Platform = a.platform
	}
	if a.changed("theme") {
		s.Theme = a.theme
		s.ThemeFile = ""
	}
	if a.changed("theme-file") {
		s.ThemeFile = a.themeFile
	}
	if a.changed("font-size") {
		s.FontSize = a.fontSize
	}
	if a.changed("text") {
		s.Text = a.text
		s.TextFile = ""
	}
	if a.changed("file") {
		s.TextFile = a.file
		s.Text = ""
	}

	tc := s.TypingConfig()
	if a.noAnimation {
		tc.EnableAnimations = false
	}
	for _, d := range []struct {
		name string
		dst  *time.Duration
		v    time.Duration
	}{
		{"typing-min", &tc.TypingMin, a.typingMin},
		{"typing-max", &tc.TypingMax, a.typingMax},
		{"line-pause", &tc.LinePause, a.linePause},
		{"initial-delay", &tc.InitialDelay, a.initialDelay},
		{"cursor-blink", &tc.CursorBlink, a.cursorBlink},
	} {
		if a.changed(d.name) {
			*d.dst = d.v
		}
	}
	s.SetTypingConfig(tc)
}

func printHelp(w io.Writer, fs *pflag.FlagSet) {
	fmt.Fprintln(w, "termsim - a simulated terminal that types your text")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage: termsim [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Keys: r replay, a toggle animation, q quit")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprint(w, fs.FlagUsages())
}
