// ABOUTME: CLI entry point for termsim with terminal background preset
// ABOUTME: Parses flags, loads config and text, dispatches to print or interactive mode

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	// termfix must be imported before any package that imports bubbletea.
	"github.com/mauromedda/termsim/internal/termfix"

	"github.com/mauromedda/termsim/internal/config"
	"github.com/mauromedda/termsim/internal/content"
	"github.com/mauromedda/termsim/internal/log"
	"github.com/mauromedda/termsim/internal/mode/interactive/btea"
	"github.com/mauromedda/termsim/internal/mode/print"
	"github.com/mauromedda/termsim/pkg/reflow"
	"github.com/mauromedda/termsim/pkg/tui/terminal"
	"github.com/mauromedda/termsim/pkg/tui/theme"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// errUsage marks a command line that could not be parsed.
var errUsage = errors.New("usage")

func main() {
	defer terminal.RestoreOnPanic(os.Stdout, os.Stderr, os.Exit)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes one invocation and returns the process exit code.
func run(ctx context.Context, argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	args, err := parseFlags(argv)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n\n", err)
		printHelp(stderr, args.fs)
		return 2
	}
	if args.help {
		printHelp(stdout, args.fs)
		return 0
	}
	if args.version {
		fmt.Fprintf(stdout, "termsim %s (%s) built %s\n", version, commit, date)
		return 0
	}

	log.SetOutput(stderr)
	if args.verbose {
		log.SetLevel(log.LevelDebug)
	}

	if err := dispatch(ctx, args, stdin, stdout); err != nil {
		if errors.Is(err, context.Canceled) {
			return 130
		}
		fmt.Fprintf(stderr, "error: %v\n", err)
		if errors.Is(err, errUsage) || errors.Is(err, config.ErrInvalid) {
			return 2
		}
		return 1
	}
	return 0
}

func dispatch(ctx context.Context, args cliArgs, stdin io.Reader, stdout io.Writer) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}

	settings, err := loadSettings(cwd, args)
	if err != nil {
		return err
	}

	if args.size {
		w, h, err := containerPixels(args, settings)
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, reflow.FormatDimensions(w, h, settings.FontSize, settings.Wrap))
		return nil
	}

	text, err := content.Load(content.Source{Text: settings.Text, File: settings.TextFile, Stdin: stdin})
	if err != nil {
		return fmt.Errorf("loading text: %w", err)
	}

	if args.print {
		return runPrint(ctx, args, settings, text, stdout)
	}
	return runInteractive(ctx, cwd, args, settings, text)
}

// loadSettings layers config files and flags, then validates the result.
func loadSettings(cwd string, args cliArgs) (*config.Settings, error) {
	s, err := config.Load(cwd, args.configFile)
	if err != nil {
		return nil, err
	}
	args.apply(s)
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// containerPixels returns the pixel size from --width/--height, falling back
// to the size of the terminal on stdout.
func containerPixels(args cliArgs, s *config.Settings) (float64, float64, error) {
	if args.widthPx > 0 && args.height > 0 {
		return args.widthPx, args.height, nil
	}
	w, h, err := print.TerminalPixels(terminal.Stdout(), s.FontSize, s.Wrap)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %w; pass --width and --height", errUsage, err)
	}
	if args.widthPx > 0 {
		w = args.widthPx
	}
	if args.height > 0 {
		h = args.height
	}
	return w, h, nil
}

func runPrint(ctx context.Context, args cliArgs, s *config.Settings, text string, stdout io.Writer) error {
	sk, err := s.ResolveSkin()
	if err != nil {
		return err
	}
	w, h, err := containerPixels(args, s)
	if err != nil {
		return err
	}
	return print.Run(ctx, print.Config{
		OutputFormat: args.format,
		Text:         text,
		Prompt:       sk.Prompt(),
		WidthPx:      w,
		HeightPx:     h,
		FontSize:     s.FontSize,
		Wrap:         s.Wrap,
		Typing:       s.TypingConfig(),
	}, stdout)
}

func runInteractive(ctx context.Context, cwd string, args cliArgs, s *config.Settings, text string) error {
	// The alternate screen owns the terminal; logs go to a file.
	if err := config.EnsureDir(config.GlobalDir()); err == nil {
		if f, err := os.OpenFile(config.LogFile(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600); err == nil {
			defer f.Close()
			log.SetOutput(f)
		} else {
			log.SetOutput(nil)
		}
	} else {
		log.SetOutput(nil)
	}

	deps, err := buildDeps(s, text)
	if err != nil {
		return err
	}
	deps.WatchPaths = config.WatchPaths(cwd, args.configFile, s)
	deps.Reload = func() (btea.AppDeps, error) {
		next, err := loadSettings(cwd, args)
		if err != nil {
			return btea.AppDeps{}, err
		}
		// Stdin was consumed at startup; keep what it held.
		if next.TextFile == content.StdinPath {
			return buildDeps(next, text)
		}
		t, err := content.Load(content.Source{Text: next.Text, File: next.TextFile})
		if err != nil {
			return btea.AppDeps{}, err
		}
		return buildDeps(next, t)
	}

	log.Info("termsim %s: %s skin, %s theme", version, s.Platform, s.Theme)
	return btea.Run(ctx, deps)
}

func buildDeps(s *config.Settings, text string) (btea.AppDeps, error) {
	sk, err := s.ResolveSkin()
	if err != nil {
		return btea.AppDeps{}, err
	}
	th, err := s.ResolveTheme()
	if err != nil {
		return btea.AppDeps{}, err
	}
	theme.Set(th)
	termfix.Apply(th.Name)

	return btea.AppDeps{
		Skin:     sk,
		Theme:    th,
		FontSize: s.FontSize,
		Wrap:     s.Wrap,
		Typing:   s.TypingConfig(),
		Text:     text,
	}, nil
}
