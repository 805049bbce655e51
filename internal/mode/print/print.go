// ABOUTME: Headless replay: types the wrapped text to a writer in real time
// ABOUTME: Runs the scheduler on a clock.Loop with text and stream-JSON formatters

package print

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/mauromedda/termsim/internal/log"
	"github.com/mauromedda/termsim/pkg/clock"
	"github.com/mauromedda/termsim/pkg/reflow"
	"github.com/mauromedda/termsim/pkg/tui/terminal"
	"github.com/mauromedda/termsim/pkg/tui/width"
	"github.com/mauromedda/termsim/pkg/typing"
	"golang.org/x/sync/errgroup"
)

// Config configures a headless replay.
type Config struct {
	OutputFormat string // "text" (default), "stream-json"
	Text         string
	Prompt       string

	// Container size in pixels.
	WidthPx  float64
	HeightPx float64
	FontSize float64
	Wrap     reflow.WrapConfig
	Typing   typing.Config
}

// Run wraps cfg.Text and types it to w, one prompt per line, until every
// line is revealed or ctx is cancelled. A cancelled replay returns ctx.Err()
// after flushing a final newline.
func Run(ctx context.Context, cfg Config, w io.Writer) error {
	lines := reflow.SplitText(cfg.Text, cfg.WidthPx, cfg.FontSize, width.Len(cfg.Prompt), cfg.Wrap)
	size := reflow.FormatDimensions(cfg.WidthPx, cfg.HeightPx, cfg.FontSize, cfg.Wrap)
	f := newFormatter(cfg.OutputFormat, w, cfg.Prompt)

	loop := clock.NewLoop()
	sched := typing.New(loop)

	var out []string
	done := make(chan struct{})
	hooks := typing.Hooks{
		Progress: func(line, _ int) { f.progress(out, line) },
		Complete: func() { close(done) },
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(runCtx)

	g.Go(func() error { return loop.Run(gctx) })
	g.Go(func() error {
		select {
		case <-done:
		case <-gctx.Done():
		}
		cancel()
		return nil
	})

	loop.Post(func() {
		f.start(size, len(lines))
		id := sched.Start(lines, &out, cfg.Typing, hooks)
		log.Debug("print: run %d, %d lines at %s", id, len(lines), size)
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("replay: %w", err)
	}

	// The loop has exited; nothing else touches the scheduler or out.
	sched.ClearTimers()

	select {
	case <-done:
		f.end(out, true)
		return nil
	default:
		f.end(out, false)
		return ctx.Err()
	}
}

// TerminalPixels returns the pixel size matching t's character grid.
func TerminalPixels(t terminal.Terminal, fontSize float64, wrap reflow.WrapConfig) (w, h float64, err error) {
	cols, rows, err := t.Size()
	if err != nil {
		return 0, 0, err
	}
	w, h = reflow.PixelSize(reflow.Dimensions{Cols: cols, Rows: rows}, fontSize, wrap)
	return w, h, nil
}

type formatter interface {
	start(size string, lines int)
	// progress is called after a reveal on line; out is the typed buffer.
	progress(out []string, line int)
	end(out []string, complete bool)
}

func newFormatter(format string, w io.Writer, prompt string) formatter {
	switch format {
	case "stream-json":
		return &streamJSONFormatter{w: w}
	default:
		return &textFormatter{w: w, prompt: prompt}
	}
}

// cursor remembers how much of the typed buffer has been emitted.
type cursor struct {
	line    int
	written int // bytes of out[line] already emitted
	opened  bool
}

// textFormatter streams each revealed character, a prompt before every line.
type textFormatter struct {
	w      io.Writer
	prompt string
	cur    cursor
}

func (f *textFormatter) start(string, int) {}

func (f *textFormatter) progress(out []string, line int) {
	f.sync(out, line)
}

func (f *textFormatter) end(out []string, complete bool) {
	if complete {
		f.sync(out, len(out)-1)
	}
	if f.cur.opened {
		fmt.Fprintln(f.w)
	}
}

// sync emits everything in out up to and including line upTo.
func (f *textFormatter) sync(out []string, upTo int) {
	for f.cur.line < len(out) && f.cur.line <= upTo {
		if !f.cur.opened {
			io.WriteString(f.w, f.prompt)
			f.cur.opened = true
		}
		s := out[f.cur.line]
		io.WriteString(f.w, s[f.cur.written:])
		f.cur.written = len(s)
		if f.cur.line == upTo {
			return
		}
		fmt.Fprintln(f.w)
		f.cur = cursor{line: f.cur.line + 1}
	}
}

// streamJSONFormatter outputs one JSON line per event.
type streamJSONFormatter struct {
	w   io.Writer
	cur cursor
}

type streamEvent struct {
	Type     string   `json:"type"`
	Size     string   `json:"size,omitempty"`
	Count    int      `json:"count,omitempty"`
	Line     *int     `json:"line,omitempty"`
	Text     string   `json:"text,omitempty"`
	Lines    []string `json:"lines,omitempty"`
	Complete bool     `json:"complete,omitempty"`
}

func (f *streamJSONFormatter) start(size string, lines int) {
	f.write(streamEvent{Type: "start", Size: size, Count: lines})
}

func (f *streamJSONFormatter) progress(out []string, line int) {
	if line >= len(out) {
		return
	}
	if line != f.cur.line {
		f.cur = cursor{line: line}
	}
	s := out[line]
	if text := s[f.cur.written:]; text != "" {
		f.write(streamEvent{Type: "char", Line: &line, Text: text})
	}
	f.cur.written = len(s)
}

func (f *streamJSONFormatter) end(out []string, complete bool) {
	f.write(streamEvent{Type: "end", Lines: out, Complete: complete})
}

func (f *streamJSONFormatter) write(evt streamEvent) {
	data, _ := json.Marshal(evt)
	fmt.Fprintln(f.w, string(data))
}
