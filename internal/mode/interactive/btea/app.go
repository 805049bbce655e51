// ABOUTME: Root AppModel for the simulated terminal: measure, reflow, type, render
// ABOUTME: Terminal resizes are the resize observer; each one restarts the typing run

package btea

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mauromedda/termsim/internal/log"
	"github.com/mauromedda/termsim/internal/skin"
	"github.com/mauromedda/termsim/pkg/reflow"
	"github.com/mauromedda/termsim/pkg/tui/width"
	"github.com/mauromedda/termsim/pkg/typing"
)

// initialSize is shown in the title until the first measure.
const initialSize = "80x24"

// shared holds mutable state that must survive AppModel value copies.
// Bubble Tea copies the model on each Update; pointer fields are shared
// across copies. Scheduler callbacks write here, and they only ever run
// inside Update, so no mutex is needed.
type shared struct {
	clock *teaClock // nil when AppDeps.Clock was injected
	sched *typing.Scheduler

	linesContent []string
	typedLines   []string
	activeLine   int
	activeChar   int
	isTyping     bool
	runID        int
	sizeWindow   string
	cursorOn     bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	sh            *shared // survives value copies
	deps          AppDeps
	width, height int
}

// NewAppModel creates an AppModel wired with the given dependencies.
func NewAppModel(deps AppDeps) AppModel {
	sh := &shared{
		sizeWindow: initialSize,
		cursorOn:   true,
	}
	c := deps.Clock
	if c == nil {
		sh.clock = newTeaClock()
		c = sh.clock
	}
	sh.sched = typing.New(c)

	return AppModel{sh: sh, deps: deps}
}

// Init starts the cursor blink. Typing waits for the first WindowSizeMsg.
func (m AppModel) Init() tea.Cmd {
	return m.blinkCmd()
}

// Update routes messages to the appropriate handler.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.measure()
		return m, nil

	case timerFiredMsg:
		if m.sh.clock != nil {
			m.sh.clock.fire(msg.id)
		}
		return m, nil

	case cursorBlinkMsg:
		m.sh.cursorOn = !m.sh.cursorOn
		return m, m.blinkCmd()

	case ReloadMsg:
		next := msg.Deps
		next.Clock = m.deps.Clock
		next.Reload = m.deps.Reload
		next.WatchPaths = m.deps.WatchPaths
		m.deps = next
		log.Info("btea: settings reloaded")
		m.measure()
		return m, nil

	case ReloadErrorMsg:
		log.Warn("btea: reload failed, keeping current settings: %v", msg.Err)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "ctrl+d", "esc", "q":
		m.teardown()
		return m, tea.Quit

	case "r":
		// Replay from the first character.
		m.measure()
		return m, nil

	case "a":
		m.deps.Typing.EnableAnimations = !m.deps.Typing.EnableAnimations
		m.measure()
		return m, nil
	}
	return m, nil
}

// measure recomputes the grid from the current window, reflows the text
// and restarts typing, or reveals everything when animations are off or
// there is nothing to type.
func (m AppModel) measure() {
	sh := m.sh
	fs := m.deps.FontSize
	cols, rows := skin.ContentSize(m.width, m.height)
	wPx, hPx := reflow.PixelSize(reflow.Dimensions{Cols: cols, Rows: rows}, fs, m.deps.Wrap)

	sh.sizeWindow = reflow.FormatDimensions(wPx, hPx, fs, m.deps.Wrap)
	sh.linesContent = reflow.SplitText(m.deps.Text, wPx, fs, m.promptLen(), m.deps.Wrap)
	log.Debug("btea: measured %s, %d lines", sh.sizeWindow, len(sh.linesContent))

	cfg := m.deps.Typing
	if cfg.EnableAnimations && len(sh.linesContent) > 0 {
		sh.runID = sh.sched.Start(sh.linesContent, &sh.typedLines, cfg, m.hooks())
		return
	}

	sh.sched.Stop()
	sh.runID = sh.sched.RunID()
	sh.typedLines = append(sh.typedLines[:0], sh.linesContent...)
	sh.isTyping = false
	sh.activeLine = max(0, len(sh.linesContent)-1)
	sh.activeChar = 0
	if n := len(sh.linesContent); n > 0 {
		sh.activeChar = width.Len(sh.linesContent[n-1])
	}
}

func (m AppModel) promptLen() int {
	if m.deps.Skin == nil {
		return 0
	}
	return width.Len(m.deps.Skin.Prompt())
}

func (m AppModel) hooks() typing.Hooks {
	sh := m.sh
	return typing.Hooks{
		Progress: func(line, char int) {
			sh.activeLine, sh.activeChar = line, char
			sh.isTyping = true
			sh.cursorOn = true
		},
		Complete: func() {
			sh.isTyping = false
		},
	}
}

// teardown cancels outstanding timers without invalidating the run.
func (m AppModel) teardown() {
	m.sh.sched.ClearTimers()
	log.Debug("btea: timers cleared on exit")
}

func (m AppModel) blinkCmd() tea.Cmd {
	d := m.deps.Typing.CursorBlink
	if d <= 0 {
		return nil
	}
	return tea.Tick(d, func(time.Time) tea.Msg { return cursorBlinkMsg{} })
}

// View renders the window. Lines past the active one stay hidden while
// typing is in progress.
func (m AppModel) View() string {
	if m.width == 0 || m.height == 0 || m.deps.Skin == nil {
		return ""
	}
	sh := m.sh

	visible := sh.typedLines
	if sh.isTyping {
		visible = visible[:min(sh.activeLine+1, len(visible))]
	}
	cursor := -1
	if sh.cursorOn && len(visible) > 0 {
		cursor = len(visible) - 1
	}

	return m.deps.Skin.Render(skin.Frame{
		Width:  m.width,
		Height: m.height,
		Title:  m.deps.Skin.Title(sh.sizeWindow),
		Lines:  visible,
		Cursor: cursor,
	}, m.deps.palette())
}
