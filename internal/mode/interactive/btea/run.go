// ABOUTME: Entry point for the Bubble Tea terminal simulator
// ABOUTME: Creates the tea.Program, routes timer expiries into it, and blocks until exit

package btea

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mauromedda/termsim/internal/config"
	"github.com/mauromedda/termsim/internal/log"
)

// Run starts the simulator on the alternate screen. Blocks until the user
// exits or ctx is cancelled.
func Run(ctx context.Context, deps AppDeps, opts ...tea.ProgramOption) error {
	m := NewAppModel(deps)

	p := tea.NewProgram(
		m,
		append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)...,
	)

	// tea.NewProgram copies the model value but shares sh, so the clock
	// it holds is the one the running model fires.
	if m.sh.clock != nil {
		m.sh.clock.setSend(p.Send)
	}

	if deps.Reload != nil && len(deps.WatchPaths) > 0 {
		wctx, cancel := context.WithCancel(ctx)
		defer cancel()
		w := config.NewWatcher(deps.WatchPaths, func() {
			next, err := deps.Reload()
			if err != nil {
				p.Send(ReloadErrorMsg{Err: err})
				return
			}
			p.Send(ReloadMsg{Deps: next})
		})
		log.Debug("btea: watching %v", w.Paths())
		go w.Run(wctx)
	}

	_, err := p.Run()

	// Update no longer runs, so the scheduler can be touched here.
	m.teardown()

	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("bubble tea: %w", err)
	}
	return nil
}
