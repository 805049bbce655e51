// ABOUTME: Dependency injection struct for the Bubble Tea terminal simulator
// ABOUTME: Carries the skin, theme, text and timing; Reload rebuilds it on file change

package btea

import (
	"github.com/mauromedda/termsim/internal/skin"
	"github.com/mauromedda/termsim/pkg/clock"
	"github.com/mauromedda/termsim/pkg/reflow"
	"github.com/mauromedda/termsim/pkg/tui/theme"
	"github.com/mauromedda/termsim/pkg/typing"
)

// AppDeps bundles everything the simulated terminal needs.
type AppDeps struct {
	Skin     skin.Skin
	Theme    *theme.Theme // nil uses theme.Current()
	FontSize float64
	Wrap     reflow.WrapConfig
	Typing   typing.Config
	Text     string

	// Clock drives the typing scheduler. Nil delivers timer expiry through
	// the running program so callbacks execute inside Update.
	Clock clock.Clock

	// Reload rebuilds the deps after a watched file changes. Nil disables
	// watching.
	Reload     func() (AppDeps, error)
	WatchPaths []string
}

func (d AppDeps) palette() theme.Palette {
	if d.Theme != nil {
		return d.Theme.Palette
	}
	return theme.Current().Palette
}
