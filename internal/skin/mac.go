// ABOUTME: macOS Terminal skin: user@host prompt, zsh title with grid size
// ABOUTME: Rounded window with traffic-light buttons and a centered title

package skin

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mauromedda/termsim/pkg/tui/theme"
	"github.com/mauromedda/termsim/pkg/tui/width"
)

// Mac renders a macOS Terminal window.
type Mac struct {
	Username     string `yaml:"username"`
	At           string `yaml:"at"`
	Hostname     string `yaml:"hostname"`
	Tilde        string `yaml:"tilde"`
	PromptSymbol string `yaml:"prompt_symbol"`
	Interpreter  string `yaml:"interpreter"`
}

// DefaultMac returns the stock macOS prompt: "user@macbook-pro ~ % ".
func DefaultMac() Mac {
	return Mac{
		Username:     "user",
		At:           "@",
		Hostname:     "macbook-pro",
		Tilde:        " ~ ",
		PromptSymbol: "% ",
		Interpreter:  "zsh",
	}
}

func (m Mac) Platform() Platform { return PlatformMac }

func (m Mac) Prompt() string {
	return m.Username + m.At + m.Hostname + m.Tilde + m.PromptSymbol
}

// Title returns "user — zsh — 80x24".
func (m Mac) Title(size string) string {
	return fmt.Sprintf("%s — %s — %s", m.Username, m.Interpreter, size)
}

func (m Mac) Render(f Frame, p theme.Palette) string {
	return render(f, p, chrome{
		border: lipgloss.RoundedBorder(),
		bar:    m.bar,
		prompt: m.styledPrompt,
		plain:  m.Prompt(),
	})
}

func (m Mac) styledPrompt(p theme.Palette) string {
	return p.Fg(p.Username).Render(m.Username) +
		p.Style().Render(m.At) +
		p.Fg(p.Hostname).Render(m.Hostname) +
		p.Fg(p.Path).Render(m.Tilde) +
		p.Fg(p.Symbol).Render(m.PromptSymbol)
}

// bar draws " ● ● ●" then the title centered in the remaining cells.
func (m Mac) bar(inner int, title string, p theme.Palette) string {
	const lights = 7
	if inner < lights {
		return barStyle(p, p.TitleText).Render(strings.Repeat(" ", inner))
	}
	left := barStyle(p, p.TitleText).Render(" ") +
		barStyle(p, p.Close).Render("●") + barStyle(p, p.TitleText).Render(" ") +
		barStyle(p, p.Minimize).Render("●") + barStyle(p, p.TitleText).Render(" ") +
		barStyle(p, p.Maximize).Render("●") + barStyle(p, p.TitleText).Render(" ")

	rest := inner - lights
	t := width.TruncateToWidth(title, rest)
	// Center against the full bar so the title sits over the window middle.
	lead := max(0, min(rest-width.VisibleWidth(t), (inner-width.VisibleWidth(t))/2-lights))
	text := strings.Repeat(" ", lead) + t
	return left + barStyle(p, p.TitleText).Render(width.PadRight(text, rest))
}
