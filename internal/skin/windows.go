// ABOUTME: Windows console skin: cmd or PowerShell prompt and title
// ABOUTME: Square window with the title left and caption buttons right

package skin

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mauromedda/termsim/pkg/tui/theme"
	"github.com/mauromedda/termsim/pkg/tui/width"
)

// Windows interpreters.
const (
	InterpreterCmd        = "cmd"
	InterpreterPowerShell = "powershell"
)

// Windows renders a Windows console window.
type Windows struct {
	Path         string `yaml:"path"`
	PromptSymbol string `yaml:"prompt_symbol"`
	Interpreter  string `yaml:"interpreter"`
	ShellPrefix  string `yaml:"shell_prefix"`
}

// DefaultWindows returns the stock cmd prompt: `C:\Users\user>`.
func DefaultWindows() Windows {
	return Windows{
		Path:         `C:\Users\user`,
		PromptSymbol: ">",
		Interpreter:  InterpreterCmd,
		ShellPrefix:  "PS ",
	}
}

func (w Windows) Platform() Platform { return PlatformWindows }

func (w Windows) powerShell() bool { return w.Interpreter == InterpreterPowerShell }

func (w Windows) Prompt() string {
	if w.powerShell() {
		return w.ShellPrefix + w.Path + w.PromptSymbol
	}
	return w.Path + w.PromptSymbol
}

// Title names the shell; the Windows console does not show the grid size.
func (w Windows) Title(string) string {
	if w.powerShell() {
		return "Windows PowerShell"
	}
	return "Command Prompt"
}

func (w Windows) Render(f Frame, p theme.Palette) string {
	return render(f, p, chrome{
		border: lipgloss.NormalBorder(),
		bar:    w.bar,
		prompt: w.styledPrompt,
		plain:  w.Prompt(),
	})
}

func (w Windows) styledPrompt(p theme.Palette) string {
	var b strings.Builder
	if w.powerShell() {
		b.WriteString(p.Fg(p.Symbol).Render(w.ShellPrefix))
	}
	b.WriteString(p.Fg(p.Path).Render(w.Path))
	b.WriteString(p.Fg(p.Symbol).Render(w.PromptSymbol))
	return b.String()
}

// bar draws " title" on the left and "─ □ ✕ " on the right.
func (w Windows) bar(inner int, title string, p theme.Palette) string {
	const buttons = " ─ □ ✕ "
	bw := width.VisibleWidth(buttons)
	if inner < bw {
		return barStyle(p, p.TitleText).Render(strings.Repeat(" ", inner))
	}
	rest := inner - bw
	t := width.PadRight(width.TruncateToWidth(" "+title, rest), rest)
	return barStyle(p, p.TitleText).Render(t) +
		barStyle(p, p.TitleText).Render(" ─ □ ") +
		barStyle(p, p.Close).Render("✕") +
		barStyle(p, p.TitleText).Render(" ")
}
