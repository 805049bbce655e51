// ABOUTME: Terminal window palettes: content, prompt segments, and chrome colors
// ABOUTME: Color values are lipgloss color strings (hex or ANSI index)

package theme

import "github.com/charmbracelet/lipgloss"

// Palette holds every color a simulated terminal window uses.
type Palette struct {
	// Content area
	Background lipgloss.Color `yaml:"background"`
	Foreground lipgloss.Color `yaml:"foreground"`
	Cursor     lipgloss.Color `yaml:"cursor"`

	// Prompt segments
	Username lipgloss.Color `yaml:"username"`
	Hostname lipgloss.Color `yaml:"hostname"`
	Path     lipgloss.Color `yaml:"path"`
	Symbol   lipgloss.Color `yaml:"symbol"`

	// Window chrome
	TitleBar  lipgloss.Color `yaml:"title_bar"`
	TitleText lipgloss.Color `yaml:"title_text"`
	Border    lipgloss.Color `yaml:"border"`
	Close     lipgloss.Color `yaml:"close"`
	Minimize  lipgloss.Color `yaml:"minimize"`
	Maximize  lipgloss.Color `yaml:"maximize"`
}

// Theme is a named palette.
type Theme struct {
	Name    string  `yaml:"name"`
	Palette Palette `yaml:"palette"`
}

// Style returns a content style with the palette's foreground and background.
func (p Palette) Style() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(p.Foreground).Background(p.Background)
}

// Fg returns a style that paints text in c over the content background.
func (p Palette) Fg(c lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c).Background(p.Background)
}

// merge returns p with every empty field taken from base.
func (p Palette) merge(base Palette) Palette {
	fields := []struct {
		dst *lipgloss.Color
		src lipgloss.Color
	}{
		{&p.Background, base.Background},
		{&p.Foreground, base.Foreground},
		{&p.Cursor, base.Cursor},
		{&p.Username, base.Username},
		{&p.Hostname, base.Hostname},
		{&p.Path, base.Path},
		{&p.Symbol, base.Symbol},
		{&p.TitleBar, base.TitleBar},
		{&p.TitleText, base.TitleText},
		{&p.Border, base.Border},
		{&p.Close, base.Close},
		{&p.Minimize, base.Minimize},
		{&p.Maximize, base.Maximize},
	}
	for _, f := range fields {
		if *f.dst == "" {
			*f.dst = f.src
		}
	}
	return p
}
