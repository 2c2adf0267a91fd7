package cli

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/inovacc/clockr/internal/model"
	"github.com/lucasb-eyer/go-colorful"
)

// palette is the resolved set of colors for one theme/accent combination.
type palette struct {
	dark   bool
	fg     lipgloss.Color
	muted  lipgloss.Color
	panel  lipgloss.Color
	accent lipgloss.Color
	flash  lipgloss.Color
	err    lipgloss.Color
}

// resolveDark maps a theme to dark or light; auto follows the terminal.
func resolveDark(theme model.Theme, terminalDark bool) bool {
	switch theme {
	case model.ThemeLight:
		return false
	case model.ThemeAuto:
		return terminalDark
	default:
		return true
	}
}

func newPalette(theme model.Theme, accent string, terminalDark bool) palette {
	p := palette{
		dark:   resolveDark(theme, terminalDark),
		accent: lipgloss.Color(accent),
		flash:  lipgloss.Color(flashColor(accent)),
		err:    lipgloss.Color("196"),
	}

	if p.dark {
		p.fg = lipgloss.Color("#e8eaf0")
		p.muted = lipgloss.Color("#8a90a2")
		p.panel = lipgloss.Color("#151923")
	} else {
		p.fg = lipgloss.Color("#1b1f2a")
		p.muted = lipgloss.Color("#5d6475")
		p.panel = lipgloss.Color("#f4f6fb")
	}

	return p
}

// flashColor brightens the accent the way the alarm highlight does:
// 1.4x lightness and 1.2x saturation.
func flashColor(accent string) string {
	c, err := colorful.Hex(accent)
	if err != nil {
		return accent
	}

	h, s, l := c.Hsl()

	return colorful.Hsl(h, min(s*1.2, 1), min(l*1.4, 1)).Clamped().Hex()
}

func (p palette) text() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(p.fg)
}

func (p palette) subtle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(p.muted)
}

func (p palette) panelStyle(flashing bool) lipgloss.Style {
	border := p.accent
	if flashing {
		border = p.flash
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Background(p.panel).
		Padding(1, 2)
}

func (p palette) digits(flashing bool) lipgloss.Style {
	if flashing {
		return lipgloss.NewStyle().Foreground(p.flash).Bold(true)
	}

	return lipgloss.NewStyle().Foreground(p.fg)
}

func (p palette) accented() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(p.accent).Bold(true)
}

func (p palette) errorText() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(p.err)
}
