package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/pickr/internal/config"
)

// Theme holds the styles used to draw the picker. It is passed to every draw
// call.
type Theme struct {
	Border         lipgloss.Style
	HeaderActive   lipgloss.Style
	HeaderInactive lipgloss.Style
	Item           lipgloss.Style
	Highlight      lipgloss.Style
	Marker         lipgloss.Style
	ScrollBar      lipgloss.Style
}

// DefaultTheme returns the built-in colors.
func DefaultTheme() Theme {
	return ThemeFromConfig(config.ThemeConfig{
		Border:              "8",
		HeaderActive:        "15",
		HeaderInactive:      "8",
		HighlightForeground: "15",
		HighlightBackground: "1",
		Marker:              "3",
		ScrollBar:           "8",
	})
}

// ThemeFromConfig builds a theme from color strings. Empty strings leave the
// terminal default.
func ThemeFromConfig(cfg config.ThemeConfig) Theme {
	return Theme{
		Border:         foreground(cfg.Border),
		HeaderActive:   foreground(cfg.HeaderActive).Bold(true),
		HeaderInactive: foreground(cfg.HeaderInactive),
		Item:           lipgloss.NewStyle(),
		Highlight:      foreground(cfg.HighlightForeground).Background(termColor(cfg.HighlightBackground)),
		Marker:         foreground(cfg.Marker).Bold(true),
		ScrollBar:      foreground(cfg.ScrollBar),
	}
}

// Header returns the header style for a pane with or without focus.
func (t Theme) Header(active bool) lipgloss.Style {
	if active {
		return t.HeaderActive
	}
	return t.HeaderInactive
}

func foreground(c string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(termColor(c))
}

func termColor(c string) lipgloss.TerminalColor {
	if c == "" {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(c)
}
