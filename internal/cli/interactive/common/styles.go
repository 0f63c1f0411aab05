package common

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme holds the colours of the interactive screens
type Theme struct {
	Accent lipgloss.TerminalColor
	Muted  lipgloss.TerminalColor
	Error  lipgloss.TerminalColor
	Border lipgloss.TerminalColor
}

var (
	accentColor = lipgloss.AdaptiveColor{Light: "#0B57D0", Dark: "#8AB4F8"}
	mutedColor  = lipgloss.AdaptiveColor{Light: "#5F6368", Dark: "#9AA0A6"}
	errorColor  = lipgloss.AdaptiveColor{Light: "#B3261E", Dark: "#F2B8B5"}
	borderColor = lipgloss.AdaptiveColor{Light: "#1E1E1E", Dark: "#E0E0E0"}
)

// ThemeFor returns the theme for a colour scheme. "light" and "dark" pin the
// palette; anything else follows the terminal background.
func ThemeFor(scheme string) Theme {
	pick := func(c lipgloss.AdaptiveColor) lipgloss.TerminalColor {
		switch scheme {
		case "light":
			return lipgloss.Color(c.Light)
		case "dark":
			return lipgloss.Color(c.Dark)
		default:
			return c
		}
	}
	return Theme{
		Accent: pick(accentColor),
		Muted:  pick(mutedColor),
		Error:  pick(errorColor),
		Border: pick(borderColor),
	}
}

// DefaultTheme follows the terminal background
func DefaultTheme() Theme {
	return ThemeFor("auto")
}

func (t Theme) HighlightStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
}

func (t Theme) MutedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Muted)
}

func (t Theme) ErrorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Error)
}

// LinkStyle renders clickable text
func (t Theme) LinkStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Accent).Underline(true)
}

// CardStyle frames a block of the screen
func (t Theme) CardStyle(focused bool) lipgloss.Style {
	border := t.Muted
	if focused {
		border = t.Border
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1)
}
