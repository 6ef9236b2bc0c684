package tui

import "github.com/charmbracelet/lipgloss"

// Theme is the preview's colour scheme.
type Theme struct {
	Accent lipgloss.Color
	Text   lipgloss.Color
	Muted  lipgloss.Color
	Border lipgloss.Color
	Alert  lipgloss.Color
}

// DefaultTheme matches the site's stylesheet.
var DefaultTheme = Theme{
	Accent: lipgloss.Color("#8a1c2b"),
	Text:   lipgloss.Color("#1d2330"),
	Muted:  lipgloss.Color("#5b6475"),
	Border: lipgloss.Color("#e2ded6"),
	Alert:  lipgloss.Color("#b3261e"),
}

type styles struct {
	title   lipgloss.Style
	tagline lipgloss.Style
	section lipgloss.Style
	day     lipgloss.Style
	muted   lipgloss.Style
	banner  lipgloss.Style
	frame   lipgloss.Style
}

func newStyles(t Theme) styles {
	return styles{
		title:   lipgloss.NewStyle().Bold(true).Foreground(t.Accent),
		tagline: lipgloss.NewStyle().Italic(true).Foreground(t.Muted),
		section: lipgloss.NewStyle().Bold(true).Underline(true).MarginTop(1),
		day:     lipgloss.NewStyle().Bold(true).Foreground(t.Text),
		muted:   lipgloss.NewStyle().Foreground(t.Muted),
		banner:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffffff")).Background(t.Alert).Padding(0, 1),
		frame:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(t.Border).Padding(0, 1),
	}
}
