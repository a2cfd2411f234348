package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/gravitrone/everyday/cli/internal/config"
	"github.com/gravitrone/everyday/cli/internal/ui/components"
)

// Theme is one resolved color scheme.
type Theme struct {
	Name    string
	Palette components.Palette

	Title        lipgloss.Style
	Heading      lipgloss.Style
	Year         lipgloss.Style
	Text         lipgloss.Style
	Link         lipgloss.Style
	LinkSelected lipgloss.Style
	Muted        lipgloss.Style
	Error        lipgloss.Style
	Divider      lipgloss.Style
}

// ResolveThemeName maps "auto" (or empty) to light or dark using the
// terminal background.
func ResolveThemeName(name string) string {
	switch name {
	case config.ThemeLight, config.ThemeDark:
		return name
	}
	if lipgloss.HasDarkBackground() {
		return config.ThemeDark
	}
	return config.ThemeLight
}

// NewTheme builds the theme called name. Unknown names resolve like "auto".
func NewTheme(name string) Theme {
	name = ResolveThemeName(name)
	p := components.DarkPalette
	if name == config.ThemeLight {
		p = components.LightPalette
	}

	return Theme{
		Name:    name,
		Palette: p,

		Title: lipgloss.NewStyle().
			Foreground(p.Text).
			Bold(true),

		Heading: lipgloss.NewStyle().
			Foreground(p.Text).
			Bold(true),

		Year: lipgloss.NewStyle().
			Foreground(p.Text).
			Bold(true),

		Text: lipgloss.NewStyle().
			Foreground(p.Text),

		Link: lipgloss.NewStyle().
			Foreground(p.Accent),

		LinkSelected: lipgloss.NewStyle().
			Foreground(p.Accent).
			Underline(true).
			Bold(true),

		Muted: lipgloss.NewStyle().
			Foreground(p.Muted),

		Error: lipgloss.NewStyle().
			Foreground(p.Error).
			Bold(true),

		Divider: lipgloss.NewStyle().
			Foreground(p.Border),
	}
}

// Toggled returns the opposite light/dark theme.
func (t Theme) Toggled() Theme {
	if t.Name == config.ThemeDark {
		return NewTheme(config.ThemeLight)
	}
	return NewTheme(config.ThemeDark)
}
