package components

import "github.com/charmbracelet/lipgloss"

// Palette is the set of colors components draw with.
type Palette struct {
	Text   lipgloss.Color
	Muted  lipgloss.Color
	Accent lipgloss.Color
	Border lipgloss.Color
	Focus  lipgloss.Color
	Error  lipgloss.Color
	KeyCap lipgloss.Color
	KeyFg  lipgloss.Color
}

// DarkPalette is used on dark terminal backgrounds.
var DarkPalette = Palette{
	Text:   lipgloss.Color("#ffffff"),
	Muted:  lipgloss.Color("#9ba0bf"),
	Accent: lipgloss.Color("#add8e6"), // lightblue
	Border: lipgloss.Color("#ffffff"),
	Focus:  lipgloss.Color("#7f57b4"),
	Error:  lipgloss.Color("#e06c75"),
	KeyCap: lipgloss.Color("#888ba4"),
	KeyFg:  lipgloss.Color("#121212"),
}

// LightPalette is used on light terminal backgrounds.
var LightPalette = Palette{
	Text:   lipgloss.Color("#000000"),
	Muted:  lipgloss.Color("#5c607a"),
	Accent: lipgloss.Color("#0000ff"), // blue
	Border: lipgloss.Color("#000000"),
	Focus:  lipgloss.Color("#7f57b4"),
	Error:  lipgloss.Color("#a3303f"),
	KeyCap: lipgloss.Color("#5c607a"),
	KeyFg:  lipgloss.Color("#ffffff"),
}
