package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/gravitrone/everyday/cli/internal/onthisday"
)

const appTitle = "Everyday History"

// RenderHeader returns the title, the day heading and an underline, centered
// in width.
func RenderHeader(theme Theme, day time.Time, width int) string {
	title := theme.Title.Render(appTitle)
	heading := theme.Heading.Render(onthisday.Heading(day))

	blockWidth := lipgloss.Width(heading)
	if w := lipgloss.Width(title); w > blockWidth {
		blockWidth = w
	}
	if width > blockWidth {
		blockWidth = width
	}

	center := lipgloss.NewStyle().Width(blockWidth).Align(lipgloss.Center)
	underline := theme.Divider.Render(strings.Repeat("─", blockWidth))

	return center.Render(title) + "\n" + center.Render(heading) + "\n" + underline
}
