package components

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

func boxWidth(width int) int {
	// Use ~70% of terminal width, capped at 80
	if width <= 0 {
		return 0
	}
	w := width * 70 / 100
	if w < 40 {
		w = 40
	}
	if w > 80 {
		w = 80
	}
	return w
}

func safeBoxWidth(width int) int {
	if width <= 0 {
		return boxWidth(width)
	}
	w := boxWidth(width)
	if w > width {
		return width
	}
	return w
}

func cardStyle(border lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1)
}

// Card renders content inside a rounded box with the given border color.
func Card(content string, width int, border lipgloss.Color) string {
	style := cardStyle(border)
	// lipgloss widths exclude the border.
	if w := safeBoxWidth(width); w > 2 {
		style = style.Width(w - 2)
	}
	return style.Render(content)
}

// CardContentWidth returns the inner content width excluding border and padding.
func CardContentWidth(width int) int {
	w := safeBoxWidth(width)
	if w <= 0 {
		return 0
	}
	// Border adds 2, padding adds 2 (left+right).
	inner := w - 4
	if inner < 0 {
		return 0
	}
	return inner
}

// ErrorBox renders a bordered box for errors.
func ErrorBox(title, message string, width int, p Palette) string {
	header := ""
	if title != "" {
		header = lipgloss.NewStyle().Foreground(p.Error).Bold(true).Render(title) + "\n\n"
	}
	body := lipgloss.NewStyle().Foreground(p.Text).Render(SanitizeText(message))
	return Card(header+body, width, p.Error)
}

// ClampTextWidth truncates text to the given visual width.
func ClampTextWidth(text string, width int) string {
	if width <= 0 {
		return text
	}
	cleaned := SanitizeOneLine(text)
	if lipgloss.Width(cleaned) <= width {
		return cleaned
	}
	if width == 1 {
		return "…"
	}
	return truncateRunes(cleaned, width-1) + "…"
}

func truncateRunes(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	var b strings.Builder
	b.Grow(max)
	n := 0
	for _, r := range s {
		if n >= max {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String()
}

// Indent adds left padding to every line of a multi-line string.
func Indent(s string, spaces int) string {
	pad := strings.Repeat(" ", spaces)
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = pad + l
	}
	return strings.Join(lines, "\n")
}

// CenterLine centers a single line within the terminal width.
func CenterLine(s string, width int) string {
	w := lipgloss.Width(s)
	if width <= 0 || w >= width {
		return s
	}
	return strings.Repeat(" ", (width-w)/2) + s
}
