package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/gravitrone/everyday/cli/internal/linking"
	"github.com/gravitrone/everyday/cli/internal/onthisday"
	"github.com/gravitrone/everyday/cli/internal/ui/components"
)

// RenderOptions control how one item is drawn.
type RenderOptions struct {
	Width      int
	Hyperlinks bool
	Focused    bool
	// SelectedLink indexes into the item's links; -1 selects none.
	SelectedLink int
}

// RenderSegments draws annotated prose. Link segments use the link style
// and, with hyperlinks on, become OSC 8 terminal hyperlinks.
func RenderSegments(segs []linking.Segment, theme Theme, hyperlinks bool, selectedLink int) string {
	parts := make([]string, 0, len(segs))
	link := 0
	for _, s := range segs {
		text := components.SanitizeOneLine(s.Text())
		if !s.IsLink() {
			parts = append(parts, theme.Text.Render(text))
			continue
		}

		style := theme.Link
		if link == selectedLink {
			style = theme.LinkSelected
		}
		rendered := style.Render(text)
		if hyperlinks && s.Entity.DisplayURL != "" {
			rendered = termenv.Hyperlink(s.Entity.DisplayURL, rendered)
		}
		parts = append(parts, rendered)
		link++
	}
	return strings.Join(parts, theme.Text.Render(" "))
}

// RenderItem draws one event as a card: year, prose and thumbnail line.
func RenderItem(item onthisday.Item, theme Theme, opts RenderOptions) string {
	var b strings.Builder
	if label := item.YearLabel(); label != "" {
		b.WriteString(theme.Year.Render(label))
		b.WriteString("\n")
	}

	body := RenderSegments(item.Segments, theme, opts.Hyperlinks, opts.SelectedLink)
	if w := components.CardContentWidth(opts.Width); w > 0 {
		body = lipgloss.NewStyle().Width(w).Render(body)
	}
	b.WriteString(body)

	if item.Thumbnail != nil {
		label := "image: " + item.Thumbnail.Label()
		if opts.Hyperlinks {
			label = termenv.Hyperlink(item.Thumbnail.ThumbnailURL, label)
		}
		b.WriteString("\n")
		b.WriteString(theme.Muted.Render(label))
	}

	border := theme.Palette.Border
	if opts.Focused {
		border = theme.Palette.Focus
	}
	return components.Card(b.String(), opts.Width, border)
}

// RenderPlain draws an item without styling, for pipes and logs.
func RenderPlain(item onthisday.Item, links bool) string {
	var b strings.Builder
	if label := item.YearLabel(); label != "" {
		b.WriteString(label)
		b.WriteString(" ")
	}
	b.WriteString(components.SanitizeOneLine(item.Text))
	if links {
		for _, e := range item.Links {
			b.WriteString("\n  - ")
			b.WriteString(e.Label())
			b.WriteString(": ")
			b.WriteString(e.DisplayURL)
		}
	}
	if item.Thumbnail != nil {
		b.WriteString("\n  image: ")
		b.WriteString(item.Thumbnail.ThumbnailURL)
	}
	return b.String()
}
