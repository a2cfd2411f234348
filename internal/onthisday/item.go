// Package onthisday turns feed events into annotated, renderable items.
package onthisday

import (
	"fmt"

	"github.com/gravitrone/everyday/cli/internal/api"
	"github.com/gravitrone/everyday/cli/internal/linking"
)

// Item is one event ready for display.
type Item struct {
	Year      *int              `json:"year,omitempty"`
	Text      string            `json:"text"`
	Segments  []linking.Segment `json:"segments"`
	Links     []linking.Entity  `json:"links,omitempty"`
	Thumbnail *linking.Entity   `json:"thumbnail,omitempty"`
}

// Build annotates every event. Events are independent of each other.
func Build(events []api.Event) []Item {
	items := make([]Item, 0, len(events))
	for _, ev := range events {
		items = append(items, BuildOne(ev))
	}
	return items
}

// BuildOne annotates a single event against its own pages.
func BuildOne(ev api.Event) Item {
	pages := ev.Entities()
	segs := linking.Annotate(ev.Text, linking.NewIndex(pages...))

	item := Item{
		Year:     ev.Year,
		Text:     ev.Text,
		Segments: segs,
		Links:    linking.Links(segs),
	}
	if thumb, ok := linking.PickThumbnail(ev.Text, pages); ok {
		item.Thumbnail = &thumb
	}
	return item
}

// YearLabel renders the year header, e.g. "1969:" or "44 BC:". Items
// without a year (holidays) get an empty label.
func (it Item) YearLabel() string {
	if it.Year == nil {
		return ""
	}
	if y := *it.Year; y < 0 {
		return fmt.Sprintf("%d BC:", -y)
	}
	return fmt.Sprintf("%d:", *it.Year)
}
