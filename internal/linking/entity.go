package linking

import "strings"

// Entity is a page that prose can link to.
type Entity struct {
	// Title is the underscore-joined page key, e.g. "New_York_City".
	Title string `json:"title"`

	DisplayURL string `json:"display_url"`

	// ThumbnailURL is empty when the page has no illustrative image.
	ThumbnailURL string `json:"thumbnail_url,omitempty"`

	// Name is an optional human-readable title.
	Name string `json:"name,omitempty"`
}

// Label is Name, or Title with underscores shown as spaces.
func (e Entity) Label() string {
	if e.Name != "" {
		return e.Name
	}
	return strings.ReplaceAll(e.Title, "_", " ")
}

// HasThumbnail reports whether the entity carries an illustrative image.
func (e Entity) HasThumbnail() bool {
	return e.ThumbnailURL != ""
}

// Index is a lookup set of entities keyed by exact title.
type Index map[string]Entity

// NewIndex builds an index. When two entities share a title the first wins.
func NewIndex(entities ...Entity) Index {
	idx := make(Index, len(entities))
	for _, e := range entities {
		if e.Title == "" {
			continue
		}
		if _, ok := idx[e.Title]; ok {
			continue
		}
		idx[e.Title] = e
	}
	return idx
}

// Lookup returns the entity stored under title.
func (idx Index) Lookup(title string) (Entity, bool) {
	if title == "" {
		return Entity{}, false
	}
	e, ok := idx[title]
	return e, ok
}

// SegmentKind tells plain prose apart from linked mentions.
type SegmentKind int

const (
	PlainText SegmentKind = iota
	EntityLink
)

func (k SegmentKind) String() string {
	switch k {
	case PlainText:
		return "text"
	case EntityLink:
		return "link"
	}
	return "unknown"
}

// MarshalText lets segments encode their kind by name.
func (k SegmentKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Segment is one contiguous run of output tokens.
type Segment struct {
	Kind SegmentKind `json:"kind"`

	// Original tokens covered by the segment.
	Words []string `json:"words"`

	// Token range [Start, End) in the input.
	Start int `json:"start"`
	End   int `json:"end"`

	// Set for EntityLink segments only.
	Entity *Entity `json:"entity,omitempty"`
}

// Text returns the display text, with the original casing and punctuation.
func (s Segment) Text() string {
	return strings.Join(s.Words, " ")
}

// IsLink reports whether the segment is a linked mention.
func (s Segment) IsLink() bool {
	return s.Kind == EntityLink && s.Entity != nil
}

// Join reconstructs the annotated text.
func Join(segs []Segment) string {
	parts := make([]string, 0, len(segs))
	for _, s := range segs {
		parts = append(parts, s.Text())
	}
	return strings.Join(parts, " ")
}

// Links returns the linked entities in text order.
func Links(segs []Segment) []Entity {
	var out []Entity
	for _, s := range segs {
		if s.IsLink() {
			out = append(out, *s.Entity)
		}
	}
	return out
}
