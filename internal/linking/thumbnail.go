package linking

import "regexp"

var warRE = regexp.MustCompile(`(?i)\bwars?\b:?`)

// PickThumbnail chooses the one illustrative image shown with an item.
//
// When text mentions a war the last entity with a thumbnail is picked,
// otherwise the first. pages is not modified.
func PickThumbnail(text string, pages []Entity) (Entity, bool) {
	if warRE.MatchString(text) {
		for i := len(pages) - 1; i >= 0; i-- {
			if pages[i].HasThumbnail() {
				return pages[i], true
			}
		}
		return Entity{}, false
	}
	for _, p := range pages {
		if p.HasThumbnail() {
			return p, true
		}
	}
	return Entity{}, false
}
