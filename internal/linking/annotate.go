// Package linking annotates prose with links to known pages.
//
// Matching is greedy: at each token the longest phrase of up to MaxWindow
// tokens whose normalized form is a known title wins, and scanning resumes
// after it. There is no backtracking, so work is bounded by tokens*window.
package linking

import (
	"regexp"
	"strings"
)

// MaxWindow is the longest phrase, in tokens, that can become a link.
const MaxWindow = 4

// Everything outside letters, digits, underscore, apostrophe, hyphen and
// en-dash is dropped before lookup.
var stripRE = regexp.MustCompile(`[^a-zA-Z0-9_–'-]`)

// Normalize turns an underscore-joined phrase into a lookup key.
func Normalize(phrase string) string {
	return stripRE.ReplaceAllString(phrase, "")
}

// Annotate splits text on single spaces and links phrases found in idx.
func Annotate(text string, idx Index) []Segment {
	return AnnotateWindow(text, idx, MaxWindow)
}

// AnnotateWindow is Annotate with an explicit window size.
func AnnotateWindow(text string, idx Index, window int) []Segment {
	if text == "" {
		return nil
	}
	if window < 1 {
		window = 1
	}

	words := strings.Split(text, " ")
	segs := make([]Segment, 0, len(words))

	for i := 0; i < len(words); {
		seg, ok := longestMatch(words, i, idx, window)
		if !ok {
			seg = Segment{Kind: PlainText, Words: words[i : i+1 : i+1], Start: i, End: i + 1}
		}
		segs = append(segs, seg)
		i = seg.End
	}
	return segs
}

func longestMatch(words []string, i int, idx Index, window int) (Segment, bool) {
	if len(idx) == 0 {
		return Segment{}, false
	}
	for j := min(i+window, len(words)); j > i; j-- {
		key := Normalize(strings.Join(words[i:j], "_"))
		e, ok := idx.Lookup(key)
		if !ok {
			continue
		}
		return Segment{
			Kind:   EntityLink,
			Words:  words[i:j:j],
			Start:  i,
			End:    j,
			Entity: &e,
		}, true
	}
	return Segment{}, false
}
