package linking

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func page(title string) Entity {
	return Entity{Title: title, DisplayURL: "https://en.wikipedia.org/wiki/" + title}
}

func texts(segs []Segment) []string {
	out := make([]string, len(segs))
	for i, s := range segs {
		out[i] = s.Text()
	}
	return out
}

func TestAnnotatePrefersLongestMatch(t *testing.T) {
	idx := NewIndex(page("New"), page("New_York"))

	segs := Annotate("New York City", idx)
	require.Len(t, segs, 2)

	assert.Equal(t, EntityLink, segs[0].Kind)
	assert.Equal(t, "New York", segs[0].Text())
	require.NotNil(t, segs[0].Entity)
	assert.Equal(t, "New_York", segs[0].Entity.Title)

	assert.Equal(t, PlainText, segs[1].Kind)
	assert.Equal(t, []string{"City"}, segs[1].Words)
	assert.Nil(t, segs[1].Entity)
}

func TestAnnotateEmptyIndexEmitsOneSegmentPerToken(t *testing.T) {
	segs := Annotate("Hello world", NewIndex())
	require.Len(t, segs, 2)
	assert.Equal(t, []string{"Hello", "world"}, texts(segs))
	for _, s := range segs {
		assert.Equal(t, PlainText, s.Kind)
		assert.Len(t, s.Words, 1)
	}
}

func TestAnnotateNilIndex(t *testing.T) {
	segs := Annotate("Hello world", nil)
	assert.Equal(t, []string{"Hello", "world"}, texts(segs))
}

func TestAnnotateKeepsPunctuationInDisplayText(t *testing.T) {
	segs := Annotate("Paris, France.", NewIndex(page("Paris")))
	require.Len(t, segs, 2)
	assert.True(t, segs[0].IsLink())
	assert.Equal(t, "Paris,", segs[0].Text())
	assert.Equal(t, "Paris", segs[0].Entity.Title)
	assert.Equal(t, "France.", segs[1].Text())
	assert.False(t, segs[1].IsLink())
}

func TestAnnotateNeverLinksBeyondWindow(t *testing.T) {
	idx := NewIndex(page("Alpha_Beta_Gamma_Delta_Epsilon"))
	text := "Alpha Beta Gamma Delta Epsilon"

	segs := Annotate(text, idx)
	assert.Len(t, segs, 5)
	for _, s := range segs {
		assert.False(t, s.IsLink())
		assert.LessOrEqual(t, s.End-s.Start, MaxWindow)
	}

	wide := AnnotateWindow(text, idx, 5)
	require.Len(t, wide, 1)
	assert.True(t, wide[0].IsLink())
	assert.Equal(t, text, wide[0].Text())
}

func TestAnnotateWindowBelowOneActsAsOne(t *testing.T) {
	idx := NewIndex(page("New_York"), page("York"))
	segs := AnnotateWindow("New York", idx, 0)
	require.Len(t, segs, 2)
	assert.False(t, segs[0].IsLink())
	assert.True(t, segs[1].IsLink())
	assert.Equal(t, "York", segs[1].Entity.Title)
}

func TestAnnotateShorterMatchesInsideUnmatchedWindow(t *testing.T) {
	idx := NewIndex(page("Gamma_Delta"))
	segs := Annotate("Alpha Beta Gamma Delta Epsilon", idx)
	assert.Equal(t, []string{"Alpha", "Beta", "Gamma Delta", "Epsilon"}, texts(segs))
	assert.True(t, segs[2].IsLink())
	assert.Equal(t, 2, segs[2].Start)
	assert.Equal(t, 4, segs[2].End)
}

func TestAnnotateIsCaseSensitive(t *testing.T) {
	segs := Annotate("paris is lovely", NewIndex(page("Paris")))
	assert.Empty(t, Links(segs))
}

func TestAnnotateAllowedMarksSurviveNormalization(t *testing.T) {
	idx := NewIndex(
		page("People's_Republic_of_China"),
		page("Russo-Japanese_War"),
		page("1904–1905"),
	)
	segs := Annotate("During 1904–1905 the Russo-Japanese War; later the People's Republic of China.", idx)

	links := Links(segs)
	require.Len(t, links, 3)
	assert.Equal(t, "1904–1905", links[0].Title)
	assert.Equal(t, "Russo-Japanese_War", links[1].Title)
	assert.Equal(t, "People's_Republic_of_China", links[2].Title)

	var display []string
	for _, s := range segs {
		if s.IsLink() {
			display = append(display, s.Text())
		}
	}
	assert.Equal(t, []string{"1904–1905", "Russo-Japanese War;", "People's Republic of China."}, display)
}

func TestAnnotateAllPunctuationNeverMatches(t *testing.T) {
	// Built by hand so the empty key exists in the set.
	idx := Index{"": page("")}
	segs := Annotate("!!! ... ?", idx)
	assert.Len(t, segs, 3)
	assert.Empty(t, Links(segs))
}

func TestAnnotateTrailingTokenIsPlain(t *testing.T) {
	segs := Annotate("Moon landing by Apollo_11 crew", NewIndex(page("Moon")))
	require.NotEmpty(t, segs)
	last := segs[len(segs)-1]
	assert.Equal(t, PlainText, last.Kind)
	assert.Equal(t, "crew", last.Text())
}

func TestAnnotateEmptyText(t *testing.T) {
	assert.Empty(t, Annotate("", NewIndex(page("Paris"))))
	assert.Equal(t, "", Join(nil))
}

func TestAnnotateRepeatedSpacesRoundTrip(t *testing.T) {
	text := "Paris  is  far"
	segs := Annotate(text, NewIndex(page("Paris")))
	assert.Equal(t, text, Join(segs))
	assert.True(t, segs[0].IsLink())
}

func TestNewIndexFirstTitleWins(t *testing.T) {
	first := Entity{Title: "Rome", DisplayURL: "first"}
	second := Entity{Title: "Rome", DisplayURL: "second"}
	idx := NewIndex(first, second, Entity{})

	assert.Len(t, idx, 1)
	got, ok := idx.Lookup("Rome")
	require.True(t, ok)
	assert.Equal(t, "first", got.DisplayURL)
}

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"Paris,":            "Paris",
		"(New_York)":        "New_York",
		"Rock_'n'_roll":     "Rock_'n'_roll",
		"Jean-Paul_Sartre.": "Jean-Paul_Sartre",
		"1939–1945":         "1939–1945",
		"São_Paulo":         "So_Paulo",
		"“Quoted”":          "Quoted",
		"":                  "",
		"!?":                "",
	}
	for in, want := range cases {
		assert.Equal(t, want, Normalize(in), "Normalize(%q)", in)
	}
}

func TestSegmentKindString(t *testing.T) {
	assert.Equal(t, "text", PlainText.String())
	assert.Equal(t, "link", EntityLink.String())
	assert.Equal(t, "unknown", SegmentKind(9).String())
}

var vocabulary = []string{
	"the", "New", "York", "City", "Paris,", "France.", "war", "of",
	"Alpha", "Beta", "Gamma", "(Delta)", "", "–", "People's",
}

// Segments must cover every token exactly once, in order.
func TestAnnotateCoverageAndOrder(t *testing.T) {
	idx := NewIndex(
		page("New_York"), page("New"), page("York_City"), page("Paris"),
		page("Alpha_Beta_Gamma_Delta"), page("Gamma"), page("the_war"),
	)
	rng := rand.New(rand.NewSource(1))

	for n := 0; n < 500; n++ {
		words := make([]string, 1+rng.Intn(20))
		for i := range words {
			words[i] = vocabulary[rng.Intn(len(vocabulary))]
		}
		text := strings.Join(words, " ")
		if text == "" {
			continue
		}

		segs := Annotate(text, idx)
		require.Equal(t, text, Join(segs))

		next := 0
		for _, s := range segs {
			require.Equal(t, next, s.Start, "gap or overlap in %q", text)
			require.Greater(t, s.End, s.Start)
			require.LessOrEqual(t, s.End-s.Start, MaxWindow)
			require.Equal(t, words[s.Start:s.End], s.Words)
			if s.Kind == PlainText {
				require.Len(t, s.Words, 1)
			}
			next = s.End
		}
		require.Equal(t, len(words), next)
	}
}

func BenchmarkAnnotate(b *testing.B) {
	idx := NewIndex(page("New_York"), page("Paris"), page("Alpha_Beta_Gamma_Delta"))
	text := strings.Repeat("the New York City of Paris, France. ", 50)
	for i := 0; i < b.N; i++ {
		Annotate(text, idx)
	}
}

func TestAnnotateSegmentsDoNotShareWords(t *testing.T) {
	idx := NewIndex(page("big"))
	segs := Annotate("Hello big world", idx)
	require.Len(t, segs, 3)

	_ = append(segs[0].Words, "X")
	_ = append(segs[1].Words, "Y")
	assert.Equal(t, "big", segs[1].Text())
	assert.Equal(t, "world", segs[2].Text())
	assert.Equal(t, "Hello big world", Join(segs))
}
