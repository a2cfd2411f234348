package api

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleFeed = `{
  "selected": [
    {
      "text": "Apollo 11 astronauts Neil Armstrong and Buzz Aldrin become the first people to walk on the Moon.",
      "year": 1969,
      "pages": [
        {
          "title": "Apollo_11",
          "pageid": 662,
          "content_urls": {"desktop": {"page": "https://en.wikipedia.org/wiki/Apollo_11"}}
        },
        {
          "title": "Neil_Armstrong",
          "pageid": 21247,
          "thumbnail": {"source": "https://upload.wikimedia.org/armstrong.jpg", "width": 320, "height": 400},
          "content_urls": {"desktop": {"page": "https://en.wikipedia.org/wiki/Neil_Armstrong"}}
        }
      ]
    }
  ],
  "holidays": [
    {"text": "Moon Day", "pages": []}
  ]
}`

func TestOnThisDayRequestsPath(t *testing.T) {
	_, client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/feed/v1/wikipedia/en/onthisday/selected/07/20", r.URL.Path)
		w.Write([]byte(sampleFeed))
	})

	feed, err := client.OnThisDay(context.Background(), FeedQuery{Month: 7, Day: 20})
	require.NoError(t, err)
	require.Len(t, feed.Selected, 1)

	ev := feed.Selected[0]
	require.NotNil(t, ev.Year)
	assert.Equal(t, 1969, *ev.Year)
	require.Len(t, ev.Pages, 2)
	assert.Nil(t, ev.Pages[0].Thumbnail)
	require.NotNil(t, ev.Pages[1].Thumbnail)
	assert.Equal(t, "https://upload.wikimedia.org/armstrong.jpg", ev.Pages[1].Thumbnail.Source)

	require.Len(t, feed.Holidays, 1)
	assert.Nil(t, feed.Holidays[0].Year)
}

func TestOnThisDayCustomLanguageAndKind(t *testing.T) {
	_, client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/feed/v1/wikipedia/de/onthisday/births/02/29", r.URL.Path)
		w.Write([]byte(`{"births":[]}`))
	})

	_, err := client.OnThisDay(context.Background(), FeedQuery{Language: "de", Kind: KindBirths, Month: 2, Day: 29})
	require.NoError(t, err)
}

func TestOnThisDayValidatesBeforeRequest(t *testing.T) {
	called := false
	_, client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	for _, q := range []FeedQuery{
		{Month: 0, Day: 1},
		{Month: 13, Day: 1},
		{Month: 4, Day: 31},
		{Month: 2, Day: 30},
		{Month: 1, Day: 0},
		{Month: 1, Day: 1, Kind: "weddings"},
		{Month: 1, Day: 1, Language: "../../etc"},
	} {
		_, err := client.OnThisDay(context.Background(), q)
		require.Error(t, err, "%+v", q)
		assert.True(t, errors.Is(err, ErrInvalidQuery), "%+v", q)
	}
	assert.False(t, called)
}

func TestOnThisDayMalformedJSON(t *testing.T) {
	_, client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not-json"))
	})

	_, err := client.OnThisDay(context.Background(), FeedQuery{Month: 1, Day: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode response")
}

func TestOnThisDayNotFound(t *testing.T) {
	_, client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"type":"not_found","title":"Not found.","detail":"Language not supported"}`))
	})

	_, err := client.OnThisDay(context.Background(), FeedQuery{Language: "xx", Month: 1, Day: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Language not supported")
}

func TestQueryFor(t *testing.T) {
	q := QueryFor(time.Date(2026, time.October, 19, 8, 0, 0, 0, time.UTC), "en", KindEvents)
	assert.Equal(t, FeedQuery{Language: "en", Kind: KindEvents, Month: 10, Day: 19}, q)
	assert.Equal(t, "/feed/v1/wikipedia/en/onthisday/events/10/19", q.Path())
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("")
	require.NoError(t, err)
	assert.Equal(t, KindSelected, k)

	k, err = ParseKind("deaths")
	require.NoError(t, err)
	assert.Equal(t, KindDeaths, k)

	_, err = ParseKind("Deaths")
	assert.ErrorIs(t, err, ErrInvalidQuery)
}

func TestFeedItems(t *testing.T) {
	year := 1900
	feed := &Feed{
		Selected: []Event{{Text: "s", Year: &year}},
		Births:   []Event{{Text: "b", Year: &year}},
		Holidays: []Event{{Text: "h"}},
	}
	assert.Len(t, feed.Items(KindSelected), 1)
	assert.Empty(t, feed.Items(KindEvents))

	all := feed.Items(KindAll)
	require.Len(t, all, 3)
	assert.Equal(t, "s", all[0].Text)
	assert.Equal(t, "b", all[1].Text)
	assert.Equal(t, "h", all[2].Text)

	var nilFeed *Feed
	assert.Nil(t, nilFeed.Items(KindAll))
	assert.Nil(t, feed.Items("bogus"))
}
