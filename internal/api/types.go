package api

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/k3a/html2text"

	"github.com/gravitrone/everyday/cli/internal/linking"
)

// --- Feed ---

// Feed is the "On this day" payload. Only the lists matching the requested
// kind are populated.
type Feed struct {
	Selected []Event `json:"selected,omitempty"`
	Events   []Event `json:"events,omitempty"`
	Births   []Event `json:"births,omitempty"`
	Deaths   []Event `json:"deaths,omitempty"`
	Holidays []Event `json:"holidays,omitempty"`
}

// Items returns the list for kind. KindAll concatenates every list in feed
// order.
func (f *Feed) Items(kind Kind) []Event {
	if f == nil {
		return nil
	}
	switch kind {
	case KindSelected:
		return f.Selected
	case KindEvents:
		return f.Events
	case KindBirths:
		return f.Births
	case KindDeaths:
		return f.Deaths
	case KindHolidays:
		return f.Holidays
	case KindAll:
		out := make([]Event, 0, len(f.Selected)+len(f.Events)+len(f.Births)+len(f.Deaths)+len(f.Holidays))
		out = append(out, f.Selected...)
		out = append(out, f.Events...)
		out = append(out, f.Births...)
		out = append(out, f.Deaths...)
		return append(out, f.Holidays...)
	}
	return nil
}

// --- Event ---

// Event is one dated entry. Holidays carry no year.
type Event struct {
	Year  *int   `json:"year,omitempty"`
	Text  string `json:"text"`
	Pages []Page `json:"pages"`
}

// Entities converts the event's pages into link targets, in page order.
func (e Event) Entities() []linking.Entity {
	out := make([]linking.Entity, 0, len(e.Pages))
	for _, p := range e.Pages {
		out = append(out, p.Entity())
	}
	return out
}

// --- Page ---

// Page is a summary of a referenced encyclopedia article.
type Page struct {
	Title        string      `json:"title"`
	DisplayTitle string      `json:"displaytitle,omitempty"`
	PageID       int64       `json:"pageid,omitempty"`
	Description  string      `json:"description,omitempty"`
	Extract      string      `json:"extract,omitempty"`
	Lang         string      `json:"lang,omitempty"`
	Thumbnail    *Image      `json:"thumbnail,omitempty"`
	ContentURLs  ContentURLs `json:"content_urls"`
}

// Image is a thumbnail reference.
type Image struct {
	Source string `json:"source"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

// ContentURLs holds the desktop and mobile article links.
type ContentURLs struct {
	Desktop PageURLs `json:"desktop"`
	Mobile  PageURLs `json:"mobile"`
}

// PageURLs are the links for one platform.
type PageURLs struct {
	Page string `json:"page"`
}

// URL returns the article link, preferring the desktop page.
func (p Page) URL() string {
	switch {
	case p.ContentURLs.Desktop.Page != "":
		return p.ContentURLs.Desktop.Page
	case p.ContentURLs.Mobile.Page != "":
		return p.ContentURLs.Mobile.Page
	case p.Title == "":
		return ""
	}
	lang := p.Lang
	if lang == "" {
		lang = DefaultLanguage
	}
	return fmt.Sprintf("https://%s.wikipedia.org/wiki/%s", lang, url.PathEscape(p.Title))
}

// Name returns the display title as plain text. The feed marks up display
// titles with HTML, e.g. "<i>Apollo 11</i>".
func (p Page) Name() string {
	if p.DisplayTitle == "" {
		return strings.ReplaceAll(p.Title, "_", " ")
	}
	return strings.TrimSpace(html2text.HTML2Text(p.DisplayTitle))
}

// Entity converts the page into a link target.
func (p Page) Entity() linking.Entity {
	e := linking.Entity{Title: p.Title, DisplayURL: p.URL(), Name: p.Name()}
	if p.Thumbnail != nil {
		e.ThumbnailURL = p.Thumbnail.Source
	}
	return e
}
