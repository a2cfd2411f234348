package api

import (
	"context"
	"fmt"
	"regexp"
	"time"
)

// Kind selects which "On this day" list to fetch.
type Kind string

const (
	KindAll      Kind = "all"
	KindSelected Kind = "selected"
	KindEvents   Kind = "events"
	KindBirths   Kind = "births"
	KindDeaths   Kind = "deaths"
	KindHolidays Kind = "holidays"
)

// DefaultLanguage and DefaultKind match what the feed is usually read for.
const (
	DefaultLanguage      = "en"
	DefaultKind     Kind = KindSelected
)

// Kinds lists the accepted feed kinds.
var Kinds = []Kind{KindAll, KindSelected, KindEvents, KindBirths, KindDeaths, KindHolidays}

var languageRE = regexp.MustCompile(`^[a-z]{2,3}(-[a-z0-9]+)*$`)

// ParseKind validates a kind name. Empty selects DefaultKind.
func ParseKind(s string) (Kind, error) {
	if s == "" {
		return DefaultKind, nil
	}
	for _, k := range Kinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: unknown kind %q", ErrInvalidQuery, s)
}

// FeedQuery addresses one day of the feed.
type FeedQuery struct {
	Language string
	Kind     Kind
	Month    int
	Day      int
}

// QueryFor builds a query for the calendar day of t.
func QueryFor(t time.Time, language string, kind Kind) FeedQuery {
	return FeedQuery{
		Language: language,
		Kind:     kind,
		Month:    int(t.Month()),
		Day:      t.Day(),
	}
}

// daysIn allows 29 February, which the feed serves in every year.
var daysIn = [...]int{0, 31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// withDefaults fills empty fields and validates the result.
func (q FeedQuery) withDefaults() (FeedQuery, error) {
	if q.Language == "" {
		q.Language = DefaultLanguage
	}
	if q.Kind == "" {
		q.Kind = DefaultKind
	}
	if !languageRE.MatchString(q.Language) {
		return q, fmt.Errorf("%w: bad language %q", ErrInvalidQuery, q.Language)
	}
	if _, err := ParseKind(string(q.Kind)); err != nil {
		return q, err
	}
	if q.Month < 1 || q.Month > 12 {
		return q, fmt.Errorf("%w: month %d out of range", ErrInvalidQuery, q.Month)
	}
	if q.Day < 1 || q.Day > daysIn[q.Month] {
		return q, fmt.Errorf("%w: day %d out of range for month %d", ErrInvalidQuery, q.Day, q.Month)
	}
	return q, nil
}

// Path returns the API path for the query.
func (q FeedQuery) Path() string {
	return fmt.Sprintf("/feed/v1/wikipedia/%s/onthisday/%s/%02d/%02d", q.Language, q.Kind, q.Month, q.Day)
}

// OnThisDay fetches the feed for one day.
func (c *Client) OnThisDay(ctx context.Context, q FeedQuery) (*Feed, error) {
	q, err := q.withDefaults()
	if err != nil {
		return nil, err
	}
	data, err := c.get(ctx, q.Path())
	if err != nil {
		return nil, err
	}
	return decode[Feed](data)
}
