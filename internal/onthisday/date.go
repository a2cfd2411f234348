package onthisday

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/en"
)

var (
	casual = newCasualParser()

	// numericDate looks like a month and day; such input never goes to the
	// casual parser.
	numericDate = regexp.MustCompile(`^\d{1,2}[-/]\d{1,2}$`)
)

func newCasualParser() *when.Parser {
	w := when.New(nil)
	w.Add(en.All...)
	return w
}

// DayWithSuffix returns the ordinal form of a day of the month.
func DayWithSuffix(day int) string {
	return humanize.Ordinal(day)
}

// Heading is the title line shown above the events, e.g.
// "On the 19th of October,".
func Heading(t time.Time) string {
	return fmt.Sprintf("On the %s of %s,", DayWithSuffix(t.Day()), t.Month())
}

// ParseDate parses "MM-DD" (or "MM/DD") into a time in the year of now.
// 29 February resolves to the latest leap year so the day is kept. Casual
// English such as "tomorrow" or "last friday" is resolved against now. Empty
// returns now.
func ParseDate(s string, now time.Time) (time.Time, error) {
	if s == "" {
		return now, nil
	}
	for _, layout := range []string{"01-02", "01/02", "1-2", "1/2"} {
		// Parse in a leap year so 29 February is accepted.
		t, err := time.ParseInLocation("2006 "+layout, "2024 "+s, now.Location())
		if err != nil {
			continue
		}
		year := now.Year()
		if t.Month() == time.February && t.Day() == 29 {
			for !isLeap(year) {
				year--
			}
		}
		return time.Date(year, t.Month(), t.Day(), 0, 0, 0, 0, now.Location()), nil
	}
	bad := fmt.Errorf("bad date %q: want MM-DD", s)
	if numericDate.MatchString(s) {
		return time.Time{}, bad
	}

	lower := strings.ToLower(strings.TrimSpace(s))
	r, err := casual.Parse(lower, now)
	if err != nil || r == nil || r.Index != 0 || r.Text != lower {
		return time.Time{}, bad
	}
	if r.Time.Equal(now) && !isToday(lower) {
		return time.Time{}, bad
	}
	return time.Date(r.Time.Year(), r.Time.Month(), r.Time.Day(), 0, 0, 0, 0, now.Location()), nil
}

func isToday(word string) bool {
	switch word {
	case "today", "now", "tonight", "this morning", "this evening":
		return true
	}
	return false
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
