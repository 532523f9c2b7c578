package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Year bounds for sanity-checking parsed dates. A strategy result
// outside this range is rejected and the next strategy runs.
const (
	minYear = 2000
	maxYear = 2030
)

var (
	slashDateRe = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)
	isoDateRe   = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})$`)
	dashDateRe  = regexp.MustCompile(`^(\d{1,2})-(\d{1,2})-(\d{4})$`)
)

var monthAbbrevs = []string{
	"jan", "feb", "mar", "apr", "may", "jun",
	"jul", "aug", "sep", "oct", "nov", "dec",
}

var textualLayouts = []string{
	"Jan 2, 2006", "Jan 2 2006", "2 Jan 2006", "2 Jan, 2006",
	"January 2, 2006", "January 2 2006", "2 January 2006",
	"Jan 2, 2006 15:04", "2 Jan 2006 15:04",
}

var nativeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006/01/02",
}

// ParseDate parses a raw date string in one of several ambiguous
// formats. Strategies run in a fixed order: native ISO parsing, then
// MM/DD/YYYY, then DD/MM/YYYY (only when the day exceeds 12), then
// YYYY-MM-DD, then DD-MM-YYYY, then free text with an English month
// name. The first strategy producing a valid date in [2000, 2030]
// wins. If nothing succeeds the current time is returned and ok is
// false — a deliberate never-fail policy, since aggregation needs a
// date on every record. Callers count the fallbacks.
func ParseDate(raw string, now time.Time) (t time.Time, ok bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return now.UTC(), false
	}

	for _, strategy := range []func(string) (time.Time, bool){
		parseNative,
		parseMonthFirstSlash,
		parseDayFirstSlash,
		parseISODate,
		parseDayFirstDash,
		parseTextualMonth,
	} {
		if t, matched := strategy(s); matched && yearInBounds(t) {
			return t, true
		}
	}

	return now.UTC(), false
}

func yearInBounds(t time.Time) bool {
	y := t.Year()
	return y >= minYear && y <= maxYear
}

func parseNative(s string) (time.Time, bool) {
	for _, layout := range nativeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// parseMonthFirstSlash handles MM/DD/YYYY. A slash date with both
// fields <= 12 is inherently ambiguous and defaults to this
// interpretation.
func parseMonthFirstSlash(s string) (time.Time, bool) {
	m := slashDateRe.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, false
	}
	month, _ := strconv.Atoi(m[1])
	day, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])
	return makeDate(year, month, day)
}

// parseDayFirstSlash handles DD/MM/YYYY, accepted only when the first
// field cannot be a month.
func parseDayFirstSlash(s string) (time.Time, bool) {
	m := slashDateRe.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, false
	}
	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])
	if day <= 12 || month > 12 {
		return time.Time{}, false
	}
	return makeDate(year, month, day)
}

func parseISODate(s string) (time.Time, bool) {
	m := isoDateRe.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, false
	}
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])
	return makeDate(year, month, day)
}

func parseDayFirstDash(s string) (time.Time, bool) {
	m := dashDateRe.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, false
	}
	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])
	return makeDate(year, month, day)
}

func parseTextualMonth(s string) (time.Time, bool) {
	lower := strings.ToLower(s)
	hasMonth := false
	for _, abbr := range monthAbbrevs {
		if strings.Contains(lower, abbr) {
			hasMonth = true
			break
		}
	}
	if !hasMonth {
		return time.Time{}, false
	}
	for _, layout := range textualLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// makeDate builds a UTC midnight date and rejects values that
// time.Date would silently normalize (e.g. 31/02).
func makeDate(year, month, day int) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}
