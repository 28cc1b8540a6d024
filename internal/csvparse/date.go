package csvparse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/pennypilot/pennypilot/internal/bankformat"
)

var (
	isoDatePattern     = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)
	numericDatePattern = regexp.MustCompile(`^(\d{1,4})[/.\-](\d{1,2})[/.\-](\d{1,4})$`)
)

// Month-name layouts tried for "DD MMM YYYY" style dates.
var monthNameLayouts = []string{
	"2 Jan 2006",
	"02 Jan 2006",
	"2 January 2006",
	"2 Jan 06",
	"02 Jan 06",
}

// Last-resort layouts for anything the structured parsers missed.
var fallbackLayouts = []string{
	"2006/01/02",
	"Jan 2, 2006",
	"January 2, 2006",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"20060102",
}

// parseDate converts a raw date cell into a timezone-naive calendar instant.
// The profile's date style is tried first; the full cascade runs after it so
// a mislabeled profile still parses.
func parseDate(raw string, style bankformat.DateStyle) (time.Time, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}

	switch style {
	case bankformat.DateISO:
		if t, err := parseISODate(s); err == nil {
			return t, nil
		}
	case bankformat.DateDayFirst:
		if t, err := parseNumericDate(s); err == nil {
			return t, nil
		}
	case bankformat.DateDayMonthName:
		if t, err := parseMonthNameDate(s); err == nil {
			return t, nil
		}
	}

	if t, err := parseISODate(s); err == nil {
		return t, nil
	}
	if t, err := parseNumericDate(s); err == nil {
		return t, nil
	}
	if t, err := parseMonthNameDate(s); err == nil {
		return t, nil
	}
	for _, layout := range fallbackLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return dateOnly(t), nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized date %q", raw)
}

func parseISODate(s string) (time.Time, error) {
	if !isoDatePattern.MatchString(s) {
		return time.Time{}, fmt.Errorf("not ISO")
	}
	t, err := time.Parse("2006-01-02", s[:10])
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

// parseNumericDate handles slash/dot/dash separated numeric dates. Ambiguous
// two-digit-leading dates default to day-first, the UK convention; a first
// token over 12 confirms day-first, a second token over 12 forces
// month-first. Two-digit years are windowed to the current century.
func parseNumericDate(s string) (time.Time, error) {
	m := numericDatePattern.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, fmt.Errorf("not a numeric date")
	}

	a, _ := strconv.Atoi(m[1])
	b, _ := strconv.Atoi(m[2])
	c, _ := strconv.Atoi(m[3])

	var day, month, year int
	switch {
	case len(m[1]) == 4:
		// YYYY/MM/DD
		year, month, day = a, b, c
	case b > 12 && a <= 12:
		// Second token cannot be a month, so this is MM/DD/YYYY.
		month, day, year = a, b, c
	default:
		// Day-first, including the ambiguous case.
		day, month, year = a, b, c
	}

	if year < 100 {
		year += 2000
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, fmt.Errorf("invalid date components in %q", s)
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// Reject overflows like 31/02 that time.Date silently normalizes.
	if t.Day() != day || t.Month() != time.Month(month) {
		return time.Time{}, fmt.Errorf("invalid calendar date %q", s)
	}
	return t, nil
}

func parseMonthNameDate(s string) (time.Time, error) {
	for _, layout := range monthNameLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return dateOnly(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("not a month-name date")
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
