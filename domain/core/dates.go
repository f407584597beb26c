// Package core holds small shared primitives: date parsing and formatting
// used by every analyzer that touches uploaded timestamps.
package core

import (
	"strings"
	"time"
)

// DisplayDateLayout is the dd.mm.yyyy rendering used across tables, exports
// and status texts.
const DisplayDateLayout = "02.01.2006"

// parseLayouts are tried in order: the registry's native dd.mm.yyyy first,
// ISO second, then progressively lenient datetime variants.
var parseLayouts = []string{
	"02.01.2006",
	"2006-01-02",
	"02.01.2006 15:04:05",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"02/01/2006",
	"02-01-2006",
	"02.01.06",
}

// ParseDate parses a raw cell value into a time, reporting success. Blank and
// malformed values simply fail - callers treat them as missing.
func ParseDate(raw string) (time.Time, bool) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return time.Time{}, false
	}
	for _, layout := range parseLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatDate renders a time as dd.mm.yyyy.
func FormatDate(t time.Time) string {
	return t.Format(DisplayDateLayout)
}

// Truncate reduces a time to its calendar date, rebuilt at UTC midnight.
// Parsed cells carry UTC while time.Now() carries the server zone; pinning
// one location keeps day arithmetic between them exact.
func Truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the whole calendar days from one date to another,
// negative when to precedes from. Both endpoints are date-truncated so the
// result does not depend on the time of day the computation runs at.
func DaysBetween(from, to time.Time) int {
	return int(Truncate(to).Sub(Truncate(from)).Hours() / 24)
}
