package request

import (
	"time"

	"github.com/aiaiai-hi/Report-App/domain/core"
)

// BusinessDays counts the weekdays from start to end, both endpoints
// inclusive, weekends excluded. No public-holiday calendar: aging is a
// weekday count only. Returns 0 when end precedes start.
func BusinessDays(start, end time.Time) int {
	day := core.Truncate(start)
	last := core.Truncate(end)

	days := 0
	for !day.After(last) {
		wd := day.Weekday()
		if wd != time.Saturday && wd != time.Sunday {
			days++
		}
		day = day.AddDate(0, 0, 1)
	}
	return days
}
