package registry

import (
	"fmt"
	"time"

	"github.com/aiaiai-hi/Report-App/domain/core"
	"github.com/aiaiai-hi/Report-App/domain/dataset"
)

// reconfirmationPeriodDays is the actualization deadline: one year after the
// last publication.
const reconfirmationPeriodDays = 365

// reconfirmationWindowDays is how far ahead of the deadline a report starts
// showing up in the reminder list.
const reconfirmationWindowDays = 60

// ReconfirmationRow is one report approaching (or past) its actualization
// deadline.
type ReconfirmationRow struct {
	FormNumber      string
	Name            string
	Owner           string
	LastPublication string // dd.mm.yyyy
	DueDate         string // dd.mm.yyyy
	Status          string
	Overdue         bool // red indicator when true, green otherwise
}

// NeedingReconfirmation lists reports whose one-year actualization deadline
// falls within the warning window (or has passed). Rows whose publication
// date does not parse are silently skipped.
func NeedingReconfirmation(ds *dataset.Dataset, now time.Time) []ReconfirmationRow {
	if ds == nil {
		return nil
	}

	var out []ReconfirmationRow
	for _, row := range ds.Rows {
		pubDate, ok := core.ParseDate(row.Value(ColLastPublication))
		if !ok {
			continue
		}

		dueDate := pubDate.AddDate(0, 0, reconfirmationPeriodDays)
		daysLeft := core.DaysBetween(now, dueDate)
		if daysLeft > reconfirmationWindowDays {
			continue
		}

		r := ReconfirmationRow{
			FormNumber:      row.Value(ColFormNumber),
			Name:            row.Value(ColReportName),
			Owner:           row.Value(ColOwner),
			LastPublication: core.FormatDate(pubDate),
			DueDate:         core.FormatDate(dueDate),
		}
		if daysLeft < 0 {
			overdue := -daysLeft
			r.Status = fmt.Sprintf("Просрочено %d месяцев, %d дней", overdue/30, overdue%30)
			r.Overdue = true
		} else {
			r.Status = fmt.Sprintf("Осталось %d месяцев, %d дней", daysLeft/30, daysLeft%30)
		}
		out = append(out, r)
	}
	return out
}
