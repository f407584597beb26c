package request

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/aiaiai-hi/Report-App/domain/core"
	"github.com/aiaiai-hi/Report-App/domain/dataset"
	apperrors "github.com/aiaiai-hi/Report-App/internal/errors"
)

// Process derives one Summary per distinct business id from a workflow-log
// dataset, ordered by each id's most recent registration timestamp
// descending. Rows without a business id are dropped; a file without the
// business_id column at all is a load failure.
func Process(ds *dataset.Dataset, now time.Time) ([]Summary, error) {
	if ds == nil || !ds.HasColumn(ColBusinessID) {
		return nil, apperrors.LoadError("в файле отсутствует столбец 'business_id'", nil)
	}

	events := parseEvents(ds)

	// Newest registration first; rows with unparseable created_at sink to
	// the end in their original order.
	sorted := make([]*Event, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.CreatedOK != b.CreatedOK {
			return a.CreatedOK
		}
		return a.CreatedAt.After(b.CreatedAt)
	})

	agingRef := agingReferences(events)

	var out []Summary
	seen := make(map[int]bool)
	for _, ev := range sorted {
		if seen[ev.BusinessID] {
			continue
		}
		seen[ev.BusinessID] = true

		ref := agingRef[ev.BusinessID]
		s := Summary{
			BusinessID:   ev.BusinessID,
			FormType:     ev.FormType,
			ReportCode:   ev.ReportCode,
			ReportName:   ev.ReportName,
			CurrentStage: ev.Stage,
			Analyst:      ev.Analyst,
			Owner:        ev.Owner,
			OwnerSSP:     ev.OwnerSSP,
		}
		if ev.CreatedOK {
			s.CreatedAt = core.FormatDate(ev.CreatedAt)
		}
		if ref != nil && ref.TsFromOK {
			s.TsFrom = core.FormatDate(ref.TsFrom)
			s.BusinessDays = BusinessDays(ref.TsFrom, now)
		}
		out = append(out, s)
	}
	return out, nil
}

// parseEvents converts usable rows into events. Fully empty rows and rows
// with a blank or unreadable business id are skipped, not errors.
func parseEvents(ds *dataset.Dataset) []*Event {
	var events []*Event
	for i, row := range ds.Rows {
		if row.IsEmpty() {
			continue
		}
		id, ok := parseBusinessID(row.Value(ColBusinessID))
		if !ok {
			continue
		}

		ev := &Event{
			BusinessID:  id,
			Stage:       row.Value(ColStage),
			FormType:    row.Value(ColFormType),
			ReportCode:  row.Value(ColReportCode),
			ReportName:  row.Value(ColReportName),
			Analyst:     row.Value(ColAnalyst),
			Owner:       row.Value(ColOwner),
			OwnerSSP:    row.Value(ColOwnerSSP),
			sourceIndex: i,
		}
		ev.CreatedAt, ev.CreatedOK = core.ParseDate(row.Value(ColCreatedAt))
		ev.TsFrom, ev.TsFromOK = core.ParseDate(row.Value(ColTsFrom))
		events = append(events, ev)
	}
	return events
}

// agingReferences picks, per business id, the event with the maximum ts_from
// (first occurrence wins on ties). Ids with no parseable ts_from at all fall
// back to their last row in original order.
func agingReferences(events []*Event) map[int]*Event {
	refs := make(map[int]*Event)
	for _, ev := range events {
		cur, exists := refs[ev.BusinessID]
		switch {
		case !exists:
			refs[ev.BusinessID] = ev
		case ev.TsFromOK && !cur.TsFromOK:
			refs[ev.BusinessID] = ev
		case ev.TsFromOK && cur.TsFromOK && ev.TsFrom.After(cur.TsFrom):
			refs[ev.BusinessID] = ev
		case !ev.TsFromOK && !cur.TsFromOK && ev.sourceIndex > cur.sourceIndex:
			refs[ev.BusinessID] = ev
		}
	}
	return refs
}

// parseBusinessID reads an integer id, tolerating the float rendering
// ("1024.0") spreadsheet tools produce for numeric cells.
func parseBusinessID(raw string) (int, bool) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return 0, false
	}
	if id, err := strconv.Atoi(v); err == nil {
		return id, true
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		return int(f), true
	}
	return 0, false
}
