package registry

import (
	"strings"

	"github.com/aiaiai-hi/Report-App/domain/dataset"
)

// Metrics holds the two headline dashboard rates, in percent.
type Metrics struct {
	FillRate    float64
	PublishRate float64
}

// skipCell reports whether a cell is excluded from the completion scan for
// this row. Two columns are conditionally irrelevant: the parent
// organizational unit when the row does not participate in report
// generation, and the manual-frequency column unless the report frequency is
// actually manual.
func skipCell(row dataset.Row, column string) bool {
	switch column {
	case ColParentUnit:
		return strings.EqualFold(strings.TrimSpace(row.Value(ColParticipation)), "нет")
	case ColManualFrequency:
		return !strings.EqualFold(strings.TrimSpace(row.Value(ColFrequency)), "ручной ввод")
	}
	return false
}

// CompletionMetrics computes the field-fill rate and publication rate over
// the registry, optionally restricted to one owner ("" or the FilterAll
// sentinel bypass the filter). Empty input yields zero rates.
func CompletionMetrics(ds *dataset.Dataset, ownerFilter string) Metrics {
	if ds == nil || ds.Len() == 0 {
		return Metrics{}
	}

	if ownerFilter != "" && ownerFilter != FilterAll {
		ds = ds.FilterEqual(ColOwner, ownerFilter)
	}
	if ds.Len() == 0 {
		return Metrics{}
	}

	totalCells := 0
	filledCells := 0
	publishedCount := 0
	for _, row := range ds.Rows {
		for _, column := range ds.Headers {
			if skipCell(row, column) {
				continue
			}
			totalCells++
			if row.IsFilled(column) {
				filledCells++
			}
		}
		if row.Value(ColStage) == StagePublished {
			publishedCount++
		}
	}

	m := Metrics{
		PublishRate: float64(publishedCount) / float64(ds.Len()) * 100,
	}
	if totalCells > 0 {
		m.FillRate = float64(filledCells) / float64(totalCells) * 100
	}
	return m
}
