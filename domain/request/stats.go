package request

import (
	"github.com/montanaflynn/stats"
)

// AgingStats aggregates the business-day counts of a summary set.
type AgingStats struct {
	Count      int
	MeanDays   float64
	MedianDays float64
	MaxDays    int
}

// ComputeStats returns aggregate aging figures for the analyzer page and the
// API. An empty input yields zeros.
func ComputeStats(summaries []Summary) AgingStats {
	if len(summaries) == 0 {
		return AgingStats{}
	}

	days := make(stats.Float64Data, len(summaries))
	for i, s := range summaries {
		days[i] = float64(s.BusinessDays)
	}

	mean, _ := stats.Mean(days)
	median, _ := stats.Median(days)
	max, _ := stats.Max(days)

	return AgingStats{
		Count:      len(summaries),
		MeanDays:   mean,
		MedianDays: median,
		MaxDays:    int(max),
	}
}
