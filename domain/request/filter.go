package request

import (
	"strconv"
	"strings"
)

// FilterAll is the sentinel that bypasses an exact-match filter.
const FilterAll = "Все"

// Filter restricts the analyzer result table. Zero values (and the FilterAll
// sentinel) mean "no restriction"; MaxDays <= 0 means unbounded.
type Filter struct {
	Search   string // substring match on report code or business id
	FormType string
	Stage    string
	Analyst  string
	Owner    string
	OwnerSSP string
	MinDays  int
	MaxDays  int
}

func matchesExact(filter, value string) bool {
	return filter == "" || filter == FilterAll || filter == value
}

// Apply returns the summaries passing every criterion, preserving order.
func (f Filter) Apply(summaries []Summary) []Summary {
	search := strings.ToLower(strings.TrimSpace(f.Search))

	var out []Summary
	for _, s := range summaries {
		if search != "" {
			code := strings.ToLower(s.ReportCode)
			id := strconv.Itoa(s.BusinessID)
			if !strings.Contains(code, search) && !strings.Contains(id, search) {
				continue
			}
		}
		if !matchesExact(f.FormType, s.FormType) ||
			!matchesExact(f.Stage, s.CurrentStage) ||
			!matchesExact(f.Analyst, s.Analyst) ||
			!matchesExact(f.Owner, s.Owner) ||
			!matchesExact(f.OwnerSSP, s.OwnerSSP) {
			continue
		}
		if s.BusinessDays < f.MinDays {
			continue
		}
		if f.MaxDays > 0 && s.BusinessDays > f.MaxDays {
			continue
		}
		out = append(out, s)
	}
	return out
}

// DistinctValues extracts the ordered distinct non-blank values of one
// summary field, for populating filter selects.
func DistinctValues(summaries []Summary, field func(Summary) string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, s := range summaries {
		v := strings.TrimSpace(field(s))
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
