// Package request implements the workflow-log analyzer: deduplication by
// business identifier, latest-stage selection and business-day aging.
package request

import (
	"strconv"
	"time"
)

// Workflow-export column names. The export's analyst column is capitalized
// while everything else is snake_case; that is how the tracking system
// writes it.
const (
	ColBusinessID = "business_id"
	ColCreatedAt  = "created_at"
	ColTsFrom     = "ts_from"
	ColTsTo       = "ts_to"
	ColStage      = "current_stage"
	ColFormType   = "form_type_report"
	ColReportCode = "report_code"
	ColReportName = "report_name"
	ColAnalyst    = "Analyst"
	ColOwner      = "request_owner"
	ColOwnerSSP   = "request_owner_ssp"
)

// Event is one parsed workflow-log row. Zero timestamps with the
// corresponding ok flag unset mean the cell was missing or unparseable.
type Event struct {
	BusinessID  int
	CreatedAt   time.Time
	CreatedOK   bool
	TsFrom      time.Time
	TsFromOK    bool
	Stage       string
	FormType    string
	ReportCode  string
	ReportName  string
	Analyst     string
	Owner       string
	OwnerSSP    string
	sourceIndex int // original row order, tie-breaker for aging fallback
}

// Summary is the derived per-business-id record: descriptive fields off the
// newest registration event plus the business-day count from the latest
// stage-transition timestamp to now.
type Summary struct {
	BusinessID   int
	CreatedAt    string // dd.mm.yyyy, "" when unknown
	BusinessDays int
	FormType     string
	ReportCode   string
	ReportName   string
	CurrentStage string
	TsFrom       string // dd.mm.yyyy, "" when unknown
	Analyst      string
	Owner        string
	OwnerSSP     string
}

// SummaryHeaders is the column order summaries are persisted and exported in.
var SummaryHeaders = []string{
	"business_id",
	"created_at",
	"рабочих_дней_в_работе",
	"form_type_report",
	"report_code",
	"report_name",
	"current_stage",
	"ts_from",
	"analyst",
	"request_owner",
	"request_owner_ssp",
}

// Values returns the summary's cells in SummaryHeaders order.
func (s Summary) Values() []string {
	return []string{
		strconv.Itoa(s.BusinessID),
		s.CreatedAt,
		strconv.Itoa(s.BusinessDays),
		s.FormType,
		s.ReportCode,
		s.ReportName,
		s.CurrentStage,
		s.TsFrom,
		s.Analyst,
		s.Owner,
		s.OwnerSSP,
	}
}
