package request

import (
	"testing"
	"time"

	"github.com/aiaiai-hi/Report-App/domain/dataset"
	apperrors "github.com/aiaiai-hi/Report-App/internal/errors"
)

var requestHeaders = []string{
	ColBusinessID, ColCreatedAt, ColTsFrom, ColStage,
	ColFormType, ColReportCode, ColReportName, ColAnalyst, ColOwner, ColOwnerSSP,
}

func requestDataset(rows []dataset.Row) *dataset.Dataset {
	return &dataset.Dataset{Headers: requestHeaders, Rows: rows}
}

func TestProcessRequiresBusinessIDColumn(t *testing.T) {
	ds := &dataset.Dataset{Headers: []string{"created_at"}}
	_, err := Process(ds, time.Now())
	if err == nil {
		t.Fatal("expected error for missing business_id column")
	}
	if !apperrors.HasCode(err, apperrors.CodeLoadError) {
		t.Errorf("error code = %q, want %q", apperrors.GetCode(err), apperrors.CodeLoadError)
	}
}

func TestProcessDeduplicatesByNewestRegistration(t *testing.T) {
	now := time.Date(2024, 6, 19, 12, 0, 0, 0, time.UTC) // Wednesday
	ds := requestDataset([]dataset.Row{
		{
			ColBusinessID: "7", ColCreatedAt: "01.03.2024", ColTsFrom: "10.06.2024",
			ColStage: "Согласование", ColAnalyst: "Петров",
		},
		{
			ColBusinessID: "7", ColCreatedAt: "05.03.2024", ColTsFrom: "14.06.2024",
			ColStage: "Реализация", ColAnalyst: "Иванов",
		},
	})

	summaries, err := Process(ds, now)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if len(summaries) != 1 {
		t.Fatalf("got %d summaries, want 1", len(summaries))
	}

	s := summaries[0]
	if s.BusinessID != 7 {
		t.Errorf("business id = %d", s.BusinessID)
	}
	if s.CreatedAt != "05.03.2024" {
		t.Errorf("created_at = %q, want the newest registration", s.CreatedAt)
	}
	if s.CurrentStage != "Реализация" || s.Analyst != "Иванов" {
		t.Errorf("descriptive fields not taken from the newest event: %+v", s)
	}
	if s.TsFrom != "14.06.2024" {
		t.Errorf("ts_from = %q, want the maximum transition timestamp", s.TsFrom)
	}
	// 14.06.2024 is a Friday; Fri + Mon + Tue + Wed = 4 business days.
	if s.BusinessDays != 4 {
		t.Errorf("business days = %d, want 4", s.BusinessDays)
	}
}

func TestProcessAgingWithLocalClock(t *testing.T) {
	// Parsed timestamps are UTC; a server clock east of UTC must still
	// count both endpoints of the Friday-to-Monday window.
	now := time.Date(2024, 6, 17, 10, 0, 0, 0, time.FixedZone("MSK", 3*3600))
	ds := requestDataset([]dataset.Row{
		{ColBusinessID: "12", ColCreatedAt: "01.06.2024", ColTsFrom: "14.06.2024"},
	})

	summaries, err := Process(ds, now)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if len(summaries) != 1 {
		t.Fatalf("got %d summaries, want 1", len(summaries))
	}
	if got := summaries[0].BusinessDays; got != 2 {
		t.Errorf("business days = %d, want 2", got)
	}
}

func TestProcessOrdersByRegistrationDescending(t *testing.T) {
	ds := requestDataset([]dataset.Row{
		{ColBusinessID: "1", ColCreatedAt: "01.01.2024"},
		{ColBusinessID: "2", ColCreatedAt: "01.03.2024"},
		{ColBusinessID: "3", ColCreatedAt: "01.02.2024"},
	})
	summaries, err := Process(ds, time.Now())
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	got := []int{summaries[0].BusinessID, summaries[1].BusinessID, summaries[2].BusinessID}
	want := []int{2, 3, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestProcessUnparseableRegistrationSinksLast(t *testing.T) {
	ds := requestDataset([]dataset.Row{
		{ColBusinessID: "1", ColCreatedAt: "не дата"},
		{ColBusinessID: "2", ColCreatedAt: "01.03.2024"},
	})
	summaries, err := Process(ds, time.Now())
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if summaries[0].BusinessID != 2 || summaries[1].BusinessID != 1 {
		t.Errorf("order = %d, %d; unparseable dates must sink", summaries[0].BusinessID, summaries[1].BusinessID)
	}
	if summaries[1].CreatedAt != "" {
		t.Errorf("created_at = %q, want empty for unparseable date", summaries[1].CreatedAt)
	}
}

func TestProcessSkipsUnusableRows(t *testing.T) {
	ds := requestDataset([]dataset.Row{
		{},
		{ColBusinessID: "", ColCreatedAt: "01.03.2024"},
		{ColBusinessID: "abc", ColCreatedAt: "01.03.2024"},
		{ColBusinessID: "1024.0", ColCreatedAt: "01.03.2024"},
	})
	summaries, err := Process(ds, time.Now())
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if len(summaries) != 1 {
		t.Fatalf("got %d summaries, want 1", len(summaries))
	}
	if summaries[0].BusinessID != 1024 {
		t.Errorf("float-rendered id parsed as %d, want 1024", summaries[0].BusinessID)
	}
}

func TestProcessWithoutTransitionTimestamp(t *testing.T) {
	ds := requestDataset([]dataset.Row{
		{ColBusinessID: "5", ColCreatedAt: "01.03.2024", ColTsFrom: ""},
	})
	summaries, err := Process(ds, time.Now())
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if summaries[0].TsFrom != "" || summaries[0].BusinessDays != 0 {
		t.Errorf("summary without ts_from = %+v, want empty aging", summaries[0])
	}
}

func TestBusinessDays(t *testing.T) {
	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{"friday to monday", day(2024, 6, 14), day(2024, 6, 17), 2},
		{"same weekday", day(2024, 6, 19), day(2024, 6, 19), 1},
		{"same saturday", day(2024, 6, 15), day(2024, 6, 15), 0},
		{"weekend only", day(2024, 6, 15), day(2024, 6, 16), 0},
		{"full week", day(2024, 6, 10), day(2024, 6, 16), 5},
		{"end before start", day(2024, 6, 17), day(2024, 6, 14), 0},
		{"time of day ignored", day(2024, 6, 14).Add(23 * time.Hour), day(2024, 6, 17).Add(1 * time.Minute), 2},
		{
			"friday to monday in server zone",
			day(2024, 6, 14),
			time.Date(2024, 6, 17, 10, 0, 0, 0, time.FixedZone("MSK", 3*3600)),
			2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BusinessDays(tt.start, tt.end); got != tt.want {
				t.Errorf("BusinessDays = %d, want %d", got, tt.want)
			}
		})
	}
}
