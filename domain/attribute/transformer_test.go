package attribute

import (
	"testing"

	"github.com/aiaiai-hi/Report-App/domain/dataset"
)

// stubDetector pins every column to text so the transform logic is isolated
// from inference.
type stubDetector struct{}

func (stubDetector) DetectType(values []string) BaseType {
	return BaseTypeText
}

// headerDetector types a column by its first value, letting tests steer the
// detected type per column.
type headerDetector struct{}

func (headerDetector) DetectType(values []string) BaseType {
	if len(values) > 0 && values[0] == "число" {
		return BaseTypeNumber
	}
	return BaseTypeText
}

func sampleDataset() *dataset.Dataset {
	return &dataset.Dataset{
		Headers: []string{"Наименование", "Сумма", "Дата операции"},
		Rows: []dataset.Row{
			{"Наименование": "ООО Ромашка", "Сумма": "число", "Дата операции": "01.02.2024"},
		},
	}
}

func TestTransformRecordsFollowColumnOrder(t *testing.T) {
	records, err := Transform(sampleDataset(), CategoryManual, "616", headerDetector{})
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}

	wantCodes := []string{"616_001", "616_002", "616_003"}
	wantNames := []string{"Наименование", "Сумма", "Дата операции"}
	for i, rec := range records {
		if rec.Code != wantCodes[i] {
			t.Errorf("record %d: code = %q, want %q", i, rec.Code, wantCodes[i])
		}
		if rec.Sequence != i+1 {
			t.Errorf("record %d: sequence = %d, want %d", i, rec.Sequence, i+1)
		}
		if rec.Name != wantNames[i] {
			t.Errorf("record %d: name = %q, want %q", i, rec.Name, wantNames[i])
		}
		if rec.AlgorithmChanged != "нет" {
			t.Errorf("record %d: algorithm changed = %q, want %q", i, rec.AlgorithmChanged, "нет")
		}
		if rec.Required != "да" {
			t.Errorf("record %d: required = %q, want %q", i, rec.Required, "да")
		}
		if rec.AttributeKind != "Базовый" {
			t.Errorf("record %d: kind = %q, want %q", i, rec.AttributeKind, "Базовый")
		}
	}
	if records[1].BaseType != BaseTypeNumber {
		t.Errorf("detector result not applied: base type = %q", records[1].BaseType)
	}
}

func TestTransformCategoryDefaults(t *testing.T) {
	tests := []struct {
		category      Category
		techAlgorithm string
		sourceType    string
		relatedSystem string
	}{
		{CategoryManual, "Ручной ввод", "Ручное заполнение", ""},
		{CategorySemiAutomatic, "Ручной ввод", "Ручное заполнение", ""},
		{CategoryAutomatic, "", "База данных", ""},
		{CategoryILA, "", "База данных", "ИЛА One"},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			records, err := Transform(sampleDataset(), tt.category, "1", stubDetector{})
			if err != nil {
				t.Fatalf("Transform: %v", err)
			}
			rec := records[0]
			if rec.TechAlgorithmToBe != tt.techAlgorithm {
				t.Errorf("tech algorithm = %q, want %q", rec.TechAlgorithmToBe, tt.techAlgorithm)
			}
			if rec.SourceType != tt.sourceType {
				t.Errorf("source type = %q, want %q", rec.SourceType, tt.sourceType)
			}
			if rec.RelatedSystem != tt.relatedSystem {
				t.Errorf("related system = %q, want %q", rec.RelatedSystem, tt.relatedSystem)
			}
		})
	}
}

func TestTransformRejectsUnknownCategory(t *testing.T) {
	if _, err := Transform(sampleDataset(), Category("Неизвестный"), "1", stubDetector{}); err == nil {
		t.Fatal("expected error for unknown category")
	}
}

func TestParseCategory(t *testing.T) {
	for _, category := range Categories() {
		parsed, err := ParseCategory(string(category))
		if err != nil {
			t.Errorf("ParseCategory(%q): %v", category, err)
		}
		if parsed != category {
			t.Errorf("ParseCategory(%q) = %q", category, parsed)
		}
	}
	if _, err := ParseCategory("Другое"); err == nil {
		t.Error("expected error for unknown category")
	}
}

func TestRecordValuesMatchHeaderCount(t *testing.T) {
	rec := Record{Code: "1_001", Sequence: 1, Name: "x"}
	values := rec.Values()
	if len(values) != len(TechnicalHeaders) {
		t.Fatalf("Values() returned %d cells, headers have %d", len(values), len(TechnicalHeaders))
	}
	if len(TechnicalHeaders) != len(UserHeaders) {
		t.Fatalf("technical and user header counts differ: %d vs %d", len(TechnicalHeaders), len(UserHeaders))
	}
}
