package attribute

import (
	"fmt"

	"github.com/aiaiai-hi/Report-App/domain/dataset"
)

// TypeDetector classifies a column of raw values into a BaseType.
type TypeDetector interface {
	DetectType(values []string) BaseType
}

// Category-dependent defaults. Manual and semi-automatic reports are typed in
// by hand; automatic and ILA reports are fed from a database, and ILA ones
// additionally carry the fixed source-system tag.
const (
	defaultManualTechAlgorithm = "Ручной ввод"
	defaultManualSourceType    = "Ручное заполнение"
	defaultDatabaseSourceType  = "База данных"
	ilaSystemName              = "ИЛА One"
)

// Transform produces one metadata record per source column, in column order.
// Sequence numbers are contiguous from 1 and the code field is derived from
// reportNumber once the full sequence is built.
func Transform(ds *dataset.Dataset, category Category, reportNumber string, detector TypeDetector) ([]Record, error) {
	if _, err := ParseCategory(string(category)); err != nil {
		return nil, err
	}

	techAlgorithm := ""
	sourceType := defaultDatabaseSourceType
	if category == CategoryManual || category == CategorySemiAutomatic {
		techAlgorithm = defaultManualTechAlgorithm
		sourceType = defaultManualSourceType
	}

	relatedSystem := ""
	if category == CategoryILA {
		relatedSystem = ilaSystemName
	}

	records := make([]Record, 0, len(ds.Headers))
	for idx, column := range ds.Headers {
		records = append(records, Record{
			Sequence:          idx + 1,
			Name:              column,
			TechAlgorithmToBe: techAlgorithm,
			AlgorithmChanged:  "нет",
			SourceType:        sourceType,
			RelatedSystem:     relatedSystem,
			Required:          "да",
			BaseType:          detector.DetectType(ds.Column(column)),
			AttributeKind:     "Базовый",
		})
	}

	for i := range records {
		records[i].Code = fmt.Sprintf("%s_%03d", reportNumber, records[i].Sequence)
	}

	return records, nil
}
