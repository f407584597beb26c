// Package attribute models the vertical attribute-metadata table produced
// from a horizontal source spreadsheet. One Record per source column; the
// downstream data catalog consumes the workbook rendering of these records.
package attribute

import (
	"fmt"

	"github.com/aiaiai-hi/Report-App/internal/errors"
)

// BaseType is the inferred semantic type of a source column. The values are
// the exact strings the catalog expects in the workbook.
type BaseType string

const (
	BaseTypeText   BaseType = "текст"
	BaseTypeNumber BaseType = "число"
	BaseTypeDate   BaseType = "дата"
	BaseTypeFlag   BaseType = "флаг"
)

// Category is the report-generation category chosen on upload. It drives the
// technical-algorithm and data-source defaults of every record.
type Category string

const (
	CategoryManual        Category = "Ручной"
	CategorySemiAutomatic Category = "Полуавтоматический"
	CategoryAutomatic     Category = "Автоматический"
	CategoryILA           Category = "ИЛА"
)

// Categories returns the selectable report categories in display order.
func Categories() []Category {
	return []Category{CategoryManual, CategorySemiAutomatic, CategoryAutomatic, CategoryILA}
}

// ParseCategory validates a raw form value against the known categories.
func ParseCategory(raw string) (Category, error) {
	for _, c := range Categories() {
		if string(c) == raw {
			return c, nil
		}
	}
	return "", errors.ValidationError(fmt.Sprintf("неизвестный тип отчета: %q", raw))
}

// Record is one row of the attribute-metadata table. Field order mirrors the
// fixed 21-column workbook schema; blank fields are placeholders the analyst
// fills in after download.
type Record struct {
	Code                  string   // ReportCode_info, {report_number}_{seq:03d}
	Sequence              int      // Noreportfield_info, 1-based source column order
	Name                  string   // name, source column header
	BusinessAlgorithmAsIs string   // description
	TechAlgorithmAsIs     string   // TechAsIs
	BusinessAlgorithmToBe string   // BussAlgorythm
	TechAlgorithmToBe     string   // TechAlgorythm
	AlgorithmChanged      string   // algorithms_change_info
	PhysicalAttributes    string   // dbobjectlink
	SourceType            string   // base_type_info
	RelatedSystem         string   // related_it_system_info
	TermCodes             string   // reportfields_codes
	TermNames             string   // reportfields_names
	TermParent            string   // reportfields_parent_term
	TermDomain            string   // reportfields_domain
	Required              string   // required_attribute_info
	BaseType              BaseType // base_type_report_field
	AttributeKind         string   // base_calc_ref_ind_info
	ReferenceTable        string   // codeTable_info
	Note                  string   // example
	ToDelete              string   // isToDelete_info
}

// Values returns the record's cells in workbook column order.
func (r Record) Values() []string {
	return []string{
		r.Code,
		fmt.Sprintf("%d", r.Sequence),
		r.Name,
		r.BusinessAlgorithmAsIs,
		r.TechAlgorithmAsIs,
		r.BusinessAlgorithmToBe,
		r.TechAlgorithmToBe,
		r.AlgorithmChanged,
		r.PhysicalAttributes,
		r.SourceType,
		r.RelatedSystem,
		r.TermCodes,
		r.TermNames,
		r.TermParent,
		r.TermDomain,
		r.Required,
		string(r.BaseType),
		r.AttributeKind,
		r.ReferenceTable,
		r.Note,
		r.ToDelete,
	}
}
