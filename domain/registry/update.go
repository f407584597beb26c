package registry

import (
	"fmt"
	"strings"

	"github.com/aiaiai-hi/Report-App/domain/dataset"
)

// UpdateRow is one report requiring remediation, with the required actions
// and advisory comments accumulated during the checks.
type UpdateRow struct {
	FormNumber string
	Name       string
	Stage      string
	Owner      string
	Actions    string // joined by "; "
	Comments   string // joined by "; "
}

// NeedingUpdate lists reports that are unpublished, have empty non-excluded
// fields, lack a template, or lack described attributes. Reports that pass
// every check are omitted.
func NeedingUpdate(ds *dataset.Dataset) []UpdateRow {
	if ds == nil {
		return nil
	}

	var out []UpdateRow
	for _, row := range ds.Rows {
		var actions, comments []string

		stage := row.Value(ColStage)
		if stage != StagePublished {
			actions = append(actions, "Необходимо довести отчет до публикации")
		}

		var emptyFields []string
		for _, column := range ds.Headers {
			if skipCell(row, column) {
				continue
			}
			if !row.IsFilled(column) {
				emptyFields = append(emptyFields, column)
			}
		}
		if len(emptyFields) > 0 {
			// Actualization requests are raised only for published
			// reports; unpublished ones already carry the publication
			// action.
			if stage == StagePublished {
				actions = append(actions, "Создать запрос на актуализацию")
			}
			comments = append(comments, fmt.Sprintf("Заполнить поля (%s)", strings.Join(emptyFields, "; ")))
		}

		if strings.EqualFold(strings.TrimSpace(row.Value(ColTemplate)), "нет") {
			comments = append(comments, "Добавить шаблон")
		}
		if strings.EqualFold(strings.TrimSpace(row.Value(ColAttributesDescribed)), "нет") {
			comments = append(comments, "Описать атрибуты")
		}

		if len(actions) == 0 && len(comments) == 0 {
			continue
		}
		out = append(out, UpdateRow{
			FormNumber: row.Value(ColFormNumber),
			Name:       row.Value(ColReportName),
			Stage:      stage,
			Owner:      row.Value(ColOwner),
			Actions:    strings.Join(actions, "; "),
			Comments:   strings.Join(comments, "; "),
		})
	}
	return out
}
