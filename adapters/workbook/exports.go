package workbook

import (
	"github.com/xuri/excelize/v2"

	"github.com/aiaiai-hi/Report-App/domain/dataset"
	"github.com/aiaiai-hi/Report-App/domain/registry"
	"github.com/aiaiai-hi/Report-App/domain/request"
	apperrors "github.com/aiaiai-hi/Report-App/internal/errors"
)

// Analytics export sheet names.
const (
	SheetFilteredReports = "Отфильтрованные отчеты"
	SheetReconfirmation  = "Требуют подтверждения"
	SheetNeedingUpdate   = "Требуют актуализации"
	SheetRequestAnalysis = "Анализ запросов"
)

// CommentColumn is the trailing column appended to registry exports.
const CommentColumn = "Комментарий"

var reconfirmationHeaders = []string{
	"Номер формы",
	"Наименование отчета",
	"Владелец отчета ССП",
	"Дата последней публикации",
	"Дата актуализации",
	"Статус актуализации",
}

var updateHeaders = []string{
	"Номер формы",
	"Наименование отчета",
	"Этап отчета",
	"Владелец отчета ССП",
	"Необходимые действия",
	"Доп. комментарии",
}

// statusIndicator renders the traffic-light prefix carried by the status
// column in exports and on the dashboard.
func statusIndicator(overdue bool) string {
	if overdue {
		return "🔴"
	}
	return "🟢"
}

// WriteDataset renders a plain dataset into a single auto-sized sheet.
// Used for the persisted registry and raw request-log files.
func WriteDataset(ds *dataset.Dataset, sheet string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, apperrors.SaveError("не удалось создать лист", err)
	}
	rows := make([][]string, ds.Len())
	for i, row := range ds.Rows {
		cells := make([]string, len(ds.Headers))
		for j, h := range ds.Headers {
			cells[j] = row.Value(h)
		}
		rows[i] = cells
	}
	if err := writeSheet(f, sheet, ds.Headers, rows); err != nil {
		return nil, apperrors.SaveError("не удалось записать данные", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, apperrors.SaveError("не удалось сформировать книгу", err)
	}
	return buf.Bytes(), nil
}

// WriteAnalytics renders the three-sheet dashboard export: the filtered
// registry rows (with their comments), the reconfirmation reminders and the
// remediation list.
func WriteAnalytics(ds *dataset.Dataset, comments func(row dataset.Row) string, reconf []registry.ReconfirmationRow, updates []registry.UpdateRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetFilteredReports); err != nil {
		return nil, apperrors.SaveError("не удалось создать лист", err)
	}

	headers := append(append([]string{}, ds.Headers...), CommentColumn)
	rows := make([][]string, ds.Len())
	for i, row := range ds.Rows {
		cells := make([]string, 0, len(headers))
		for _, h := range ds.Headers {
			cells = append(cells, row.Value(h))
		}
		comment := ""
		if comments != nil {
			comment = comments(row)
		}
		rows[i] = append(cells, comment)
	}
	if err := writeSheet(f, SheetFilteredReports, headers, rows); err != nil {
		return nil, apperrors.SaveError("не удалось записать отчеты", err)
	}

	if _, err := f.NewSheet(SheetReconfirmation); err != nil {
		return nil, apperrors.SaveError("не удалось создать лист", err)
	}
	reconfRows := make([][]string, len(reconf))
	for i, r := range reconf {
		reconfRows[i] = []string{
			r.FormNumber, r.Name, r.Owner, r.LastPublication, r.DueDate,
			statusIndicator(r.Overdue) + " " + r.Status,
		}
	}
	if err := writeSheet(f, SheetReconfirmation, reconfirmationHeaders, reconfRows); err != nil {
		return nil, apperrors.SaveError("не удалось записать напоминания", err)
	}

	if _, err := f.NewSheet(SheetNeedingUpdate); err != nil {
		return nil, apperrors.SaveError("не удалось создать лист", err)
	}
	updateRows := make([][]string, len(updates))
	for i, u := range updates {
		updateRows[i] = []string{u.FormNumber, u.Name, u.Stage, u.Owner, u.Actions, u.Comments}
	}
	if err := writeSheet(f, SheetNeedingUpdate, updateHeaders, updateRows); err != nil {
		return nil, apperrors.SaveError("не удалось записать список актуализации", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, apperrors.SaveError("не удалось сформировать аналитику", err)
	}
	return buf.Bytes(), nil
}

// WriteRequestSummaries renders analyzer summaries into the requests export.
func WriteRequestSummaries(summaries []request.Summary) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetRequestAnalysis); err != nil {
		return nil, apperrors.SaveError("не удалось создать лист", err)
	}
	rows := make([][]string, len(summaries))
	for i, s := range summaries {
		rows[i] = s.Values()
	}
	if err := writeSheet(f, SheetRequestAnalysis, request.SummaryHeaders, rows); err != nil {
		return nil, apperrors.SaveError("не удалось записать анализ запросов", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, apperrors.SaveError("не удалось сформировать книгу запросов", err)
	}
	return buf.Bytes(), nil
}
