package workbook

import (
	"github.com/xuri/excelize/v2"

	"github.com/aiaiai-hi/Report-App/domain/attribute"
	apperrors "github.com/aiaiai-hi/Report-App/internal/errors"
)

// WriteAttributes renders metadata records into the catalog's attribute
// workbook. Layout contract: row 1 carries the technical keys and is hidden,
// row 2 carries the bold human titles, data starts at row 3 with the view
// frozen above it.
func WriteAttributes(records []attribute.Record) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := attribute.SheetName
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, apperrors.SaveError("не удалось создать лист атрибутов", err)
	}

	build := func() error {
		for c, key := range attribute.TechnicalHeaders {
			cell, err := excelize.CoordinatesToCellName(c+1, 1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, key); err != nil {
				return err
			}
		}
		if err := f.SetRowVisible(sheet, 1, false); err != nil {
			return err
		}

		for c, title := range attribute.UserHeaders {
			cell, err := excelize.CoordinatesToCellName(c+1, 2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, title); err != nil {
				return err
			}
		}
		boldStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
		if err != nil {
			return err
		}
		lastTitleCell, err := excelize.CoordinatesToCellName(len(attribute.UserHeaders), 2)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, "A2", lastTitleCell, boldStyle); err != nil {
			return err
		}

		for r, record := range records {
			for c, value := range record.Values() {
				cell, err := excelize.CoordinatesToCellName(c+1, r+3)
				if err != nil {
					return err
				}
				// The sequence column stays numeric so the catalog
				// importer can sort on it.
				if c == 1 {
					err = f.SetCellValue(sheet, cell, record.Sequence)
				} else {
					err = f.SetCellValue(sheet, cell, value)
				}
				if err != nil {
					return err
				}
			}
		}

		if err := f.SetPanes(sheet, &excelize.Panes{
			Freeze:      true,
			YSplit:      2,
			TopLeftCell: "A3",
			ActivePane:  "bottomLeft",
		}); err != nil {
			return err
		}

		return autoSizeColumns(f, sheet, attributeGrid(records))
	}
	if err := build(); err != nil {
		return nil, apperrors.SaveError("не удалось сформировать книгу атрибутов", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, apperrors.SaveError("не удалось сформировать книгу атрибутов", err)
	}
	return buf.Bytes(), nil
}

// attributeGrid collects, per column, the technical key, the human title and
// every data value - the sizing contract spans all three.
func attributeGrid(records []attribute.Record) [][]string {
	grid := make([][]string, len(attribute.TechnicalHeaders))
	for i := range grid {
		grid[i] = []string{attribute.TechnicalHeaders[i], attribute.UserHeaders[i]}
	}
	for _, record := range records {
		for i, v := range record.Values() {
			grid[i] = append(grid[i], v)
		}
	}
	return grid
}
