// Package workbook renders analyzer output into xlsx workbooks: the
// two-header attribute sheet for the data catalog, the dashboard analytics
// export and the request-analyzer export.
package workbook

import (
	"github.com/xuri/excelize/v2"
)

// Column sizing: widths fit the longest value in the column plus padding,
// capped so one verbose cell cannot blow up the layout.
const (
	widthPad = 2
	widthCap = 50
)

func fitWidth(maxLen int) float64 {
	w := maxLen + widthPad
	if w > widthCap {
		w = widthCap
	}
	return float64(w)
}

// autoSizeColumns sets each column's width to fit the widest cell observed in
// grid (a per-column slice of every value the column holds, headers
// included).
func autoSizeColumns(f *excelize.File, sheet string, grid [][]string) error {
	for i, column := range grid {
		maxLen := 0
		for _, v := range column {
			if len([]rune(v)) > maxLen {
				maxLen = len([]rune(v))
			}
		}
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, name, name, fitWidth(maxLen)); err != nil {
			return err
		}
	}
	return nil
}

// columnGrid transposes headers+rows into per-column value lists for sizing.
func columnGrid(headers []string, rows [][]string) [][]string {
	grid := make([][]string, len(headers))
	for i, h := range headers {
		grid[i] = []string{h}
	}
	for _, row := range rows {
		for i := range grid {
			if i < len(row) {
				grid[i] = append(grid[i], row[i])
			}
		}
	}
	return grid
}

// writeSheet fills a sheet with a header row and data rows, auto-sizing the
// columns.
func writeSheet(f *excelize.File, sheet string, headers []string, rows [][]string) error {
	for c, h := range headers {
		cell, err := excelize.CoordinatesToCellName(c+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}
	for r, row := range rows {
		for c, v := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}
	return autoSizeColumns(f, sheet, columnGrid(headers, rows))
}
