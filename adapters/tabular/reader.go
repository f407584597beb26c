// Package tabular reads uploaded spreadsheets into the schema-on-read
// dataset model. Excel files go through excelize; CSV files are decoded with
// best-effort delimiter and encoding detection, since exports arrive both
// from modern tools (comma, UTF-8) and legacy office installs (semicolon,
// CP1251).
package tabular

import (
	"bytes"
	"encoding/csv"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/aiaiai-hi/Report-App/domain/dataset"
	apperrors "github.com/aiaiai-hi/Report-App/internal/errors"
)

// SupportedExtensions lists the upload formats the readers accept.
var SupportedExtensions = []string{".xlsx", ".xls", ".csv"}

// IsSupported reports whether the file name carries a readable extension.
func IsSupported(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, s := range SupportedExtensions {
		if ext == s {
			return true
		}
	}
	return false
}

// Read loads a dataset from uploaded bytes, dispatching on the file
// extension. Structural failures come back as LOAD_ERROR with the cause.
func Read(r io.Reader, filename string) (*dataset.Dataset, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, apperrors.LoadError("ошибка при чтении файла", err)
	}
	return ReadBytes(data, filename)
}

// ReadBytes loads a dataset from in-memory file content.
func ReadBytes(data []byte, filename string) (*dataset.Dataset, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".csv":
		return readCSV(data)
	case ".xlsx", ".xls":
		return readExcel(data)
	default:
		return nil, apperrors.LoadError("неподдерживаемый формат файла: "+ext, nil)
	}
}

// readExcel reads the first sheet of a workbook.
func readExcel(data []byte) (*dataset.Dataset, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, apperrors.LoadError("не удалось открыть Excel файл", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, apperrors.LoadError("в книге нет листов", nil)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, apperrors.LoadError("не удалось прочитать лист "+sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, apperrors.LoadError("файл не содержит строки заголовков", nil)
	}

	return fromRows(rows), nil
}

// csvAttempt is one delimiter+encoding candidate tried in order.
type csvAttempt struct {
	comma   rune
	decoder *charmap.Charmap // nil means UTF-8 as-is
}

// readCSV tries comma+UTF-8, then semicolon+CP1251, then a default comma
// parse. An attempt only wins when it yields more than one column, otherwise
// the delimiter guess was wrong and the next candidate is tried.
func readCSV(data []byte) (*dataset.Dataset, error) {
	attempts := []csvAttempt{
		{comma: ',', decoder: nil},
		{comma: ';', decoder: charmap.Windows1251},
	}

	var lastErr error
	for _, attempt := range attempts {
		rows, err := parseCSV(data, attempt)
		if err != nil {
			lastErr = err
			continue
		}
		if len(rows) > 0 && len(rows[0]) > 1 {
			return fromRows(rows), nil
		}
	}

	// Last attempt: default comma parse, accepted even with one column.
	rows, err := parseCSV(data, csvAttempt{comma: ','})
	if err != nil {
		if lastErr != nil {
			err = lastErr
		}
		return nil, apperrors.LoadError("не удалось разобрать CSV файл", err)
	}
	if len(rows) == 0 {
		return nil, apperrors.LoadError("файл не содержит строки заголовков", nil)
	}
	return fromRows(rows), nil
}

func parseCSV(data []byte, attempt csvAttempt) ([][]string, error) {
	var r io.Reader = bytes.NewReader(data)
	if attempt.decoder != nil {
		r = transform.NewReader(r, attempt.decoder.NewDecoder())
	}

	reader := csv.NewReader(r)
	reader.Comma = attempt.comma
	reader.FieldsPerRecord = -1 // exports are frequently ragged
	reader.LazyQuotes = true

	return reader.ReadAll()
}

// fromRows converts raw string rows into a dataset: first row as trimmed
// headers, the rest keyed by header. Cells beyond the header width are
// dropped, as are byte-order marks on the first header.
func fromRows(rows [][]string) *dataset.Dataset {
	headerRow := rows[0]
	headers := make([]string, len(headerRow))
	for i, header := range headerRow {
		headers[i] = strings.TrimSpace(strings.TrimPrefix(header, "\uFEFF"))
	}

	ds := &dataset.Dataset{Headers: headers}
	for _, raw := range rows[1:] {
		row := make(dataset.Row, len(headers))
		for j, cell := range raw {
			if j < len(headers) {
				row[headers[j]] = strings.TrimSpace(cell)
			}
		}
		ds.Rows = append(ds.Rows, row)
	}
	return ds
}
