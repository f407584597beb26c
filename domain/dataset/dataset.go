// Package dataset holds the schema-on-read tabular model shared by every
// analyzer. Uploaded spreadsheets vary in structure, so rows are name-to-value
// maps rather than fixed structs; presence and emptiness are handled
// explicitly at each access.
package dataset

import "strings"

// Row represents one data row as column-name to raw-value pairs.
// Values are kept as the strings read from the file; typing happens
// downstream (inference, date parsing) per consumer.
type Row map[string]string

// Dataset represents a complete loaded table: ordered headers plus rows.
type Dataset struct {
	Headers []string
	Rows    []Row
}

// Get returns the raw value of the named column and whether the column is
// present in the row at all.
func (r Row) Get(name string) (string, bool) {
	v, ok := r[name]
	return v, ok
}

// Value returns the raw value of the named column, "" when absent.
func (r Row) Value(name string) string {
	return r[name]
}

// IsFilled reports whether the named cell is present and non-empty after
// trimming. This is the single definition of "filled" used by the
// completion metrics and the empty-field scan.
func (r Row) IsFilled(name string) bool {
	v, ok := r[name]
	return ok && strings.TrimSpace(v) != ""
}

// IsEmpty reports whether every cell of the row is missing or blank.
func (r Row) IsEmpty() bool {
	for _, v := range r {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// HasColumn reports whether the dataset carries the named header.
func (d *Dataset) HasColumn(name string) bool {
	for _, h := range d.Headers {
		if h == name {
			return true
		}
	}
	return false
}

// Column extracts the ordered raw values of one source column,
// one entry per row (missing cells become "").
func (d *Dataset) Column(name string) []string {
	values := make([]string, len(d.Rows))
	for i, row := range d.Rows {
		values[i] = row[name]
	}
	return values
}

// DistinctValues returns the distinct non-blank values of a column in
// insertion order. Used to populate the dashboard filter selects.
func (d *Dataset) DistinctValues(name string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, row := range d.Rows {
		v := strings.TrimSpace(row[name])
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

// FilterEqual returns a shallow copy of the dataset containing only rows whose
// named column equals value exactly. Headers are shared with the receiver.
func (d *Dataset) FilterEqual(name, value string) *Dataset {
	out := &Dataset{Headers: d.Headers}
	for _, row := range d.Rows {
		if row[name] == value {
			out.Rows = append(out.Rows, row)
		}
	}
	return out
}

// Len returns the number of data rows.
func (d *Dataset) Len() int {
	return len(d.Rows)
}
