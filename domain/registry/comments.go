package registry

import (
	"sort"
	"strings"

	"github.com/aiaiai-hi/Report-App/domain/dataset"
)

// ReportKey identifies a registry row by its natural key. Comments are keyed
// this way rather than by row position, so they survive re-uploads that
// reorder or extend the registry.
type ReportKey struct {
	FormNumber string `json:"form_number"`
	Name       string `json:"report_name"`
}

// KeyOf derives the natural key of a registry row.
func KeyOf(row dataset.Row) ReportKey {
	return ReportKey{
		FormNumber: strings.TrimSpace(row.Value(ColFormNumber)),
		Name:       strings.TrimSpace(row.Value(ColReportName)),
	}
}

// Comment is one persisted (key, text) pair.
type Comment struct {
	ReportKey
	Text string `json:"comment"`
}

// CommentSet maps report keys to comment text. Blank comments are never
// stored.
type CommentSet map[ReportKey]string

// Set stores or clears a comment.
func (c CommentSet) Set(key ReportKey, text string) {
	if strings.TrimSpace(text) == "" {
		delete(c, key)
		return
	}
	c[key] = text
}

// Retain keeps only the comments whose key still exists in the dataset.
// Called when the registry is replaced by a new upload.
func (c CommentSet) Retain(ds *dataset.Dataset) CommentSet {
	present := make(map[ReportKey]bool, ds.Len())
	for _, row := range ds.Rows {
		present[KeyOf(row)] = true
	}
	out := make(CommentSet)
	for key, text := range c {
		if present[key] {
			out[key] = text
		}
	}
	return out
}

// List returns the comments as an ordered slice (form number, then name) for
// stable serialization.
func (c CommentSet) List() []Comment {
	out := make([]Comment, 0, len(c))
	for key, text := range c {
		out = append(out, Comment{ReportKey: key, Text: text})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].FormNumber != out[j].FormNumber {
			return out[i].FormNumber < out[j].FormNumber
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// FromList rebuilds a CommentSet from its serialized form.
func FromList(comments []Comment) CommentSet {
	set := make(CommentSet, len(comments))
	for _, c := range comments {
		set.Set(c.ReportKey, c.Text)
	}
	return set
}
