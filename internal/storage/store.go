// Package storage persists the application's flat files: the report
// registry, its comments, and the request analyzer's raw and processed
// tables. Every save rewrites the whole file; there is no transaction log
// and the last writer wins, which matches the single-admin-editor usage this
// tool is built for.
package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"

	"github.com/aiaiai-hi/Report-App/adapters/tabular"
	"github.com/aiaiai-hi/Report-App/adapters/workbook"
	"github.com/aiaiai-hi/Report-App/domain/dataset"
	"github.com/aiaiai-hi/Report-App/domain/registry"
	"github.com/aiaiai-hi/Report-App/domain/request"
	apperrors "github.com/aiaiai-hi/Report-App/internal/errors"
)

// Persisted file names inside the data directory.
const (
	reportsFile           = "reports_data.xlsx"
	commentsFile          = "comments_data.json"
	requestsFile          = "requests_data.xlsx"
	requestsProcessedFile = "requests_processed.xlsx"
)

// Store reads and writes the data directory.
type Store struct {
	dir string
}

// New creates a store rooted at dir, creating the directory if needed.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, apperrors.SaveError("не удалось создать каталог данных", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name)
}

func (s *Store) writeFile(name string, data []byte) error {
	if err := os.WriteFile(s.path(name), data, 0o644); err != nil {
		return apperrors.SaveError("ошибка при сохранении "+name, err)
	}
	return nil
}

// loadDataset reads one persisted table; a missing file is not an error and
// yields nil.
func (s *Store) loadDataset(name string) (*dataset.Dataset, error) {
	data, err := os.ReadFile(s.path(name))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.LoadError("ошибка при чтении "+name, err)
	}
	return tabular.ReadBytes(data, name)
}

// SaveReports persists the registry and its comments together, the way they
// are always updated.
func (s *Store) SaveReports(ds *dataset.Dataset, comments registry.CommentSet) error {
	data, err := workbook.WriteDataset(ds, "Отчеты")
	if err != nil {
		return err
	}
	if err := s.writeFile(reportsFile, data); err != nil {
		return err
	}
	return s.SaveComments(comments)
}

// LoadReports returns the persisted registry, nil when none was saved yet.
func (s *Store) LoadReports() (*dataset.Dataset, error) {
	return s.loadDataset(reportsFile)
}

// SaveComments persists the comment set as an ordered list of natural-key
// pairs.
func (s *Store) SaveComments(comments registry.CommentSet) error {
	payload, err := json.MarshalIndent(comments.List(), "", "  ")
	if err != nil {
		return apperrors.SaveError("не удалось сериализовать комментарии", err)
	}
	return s.writeFile(commentsFile, payload)
}

// LoadComments returns the persisted comments, an empty set when the file is
// absent.
func (s *Store) LoadComments() (registry.CommentSet, error) {
	data, err := os.ReadFile(s.path(commentsFile))
	if os.IsNotExist(err) {
		return make(registry.CommentSet), nil
	}
	if err != nil {
		return nil, apperrors.LoadError("ошибка при чтении комментариев", err)
	}
	var list []registry.Comment
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, apperrors.LoadError("файл комментариев поврежден", err)
	}
	return registry.FromList(list), nil
}

// SaveRequests persists the raw request log and the derived summaries.
func (s *Store) SaveRequests(raw *dataset.Dataset, summaries []request.Summary) error {
	rawData, err := workbook.WriteDataset(raw, "Запросы")
	if err != nil {
		return err
	}
	if err := s.writeFile(requestsFile, rawData); err != nil {
		return err
	}

	processed, err := workbook.WriteRequestSummaries(summaries)
	if err != nil {
		return err
	}
	return s.writeFile(requestsProcessedFile, processed)
}

// LoadRequests returns the persisted raw log and summaries; both nil when
// nothing was saved yet.
func (s *Store) LoadRequests() (*dataset.Dataset, []request.Summary, error) {
	raw, err := s.loadDataset(requestsFile)
	if err != nil {
		return nil, nil, err
	}
	processed, err := s.loadDataset(requestsProcessedFile)
	if err != nil {
		return nil, nil, err
	}
	return raw, summariesFromDataset(processed), nil
}

// ClearRequests removes both analyzer files.
func (s *Store) ClearRequests() error {
	for _, name := range []string{requestsFile, requestsProcessedFile} {
		if err := os.Remove(s.path(name)); err != nil && !os.IsNotExist(err) {
			return apperrors.SaveError("ошибка при удалении "+name, err)
		}
	}
	return nil
}

// summariesFromDataset rebuilds summaries from the persisted processed
// table. Rows with an unreadable business id are dropped, same as on upload.
func summariesFromDataset(ds *dataset.Dataset) []request.Summary {
	if ds == nil {
		return nil
	}
	var out []request.Summary
	for _, row := range ds.Rows {
		id, err := strconv.Atoi(row.Value("business_id"))
		if err != nil {
			continue
		}
		days, _ := strconv.Atoi(row.Value("рабочих_дней_в_работе"))
		out = append(out, request.Summary{
			BusinessID:   id,
			CreatedAt:    row.Value("created_at"),
			BusinessDays: days,
			FormType:     row.Value("form_type_report"),
			ReportCode:   row.Value("report_code"),
			ReportName:   row.Value("report_name"),
			CurrentStage: row.Value("current_stage"),
			TsFrom:       row.Value("ts_from"),
			Analyst:      row.Value("analyst"),
			Owner:        row.Value("request_owner"),
			OwnerSSP:     row.Value("request_owner_ssp"),
		})
	}
	return out
}
