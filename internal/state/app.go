// Package state holds the explicit application state: the loaded registry,
// its comments and the analyzer tables: one struct with well-defined update
// operations, loaded from storage at startup and persisted on every change.
package state

import (
	"time"

	"sync"

	"github.com/aiaiai-hi/Report-App/domain/dataset"
	"github.com/aiaiai-hi/Report-App/domain/registry"
	"github.com/aiaiai-hi/Report-App/domain/request"
	"github.com/aiaiai-hi/Report-App/internal/storage"
)

// App is the process-wide application state. Reads take a shared lock;
// updates replace whole datasets and persist before returning. Two
// concurrent writers follow last-writer-wins, a documented limitation of the
// single-admin usage pattern.
type App struct {
	mu    sync.RWMutex
	store *storage.Store

	reports          *dataset.Dataset
	comments         registry.CommentSet
	requestLog       *dataset.Dataset
	requestSummaries []request.Summary

	actionTexts map[string]string
}

// Load builds the application state from whatever the store already holds.
// Missing files mean a fresh install, not an error.
func Load(store *storage.Store) (*App, error) {
	reports, err := store.LoadReports()
	if err != nil {
		return nil, err
	}
	comments, err := store.LoadComments()
	if err != nil {
		return nil, err
	}
	requestLog, summaries, err := store.LoadRequests()
	if err != nil {
		return nil, err
	}

	return &App{
		store:            store,
		reports:          reports,
		comments:         comments,
		requestLog:       requestLog,
		requestSummaries: summaries,
		actionTexts:      defaultActionTexts(),
	}, nil
}

// Reports returns the current registry (nil when none uploaded yet) and its
// comments. Callers must not mutate the returned dataset; updates go through
// ReplaceReports.
func (a *App) Reports() (*dataset.Dataset, registry.CommentSet) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.reports, a.comments
}

// ReplaceReports swaps in a newly uploaded registry. Comments are carried
// over by natural key; ones whose report no longer exists are dropped.
// Returns how many comments survived. A save failure is reported but the
// in-memory state keeps the new data.
func (a *App) ReplaceReports(ds *dataset.Dataset) (int, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.comments = a.comments.Retain(ds)
	a.reports = ds
	return len(a.comments), a.store.SaveReports(ds, a.comments)
}

// SetComment stores (or clears, when text is blank) the comment of one
// report and persists the comment file.
func (a *App) SetComment(key registry.ReportKey, text string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.comments.Set(key, text)
	return a.store.SaveComments(a.comments)
}

// Comment returns the stored comment for a report key.
func (a *App) Comment(key registry.ReportKey) string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.comments[key]
}

// Requests returns the raw analyzer log and the derived summaries.
func (a *App) Requests() (*dataset.Dataset, []request.Summary) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.requestLog, a.requestSummaries
}

// ReplaceRequests processes a newly uploaded workflow log and persists both
// the raw rows and the derived summaries.
func (a *App) ReplaceRequests(raw *dataset.Dataset, now time.Time) ([]request.Summary, error) {
	summaries, err := request.Process(raw, now)
	if err != nil {
		return nil, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.requestLog = raw
	a.requestSummaries = summaries
	return summaries, a.store.SaveRequests(raw, summaries)
}

// ClearRequests drops the analyzer data from memory and storage.
func (a *App) ClearRequests() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.requestLog = nil
	a.requestSummaries = nil
	return a.store.ClearRequests()
}

// ActionText returns the editable guidance text for one action section.
func (a *App) ActionText(key string) string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.actionTexts[key]
}

// SetActionText updates one guidance section (admin editor).
func (a *App) SetActionText(key, text string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.actionTexts[key] = text
}
