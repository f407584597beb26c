// Command api serves a read-only JSON view over the persisted dashboard
// data: registry metrics, the staleness lists and the request summaries.
// It shares the data directory with the main dashboard process.
package main

import (
	"encoding/json"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/aiaiai-hi/Report-App/internal"
	"github.com/aiaiai-hi/Report-App/internal/config"
	apperrors "github.com/aiaiai-hi/Report-App/internal/errors"
	"github.com/aiaiai-hi/Report-App/internal/state"
	"github.com/aiaiai-hi/Report-App/internal/storage"

	"github.com/aiaiai-hi/Report-App/domain/registry"
	"github.com/aiaiai-hi/Report-App/domain/request"
)

type api struct {
	app *state.App
	log *internal.Logger
}

func main() {
	godotenv.Load()
	logger := internal.NewDefaultLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("configuration: %v", err)
		os.Exit(1)
	}
	store, err := storage.New(cfg.Data.Dir)
	if err != nil {
		logger.Error("storage: %v", err)
		os.Exit(1)
	}
	app, err := state.Load(store)
	if err != nil {
		logger.Error("loading persisted state: %v", err)
		os.Exit(1)
	}

	a := &api{app: app, log: logger}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", a.handleHealth)
		r.Get("/metrics", a.handleMetrics)
		r.Get("/reconfirmation", a.handleReconfirmation)
		r.Get("/updates", a.handleUpdates)
		r.Get("/requests", a.handleRequests)
	})

	logger.Info("api listening on :%s", cfg.Server.APIPort)
	if err := http.ListenAndServe(":"+cfg.Server.APIPort, r); err != nil {
		logger.Error("api server: %v", err)
		os.Exit(1)
	}
}

func (a *api) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (a *api) handleMetrics(w http.ResponseWriter, r *http.Request) {
	ds, _ := a.app.Reports()
	if ds == nil {
		a.writeError(w, apperrors.New(apperrors.CodeNotFound, "реестр не загружен"))
		return
	}
	owner := r.URL.Query().Get("owner")
	if owner == "" {
		owner = registry.FilterAll
	}
	metrics := registry.CompletionMetrics(ds, owner)
	writeJSON(w, http.StatusOK, map[string]any{
		"owner":        owner,
		"fill_rate":    metrics.FillRate,
		"publish_rate": metrics.PublishRate,
		"total":        ds.Len(),
	})
}

func (a *api) handleReconfirmation(w http.ResponseWriter, r *http.Request) {
	ds, _ := a.app.Reports()
	if ds == nil {
		a.writeError(w, apperrors.New(apperrors.CodeNotFound, "реестр не загружен"))
		return
	}
	writeJSON(w, http.StatusOK, registry.NeedingReconfirmation(ds, time.Now()))
}

func (a *api) handleUpdates(w http.ResponseWriter, r *http.Request) {
	ds, _ := a.app.Reports()
	if ds == nil {
		a.writeError(w, apperrors.New(apperrors.CodeNotFound, "реестр не загружен"))
		return
	}
	writeJSON(w, http.StatusOK, registry.NeedingUpdate(ds))
}

func (a *api) handleRequests(w http.ResponseWriter, r *http.Request) {
	_, summaries := a.app.Requests()
	if len(summaries) == 0 {
		a.writeError(w, apperrors.New(apperrors.CodeNotFound, "данные запросов не загружены"))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"stats":    request.ComputeStats(summaries),
		"requests": summaries,
	})
}

func (a *api) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	code := apperrors.GetCode(err)
	switch code {
	case apperrors.CodeNotFound:
		status = http.StatusNotFound
	case apperrors.CodeValidationError, apperrors.CodeLoadError:
		status = http.StatusBadRequest
	case apperrors.CodeUnauthorized:
		status = http.StatusUnauthorized
	}
	a.log.Warn("api error: %v", err)
	writeJSON(w, status, map[string]string{"code": code, "error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
