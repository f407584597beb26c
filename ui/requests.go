package ui

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/aiaiai-hi/Report-App/adapters/tabular"
	"github.com/aiaiai-hi/Report-App/adapters/workbook"
	"github.com/aiaiai-hi/Report-App/domain/request"
	apperrors "github.com/aiaiai-hi/Report-App/internal/errors"
)

// requestsData feeds the analyzer page: filter options, the filtered table
// and the aging aggregates over it.
type requestsData struct {
	HasData  bool
	Filter   request.Filter
	Options  map[string][]string
	Rows     []request.Summary
	Stats    request.AgingStats
	Total    int
	Filtered int
}

func (s *Server) handleRequestsPage(c *gin.Context) {
	_, summaries := s.app.Requests()
	c.HTML(http.StatusOK, "requests.html", gin.H{
		"Admin": true,
		"Data":  s.buildRequests(c, summaries),
	})
}

func (s *Server) buildRequests(c *gin.Context, summaries []request.Summary) requestsData {
	data := requestsData{Filter: requestFilterFromQuery(c)}
	if len(summaries) == 0 {
		return data
	}
	data.HasData = true
	data.Total = len(summaries)
	data.Options = map[string][]string{
		"FormType": request.DistinctValues(summaries, func(r request.Summary) string { return r.FormType }),
		"Stage":    request.DistinctValues(summaries, func(r request.Summary) string { return r.CurrentStage }),
		"Analyst":  request.DistinctValues(summaries, func(r request.Summary) string { return r.Analyst }),
		"Owner":    request.DistinctValues(summaries, func(r request.Summary) string { return r.Owner }),
		"OwnerSSP": request.DistinctValues(summaries, func(r request.Summary) string { return r.OwnerSSP }),
	}
	data.Rows = data.Filter.Apply(summaries)
	data.Filtered = len(data.Rows)
	data.Stats = request.ComputeStats(data.Rows)
	return data
}

func requestFilterFromQuery(c *gin.Context) request.Filter {
	minDays, _ := strconv.Atoi(c.DefaultQuery("min_days", "0"))
	maxDays, _ := strconv.Atoi(c.DefaultQuery("max_days", "0"))
	return request.Filter{
		Search:   c.Query("search"),
		FormType: c.DefaultQuery("form_type", request.FilterAll),
		Stage:    c.DefaultQuery("stage", request.FilterAll),
		Analyst:  c.DefaultQuery("analyst", request.FilterAll),
		Owner:    c.DefaultQuery("owner", request.FilterAll),
		OwnerSSP: c.DefaultQuery("owner_ssp", request.FilterAll),
		MinDays:  minDays,
		MaxDays:  maxDays,
	}
}

// handleRequestsUpload replaces the workflow log with an uploaded export and
// recomputes the per-request summaries.
func (s *Server) handleRequestsUpload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		s.renderRequestsError(c, apperrors.ValidationError("прикрепите файл с запросами"))
		return
	}
	src, err := file.Open()
	if err != nil {
		s.renderRequestsError(c, apperrors.LoadError("не удалось открыть загруженный файл", err))
		return
	}
	defer src.Close()

	raw, err := tabular.Read(src, file.Filename)
	if err != nil {
		s.renderRequestsError(c, err)
		return
	}
	summaries, err := s.app.ReplaceRequests(raw, time.Now())
	if err != nil {
		s.renderRequestsError(c, err)
		return
	}
	s.log.Info("request log replaced: %d rows, %d unique requests", raw.Len(), len(summaries))
	c.Redirect(http.StatusSeeOther, "/admin/requests")
}

func (s *Server) handleRequestsClear(c *gin.Context) {
	if err := s.app.ClearRequests(); err != nil {
		s.renderRequestsError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/admin/requests")
}

// handleRequestsExport streams the filtered analyzer table.
func (s *Server) handleRequestsExport(c *gin.Context) {
	_, summaries := s.app.Requests()
	if len(summaries) == 0 {
		c.Redirect(http.StatusSeeOther, "/admin/requests")
		return
	}
	filtered := requestFilterFromQuery(c).Apply(summaries)
	payload, err := workbook.WriteRequestSummaries(filtered)
	if err != nil {
		s.renderRequestsError(c, err)
		return
	}
	sendWorkbook(c, "requests_analysis.xlsx", payload)
}

func (s *Server) renderRequestsError(c *gin.Context, err error) {
	_, summaries := s.app.Requests()
	s.renderError(c, "requests.html", gin.H{"Data": s.buildRequests(c, summaries)}, err)
}
