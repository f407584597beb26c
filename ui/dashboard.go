package ui

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/aiaiai-hi/Report-App/adapters/workbook"
	"github.com/aiaiai-hi/Report-App/domain/core"
	"github.com/aiaiai-hi/Report-App/domain/dataset"
	"github.com/aiaiai-hi/Report-App/domain/registry"
)

// dashboardData feeds the registry page: metrics, alert tables and the
// filtered detail view.
type dashboardData struct {
	Owner       string
	Stage       string
	FormType    string
	Owners      []string
	Stages      []string
	FormTypes   []string
	Metrics     registry.Metrics
	Reconf      []registry.ReconfirmationRow
	Updates     []registry.UpdateRow
	Headers     []string
	DetailRows  [][]string
	TotalRows   int
	HasRegistry bool
}

func (s *Server) handleDashboard(c *gin.Context) {
	ds, _ := s.app.Reports()
	data := s.buildDashboard(c, ds)
	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"Admin": s.isAdmin(c),
		"Data":  data,
	})
}

func (s *Server) buildDashboard(c *gin.Context, ds *dataset.Dataset) dashboardData {
	data := dashboardData{
		Owner:    c.DefaultQuery("owner", registry.FilterAll),
		Stage:    c.DefaultQuery("stage", registry.FilterAll),
		FormType: c.DefaultQuery("form_type", registry.FilterAll),
	}
	if ds == nil || ds.Len() == 0 {
		return data
	}
	data.HasRegistry = true
	data.Owners = append([]string{registry.FilterAll}, ds.DistinctValues(registry.ColOwner)...)
	data.Stages = append([]string{registry.FilterAll}, ds.DistinctValues(registry.ColStage)...)
	data.FormTypes = append([]string{registry.FilterAll}, ds.DistinctValues(registry.ColFormationType)...)
	data.Metrics = registry.CompletionMetrics(ds, data.Owner)
	data.Reconf = registry.NeedingReconfirmation(ds, time.Now())
	data.Updates = registry.NeedingUpdate(ds)

	filtered := s.filterRegistry(ds, data.Owner, data.Stage, data.FormType)
	data.TotalRows = filtered.Len()
	data.Headers = append(append([]string{}, filtered.Headers...), workbook.CommentColumn)
	data.DetailRows = s.detailRows(filtered)
	return data
}

func (s *Server) filterRegistry(ds *dataset.Dataset, owner, stage, formType string) *dataset.Dataset {
	filtered := ds
	if owner != "" && owner != registry.FilterAll {
		filtered = filtered.FilterEqual(registry.ColOwner, owner)
	}
	if stage != "" && stage != registry.FilterAll {
		filtered = filtered.FilterEqual(registry.ColStage, stage)
	}
	if formType != "" && formType != registry.FilterAll {
		filtered = filtered.FilterEqual(registry.ColFormationType, formType)
	}
	return filtered
}

// detailRows renders the registry with display-formatted dates and the
// stored comment appended to each row.
func (s *Server) detailRows(ds *dataset.Dataset) [][]string {
	rows := make([][]string, 0, ds.Len())
	for _, row := range ds.Rows {
		cells := make([]string, 0, len(ds.Headers)+1)
		for _, header := range ds.Headers {
			cells = append(cells, formatCell(header, row.Value(header)))
		}
		cells = append(cells, s.app.Comment(registry.KeyOf(row)))
		rows = append(rows, cells)
	}
	return rows
}

func formatCell(header, value string) string {
	if !registry.IsDateColumn(header) {
		return value
	}
	if parsed, ok := core.ParseDate(value); ok {
		return core.FormatDate(parsed)
	}
	return value
}

// handleAnalyticsExport streams the three-sheet analytics workbook for the
// current filters.
func (s *Server) handleAnalyticsExport(c *gin.Context) {
	ds, _ := s.app.Reports()
	if ds == nil || ds.Len() == 0 {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}
	owner := c.DefaultQuery("owner", registry.FilterAll)
	stage := c.DefaultQuery("stage", registry.FilterAll)
	formType := c.DefaultQuery("form_type", registry.FilterAll)
	filtered := s.filterRegistry(ds, owner, stage, formType)

	payload, err := workbook.WriteAnalytics(
		filtered,
		func(row dataset.Row) string { return s.app.Comment(registry.KeyOf(row)) },
		registry.NeedingReconfirmation(ds, time.Now()),
		registry.NeedingUpdate(ds),
	)
	if err != nil {
		s.renderError(c, "dashboard.html", gin.H{"Data": s.buildDashboard(c, ds)}, err)
		return
	}
	sendWorkbook(c, "analytics.xlsx", payload)
}

func sendWorkbook(c *gin.Context, filename string, payload []byte) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", payload)
}
