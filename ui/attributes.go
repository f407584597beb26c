package ui

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/aiaiai-hi/Report-App/adapters/inference"
	"github.com/aiaiai-hi/Report-App/adapters/tabular"
	"github.com/aiaiai-hi/Report-App/adapters/workbook"
	"github.com/aiaiai-hi/Report-App/domain/attribute"
	apperrors "github.com/aiaiai-hi/Report-App/internal/errors"
)

// attributesResult summarizes one generation run for the result panel.
type attributesResult struct {
	ReportNumber string
	Category     attribute.Category
	Rows         int
	Columns      int
	DominantType attribute.BaseType
	TypeCounts   map[attribute.BaseType]int
}

func (s *Server) handleAttributesForm(c *gin.Context) {
	c.HTML(http.StatusOK, "attributes.html", gin.H{
		"Admin":      s.isAdmin(c),
		"Categories": attribute.Categories(),
	})
}

// handleAttributesGenerate turns an uploaded tabular file into the attribute
// description workbook, shows the run summary and keeps the workbook ready
// for download.
func (s *Server) handleAttributesGenerate(c *gin.Context) {
	data := gin.H{"Categories": attribute.Categories()}

	number := strings.TrimSpace(c.PostForm("number"))
	if number == "" {
		s.renderError(c, "attributes.html", data, apperrors.ValidationError("укажите номер отчета"))
		return
	}
	category, err := attribute.ParseCategory(c.PostForm("category"))
	if err != nil {
		s.renderError(c, "attributes.html", data, err)
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		s.renderError(c, "attributes.html", data, apperrors.ValidationError("прикрепите файл с данными отчета"))
		return
	}
	if !tabular.IsSupported(file.Filename) {
		s.renderError(c, "attributes.html", data, apperrors.ValidationError(
			fmt.Sprintf("неподдерживаемый формат файла: %s", file.Filename)))
		return
	}
	src, err := file.Open()
	if err != nil {
		s.renderError(c, "attributes.html", data, apperrors.LoadError("не удалось открыть загруженный файл", err))
		return
	}
	defer src.Close()

	ds, err := tabular.Read(src, file.Filename)
	if err != nil {
		s.renderError(c, "attributes.html", data, err)
		return
	}

	detector := inference.New(inference.DefaultConfig())
	records, err := attribute.Transform(ds, category, number, detector)
	if err != nil {
		s.renderError(c, "attributes.html", data, err)
		return
	}
	payload, err := workbook.WriteAttributes(records)
	if err != nil {
		s.renderError(c, "attributes.html", data, err)
		return
	}

	if session := s.session(c); session != nil {
		s.stashGenerated(session.ID, generatedWorkbook{
			Filename: fmt.Sprintf("%s_атрибуты.xlsx", number),
			Payload:  payload,
		})
	}

	s.log.Info("generated %d attributes for report %s (%s)", len(records), number, category)
	data["Result"] = summarizeRun(ds.Len(), number, category, records)
	data["Admin"] = s.isAdmin(c)
	c.HTML(http.StatusOK, "attributes.html", data)
}

// handleAttributesDownload streams the session's last generated workbook.
func (s *Server) handleAttributesDownload(c *gin.Context) {
	session := s.session(c)
	if session == nil {
		c.Redirect(http.StatusSeeOther, "/attributes")
		return
	}
	s.genMu.Lock()
	gen, ok := s.generated[session.ID]
	s.genMu.Unlock()
	if !ok {
		c.Redirect(http.StatusSeeOther, "/attributes")
		return
	}
	sendWorkbook(c, gen.Filename, gen.Payload)
}

func summarizeRun(rows int, number string, category attribute.Category, records []attribute.Record) attributesResult {
	result := attributesResult{
		ReportNumber: number,
		Category:     category,
		Rows:         rows,
		Columns:      len(records),
		DominantType: attribute.BaseTypeText,
		TypeCounts:   make(map[attribute.BaseType]int),
	}
	for _, rec := range records {
		result.TypeCounts[rec.BaseType]++
	}
	best := 0
	for _, bt := range []attribute.BaseType{attribute.BaseTypeText, attribute.BaseTypeNumber, attribute.BaseTypeDate, attribute.BaseTypeFlag} {
		if result.TypeCounts[bt] > best {
			best = result.TypeCounts[bt]
			result.DominantType = bt
		}
	}
	return result
}
