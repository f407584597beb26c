package ui

import (
	"crypto/subtle"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aiaiai-hi/Report-App/adapters/tabular"
	"github.com/aiaiai-hi/Report-App/domain/dataset"
	"github.com/aiaiai-hi/Report-App/domain/registry"
	apperrors "github.com/aiaiai-hi/Report-App/internal/errors"
)

// handleLogin upgrades the session to admin on a correct credential pair.
// Failures land back on the referring page without detail.
func (s *Server) handleLogin(c *gin.Context) {
	user := c.PostForm("username")
	password := c.PostForm("password")
	ok := subtle.ConstantTimeCompare([]byte(user), []byte(s.cfg.Admin.User)) == 1 &&
		subtle.ConstantTimeCompare([]byte(password), []byte(s.cfg.Admin.Password)) == 1
	if !ok {
		s.log.Warn("failed admin login for user %q", user)
		c.Redirect(http.StatusSeeOther, "/")
		return
	}
	if session := s.session(c); session != nil {
		s.sessions.SetAdmin(session.ID, true)
	}
	c.Redirect(http.StatusSeeOther, "/admin/reports")
}

func (s *Server) handleLogout(c *gin.Context) {
	if session := s.session(c); session != nil {
		s.sessions.Drop(session.ID)
		s.dropGenerated(session.ID)
	}
	c.SetCookie(sessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusSeeOther, "/")
}

// handleAdminReports shows the registry management page: upload, current
// totals and the comment editor.
func (s *Server) handleAdminReports(c *gin.Context) {
	ds, _ := s.app.Reports()
	data := gin.H{"Admin": true}
	if ds != nil && ds.Len() > 0 {
		data["HasRegistry"] = true
		data["TotalRows"] = ds.Len()
		data["Reports"] = s.reportOptions(ds)
	}
	if kept := c.Query("kept"); kept != "" {
		data["Message"] = fmt.Sprintf("Реестр загружен, сохранено комментариев: %s", kept)
	}
	c.HTML(http.StatusOK, "admin.html", data)
}

// reportOption is one row of the comment editor.
type reportOption struct {
	Key     registry.ReportKey
	Comment string
}

func (s *Server) reportOptions(ds *dataset.Dataset) []reportOption {
	options := make([]reportOption, 0, ds.Len())
	for _, row := range ds.Rows {
		key := registry.KeyOf(row)
		options = append(options, reportOption{Key: key, Comment: s.app.Comment(key)})
	}
	return options
}

// handleReportsUpload replaces the registry from an uploaded export file,
// keeping comments whose reports survive.
func (s *Server) handleReportsUpload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		s.renderError(c, "admin.html", gin.H{}, apperrors.ValidationError("прикрепите файл реестра"))
		return
	}
	src, err := file.Open()
	if err != nil {
		s.renderError(c, "admin.html", gin.H{}, apperrors.LoadError("не удалось открыть загруженный файл", err))
		return
	}
	defer src.Close()

	ds, err := tabular.Read(src, file.Filename)
	if err != nil {
		s.renderError(c, "admin.html", gin.H{}, err)
		return
	}
	kept, err := s.app.ReplaceReports(ds)
	if err != nil {
		s.renderError(c, "admin.html", gin.H{}, err)
		return
	}
	s.log.Info("registry replaced: %d rows, %d comments kept", ds.Len(), kept)
	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/admin/reports?kept=%d", kept))
}

// handleCommentSave stores one report comment. A blank text removes it.
func (s *Server) handleCommentSave(c *gin.Context) {
	key := registry.ReportKey{
		FormNumber: c.PostForm("form_number"),
		Name:       c.PostForm("report_name"),
	}
	if err := s.app.SetComment(key, c.PostForm("comment")); err != nil {
		s.renderError(c, "admin.html", gin.H{}, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/admin/reports")
}
