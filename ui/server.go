// Package ui serves the HTML dashboard: registry metrics, the attribute
// generator, the admin panel and the request analyzer. Every interaction is
// one synchronous recomputation over the application state; there are no
// background workers.
package ui

import (
	"embed"
	"html/template"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/aiaiai-hi/Report-App/internal"
	"github.com/aiaiai-hi/Report-App/internal/config"
	apperrors "github.com/aiaiai-hi/Report-App/internal/errors"
	"github.com/aiaiai-hi/Report-App/internal/state"
)

//go:embed templates/*.html
var embeddedTemplates embed.FS

const sessionCookie = "report_app_session"

// Server is the dashboard web server.
type Server struct {
	router   *gin.Engine
	app      *state.App
	sessions *state.Sessions
	cfg      *config.Config
	log      *internal.Logger

	// Last generated attribute workbook per session, held until the next
	// generation replaces it or the session ends.
	genMu     sync.Mutex
	generated map[string]generatedWorkbook
}

type generatedWorkbook struct {
	Filename string
	Payload  []byte
}

// NewServer wires the gin router, templates and routes.
func NewServer(cfg *config.Config, app *state.App, sessions *state.Sessions) (*Server, error) {
	gin.SetMode(cfg.Server.GinMode)

	funcMap := template.FuncMap{
		"add": func(a, b int) int { return a + b },
		"indicator": func(overdue bool) string {
			if overdue {
				return "🔴"
			}
			return "🟢"
		},
	}
	templates, err := template.New("").Funcs(funcMap).ParseFS(embeddedTemplates, "templates/*.html")
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to parse templates")
	}

	s := &Server{
		router:    gin.New(),
		app:       app,
		sessions:  sessions,
		cfg:       cfg,
		log:       internal.DefaultLogger,
		generated: make(map[string]generatedWorkbook),
	}
	s.router.Use(gin.Logger(), gin.Recovery())
	s.router.MaxMultipartMemory = cfg.Data.MaxUploadBytes
	s.router.SetHTMLTemplate(templates)

	s.setupRoutes()
	return s, nil
}

func (s *Server) setupRoutes() {
	r := s.router
	r.Use(s.sessionMiddleware())

	r.GET("/", s.handleDashboard)
	r.GET("/export/analytics", s.handleAnalyticsExport)

	r.GET("/attributes", s.handleAttributesForm)
	r.POST("/attributes", s.handleAttributesGenerate)
	r.GET("/attributes/download", s.handleAttributesDownload)

	r.GET("/actions", s.handleActions)
	r.GET("/docs", s.handlePage("Документация", "Здесь будут размещены подробные инструкции по работе с отчетами"))
	r.GET("/faq", s.handlePage("Частые вопросы", "Здесь будет интеграция с ИИ-ассистентом для ответов на вопросы"))
	r.GET("/feedback", s.handlePage("Оставить обратную связь", "Здесь будет форма для отправки обратной связи и предложений"))

	r.POST("/admin/login", s.handleLogin)
	r.POST("/admin/logout", s.handleLogout)

	admin := r.Group("/admin", s.requireAdmin())
	admin.GET("/reports", s.handleAdminReports)
	admin.POST("/reports/upload", s.handleReportsUpload)
	admin.POST("/comments", s.handleCommentSave)
	admin.POST("/actions/:key", s.handleActionTextSave)
	admin.GET("/requests", s.handleRequestsPage)
	admin.POST("/requests/upload", s.handleRequestsUpload)
	admin.POST("/requests/clear", s.handleRequestsClear)
	admin.GET("/requests/export", s.handleRequestsExport)
}

// Run starts the HTTP server.
func (s *Server) Run() error {
	return s.router.Run(":" + s.cfg.Server.Port)
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// sessionMiddleware attaches the browser session, starting one on first
// visit.
func (s *Server) sessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(sessionCookie)
		var session *state.Session
		if err == nil {
			session = s.sessions.Get(id)
		}
		if session == nil {
			session = s.sessions.Start()
			c.SetCookie(sessionCookie, session.ID, 12*3600, "/", "", false, true)
		}
		c.Set("session", session)
		c.Next()
	}
}

func (s *Server) session(c *gin.Context) *state.Session {
	if v, ok := c.Get("session"); ok {
		if session, ok := v.(*state.Session); ok {
			return session
		}
	}
	return nil
}

func (s *Server) isAdmin(c *gin.Context) bool {
	session := s.session(c)
	return session != nil && session.Admin
}

// stashGenerated records the session's latest workbook and drops payloads
// whose sessions have expired, so downloads never outlive their session.
func (s *Server) stashGenerated(sessionID string, gen generatedWorkbook) {
	s.genMu.Lock()
	defer s.genMu.Unlock()
	for id := range s.generated {
		if s.sessions.Get(id) == nil {
			delete(s.generated, id)
		}
	}
	s.generated[sessionID] = gen
}

func (s *Server) dropGenerated(sessionID string) {
	s.genMu.Lock()
	delete(s.generated, sessionID)
	s.genMu.Unlock()
}

// requireAdmin guards the admin routes.
func (s *Server) requireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !s.isAdmin(c) {
			c.Redirect(http.StatusSeeOther, "/")
			c.Abort()
			return
		}
		c.Next()
	}
}

// renderError shows a page-level error banner while keeping prior state
// intact - failures are scoped to the single action that caused them.
func (s *Server) renderError(c *gin.Context, page string, data gin.H, err error) {
	s.log.Error("[%s] %v", page, err)
	data["Error"] = err.Error()
	data["Admin"] = s.isAdmin(c)
	c.HTML(http.StatusOK, page, data)
}
