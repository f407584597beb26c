package ui

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"github.com/aiaiai-hi/Report-App/internal/state"
)

// actionView pairs a guidance section with its rendered markdown.
type actionView struct {
	Key   string
	Title string
	HTML  template.HTML
	Raw   string
}

func (s *Server) handleActions(c *gin.Context) {
	sections := state.ActionSections()
	views := make([]actionView, 0, len(sections))
	for _, section := range sections {
		raw := s.app.ActionText(section.Key)
		views = append(views, actionView{
			Key:   section.Key,
			Title: section.Title,
			HTML:  renderMarkdown(raw),
			Raw:   raw,
		})
	}
	c.HTML(http.StatusOK, "actions.html", gin.H{
		"Admin":    s.isAdmin(c),
		"Sections": views,
	})
}

// handleActionTextSave stores admin-edited guidance text for one section.
func (s *Server) handleActionTextSave(c *gin.Context) {
	s.app.SetActionText(c.Param("key"), c.PostForm("text"))
	c.Redirect(http.StatusSeeOther, "/actions")
}

// handlePage renders one of the placeholder pages.
func (s *Server) handlePage(title, body string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "page.html", gin.H{
			"Admin": s.isAdmin(c),
			"Title": title,
			"Body":  body,
		})
	}
}

// renderMarkdown converts guidance markdown to HTML. The texts are authored
// by admins, not end users, so no sanitizer sits between them and the page.
func renderMarkdown(src string) template.HTML {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.NoEmptyLineBeforeBlock)
	renderer := mdhtml.NewRenderer(mdhtml.RendererOptions{Flags: mdhtml.CommonFlags})
	return template.HTML(markdown.ToHTML([]byte(src), p, renderer))
}
