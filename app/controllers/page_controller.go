package controllers

import (
	"net/http"

	"bramble/app/views"

	"github.com/alexedwards/scs/v2"
	"go.uber.org/zap"
)

// PageController serves the static informational pages.
type PageController struct {
	sessions *scs.SessionManager
	renderer *views.Renderer
	logger   *zap.Logger
}

// NewPageController creates a new PageController.
func NewPageController(sessions *scs.SessionManager, renderer *views.Renderer, logger *zap.Logger) *PageController {
	return &PageController{sessions: sessions, renderer: renderer, logger: logger}
}

// About renders the about page.
func (c *PageController) About(w http.ResponseWriter, r *http.Request) {
	renderPage(w, c.renderer, c.logger, "about", pageData(r, c.sessions, "About"))
}

// Contact renders the contact page.
func (c *PageController) Contact(w http.ResponseWriter, r *http.Request) {
	renderPage(w, c.renderer, c.logger, "contact", pageData(r, c.sessions, "Contact"))
}
