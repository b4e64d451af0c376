// Package views renders the application's HTML pages from an embedded
// template set.
package views

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"bramble/app/auth"
	"bramble/app/models"
)

//go:embed templates/*.html
var files embed.FS

// pages maps a page name to its content template file. Every page is
// parsed together with the shared layout.
var pages = []string{
	"index",
	"post",
	"register",
	"login",
	"make-post",
	"about",
	"contact",
	"not-found",
}

// PageData carries everything a page template can use.
type PageData struct {
	Title       string
	Flash       string
	FlashType   string
	CurrentUser *models.User
	Posts       []*models.Post
	Post        *models.Post
	Form        map[string]string
	Errors      []string
	IsEdit      bool
}

// LoggedIn reports whether the request carries an authenticated user.
func (d *PageData) LoggedIn() bool {
	return d.CurrentUser != nil
}

// IsAdmin reports whether the current user may manage posts.
func (d *PageData) IsAdmin() bool {
	return d.CurrentUser.IsAdmin()
}

// Renderer holds the parsed template set.
type Renderer struct {
	templates map[string]*template.Template
}

var funcMap = template.FuncMap{
	"gravatar": auth.GravatarURL,
	"safeHTML": func(s string) template.HTML { return template.HTML(s) },
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	templates := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		tmpl, err := template.New("layout.html").Funcs(funcMap).ParseFS(files,
			"templates/layout.html", "templates/"+page+".html")
		if err != nil {
			return nil, fmt.Errorf("parsing template %q: %w", page, err)
		}
		templates[page] = tmpl
	}
	return &Renderer{templates: templates}, nil
}

// Render writes the named page to w.
func (r *Renderer) Render(w io.Writer, page string, data *PageData) error {
	tmpl, ok := r.templates[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}
	if data == nil {
		data = &PageData{}
	}
	return tmpl.ExecuteTemplate(w, "layout", data)
}
