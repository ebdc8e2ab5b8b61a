package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/models"
	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/session"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page names
const (
	PageLogin     = "login"
	PageDashboard = "dashboard"
	PageCombos    = "combos"
	PageDrivers   = "drivers"
	PageError     = "error"
)

// Navigation entries highlighted in the sidebar
const (
	NavDashboard = "dashboard"
	NavCombos    = "combos"
	NavDrivers   = "drivers"
)

var pages = []string{PageLogin, PageDashboard, PageCombos, PageDrivers, PageError}

// Page is the data every template receives. The sidebar is only drawn for
// authenticated pages.
type Page struct {
	Title         string
	Nav           string
	Authenticated bool
	Admin         string
	Flash         *models.Flash
	Data          interface{}
}

// DefaultAdmin is the greeting used when the token carries no readable subject
const DefaultAdmin = "Super Admin"

// AdminPage builds the page of an authenticated screen
func AdminPage(sess *session.Session, title, nav string, data interface{}) Page {
	admin := DefaultAdmin
	if sess != nil && sess.Admin != "" {
		admin = sess.Admin
	}
	return Page{
		Title:         title,
		Nav:           nav,
		Authenticated: sess.Authenticated(),
		Admin:         admin,
		Data:          data,
	}
}

// WithFlash returns a copy of the page carrying flash
func (p Page) WithFlash(flash *models.Flash) Page {
	p.Flash = flash
	return p
}

// Renderer renders the embedded dashboard templates for echo
type Renderer struct {
	templates map[string]*template.Template
}

// NewRenderer parses every page together with the shared layout
func NewRenderer() (*Renderer, error) {
	r := &Renderer{templates: make(map[string]*template.Template, len(pages))}
	for _, name := range pages {
		tmpl, err := template.New(name).Funcs(Funcs()).ParseFS(templateFS,
			"templates/layout.html",
			"templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		r.templates[name] = tmpl
	}
	return r, nil
}

// Render implements echo.Renderer
func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	tmpl, ok := r.templates[name]
	if !ok {
		return fmt.Errorf("template %s not found", name)
	}
	return tmpl.ExecuteTemplate(w, "layout", data)
}
