// Package view renders the portal's server-side HTML pages.
package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/sirupsen/logrus"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Page names.
const (
	PageHome         = "home"
	PageRegister     = "register"
	PageDoctors      = "doctors"
	PageAppointments = "appointments"
	PageBilling      = "billing"
	PageNotFound     = "not_found"
)

// NavLink is one entry of the header navigation.
type NavLink struct {
	Page  string
	Href  string
	Label string
}

var navLinks = []NavLink{
	{Page: PageHome, Href: "/", Label: "Home"},
	{Page: PageRegister, Href: "/register", Label: "Register"},
	{Page: PageDoctors, Href: "/doctors", Label: "Doctors"},
	{Page: PageAppointments, Href: "/appointments", Label: "Appointments"},
	{Page: PageBilling, Href: "/billing", Label: "Billing"},
}

// PageData is what the layout receives.
type PageData struct {
	Title  string
	Active string
	Nav    []NavLink
	Data   any
}

type Renderer struct {
	log   *logrus.Logger
	pages map[string]*template.Template
}

func NewRenderer(log *logrus.Logger) (*Renderer, error) {
	base, err := template.New("layout.html").ParseFS(templateFS, "templates/layout.html")
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}

	r := &Renderer{log: log, pages: make(map[string]*template.Template)}
	for _, name := range []string{PageHome, PageRegister, PageDoctors, PageAppointments, PageBilling, PageNotFound} {
		clone, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone layout for %s: %w", name, err)
		}
		tpl, err := clone.ParseFS(templateFS, "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		r.pages[name] = tpl
	}
	return r, nil
}

// Page renders a full page inside the layout.
func (r *Renderer) Page(w http.ResponseWriter, status int, name, title string, data any) {
	r.execute(w, status, name, "layout", PageData{
		Title:  title,
		Active: name,
		Nav:    navLinks,
		Data:   data,
	})
}

// Fragment renders a named block of a page without the layout.
func (r *Renderer) Fragment(w http.ResponseWriter, status int, page, block string, data any) {
	r.execute(w, status, page, block, data)
}

func (r *Renderer) execute(w http.ResponseWriter, status int, page, block string, data any) {
	tpl, ok := r.pages[page]
	if !ok {
		r.log.Errorf("Unknown page template %q", page)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := tpl.ExecuteTemplate(&buf, block, data); err != nil {
		r.log.Errorf("Failed to render %s/%s: %+v", page, block, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// StaticHandler serves the stylesheet and scripts.
func StaticHandler() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FileServer(http.FS(sub))
}
