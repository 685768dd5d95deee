// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strconv"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/disease-registry/models"
)

// Page names
const (
	PageIndex          = "index.html"
	PageUsers          = "users.html"
	PageRecords        = "records.html"
	PagePublicServants = "publicservants.html"
	PageDiseases       = "diseases.html"
)

var pages = []string{PageIndex, PageUsers, PageRecords, PagePublicServants, PageDiseases}

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Page data

type IndexPage struct {
	Message string
	Users   []models.User
}

type UsersPage struct {
	Message   string
	Users     []models.User
	Countries []models.Country
}

type RecordsPage struct {
	Message string
	Records []models.Record
}

type PublicServantsPage struct {
	Message        string
	PublicServants []models.PublicServant
}

type DiseasesPage struct {
	Message      string
	Diseases     []models.Disease
	DiseaseTypes []models.DiseaseType
	Discoveries  []models.Discover
}

var funcs = template.FuncMap{
	"comma": humanize.Comma,
	"optional": func(v *int64) string {
		if v == nil {
			return ""
		}
		return strconv.FormatInt(*v, 10)
	},
}

// Renderer holds one parsed template set per page, each joined with the
// shared layout.
type Renderer struct {
	pages map[string]*template.Template
}

func New() (*Renderer, error) {
	r := &Renderer{pages: make(map[string]*template.Template, len(pages))}
	for _, page := range pages {
		tmpl, err := template.New(page).Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/"+page)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", page, err)
		}
		r.pages[page] = tmpl
	}
	return r, nil
}

// Render executes the page into a buffer first so a template error never
// leaves a half-written response.
func (r *Renderer) Render(w http.ResponseWriter, status int, page string, data any) error {
	tmpl, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("failed to render %s: %w", page, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

// Static serves the embedded assets; mount it at /static/.
func Static() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.StripPrefix("/static/", http.FileServerFS(sub))
}
