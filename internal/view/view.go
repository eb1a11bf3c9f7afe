// Package view renders the catalog pages. Every page template is parsed
// together with layout.html and executed through the "layout" template.
package view

import (
	"embed"
	"fmt"
	"html"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/gin-gonic/gin/render"
)

//go:embed templates/*.html
var files embed.FS

const layoutFile = "templates/layout.html"

// Funcs are available to every template.
var Funcs = template.FuncMap{
	// Stored text is escaped once on input; html/template escapes it again
	// on output, so it is unescaped first.
	"unescape": html.UnescapeString,
}

// Renderer implements gin's render.HTMLRender over the embedded templates.
type Renderer struct {
	templates map[string]*template.Template
}

var _ render.HTMLRender = (*Renderer)(nil)

// New parses layout.html with each page in templates/. Pages are named by
// their file name without extension.
func New() (*Renderer, error) {
	return parse(files)
}

func parse(fsys fs.FS) (*Renderer, error) {
	pages, err := fs.Glob(fsys, "templates/*.html")
	if err != nil {
		return nil, err
	}

	r := &Renderer{templates: make(map[string]*template.Template, len(pages))}
	for _, page := range pages {
		if page == layoutFile {
			continue
		}
		name := strings.TrimSuffix(path.Base(page), ".html")

		tmpl, err := template.New(name).Funcs(Funcs).ParseFS(fsys, layoutFile, page)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", page, err)
		}
		r.templates[name] = tmpl
	}
	return r, nil
}

// Must is like New but panics on error.
func Must() *Renderer {
	r, err := New()
	if err != nil {
		panic(err)
	}
	return r
}

// Instance returns the render for the page called name.
func (r *Renderer) Instance(name string, data any) render.Render {
	tmpl, ok := r.templates[name]
	if !ok {
		return unknownPage(name)
	}
	return render.HTML{Template: tmpl, Name: "layout", Data: data}
}

// Has reports whether a page called name was parsed.
func (r *Renderer) Has(name string) bool {
	_, ok := r.templates[name]
	return ok
}

type unknownPage string

func (p unknownPage) Render(http.ResponseWriter) error {
	return fmt.Errorf("view: no page named %q", string(p))
}

func (unknownPage) WriteContentType(w http.ResponseWriter) {
	header := w.Header()
	if val := header["Content-Type"]; len(val) == 0 {
		header["Content-Type"] = []string{"text/html; charset=utf-8"}
	}
}
