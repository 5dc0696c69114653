package web

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/alexanderramin/triad/internal/contract"
	"github.com/alexanderramin/triad/internal/domain"
	"github.com/alexanderramin/triad/internal/i18n"
	"github.com/alexanderramin/triad/internal/realism"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// PageData contains the fields every template uses.
type PageData struct {
	Title string
	Lang  domain.Language
	Theme domain.Theme
	loc   i18n.Translator
}

// T looks up a catalog string for the page language.
func (p PageData) T(key string) string { return p.loc.T(key) }

// SimulatorPageData is the template data for the simulator page.
type SimulatorPageData struct {
	PageData
	Eval     *contract.Evaluation
	Analysis realism.Analysis
	Heading  string
	// Query is the canonical encoded state; QueryValues holds the same
	// values for the hidden inputs of the no-script forms.
	Query       string
	QueryValues url.Values
	Concept     template.HTML
	Languages   []domain.Language
	Themes      []domain.Theme
}

// ErrorPageData is the template data for the error page.
type ErrorPageData struct {
	PageData
	StatusCode int
	Message    string
}

// Renderer manages template parsing and rendering.
type Renderer struct {
	templates map[string]*template.Template
	logger    *slog.Logger
}

// NewRenderer parses the layout and every page template from templateFS.
func NewRenderer(templateFS fs.FS, logger *slog.Logger) *Renderer {
	funcMap := template.FuncMap{
		"pct":   func(v float64) string { return fmt.Sprintf("%.1f", v) },
		"coord": func(v float64) string { return fmt.Sprintf("%.2f", v) },
	}

	layout := template.Must(template.New("layout").Funcs(funcMap).ParseFS(templateFS, "layout.html"))

	pages := map[string]string{
		"simulator": "simulator.html",
		"error":     "error.html",
	}
	templates := make(map[string]*template.Template, len(pages))
	for name, file := range pages {
		t := template.Must(layout.Clone())
		template.Must(t.ParseFS(templateFS, file))
		templates[name] = t
	}
	return &Renderer{templates: templates, logger: logger}
}

func (r *Renderer) renderPage(w http.ResponseWriter, status int, name string, data any) {
	t, ok := r.templates[name]
	if !ok {
		r.logger.Error("template not found", "template", name)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		r.logger.Error("template execution failed", "template", name, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

// renderError renders an error with content negotiation: JSON for API paths
// and clients asking for it, an HTML page otherwise.
func (r *Renderer) renderError(w http.ResponseWriter, req *http.Request, page PageData, err error) {
	e := asError(err)
	if e.Status >= http.StatusInternalServerError {
		r.logger.Error("request failed", "path", req.URL.Path, "error", err)
	}

	if wantsJSON(req) {
		renderJSON(w, e.Status, map[string]any{
			"error": map[string]any{
				"code":    string(e.Code),
				"message": e.Message,
				"status":  e.Status,
			},
		})
		return
	}

	page.Title = fmt.Sprintf("Error %d", e.Status)
	r.renderPage(w, e.Status, "error", ErrorPageData{
		PageData:   page,
		StatusCode: e.Status,
		Message:    e.Message,
	})
}

func wantsJSON(req *http.Request) bool {
	return strings.HasPrefix(req.URL.Path, "/api/") ||
		strings.Contains(req.Header.Get("Accept"), "application/json")
}

// renderJSON writes a JSON response.
func renderJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

// renderMarkdown converts markdown text to HTML using goldmark.
func renderMarkdown(md string) template.HTML {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(md), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(md))
	}
	return template.HTML(buf.String())
}
