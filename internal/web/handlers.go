package web

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/alexanderramin/triad/internal/clipboard"
	"github.com/alexanderramin/triad/internal/contract"
	"github.com/alexanderramin/triad/internal/domain"
	"github.com/alexanderramin/triad/internal/i18n"
	"github.com/alexanderramin/triad/internal/realism"
	"github.com/alexanderramin/triad/internal/service"
	"github.com/alexanderramin/triad/internal/urlstate"
)

// Handlers serves the simulator page and its JSON API. Every request builds
// its own session from the query string, so the server holds no triangle
// state.
type Handlers struct {
	catalog   *i18n.Catalog
	prefs     service.PreferencesService
	defaults  domain.Preferences
	language  domain.Language
	baseURL   string
	observers []service.UseCaseObserver
	renderer  *Renderer
	logger    *slog.Logger
}

// HandleIndex renders the simulator for the state in the query string.
func (h *Handlers) HandleIndex(w http.ResponseWriter, r *http.Request) {
	page := h.page(r)
	mem, sim := h.session(r, page.loc, urlstate.IsCarried(r.URL.Query()))
	eval := sim.Snapshot(r.Context())
	query := mem.Query()

	page.Title = page.T("title")
	h.renderer.renderPage(w, http.StatusOK, "simulator", SimulatorPageData{
		PageData:    page,
		Eval:        eval,
		Analysis:    realism.WithFallbacks(eval.Analysis, page.loc),
		Heading:     formatHeading(eval.Score, page.loc),
		Query:       query.Encode(),
		QueryValues: query,
		Concept:     renderMarkdown(i18n.Concept(page.Lang)),
		Languages:   domain.Languages,
		Themes:      domain.Themes,
	})
}

// HandleAdjust applies one slider move and redirects to the canonical page
// URL for the new state. The target is marked as carried so the page keeps
// shares normalization pushed below the slider minimum.
func (h *Handlers) HandleAdjust(w http.ResponseWriter, r *http.Request) {
	page := h.page(r)
	mem, sim := h.session(r, page.loc, true)
	if _, err := h.adjust(r, sim); err != nil {
		h.renderer.renderError(w, r, page, err)
		return
	}

	q := mem.Query()
	q.Del("field")
	q.Del("value")
	q.Set(urlstate.CarriedParam, "1")
	http.Redirect(w, r, "/?"+q.Encode(), http.StatusSeeOther)
}

// HandleAPIEvaluate returns the evaluation of the state in the query string.
func (h *Handlers) HandleAPIEvaluate(w http.ResponseWriter, r *http.Request) {
	page := h.page(r)
	_, sim := h.session(r, page.loc, urlstate.IsCarried(r.URL.Query()))
	renderJSON(w, http.StatusOK, sim.Snapshot(r.Context()))
}

// HandleAPIAdjust applies one slider move to the state the page sent back
// and returns the new evaluation.
func (h *Handlers) HandleAPIAdjust(w http.ResponseWriter, r *http.Request) {
	page := h.page(r)
	_, sim := h.session(r, page.loc, true)
	eval, err := h.adjust(r, sim)
	if err != nil {
		h.renderer.renderError(w, r, page, err)
		return
	}
	renderJSON(w, http.StatusOK, eval)
}

// HandlePreferences stores the submitted language and theme and returns to
// the page the form was posted from.
func (h *Handlers) HandlePreferences(w http.ResponseWriter, r *http.Request) {
	page := h.page(r)
	if err := r.ParseForm(); err != nil {
		h.renderer.renderError(w, r, page, NewInvalidRequest("invalid form: %v", err))
		return
	}
	if h.prefs == nil {
		h.renderer.renderError(w, r, page, NewInvalidRequest("preferences are not available"))
		return
	}

	_, err := h.prefs.Update(r.Context(), r.PostForm.Get("lang"), r.PostForm.Get("theme"))
	if errors.Is(err, domain.ErrUnknownLanguage) || errors.Is(err, domain.ErrUnknownTheme) {
		h.renderer.renderError(w, r, page, NewInvalidRequest("%v", err))
		return
	}
	if err != nil {
		h.renderer.renderError(w, r, page, err)
		return
	}

	back, _ := url.ParseQuery(r.PostForm.Get("return"))
	back.Del("lang")
	back.Del("theme")
	http.Redirect(w, r, "/?"+back.Encode(), http.StatusSeeOther)
}

// HandleNotFound renders a 404 for every unmatched path.
func (h *Handlers) HandleNotFound(w http.ResponseWriter, r *http.Request) {
	h.renderer.renderError(w, r, h.page(r), NewNotFound(r.URL.Path))
}

func (h *Handlers) adjust(r *http.Request, sim service.SimulatorService) (*contract.Evaluation, error) {
	q := r.URL.Query()
	f, err := domain.ParseFactor(q.Get("field"))
	if err != nil {
		return nil, NewInvalidRequest("unknown field %q", q.Get("field"))
	}
	v, err := strconv.ParseFloat(q.Get("value"), 64)
	if err != nil {
		return nil, NewInvalidRequest("invalid value %q", q.Get("value"))
	}

	eval, err := sim.Adjust(r.Context(), f, v)
	if errors.Is(err, service.ErrInvalidValue) {
		return nil, NewInvalidRequest("invalid value %q", q.Get("value"))
	}
	return eval, err
}

// page resolves language and theme: forced language, then the lang/theme
// query parameters, then stored preferences, then the defaults.
func (h *Handlers) page(r *http.Request) PageData {
	prefs := h.defaults
	if h.prefs != nil {
		stored, err := h.prefs.Get(r.Context())
		if err != nil {
			h.logger.Warn("loading preferences failed", "error", err)
		} else {
			prefs = *stored
		}
	}

	q := r.URL.Query()
	if l, err := domain.ParseLanguage(q.Get("lang")); err == nil {
		prefs.Language = l
	}
	if t, err := domain.ParseTheme(q.Get("theme")); err == nil {
		prefs.Theme = t
	}
	if h.language != "" {
		prefs.Language = h.language
	}
	prefs = prefs.Sanitize()

	return PageData{
		Lang:  prefs.Language,
		Theme: prefs.Theme,
		loc:   h.catalog.Translator(prefs.Language),
	}
}

// session seeds a simulator from the request query. A carried query comes
// from the page itself and is read leniently; anything else is a link opened
// from outside and must be inside the slider domain.
func (h *Handlers) session(r *http.Request, loc i18n.Translator, carried bool) (*urlstate.Memory, service.SimulatorService) {
	mem := urlstate.NewMemory(r.URL.Query())
	sim := service.NewSimulator(mem, clipboard.Discard{}, loc, h.shareBase(r), h.observers...)
	if carried {
		sim.Resume(r.Context())
	} else {
		sim.Init(r.Context())
	}
	return mem, sim
}

func (h *Handlers) shareBase(r *http.Request) string {
	if h.baseURL != "" {
		return h.baseURL
	}
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host + "/"
}

func formatHeading(score int, loc i18n.Translator) string {
	return loc.T("why_rating") + " " + strconv.Itoa(score) + loc.T("detailed_analysis")
}
