package web

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/triad/internal/contract"
	"github.com/alexanderramin/triad/internal/domain"
	"github.com/alexanderramin/triad/internal/i18n"
	"github.com/alexanderramin/triad/internal/repository"
	"github.com/alexanderramin/triad/internal/service"
	"github.com/alexanderramin/triad/internal/testutil"
	"github.com/alexanderramin/triad/internal/urlstate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	handler http.Handler
	prefs   service.PreferencesService
}

func setupTest(t *testing.T, mutate ...func(*Options)) *testServer {
	t.Helper()
	database := testutil.NewTestDB(t)
	prefs := service.NewPreferencesService(
		repository.NewSQLitePreferencesRepo(database),
		testutil.NewTestUoW(database),
		domain.DefaultPreferences(),
	)

	opts := Options{
		Catalog:     i18n.Default(),
		Preferences: prefs,
		Defaults:    domain.DefaultPreferences(),
		BaseURL:     "http://triad.test/",
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, m := range mutate {
		m(&opts)
	}

	h, err := NewHandler(opts)
	require.NoError(t, err)
	return &testServer{handler: h, prefs: prefs}
}

func (s *testServer) do(t *testing.T, method, target string, body io.Reader, header ...string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, body)
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func queryFloat(t *testing.T, q url.Values, key string) float64 {
	t.Helper()
	v, err := strconv.ParseFloat(q.Get(key), 64)
	require.NoError(t, err, "parameter %s", key)
	return v
}

// --- HandleIndex ---

func TestHandleIndex_DefaultState(t *testing.T) {
	s := setupTest(t)
	rec := s.do(t, http.MethodGet, "/", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	body := rec.Body.String()
	assert.Contains(t, body, `<html lang="en" data-theme="system">`)
	assert.Contains(t, body, "Project Triangle")
	assert.Contains(t, body, `id="state-point"`)
	assert.Contains(t, body, "Beware of average results!")
	assert.Contains(t, body, "http://triad.test/?budget=33.3&amp;quality=33.3&amp;time=33.3")
	assert.Contains(t, body, "<table>", "concept markdown tables are rendered")
}

func TestHandleIndex_StateFromQuery(t *testing.T) {
	s := setupTest(t)
	rec := s.do(t, http.MethodGet, "/?time=90&budget=5&quality=5", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Extremely high time demands (90%)")
	assert.Contains(t, body, "URGENT: Reevaluate project requirements")
	assert.Contains(t, body, `<strong id="score">0%</strong>`)
}

func TestHandleIndex_InvalidQueryKeepsDefault(t *testing.T) {
	s := setupTest(t)
	rec := s.do(t, http.MethodGet, "/?time=abc&budget=5&quality=5", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `<strong id="score">100%</strong>`)
}

func TestHandleIndex_LanguageFromQuery(t *testing.T) {
	s := setupTest(t)
	rec := s.do(t, http.MethodGet, "/?lang=cs", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `<html lang="cs"`)
	assert.Contains(t, body, i18n.For(domain.LanguageCzech).T("project_realism"))
}

func TestHandleIndex_ForcedLanguageWins(t *testing.T) {
	s := setupTest(t, func(o *Options) { o.Language = domain.LanguageCzech })
	rec := s.do(t, http.MethodGet, "/?lang=en", nil)

	assert.Contains(t, rec.Body.String(), `<html lang="cs"`)
}

func TestSecurityHeaders(t *testing.T) {
	s := setupTest(t)
	rec := s.do(t, http.MethodGet, "/", nil)

	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Contains(t, rec.Header().Get("Content-Security-Policy"), "default-src 'self'")
}

// --- HandleAdjust ---

func TestHandleAdjust_RedirectsToCanonicalURL(t *testing.T) {
	s := setupTest(t)
	rec := s.do(t, http.MethodGet, "/adjust?field=time&value=70&lang=cs", nil)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	loc, err := url.Parse(rec.Header().Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "/", loc.Path)

	q := loc.Query()
	assert.InDelta(t, 70, queryFloat(t, q, "time"), 0.11)
	assert.InDelta(t, 15, queryFloat(t, q, "budget"), 0.11)
	assert.InDelta(t, 15, queryFloat(t, q, "quality"), 0.11)
	assert.Equal(t, "cs", q.Get("lang"))
	assert.False(t, q.Has("field"))
	assert.False(t, q.Has("value"))
	assert.Equal(t, "1", q.Get(urlstate.CarriedParam))
}

func TestHandleAdjust_UnknownFieldIsBadRequest(t *testing.T) {
	s := setupTest(t)
	rec := s.do(t, http.MethodGet, "/adjust?field=scope&value=10", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "unknown field")
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
}

// --- API ---

func TestHandleAPIEvaluate(t *testing.T) {
	s := setupTest(t)
	rec := s.do(t, http.MethodGet, "/api/evaluate?time=50&budget=25&quality=25", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var eval contract.Evaluation
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&eval))
	assert.Equal(t, 78, eval.Score)
	assert.Equal(t, domain.CategoryHighlyRealistic, eval.Category)
	assert.Len(t, eval.Factors, 3)
	assert.True(t, strings.HasPrefix(eval.ShareLink, "http://triad.test/?"))
}

func TestHandleAPIAdjust(t *testing.T) {
	s := setupTest(t)
	rec := s.do(t, http.MethodGet, "/api/adjust?field=time&value=70", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var eval contract.Evaluation
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&eval))
	assert.InDelta(t, 70, eval.State.Time, 1e-3)
	assert.Equal(t, domain.FactorTime, eval.LastChanged)
	assert.Less(t, eval.Score, 50)
}

func decodeEval(t *testing.T, rec *httptest.ResponseRecorder) contract.Evaluation {
	t.Helper()
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var eval contract.Evaluation
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&eval))
	return eval
}

// A drag feeds each response back as the next query. Once normalization has
// pushed a share below the slider minimum, the next move must still start
// from that state and not from the default triple.
func TestHandleAPIAdjust_ChainKeepsSharesBelowSliderMin(t *testing.T) {
	s := setupTest(t)
	moves := []struct {
		field domain.Factor
		value float64
	}{
		{domain.FactorTime, 90},
		{domain.FactorQuality, 90},
		{domain.FactorTime, 60},
	}

	want := domain.DefaultState()
	q := url.Values{}
	var eval contract.Evaluation
	for _, m := range moves {
		want = domain.Adjust(want, m.field, m.value)

		target := url.Values{}
		for k, v := range q {
			target[k] = v
		}
		target.Set("field", string(m.field))
		target.Set("value", strconv.FormatFloat(m.value, 'f', -1, 64))
		eval = decodeEval(t, s.do(t, http.MethodGet, "/api/adjust?"+target.Encode(), nil))

		q = url.Values{urlstate.CarriedParam: {"1"}}
		for _, f := range domain.Factors {
			q.Set(string(f), strconv.FormatFloat(eval.State.Get(f), 'f', 1, 64))
		}
	}

	assert.InDelta(t, want.Time, eval.State.Time, 0.5)
	assert.InDelta(t, want.Budget, eval.State.Budget, 0.5)
	assert.InDelta(t, want.Quality, eval.State.Quality, 0.5)
	assert.Less(t, eval.State.Budget, domain.SliderMin)
}

func TestHandleAPIEvaluate_CarriedQueryIsLenient(t *testing.T) {
	s := setupTest(t)
	const low = "time=33.3&budget=3.5&quality=63.2"

	strict := decodeEval(t, s.do(t, http.MethodGet, "/api/evaluate?"+low, nil))
	assert.InDelta(t, domain.DefaultState().Budget, strict.State.Budget, domain.Epsilon, "links opened from outside obey the slider domain")

	carried := decodeEval(t, s.do(t, http.MethodGet, "/api/evaluate?"+low+"&carried=1", nil))
	assert.InDelta(t, 3.5, carried.State.Budget, 0.01)
	assert.InDelta(t, 63.2, carried.State.Quality, 0.01)
}

func TestHandleAPIAdjust_Errors(t *testing.T) {
	s := setupTest(t)
	for _, target := range []string{
		"/api/adjust?field=time&value=abc",
		"/api/adjust?field=time&value=NaN",
		"/api/adjust?field=scope&value=10",
	} {
		rec := s.do(t, http.MethodGet, target, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)

		var payload struct {
			Error struct {
				Code   string `json:"code"`
				Status int    `json:"status"`
			} `json:"error"`
		}
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&payload), target)
		assert.Equal(t, string(ErrInvalidRequest), payload.Error.Code, target)
		assert.Equal(t, http.StatusBadRequest, payload.Error.Status, target)
	}
}

// --- Not found ---

func TestNotFound_Negotiation(t *testing.T) {
	s := setupTest(t)

	rec := s.do(t, http.MethodGet, "/nope", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "page not found: /nope")
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")

	rec = s.do(t, http.MethodGet, "/nope", nil, "Accept", "application/json")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), `"NOT_FOUND"`)
}

// --- Preferences ---

func TestHandlePreferences_SavesAndRedirects(t *testing.T) {
	s := setupTest(t)
	form := url.Values{
		"lang":   {"cs"},
		"theme":  {"dark"},
		"return": {"time=50.0&budget=25.0&quality=25.0&lang=en"},
	}
	req := httptest.NewRequest(http.MethodPost, "/preferences", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/?budget=25.0&quality=25.0&time=50.0", rec.Header().Get("Location"))

	p, err := s.prefs.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.LanguageCzech, p.Language)
	assert.Equal(t, domain.ThemeDark, p.Theme)

	page := s.do(t, http.MethodGet, "/", nil)
	assert.Contains(t, page.Body.String(), `<html lang="cs" data-theme="dark">`)
}

func TestHandlePreferences_RejectsUnknownLanguage(t *testing.T) {
	s := setupTest(t)
	req := httptest.NewRequest(http.MethodPost, "/preferences", strings.NewReader("lang=de"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStaticAssets(t *testing.T) {
	s := setupTest(t)
	rec := s.do(t, http.MethodGet, "/static/app.js", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "history.replaceState")
}

// --- Run ---

func TestRun_ServesUntilCancelled(t *testing.T) {
	s := setupTest(t)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	srv := &http.Server{Addr: ln.Addr().String(), Handler: s.handler}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Run(ctx, srv, ln, time.Second) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/api/evaluate")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
