package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/alexanderramin/triad/internal/domain"
	"github.com/alexanderramin/triad/internal/i18n"
	"github.com/alexanderramin/triad/internal/logging"
	"github.com/alexanderramin/triad/internal/service"
	"golang.org/x/sync/errgroup"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static/*
var staticFS embed.FS

// Options configures the web surface.
type Options struct {
	Catalog *i18n.Catalog
	// Preferences may be nil; Defaults are used then.
	Preferences service.PreferencesService
	Defaults    domain.Preferences
	// Language, when set, overrides both the query and stored preferences.
	Language domain.Language
	// BaseURL is the share link base. Empty means derive it from the request.
	BaseURL   string
	Observers []service.UseCaseObserver
	Logger    *slog.Logger
}

// NewHandler builds the routed handler wrapped with security headers.
func NewHandler(opts Options) (http.Handler, error) {
	templateSub, err := fs.Sub(templateFS, "templates")
	if err != nil {
		return nil, fmt.Errorf("template sub-FS: %w", err)
	}
	staticSub, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("static sub-FS: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = logging.New("web")
	}
	catalog := opts.Catalog
	if catalog == nil {
		catalog = i18n.Default()
	}

	h := &Handlers{
		catalog:   catalog,
		prefs:     opts.Preferences,
		defaults:  opts.Defaults.Sanitize(),
		language:  opts.Language,
		baseURL:   opts.BaseURL,
		observers: opts.Observers,
		renderer:  NewRenderer(templateSub, logger),
		logger:    logger,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.HandleIndex)
	mux.HandleFunc("GET /adjust", h.HandleAdjust)
	mux.HandleFunc("GET /api/evaluate", h.HandleAPIEvaluate)
	mux.HandleFunc("GET /api/adjust", h.HandleAPIAdjust)
	mux.HandleFunc("POST /preferences", h.HandlePreferences)
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(staticSub)))
	mux.HandleFunc("/", h.HandleNotFound)

	return securityHeaders(logRequests(logger, mux)), nil
}

// NewServer creates the HTTP server for the simulator page.
func NewServer(addr string, opts Options) (*http.Server, error) {
	handler, err := NewHandler(opts)
	if err != nil {
		return nil, err
	}
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}, nil
}

// securityHeaders adds security-related HTTP headers to all responses.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Security-Policy", "default-src 'self'; script-src 'self'; style-src 'self'")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "same-origin")
		next.ServeHTTP(w, r)
	})
}

func logRequests(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logger.Debug("request", "method", r.Method, "path", r.URL.Path, "duration_ms", time.Since(start).Milliseconds())
	})
}

// Run serves on ln until ctx is cancelled, then shuts down gracefully within
// shutdownTimeout.
func Run(ctx context.Context, srv *http.Server, ln net.Listener, shutdownTimeout time.Duration) error {
	logger := logging.New("web")
	logger.Info("serving", "addr", ln.Addr().String())
	if strings.HasPrefix(srv.Addr, "0.0.0.0") || strings.HasPrefix(srv.Addr, ":") {
		logger.Warn("server is binding to all interfaces and may be reachable from the network")
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serving: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down: %w", err)
		}
		logger.Info("stopped")
		return nil
	})
	return g.Wait()
}

// ListenAndRun binds srv.Addr and calls Run.
func ListenAndRun(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration) error {
	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", srv.Addr, err)
	}
	return Run(ctx, srv, ln, shutdownTimeout)
}
