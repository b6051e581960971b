package httpapi

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/blockmail/core/handler"
	"github.com/dmitrymomot/blockmail/core/health"
	"github.com/dmitrymomot/blockmail/core/mailer"
	"github.com/dmitrymomot/blockmail/core/preview"
	"github.com/dmitrymomot/blockmail/core/response"
)

const (
	DefaultMaxBodyBytes   = 2 << 20
	DefaultRequestTimeout = 30 * time.Second
)

// API serves the render, preview and send endpoints.
type API struct {
	mailer   *mailer.Service
	previews preview.Store
	log      *slog.Logger
	baseURL  string
	maxBody  int64
	timeout  time.Duration
	onError  handler.ErrorHandler
	checks   []health.Check
}

// Option configures an API.
type Option func(*API)

// WithLogger sets the request and error logger.
func WithLogger(l *slog.Logger) Option {
	return func(a *API) {
		if l != nil {
			a.log = l
		}
	}
}

// WithBaseURL sets the public origin used in preview links.
// Without it, links are relative.
func WithBaseURL(baseURL string) Option {
	return func(a *API) { a.baseURL = strings.TrimRight(baseURL, "/") }
}

// WithMaxBodyBytes limits request bodies. Default 2 MiB.
func WithMaxBodyBytes(n int64) Option {
	return func(a *API) {
		if n > 0 {
			a.maxBody = n
		}
	}
}

// WithRequestTimeout bounds request handling time. Default 30s.
func WithRequestTimeout(d time.Duration) Option {
	return func(a *API) {
		if d > 0 {
			a.timeout = d
		}
	}
}

// WithReadinessChecks adds dependency checks to GET /health/ready.
func WithReadinessChecks(checks ...health.Check) Option {
	return func(a *API) { a.checks = append(a.checks, checks...) }
}

// New creates an API. previews may be nil, in which case the preview
// endpoints answer 501.
func New(m *mailer.Service, previews preview.Store, opts ...Option) *API {
	a := &API{
		mailer:   m,
		previews: previews,
		log:      slog.New(slog.DiscardHandler),
		maxBody:  DefaultMaxBodyBytes,
		timeout:  DefaultRequestTimeout,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.onError = a.logErrors(response.JSONErrorHandler(errorRules...))
	return a
}

// Router returns the HTTP handler with all routes mounted.
func (a *API) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(a.logRequests)
	r.Use(middleware.Recoverer)

	r.NotFound(a.wrap(func(*http.Request) handler.Response { return response.Error(response.ErrNotFound) }))
	r.MethodNotAllowed(a.wrap(func(*http.Request) handler.Response { return response.Error(response.ErrMethodNotAllowed) }))

	r.Get("/health", a.wrap(health.Liveness))
	r.Get("/health/ready", a.wrap(health.Readiness(a.log, a.checks...)))

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(a.timeout))
		r.Use(a.limitBody)

		r.Post("/render", a.wrap(a.render))
		r.Post("/send", a.wrap(a.send))
		r.Route("/previews", func(r chi.Router) {
			r.Post("/", a.wrap(a.createPreview))
			r.Get("/{id}", a.wrap(a.getPreview))
		})
	})

	return r
}

func (a *API) wrap(h handler.HandlerFunc) http.HandlerFunc {
	return handler.Wrap(h, a.onError)
}

func (a *API) limitBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, a.maxBody)
		next.ServeHTTP(w, r)
	})
}
