package httpapi

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/registro/internal/metrics"
	"github.com/dmitrymomot/registro/internal/registration"
	"github.com/dmitrymomot/registro/pkg/clientip"
	"github.com/dmitrymomot/registro/pkg/httpserver"
	"github.com/dmitrymomot/registro/pkg/logger"
	"github.com/dmitrymomot/registro/pkg/ratelimiter"
	"github.com/dmitrymomot/registro/pkg/requestid"
)

// Config holds HTTP surface settings.
type Config struct {
	SessionTTL        time.Duration `env:"SESSION_TTL" envDefault:"30m"`           // SessionTTL drops registration screens idle for longer.
	MaxSessions       int           `env:"MAX_SESSIONS" envDefault:"10000"`        // MaxSessions bounds open screens; the least recently used is dropped.
	MaxBodyBytes      int64         `env:"HTTP_MAX_BODY_BYTES" envDefault:"65536"` // MaxBodyBytes bounds request bodies.
	TrustProxyHeaders bool          `env:"TRUST_PROXY_HEADERS" envDefault:"false"` // TrustProxyHeaders reads the client IP from forwarding headers.
	ExposeUsers       bool          `env:"EXPOSE_USERS" envDefault:"false"`        // ExposeUsers mounts the masked, rate limited GET /users listing.
}

// API serves registration screens over HTTP.
type API struct {
	store     registration.UserStore
	sessions  *sessions
	directory *registration.Controller
	log       *slog.Logger
	homeRoute string
	ready     []func(context.Context) error
	cfg       Config
	limiter   *ratelimiter.Limiter
	clients   clientip.Resolver
	metrics   *metrics.Metrics
}

// Option configures an API.
type Option func(*API)

// WithLogger sets the API logger.
func WithLogger(log *slog.Logger) Option {
	return func(a *API) {
		if log != nil {
			a.log = log
		}
	}
}

// WithHomeRoute sets the redirect returned after a successful registration.
func WithHomeRoute(route string) Option {
	return func(a *API) {
		if route != "" {
			a.homeRoute = route
		}
	}
}

// WithReadinessChecks adds checks run by /health/ready.
func WithReadinessChecks(checks ...func(context.Context) error) Option {
	return func(a *API) {
		a.ready = append(a.ready, checks...)
	}
}

// WithRateLimiter limits opening and submitting screens per client IP.
func WithRateLimiter(l *ratelimiter.Limiter) Option {
	return func(a *API) {
		a.limiter = l
	}
}

// WithMetrics records request and registration metrics and serves them on
// /metrics.
func WithMetrics(m *metrics.Metrics) Option {
	return func(a *API) {
		a.metrics = m
	}
}

// WithConfig overrides session and body limits.
func WithConfig(cfg Config) Option {
	return func(a *API) {
		a.cfg.ExposeUsers = cfg.ExposeUsers
		if cfg.TrustProxyHeaders {
			a.clients = clientip.New(clientip.ProxyHeaders...)
		}
		if cfg.SessionTTL > 0 {
			a.cfg.SessionTTL = cfg.SessionTTL
		}
		if cfg.MaxSessions > 0 {
			a.cfg.MaxSessions = cfg.MaxSessions
		}
		if cfg.MaxBodyBytes > 0 {
			a.cfg.MaxBodyBytes = cfg.MaxBodyBytes
		}
	}
}

// New builds the API around store.
func New(store registration.UserStore, opts ...Option) *API {
	a := &API{
		store:     store,
		log:       logger.Discard(),
		homeRoute: registration.DefaultHomeRoute,
		cfg:       Config{SessionTTL: 30 * time.Minute, MaxSessions: 10_000, MaxBodyBytes: 64 << 10},
		clients:   clientip.New(),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.log = a.log.With(logger.Component("httpapi"))
	a.sessions = newSessions(a.cfg.MaxSessions, a.cfg.SessionTTL, time.Now, a.newController, a.metrics.IncSessionsEvicted)
	a.directory = a.newController()
	return a
}

func (a *API) newController() *registration.Controller {
	return registration.NewController(registration.NewForm(), a.store, presenter{}, navigator{},
		registration.WithLogger(a.log),
		registration.WithHomeRoute(a.homeRoute),
	)
}

// Handler returns the router.
func (a *API) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(a.clients.Middleware)
	r.Use(middleware.Recoverer)
	r.Use(a.logRequests)

	limited := a.limit()
	r.Route("/registration", func(r chi.Router) {
		r.Get("/schema", a.schema)
		r.With(limited).Post("/sessions", a.openSession)
		r.Route("/sessions/{id}", func(r chi.Router) {
			r.Get("/", a.getSession)
			r.Delete("/", a.closeSession)
			r.Put("/fields/{field}", a.setField)
			r.With(limited).Post("/submit", a.submit)
		})
	})
	if a.cfg.ExposeUsers {
		r.With(limited).Get("/users", a.listUsers)
	}

	r.Get("/health/live", httpserver.HealthCheckHandler(a.log))
	r.Get("/health/ready", httpserver.HealthCheckHandler(a.log, a.ready...))
	if a.metrics != nil {
		r.Method(http.MethodGet, "/metrics", a.metrics.Handler())
	}

	return r
}

func (a *API) limit() func(http.Handler) http.Handler {
	if a.limiter == nil {
		return func(next http.Handler) http.Handler { return next }
	}
	deny := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		a.metrics.IncRateLimited()
		a.log.WarnContext(r.Context(), "rate limit exceeded", slog.String("path", r.URL.Path))
		writeError(w, http.StatusTooManyRequests, &ErrorDetail{
			Code:    CodeRateLimited,
			Message: http.StatusText(http.StatusTooManyRequests),
		}, nil)
	})
	return ratelimiter.Middleware(a.limiter, a.clients.Key, deny)
}

func (a *API) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		elapsed := time.Since(start)
		var route string
		if rc := chi.RouteContext(r.Context()); rc != nil {
			route = rc.RoutePattern()
		}
		a.metrics.ObserveRequest(r.Method, route, ww.Status(), elapsed)
		a.log.DebugContext(r.Context(), "request handled",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			logger.Duration(elapsed),
		)
	})
}
