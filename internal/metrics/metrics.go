package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors of the service. A nil *Metrics
// records nothing.
type Metrics struct {
	registry *prometheus.Registry

	Submissions     *prometheus.CounterVec
	RateLimited     prometheus.Counter
	SessionsOpened  prometheus.Counter
	SessionsEvicted prometheus.Counter
	RequestDuration *prometheus.HistogramVec
}

// New creates the collectors on a private registry together with the Go
// runtime and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,
		Submissions: f.NewCounterVec(prometheus.CounterOpts{
			Name: "registro_submissions_total",
			Help: "Registration submissions by outcome",
		}, []string{"outcome"}),
		RateLimited: f.NewCounter(prometheus.CounterOpts{
			Name: "registro_rate_limited_total",
			Help: "Requests denied by the rate limiter",
		}),
		SessionsOpened: f.NewCounter(prometheus.CounterOpts{
			Name: "registro_sessions_opened_total",
			Help: "Registration screens opened",
		}),
		SessionsEvicted: f.NewCounter(prometheus.CounterOpts{
			Name: "registro_sessions_evicted_total",
			Help: "Registration screens dropped for idleness or capacity",
		}),
		RequestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "registro_http_request_duration_seconds",
			Help:    "HTTP request latency by route and status",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) IncSubmission(outcome string) {
	if m != nil {
		m.Submissions.WithLabelValues(outcome).Inc()
	}
}

func (m *Metrics) IncRateLimited() {
	if m != nil {
		m.RateLimited.Inc()
	}
}

func (m *Metrics) IncSessionsOpened() {
	if m != nil {
		m.SessionsOpened.Inc()
	}
}

func (m *Metrics) IncSessionsEvicted() {
	if m != nil {
		m.SessionsEvicted.Inc()
	}
}

// ObserveRequest records one handled request. An empty route is reported as
// "unmatched" to bound label cardinality.
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	m.RequestDuration.WithLabelValues(method, route, statusLabel(status)).Observe(elapsed.Seconds())
}

func statusLabel(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
