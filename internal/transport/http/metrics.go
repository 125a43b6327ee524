package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus instruments for the HTTP surface
type Metrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	redirectsTotal  prometheus.Counter
	linksCreated    prometheus.Counter
}

// NewMetrics creates and registers the HTTP metrics on reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		requestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "linkd_http_requests_total",
			Help: "Total HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "linkd_http_request_duration_seconds",
			Help:    "HTTP request latency by route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		redirectsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "linkd_redirects_total",
			Help: "Successful redirects served.",
		}),
		linksCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "linkd_links_created_total",
			Help: "Links created.",
		}),
	}
}

// RedirectServed counts one successful redirect
func (m *Metrics) RedirectServed() {
	m.redirectsTotal.Inc()
}

// LinkCreated counts one created link
func (m *Metrics) LinkCreated() {
	m.linksCreated.Inc()
}

// statusRecorder captures the status code written by a handler
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Instrument wraps next, recording request counts and latency under the given
// route label
func (m *Metrics) Instrument(route string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		m.requestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(rec.status)).Inc()
		m.requestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	})
}
