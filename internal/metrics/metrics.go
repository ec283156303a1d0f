package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus metrics of the registry client.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	Requests        *prometheus.CounterVec
	Errors          *prometheus.CounterVec
	CacheHits       *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
}

// New creates and registers all metrics on reg, or on a fresh registry when reg is nil
func New(reg *prometheus.Registry) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		Requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "nip24_requests_total",
			Help: "Total number of requests sent to the NIP24 service",
		}, []string{"operation"}),
		Errors: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "nip24_errors_total",
			Help: "Total number of failed operations by error code",
		}, []string{"operation", "code"}),
		CacheHits: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "nip24_cache_hits_total",
			Help: "Total number of answers served from the response cache",
		}, []string{"operation"}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "nip24_request_duration_seconds",
			Help:    "Duration of requests sent to the NIP24 service",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation"}),
	}
}

// IncrementRequests counts one request sent for operation
func (m *Metrics) IncrementRequests(operation string) {
	if m == nil {
		return
	}
	m.Requests.WithLabelValues(operation).Inc()
}

// IncrementErrors counts one failed operation with its error code
func (m *Metrics) IncrementErrors(operation string, code int) {
	if m == nil {
		return
	}
	m.Errors.WithLabelValues(operation, strconv.Itoa(code)).Inc()
}

// IncrementCacheHits counts one answer served from the cache
func (m *Metrics) IncrementCacheHits(operation string) {
	if m == nil {
		return
	}
	m.CacheHits.WithLabelValues(operation).Inc()
}

// ObserveDuration records the duration of one request
func (m *Metrics) ObserveDuration(operation string, d time.Duration) {
	if m == nil {
		return
	}
	m.RequestDuration.WithLabelValues(operation).Observe(d.Seconds())
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
