package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/nip24-client/internal/metrics"
)

func TestMetrics_Counters(t *testing.T) {
	m := metrics.New(nil)

	m.IncrementRequests("vat")
	m.IncrementRequests("vat")
	m.IncrementErrors("vat", 2)
	m.IncrementCacheHits("all")
	m.ObserveDuration("vat", 150*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Requests.WithLabelValues("vat")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Errors.WithLabelValues("vat", "2")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CacheHits.WithLabelValues("all")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.RequestDuration))
}

func TestMetrics_SeparateRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		metrics.New(prometheus.NewRegistry())
		metrics.New(prometheus.NewRegistry())
	})
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *metrics.Metrics
	assert.NotPanics(t, func() {
		m.IncrementRequests("vat")
		m.IncrementErrors("vat", 201)
		m.IncrementCacheHits("vat")
		m.ObserveDuration("vat", time.Second)
	})
}

func TestMetrics_Handler(t *testing.T) {
	m := metrics.New(nil)
	m.IncrementRequests("account")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `nip24_requests_total{operation="account"} 1`)
}
