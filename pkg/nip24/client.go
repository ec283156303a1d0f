package nip24

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/rezonia/nip24-client/internal/cache"
	"github.com/rezonia/nip24-client/internal/client"
	"github.com/rezonia/nip24-client/internal/metrics"
)

// Service endpoints and the public test credentials
const (
	ProductionURL = client.ProductionURL
	TestURL       = client.TestURL
	TestID        = client.TestID
	TestKey       = client.TestKey
)

// Client is the NIP24 service client
type Client = client.Client

// Option configures a Client
type Option = client.Option

// Cache stores raw service answers between calls
type Cache = cache.Cache

// NewClient creates a client for the service at baseURL
func NewClient(baseURL, id, key string, opts ...Option) (*Client, error) {
	return client.New(baseURL, id, key, opts...)
}

// NewProductionClient creates a client for the production service
func NewProductionClient(id, key string, opts ...Option) (*Client, error) {
	return client.NewProduction(id, key, opts...)
}

// NewTestClient creates a client for the test service with its public key pair
func NewTestClient(opts ...Option) (*Client, error) {
	return client.NewTest(opts...)
}

// WithApp sets the application name prefixed to the User-Agent
func WithApp(app string) Option {
	return client.WithApp(app)
}

// WithHTTPClient sets the HTTP client used for requests
func WithHTTPClient(hc *http.Client) Option {
	return client.WithHTTPClient(hc)
}

// WithTimeout bounds each request
func WithTimeout(d time.Duration) Option {
	return client.WithTimeout(d)
}

// WithLogger sets the logger
func WithLogger(l *logrus.Logger) Option {
	return client.WithLogger(l)
}

// WithRateLimit throttles the client to perSecond requests
func WithRateLimit(perSecond float64, burst int) Option {
	return client.WithRateLimit(perSecond, burst)
}

// WithCache enables the response cache
func WithCache(c Cache) Option {
	return client.WithCache(c)
}

// WithMemoryCache enables an in-process response cache with the given TTL
func WithMemoryCache(ttl time.Duration) Option {
	return client.WithCache(cache.NewMemoryCache(ttl))
}

// WithMetrics registers Prometheus metrics on a fresh registry and returns
// an option recording into them with their HTTP handler
func WithMetrics() (Option, http.Handler) {
	m := metrics.New(nil)
	return client.WithMetrics(m), m.Handler()
}
