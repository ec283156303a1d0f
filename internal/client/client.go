// Package client implements the NIP24 request orchestrator: it validates
// identifiers, signs requests, sends them through a transport and decodes
// the answers.
package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/rezonia/nip24-client/internal/cache"
	"github.com/rezonia/nip24-client/internal/logger"
	"github.com/rezonia/nip24-client/internal/metrics"
	"github.com/rezonia/nip24-client/internal/model"
	xmlparser "github.com/rezonia/nip24-client/internal/parser/xml"
	"github.com/rezonia/nip24-client/internal/signature"
	"github.com/rezonia/nip24-client/internal/transport"
)

// Service endpoints and the public test credentials
const (
	ProductionURL = "https://www.nip24.pl/api"
	TestURL       = "https://www.nip24.pl/api-test"
	TestID        = "test_id"
	TestKey       = "test_key"
)

// Client talks to the NIP24 service. It keeps no per-call state and is
// safe for concurrent use.
type Client struct {
	baseURL string
	id      string
	key     string
	app     string

	signer    *signature.Signer
	transport transport.Transport
	cache     cache.Cache
	metrics   *metrics.Metrics
	logger    *logrus.Logger
	clock     func() time.Time

	httpClient *http.Client
	timeout    time.Duration
	rateLimit  float64
	burst      int
}

// Option configures the client
type Option func(*Client)

// WithApp sets the application name prefixed to the User-Agent
func WithApp(app string) Option {
	return func(c *Client) {
		c.app = app
	}
}

// WithHTTPClient sets the HTTP client used by the default transport
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout bounds each request of the default transport
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithLogger sets the logger
func WithLogger(l *logrus.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// WithCache enables the response cache
func WithCache(cc cache.Cache) Option {
	return func(c *Client) {
		c.cache = cc
	}
}

// WithRateLimit throttles the default transport to perSecond requests
func WithRateLimit(perSecond float64, burst int) Option {
	return func(c *Client) {
		c.rateLimit = perSecond
		c.burst = burst
	}
}

// WithMetrics records request metrics
func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// WithSigner replaces the signer built from the key pair
func WithSigner(s *signature.Signer) Option {
	return func(c *Client) {
		c.signer = s
	}
}

// WithTransport replaces the HTTP transport
func WithTransport(t transport.Transport) Option {
	return func(c *Client) {
		c.transport = t
	}
}

// WithClock sets the clock used for the default date argument
func WithClock(clock func() time.Time) Option {
	return func(c *Client) {
		c.clock = clock
	}
}

// New creates a client for the service at baseURL using the key pair id/key
func New(baseURL, id, key string, opts ...Option) (*Client, error) {
	if baseURL == "" || id == "" || key == "" {
		return nil, model.ErrInput()
	}
	u, err := url.Parse(baseURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, model.NewClientError(model.ErrCLIInput, fmt.Errorf("invalid service url %q", baseURL))
	}

	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		id:      id,
		key:     key,
		clock:   time.Now,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.logger == nil {
		c.logger = logger.Discard()
	}
	if c.signer == nil {
		c.signer = signature.NewSigner(id, key)
	}
	if c.transport == nil {
		c.transport = c.defaultTransport()
	}

	return c, nil
}

// NewProduction creates a client for the production service
func NewProduction(id, key string, opts ...Option) (*Client, error) {
	return New(ProductionURL, id, key, opts...)
}

// NewTest creates a client for the test service with its public key pair
func NewTest(opts ...Option) (*Client, error) {
	return New(TestURL, TestID, TestKey, opts...)
}

func (c *Client) defaultTransport() transport.Transport {
	hc := c.httpClient
	if hc == nil {
		hc = &http.Client{Timeout: transport.DefaultTimeout}
	}
	if c.timeout > 0 {
		copied := *hc
		copied.Timeout = c.timeout
		hc = &copied
	}

	return transport.New(
		transport.WithHTTPClient(hc),
		transport.WithRateLimit(c.rateLimit, c.burst),
	)
}

// BaseURL returns the service base URL
func (c *Client) BaseURL() string {
	return c.baseURL
}

// UserAgent returns the User-Agent header sent with every request
func (c *Client) UserAgent() string {
	return signature.UserAgent(c.app)
}

// fetch sends GET <base>/<path> and parses the answer. Cacheable answers
// that carry no service error are stored under the service URL and path.
func (c *Client) fetch(ctx context.Context, op, path string, cacheable bool) (*xmlparser.Document, error) {
	key := cache.Key(c.baseURL, path)
	log := c.logger.WithFields(logrus.Fields{
		"operation": op,
		"path":      path,
	})

	if cacheable && c.cache != nil {
		if body, ok := c.cache.Get(ctx, key); ok {
			if doc, err := xmlparser.Parse(body); err == nil && doc.Err() == nil {
				c.metrics.IncrementCacheHits(op)
				log.Debug("Answer served from cache")
				return doc, nil
			}
		}
	}

	target := c.baseURL + "/" + path
	auth, err := c.signer.Sign(http.MethodGet, target)
	if err != nil {
		return nil, model.ErrConnect(err)
	}

	c.metrics.IncrementRequests(op)
	start := time.Now()
	body, err := c.transport.Get(ctx, &transport.Request{
		URL:           target,
		Authorization: auth,
		UserAgent:     c.UserAgent(),
	})
	elapsed := time.Since(start)
	c.metrics.ObserveDuration(op, elapsed)
	if err != nil {
		log.WithError(err).WithField("duration", elapsed).Debug("Request failed")
		return nil, err
	}
	log.WithFields(logrus.Fields{
		"duration": elapsed,
		"bytes":    len(body),
	}).Debug("Request completed")

	doc, err := xmlparser.Parse(body)
	if err != nil {
		return nil, err
	}

	if cacheable && c.cache != nil && doc.Err() == nil {
		if err := c.cache.Set(ctx, key, body); err != nil {
			log.WithError(err).Warn("Failed to cache answer")
		}
	}

	return doc, nil
}

// track counts failed operations
func (c *Client) track(op string, err *error) {
	if *err == nil {
		return
	}
	code := model.Code(*err)
	c.metrics.IncrementErrors(op, code)
	c.logger.WithFields(logrus.Fields{
		"operation": op,
		"code":      code,
	}).Debug(model.Message(*err))
}
