// Package transport performs the HTTP exchange with the NIP24 service.
package transport

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/rezonia/nip24-client/internal/model"
)

// DefaultTimeout bounds one request when no HTTP client is supplied
const DefaultTimeout = 60 * time.Second

// maxBodySize caps the response body read into memory
const maxBodySize = 8 << 20

// Request is one signed GET
type Request struct {
	URL           string
	Authorization string
	UserAgent     string
}

// Transport sends a request and returns the response body
type Transport interface {
	Get(ctx context.Context, req *Request) ([]byte, error)
}

// HTTPTransport is the net/http implementation of Transport
type HTTPTransport struct {
	client  *http.Client
	limiter *rate.Limiter
}

// Option configures the transport
type Option func(*HTTPTransport)

// WithHTTPClient sets the underlying HTTP client
func WithHTTPClient(c *http.Client) Option {
	return func(t *HTTPTransport) {
		t.client = c
	}
}

// WithRateLimit throttles requests to perSecond with the given burst.
// A non-positive rate disables throttling.
func WithRateLimit(perSecond float64, burst int) Option {
	return func(t *HTTPTransport) {
		if perSecond <= 0 {
			t.limiter = nil
			return
		}
		if burst < 1 {
			burst = 1
		}
		t.limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
	}
}

// New creates an HTTP transport
func New(opts ...Option) *HTTPTransport {
	t := &HTTPTransport{
		client: &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Get performs the request. Any failure to obtain a 200 response is a
// connect error.
func (t *HTTPTransport) Get(ctx context.Context, req *Request) ([]byte, error) {
	if t.limiter != nil {
		if err := t.limiter.Wait(ctx); err != nil {
			return nil, model.ErrConnect(fmt.Errorf("rate limiter: %w", err))
		}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, req.URL, nil)
	if err != nil {
		return nil, model.ErrConnect(err)
	}
	httpReq.Header.Set("Accept", "application/xml")
	httpReq.Header.Set("Authorization", req.Authorization)
	httpReq.Header.Set("User-Agent", req.UserAgent)

	resp, err := t.client.Do(httpReq)
	if err != nil {
		return nil, model.ErrConnect(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// drain so the connection can be reused
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodySize))
		return nil, model.ErrConnect(fmt.Errorf("unexpected HTTP status %d", resp.StatusCode))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, model.ErrConnect(err)
	}
	return body, nil
}
