package transport_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/nip24-client/internal/model"
	"github.com/rezonia/nip24-client/internal/transport"
)

func TestGet_SendsHeaders(t *testing.T) {
	var got http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		_, _ = w.Write([]byte("<result/>"))
	}))
	defer srv.Close()

	tr := transport.New(transport.WithHTTPClient(srv.Client()))
	body, err := tr.Get(context.Background(), &transport.Request{
		URL:           srv.URL + "/check/firm/nip/1234563218",
		Authorization: "MAC id=\"x\"",
		UserAgent:     "app NIP24Client/1.4.2",
	})

	require.NoError(t, err)
	assert.Equal(t, "<result/>", string(body))
	assert.Equal(t, "application/xml", got.Get("Accept"))
	assert.Equal(t, "MAC id=\"x\"", got.Get("Authorization"))
	assert.Equal(t, "app NIP24Client/1.4.2", got.Get("User-Agent"))
}

func TestGet_Failures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		ctx     func() context.Context
	}{
		{
			name: "non-200 status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "boom", http.StatusInternalServerError)
			},
			ctx: context.Background,
		},
		{
			name: "not found",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.NotFound(w, r)
			},
			ctx: context.Background,
		},
		{
			name: "cancelled context",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("<result/>"))
			},
			ctx: func() context.Context {
				ctx, cancel := context.WithCancel(context.Background())
				cancel()
				return ctx
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			tr := transport.New(transport.WithHTTPClient(srv.Client()))
			_, err := tr.Get(tt.ctx(), &transport.Request{URL: srv.URL})

			require.Error(t, err)
			assert.Equal(t, model.ErrCLIConnect, model.Code(err))
		})
	}
}

func TestGet_InvalidURL(t *testing.T) {
	tr := transport.New()
	_, err := tr.Get(context.Background(), &transport.Request{URL: "://bad"})

	require.Error(t, err)
	assert.Equal(t, model.ErrCLIConnect, model.Code(err))
}

func TestGet_BodyIsCapped(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("a", 9<<20)))
	}))
	defer srv.Close()

	tr := transport.New(transport.WithHTTPClient(srv.Client()))
	body, err := tr.Get(context.Background(), &transport.Request{URL: srv.URL})

	require.NoError(t, err)
	assert.Len(t, body, 8<<20)
}

func TestWithRateLimit(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		_, _ = w.Write([]byte("<result/>"))
	}))
	defer srv.Close()

	tr := transport.New(
		transport.WithHTTPClient(srv.Client()),
		transport.WithRateLimit(0.001, 1),
	)

	_, err := tr.Get(context.Background(), &transport.Request{URL: srv.URL})
	require.NoError(t, err)

	// the single token is spent, so the next wait cannot finish before the deadline
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err = tr.Get(ctx, &transport.Request{URL: srv.URL})
	require.Error(t, err)
	assert.Equal(t, model.ErrCLIConnect, model.Code(err))
	assert.Equal(t, 1, calls)
}

func TestWithRateLimit_DisabledByZeroRate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<result/>"))
	}))
	defer srv.Close()

	tr := transport.New(
		transport.WithHTTPClient(srv.Client()),
		transport.WithRateLimit(0, 0),
	)

	for i := 0; i < 5; i++ {
		_, err := tr.Get(context.Background(), &transport.Request{URL: srv.URL})
		require.NoError(t, err)
	}
}
