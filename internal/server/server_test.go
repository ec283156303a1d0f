package server_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/nip24-client/internal/config"
	"github.com/rezonia/nip24-client/internal/metrics"
	"github.com/rezonia/nip24-client/internal/model"
	"github.com/rezonia/nip24-client/internal/server"
)

// stubService answers every lookup with canned values
type stubService struct {
	err      error
	panicMsg string

	lastKind model.Number
	lastNum  string
	lastIBAN string
	lastDate time.Time
}

func (s *stubService) record(kind model.Number, num string) {
	if s.panicMsg != "" {
		panic(s.panicMsg)
	}
	s.lastKind = kind
	s.lastNum = num
}

func (s *stubService) IsActive(_ context.Context, kind model.Number, num string) (bool, error) {
	s.record(kind, num)
	return s.err == nil, s.err
}

func (s *stubService) GetInvoiceData(_ context.Context, kind model.Number, num string) (*model.InvoiceData, error) {
	s.record(kind, num)
	if s.err != nil {
		return nil, s.err
	}
	return &model.InvoiceData{UID: "uid-1", NIP: "1234563218", Name: "Firma"}, nil
}

func (s *stubService) GetAllData(_ context.Context, kind model.Number, num string) (*model.AllData, error) {
	s.record(kind, num)
	if s.err != nil {
		return nil, s.err
	}
	return &model.AllData{UID: "uid-all"}, nil
}

func (s *stubService) GetVIESData(_ context.Context, euvat string) (*model.VIESData, error) {
	s.record(model.EUVAT, euvat)
	if s.err != nil {
		return nil, s.err
	}
	return &model.VIESData{UID: "uid-vies", Valid: true}, nil
}

func (s *stubService) GetVATStatus(_ context.Context, kind model.Number, num string) (*model.VATStatus, error) {
	s.record(kind, num)
	if s.err != nil {
		return nil, s.err
	}
	return &model.VATStatus{UID: "uid-vat", Status: model.VATStatusActive}, nil
}

func (s *stubService) GetIBANStatus(_ context.Context, kind model.Number, num, iban string, date time.Time) (*model.IBANStatus, error) {
	s.record(kind, num)
	s.lastIBAN = iban
	s.lastDate = date
	if s.err != nil {
		return nil, s.err
	}
	return &model.IBANStatus{UID: "uid-iban", Valid: true}, nil
}

func (s *stubService) GetWhitelistStatus(_ context.Context, kind model.Number, num, iban string, date time.Time) (*model.WLStatus, error) {
	s.record(kind, num)
	s.lastIBAN = iban
	s.lastDate = date
	if s.err != nil {
		return nil, s.err
	}
	return &model.WLStatus{UID: "uid-wl", Valid: true}, nil
}

func (s *stubService) SearchVATRegistry(_ context.Context, kind model.Number, num string, date time.Time) (*model.SearchResult, error) {
	s.record(kind, num)
	s.lastDate = date
	if s.err != nil {
		return nil, s.err
	}
	return &model.SearchResult{UID: "uid-search", Results: model.VATEntities{{NIP: "1234563218"}}}, nil
}

func (s *stubService) GetAccountStatus(_ context.Context) (*model.AccountStatus, error) {
	s.record(0, "")
	if s.err != nil {
		return nil, s.err
	}
	return &model.AccountStatus{UID: "uid-account"}, nil
}

func newTestServer(svc server.Service, opts ...server.Option) *server.Server {
	cfg := &server.Config{
		Address: ":8080",
	}
	return server.NewServer(cfg, svc, opts...)
}

func get(t *testing.T, srv *server.Server, path string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) server.ErrorResponse {
	t.Helper()

	var resp server.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(&stubService{})

	w := get(t, srv, "/health")
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

	assert.Equal(t, "ok", response["status"])
	assert.NotEmpty(t, response["time"])
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRequestIDPassthrough(t *testing.T) {
	srv := newTestServer(&stubService{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "req-42")
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, "req-42", w.Header().Get("X-Request-ID"))
}

func TestMetricsEndpoint(t *testing.T) {
	m := metrics.New(nil)
	m.IncrementRequests("invoice_data")
	srv := newTestServer(&stubService{}, server.WithMetrics(m))

	w := get(t, srv, "/metrics")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "nip24_requests_total")

	w = get(t, newTestServer(&stubService{}), "/metrics")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestValidateEndpoint(t *testing.T) {
	srv := newTestServer(&stubService{})

	tests := []struct {
		path       string
		status     int
		valid      bool
		normalized string
	}{
		{"/api/v1/validate/nip/123-456-32-18", http.StatusOK, true, "1234563218"},
		{"/api/v1/validate/nip/1234563219", http.StatusOK, false, ""},
		{"/api/v1/validate/krs/12345", http.StatusOK, true, "0000012345"},
		{"/api/v1/validate/iban/PL61109010140000071219812874", http.StatusOK, true, "PL61109010140000071219812874"},
		{"/api/v1/validate/bogus/1234563218", http.StatusBadRequest, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := get(t, srv, tt.path)
			require.Equal(t, tt.status, w.Code)
			if tt.status != http.StatusOK {
				assert.Equal(t, model.ErrCLIInput, decodeError(t, w).Code)
				return
			}

			var resp server.ValidationResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.valid, resp.Valid)
			assert.Equal(t, tt.normalized, resp.Normalized)
		})
	}
}

func TestLookupEndpoints(t *testing.T) {
	svc := &stubService{}
	srv := newTestServer(svc)

	tests := []struct {
		path string
		uid  string
		kind model.Number
		num  string
	}{
		{"/api/v1/invoice/nip/1234563218", "uid-1", model.NIP, "1234563218"},
		{"/api/v1/all/regon/123456785", "uid-all", model.REGON, "123456785"},
		{"/api/v1/vat/euvat/PL1234563218", "uid-vat", model.EUVAT, "PL1234563218"},
		{"/api/v1/vies/DE123456789", "uid-vies", model.EUVAT, "DE123456789"},
		{"/api/v1/iban/nip/1234563218/PL61109010140000071219812874", "uid-iban", model.NIP, "1234563218"},
		{"/api/v1/whitelist/1/1234563218/PL61109010140000071219812874", "uid-wl", model.NIP, "1234563218"},
		{"/api/v1/search/krs/12345", "uid-search", model.KRS, "12345"},
		{"/api/v1/account", "uid-account", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := get(t, srv, tt.path)
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
			assert.Contains(t, w.Body.String(), `"`+tt.uid+`"`)
			assert.Equal(t, tt.kind, svc.lastKind)
			assert.Equal(t, tt.num, svc.lastNum)
		})
	}
}

func TestActiveEndpoint(t *testing.T) {
	srv := newTestServer(&stubService{})

	w := get(t, srv, "/api/v1/active/nip/1234563218")
	require.Equal(t, http.StatusOK, w.Code)

	var resp server.ActiveResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Active)
}

func TestDateQuery(t *testing.T) {
	svc := &stubService{}
	srv := newTestServer(svc)

	w := get(t, srv, "/api/v1/whitelist/nip/1234563218/PL61109010140000071219812874?date=2024-05-01")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "PL61109010140000071219812874", svc.lastIBAN)
	assert.Equal(t, "2024-05-01", svc.lastDate.Format("2006-01-02"))

	w = get(t, srv, "/api/v1/search/nip/1234563218")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, svc.lastDate.IsZero())

	w = get(t, srv, "/api/v1/iban/nip/1234563218/PL61109010140000071219812874?date=01.05.2024")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, model.ErrCLIDateFormat, decodeError(t, w).Code)
}

func TestErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"invalid input", model.ErrInput(), http.StatusBadRequest},
		{"invalid NIP", model.ErrInvalidNumber(model.NIP), http.StatusBadRequest},
		{"unknown firm", model.NewServiceError(model.ErrNIPUnknown, "not found"), http.StatusNotFound},
		{"service error", model.NewServiceError(model.ErrAuthMAC, "bad mac"), http.StatusUnprocessableEntity},
		{"connect", model.ErrConnect(nil), http.StatusBadGateway},
		{"response", model.ErrResponse(nil), http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(&stubService{err: tt.err})

			w := get(t, srv, "/api/v1/invoice/nip/1234563218")
			require.Equal(t, tt.status, w.Code)

			resp := decodeError(t, w)
			assert.Equal(t, model.Code(tt.err), resp.Code)
			assert.Equal(t, model.Message(tt.err), resp.Error)
		})
	}
}

func TestUnknownKind(t *testing.T) {
	svc := &stubService{}
	srv := newTestServer(svc)

	w := get(t, srv, "/api/v1/all/passport/ABC123")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "CLI_INPUT", decodeError(t, w).Name)
	assert.Empty(t, svc.lastNum, "service not called")
}

func TestDecodeEndpoint(t *testing.T) {
	srv := newTestServer(&stubService{})

	body := `<?xml version="1.0" encoding="UTF-8"?>
<result><vat><uid>uid-vat</uid><nip>1234563218</nip><status>2</status><result>Czynny</result></vat></result>`

	req := httptest.NewRequest(http.MethodPost, "/api/v1/decode", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/xml")
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Kind   string          `json:"kind"`
		Result model.VATStatus `json:"result"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "vat", resp.Kind)
	assert.Equal(t, "uid-vat", resp.Result.UID)
	assert.Equal(t, model.VATStatusActive, resp.Result.Status)
}

func TestDecodeEndpoint_Errors(t *testing.T) {
	srv := newTestServer(&stubService{})

	tests := []struct {
		name   string
		body   string
		status int
		code   int
	}{
		{"empty body", "", http.StatusBadRequest, model.ErrCLIInput},
		{"not xml", "hello", http.StatusBadGateway, model.ErrCLIResponse},
		{"service error", `<result><error><code>7</code><description>bad</description></error></result>`, http.StatusUnprocessableEntity, model.ErrNIPBad},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/decode", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			srv.Handler().ServeHTTP(w, req)

			require.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.code, decodeError(t, w).Code)
		})
	}
}

func TestRecovery(t *testing.T) {
	srv := newTestServer(&stubService{panicMsg: "boom"})

	w := get(t, srv, "/api/v1/account")
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, model.ErrCLIException, decodeError(t, w).Code)
}

func TestRateLimit(t *testing.T) {
	cfg := &server.Config{
		RateLimit: config.RateLimitConfig{RequestsPerMinute: 1, BurstSize: 2},
	}
	srv := server.NewServer(cfg, &stubService{})

	for i := 0; i < 2; i++ {
		w := get(t, srv, "/health")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "1", w.Header().Get("X-RateLimit-Limit"))
	}

	w := get(t, srv, "/health")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
}

func TestRateLimit_PerClient(t *testing.T) {
	cfg := &server.Config{
		RateLimit: config.RateLimitConfig{RequestsPerMinute: 1, BurstSize: 1},
	}
	srv := server.NewServer(cfg, &stubService{})

	request := func(addr string) int {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.RemoteAddr = addr
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, request("10.0.0.1:1000"))
	assert.Equal(t, http.StatusTooManyRequests, request("10.0.0.1:1001"))
	assert.Equal(t, http.StatusOK, request("10.0.0.2:1000"))
}

func TestRateLimiter_ActiveClients(t *testing.T) {
	rl := server.NewRateLimiter(config.RateLimitConfig{RequestsPerMinute: 60})
	assert.Equal(t, 0, rl.ActiveClients())
}
