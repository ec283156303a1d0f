package nip24_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/nip24-client/pkg/nip24"
)

func TestNewClients(t *testing.T) {
	c, err := nip24.NewTestClient(nip24.WithApp("Shop/1.0"), nip24.WithTimeout(5*time.Second))
	require.NoError(t, err)
	assert.Equal(t, nip24.TestURL, c.BaseURL())

	c, err = nip24.NewProductionClient("id", "key")
	require.NoError(t, err)
	assert.Equal(t, nip24.ProductionURL, c.BaseURL())

	_, err = nip24.NewClient("", "id", "key")
	require.Error(t, err)
	assert.Equal(t, 211, nip24.ErrorCode(err))
	assert.Equal(t, "CLI_INPUT", nip24.ErrorName(nip24.ErrorCode(err)))
}

func TestValidation(t *testing.T) {
	assert.True(t, nip24.IsValid(nip24.NIP, "717-164-20-51"))
	assert.False(t, nip24.IsValid(nip24.NIP, "7171642052"))

	n, ok := nip24.Normalize(nip24.KRS, "12345")
	require.True(t, ok)
	assert.Equal(t, "0000012345", n)

	kind, ok := nip24.ParseNumber("euvat")
	require.True(t, ok)
	assert.Equal(t, nip24.EUVAT, kind)

	assert.Equal(t, []nip24.Number{nip24.IBAN}, nip24.Detect("DE89370400440532013000"))
}

func TestClientAgainstStubService(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.Header.Get("Authorization"), `MAC id="`+nip24.TestID+`"`) {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		switch r.URL.Path {
		case "/api/get/vies/euvat/PL7171642051":
			fmt.Fprint(w, `<result><vies><uid>uid-vies</uid><countryCode>PL</countryCode><valid>true</valid></vies></result>`)
		default:
			fmt.Fprint(w, `<result><error><code>2</code><description>Nie znaleziono</description></error></result>`)
		}
	}))
	defer srv.Close()

	opt, handler := nip24.WithMetrics()
	c, err := nip24.NewClient(srv.URL+"/api", nip24.TestID, nip24.TestKey, opt, nip24.WithMemoryCache(time.Minute))
	require.NoError(t, err)

	ctx := context.Background()
	for i := 0; i < 2; i++ {
		data, err := c.GetVIESData(ctx, "PL7171642051")
		require.NoError(t, err)
		assert.True(t, data.Valid)
		assert.Equal(t, "PL", data.CountryCode)
	}

	_, err = c.GetInvoiceData(ctx, nip24.NIP, "7171642051")
	require.Error(t, err)
	assert.True(t, nip24.IsNotFound(err))
	assert.Equal(t, "Nie znaleziono", nip24.ErrorMessage(err))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, rec.Body.String(), `nip24_cache_hits_total{operation="vies_data"} 1`)
}
