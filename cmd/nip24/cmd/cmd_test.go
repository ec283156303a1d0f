package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/nip24-client/internal/cache"
	"github.com/rezonia/nip24-client/internal/client"
	"github.com/rezonia/nip24-client/internal/config"
	"github.com/rezonia/nip24-client/internal/logger"
	"github.com/rezonia/nip24-client/internal/model"
	"github.com/rezonia/nip24-client/internal/signature"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestValidateCommand(t *testing.T) {
	out, err := execute(t, "validate", "nip", "123-456-32-18", "--format", "json")
	require.NoError(t, err)

	var results []ValidationResult
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 1)
	assert.True(t, results[0].Valid)
	assert.Equal(t, "1234563218", results[0].Normalized)

	out, err = execute(t, "validate", "nip", "1234563218", "1234563219", "--format", "table")
	require.Error(t, err)
	assert.Contains(t, out, "✓ NIP 1234563218: VALID")
	assert.Contains(t, out, "✗ NIP 1234563219: INVALID")

	_, err = execute(t, "validate", "passport", "123", "--format", "json")
	require.Error(t, err)
}

func TestInfoCommand(t *testing.T) {
	out, err := execute(t, "info", "DE89370400440532013000", "--format", "json")
	require.NoError(t, err)

	var infos []NumberInfo
	require.NoError(t, json.Unmarshal([]byte(out), &infos))
	require.Len(t, infos, 1)
	assert.Equal(t, map[string]string{"IBAN": "DE89370400440532013000"}, infos[0].Kinds)
}

func TestCodesCommand(t *testing.T) {
	out, err := execute(t, "codes", "--format", "table")
	require.NoError(t, err)

	assert.Contains(t, out, "NIP_UNKNOWN")
	assert.Contains(t, out, "CLI_CONNECT")
}

func TestDecodeCommand(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "vat.xml")
	bad := filepath.Join(dir, "error.xml")
	require.NoError(t, os.WriteFile(good, []byte(`<result><vat><uid>uid-vat</uid><status>2</status></vat></result>`), 0o600))
	require.NoError(t, os.WriteFile(bad, []byte(`<result><error><code>2</code><description>unknown</description></error></result>`), 0o600))

	out, err := execute(t, "decode", good, "--format", "json")
	require.NoError(t, err)

	var results []DecodeResult
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 1)
	assert.Equal(t, "vat", results[0].Kind)

	out, err = execute(t, "decode", dir, "--format", "json")
	require.Error(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 2)
	assert.Equal(t, 2, results[0].Code)
	assert.Empty(t, results[1].Error)
}

func TestSignAndVerifyCommands(t *testing.T) {
	url := client.TestURL + "/check/account/status"

	out, err := execute(t, "sign", url, "--test", "--format", "json")
	require.NoError(t, err)

	var signed SignResult
	require.NoError(t, json.Unmarshal([]byte(out), &signed))
	assert.Contains(t, signed.Authorization, `id="`+client.TestID+`"`)
	assert.Contains(t, signed.UserAgent, "NIP24Client/"+signature.Version)

	out, err = execute(t, "verify", url, signed.Authorization, "--test", "--format", "table")
	require.NoError(t, err)
	assert.Contains(t, out, "MAC:       ✓")

	_, err = execute(t, "verify", url+"x", signed.Authorization, "--test", "--format", "table")
	require.Error(t, err)
}

func TestLookupCommand(t *testing.T) {
	verifier := signature.NewVerifier(signature.StaticKeys{client.TestID: client.TestKey})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := verifier.Verify(r.Header.Get("Authorization"), r.Method, "http://"+r.Host+r.URL.RequestURI()); err != nil {
			fmt.Fprint(w, `<result><error><code>55</code><description>bad mac</description></error></result>`)
			return
		}
		fmt.Fprint(w, `<result><firm><uid>uid-1</uid><nip>1234563218</nip><name>Firma</name></firm></result>`)
	}))
	defer srv.Close()

	out, err := execute(t, "invoice", "nip", "1234563218", "--test", "--url", srv.URL+"/api", "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"uid": "uid-1"`)

	_, err = execute(t, "invoice", "nip", "1234563219", "--test", "--url", srv.URL+"/api", "--format", "json")
	require.Error(t, err)
}

func TestOutputTable_AccountPrices(t *testing.T) {
	buf := new(bytes.Buffer)
	err := outputTable(buf, &model.AccountStatus{
		UID:               "acc-1",
		SubscriptionPrice: decimal.NewFromInt(49),
		ItemPrice:         decimal.RequireFromString("0.1"),
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "acc-1")
	assert.Regexp(t, `subscription_price\s+49\.00 PLN`, out)
	assert.Regexp(t, `item_price\s+0\.10 PLN`, out)
	assert.Regexp(t, `item_price_iban\s+0\.00 PLN`, out)
}

func TestNewCache_ReleaseClosesRedis(t *testing.T) {
	prevCfg, prevLog := cfg, log
	t.Cleanup(func() { cfg, log = prevCfg, prevLog })

	log = logger.Discard()
	cfg = &config.Config{}
	cfg.Service.CacheTTL = time.Minute
	cfg.Redis.URL = "redis://127.0.0.1:1/0"

	c, release := newCache()
	rc, ok := c.(*cache.RedisCache)
	require.True(t, ok)

	release()
	assert.Error(t, rc.Ping(context.Background()))

	cfg.Redis.URL = ""
	c, release = newCache()
	assert.IsType(t, &cache.MemoryCache{}, c)
	release()
}
