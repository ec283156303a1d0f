package signature_test

import (
	"bytes"
	"errors"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/nip24-client/internal/model"
	"github.com/rezonia/nip24-client/internal/signature"
)

var fixedTime = time.Unix(1700000000, 0)

func fixedClock() time.Time { return fixedTime }

func newSigner(nonce []byte) *signature.Signer {
	return signature.NewSigner("test-id", "secret",
		signature.WithClock(fixedClock),
		signature.WithRandom(bytes.NewReader(nonce)),
	)
}

func TestSigner_Sign_KnownVector(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{
			name: "https default port",
			url:  "https://www.nip24.pl/api/check/firm/nip/1234563218",
			want: `MAC id="test-id", ts="1700000000", nonce="01020304", mac="rMFDVTjA96v2n6hTh1Ceumfn3vQl7zw+MaKoAQMReQA="`,
		},
		{
			name: "explicit port",
			url:  "http://localhost:8080/api/get/account",
			want: `MAC id="test-id", ts="1700000000", nonce="01020304", mac="KENXuD0QuerqsL9RmyiGwNTL4pi6Sed+jLUHBeE6XgQ="`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := newSigner([]byte{1, 2, 3, 4}).Sign("GET", tt.url)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSigner_Sign_FreshNonce(t *testing.T) {
	s := signature.NewSigner("id", "key", signature.WithClock(fixedClock))
	url := "https://www.nip24.pl/api/get/account"

	first, err := s.Sign("GET", url)
	require.NoError(t, err)
	second, err := s.Sign("GET", url)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)

	h, err := signature.ParseHeader(first)
	require.NoError(t, err)
	assert.Len(t, h.Nonce, 2*signature.NonceSize)
}

func TestSigner_Sign_Errors(t *testing.T) {
	_, err := newSigner([]byte{1, 2}).Sign("GET", "https://www.nip24.pl/api")
	var sigErr *signature.SignatureError
	require.True(t, errors.As(err, &sigErr))
	assert.Equal(t, signature.ErrCodeRandom, sigErr.Code)

	_, err = newSigner([]byte{1, 2, 3, 4}).Sign("GET", "/relative/path")
	require.True(t, errors.As(err, &sigErr))
	assert.Equal(t, signature.ErrCodeInvalidURL, sigErr.Code)

	_, err = newSigner([]byte{1, 2, 3, 4}).Sign("GET", "ftp://www.nip24.pl/api")
	require.True(t, errors.As(err, &sigErr))
	assert.Equal(t, signature.ErrCodeInvalidURL, sigErr.Code)
}

func TestUserAgent(t *testing.T) {
	assert.Equal(t, "NIP24Client/1.4.2 Go/"+runtime.GOOS, signature.UserAgent(""))
	assert.Equal(t, "MyApp/1.0 NIP24Client/1.4.2 Go/"+runtime.GOOS, signature.UserAgent("MyApp/1.0"))
}

func TestParseHeader(t *testing.T) {
	h, err := signature.ParseHeader(`MAC id="abc", ts="42", nonce="deadbeef", mac="Zm9v+/=="`)
	require.NoError(t, err)
	assert.Equal(t, &signature.Header{ID: "abc", TS: 42, Nonce: "deadbeef", MAC: "Zm9v+/=="}, h)
	assert.Equal(t, `MAC id="abc", ts="42", nonce="deadbeef", mac="Zm9v+/=="`, h.String())

	malformed := []string{
		"",
		`Bearer token`,
		`MAC id="abc", ts="42", nonce="deadbeef"`,
		`MAC id="abc", ts="soon", nonce="deadbeef", mac="x"`,
		`MAC id=abc, ts="42", nonce="deadbeef", mac="x"`,
	}
	for _, value := range malformed {
		_, err := signature.ParseHeader(value)
		assert.Error(t, err, value)
	}
}

func TestVerifier_RoundTrip(t *testing.T) {
	url := "https://www.nip24.pl/api/get/vat/nip/1234563218"
	header, err := newSigner([]byte{9, 9, 9, 9}).Sign("GET", url)
	require.NoError(t, err)

	v := signature.NewVerifier(signature.StaticKeys{"test-id": "secret"},
		signature.WithVerifierClock(func() time.Time { return fixedTime.Add(time.Minute) }),
	)

	assert.NoError(t, v.Verify(header, "GET", url))

	result := v.Check(header, "GET", url)
	assert.True(t, result.Valid)
	assert.Equal(t, "test-id", result.KeyID)
	assert.Equal(t, "09090909", result.Nonce)
	require.NotNil(t, result.SignedAt)
	assert.Equal(t, fixedTime.UTC(), *result.SignedAt)
}

func TestVerifier_Failures(t *testing.T) {
	url := "https://www.nip24.pl/api/get/account"
	header, err := newSigner([]byte{1, 2, 3, 4}).Sign("GET", url)
	require.NoError(t, err)

	tests := []struct {
		name        string
		verifier    *signature.Verifier
		header      string
		url         string
		wantCode    string
		serviceCode int
	}{
		{
			name:        "wrong key",
			verifier:    signature.NewVerifier(signature.StaticKeys{"test-id": "other"}, signature.WithVerifierClock(fixedClock)),
			header:      header,
			url:         url,
			wantCode:    signature.ErrCodeMACMismatch,
			serviceCode: model.ErrAuthMAC,
		},
		{
			name:        "other path",
			verifier:    signature.NewVerifier(signature.StaticKeys{"test-id": "secret"}, signature.WithVerifierClock(fixedClock)),
			header:      header,
			url:         strings.Replace(url, "account", "accounts", 1),
			wantCode:    signature.ErrCodeMACMismatch,
			serviceCode: model.ErrAuthMAC,
		},
		{
			name:        "unknown id",
			verifier:    signature.NewVerifier(signature.StaticKeys{"someone": "secret"}, signature.WithVerifierClock(fixedClock)),
			header:      header,
			url:         url,
			wantCode:    signature.ErrCodeUnknownKey,
			serviceCode: model.ErrDBAuthKeyIDValue,
		},
		{
			name: "stale timestamp",
			verifier: signature.NewVerifier(signature.StaticKeys{"test-id": "secret"},
				signature.WithVerifierClock(func() time.Time { return fixedTime.Add(time.Hour) })),
			header:      header,
			url:         url,
			wantCode:    signature.ErrCodeTimestamp,
			serviceCode: model.ErrAuthTimestamp,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.verifier.Verify(tt.header, "GET", tt.url)

			var sigErr *signature.SignatureError
			require.True(t, errors.As(err, &sigErr))
			assert.Equal(t, tt.wantCode, sigErr.Code)
			assert.Equal(t, tt.serviceCode, sigErr.ServiceCode())

			result := tt.verifier.Check(tt.header, "GET", tt.url)
			assert.False(t, result.Valid)
			assert.NotEmpty(t, result.Errors)
		})
	}
}

func TestVerifier_SkewDisabled(t *testing.T) {
	url := "https://www.nip24.pl/api/get/account"
	header, err := newSigner([]byte{1, 2, 3, 4}).Sign("GET", url)
	require.NoError(t, err)

	v := signature.NewVerifier(signature.StaticKeys{"test-id": "secret"},
		signature.WithMaxSkew(0),
		signature.WithVerifierClock(func() time.Time { return fixedTime.Add(48 * time.Hour) }),
	)
	assert.NoError(t, v.Verify(header, "GET", url))
}
