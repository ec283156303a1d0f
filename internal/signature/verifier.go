package signature

import (
	"crypto/hmac"
	"errors"
	"time"
)

// DefaultMaxSkew is the allowed distance between the signed timestamp and the verifier clock
const DefaultMaxSkew = 5 * time.Minute

// KeyStore resolves a key id to its secret
type KeyStore interface {
	Lookup(id string) (string, bool)
}

// StaticKeys is a KeyStore backed by a map of id to secret
type StaticKeys map[string]string

// Lookup returns the secret for id
func (k StaticKeys) Lookup(id string) (string, bool) {
	key, ok := k[id]
	return key, ok
}

// Verifier checks MAC Authorization headers the way the service does.
// It backs the local verify command and the fake service used in tests.
type Verifier struct {
	keys    KeyStore
	maxSkew time.Duration
	clock   func() time.Time
}

// VerifierOption configures the verifier
type VerifierOption func(*Verifier)

// WithMaxSkew sets the allowed timestamp skew; zero disables the check
func WithMaxSkew(d time.Duration) VerifierOption {
	return func(v *Verifier) {
		v.maxSkew = d
	}
}

// WithVerifierClock sets the time source the timestamp is compared against
func WithVerifierClock(clock func() time.Time) VerifierOption {
	return func(v *Verifier) {
		v.clock = clock
	}
}

// NewVerifier creates a verifier over the given keys
func NewVerifier(keys KeyStore, opts ...VerifierOption) *Verifier {
	v := &Verifier{
		keys:    keys,
		maxSkew: DefaultMaxSkew,
		clock:   time.Now,
	}

	for _, opt := range opts {
		opt(v)
	}

	return v
}

// Verify checks the header against the request and returns the first failure
func (v *Verifier) Verify(authorization, method, rawURL string) error {
	h, err := ParseHeader(authorization)
	if err != nil {
		return err
	}

	t, err := parseTarget(rawURL)
	if err != nil {
		return err
	}

	key, ok := v.keys.Lookup(h.ID)
	if !ok {
		return ErrUnknownKey(h.ID)
	}

	if v.maxSkew > 0 {
		skew := v.clock().Sub(time.Unix(h.TS, 0))
		if skew < 0 {
			skew = -skew
		}
		if skew > v.maxSkew {
			return ErrTimestamp(h.TS)
		}
	}

	want := computeMAC(key, canonical(h.TS, h.Nonce, method, t))
	if !hmac.Equal([]byte(want), []byte(h.MAC)) {
		return ErrMACMismatch()
	}

	return nil
}

// Check runs Verify and reports every check in a VerificationResult
func (v *Verifier) Check(authorization, method, rawURL string) *VerificationResult {
	result := NewVerificationResult()

	h, err := ParseHeader(authorization)
	if err != nil {
		result.AddError(err.Error())
		return result
	}
	result.SetHeader(h)

	err = v.Verify(authorization, method, rawURL)
	if err == nil {
		result.KeyKnown = true
		result.TimestampValid = true
		result.MACValid = true
		result.ComputeValidity()
		return result
	}

	result.AddError(err.Error())

	var sigErr *SignatureError
	if !errors.As(err, &sigErr) {
		return result
	}
	switch sigErr.Code {
	case ErrCodeTimestamp:
		result.KeyKnown = true
	case ErrCodeMACMismatch:
		result.KeyKnown = true
		result.TimestampValid = true
	}

	return result
}
