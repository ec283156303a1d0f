package signature

import (
	"fmt"

	"github.com/rezonia/nip24-client/internal/model"
)

// Error codes for request signing and verification
const (
	ErrCodeInvalidURL  = "INVALID_URL"
	ErrCodeRandom      = "RANDOM_UNAVAILABLE"
	ErrCodeMalformed   = "MALFORMED_HEADER"
	ErrCodeUnknownKey  = "UNKNOWN_KEY"
	ErrCodeTimestamp   = "TIMESTAMP_SKEW"
	ErrCodeMACMismatch = "MAC_MISMATCH"
)

// SignatureError represents request signing and verification errors
type SignatureError struct {
	Code    string
	Field   string
	Message string
	Cause   error
}

func (e *SignatureError) Error() string {
	if e.Field != "" && e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %s (%v)", e.Code, e.Field, e.Message, e.Cause)
	}
	if e.Field != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.Field, e.Message)
	}
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s (%v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *SignatureError) Unwrap() error {
	return e.Cause
}

// ServiceCode maps a verification failure to the error code the NIP24
// service reports for it
func (e *SignatureError) ServiceCode() int {
	switch e.Code {
	case ErrCodeTimestamp:
		return model.ErrAuthTimestamp
	case ErrCodeUnknownKey:
		return model.ErrDBAuthKeyIDValue
	default:
		return model.ErrAuthMAC
	}
}

// NewSignatureError creates a new signature error
func NewSignatureError(code, field, message string, cause error) *SignatureError {
	return &SignatureError{
		Code:    code,
		Field:   field,
		Message: message,
		Cause:   cause,
	}
}

// ErrInvalidURL returns error when the request URL cannot be decomposed
func ErrInvalidURL(rawURL string, cause error) *SignatureError {
	return NewSignatureError(ErrCodeInvalidURL, "url", fmt.Sprintf("cannot parse request URL %q", rawURL), cause)
}

// ErrRandom returns error when no nonce could be generated
func ErrRandom(cause error) *SignatureError {
	return NewSignatureError(ErrCodeRandom, "nonce", "random source unavailable", cause)
}

// ErrMalformed returns error for an Authorization header that is not a MAC header
func ErrMalformed(reason string) *SignatureError {
	return NewSignatureError(ErrCodeMalformed, "authorization", reason, nil)
}

// ErrUnknownKey returns error when the header names a key id the verifier does not hold
func ErrUnknownKey(id string) *SignatureError {
	return NewSignatureError(ErrCodeUnknownKey, "id", fmt.Sprintf("unknown key id: %s", id), nil)
}

// ErrTimestamp returns error when the signed timestamp is outside the allowed skew
func ErrTimestamp(ts int64) *SignatureError {
	return NewSignatureError(ErrCodeTimestamp, "ts", fmt.Sprintf("timestamp %d outside allowed window", ts), nil)
}

// ErrMACMismatch returns error when the recomputed MAC differs from the header
func ErrMACMismatch() *SignatureError {
	return NewSignatureError(ErrCodeMACMismatch, "mac", "MAC does not match request", nil)
}
