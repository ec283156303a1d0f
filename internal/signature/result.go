package signature

import "time"

// VerificationResult contains the outcome of checking a signed request
type VerificationResult struct {
	// Overall validity - true only if all checks pass
	Valid bool `json:"valid"`

	// Individual check results
	HeaderValid    bool `json:"header_valid"`
	KeyKnown       bool `json:"key_known"`
	TimestampValid bool `json:"timestamp_valid"`
	MACValid       bool `json:"mac_valid"`

	KeyID    string     `json:"key_id,omitempty"`
	Nonce    string     `json:"nonce,omitempty"`
	SignedAt *time.Time `json:"signed_at,omitempty"`

	// Errors (reasons for invalid result)
	Errors []string `json:"errors,omitempty"`
}

// NewVerificationResult creates a new empty result
func NewVerificationResult() *VerificationResult {
	return &VerificationResult{
		Errors: make([]string, 0),
	}
}

// AddError adds an error message and sets Valid to false
func (r *VerificationResult) AddError(msg string) {
	r.Errors = append(r.Errors, msg)
	r.Valid = false
}

// SetHeader records the parsed header fields
func (r *VerificationResult) SetHeader(h *Header) {
	if h == nil {
		return
	}
	r.HeaderValid = true
	r.KeyID = h.ID
	r.Nonce = h.Nonce
	signedAt := time.Unix(h.TS, 0).UTC()
	r.SignedAt = &signedAt
}

// ComputeValidity sets the Valid field based on individual check results
func (r *VerificationResult) ComputeValidity() {
	r.Valid = r.HeaderValid &&
		r.KeyKnown &&
		r.TimestampValid &&
		r.MACValid &&
		len(r.Errors) == 0
}
