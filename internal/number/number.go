// Package number normalizes and validates the business identifiers
// accepted by the NIP24 service: NIP, REGON, KRS, EU VAT ID and IBAN.
//
// Normalization strips the characters that carry no meaning for the
// identifier kind and returns ok=false when no canonical form exists.
// Validation normalizes first and then applies the kind's structural and
// checksum rules. Neither function panics on any input.
package number

import (
	"strings"

	"github.com/rezonia/nip24-client/internal/model"
)

// Normalize returns the canonical form of raw for the given kind
func Normalize(kind model.Number, raw string) (string, bool) {
	switch kind {
	case model.NIP:
		return NormalizeNIP(raw)
	case model.REGON:
		return NormalizeREGON(raw)
	case model.KRS:
		return NormalizeKRS(raw)
	case model.EUVAT:
		return NormalizeEUVAT(raw)
	case model.IBAN:
		return NormalizeIBAN(raw)
	default:
		return "", false
	}
}

// IsValid reports whether raw is a valid identifier of the given kind
func IsValid(kind model.Number, raw string) bool {
	switch kind {
	case model.NIP:
		return IsValidNIP(raw)
	case model.REGON:
		return IsValidREGON(raw)
	case model.KRS:
		return IsValidKRS(raw)
	case model.EUVAT:
		return IsValidEUVAT(raw)
	case model.IBAN:
		return IsValidIBAN(raw)
	default:
		return false
	}
}

// Detect returns every kind for which raw is a valid identifier
func Detect(raw string) []model.Number {
	var kinds []model.Number
	for _, kind := range model.Numbers {
		if IsValid(kind, raw) {
			kinds = append(kinds, kind)
		}
	}
	return kinds
}

// keepDigits returns only the ASCII digits of s
func keepDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if isDigit(s[i]) {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// keepAlnum returns the ASCII letters and digits of s, upper-cased,
// plus any byte listed in extra.
func keepAlnum(s, extra string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case isDigit(c), c >= 'A' && c <= 'Z':
			b.WriteByte(c)
		case c >= 'a' && c <= 'z':
			b.WriteByte(c - 'a' + 'A')
		case strings.IndexByte(extra, c) >= 0:
			b.WriteByte(c)
		}
	}
	return b.String()
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// weightedSum multiplies the leading digits of num by weights and sums them
func weightedSum(num string, weights []int) int {
	sum := 0
	for i, w := range weights {
		sum += int(num[i]-'0') * w
	}
	return sum
}
