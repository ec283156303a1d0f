package model

import (
	"strconv"
	"strings"
)

// Number identifies the kind of business identifier passed to the service
type Number int

const (
	NIP   Number = 1
	REGON Number = 2
	KRS   Number = 3
	EUVAT Number = 4
	IBAN  Number = 5
)

// Numbers lists every supported identifier kind in ordinal order
var Numbers = []Number{NIP, REGON, KRS, EUVAT, IBAN}

// String returns the display name of the identifier kind
func (n Number) String() string {
	switch n {
	case NIP:
		return "NIP"
	case REGON:
		return "REGON"
	case KRS:
		return "KRS"
	case EUVAT:
		return "EUVAT"
	case IBAN:
		return "IBAN"
	default:
		return "unknown"
	}
}

// Segment returns the URL path segment used by the service for this kind
func (n Number) Segment() string {
	if !n.Valid() {
		return ""
	}
	return strings.ToLower(n.String())
}

// Valid reports whether n is one of the known identifier kinds
func (n Number) Valid() bool {
	return n >= NIP && n <= IBAN
}

// ParseNumber maps a kind name ("nip", "EUVAT") or ordinal ("1") to a Number
func ParseNumber(s string) (Number, bool) {
	s = strings.TrimSpace(s)
	if i, err := strconv.Atoi(s); err == nil {
		n := Number(i)
		return n, n.Valid()
	}

	switch strings.ToLower(s) {
	case "nip":
		return NIP, true
	case "regon":
		return REGON, true
	case "krs":
		return KRS, true
	case "euvat", "eu-vat", "vat":
		return EUVAT, true
	case "iban":
		return IBAN, true
	}
	return 0, false
}
