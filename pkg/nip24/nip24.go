// Package nip24 provides a public API for the NIP24 Polish company and
// tax registry service.
//
// This package exposes the result types, identifier validation and the
// signed HTTP client.
//
// Example usage:
//
//	client, err := nip24.NewTestClient(nip24.WithApp("Shop/1.0"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	data, err := client.GetInvoiceData(ctx, nip24.NIP, "7171642051")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(data.Name)
package nip24

import (
	"github.com/rezonia/nip24-client/internal/model"
	"github.com/rezonia/nip24-client/internal/number"
)

// Re-export core types for public API
type (
	Number          = model.Number
	InvoiceData     = model.InvoiceData
	AllData         = model.AllData
	CodeName        = model.CodeName
	BusinessPartner = model.BusinessPartner
	PKD             = model.PKD
	VIESData        = model.VIESData
	VATStatus       = model.VATStatus
	IBANStatus      = model.IBANStatus
	WLStatus        = model.WLStatus
	SearchResult    = model.SearchResult
	SearchResults   = model.SearchResults
	ResultsType     = model.ResultsType
	VATEntities     = model.VATEntities
	VATEntity       = model.VATEntity
	VATPerson       = model.VATPerson
	AccountStatus   = model.AccountStatus
)

// Re-export identifier kinds
const (
	NIP   = model.NIP
	REGON = model.REGON
	KRS   = model.KRS
	EUVAT = model.EUVAT
	IBAN  = model.IBAN
)

// Re-export VAT payer status values
const (
	VATStatusNotRegistered = model.VATStatusNotRegistered
	VATStatusActive        = model.VATStatusActive
	VATStatusExempted      = model.VATStatusExempted
)

// Re-export search result variants
const (
	ResultVATEntity = model.ResultVATEntity
)

// Re-export error types
type (
	ServiceError = model.ServiceError
	ClientError  = model.ClientError
)

// ParseNumber maps a kind name or ordinal to a Number
func ParseNumber(s string) (Number, bool) {
	return model.ParseNumber(s)
}

// IsValid reports whether raw is a valid identifier of the given kind
func IsValid(kind Number, raw string) bool {
	return number.IsValid(kind, raw)
}

// Normalize returns the canonical form of raw as an identifier of kind
func Normalize(kind Number, raw string) (string, bool) {
	return number.Normalize(kind, raw)
}

// Detect returns every kind raw is a valid identifier of
func Detect(raw string) []Number {
	return number.Detect(raw)
}

// ErrorCode returns the numeric service or client code carried by err, or -1
func ErrorCode(err error) int {
	return model.Code(err)
}

// ErrorMessage returns the description carried by err
func ErrorMessage(err error) string {
	return model.Message(err)
}

// ErrorName returns the symbolic name of an error code, such as "NIP_UNKNOWN"
func ErrorName(code int) string {
	return model.ErrorName(code)
}

// IsNotFound reports whether the service did not find the requested entity
func IsNotFound(err error) bool {
	return model.IsServiceError(err, model.ErrNIPUnknown)
}
