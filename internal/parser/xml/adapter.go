package xml

import (
	"context"
	"fmt"
	"strings"

	"github.com/rezonia/nip24-client/internal/model"
)

// Kind names the payload carried by a response document
type Kind string

const (
	KindInvoiceData Kind = "invoice"
	KindAllData     Kind = "all"
	KindVIESData    Kind = "vies"
	KindVATStatus   Kind = "vat"
	KindIBANStatus  Kind = "iban"
	KindWhitelist   Kind = "whitelist"
	KindSearch      Kind = "search"
	KindAccount     Kind = "account"
)

// Kinds lists every payload kind in detection order
var Kinds = []Kind{
	KindAllData,
	KindInvoiceData,
	KindVIESData,
	KindVATStatus,
	KindIBANStatus,
	KindWhitelist,
	KindSearch,
	KindAccount,
}

// ParseKind maps a case-insensitive kind name to a Kind
func ParseKind(s string) (Kind, bool) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Kinds {
		if k == known {
			return k, true
		}
	}
	return "", false
}

// Adapter decodes one kind of response document
type Adapter interface {
	// Decode decodes the document into its result record
	Decode(doc *Document) (any, error)

	// CanDecode returns true if the adapter recognises the document
	CanDecode(doc *Document) bool

	// Kind returns the payload kind
	Kind() Kind
}

type adapter[T any] struct {
	kind   Kind
	detect func(doc *Document) bool
	decode func(doc *Document) (*T, error)
}

func (a *adapter[T]) Decode(doc *Document) (any, error) {
	v, err := a.decode(doc)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (a *adapter[T]) CanDecode(doc *Document) bool {
	return a.detect(doc)
}

func (a *adapter[T]) Kind() Kind {
	return a.kind
}

func rootIs(tag string) func(*Document) bool {
	return func(doc *Document) bool {
		return doc.RootTag() == tag
	}
}

// Invoice data and the full record share the firm element; the full
// record is recognised by fields the invoice answer never carries.
func isAllData(doc *Document) bool {
	if doc.RootTag() != "firm" {
		return false
	}
	for _, field := range []string{"regon", "type", "registryEntity", "PKDs", "creationDate"} {
		if doc.Exists(firmPath + field) {
			return true
		}
	}
	return false
}

// Registry holds all registered adapters
type Registry struct {
	adapters []Adapter
}

// NewRegistry creates registry with all adapters
// Order matters: the full firm record must be tried before invoice data
func NewRegistry() *Registry {
	return &Registry{
		adapters: []Adapter{
			&adapter[model.AllData]{kind: KindAllData, detect: isAllData, decode: DecodeAllData},
			&adapter[model.InvoiceData]{kind: KindInvoiceData, detect: rootIs("firm"), decode: DecodeInvoiceData},
			&adapter[model.VIESData]{kind: KindVIESData, detect: rootIs("vies"), decode: DecodeVIESData},
			&adapter[model.VATStatus]{kind: KindVATStatus, detect: rootIs("vat"), decode: DecodeVATStatus},
			&adapter[model.IBANStatus]{kind: KindIBANStatus, detect: rootIs("iban"), decode: DecodeIBANStatus},
			&adapter[model.WLStatus]{kind: KindWhitelist, detect: rootIs("whitelist"), decode: DecodeWhitelistStatus},
			&adapter[model.SearchResult]{kind: KindSearch, detect: rootIs("search"), decode: DecodeSearchResult},
			&adapter[model.AccountStatus]{kind: KindAccount, detect: rootIs("account"), decode: DecodeAccountStatus},
		},
	}
}

// Detect identifies the payload kind of a document
func (r *Registry) Detect(doc *Document) (Adapter, error) {
	for _, a := range r.adapters {
		if a.CanDecode(doc) {
			return a, nil
		}
	}
	return nil, model.ErrResponse(fmt.Errorf("unknown result element %q", doc.RootTag()))
}

// Decode parses a stored response and decodes it with the matching
// adapter. A document carrying a service error returns that error.
func (r *Registry) Decode(ctx context.Context, content []byte) (Kind, any, error) {
	if err := ctx.Err(); err != nil {
		return "", nil, err
	}

	doc, err := Parse(content)
	if err != nil {
		return "", nil, err
	}
	if err := doc.Err(); err != nil {
		return "", nil, err
	}

	a, err := r.Detect(doc)
	if err != nil {
		return "", nil, err
	}

	result, err := a.Decode(doc)
	if err != nil {
		return a.Kind(), nil, err
	}
	return a.Kind(), result, nil
}

// DecodeAs decodes a stored response as the given kind without detection
func (r *Registry) DecodeAs(kind Kind, content []byte) (any, error) {
	a := r.GetAdapter(kind)
	if a == nil {
		return nil, model.ErrResponse(fmt.Errorf("unknown result kind %q", kind))
	}

	doc, err := Parse(content)
	if err != nil {
		return nil, err
	}
	return a.Decode(doc)
}

// RegisterAdapter adds a custom adapter to the registry
func (r *Registry) RegisterAdapter(a Adapter) {
	// Add at the beginning so custom adapters take priority
	r.adapters = append([]Adapter{a}, r.adapters...)
}

// GetAdapter returns adapter for a specific kind
func (r *Registry) GetAdapter(kind Kind) Adapter {
	for _, a := range r.adapters {
		if a.Kind() == kind {
			return a
		}
	}
	return nil
}
