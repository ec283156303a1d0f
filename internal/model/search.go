package model

import (
	"encoding/json"
	"time"
)

// ResultsType identifies the variant held by SearchResult.Results
type ResultsType int

const (
	ResultVATEntity ResultsType = 1
)

func (t ResultsType) String() string {
	switch t {
	case ResultVATEntity:
		return "vat_entity"
	default:
		return "unknown"
	}
}

// SearchResults is the union of result lists a search can return.
// VATEntities is currently the only variant.
type SearchResults interface {
	Type() ResultsType
	Len() int
	searchResults()
}

// VATEntities is the result list of a VAT registry search
type VATEntities []VATEntity

func (VATEntities) Type() ResultsType { return ResultVATEntity }
func (v VATEntities) Len() int        { return len(v) }
func (VATEntities) searchResults()    {}

// SearchResult is the answer of a registry search
type SearchResult struct {
	UID     string
	Results SearchResults

	ID     string
	Date   time.Time
	Source string
}

// Type reports which variant Results holds
func (r *SearchResult) Type() ResultsType {
	if r.Results == nil {
		return 0
	}
	return r.Results.Type()
}

// VATEntities returns the VAT entity list, or nil when Results holds another variant
func (r *SearchResult) VATEntities() VATEntities {
	if v, ok := r.Results.(VATEntities); ok {
		return v
	}
	return nil
}

type searchResultJSON struct {
	UID         string        `json:"uid"`
	ResultsType string        `json:"results_type"`
	Results     SearchResults `json:"results"`
	ID          string        `json:"id,omitempty"`
	Date        time.Time     `json:"date"`
	Source      string        `json:"source,omitempty"`
}

// MarshalJSON tags the results list with its variant name
func (r SearchResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(searchResultJSON{
		UID:         r.UID,
		ResultsType: r.Type().String(),
		Results:     r.Results,
		ID:          r.ID,
		Date:        r.Date,
		Source:      r.Source,
	})
}

// VATEntity is a company entry in the VAT registry
type VATEntity struct {
	Name  string `json:"name"`
	NIP   string `json:"nip"`
	REGON string `json:"regon,omitempty"`
	KRS   string `json:"krs,omitempty"`

	ResidenceAddress string `json:"residence_address,omitempty"`
	WorkingAddress   string `json:"working_address,omitempty"`

	VATStatus int    `json:"vat_status"`
	VATResult string `json:"vat_result,omitempty"`

	Representatives  []VATPerson `json:"representatives,omitempty"`
	AuthorizedClerks []VATPerson `json:"authorized_clerks,omitempty"`
	Partners         []VATPerson `json:"partners,omitempty"`

	IBANs              []string `json:"ibans,omitempty"`
	HasVirtualAccounts bool     `json:"has_virtual_accounts"`

	RegistrationLegalDate   time.Time `json:"registration_legal_date"`
	RegistrationDenialDate  time.Time `json:"registration_denial_date"`
	RegistrationDenialBasis string    `json:"registration_denial_basis,omitempty"`
	RestorationDate         time.Time `json:"restoration_date"`
	RestorationBasis        string    `json:"restoration_basis,omitempty"`
	RemovalDate             time.Time `json:"removal_date"`
	RemovalBasis            string    `json:"removal_basis,omitempty"`
}

// VATPerson is a representative, clerk or partner of a VAT entity
type VATPerson struct {
	NIP         string `json:"nip"`
	CompanyName string `json:"company_name,omitempty"`
	FirstName   string `json:"first_name,omitempty"`
	LastName    string `json:"last_name,omitempty"`
}
