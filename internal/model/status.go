package model

import "time"

// VIESData is the VIES answer for an EU VAT ID
type VIESData struct {
	UID string `json:"uid"`

	CountryCode string `json:"country_code"`
	VATNumber   string `json:"vat_number"`
	Valid       bool   `json:"valid"`

	TraderName        string `json:"trader_name,omitempty"`
	TraderCompanyType string `json:"trader_company_type,omitempty"`
	TraderAddress     string `json:"trader_address,omitempty"`

	ID     string    `json:"id,omitempty"`
	Date   time.Time `json:"date"`
	Source string    `json:"source,omitempty"`
}

// VATStatus is the VAT taxpayer status of a company
type VATStatus struct {
	UID string `json:"uid"`

	NIP   string `json:"nip"`
	REGON string `json:"regon,omitempty"`
	Name  string `json:"name,omitempty"`

	Status int    `json:"status"`
	Result string `json:"result,omitempty"`

	ID     string    `json:"id,omitempty"`
	Date   time.Time `json:"date"`
	Source string    `json:"source,omitempty"`
}

// VAT taxpayer status values
const (
	VATStatusNotRegistered = 1
	VATStatusActive        = 2
	VATStatusExempted      = 3
)

// IBANStatus tells whether a bank account belongs to a company
type IBANStatus struct {
	UID string `json:"uid"`

	NIP   string `json:"nip"`
	REGON string `json:"regon,omitempty"`
	IBAN  string `json:"iban"`
	Valid bool   `json:"valid"`

	ID     string    `json:"id,omitempty"`
	Date   time.Time `json:"date"`
	Source string    `json:"source,omitempty"`
}

// WLStatus is the VAT whitelist check of a company bank account
type WLStatus struct {
	UID string `json:"uid"`

	NIP     string `json:"nip"`
	IBAN    string `json:"iban"`
	Valid   bool   `json:"valid"`
	Virtual bool   `json:"virtual"`

	Status int    `json:"status"`
	Result string `json:"result,omitempty"`

	HashIndex int `json:"hash_index"`
	MaskIndex int `json:"mask_index"`

	Date   time.Time `json:"date"`
	Source string    `json:"source,omitempty"`
}
