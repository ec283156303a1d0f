package model

import "time"

// InvoiceData holds the company details needed to issue an invoice
type InvoiceData struct {
	UID string `json:"uid"`

	NIP       string `json:"nip"`
	Name      string `json:"name"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`

	Street       string `json:"street,omitempty"`
	StreetNumber string `json:"street_number,omitempty"`
	HouseNumber  string `json:"house_number,omitempty"`
	City         string `json:"city,omitempty"`
	PostCode     string `json:"post_code,omitempty"`
	PostCity     string `json:"post_city,omitempty"`

	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
	WWW   string `json:"www,omitempty"`
}

// CodeName is a registry dictionary entry
type CodeName struct {
	Code string `json:"code,omitempty"`
	Name string `json:"name,omitempty"`
}

// AllData is the complete company record
type AllData struct {
	UID string `json:"uid"`

	Type  string `json:"type,omitempty"`
	NIP   string `json:"nip"`
	REGON string `json:"regon,omitempty"`

	Name       string `json:"name"`
	ShortName  string `json:"short_name,omitempty"`
	FirstName  string `json:"first_name,omitempty"`
	SecondName string `json:"second_name,omitempty"`
	LastName   string `json:"last_name,omitempty"`

	Street        string `json:"street,omitempty"`
	StreetCode    string `json:"street_code,omitempty"`
	StreetNumber  string `json:"street_number,omitempty"`
	HouseNumber   string `json:"house_number,omitempty"`
	City          string `json:"city,omitempty"`
	CityCode      string `json:"city_code,omitempty"`
	Community     string `json:"community,omitempty"`
	CommunityCode string `json:"community_code,omitempty"`
	County        string `json:"county,omitempty"`
	CountyCode    string `json:"county_code,omitempty"`
	State         string `json:"state,omitempty"`
	StateCode     string `json:"state_code,omitempty"`
	PostCode      string `json:"post_code,omitempty"`
	PostCity      string `json:"post_city,omitempty"`

	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
	WWW   string `json:"www,omitempty"`

	CreationDate     time.Time `json:"creation_date"`
	StartDate        time.Time `json:"start_date"`
	RegistrationDate time.Time `json:"registration_date"`
	HoldDate         time.Time `json:"hold_date"`
	RenevalDate      time.Time `json:"reneval_date"`
	LastUpdateDate   time.Time `json:"last_update_date"`
	EndDate          time.Time `json:"end_date"`

	RegistryEntity CodeName `json:"registry_entity"`
	Registry       CodeName `json:"registry"`

	RecordCreationDate time.Time `json:"record_creation_date"`
	RecordNumber       string    `json:"record_number,omitempty"`

	BasicLegalForm    CodeName `json:"basic_legal_form"`
	SpecificLegalForm CodeName `json:"specific_legal_form"`
	OwnershipForm     CodeName `json:"ownership_form"`

	BusinessPartners []BusinessPartner `json:"business_partners,omitempty"`
	PKDs             []PKD             `json:"pkds,omitempty"`
}

// BusinessPartner is a partner of a civil-law partnership
type BusinessPartner struct {
	REGON      string `json:"regon"`
	FirmName   string `json:"firm_name,omitempty"`
	FirstName  string `json:"first_name,omitempty"`
	SecondName string `json:"second_name,omitempty"`
	LastName   string `json:"last_name,omitempty"`
}

// PKD is a Polish classification of business activity entry
type PKD struct {
	Code        string `json:"code"`
	Description string `json:"description,omitempty"`
	Primary     bool   `json:"primary"`
	Version     string `json:"version,omitempty"`
}

// PrimaryPKD returns the activity marked as primary, if any
func (d *AllData) PrimaryPKD() (PKD, bool) {
	for _, p := range d.PKDs {
		if p.Primary {
			return p, true
		}
	}
	return PKD{}, false
}
