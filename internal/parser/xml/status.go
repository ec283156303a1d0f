package xml

import "github.com/rezonia/nip24-client/internal/model"

// DecodeVIESData decodes the answer to a VIES request
func DecodeVIESData(doc *Document) (*model.VIESData, error) {
	if err := doc.Err(); err != nil {
		return nil, err
	}

	p := "/result/vies/"
	return &model.VIESData{
		UID: doc.String(p+"uid", ""),

		CountryCode: doc.String(p+"countryCode", ""),
		VATNumber:   doc.String(p+"vatNumber", ""),
		Valid:       doc.Bool(p+"valid", false),

		TraderName:        doc.String(p+"traderName", ""),
		TraderCompanyType: doc.String(p+"traderCompanyType", ""),
		TraderAddress:     doc.String(p+"traderAddress", ""),

		ID:     doc.String(p+"id", ""),
		Date:   doc.Date(p + "date"),
		Source: doc.String(p+"source", ""),
	}, nil
}

// DecodeVATStatus decodes the answer to a VAT status request
func DecodeVATStatus(doc *Document) (*model.VATStatus, error) {
	if err := doc.Err(); err != nil {
		return nil, err
	}

	p := "/result/vat/"
	return &model.VATStatus{
		UID: doc.String(p+"uid", ""),

		NIP:   doc.String(p+"nip", ""),
		REGON: doc.String(p+"regon", ""),
		Name:  doc.String(p+"name", ""),

		Status: doc.Int(p+"status", 0),
		Result: doc.String(p+"result", ""),

		ID:     doc.String(p+"id", ""),
		Date:   doc.Date(p + "date"),
		Source: doc.String(p+"source", ""),
	}, nil
}

// DecodeIBANStatus decodes the answer to an IBAN ownership request
func DecodeIBANStatus(doc *Document) (*model.IBANStatus, error) {
	if err := doc.Err(); err != nil {
		return nil, err
	}

	p := "/result/iban/"
	return &model.IBANStatus{
		UID: doc.String(p+"uid", ""),

		NIP:   doc.String(p+"nip", ""),
		REGON: doc.String(p+"regon", ""),
		IBAN:  doc.String(p+"iban", ""),
		Valid: doc.Bool(p+"valid", false),

		ID:     doc.String(p+"id", ""),
		Date:   doc.Date(p + "date"),
		Source: doc.String(p+"source", ""),
	}, nil
}

// DecodeWhitelistStatus decodes the answer to a whitelist request.
// Missing hash and mask indexes decode as -1.
func DecodeWhitelistStatus(doc *Document) (*model.WLStatus, error) {
	if err := doc.Err(); err != nil {
		return nil, err
	}

	p := "/result/whitelist/"
	return &model.WLStatus{
		UID: doc.String(p+"uid", ""),

		NIP:     doc.String(p+"nip", ""),
		IBAN:    doc.String(p+"iban", ""),
		Valid:   doc.Bool(p+"valid", false),
		Virtual: doc.Bool(p+"virtual", false),

		Status: doc.Int(p+"vatStatus", 0),
		Result: doc.String(p+"vatResult", ""),

		HashIndex: doc.Int(p+"hashIndex", -1),
		MaskIndex: doc.Int(p+"maskIndex", -1),

		Date:   doc.Date(p + "date"),
		Source: doc.String(p+"source", ""),
	}, nil
}
