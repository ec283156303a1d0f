package xml

import "github.com/rezonia/nip24-client/internal/model"

// DecodeSearchResult decodes the answer to a VAT registry search
func DecodeSearchResult(doc *Document) (*model.SearchResult, error) {
	if err := doc.Err(); err != nil {
		return nil, err
	}

	p := "/result/search/"
	entities := model.VATEntities{}
	for _, n := range doc.Sequence(p+"entities", "entity", "nip") {
		entities = append(entities, decodeVATEntity(n))
	}

	return &model.SearchResult{
		UID:     doc.String(p+"uid", ""),
		Results: entities,
		ID:      doc.String(p+"id", ""),
		Date:    doc.Date(p + "date"),
		Source:  doc.String(p+"source", ""),
	}, nil
}

func decodeVATEntity(n Node) model.VATEntity {
	return model.VATEntity{
		Name:  n.String("name", ""),
		NIP:   n.String("nip", ""),
		REGON: n.String("regon", ""),
		KRS:   n.String("krs", ""),

		ResidenceAddress: n.String("residenceAddress", ""),
		WorkingAddress:   n.String("workingAddress", ""),

		VATStatus: n.Int("vat/status", 0),
		VATResult: n.String("vat/result", ""),

		Representatives:  decodeVATPersons(n, "representatives"),
		AuthorizedClerks: decodeVATPersons(n, "authorizedClerks"),
		Partners:         decodeVATPersons(n, "partners"),

		IBANs:              n.Strings("ibans", "iban"),
		HasVirtualAccounts: n.Bool("hasVirtualAccounts", false),

		RegistrationLegalDate:   n.Date("registrationLegalDate"),
		RegistrationDenialDate:  n.Date("registrationDenialDate"),
		RegistrationDenialBasis: n.String("registrationDenialBasis", ""),
		RestorationDate:         n.Date("restorationDate"),
		RestorationBasis:        n.String("restorationBasis", ""),
		RemovalDate:             n.Date("removalDate"),
		RemovalBasis:            n.String("removalBasis", ""),
	}
}

func decodeVATPersons(n Node, parent string) []model.VATPerson {
	var persons []model.VATPerson
	for _, p := range n.Sequence(parent, "person", "nip") {
		persons = append(persons, model.VATPerson{
			NIP:         p.String("nip", ""),
			CompanyName: p.String("companyName", ""),
			FirstName:   p.String("firstName", ""),
			LastName:    p.String("lastName", ""),
		})
	}
	return persons
}
