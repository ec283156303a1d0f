package xml

import "github.com/rezonia/nip24-client/internal/model"

const firmPath = "/result/firm/"

// DecodeInvoiceData decodes the answer to an invoice data request
func DecodeInvoiceData(doc *Document) (*model.InvoiceData, error) {
	if err := doc.Err(); err != nil {
		return nil, err
	}

	p := firmPath
	return &model.InvoiceData{
		UID: doc.String(p+"uid", ""),

		NIP:       doc.String(p+"nip", ""),
		Name:      doc.String(p+"name", ""),
		FirstName: doc.String(p+"firstname", ""),
		LastName:  doc.String(p+"lastname", ""),

		Street:       doc.String(p+"street", ""),
		StreetNumber: doc.String(p+"streetNumber", ""),
		HouseNumber:  doc.String(p+"houseNumber", ""),
		City:         doc.String(p+"city", ""),
		PostCode:     doc.String(p+"postCode", ""),
		PostCity:     doc.String(p+"postCity", ""),

		Phone: doc.String(p+"phone", ""),
		Email: doc.String(p+"email", ""),
		WWW:   doc.String(p+"www", ""),
	}, nil
}

// DecodeAllData decodes the answer to a full company record request
func DecodeAllData(doc *Document) (*model.AllData, error) {
	if err := doc.Err(); err != nil {
		return nil, err
	}

	p := firmPath
	data := &model.AllData{
		UID: doc.String(p+"uid", ""),

		Type:  doc.String(p+"type", ""),
		NIP:   doc.String(p+"nip", ""),
		REGON: doc.String(p+"regon", ""),

		Name:       doc.String(p+"name", ""),
		ShortName:  doc.String(p+"shortname", ""),
		FirstName:  doc.String(p+"firstname", ""),
		SecondName: doc.String(p+"secondname", ""),
		LastName:   doc.String(p+"lastname", ""),

		Street:        doc.String(p+"street", ""),
		StreetCode:    doc.String(p+"streetCode", ""),
		StreetNumber:  doc.String(p+"streetNumber", ""),
		HouseNumber:   doc.String(p+"houseNumber", ""),
		City:          doc.String(p+"city", ""),
		CityCode:      doc.String(p+"cityCode", ""),
		Community:     doc.String(p+"community", ""),
		CommunityCode: doc.String(p+"communityCode", ""),
		County:        doc.String(p+"county", ""),
		CountyCode:    doc.String(p+"countyCode", ""),
		State:         doc.String(p+"state", ""),
		StateCode:     doc.String(p+"stateCode", ""),
		PostCode:      doc.String(p+"postCode", ""),
		PostCity:      doc.String(p+"postCity", ""),

		Phone: doc.String(p+"phone", ""),
		Email: doc.String(p+"email", ""),
		WWW:   doc.String(p+"www", ""),

		CreationDate:     doc.DateTime(p + "creationDate"),
		StartDate:        doc.DateTime(p + "startDate"),
		RegistrationDate: doc.DateTime(p + "registrationDate"),
		HoldDate:         doc.DateTime(p + "holdDate"),
		RenevalDate:      doc.DateTime(p + "renevalDate"),
		LastUpdateDate:   doc.DateTime(p + "lastUpdateDate"),
		EndDate:          doc.DateTime(p + "endDate"),

		RegistryEntity: codeName(doc.Node, p+"registryEntity"),
		Registry:       codeName(doc.Node, p+"registry"),

		RecordCreationDate: doc.DateTime(p + "record/created"),
		RecordNumber:       doc.String(p+"record/number", ""),

		BasicLegalForm:    codeName(doc.Node, p+"basicLegalForm"),
		SpecificLegalForm: codeName(doc.Node, p+"specificLegalForm"),
		OwnershipForm:     codeName(doc.Node, p+"ownershipForm"),
	}

	for _, n := range doc.Sequence(p+"businessPartners", "businessPartner", "regon") {
		data.BusinessPartners = append(data.BusinessPartners, model.BusinessPartner{
			REGON:      n.String("regon", ""),
			FirmName:   n.String("firmName", ""),
			FirstName:  n.String("firstName", ""),
			SecondName: n.String("secondName", ""),
			LastName:   n.String("lastName", ""),
		})
	}

	for _, n := range doc.Sequence(p+"PKDs", "PKD", "code") {
		data.PKDs = append(data.PKDs, model.PKD{
			Code:        n.String("code", ""),
			Description: n.String("description", ""),
			Primary:     n.Bool("primary", false),
			Version:     n.String("version", ""),
		})
	}

	return data, nil
}

func codeName(n Node, path string) model.CodeName {
	return model.CodeName{
		Code: n.String(path+"/code", ""),
		Name: n.String(path+"/name", ""),
	}
}
