package xml

import (
	dec "github.com/rezonia/nip24-client/internal/decimal"
	"github.com/rezonia/nip24-client/internal/model"
)

// DecodeAccountStatus decodes the answer to an account status request
func DecodeAccountStatus(doc *Document) (*model.AccountStatus, error) {
	if err := doc.Err(); err != nil {
		return nil, err
	}

	a := "/result/account/"
	plan := a + "billingPlan/"
	req := a + "requests/"

	return &model.AccountStatus{
		UID:     doc.String(a+"uid", ""),
		Type:    doc.String(a+"type", ""),
		ValidTo: doc.DateTime(a + "validTo"),

		BillingPlanName: doc.String(plan+"name", ""),

		SubscriptionPrice:  doc.Decimal(plan+"subscriptionPrice", dec.Zero),
		ItemPrice:          doc.Decimal(plan+"itemPrice", dec.Zero),
		ItemPriceStatus:    doc.Decimal(plan+"itemPriceCheckStatus", dec.Zero),
		ItemPriceInvoice:   doc.Decimal(plan+"itemPriceInvoiceData", dec.Zero),
		ItemPriceAll:       doc.Decimal(plan+"itemPriceAllData", dec.Zero),
		ItemPriceIBAN:      doc.Decimal(plan+"itemPriceAllIBAN", dec.Zero),
		ItemPriceWhitelist: doc.Decimal(plan+"itemPriceWLStatus", dec.Zero),
		ItemPriceSearchVAT: doc.Decimal(plan+"itemPriceSearchVAT", dec.Zero),

		Limit:        doc.Int(plan+"limit", 0),
		RequestDelay: doc.Int(plan+"requestDelay", 0),
		DomainLimit:  doc.Int(plan+"domainLimit", 0),

		OverPlanAllowed: doc.Bool(plan+"overplanAllowed", false),
		TerytCodes:      doc.Bool(plan+"terytCodes", false),
		ExcelAddIn:      doc.Bool(plan+"excelAddin", false),
		JPKVAT:          doc.Bool(plan+"jpkVat", false),
		CLI:             doc.Bool(plan+"cli", false),
		Stats:           doc.Bool(plan+"stats", false),
		NIPMonitor:      doc.Bool(plan+"nipMonitor", false),

		SearchByNIP:   doc.Bool(plan+"searchByNip", false),
		SearchByREGON: doc.Bool(plan+"searchByRegon", false),
		SearchByKRS:   doc.Bool(plan+"searchByKrs", false),

		FuncIsActive:           doc.Bool(plan+"funcIsActive", false),
		FuncGetInvoiceData:     doc.Bool(plan+"funcGetInvoiceData", false),
		FuncGetAllData:         doc.Bool(plan+"funcGetAllData", false),
		FuncGetVIESData:        doc.Bool(plan+"funcGetVIESData", false),
		FuncGetVATStatus:       doc.Bool(plan+"funcGetVATStatus", false),
		FuncGetIBANStatus:      doc.Bool(plan+"funcGetIBANStatus", false),
		FuncGetWhitelistStatus: doc.Bool(plan+"funcGetWLStatus", false),
		FuncSearchVAT:          doc.Bool(plan+"funcSearchVAT", false),

		InvoiceDataCount:     doc.Int(req+"invoiceData", 0),
		AllDataCount:         doc.Int(req+"allData", 0),
		FirmStatusCount:      doc.Int(req+"firmStatus", 0),
		VATStatusCount:       doc.Int(req+"vatStatus", 0),
		VIESStatusCount:      doc.Int(req+"viesStatus", 0),
		IBANStatusCount:      doc.Int(req+"ibanStatus", 0),
		WhitelistStatusCount: doc.Int(req+"wlStatus", 0),
		SearchVATCount:       doc.Int(req+"searchVAT", 0),
		TotalCount:           doc.Int(req+"total", 0),
	}, nil
}
