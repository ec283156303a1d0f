package model

// Service error codes reported in /result/error/code
const (
	ErrNIPEmpty          = 1
	ErrNIPUnknown        = 2
	ErrGUSLogin          = 3
	ErrGUSCaptcha        = 4
	ErrGUSSync           = 5
	ErrNIPUpdate         = 6
	ErrNIPBad            = 7
	ErrContentSyntax     = 8
	ErrNIPNotActive      = 9
	ErrInvalidPath       = 10
	ErrException         = 11
	ErrNoPermission      = 12
	ErrGenInvoices       = 13
	ErrGenSpecInv        = 14
	ErrSendInvoice       = 15
	ErrPremiumFeature    = 16
	ErrSendAnnouncement  = 17
	ErrInvoicePayment    = 18
	ErrREGONBad          = 19
	ErrSearchKeyEmpty    = 20
	ErrKRSBad            = 21
	ErrEUVATBad          = 22
	ErrVIESSync          = 23
	ErrCEIDGSync         = 24
	ErrRandomNumber      = 25
	ErrPlanFeature       = 26
	ErrSearchType        = 27
	ErrPPUMFSync         = 28
	ErrPPUMFDirect       = 29
	ErrNIPFeature        = 30
	ErrREGONFeature      = 31
	ErrKRSFeature        = 32
	ErrTestMode          = 33
	ErrActivityCheck     = 34
	ErrAccessDenied      = 35
	ErrMaintenance       = 36
	ErrBillingPlans      = 37
	ErrDocumentPDF       = 38
	ErrExportPDF         = 39
	ErrRandomType        = 40
	ErrLegalForm         = 41
	ErrGroupChecks       = 42
	ErrClientCounters    = 43
	ErrURESync           = 44
	ErrUREData           = 45
	ErrDKNBad            = 46
	ErrSendRemainder     = 47
	ErrExportJPK         = 48
	ErrGenOrderInv       = 49
	ErrSendExpiration    = 50
	ErrIBANSync          = 51
	ErrOrderCancel       = 52
	ErrWhitelistCheck    = 53
	ErrAuthTimestamp     = 54
	ErrAuthMAC           = 55
	ErrIBANBad           = 56
	ErrDBAuthIP          = 101
	ErrDBAuthKeyStatus   = 102
	ErrDBAuthKeyValue    = 103
	ErrDBAuthOverPlan    = 104
	ErrDBClientLocked    = 105
	ErrDBClientType      = 106
	ErrDBClientNotPaid   = 107
	ErrDBAuthKeyIDValue  = 108
	ErrCLIConnect        = 201
	ErrCLIResponse       = 202
	ErrCLINumber         = 203
	ErrCLINIP            = 204
	ErrCLIREGON          = 205
	ErrCLIKRS            = 206
	ErrCLIEUVAT          = 207
	ErrCLIIBAN           = 208
	ErrCLIException      = 209
	ErrCLIDateFormat     = 210
	ErrCLIInput          = 211
)

// InactiveCode is the service code the activity check reports as a plain
// "not active" answer rather than a failure.
const InactiveCode = ErrNIPNotActive

var errorNames = map[int]string{
	ErrNIPEmpty:         "NIP_EMPTY",
	ErrNIPUnknown:       "NIP_UNKNOWN",
	ErrGUSLogin:         "GUS_LOGIN",
	ErrGUSCaptcha:       "GUS_CAPTCHA",
	ErrGUSSync:          "GUS_SYNC",
	ErrNIPUpdate:        "NIP_UPDATE",
	ErrNIPBad:           "NIP_BAD",
	ErrContentSyntax:    "CONTENT_SYNTAX",
	ErrNIPNotActive:     "NIP_NOT_ACTIVE",
	ErrInvalidPath:      "INVALID_PATH",
	ErrException:        "EXCEPTION",
	ErrNoPermission:     "NO_PERMISSION",
	ErrGenInvoices:      "GEN_INVOICES",
	ErrGenSpecInv:       "GEN_SPEC_INV",
	ErrSendInvoice:      "SEND_INVOICE",
	ErrPremiumFeature:   "PREMIUM_FEATURE",
	ErrSendAnnouncement: "SEND_ANNOUNCEMENT",
	ErrInvoicePayment:   "INVOICE_PAYMENT",
	ErrREGONBad:         "REGON_BAD",
	ErrSearchKeyEmpty:   "SEARCH_KEY_EMPTY",
	ErrKRSBad:           "KRS_BAD",
	ErrEUVATBad:         "EUVAT_BAD",
	ErrVIESSync:         "VIES_SYNC",
	ErrCEIDGSync:        "CEIDG_SYNC",
	ErrRandomNumber:     "RANDOM_NUMBER",
	ErrPlanFeature:      "PLAN_FEATURE",
	ErrSearchType:       "SEARCH_TYPE",
	ErrPPUMFSync:        "PPUMF_SYNC",
	ErrPPUMFDirect:      "PPUMF_DIRECT",
	ErrNIPFeature:       "NIP_FEATURE",
	ErrREGONFeature:     "REGON_FEATURE",
	ErrKRSFeature:       "KRS_FEATURE",
	ErrTestMode:         "TEST_MODE",
	ErrActivityCheck:    "ACTIVITY_CHECK",
	ErrAccessDenied:     "ACCESS_DENIED",
	ErrMaintenance:      "MAINTENANCE",
	ErrBillingPlans:     "BILLING_PLANS",
	ErrDocumentPDF:      "DOCUMENT_PDF",
	ErrExportPDF:        "EXPORT_PDF",
	ErrRandomType:       "RANDOM_TYPE",
	ErrLegalForm:        "LEGAL_FORM",
	ErrGroupChecks:      "GROUP_CHECKS",
	ErrClientCounters:   "CLIENT_COUNTERS",
	ErrURESync:          "URE_SYNC",
	ErrUREData:          "URE_DATA",
	ErrDKNBad:           "DKN_BAD",
	ErrSendRemainder:    "SEND_REMAINDER",
	ErrExportJPK:        "EXPORT_JPK",
	ErrGenOrderInv:      "GEN_ORDER_INV",
	ErrSendExpiration:   "SEND_EXPIRATION",
	ErrIBANSync:         "IBAN_SYNC",
	ErrOrderCancel:      "ORDER_CANCEL",
	ErrWhitelistCheck:   "WHITELIST_CHECK",
	ErrAuthTimestamp:    "AUTH_TIMESTAMP",
	ErrAuthMAC:          "AUTH_MAC",
	ErrIBANBad:          "IBAN_BAD",
	ErrDBAuthIP:         "DB_AUTH_IP",
	ErrDBAuthKeyStatus:  "DB_AUTH_KEY_STATUS",
	ErrDBAuthKeyValue:   "DB_AUTH_KEY_VALUE",
	ErrDBAuthOverPlan:   "DB_AUTH_OVER_PLAN",
	ErrDBClientLocked:   "DB_CLIENT_LOCKED",
	ErrDBClientType:     "DB_CLIENT_TYPE",
	ErrDBClientNotPaid:  "DB_CLIENT_NOT_PAID",
	ErrDBAuthKeyIDValue: "DB_AUTH_KEYID_VALUE",
	ErrCLIConnect:       "CLI_CONNECT",
	ErrCLIResponse:      "CLI_RESPONSE",
	ErrCLINumber:        "CLI_NUMBER",
	ErrCLINIP:           "CLI_NIP",
	ErrCLIREGON:         "CLI_REGON",
	ErrCLIKRS:           "CLI_KRS",
	ErrCLIEUVAT:         "CLI_EUVAT",
	ErrCLIIBAN:          "CLI_IBAN",
	ErrCLIException:     "CLI_EXCEPTION",
	ErrCLIDateFormat:    "CLI_DATEFORMAT",
	ErrCLIInput:         "CLI_INPUT",
}

// Messages for errors raised by the client itself; service errors carry
// their own description.
var clientMessages = map[int]string{
	ErrCLIConnect:    "cannot connect to the NIP24 service",
	ErrCLIResponse:   "NIP24 service response has an invalid format",
	ErrCLINumber:     "invalid number type",
	ErrCLINIP:        "NIP number is invalid",
	ErrCLIREGON:      "REGON number is invalid",
	ErrCLIKRS:        "KRS number is invalid",
	ErrCLIEUVAT:      "EU VAT ID is invalid",
	ErrCLIIBAN:       "IBAN number is invalid",
	ErrCLIException:  "function raised an exception",
	ErrCLIDateFormat: "date has an invalid format",
	ErrCLIInput:      "invalid input parameter",
}

// ErrorName returns the symbolic name of an error code, or "" if unknown
func ErrorName(code int) string {
	return errorNames[code]
}

// ErrorMessage returns the default message for a client error code
func ErrorMessage(code int) string {
	return clientMessages[code]
}

// IsClientCode reports whether code belongs to the range reserved for
// conditions detected locally by the client.
func IsClientCode(code int) bool {
	return code >= ErrCLIConnect && code <= ErrCLIInput
}

// ErrorCodes returns all known error codes in ascending order
func ErrorCodes() []int {
	codes := make([]int, 0, len(errorNames))
	for code := 1; code <= ErrCLIInput; code++ {
		if _, ok := errorNames[code]; ok {
			codes = append(codes, code)
		}
	}
	return codes
}
