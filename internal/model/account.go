package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountStatus describes the API account, its billing plan and usage
type AccountStatus struct {
	UID     string    `json:"uid"`
	Type    string    `json:"type"`
	ValidTo time.Time `json:"valid_to"`

	BillingPlanName string `json:"billing_plan_name"`

	SubscriptionPrice  decimal.Decimal `json:"subscription_price"`
	ItemPrice          decimal.Decimal `json:"item_price"`
	ItemPriceStatus    decimal.Decimal `json:"item_price_status"`
	ItemPriceInvoice   decimal.Decimal `json:"item_price_invoice"`
	ItemPriceAll       decimal.Decimal `json:"item_price_all"`
	ItemPriceIBAN      decimal.Decimal `json:"item_price_iban"`
	ItemPriceWhitelist decimal.Decimal `json:"item_price_whitelist"`
	ItemPriceSearchVAT decimal.Decimal `json:"item_price_search_vat"`

	Limit        int `json:"limit"`
	RequestDelay int `json:"request_delay"`
	DomainLimit  int `json:"domain_limit"`

	OverPlanAllowed bool `json:"over_plan_allowed"`
	TerytCodes      bool `json:"teryt_codes"`
	ExcelAddIn      bool `json:"excel_add_in"`
	JPKVAT          bool `json:"jpk_vat"`
	CLI             bool `json:"cli"`
	Stats           bool `json:"stats"`
	NIPMonitor      bool `json:"nip_monitor"`

	SearchByNIP   bool `json:"search_by_nip"`
	SearchByREGON bool `json:"search_by_regon"`
	SearchByKRS   bool `json:"search_by_krs"`

	FuncIsActive           bool `json:"func_is_active"`
	FuncGetInvoiceData     bool `json:"func_get_invoice_data"`
	FuncGetAllData         bool `json:"func_get_all_data"`
	FuncGetVIESData        bool `json:"func_get_vies_data"`
	FuncGetVATStatus       bool `json:"func_get_vat_status"`
	FuncGetIBANStatus      bool `json:"func_get_iban_status"`
	FuncGetWhitelistStatus bool `json:"func_get_whitelist_status"`
	FuncSearchVAT          bool `json:"func_search_vat"`

	InvoiceDataCount     int `json:"invoice_data_count"`
	AllDataCount         int `json:"all_data_count"`
	FirmStatusCount      int `json:"firm_status_count"`
	VATStatusCount       int `json:"vat_status_count"`
	VIESStatusCount      int `json:"vies_status_count"`
	IBANStatusCount      int `json:"iban_status_count"`
	WhitelistStatusCount int `json:"whitelist_status_count"`
	SearchVATCount       int `json:"search_vat_count"`
	TotalCount           int `json:"total_count"`
}
