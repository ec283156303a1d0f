package client

import (
	"context"
	"strconv"
	"time"

	"github.com/rezonia/nip24-client/internal/model"
	"github.com/rezonia/nip24-client/internal/number"
	xmlparser "github.com/rezonia/nip24-client/internal/parser/xml"
)

// Operation names used for logging and metrics
const (
	OpIsActive      = "is_active"
	OpInvoiceData   = "invoice_data"
	OpAllData       = "all_data"
	OpVIESData      = "vies_data"
	OpVATStatus     = "vat_status"
	OpIBANStatus    = "iban_status"
	OpWhitelist     = "whitelist_status"
	OpSearchVAT     = "search_vat"
	OpAccountStatus = "account_status"
)

const (
	dateLayout       = "2006-01-02"
	ibanCountryAlias = "PL"
)

// IsActive reports whether the firm is still economically active. The
// "not active" service answer yields false without an error. The code
// must read exactly "9"; variants like "09" stay errors.
func (c *Client) IsActive(ctx context.Context, kind model.Number, num string) (active bool, err error) {
	defer c.track(OpIsActive, &err)

	suffix, err := c.suffix(kind, num, model.NIP, model.EUVAT)
	if err != nil {
		return false, err
	}

	doc, err := c.fetch(ctx, OpIsActive, "check/firm/"+suffix, false)
	if err != nil {
		return false, err
	}
	if err := doc.Err(); err != nil {
		if doc.ErrorCode() == strconv.Itoa(model.InactiveCode) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

// GetInvoiceData returns the details needed to issue an invoice
func (c *Client) GetInvoiceData(ctx context.Context, kind model.Number, num string) (data *model.InvoiceData, err error) {
	defer c.track(OpInvoiceData, &err)

	doc, err := c.firmQuery(ctx, OpInvoiceData, "get/invoice/", kind, num)
	if err != nil {
		return nil, err
	}
	return xmlparser.DecodeInvoiceData(doc)
}

// GetAllData returns the full registry record of a firm
func (c *Client) GetAllData(ctx context.Context, kind model.Number, num string) (data *model.AllData, err error) {
	defer c.track(OpAllData, &err)

	doc, err := c.firmQuery(ctx, OpAllData, "get/all/", kind, num)
	if err != nil {
		return nil, err
	}
	return xmlparser.DecodeAllData(doc)
}

// GetVIESData queries the EU VIES system for an EU VAT ID
func (c *Client) GetVIESData(ctx context.Context, euvat string) (data *model.VIESData, err error) {
	defer c.track(OpVIESData, &err)

	suffix, err := c.suffix(model.EUVAT, euvat, model.EUVAT, model.EUVAT)
	if err != nil {
		return nil, err
	}

	doc, err := c.fetch(ctx, OpVIESData, "get/vies/"+suffix, true)
	if err != nil {
		return nil, err
	}
	if err := doc.Err(); err != nil {
		return nil, err
	}
	return xmlparser.DecodeVIESData(doc)
}

// GetVATStatus returns the VAT payer status straight from the ministry
func (c *Client) GetVATStatus(ctx context.Context, kind model.Number, num string) (status *model.VATStatus, err error) {
	defer c.track(OpVATStatus, &err)

	doc, err := c.firmQuery(ctx, OpVATStatus, "check/vat/direct/", kind, num)
	if err != nil {
		return nil, err
	}
	return xmlparser.DecodeVATStatus(doc)
}

// GetIBANStatus checks whether a bank account belonged to the firm on
// date. A zero date means today.
func (c *Client) GetIBANStatus(ctx context.Context, kind model.Number, num, iban string, date time.Time) (status *model.IBANStatus, err error) {
	defer c.track(OpIBANStatus, &err)

	doc, err := c.accountQuery(ctx, OpIBANStatus, "check/iban/", kind, num, iban, date)
	if err != nil {
		return nil, err
	}
	return xmlparser.DecodeIBANStatus(doc)
}

// GetWhitelistStatus checks a bank account against the VAT whitelist on
// date. A zero date means today.
func (c *Client) GetWhitelistStatus(ctx context.Context, kind model.Number, num, iban string, date time.Time) (status *model.WLStatus, err error) {
	defer c.track(OpWhitelist, &err)

	doc, err := c.accountQuery(ctx, OpWhitelist, "check/whitelist/", kind, num, iban, date)
	if err != nil {
		return nil, err
	}
	return xmlparser.DecodeWhitelistStatus(doc)
}

// SearchVATRegistry looks the identifier up in the VAT registry as of
// date. A zero date means today.
func (c *Client) SearchVATRegistry(ctx context.Context, kind model.Number, num string, date time.Time) (result *model.SearchResult, err error) {
	defer c.track(OpSearchVAT, &err)

	suffix, err := c.suffix(kind, num, model.NIP, model.IBAN)
	if err != nil {
		return nil, err
	}

	doc, err := c.fetch(ctx, OpSearchVAT, "search/vat/"+suffix+"/"+c.formatDate(date), true)
	if err != nil {
		return nil, err
	}
	if err := doc.Err(); err != nil {
		return nil, err
	}
	return xmlparser.DecodeSearchResult(doc)
}

// GetAccountStatus returns the billing plan and usage counters of the
// account behind the key pair
func (c *Client) GetAccountStatus(ctx context.Context) (status *model.AccountStatus, err error) {
	defer c.track(OpAccountStatus, &err)

	doc, err := c.fetch(ctx, OpAccountStatus, "check/account/status", false)
	if err != nil {
		return nil, err
	}
	if err := doc.Err(); err != nil {
		return nil, err
	}
	return xmlparser.DecodeAccountStatus(doc)
}

// firmQuery runs a cacheable lookup keyed by a NIP..EUVAT identifier
func (c *Client) firmQuery(ctx context.Context, op, prefix string, kind model.Number, num string) (*xmlparser.Document, error) {
	suffix, err := c.suffix(kind, num, model.NIP, model.EUVAT)
	if err != nil {
		return nil, err
	}

	doc, err := c.fetch(ctx, op, prefix+suffix, true)
	if err != nil {
		return nil, err
	}
	if err := doc.Err(); err != nil {
		return nil, err
	}
	return doc, nil
}

// accountQuery runs a bank account check. The IBAN is validated before
// the firm identifier.
func (c *Client) accountQuery(ctx context.Context, op, prefix string, kind model.Number, num, iban string, date time.Time) (*xmlparser.Document, error) {
	if kind < model.NIP || kind > model.KRS || num == "" || iban == "" {
		return nil, model.ErrInput()
	}

	account, err := resolveIBAN(iban)
	if err != nil {
		return nil, err
	}

	suffix, err := pathSuffix(kind, num)
	if err != nil {
		return nil, err
	}

	path := prefix + suffix + "/" + account + "/" + c.formatDate(date)
	doc, err := c.fetch(ctx, op, path, true)
	if err != nil {
		return nil, err
	}
	if err := doc.Err(); err != nil {
		return nil, err
	}
	return doc, nil
}

// suffix checks the call arguments against the allowed kind range and
// builds the "<segment>/<number>" path suffix
func (c *Client) suffix(kind model.Number, num string, first, last model.Number) (string, error) {
	if kind < first || kind > last || num == "" {
		return "", model.ErrInput()
	}
	return pathSuffix(kind, num)
}

func (c *Client) formatDate(date time.Time) string {
	if date.IsZero() {
		return c.clock().Local().Format(dateLayout)
	}
	return date.Format(dateLayout)
}

// pathSuffix validates and normalizes num as an identifier of the given
// kind. IBAN numbers without a country code are read as Polish accounts.
func pathSuffix(kind model.Number, num string) (string, error) {
	if !kind.Valid() {
		return "", model.ErrNumberKind()
	}

	if kind == model.IBAN {
		account, err := resolveIBAN(num)
		if err != nil {
			return "", err
		}
		return kind.Segment() + "/" + account, nil
	}

	if !number.IsValid(kind, num) {
		return "", model.ErrInvalidNumber(kind)
	}
	n, ok := number.Normalize(kind, num)
	if !ok {
		return "", model.ErrInvalidNumber(kind)
	}
	return kind.Segment() + "/" + n, nil
}

func resolveIBAN(iban string) (string, error) {
	if !number.IsValidIBAN(iban) {
		iban = ibanCountryAlias + iban
		if !number.IsValidIBAN(iban) {
			return "", model.ErrInvalidNumber(model.IBAN)
		}
	}

	n, ok := number.NormalizeIBAN(iban)
	if !ok {
		return "", model.ErrInvalidNumber(model.IBAN)
	}
	return n, nil
}
