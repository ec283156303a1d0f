package client

import (
	"context"
	"time"

	"github.com/rezonia/nip24-client/internal/model"
)

// IsActiveNIP is IsActive for a NIP number
func (c *Client) IsActiveNIP(ctx context.Context, nip string) (bool, error) {
	return c.IsActive(ctx, model.NIP, nip)
}

// GetInvoiceDataNIP is GetInvoiceData for a NIP number
func (c *Client) GetInvoiceDataNIP(ctx context.Context, nip string) (*model.InvoiceData, error) {
	return c.GetInvoiceData(ctx, model.NIP, nip)
}

// GetAllDataNIP is GetAllData for a NIP number
func (c *Client) GetAllDataNIP(ctx context.Context, nip string) (*model.AllData, error) {
	return c.GetAllData(ctx, model.NIP, nip)
}

// GetVATStatusNIP is GetVATStatus for a NIP number
func (c *Client) GetVATStatusNIP(ctx context.Context, nip string) (*model.VATStatus, error) {
	return c.GetVATStatus(ctx, model.NIP, nip)
}

// GetIBANStatusNIP is GetIBANStatus for a NIP number
func (c *Client) GetIBANStatusNIP(ctx context.Context, nip, iban string, date time.Time) (*model.IBANStatus, error) {
	return c.GetIBANStatus(ctx, model.NIP, nip, iban, date)
}

// GetWhitelistStatusNIP is GetWhitelistStatus for a NIP number
func (c *Client) GetWhitelistStatusNIP(ctx context.Context, nip, iban string, date time.Time) (*model.WLStatus, error) {
	return c.GetWhitelistStatus(ctx, model.NIP, nip, iban, date)
}

// SearchVATRegistryNIP is SearchVATRegistry for a NIP number
func (c *Client) SearchVATRegistryNIP(ctx context.Context, nip string, date time.Time) (*model.SearchResult, error) {
	return c.SearchVATRegistry(ctx, model.NIP, nip, date)
}
