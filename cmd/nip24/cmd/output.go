package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	dec "github.com/rezonia/nip24-client/internal/decimal"
	"github.com/rezonia/nip24-client/internal/model"
)

// outputResult writes v as indented JSON or as a FIELD/VALUE table
func outputResult(w io.Writer, v any) error {
	switch outputFormat {
	case "json":
		return outputJSON(w, v)
	case "table":
		return outputTable(w, v)
	default:
		return fmt.Errorf("unsupported output format: %s", outputFormat)
	}
}

func outputJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// outputTable prints the top-level JSON fields of v, one per row. Nested
// values are printed as compact JSON and billing prices in PLN.
func outputTable(w io.Writer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		// not an object
		_, err := fmt.Fprintln(w, string(data))
		return err
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	prices := priceFields(v)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "FIELD\tVALUE")
	fmt.Fprintln(tw, "-----\t-----")
	for _, k := range keys {
		s, ok := prices[k]
		if !ok {
			if err := json.Unmarshal(fields[k], &s); err != nil {
				s = string(fields[k])
			}
		}
		fmt.Fprintf(tw, "%s\t%s\n", k, s)
	}

	return tw.Flush()
}

// priceFields returns the formatted billing prices of an account status,
// keyed by JSON field name
func priceFields(v any) map[string]string {
	status, ok := v.(*model.AccountStatus)
	if !ok || status == nil {
		return nil
	}
	return map[string]string{
		"subscription_price":    dec.FormatPLN(status.SubscriptionPrice),
		"item_price":            dec.FormatPLN(status.ItemPrice),
		"item_price_status":     dec.FormatPLN(status.ItemPriceStatus),
		"item_price_invoice":    dec.FormatPLN(status.ItemPriceInvoice),
		"item_price_all":        dec.FormatPLN(status.ItemPriceAll),
		"item_price_iban":       dec.FormatPLN(status.ItemPriceIBAN),
		"item_price_whitelist":  dec.FormatPLN(status.ItemPriceWhitelist),
		"item_price_search_vat": dec.FormatPLN(status.ItemPriceSearchVAT),
	}
}
