package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/rezonia/nip24-client/internal/client"
	"github.com/rezonia/nip24-client/internal/model"
)

var lookupDate string

// lookupFunc performs one registry call and returns its result
type lookupFunc func(cmd *cobra.Command, c *client.Client, args []string) (any, error)

func newLookupCmd(use, short string, args cobra.PositionalArgs, fn lookupFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  args,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, release, err := newClient(nil)
			if err != nil {
				return err
			}
			defer release()
			printVerbose("Service: %s\n", c.BaseURL())

			result, err := fn(cmd, c, args)
			if err != nil {
				return err
			}
			return outputResult(cmd.OutOrStdout(), result)
		},
	}
}

var activeCmd = newLookupCmd("active <kind> <number>", "Check whether a firm is economically active", cobra.ExactArgs(2),
	func(cmd *cobra.Command, c *client.Client, args []string) (any, error) {
		kind, err := parseKind(args[0])
		if err != nil {
			return nil, err
		}
		active, err := c.IsActive(cmd.Context(), kind, args[1])
		if err != nil {
			return nil, err
		}
		return map[string]any{"number": args[1], "active": active}, nil
	})

var invoiceCmd = newLookupCmd("invoice <kind> <number>", "Fetch the data needed to issue an invoice", cobra.ExactArgs(2),
	func(cmd *cobra.Command, c *client.Client, args []string) (any, error) {
		kind, err := parseKind(args[0])
		if err != nil {
			return nil, err
		}
		return c.GetInvoiceData(cmd.Context(), kind, args[1])
	})

var allCmd = newLookupCmd("all <kind> <number>", "Fetch the full registry record of a firm", cobra.ExactArgs(2),
	func(cmd *cobra.Command, c *client.Client, args []string) (any, error) {
		kind, err := parseKind(args[0])
		if err != nil {
			return nil, err
		}
		return c.GetAllData(cmd.Context(), kind, args[1])
	})

var vatCmd = newLookupCmd("vat <kind> <number>", "Check the VAT payer status", cobra.ExactArgs(2),
	func(cmd *cobra.Command, c *client.Client, args []string) (any, error) {
		kind, err := parseKind(args[0])
		if err != nil {
			return nil, err
		}
		return c.GetVATStatus(cmd.Context(), kind, args[1])
	})

var viesCmd = newLookupCmd("vies <euvat>", "Check an EU VAT ID in VIES", cobra.ExactArgs(1),
	func(cmd *cobra.Command, c *client.Client, args []string) (any, error) {
		return c.GetVIESData(cmd.Context(), args[0])
	})

var ibanCmd = newLookupCmd("iban <kind> <number> <iban>", "Check whether a bank account belongs to a firm", cobra.ExactArgs(3),
	func(cmd *cobra.Command, c *client.Client, args []string) (any, error) {
		kind, date, err := parseKindAndDate(args[0])
		if err != nil {
			return nil, err
		}
		return c.GetIBANStatus(cmd.Context(), kind, args[1], args[2], date)
	})

var whitelistCmd = newLookupCmd("whitelist <kind> <number> <iban>", "Check a bank account against the VAT whitelist", cobra.ExactArgs(3),
	func(cmd *cobra.Command, c *client.Client, args []string) (any, error) {
		kind, date, err := parseKindAndDate(args[0])
		if err != nil {
			return nil, err
		}
		return c.GetWhitelistStatus(cmd.Context(), kind, args[1], args[2], date)
	})

var searchCmd = newLookupCmd("search <kind> <number>", "Search the VAT registry", cobra.ExactArgs(2),
	func(cmd *cobra.Command, c *client.Client, args []string) (any, error) {
		kind, date, err := parseKindAndDate(args[0])
		if err != nil {
			return nil, err
		}
		return c.SearchVATRegistry(cmd.Context(), kind, args[1], date)
	})

var accountCmd = newLookupCmd("account", "Show the account billing plan and usage", cobra.NoArgs,
	func(cmd *cobra.Command, c *client.Client, _ []string) (any, error) {
		return c.GetAccountStatus(cmd.Context())
	})

func init() {
	for _, c := range []*cobra.Command{ibanCmd, whitelistCmd, searchCmd} {
		c.Flags().StringVar(&lookupDate, "date", "", "Date to check as YYYY-MM-DD (default today)")
	}

	rootCmd.AddCommand(activeCmd, invoiceCmd, allCmd, vatCmd, viesCmd, ibanCmd, whitelistCmd, searchCmd, accountCmd)
}

func parseKind(s string) (model.Number, error) {
	kind, ok := model.ParseNumber(s)
	if !ok {
		return 0, model.ErrInput()
	}
	return kind, nil
}

func parseKindAndDate(s string) (model.Number, time.Time, error) {
	kind, err := parseKind(s)
	if err != nil {
		return 0, time.Time{}, err
	}
	date, err := parseDate(lookupDate)
	if err != nil {
		return 0, time.Time{}, err
	}
	return kind, date, nil
}

// parseDate reads a YYYY-MM-DD date in local time; empty means today
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	date, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return time.Time{}, model.ErrDateFormat(err)
	}
	return date, nil
}
