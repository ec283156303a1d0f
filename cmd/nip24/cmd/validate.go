package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rezonia/nip24-client/internal/model"
	"github.com/rezonia/nip24-client/internal/number"
)

var validateCmd = &cobra.Command{
	Use:   "validate <kind> <numbers...>",
	Short: "Validate identifiers offline",
	Long: `Normalize and validate one or more identifiers without calling the service.

Kinds: nip, regon, krs, euvat, iban (or their ordinals 1-5).

Checks performed:
  - NIP: 10 digits with a mod-11 check digit
  - REGON: 9 or 14 digits with mod-11 check digits
  - KRS: up to 10 digits, zero padded
  - EU VAT: country prefix and per-country format
  - IBAN: country length and mod-97 checksum

Examples:
  nip24 validate nip 123-456-32-18
  nip24 validate iban "PL61 1090 1014 0000 0712 1981 2874" --format table`,
	Args: cobra.MinimumNArgs(2),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

// ValidationResult holds the validation outcome of one identifier
type ValidationResult struct {
	Input      string `json:"input"`
	Kind       string `json:"kind"`
	Valid      bool   `json:"valid"`
	Normalized string `json:"normalized,omitempty"`
}

func runValidate(cmd *cobra.Command, args []string) error {
	kind, ok := model.ParseNumber(args[0])
	if !ok {
		return fmt.Errorf("unknown identifier kind: %s", args[0])
	}

	results := make([]*ValidationResult, 0, len(args)-1)
	allValid := true

	for _, raw := range args[1:] {
		result := validateNumber(kind, raw)
		results = append(results, result)

		if !result.Valid {
			allValid = false
		}
	}

	out := cmd.OutOrStdout()
	if outputFormat == "json" {
		if err := outputJSON(out, results); err != nil {
			return err
		}
	} else {
		for _, r := range results {
			if r.Valid {
				fmt.Fprintf(out, "✓ %s %s: VALID (%s)\n", r.Kind, r.Input, r.Normalized)
			} else {
				fmt.Fprintf(out, "✗ %s %s: INVALID\n", r.Kind, r.Input)
			}
		}
	}

	if !allValid {
		return fmt.Errorf("validation failed for some numbers")
	}

	return nil
}

func validateNumber(kind model.Number, raw string) *ValidationResult {
	result := &ValidationResult{
		Input: raw,
		Kind:  kind.String(),
		Valid: number.IsValid(kind, raw),
	}
	if result.Valid {
		result.Normalized, _ = number.Normalize(kind, raw)
	}
	return result
}
