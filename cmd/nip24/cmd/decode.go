package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rezonia/nip24-client/internal/model"
	xmlparser "github.com/rezonia/nip24-client/internal/parser/xml"
)

var decodeKind string

var decodeCmd = &cobra.Command{
	Use:   "decode [files...]",
	Short: "Decode stored service responses",
	Long: `Decode NIP24 XML responses saved to disk, without calling the service.

The payload kind is detected from the result element unless --kind is given.
Directories are searched recursively for .xml files.

Examples:
  nip24 decode response.xml
  nip24 decode responses/ --format table
  nip24 decode invoice.xml --kind invoice`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDecode,
}

func init() {
	rootCmd.AddCommand(decodeCmd)

	decodeCmd.Flags().StringVar(&decodeKind, "kind", "", "Payload kind (invoice, all, vies, vat, iban, whitelist, search, account)")
}

// DecodeResult holds the result of decoding a single file
type DecodeResult struct {
	File   string `json:"file"`
	Kind   string `json:"kind,omitempty"`
	Result any    `json:"result,omitempty"`
	Code   int    `json:"code,omitempty"`
	Error  string `json:"error,omitempty"`
}

func runDecode(cmd *cobra.Command, args []string) error {
	var kind xmlparser.Kind
	if decodeKind != "" {
		k, ok := xmlparser.ParseKind(decodeKind)
		if !ok {
			return fmt.Errorf("unknown payload kind: %s", decodeKind)
		}
		kind = k
	}

	files, err := collectFiles(args)
	if err != nil {
		return err
	}

	if len(files) == 0 {
		return fmt.Errorf("no files found to decode")
	}

	registry := xmlparser.NewRegistry()
	results := make([]*DecodeResult, 0, len(files))
	failed := false

	for _, file := range files {
		printVerbose("Decoding: %s\n", file)

		result := decodeFile(cmd, registry, kind, file)
		results = append(results, result)

		if result.Error != "" {
			failed = true
			printVerbose("  Error: %s\n", result.Error)
		}
	}

	out := cmd.OutOrStdout()
	if outputFormat == "json" {
		if err := outputJSON(out, results); err != nil {
			return err
		}
	} else {
		for _, r := range results {
			if r.Error != "" {
				fmt.Fprintf(out, "✗ %s: %s\n", r.File, r.Error)
				continue
			}
			fmt.Fprintf(out, "✓ %s: %s\n", r.File, r.Kind)
			if err := outputTable(out, r.Result); err != nil {
				return err
			}
			fmt.Fprintln(out)
		}
	}

	if failed {
		return fmt.Errorf("decoding failed for some files")
	}
	return nil
}

func decodeFile(cmd *cobra.Command, registry *xmlparser.Registry, kind xmlparser.Kind, filePath string) *DecodeResult {
	result := &DecodeResult{File: filePath}

	data, err := os.ReadFile(filePath)
	if err != nil {
		result.Error = fmt.Sprintf("failed to read file: %v", err)
		return result
	}

	var decoded any
	if kind != "" {
		result.Kind = string(kind)
		decoded, err = registry.DecodeAs(kind, data)
	} else {
		var detected xmlparser.Kind
		detected, decoded, err = registry.Decode(cmd.Context(), data)
		result.Kind = string(detected)
	}
	if err != nil {
		result.Code = model.Code(err)
		result.Error = err.Error()
		return result
	}

	result.Result = decoded
	return result
}

func collectFiles(args []string) ([]string, error) {
	var files []string

	for _, arg := range args {
		matches, err := filepath.Glob(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %s: %w", arg, err)
		}

		if len(matches) == 0 {
			return nil, fmt.Errorf("file not found: %s", arg)
		}

		for _, match := range matches {
			info, err := os.Stat(match)
			if err != nil {
				continue
			}

			if !info.IsDir() {
				files = append(files, match)
				continue
			}

			err = filepath.Walk(match, func(path string, info os.FileInfo, err error) error {
				if err != nil {
					return err
				}
				if !info.IsDir() && strings.EqualFold(filepath.Ext(path), ".xml") {
					files = append(files, path)
				}
				return nil
			})
			if err != nil {
				return nil, err
			}
		}
	}

	return files, nil
}
