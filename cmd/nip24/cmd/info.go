package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rezonia/nip24-client/internal/model"
	"github.com/rezonia/nip24-client/internal/number"
)

var infoCmd = &cobra.Command{
	Use:   "info <numbers...>",
	Short: "Show which identifier kinds a number is valid as",
	Long: `Display every identifier kind each input validates as, with its
normalized form.

Examples:
  nip24 info 1234563218
  nip24 info DE89370400440532013000 123456785 --format table`,
	Args: cobra.MinimumNArgs(1),
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

// NumberInfo lists the kinds an input is valid as
type NumberInfo struct {
	Input string            `json:"input"`
	Kinds map[string]string `json:"kinds"`
}

func runInfo(cmd *cobra.Command, args []string) error {
	infos := make([]*NumberInfo, 0, len(args))
	for _, raw := range args {
		infos = append(infos, numberInfo(raw))
	}

	out := cmd.OutOrStdout()
	if outputFormat == "json" {
		return outputJSON(out, infos)
	}

	for _, info := range infos {
		fmt.Fprintf(out, "Input: %s\n", info.Input)
		if len(info.Kinds) == 0 {
			fmt.Fprintln(out, "  (no valid kind)")
		}
		for _, kind := range model.Numbers {
			if n, ok := info.Kinds[kind.String()]; ok {
				fmt.Fprintf(out, "  %-6s %s\n", kind.String()+":", n)
			}
		}
		fmt.Fprintln(out)
	}

	return nil
}

func numberInfo(raw string) *NumberInfo {
	info := &NumberInfo{
		Input: raw,
		Kinds: map[string]string{},
	}
	for _, kind := range number.Detect(raw) {
		n, _ := number.Normalize(kind, raw)
		info.Kinds[kind.String()] = n
	}
	return info
}
