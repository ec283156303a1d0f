package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rezonia/nip24-client/internal/model"
)

var codesCmd = &cobra.Command{
	Use:   "codes",
	Short: "List service and client error codes",
	Long: `List every error code the service can report in /result/error/code,
followed by the codes raised locally by the client (201 and above).`,
	Args: cobra.NoArgs,
	RunE: runCodes,
}

func init() {
	rootCmd.AddCommand(codesCmd)
}

// ErrorCode describes one entry of the error table
type ErrorCode struct {
	Code    int    `json:"code"`
	Name    string `json:"name"`
	Client  bool   `json:"client"`
	Message string `json:"message,omitempty"`
}

func runCodes(cmd *cobra.Command, _ []string) error {
	codes := make([]ErrorCode, 0, len(model.ErrorCodes()))
	for _, code := range model.ErrorCodes() {
		codes = append(codes, ErrorCode{
			Code:    code,
			Name:    model.ErrorName(code),
			Client:  model.IsClientCode(code),
			Message: model.ErrorMessage(code),
		})
	}

	out := cmd.OutOrStdout()
	if outputFormat == "json" {
		return outputJSON(out, codes)
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "CODE\tNAME\tSOURCE\tMESSAGE")
	fmt.Fprintln(tw, "----\t----\t------\t-------")
	for _, c := range codes {
		source := "service"
		if c.Client {
			source = "client"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", c.Code, c.Name, source, c.Message)
	}
	return tw.Flush()
}
