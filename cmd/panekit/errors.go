package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/panekit/panekit/internal/errors"
)

func errorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "errors [code]",
		Short: "Explain panekit error codes",
		Long: `List every panekit error code, or explain one.

Examples:
  panekit errors
  panekit errors E100`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return explainError(cmd.OutOrStdout(), args[0])
			}
			return listErrors(cmd.OutOrStdout())
		},
	}
}

func listErrors(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "CODE\tCATEGORY\tMESSAGE")
	for _, code := range errors.GetAllCodes() {
		t, _ := errors.GetTemplate(code)
		fmt.Fprintf(tw, "%s\t%s\t%s\n", code, t.Category, t.Message)
	}
	return tw.Flush()
}

func explainError(w io.Writer, code string) error {
	code = strings.ToUpper(code)
	if _, ok := errors.GetTemplate(code); !ok {
		return fmt.Errorf("unknown error code %q", code)
	}
	_, err := io.WriteString(w, errors.New(code).Format())
	return err
}
