package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newPayersCommand(deps Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "payers",
		Short: "Lista los perfiles de pagador",
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "NOMBRE\tCUENTA\tTAXCODE")
			for _, p := range deps.Conversion.Payers() {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", p.Name, p.Account, p.TaxCode)
			}
			return tw.Flush()
		},
	}
}
