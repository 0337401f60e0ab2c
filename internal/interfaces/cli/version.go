package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Muestra la versión",
		Run: func(cmd *cobra.Command, _ []string) {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "payord %s\n", Version)
			fmt.Fprintf(w, "Build Date: %s\n", BuildDate)
			fmt.Fprintf(w, "Go Version: %s\n", runtime.Version())
		},
	}
}
