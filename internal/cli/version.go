package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hsiuhsiu/talib-go/pkg/talib"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print wrapper, TA-Lib and backend versions",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "talib-go %s\n", talib.WrapperVersion())
			fmt.Fprintf(w, "ta-lib   %s\n", talib.UpstreamVersion())
			fmt.Fprintf(w, "backend  %s\n", talib.Backend())
		},
	}
}
