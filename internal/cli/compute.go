package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hsiuhsiu/talib-go/pkg/talib"
)

func newComputeCommand(a *app) *cobra.Command {
	var (
		input     string
		params    []string
		format    string
		precision int
	)
	cmd := &cobra.Command{
		Use:   "compute NAME",
		Short: "Run one indicator over a CSV file of candles",
		Long: `Run the indicator NAME (see "talib-go functions") over the candles in
--input and print one row per input index from the first computed value on.

The CSV needs a header row. Recognised columns are time, open, high, low,
close, volume and real (any case); real falls back to close. Use - to read
standard input.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ind, err := talib.Lookup(args[0])
			if err != nil {
				return err
			}
			p, err := parseParams(params)
			if err != nil {
				return err
			}
			candles, err := readInput(cmd.InOrStdin(), input)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			lib, err := a.open(ctx)
			if err != nil {
				return err
			}
			defer a.close(ctx, lib)

			out, err := ind.Compute(candles.Inputs, p)
			if err != nil {
				return err
			}
			res := newResult(candles, out, precision)
			a.log.Debug(ctx, "indicator computed", "name", ind.Name, "candles", candles.Len(), "rows", res.rows())
			return render(cmd.OutOrStdout(), format, res)
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", "CSV file of candles, - for stdin (required)")
	cmd.Flags().StringArrayVarP(&params, "param", "p", nil, "indicator parameter as key=value (repeatable)")
	cmd.Flags().StringVarP(&format, "format", "f", FormatTable, "output format ("+strings.Join(formats, ", ")+")")
	cmd.Flags().IntVar(&precision, "precision", -1, "round outputs to this many decimals (-1 keeps full precision)")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

func parseParams(kvs []string) (talib.Params, error) {
	p := make(talib.Params, len(kvs))
	for _, kv := range kvs {
		k, v, ok := strings.Cut(kv, "=")
		k = strings.TrimSpace(k)
		if !ok || k == "" {
			return nil, fmt.Errorf("--param %q: want key=value", kv)
		}
		p[k] = v
	}
	return p, nil
}

func readInput(stdin io.Reader, path string) (*Candles, error) {
	if path == "-" {
		return ReadCandles(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadCandles(f)
}
