package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/hsiuhsiu/talib-go/pkg/talib"
)

func newFunctionsCommand(a *app) *cobra.Command {
	var (
		group  string
		native bool
	)
	cmd := &cobra.Command{
		Use:   "functions",
		Short: "List the available indicators",
		Long: `List the indicators compute understands, with their inputs, parameters
(and defaults) and outputs.

With --native the function catalogue of the linked TA-Lib is printed instead.
That needs a binary built with -tags talib.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if native {
				return a.listNative(cmd, group)
			}
			return listRegistry(cmd.OutOrStdout(), group)
		},
	}
	cmd.Flags().StringVarP(&group, "group", "g", "", "only list this group (case-insensitive)")
	cmd.Flags().BoolVar(&native, "native", false, "list the native TA-Lib catalogue")
	return cmd
}

func listRegistry(w io.Writer, group string) error {
	if group != "" && !knownGroup(group) {
		return fmt.Errorf("unknown group %q (groups: %s)", group, strings.Join(talib.Groups(), ", "))
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tGROUP\tINPUTS\tPARAMS\tOUTPUTS\tDESCRIPTION")
	for _, ind := range talib.Indicators() {
		if group != "" && !strings.EqualFold(ind.Group, group) {
			continue
		}
		inputs := make([]string, len(ind.Inputs))
		for i, k := range ind.Inputs {
			inputs[i] = string(k)
		}
		params := make([]string, len(ind.Params))
		for i, p := range ind.Params {
			params[i] = p.Name + "=" + p.Default
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", ind.Name, ind.Group,
			strings.Join(inputs, ","), dash(strings.Join(params, ",")), strings.Join(ind.Outputs, ","), ind.Hint)
	}
	return tw.Flush()
}

func (a *app) listNative(cmd *cobra.Command, group string) error {
	ctx := cmd.Context()
	lib, err := a.open(ctx)
	if err != nil {
		return err
	}
	defer a.close(ctx, lib)

	fns, err := lib.Functions()
	if errors.Is(err, talib.ErrNotBuilt) {
		return fmt.Errorf("%w: rebuild with -tags talib to list the native catalogue", err)
	}
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tGROUP\tINPUTS\tOPTIONAL\tOUTPUTS\tDESCRIPTION")
	for _, fn := range fns {
		if group != "" && !strings.EqualFold(fn.Group, group) {
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", fn.Name, fn.Group,
			paramNames(fn.Inputs), dash(paramNames(fn.OptInputs)), paramNames(fn.Outputs), fn.Hint)
	}
	return tw.Flush()
}

func paramNames(ps []talib.ParamInfo) string {
	names := make([]string, len(ps))
	for i, p := range ps {
		names[i] = p.Name
	}
	return strings.Join(names, ",")
}

func knownGroup(group string) bool {
	for _, g := range talib.Groups() {
		if strings.EqualFold(g, group) {
			return true
		}
	}
	return false
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
