package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ldpcgen/builder"
)

func newRegularCmd() *cobra.Command {
	var (
		n, r, c int
		method  string
		gen     genFlags
	)

	cmd := &cobra.Command{
		Use:   "regular",
		Short: "Generate a regular LDPC code from length, row weight and column weight",
		Long: `Generate a regular LDPC code of length n with row weight r and column weight c.
The number of check nodes is n·c/r (c·(n/r) for gallager).

Methods: ` + strings.Join(builder.RegularMethodNames(), ", "),
		Example: `  ldpcgen regular -n 8 -r 4 -c 2 --method populate-rows --seed 1
  ldpcgen regular -n 96 -r 6 -c 3 --method gallager --count 4 --format dense`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := builder.ParseRegularMethod(method); err != nil {
				return fmt.Errorf("--method: %w", err)
			}
			seed := gen.resolveSeed(cmd, nil)
			return generate(cmd, &gen, seed, builder.RegularArgs(method, n, r, c))
		},
	}

	cmd.Flags().IntVarP(&n, "length", "n", 0, "codeword length (number of variable nodes)")
	cmd.Flags().IntVarP(&r, "row-weight", "r", 0, "ones per row (check-node degree)")
	cmd.Flags().IntVarP(&c, "column-weight", "c", 0, "ones per column (variable-node degree)")
	cmd.Flags().StringVar(&method, "method", builder.PopulateRows.String(), "construction method")
	for _, name := range []string{"length", "row-weight", "column-weight"} {
		_ = cmd.MarkFlagRequired(name)
	}
	gen.register(cmd)

	return cmd
}
