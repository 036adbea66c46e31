package cli

import (
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ldpcgen/builder"
	"github.com/katalvlaran/ldpcgen/tanner"
)

// Output formats accepted by --format.
const (
	formatSparse = "sparse"
	formatDense  = "dense"
)

// genFlags holds the flags shared by every generating command.
type genFlags struct {
	seed        int64
	count       int
	format      string
	maxAttempts int
}

func (f *genFlags) register(cmd *cobra.Command) {
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "random seed (default: derived from the clock and logged)")
	cmd.Flags().IntVar(&f.count, "count", 1, "number of independent codes to generate")
	cmd.Flags().StringVar(&f.format, "format", formatSparse, "output format: sparse or dense")
	cmd.Flags().IntVar(&f.maxAttempts, "max-attempts", builder.DefaultMaxAttempts,
		"rejection-sampling cap per permutation in permutation blocks")
}

// resolveSeed returns the --seed value, else fallback when set, else a
// clock-derived seed.
func (f *genFlags) resolveSeed(cmd *cobra.Command, fallback *int64) int64 {
	switch {
	case cmd.Flags().Changed("seed"):
		return f.seed
	case fallback != nil:
		return *fallback
	default:
		return time.Now().UnixNano()
	}
}

// generate builds f.count codes with con and prints them to the command's
// output writer.
func generate(cmd *cobra.Command, f *genFlags, seed int64, con builder.Constructor) error {
	if f.format != formatSparse && f.format != formatDense {
		return fmt.Errorf("unknown format %q (want %s or %s)", f.format, formatSparse, formatDense)
	}
	if f.maxAttempts < 1 {
		return fmt.Errorf("--max-attempts must be ≥ 1, got %d", f.maxAttempts)
	}

	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	logger.Debug("generating", "count", f.count, "seed", seed)

	opts := []builder.BuilderOption{
		builder.WithLogger(logger),
		builder.WithMaxAttempts(f.maxAttempts),
	}

	var graphs []*tanner.Graph
	if f.count == 1 {
		g, err := builder.BuildCode(append(opts, builder.WithSeed(seed)), con)
		if err != nil {
			return err
		}
		graphs = []*tanner.Graph{g}
	} else {
		var err error
		if graphs, err = builder.BuildBatch(ctx, f.count, seed, opts, con); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	for i, g := range graphs {
		logger.Info("generated code",
			"seed", seed+int64(i),
			"width", g.Width(), "height", g.Height(), "edges", g.EdgeCount(),
			"row_weight", weightRange(g.RowWeights()),
			"column_weight", weightRange(g.ColumnWeights()))
		if len(graphs) > 1 {
			fmt.Fprintf(out, "# code %d seed=%d\n", i, seed+int64(i))
		}
		if err := writeGraph(out, g, f.format); err != nil {
			return err
		}
	}

	return nil
}

// weightRange renders the min..max of ws, or the single value when regular.
func weightRange(ws []int) string {
	if len(ws) == 0 {
		return "-"
	}
	lo, hi := slices.Min(ws), slices.Max(ws)
	if lo == hi {
		return strconv.Itoa(lo)
	}
	return strconv.Itoa(lo) + ".." + strconv.Itoa(hi)
}
