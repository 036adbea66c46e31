package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ldpcgen/builder"
	"github.com/katalvlaran/ldpcgen/protograph"
)

func newProtographCmd() *cobra.Command {
	var (
		file   string
		matrix string
		factor int
		method string
		gen    genFlags
	)

	cmd := &cobra.Command{
		Use:   "protograph",
		Short: "Lift a protograph into a full LDPC code",
		Long: `Lift a weighted protograph by a factor f: every nonzero entry v becomes an
f×f block with v ones per row and column. The protograph comes from a TOML
document (--file) or inline (--matrix "2,1;1,2"). Flags override document
fields.

Methods: ` + strings.Join(builder.SubmatrixMethodNames(), ", "),
		Example: `  ldpcgen protograph --matrix "2,1;1,2" --factor 3 --method quasi-cyclic --seed 1
  ldpcgen protograph --file code.toml --format dense`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadProtographInput(file, matrix)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("factor") {
				doc.Factor = factor
			}
			if cmd.Flags().Changed("method") || doc.Construction == "" {
				doc.Construction = method
			}
			if doc.Factor < builder.MinLiftFactor {
				return fmt.Errorf("--factor must be ≥ %d, got %d", builder.MinLiftFactor, doc.Factor)
			}

			p, err := doc.Protograph()
			if err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Debug("protograph loaded",
				"height", p.Height(), "width", p.Width(), "factor", doc.Factor, "method", doc.Construction)

			seed := gen.resolveSeed(cmd, doc.Seed)
			return generate(cmd, &gen, seed, builder.ProtographArgs(p, doc.Factor, doc.Construction))
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "TOML protograph document")
	cmd.Flags().StringVar(&matrix, "matrix", "", `inline protograph, rows separated by ';' (e.g. "2,1;1,2")`)
	cmd.Flags().IntVar(&factor, "factor", 0, "lift factor f")
	cmd.Flags().StringVar(&method, "method", builder.RegularBlock.String(), "submatrix construction")
	cmd.MarkFlagsMutuallyExclusive("file", "matrix")
	cmd.MarkFlagsOneRequired("file", "matrix")
	gen.register(cmd)

	return cmd
}

// loadProtographInput returns a Document from either the TOML file or the
// inline matrix.
func loadProtographInput(file, matrix string) (*protograph.Document, error) {
	if file != "" {
		return protograph.LoadFile(file)
	}
	if matrix == "" {
		return nil, errors.New("one of --file or --matrix is required")
	}
	p, err := protograph.Parse(matrix)
	if err != nil {
		return nil, err
	}
	return &protograph.Document{Matrix: p.Rows()}, nil
}
