package cli

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/katalvlaran/ldpcgen/tanner"
)

// writeGraph prints g in the requested format.
//
//	sparse: one line per check node, "row: c0 c1 …" with ascending columns
//	dense:  the 0/1 matrix, one bracketed row per line
func writeGraph(w io.Writer, g *tanner.Graph, format string) error {
	if format == formatDense {
		_, err := io.WriteString(w, g.String())
		return err
	}

	bw := bufio.NewWriter(w)
	for i, cols := range g.All() {
		slices.Sort(cols)
		bw.WriteString(strconv.Itoa(i))
		bw.WriteByte(':')
		for _, c := range cols {
			bw.WriteByte(' ')
			bw.WriteString(strconv.Itoa(c))
		}
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write graph: %w", err)
	}
	return nil
}
