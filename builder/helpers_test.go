package builder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ldpcgen/builder"
	"github.com/katalvlaran/ldpcgen/tanner"
)

// build runs con with a fixed seed and requires success.
func build(t *testing.T, seed int64, con builder.Constructor, opts ...builder.BuilderOption) *tanner.Graph {
	t.Helper()
	g, err := builder.BuildCode(append([]builder.BuilderOption{builder.WithSeed(seed)}, opts...), con)
	require.NoError(t, err)
	require.NoError(t, g.Validate())
	return g
}

// requireAll asserts every element of ws equals want.
func requireAll(t *testing.T, ws []int, want int, what string) {
	t.Helper()
	for i, w := range ws {
		require.Equal(t, want, w, "%s %d", what, i)
	}
}

// sum adds up ws.
func sum(ws []int) int {
	s := 0
	for _, w := range ws {
		s += w
	}
	return s
}

// blockWeights returns the row and column weights of the f×f block at
// block coordinates (bi, bj).
func blockWeights(g *tanner.Graph, f, bi, bj int) (rows, cols []int) {
	rows = make([]int, f)
	cols = make([]int, f)
	for r := 0; r < f; r++ {
		for _, c := range g.Row(bi*f + r) {
			if c >= bj*f && c < (bj+1)*f {
				rows[r]++
				cols[c-bj*f]++
			}
		}
	}
	return rows, cols
}

// blockRow returns the columns of block row r inside block (bi, bj),
// relative to the block origin.
func blockRow(g *tanner.Graph, f, bi, bj, r int) []int {
	var out []int
	for _, c := range g.Row(bi*f + r) {
		if c >= bj*f && c < (bj+1)*f {
			out = append(out, c-bj*f)
		}
	}
	return out
}
