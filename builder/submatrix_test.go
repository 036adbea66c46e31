package builder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ldpcgen/builder"
	"github.com/katalvlaran/ldpcgen/protograph"
	"github.com/katalvlaran/ldpcgen/tanner"
)

// TestPermutationSumIsBiregular: k non-overlapping permutations of size f
// give row and column weight exactly k.
func TestPermutationSumIsBiregular(t *testing.T) {
	t.Parallel()

	const f = 7
	for k := 1; k <= 4; k++ {
		g := build(t, int64(k), builder.Submatrix(builder.PermutationSum, f, k))
		require.Equal(t, f, g.Height())
		require.Equal(t, f, g.Width())
		requireAll(t, g.RowWeights(), k, "row")
		requireAll(t, g.ColumnWeights(), k, "column")
	}
}

// TestPermutationSumFullBlock: k = f on a small block fills every cell.
func TestPermutationSumFullBlock(t *testing.T) {
	t.Parallel()

	g := build(t, 5, builder.Submatrix(builder.PermutationSum, 3, 3))
	require.Equal(t, 9, g.EdgeCount())
	requireAll(t, g.RowWeights(), 3, "row")
}

// TestPermutationSumDenseDefaults: multiplicities near or equal to f succeed
// under the default attempt cap.
func TestPermutationSumDenseDefaults(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct{ f, k int }{{9, 9}, {9, 8}, {9, 7}, {9, 5}, {12, 11}, {8, 4}} {
		for seed := int64(0); seed < 10; seed++ {
			g := build(t, seed, builder.Submatrix(builder.PermutationSum, tc.f, tc.k))
			requireAll(t, g.RowWeights(), tc.k, "row")
			requireAll(t, g.ColumnWeights(), tc.k, "column")
		}
	}

	p, err := protograph.FromRows([][]int{{9}})
	require.NoError(t, err)
	g := build(t, 1, builder.Protograph(p, 9, builder.PermutationSum))
	require.Equal(t, 81, g.EdgeCount())
}

// TestPermutationSumExhausted: with one draw per absorption, a half-dense
// 8×8 sum almost never completes and must fail instead of looping.
func TestPermutationSumExhausted(t *testing.T) {
	t.Parallel()

	failures := 0
	for seed := int64(0); seed < 10; seed++ {
		g, err := builder.BuildCode(
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithMaxAttempts(1)},
			builder.Submatrix(builder.PermutationSum, 8, 4),
		)
		if err == nil {
			requireAll(t, g.RowWeights(), 4, "row")
			continue
		}
		require.ErrorIs(t, err, builder.ErrConstructionExhausted)
		require.Nil(t, g)
		failures++
	}
	require.Positive(t, failures)
}

// TestQuasiCyclicShift: row i+1 equals row i shifted by +1 mod f.
func TestQuasiCyclicShift(t *testing.T) {
	t.Parallel()

	const f, v = 6, 3
	g := build(t, 8, builder.Submatrix(builder.QuasiCyclic, f, v))
	requireAll(t, g.RowWeights(), v, "row")
	requireAll(t, g.ColumnWeights(), v, "column")

	for i := 0; i+1 < f; i++ {
		shifted := make([]int, 0, v)
		for _, c := range g.Row(i) {
			shifted = append(shifted, (c+1)%f)
		}
		require.ElementsMatch(t, shifted, g.Row(i+1), "row %d → %d", i, i+1)
	}
	// the shift wraps around: row f-1 shifted is row 0
	wrapped := make([]int, 0, v)
	for _, c := range g.Row(f - 1) {
		wrapped = append(wrapped, (c+1)%f)
	}
	require.ElementsMatch(t, wrapped, g.Row(0))
}

// TestPermutedQuasiCyclicWeights: permutation keeps both weights at v.
func TestPermutedQuasiCyclicWeights(t *testing.T) {
	t.Parallel()

	for v := 1; v <= 5; v++ {
		g := build(t, int64(30+v), builder.Submatrix(builder.PermutedQuasiCyclic, 5, v))
		requireAll(t, g.RowWeights(), v, "row")
		requireAll(t, g.ColumnWeights(), v, "column")
	}
}

// TestPermutedQuasiCyclicIsPermuted: rows and columns are relabelled, so the
// block is not the plain circulant seeded with 0..v-1.
func TestPermutedQuasiCyclicIsPermuted(t *testing.T) {
	t.Parallel()

	const f, v = 6, 2
	plain, err := tanner.NewGraph(f, f)
	require.NoError(t, err)
	for i := 0; i < f; i++ {
		require.NoError(t, plain.SetRow(i, []int{i, (i + 1) % f}))
	}

	for seed := int64(1); seed <= 5; seed++ {
		g := build(t, seed, builder.Submatrix(builder.PermutedQuasiCyclic, f, v))
		require.NotEqual(t, plain.String(), g.String(), "seed %d", seed)
		requireAll(t, g.RowWeights(), v, "row")
		requireAll(t, g.ColumnWeights(), v, "column")
	}
}

// TestRegularBlockRows: the regular block has exact row weight v.
func TestRegularBlockRows(t *testing.T) {
	t.Parallel()

	g := build(t, 12, builder.Submatrix(builder.RegularBlock, 6, 2))
	require.Equal(t, 6, g.Height())
	requireAll(t, g.RowWeights(), 2, "row")
	require.Equal(t, 12, g.EdgeCount())
}

// TestSubmatrixErrors covers argument validation of the block factory.
func TestSubmatrixErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		con     builder.Constructor
		wantErr error
	}{
		{"weight above factor", builder.Submatrix(builder.QuasiCyclic, 3, 4), builder.ErrInvalidArguments},
		{"zero weight", builder.Submatrix(builder.QuasiCyclic, 3, 0), builder.ErrInvalidArguments},
		{"zero factor", builder.Submatrix(builder.PermutationSum, 0, 1), builder.ErrInvalidArguments},
		{"unknown method", builder.Submatrix(builder.SubmatrixMethod(42), 3, 1), builder.ErrInvalidConstruction},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.BuildCode([]builder.BuilderOption{builder.WithSeed(1)}, tc.con)
			require.ErrorIs(t, err, tc.wantErr)
		})
	}

	_, err := builder.BuildCode(nil, builder.Submatrix(builder.QuasiCyclic, 3, 1))
	require.ErrorIs(t, err, builder.ErrNeedRandSource)
}
