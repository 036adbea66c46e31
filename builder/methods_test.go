package builder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ldpcgen/builder"
)

func TestRegularMethodNames(t *testing.T) {
	t.Parallel()

	for _, name := range builder.RegularMethodNames() {
		m, err := builder.ParseRegularMethod(name)
		require.NoError(t, err)
		require.Equal(t, name, m.String())
	}
	require.Equal(t, []string{"gallager", "populate-rows", "populate-columns"}, builder.RegularMethodNames())

	_, err := builder.ParseRegularMethod("Gallager")
	require.ErrorIs(t, err, builder.ErrInvalidConstruction)
	require.Equal(t, "RegularMethod(9)", builder.RegularMethod(9).String())
}

func TestSubmatrixMethodNames(t *testing.T) {
	t.Parallel()

	for _, name := range builder.SubmatrixMethodNames() {
		m, err := builder.ParseSubmatrixMethod(name)
		require.NoError(t, err)
		require.Equal(t, name, m.String())
	}
	require.Equal(t,
		[]string{"permutation", "regular", "quasi-cyclic", "permuted-quasi-cyclic"},
		builder.SubmatrixMethodNames())

	_, err := builder.ParseSubmatrixMethod("circulant")
	require.ErrorIs(t, err, builder.ErrInvalidConstruction)
	require.Equal(t, "SubmatrixMethod(-1)", builder.SubmatrixMethod(-1).String())
}
