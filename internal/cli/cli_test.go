package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ldpcgen/builder"
	"github.com/katalvlaran/ldpcgen/protograph"
)

// run executes the root command with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func lines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

func TestRegularSparse(t *testing.T) {
	out, logs, err := run(t, "regular", "-n", "8", "-r", "4", "-c", "2", "--seed", "1")
	require.NoError(t, err)

	rows := lines(out)
	require.Len(t, rows, 4)
	for _, row := range rows {
		_, cols, ok := strings.Cut(row, ":")
		require.True(t, ok, row)
		require.Len(t, strings.Fields(cols), 4)
	}
	require.Contains(t, logs, "generated code")
}

func TestRegularIsReproducible(t *testing.T) {
	for _, method := range builder.RegularMethodNames() {
		a, _, err := run(t, "regular", "-n", "12", "-r", "4", "-c", "3", "--method", method, "--seed", "42")
		require.NoError(t, err, method)
		b, _, err := run(t, "regular", "-n", "12", "-r", "4", "-c", "3", "--method", method, "--seed", "42")
		require.NoError(t, err, method)
		require.Equal(t, a, b, method)
	}
}

func TestRegularDenseBatch(t *testing.T) {
	out, _, err := run(t, "regular", "-n", "6", "-r", "3", "-c", "2",
		"--method", "gallager", "--seed", "5", "--count", "2", "--format", "dense")
	require.NoError(t, err)

	rows := lines(out)
	require.Equal(t, "# code 0 seed=5", rows[0])
	require.Equal(t, "# code 1 seed=6", rows[5])
	require.Len(t, rows, 10)
	require.True(t, strings.HasPrefix(rows[1], "["))
}

func TestRegularRejectsBadInput(t *testing.T) {
	_, _, err := run(t, "regular", "-n", "8", "-r", "4", "-c", "2", "--method", "bogus")
	require.ErrorIs(t, err, builder.ErrInvalidConstruction)

	_, _, err = run(t, "regular", "-n", "8", "-r", "4", "-c", "2", "--format", "xml")
	require.ErrorContains(t, err, "unknown format")

	_, _, err = run(t, "regular", "-n", "8", "-r", "4", "-c", "2", "--max-attempts", "0")
	require.ErrorContains(t, err, "--max-attempts")

	_, _, err = run(t, "regular", "-n", "8", "-r", "0", "-c", "2")
	require.ErrorIs(t, err, builder.ErrInvalidArguments)

	_, _, err = run(t, "regular", "-n", "8")
	require.Error(t, err, "row and column weight are required")
}

func TestProtographInline(t *testing.T) {
	out, _, err := run(t, "protograph", "--matrix", "2,1;1,2", "--factor", "3",
		"--method", "quasi-cyclic", "--seed", "1")
	require.NoError(t, err)

	rows := lines(out)
	require.Len(t, rows, 6)
	for _, row := range rows {
		_, cols, _ := strings.Cut(row, ":")
		require.Len(t, strings.Fields(cols), 3)
	}
}

func TestProtographFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "code.toml")
	doc := `factor = 4
construction = "permutation"
seed = 9
matrix = [[1, 2], [2, 1]]
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	first, _, err := run(t, "protograph", "--file", path)
	require.NoError(t, err)
	require.Len(t, lines(first), 8)

	again, _, err := run(t, "protograph", "-f", path)
	require.NoError(t, err)
	require.Equal(t, first, again, "document seed makes the lift reproducible")

	// --factor overrides the document.
	out, _, err := run(t, "protograph", "--file", path, "--factor", "5")
	require.NoError(t, err)
	require.Len(t, lines(out), 10)
}

func TestProtographRejectsBadInput(t *testing.T) {
	_, _, err := run(t, "protograph", "--matrix", "2,x", "--factor", "3")
	require.ErrorIs(t, err, protograph.ErrSyntax)

	_, _, err = run(t, "protograph", "--matrix", "2,1")
	require.ErrorContains(t, err, "--factor")

	_, _, err = run(t, "protograph", "--matrix", "4,1", "--factor", "3", "--seed", "1")
	require.ErrorIs(t, err, builder.ErrInvalidProtograph)

	_, _, err = run(t, "protograph")
	require.Error(t, err, "one of --file or --matrix is required")

	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("factor = 3\nmatrx = [[1]]\n"), 0o600))
	_, _, err = run(t, "protograph", "--file", path, "--matrix", "1")
	require.Error(t, err, "file and matrix are mutually exclusive")
	_, _, err = run(t, "protograph", "--file", path)
	require.ErrorIs(t, err, protograph.ErrDocument)
}

func TestWeightRange(t *testing.T) {
	require.Equal(t, "-", weightRange(nil))
	require.Equal(t, "3", weightRange([]int{3, 3}))
	require.Equal(t, "2..4", weightRange([]int{4, 2, 3}))
}
