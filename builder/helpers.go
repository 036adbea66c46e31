// Package builder provides internal helper functions shared by the
// constructors.
//
// Design principles:
//   - Single Responsibility: each helper does one well-defined job.
//   - All randomness comes from the *rand.Rand passed in.
package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/ldpcgen/tanner"
)

// graphFromRows allocates a height×width graph and installs rows via SetRow,
// so the structural invariant is re-checked on the way in.
func graphFromRows(method string, rows [][]int, width int) (*tanner.Graph, error) {
	g, err := tanner.NewGraph(len(rows), width)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	for i, row := range rows {
		if err = g.SetRow(i, row); err != nil {
			return nil, fmt.Errorf("%s: %w", method, err)
		}
	}

	return g, nil
}

// sequence returns [0, 1, …, n-1].
func sequence(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}

// randomAbsent picks uniformly among indices i with !used[i].
// Returns -1 when every index is used.
func randomAbsent(rng *rand.Rand, used []bool) int {
	free := 0
	for _, u := range used {
		if !u {
			free++
		}
	}
	if free == 0 {
		return -1
	}
	k := rng.Intn(free)
	for i, u := range used {
		if u {
			continue
		}
		if k == 0 {
			return i
		}
		k--
	}

	return -1
}
