// SPDX-License-Identifier: MIT
// Package: ldpcgen/builder
//
// impl_cyclic.go - circulant (quasi-cyclic) f×f submatrices.
//
// Canonical model:
//   - Row 0 holds v distinct column indices.
//   - Row i+1 is row i with every index advanced by one (mod f), so the block
//     is a circulant with row and column weight exactly v.
//   - quasi-cyclic:          row 0 = v distinct random indices.
//   - permuted-quasi-cyclic: row 0 = 0..v-1, then rows and columns are
//     permuted independently, which keeps both weights at v.
//
// Complexity:
//   - O(f·v) time and space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/ldpcgen/tanner"
)

// cyclicSubmatrix writes f rows, each the right cyclic shift of the previous.
func cyclicSubmatrix(f int, first []int) (*tanner.Graph, error) {
	g, err := tanner.NewGraph(f, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodCyclic, err)
	}

	row := first
	for i := 0; i < f; i++ {
		if err = g.SetRow(i, row); err != nil {
			return nil, fmt.Errorf("%s: row %d: %w", methodCyclic, i, err)
		}
		next := make([]int, len(row))
		for k, c := range row {
			next[k] = (c + 1) % f
		}
		row = next
	}

	return g, nil
}

func quasiCyclic(cfg builderConfig, f, v int) (*tanner.Graph, error) {
	first := cfg.rng.Perm(f)[:v]

	return cyclicSubmatrix(f, first)
}

func permutedQuasiCyclic(cfg builderConfig, f, v int) (*tanner.Graph, error) {
	g, err := cyclicSubmatrix(f, sequence(v))
	if err != nil {
		return nil, err
	}
	g.PermuteRows(cfg.rng)
	g.PermuteColumns(cfg.rng)

	return g, nil
}
