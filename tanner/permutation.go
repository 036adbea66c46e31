// SPDX-License-Identifier: MIT
// Package: ldpcgen/tanner
//
// permutation.go - square 0/1 matrices with exactly one entry per row and column.
//
// Contract:
//   - A Permutation stores row → column; it is always a bijection on [0,size).
//   - Two permutations overlap iff some row maps to the same column in both.
//   - Absorbing a non-overlapping permutation yields a Graph whose rows may hold
//     several columns; further permutations are absorbed into that Graph.

package tanner

import (
	"fmt"
	"math/rand"
	"slices"
)

const ctxAbsorb = "Absorb"

// Permutation is a size×size permutation matrix.
type Permutation struct {
	cols []int
}

// NewPermutation validates cols as a bijection on [0,len(cols)) and wraps it.
// Returns ErrNotPermutation if an index is out of range or repeated.
func NewPermutation(cols []int) (*Permutation, error) {
	seen := make([]bool, len(cols))
	for row, c := range cols {
		if c < 0 || c >= len(cols) || seen[c] {
			return nil, fmt.Errorf("NewPermutation: row %d → %d: %w", row, c, ErrNotPermutation)
		}
		seen[c] = true
	}

	return &Permutation{cols: slices.Clone(cols)}, nil
}

// RandomPermutation draws a uniform random bijection size → size from rng.
// A non-positive size yields the empty permutation.
func RandomPermutation(size int, rng *rand.Rand) *Permutation {
	if size <= 0 {
		return &Permutation{}
	}

	return &Permutation{cols: rng.Perm(size)}
}

// Size returns the dimension of the permutation matrix.
func (p *Permutation) Size() int { return len(p.cols) }

// At returns the column selected by row, or -1 if row is out of range.
func (p *Permutation) At(row int) int {
	if row < 0 || row >= len(p.cols) {
		return -1
	}

	return p.cols[row]
}

// Cols returns a copy of the row → column mapping.
func (p *Permutation) Cols() []int { return slices.Clone(p.cols) }

// Overlaps reports whether any row maps to the same column in p and other,
// i.e. whether p+other would place two ones in one cell.
func (p *Permutation) Overlaps(other *Permutation) bool {
	if other == nil {
		return false
	}
	n := min(len(p.cols), len(other.cols))
	for row := 0; row < n; row++ {
		if p.cols[row] == other.cols[row] {
			return true
		}
	}

	return false
}

// Graph returns p as a one-edge-per-row Tanner graph.
func (p *Permutation) Graph() *Graph {
	g := &Graph{width: len(p.cols), rows: make([][]int, len(p.cols))}
	for row, c := range p.cols {
		g.rows[row] = []int{c}
	}

	return g
}

// Absorb returns the union of p and other, with other's entries shifted by
// (rowOff, colOff). The result is large enough to hold both operands.
// Returns ErrInvalidStructure if the two overlap at the given offset and
// ErrOutOfRange for negative offsets.
func (p *Permutation) Absorb(other *Permutation, rowOff, colOff int) (*Graph, error) {
	if other == nil {
		return nil, fmt.Errorf("Permutation.%s: %w", ctxAbsorb, ErrNilGraph)
	}
	if rowOff < 0 || colOff < 0 {
		return nil, graphErrorf(ctxAbsorb, rowOff, colOff, ErrOutOfRange)
	}

	height := max(len(p.cols), rowOff+len(other.cols))
	width := max(len(p.cols), colOff+len(other.cols))
	g := &Graph{width: width, rows: make([][]int, height)}
	for row, c := range p.cols {
		g.rows[row] = []int{c}
	}
	if err := g.Absorb(other, rowOff, colOff); err != nil {
		return nil, err
	}

	return g, nil
}

// OverlapsPermutation reports whether placing p at (rowOff, colOff) would hit
// an existing edge of g. Cells falling outside g never overlap.
func (g *Graph) OverlapsPermutation(p *Permutation, rowOff, colOff int) bool {
	if p == nil {
		return false
	}
	for row, c := range p.cols {
		if g.Has(row+rowOff, c+colOff) {
			return true
		}
	}

	return false
}

// Absorb adds p to g at (rowOff, colOff) in place. It fails atomically with
// ErrInvalidStructure when p overlaps g there, and ErrOutOfRange when p does
// not fit.
func (g *Graph) Absorb(p *Permutation, rowOff, colOff int) error {
	if p == nil {
		return fmt.Errorf("Graph.%s: %w", ctxAbsorb, ErrNilGraph)
	}

	return g.Splice(p.Graph(), rowOff, colOff)
}
