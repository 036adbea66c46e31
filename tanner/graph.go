// SPDX-License-Identifier: MIT

// Package tanner - arena-backed Tanner graph & splice engine.
//
// Purpose:
//   - Hold a parity-check matrix as check node → ordered variable-node indices.
//   - Guarantee the structural invariant at every mutation: indices in range and
//     no check node lists the same variable node twice.
//   - Provide the splice primitive used by every construction to place an f×f
//     block at a (row, col) offset, plus random row/column relabelling.
//
// Complexity quicksheet:
//   - NewGraph: O(height); Has: O(deg(row)); AddEdge: O(deg(row));
//     Splice: O(E_sub · deg); Permute*: O(height + E); Transpose: O(E);
//     Complement: O(height · width).

package tanner

import (
	"fmt"
	"iter"
	"math/rand"
	"slices"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxSetRow  = "SetRow"
	ctxAddEdge = "AddEdge"
	ctxSplice  = "Splice"
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Graph is a sparse bipartite graph between check nodes (rows) and variable
// nodes (columns).
//   - rows[i] lists the variable nodes connected to check node i; order is not
//     meaningful, duplicates are forbidden.
//   - width is the number of variable nodes (codeword length).
//
// A Graph is not safe for concurrent mutation. Constructions own the graph
// until they return it; after that callers treat it as read-only.
type Graph struct {
	width int
	rows  [][]int
}

var _ fmt.Stringer = (*Graph)(nil)

// NewGraph allocates a graph with height check nodes, each with an empty
// adjacency sequence, over width variable nodes.
// Returns ErrBadShape for negative dimensions. Zero dimensions are legal.
func NewGraph(height, width int) (*Graph, error) {
	if height < 0 || width < 0 {
		return nil, fmt.Errorf("NewGraph(%d,%d): %w", height, width, ErrBadShape)
	}

	return &Graph{width: width, rows: make([][]int, height)}, nil
}

// Height returns the number of check nodes.
func (g *Graph) Height() int { return len(g.rows) }

// Width returns the number of variable nodes.
func (g *Graph) Width() int { return g.width }

// Has reports whether check node row is connected to variable node col.
// Out-of-range coordinates report false.
func (g *Graph) Has(row, col int) bool {
	if row < 0 || row >= len(g.rows) || col < 0 || col >= g.width {
		return false
	}

	return slices.Contains(g.rows[row], col)
}

// Row returns a copy of the adjacency sequence of check node i,
// or nil if i is out of range.
func (g *Graph) Row(i int) []int {
	if i < 0 || i >= len(g.rows) {
		return nil
	}

	return slices.Clone(g.rows[i])
}

// SetRow replaces the full adjacency sequence of check node i.
// Every index must lie in [0,width) and appear at most once.
// On error the graph is unchanged.
func (g *Graph) SetRow(i int, cols []int) error {
	if i < 0 || i >= len(g.rows) {
		return graphErrorf(ctxSetRow, i, -1, ErrOutOfRange)
	}
	seen := make(map[int]struct{}, len(cols))
	for _, c := range cols {
		if c < 0 || c >= g.width {
			return graphErrorf(ctxSetRow, i, c, ErrOutOfRange)
		}
		if _, dup := seen[c]; dup {
			return graphErrorf(ctxSetRow, i, c, ErrInvalidStructure)
		}
		seen[c] = struct{}{}
	}
	g.rows[i] = slices.Clone(cols)

	return nil
}

// AddEdge connects check node row to variable node col.
// Returns ErrOutOfRange for bad coordinates and ErrInvalidStructure
// if the edge already exists.
func (g *Graph) AddEdge(row, col int) error {
	if row < 0 || row >= len(g.rows) || col < 0 || col >= g.width {
		return graphErrorf(ctxAddEdge, row, col, ErrOutOfRange)
	}
	if slices.Contains(g.rows[row], col) {
		return graphErrorf(ctxAddEdge, row, col, ErrInvalidStructure)
	}
	g.rows[row] = append(g.rows[row], col)

	return nil
}

// Splice adds every edge (r, c) of sub to g as (r+rowOff, c+colOff).
//
// Implementation:
//   - Stage 1: the block [rowOff, rowOff+sub.Height()) × [colOff, colOff+sub.Width())
//     must fit inside g, else ErrOutOfRange.
//   - Stage 2: every target cell must be empty, else ErrInvalidStructure.
//   - Stage 3: append all edges.
//
// Splice is atomic: when it returns an error g is unchanged.
func (g *Graph) Splice(sub *Graph, rowOff, colOff int) error {
	if sub == nil {
		return fmt.Errorf("Graph.%s: %w", ctxSplice, ErrNilGraph)
	}
	if rowOff < 0 || colOff < 0 ||
		rowOff+len(sub.rows) > len(g.rows) || colOff+sub.width > g.width {
		return graphErrorf(ctxSplice, rowOff, colOff, ErrOutOfRange)
	}

	for r, cols := range sub.rows {
		for _, c := range cols {
			if slices.Contains(g.rows[r+rowOff], c+colOff) {
				return graphErrorf(ctxSplice, r+rowOff, c+colOff, ErrInvalidStructure)
			}
		}
	}

	for r, cols := range sub.rows {
		dst := r + rowOff
		for _, c := range cols {
			g.rows[dst] = append(g.rows[dst], c+colOff)
		}
	}

	return nil
}

// PermuteRows reorders check nodes by a uniform random permutation drawn
// from rng. Row and column weights are preserved.
func (g *Graph) PermuteRows(rng *rand.Rand) {
	perm := rng.Perm(len(g.rows))
	out := make([][]int, len(g.rows))
	for i, p := range perm {
		out[i] = g.rows[p]
	}
	g.rows = out
}

// PermuteColumns relabels every variable node by a uniform random
// permutation drawn from rng. Row and column weights are preserved.
func (g *Graph) PermuteColumns(rng *rand.Rand) {
	perm := rng.Perm(g.width)
	for _, cols := range g.rows {
		for k, c := range cols {
			cols[k] = perm[c]
		}
	}
}

// Transpose returns a new graph whose check nodes are g's variable nodes.
// Each resulting row is sorted ascending.
// Complexity: O(height + width + E).
func (g *Graph) Transpose() *Graph {
	t := &Graph{width: len(g.rows), rows: make([][]int, g.width)}
	for r, cols := range g.rows {
		for _, c := range cols {
			t.rows[c] = append(t.rows[c], r)
		}
	}

	return t
}

// Complement returns a new graph holding exactly the cells g leaves empty.
// Each resulting row is sorted ascending. Row weights become width-w and
// column weights height-w.
// Complexity: O(height · width).
func (g *Graph) Complement() *Graph {
	out := &Graph{width: g.width, rows: make([][]int, len(g.rows))}
	present := make([]bool, g.width)
	for r, cols := range g.rows {
		for _, c := range cols {
			present[c] = true
		}
		row := make([]int, 0, g.width-len(cols))
		for c, ok := range present {
			if !ok {
				row = append(row, c)
			}
		}
		out.rows[r] = row
		clear(present)
	}

	return out
}

// All iterates over check nodes in ascending order, yielding each index
// with a copy of its adjacency sequence. The sequence is finite and can be
// ranged over any number of times.
func (g *Graph) All() iter.Seq2[int, []int] {
	return func(yield func(int, []int) bool) {
		for i, cols := range g.rows {
			if !yield(i, slices.Clone(cols)) {
				return
			}
		}
	}
}

// RowWeights returns the degree of every check node.
func (g *Graph) RowWeights() []int {
	out := make([]int, len(g.rows))
	for i, cols := range g.rows {
		out[i] = len(cols)
	}

	return out
}

// ColumnWeights returns the degree of every variable node.
func (g *Graph) ColumnWeights() []int {
	out := make([]int, g.width)
	for _, cols := range g.rows {
		for _, c := range cols {
			out[c]++
		}
	}

	return out
}

// EdgeCount returns the number of ones in the parity-check matrix.
func (g *Graph) EdgeCount() int {
	n := 0
	for _, cols := range g.rows {
		n += len(cols)
	}

	return n
}

// Clone returns a deep copy of g.
func (g *Graph) Clone() *Graph {
	out := &Graph{width: g.width, rows: make([][]int, len(g.rows))}
	for i, cols := range g.rows {
		out.rows[i] = slices.Clone(cols)
	}

	return out
}

// Validate re-checks the structural invariant over the whole graph:
// every index in [0,width) and no duplicate per check node.
func (g *Graph) Validate() error {
	seen := make(map[int]struct{})
	for r, cols := range g.rows {
		clear(seen)
		for _, c := range cols {
			if c < 0 || c >= g.width {
				return graphErrorf("Validate", r, c, ErrOutOfRange)
			}
			if _, dup := seen[c]; dup {
				return graphErrorf("Validate", r, c, ErrInvalidStructure)
			}
			seen[c] = struct{}{}
		}
	}

	return nil
}

// String renders the dense 0/1 matrix, one bracketed row per line.
func (g *Graph) String() string {
	var b strings.Builder
	dense := make([]byte, g.width)
	for _, cols := range g.rows {
		for j := range dense {
			dense[j] = '0'
		}
		for _, c := range cols {
			dense[c] = '1'
		}
		b.WriteString(_fmtRowOpen)
		for j, v := range dense {
			b.WriteByte(v)
			if j+1 < len(dense) {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
