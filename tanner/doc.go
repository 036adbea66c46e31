// Package tanner holds the data model of an LDPC parity-check matrix.
//
// A Graph is a sparse bipartite (Tanner) graph: check node i maps to the
// ordered list of variable nodes it constrains. The representation is an
// arena of index slices, one per check node, because check nodes form a
// dense range 0..height-1.
//
// The package provides:
//
//   - Graph:       NewGraph, Has, Row/SetRow, AddEdge, Splice, PermuteRows,
//     PermuteColumns, Transpose, All (row iterator), weight statistics.
//   - Permutation: RandomPermutation, NewPermutation, Overlaps, Absorb.
//
// Guarantees:
//
//   - No mutator ever leaves a duplicate edge or an out-of-range index behind;
//     violations surface as ErrInvalidStructure / ErrOutOfRange.
//   - Splice and Absorb are atomic.
//   - Randomized operations draw only from the *rand.Rand passed in.
//
//	H = [1 1 0]      rows[0] = [0 1]
//	    [0 1 1]  ⇔   rows[1] = [1 2]
package tanner
