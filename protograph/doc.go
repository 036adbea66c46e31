// Package protograph provides the weighted base graph that a protograph LDPC
// code is lifted from.
//
// A Protograph is a small dense matrix of non-negative multiplicities; entry
// (i, j) = v means the lifted f×f block at (i·f, j·f) must realize v parallel
// unit connections. Protographs are built from literals (FromRows), from the
// compact "2,1;1,2" notation (Parse), or decoded from a TOML document
// (Decode, LoadFile):
//
//	factor       = 3
//	construction = "quasi-cyclic"
//	seed         = 42
//	matrix       = [[2, 1], [1, 2]]
//
// Lifting itself lives in package builder.
package protograph
