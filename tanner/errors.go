// SPDX-License-Identifier: MIT
// Package: ldpcgen/tanner
//
// errors.go - sentinel errors for the tanner package.
//
// Error policy:
//   - Only package-level sentinels are exposed; callers branch with errors.Is.
//   - Context (method, coordinates) is attached with %w at the detection site.
//   - Public methods never panic on user-triggered conditions.

package tanner

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when a requested graph shape has a negative dimension.
	ErrBadShape = errors.New("tanner: invalid shape")

	// ErrOutOfRange indicates a row or column index outside [0,height) / [0,width),
	// or a block that does not fit inside the target graph.
	ErrOutOfRange = errors.New("tanner: index out of range")

	// ErrInvalidStructure signals an internal consistency violation: a check node
	// would list the same variable node twice, or two permutations overlap.
	ErrInvalidStructure = errors.New("tanner: invalid structure")

	// ErrNotPermutation indicates that a column mapping is not a bijection.
	ErrNotPermutation = errors.New("tanner: not a permutation")

	// ErrNilGraph indicates that a nil *Graph or *Permutation was passed in.
	ErrNilGraph = errors.New("tanner: nil operand")
)

// graphErrorf wraps err with a uniform "Graph.<method>(row,col)" context.
func graphErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Graph.%s(%d,%d): %w", method, row, col, err)
}
