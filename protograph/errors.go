// SPDX-License-Identifier: MIT
// Package protograph: sentinel error set.
// All functions return these sentinels wrapped with context; callers match
// them with errors.Is.

package protograph

import "errors"

var (
	// ErrBadShape is returned for empty or non-positive dimensions.
	ErrBadShape = errors.New("protograph: invalid shape")

	// ErrRagged indicates that literal rows differ in length.
	ErrRagged = errors.New("protograph: ragged rows")

	// ErrNegativeEntry indicates a negative multiplicity.
	ErrNegativeEntry = errors.New("protograph: negative entry")

	// ErrOutOfRange indicates a (row, col) outside the matrix.
	ErrOutOfRange = errors.New("protograph: index out of range")

	// ErrSyntax indicates malformed textual input.
	ErrSyntax = errors.New("protograph: syntax error")

	// ErrDocument indicates a TOML document that decodes but is incomplete,
	// e.g. missing factor or matrix.
	ErrDocument = errors.New("protograph: invalid document")
)
