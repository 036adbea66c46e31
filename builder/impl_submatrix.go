// SPDX-License-Identifier: MIT
// Package: ldpcgen/builder
//
// impl_submatrix.go - the f×f block factory used by protograph lifting.
//
// Contract:
//   - 1 ≤ weight ≤ factor (else ErrInvalidArguments).
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//   - permutation / quasi-cyclic / permuted-quasi-cyclic: row and column
//     weight exactly `weight`.
//   - regular: row weight exactly `weight`; column weight `weight` unless the
//     populate-rows fallback fired.

package builder

import (
	"fmt"

	"github.com/katalvlaran/ldpcgen/tanner"
)

// Submatrix returns a Constructor for a single factor×factor block of
// multiplicity weight, built with method.
func Submatrix(method SubmatrixMethod, factor, weight int) Constructor {
	return func(cfg builderConfig) (*tanner.Graph, error) {
		if err := validateBlock(methodSubmatrix, factor, weight); err != nil {
			return nil, err
		}
		if err := requireRand(methodSubmatrix, cfg); err != nil {
			return nil, err
		}

		return submatrix(cfg, method, factor, weight)
	}
}

// submatrix dispatches on method; arguments are assumed validated.
func submatrix(cfg builderConfig, method SubmatrixMethod, f, v int) (*tanner.Graph, error) {
	switch method {
	case PermutationSum:
		return permutationSum(cfg, f, v)
	case RegularBlock:
		return populateRows(cfg, f, v, v)
	case QuasiCyclic:
		return quasiCyclic(cfg, f, v)
	case PermutedQuasiCyclic:
		return permutedQuasiCyclic(cfg, f, v)
	}

	return nil, fmt.Errorf("%s: %s: %w", methodSubmatrix, method, ErrInvalidConstruction)
}
