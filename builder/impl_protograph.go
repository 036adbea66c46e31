// SPDX-License-Identifier: MIT
// Package: ldpcgen/builder
//
// impl_protograph.go - protograph lifting.
//
// Canonical model:
//   - Allocate an (m_p·f)×(n_p·f) graph.
//   - For each protograph cell (row, col) with value v:
//       v == 0 → the block stays empty;
//       v  > f → ErrInvalidProtograph;
//       else   → build an f×f block of multiplicity v and splice it at (row·f, col·f).
//
// Contract:
//   - p non-nil and f ≥ 1 (else ErrInvalidArguments).
//   - Entries are checked against f before any block is drawn, so an invalid
//     protograph consumes no randomness.
//   - Blocks never overlap, so a splice failure (ErrInvalidStructure) marks a
//     bug in a block constructor.
//
// Complexity:
//   - O(m_p·n_p) cells plus the cost of every block constructor.

package builder

import (
	"fmt"

	"github.com/katalvlaran/ldpcgen/protograph"
	"github.com/katalvlaran/ldpcgen/tanner"
)

// Protograph returns a Constructor that lifts p by factor, realizing every
// nonzero entry with method.
func Protograph(p *protograph.Protograph, factor int, method SubmatrixMethod) Constructor {
	return func(cfg builderConfig) (*tanner.Graph, error) {
		if p == nil {
			return nil, fmt.Errorf("%s: nil protograph: %w", methodProtograph, ErrInvalidArguments)
		}
		if err := validateMin(methodProtograph, "factor", factor, MinLiftFactor); err != nil {
			return nil, err
		}
		if method < PermutationSum || method > PermutedQuasiCyclic {
			return nil, fmt.Errorf("%s: %s: %w", methodProtograph, method, ErrInvalidConstruction)
		}
		if err := requireRand(methodProtograph, cfg); err != nil {
			return nil, err
		}

		rows := p.Rows()
		for i, row := range rows {
			for j, v := range row {
				if v > factor {
					return nil, fmt.Errorf("%s: entry (%d,%d)=%d exceeds lift factor %d: %w",
						methodProtograph, i, j, v, factor, ErrInvalidProtograph)
				}
			}
		}

		g, err := tanner.NewGraph(p.Height()*factor, p.Width()*factor)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodProtograph, err)
		}

		for i, row := range rows {
			for j, v := range row {
				if v == 0 {
					continue
				}
				sub, err := submatrix(cfg, method, factor, v)
				if err != nil {
					return nil, fmt.Errorf("%s: block (%d,%d): %w", methodProtograph, i, j, err)
				}
				if err = g.Splice(sub, i*factor, j*factor); err != nil {
					return nil, fmt.Errorf("%s: block (%d,%d): %w", methodProtograph, i, j, err)
				}
			}
		}

		return g, nil
	}
}

// ProtographArgs is the name-keyed form of Protograph used by tooling.
func ProtographArgs(p *protograph.Protograph, factor int, name string) Constructor {
	return func(cfg builderConfig) (*tanner.Graph, error) {
		method, err := ParseSubmatrixMethod(name)
		if err != nil {
			return nil, err
		}

		return Protograph(p, factor, method)(cfg)
	}
}
