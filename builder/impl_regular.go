// SPDX-License-Identifier: MIT
// Package: ldpcgen/builder
//
// impl_regular.go - Regular(n, r, c, method) and RegularArgs(name, args...).
//
// Contract:
//   - n ≥ 1, r ≥ 1, c ≥ 1, r ≤ n (else ErrInvalidArguments).
//   - RegularArgs takes exactly RegularArgCount ints (else ErrInvalidArguments)
//     and a canonical method name (else ErrInvalidConstruction).
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//   - Width is n; height is c·(n/r) for Gallager and n·c/r otherwise.
//
// Determinism:
//   - Same (n, r, c, method) and seed ⇒ identical graph.

package builder

import (
	"fmt"

	"github.com/katalvlaran/ldpcgen/tanner"
)

// Regular returns a Constructor that builds a code of length n with row
// weight r and column weight c using the given method.
func Regular(n, r, c int, method RegularMethod) Constructor {
	return func(cfg builderConfig) (*tanner.Graph, error) {
		if err := validateRegular(methodRegular, n, r, c); err != nil {
			return nil, err
		}
		if err := requireRand(methodRegular, cfg); err != nil {
			return nil, err
		}

		switch method {
		case Gallager:
			return gallager(cfg, n, r, c)
		case PopulateRows:
			return populateRows(cfg, n, r, c)
		case PopulateColumns:
			return populateColumns(cfg, n, r, c)
		}

		return nil, fmt.Errorf("%s: %s: %w", methodRegular, method, ErrInvalidConstruction)
	}
}

// RegularArgs is the name-keyed form of Regular used by tooling:
// args must be exactly (n, r, c).
func RegularArgs(name string, args ...int) Constructor {
	return func(cfg builderConfig) (*tanner.Graph, error) {
		if len(args) != RegularArgCount {
			return nil, fmt.Errorf("%s: want %d arguments (n, r, c), got %d: %w",
				methodRegular, RegularArgCount, len(args), ErrInvalidArguments)
		}
		method, err := ParseRegularMethod(name)
		if err != nil {
			return nil, err
		}

		return Regular(args[0], args[1], args[2], method)(cfg)
	}
}
