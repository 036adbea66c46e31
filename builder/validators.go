// Package builder provides validation helpers to enforce parameter
// contracts in constructors.
//
// Each function returns ErrInvalidArguments (or ErrNeedRandSource) wrapped
// with the constructor's method tag when its precondition is violated.
package builder

import "fmt"

// validateMin ensures that got ≥ min.
// Complexity: O(1).
func validateMin(method, name string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: %s must be ≥ %d, got %d: %w", method, name, min, got, ErrInvalidArguments)
	}

	return nil
}

// validateRegular enforces n ≥ 1, r ≥ 1, c ≥ 1 and r ≤ n: a check node
// cannot hold more distinct variable nodes than exist.
func validateRegular(method string, n, r, c int) error {
	if err := validateMin(method, "n", n, MinCodeLength); err != nil {
		return err
	}
	if err := validateMin(method, "r", r, MinWeight); err != nil {
		return err
	}
	if err := validateMin(method, "c", c, MinWeight); err != nil {
		return err
	}
	if r > n {
		return fmt.Errorf("%s: row weight r=%d exceeds length n=%d: %w", method, r, n, ErrInvalidArguments)
	}

	return nil
}

// validateBlock enforces 1 ≤ weight ≤ factor for a single f×f submatrix.
func validateBlock(method string, factor, weight int) error {
	if err := validateMin(method, "factor", factor, MinLiftFactor); err != nil {
		return err
	}
	if weight < 1 || weight > factor {
		return fmt.Errorf("%s: weight %d outside [1,%d]: %w", method, weight, factor, ErrInvalidArguments)
	}

	return nil
}

// requireRand reports ErrNeedRandSource when cfg carries no RNG.
func requireRand(method string, cfg builderConfig) error {
	if cfg.rng == nil {
		return fmt.Errorf("%s: rng is required: %w", method, ErrNeedRandSource)
	}

	return nil
}
