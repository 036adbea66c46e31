// SPDX-License-Identifier: MIT
// Package: ldpcgen/builder
//
// impl_permutation.go - sum of k pairwise non-overlapping random permutations.
//
// Canonical model:
//   - Start from one uniform random size×size permutation.
//   - For each further permutation: draw uniform candidates until one misses
//     every accumulated edge, then absorb it. This is a random k-regular
//     bipartite graph built as a union of perfect matchings.
//   - When 2k > size the (size-k)-regular sum is drawn instead and
//     complemented. A k-regular bipartite graph decomposes into k perfect
//     matchings (König), so the complement is again a sum of k
//     non-overlapping permutations, and at most size/2 absorptions are ever
//     sampled.
//
// Contract:
//   - Result has row weight and column weight exactly k.
//   - Each absorption is capped at cfg.maxAttempts draws; beyond that the
//     construction fails with ErrConstructionExhausted.
//
// Complexity:
//   - O(size·deg) per draw; the expected number of draws per absorption grows
//     roughly like e^deg, with deg ≤ size/2.

package builder

import (
	"fmt"

	"github.com/katalvlaran/ldpcgen/tanner"
)

func permutationSum(cfg builderConfig, size, k int) (*tanner.Graph, error) {
	if 2*k > size {
		rest, err := disjointPermutations(cfg, size, size-k)
		if err != nil {
			return nil, err
		}

		return rest.Complement(), nil
	}

	return disjointPermutations(cfg, size, k)
}

// disjointPermutations samples k pairwise non-overlapping permutations of
// [0,size) and returns their union. k = 0 yields the empty block.
func disjointPermutations(cfg builderConfig, size, k int) (*tanner.Graph, error) {
	if k == 0 {
		g, err := tanner.NewGraph(size, size)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodPermSum, err)
		}
		return g, nil
	}

	acc := tanner.RandomPermutation(size, cfg.rng).Graph()
	for added := 1; added < k; added++ {
		absorbed := false
		for attempt := 1; attempt <= cfg.maxAttempts; attempt++ {
			trial := tanner.RandomPermutation(size, cfg.rng)
			if acc.OverlapsPermutation(trial, 0, 0) {
				continue
			}
			if err := acc.Absorb(trial, 0, 0); err != nil {
				return nil, fmt.Errorf("%s: %w", methodPermSum, err)
			}
			absorbed = true
			break
		}
		if !absorbed {
			return nil, fmt.Errorf("%s: no permutation disjoint from %d accumulated after %d attempts (size=%d): %w",
				methodPermSum, added, cfg.maxAttempts, size, ErrConstructionExhausted)
		}
	}

	return acc, nil
}
