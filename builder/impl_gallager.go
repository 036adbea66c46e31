// SPDX-License-Identifier: MIT
// Package: ldpcgen/builder
//
// impl_gallager.go - Gallager's random construction.
//
// Canonical model:
//   - c blocks, each one uniform shuffle of [0,n) cut into n/r rows of r entries.
//   - Within a block every variable node appears at most once, so each block
//     has row weight exactly r and column weight ≤ 1 (exactly 1 when r | n).
//   - Blocks are stacked vertically; their order carries no meaning.
//
// Contract:
//   - n % r != 0 is advisory: a warning is logged and the n % r trailing
//     shuffled indices of each block are left unused.
//
// Complexity:
//   - O(c·n) time, O(n) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/ldpcgen/tanner"
)

func gallager(cfg builderConfig, n, r, c int) (*tanner.Graph, error) {
	if n%r != 0 {
		cfg.logger.Warn("gallager: cannot generate a perfectly regular matrix for the given arguments",
			"n", n, "r", r, "unused_per_block", n%r)
	}

	perBlock := n / r
	g, err := tanner.NewGraph(c*perBlock, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodGallager, err)
	}

	idx := sequence(n)
	for b := 0; b < c; b++ {
		cfg.rng.Shuffle(n, func(i, j int) { idx[i], idx[j] = idx[j], idx[i] })
		for i := 0; i < perBlock; i++ {
			// SetRow copies the window, so idx may be reshuffled for the next block.
			if err = g.SetRow(b*perBlock+i, idx[i*r:(i+1)*r]); err != nil {
				return nil, fmt.Errorf("%s: block %d: %w", methodGallager, b, err)
			}
		}
	}

	return g, nil
}
