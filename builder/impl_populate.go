// SPDX-License-Identifier: MIT
// Package: ldpcgen/builder
//
// impl_populate.go - populate-rows / populate-columns constructions.
//
// Canonical model:
//   - A budget multiset holds every "minor" index (column for populate-rows,
//     check node for populate-columns) as many times as its target weight.
//   - Each "major" line (row, resp. variable node) is filled slot by slot with
//     a uniform draw among budget entries not yet used on that line; the draw
//     consumes the entry.
//   - When no budget entry is usable on the current line, the slot falls back
//     to a uniform draw among all minor indices absent from the line. Only
//     this fallback can break the minor-side weight; it is counted and logged.
//
// Contract:
//   - populate-rows:    exact row weight r, column weight c unless a fallback fired.
//   - populate-columns: exact column weight c, row weight r unless a fallback fired.
//   - height = n·c/r; a non-integral ratio is truncated with a warning.
//   - populate-columns needs c ≤ height (else ErrInvalidArguments).
//
// Complexity:
//   - O(lines · slots · n·c) time in the worst case, O(n·c) extra space.
//   - No unbounded loops: every draw is made from an explicit candidate list.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/ldpcgen/tanner"
)

// populateHeight computes n·c/r and warns when it is not an integer.
func populateHeight(cfg builderConfig, method string, n, r, c int) int {
	if (n*c)%r != 0 {
		cfg.logger.Warn("populate: n·c/r is not an integer, height truncated",
			"method", method, "n", n, "r", r, "c", c)
	}

	return n * c / r
}

func populateRows(cfg builderConfig, n, r, c int) (*tanner.Graph, error) {
	height := populateHeight(cfg, methodPopRows, n, r, c)

	rows, fallbacks := populate(cfg.rng, height, r, n, n*c)
	if fallbacks > 0 {
		cfg.logger.Debug("populate-rows: column budget exhausted, placed unbudgeted entries",
			"n", n, "r", r, "c", c, "fallbacks", fallbacks)
	}

	return graphFromRows(methodPopRows, rows, n)
}

func populateColumns(cfg builderConfig, n, r, c int) (*tanner.Graph, error) {
	height := populateHeight(cfg, methodPopCols, n, r, c)
	if c > height {
		return nil, fmt.Errorf("%s: column weight c=%d exceeds height %d: %w",
			methodPopCols, c, height, ErrInvalidArguments)
	}

	cols, fallbacks := populate(cfg.rng, n, c, height, n*c)
	if fallbacks > 0 {
		cfg.logger.Debug("populate-columns: row budget exhausted, placed unbudgeted entries",
			"n", n, "r", r, "c", c, "fallbacks", fallbacks)
	}

	vm, err := graphFromRows(methodPopCols, cols, height)
	if err != nil {
		return nil, err
	}

	return vm.Transpose(), nil
}

// populate fills lines lines with slots distinct indices from [0,minor) each.
// The budget holds i % minor for i in [0,budget). It returns the lines and
// the number of slots that had to use the fallback draw.
// Requires slots ≤ minor.
func populate(rng *rand.Rand, lines, slots, minor, budget int) ([][]int, int) {
	available := make([]int, budget)
	for i := range available {
		available[i] = i % minor
	}

	out := make([][]int, lines)
	onLine := make([]bool, minor)
	candidates := make([]int, 0, budget)
	fallbacks := 0

	for i := range out {
		line := make([]int, 0, slots)
		for s := 0; s < slots; s++ {
			candidates = candidates[:0]
			for pos, v := range available {
				if !onLine[v] {
					candidates = append(candidates, pos)
				}
			}

			var pick int
			if len(candidates) > 0 {
				pos := candidates[rng.Intn(len(candidates))]
				pick = available[pos]
				last := len(available) - 1
				available[pos] = available[last]
				available = available[:last]
			} else {
				pick = randomAbsent(rng, onLine)
				fallbacks++
			}

			onLine[pick] = true
			line = append(line, pick)
		}
		for _, v := range line {
			onLine[v] = false
		}
		out[i] = line
	}

	return out, fallbacks
}
