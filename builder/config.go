// SPDX-License-Identifier: MIT
// Package: ldpcgen/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   - builderConfig is the single source of truth for all builder knobs.
//   - Defaults are deterministic and documented; no globals.
//   - newBuilderConfig applies options in-order (later overrides earlier).
//
// Defaults:
//   - rng         = nil                 (stochastic constructors fail with ErrNeedRandSource)
//   - logger      = discard             (no output unless WithLogger)
//   - maxAttempts = DefaultMaxAttempts

package builder

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for every random draw; nil means "not configured".
	rng *rand.Rand
	// Sink for advisory warnings and debug traces.
	logger *log.Logger
	// Cap on rejection-sampling draws per absorbed permutation.
	maxAttempts int
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:         nil,
		logger:      log.New(io.Discard),
		maxAttempts: DefaultMaxAttempts,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
