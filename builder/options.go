// SPDX-License-Identifier: MIT
// Package: ldpcgen/builder
//
// options.go - functional options for the builder package.
//
// Contract (strict):
//   - Options are functional (type BuilderOption func(*builderConfig)).
//   - Option constructors VALIDATE and PANIC on meaningless inputs.
//     Algorithms themselves MUST NOT panic.
//   - Determinism is explicit: seeding is done via WithSeed or WithRand.
//   - No hidden globals; everything flows through builderConfig.

package builder

import (
	"math/rand"

	"github.com/charmbracelet/log"
)

// BuilderOption customizes a construction by mutating a builderConfig
// instance before the constructor runs.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic constructors.
// Panics on nil; prefer WithSeed for reproducible runs.
// A *rand.Rand is not safe for concurrent use: do not share one across
// BuildCode calls running in parallel.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithLogger routes construction warnings (e.g. Gallager with n%r != 0) and
// debug traces to l. Panics on nil.
func WithLogger(l *log.Logger) BuilderOption {
	if l == nil {
		panic("builder: WithLogger(nil)")
	}
	return func(c *builderConfig) {
		c.logger = l
	}
}

// WithMaxAttempts caps the rejection-sampling draws spent per absorbed
// permutation. Panics if n < 1.
func WithMaxAttempts(n int) BuilderOption {
	if n < 1 {
		panic("builder: WithMaxAttempts(n<1)")
	}
	return func(c *builderConfig) {
		c.maxAttempts = n
	}
}
