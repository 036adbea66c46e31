// SPDX-License-Identifier: MIT
// Package: ldpcgen/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Implementations attach context with `%w`: "<Method>: <detail>: %w".
//   - Algorithms MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).
//   - A constructor either returns a complete, valid graph or (nil, err).

package builder

import (
	"errors"

	"github.com/katalvlaran/ldpcgen/tanner"
)

// ErrInvalidArguments indicates a malformed parameter set: wrong argument
// count, non-positive length/weight, weight larger than the dimension it
// indexes, a nil protograph or a lift factor < 1.
// Usage: if errors.Is(err, ErrInvalidArguments) { /* report bad parameters */ }.
var ErrInvalidArguments = errors.New("builder: invalid arguments")

// ErrInvalidConstruction indicates an unknown construction-method name or
// an out-of-range method value.
var ErrInvalidConstruction = errors.New("builder: invalid construction method")

// ErrInvalidProtograph indicates a protograph entry larger than the lift
// factor: an f×f block cannot carry more than f non-overlapping unit
// connections.
var ErrInvalidProtograph = errors.New("builder: protograph entry exceeds lift factor")

// ErrConstructionExhausted indicates that a rejection sampler hit the
// configured attempt cap (WithMaxAttempts) without finding a valid draw.
// Usage: if errors.Is(err, ErrConstructionExhausted) { /* retry with another seed */ }.
var ErrConstructionExhausted = errors.New("builder: construction attempts exhausted")

// ErrNeedRandSource indicates that a stochastic constructor ran without a
// *rand.Rand in the resolved config (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrInvalidStructure is the tanner sentinel for a duplicate edge during
// splicing. It is re-exported so callers need only import builder.
var ErrInvalidStructure = tanner.ErrInvalidStructure

// --- Implementation Notes ----------------------------------------------------
//
// 1) Priority when several validations fail:
//    - ErrInvalidArguments      - argument count and numeric domains first.
//    - ErrInvalidConstruction   - then the method name / value.
//    - ErrNeedRandSource        - then RNG presence.
//    - ErrInvalidProtograph     - then protograph entries vs. lift factor.
//    - ErrConstructionExhausted - only after the attempt cap is reached.
//    - ErrInvalidStructure      - not expected in normal operation.
//
// 2) Testing guidance:
//    Table tests asserting errors.Is(err, ErrX). Avoid matching error strings.
