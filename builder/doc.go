// Package builder constructs LDPC parity-check matrices as tanner.Graph
// values using "functional-options"-style configuration.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildCode:   resolve options, run one Constructor, validate the result.
//     – BuildBatch:  many independent codes in parallel, one RNG per job.
//   - Constructors:
//     – Regular / RegularArgs:        gallager, populate-rows, populate-columns.
//     – Protograph / ProtographArgs:  lift a protograph.Protograph by a factor f.
//     – Submatrix:                    one f×f block (permutation, regular,
//     quasi-cyclic, permuted-quasi-cyclic).
//   - Configuration:
//     – WithSeed / WithRand:  the only source of randomness.
//     – WithLogger:           charmbracelet/log sink for advisory warnings.
//     – WithMaxAttempts:      cap for the permutation rejection sampler.
//
// Guarantees:
//
//   - Deterministic for a fixed seed and identical arguments.
//   - No constructor returns a partially built graph.
//   - Structured errors: ErrInvalidArguments, ErrInvalidConstruction,
//     ErrInvalidProtograph, ErrConstructionExhausted, ErrNeedRandSource,
//     ErrInvalidStructure, always matched with errors.Is.
//   - Warnings (e.g. Gallager with n%r != 0) never abort construction.
//
// Example:
//
//	g, err := builder.BuildCode(
//		[]builder.BuilderOption{builder.WithSeed(1)},
//		builder.Regular(8, 4, 2, builder.PopulateRows),
//	)
package builder
