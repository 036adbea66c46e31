// SPDX-License-Identifier: MIT
// Package: ldpcgen/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildCode(bopts, con). Resolves cfg, runs con, validates.
//   - All public factories return a Constructor; implementations live in impl_*.go.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed ⇒ identical graphs.
//   - Atomicity: callers receive either a complete, validated graph or an error.
//
// Factories:
//   - Regular(n, r, c, method) / RegularArgs(name, n, r, c)     - impl_regular.go
//   - Protograph(p, f, method) / ProtographArgs(p, f, name)     - impl_protograph.go
//   - Submatrix(method, f, v)                                    - impl_submatrix.go

package builder

import (
	"context"
	"fmt"
	"runtime"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/ldpcgen/tanner"
)

// Constructor builds a complete Tanner graph from the resolved builderConfig.
// Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Draw randomness only from cfg.rng.
//   - Return (nil, err) on any failure; never a partially built graph.
type Constructor func(cfg builderConfig) (*tanner.Graph, error)

// BuildCode resolves the builder configuration from bopts, runs con and
// re-validates the result's structural invariant.
// Any error is wrapped with the context "BuildCode: %w"; callers branch with
// errors.Is against the builder sentinels.
func BuildCode(bopts []BuilderOption, con Constructor) (*tanner.Graph, error) {
	if con == nil {
		return nil, fmt.Errorf("%s: nil constructor: %w", methodBuildCode, ErrInvalidArguments)
	}

	cfg := newBuilderConfig(bopts...)

	g, err := con(cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuildCode, err)
	}
	if err = g.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuildCode, err)
	}

	cfg.logger.Debug("code constructed",
		"width", g.Width(), "height", g.Height(), "edges", g.EdgeCount())

	return g, nil
}

// BuildBatch builds count independent codes with con, concurrently.
// Job i runs with its own RNG seeded with seed+i, appended after bopts so it
// overrides any WithRand/WithSeed there. Results are returned in job order.
// The first failing job cancels the rest; ctx cancellation stops jobs that
// have not started.
func BuildBatch(ctx context.Context, count int, seed int64, bopts []BuilderOption, con Constructor) ([]*tanner.Graph, error) {
	if err := validateMin(methodBuildBatch, "count", count, 1); err != nil {
		return nil, err
	}

	out := make([]*tanner.Graph, count)
	grp, gctx := errgroup.WithContext(ctx)
	grp.SetLimit(runtime.GOMAXPROCS(0))

	for i := 0; i < count; i++ {
		grp.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			opts := append(slices.Clone(bopts), WithSeed(seed+int64(i)))
			g, err := BuildCode(opts, con)
			if err != nil {
				return fmt.Errorf("job %d: %w", i, err)
			}
			out[i] = g
			return nil
		})
	}

	if err := grp.Wait(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuildBatch, err)
	}

	return out, nil
}
