// SPDX-License-Identifier: MIT
// Package: mstkit/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(v, gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Topology factories live in impl_*.go, one per file.
//   - Functional options (BuilderOption) resolve into a builderConfig passed by value (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mstkit/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Only touch vertices in [cfg.offset, cfg.offset+size).
//   - Preserve determinism for the same config and call order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with v vertices and graph options gopts,
// resolves the builder configuration from bopts, and applies all constructors in order.
// Any error is wrapped with the context "BuildGraph: %w" and returned immediately;
// no partial cleanup is attempted.
//
// Complexity:
//   - Resolving options: O(len(bopts)) time, O(1) space.
//   - Applying K constructors: Σ cost of each constructor.
//
// Errors:
//   - core.ErrNegativeVertexCount / core.ErrVertexCountTooLarge from graph creation.
//   - Wrapped constructor errors; branch with errors.Is against builder sentinels.
func BuildGraph(v int, gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g, err := core.NewGraph(v, gopts...)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}
	if err = apply(g, newBuilderConfig(bopts...), cons); err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	return g, nil
}

// Apply resolves bopts and runs cons against an existing graph g.
// Edges added before a failing constructor stay in g.
func Apply(g *core.Graph, bopts []BuilderOption, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("Apply: nil graph: %w", ErrConstructFailed)
	}
	if err := apply(g, newBuilderConfig(bopts...), cons); err != nil {
		return fmt.Errorf("Apply: %w", err)
	}

	return nil
}

func apply(g *core.Graph, cfg builderConfig, cons []Constructor) error {
	for i, fn := range cons {
		// Reject a nil constructor instead of panicking on the call.
		if fn == nil {
			return fmt.Errorf("nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return err
		}
	}

	return nil
}
