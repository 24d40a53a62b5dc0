// SPDX-License-Identifier: MIT
// Package: mstkit/builder
//
// impl_cycle.go — implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices); range must fit (else ErrVertexRange).
//   • Emits edges in stable order i—(i+1)%n for i = 0..n-1.
//
// Complexity:
//   • Time: O(n) edges.
//   • Space: O(1) extra (iter vars only).
//
// Determinism:
//   • Deterministic edge emission order by increasing i.
//   • Deterministic weights given fixed cfg.rng/weightFn.

package builder

import "github.com/katalvlaran/mstkit/core"

// Cycle returns a Constructor that builds an n-vertex simple cycle C_n.
// Any spanning tree of C_n drops exactly one edge; the MST drops a heaviest one.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// Validate parameter domain early (fail fast, no work on invalid input).
		if err := validateMin(MethodCycle, "n", n, MinCycleNodes); err != nil {
			return err
		}
		if err := validateSpan(g, cfg, MethodCycle, n); err != nil {
			return err
		}

		// Emit edges in ascending i; for i==n-1, connect to 0 to close the ring.
		for i := 0; i < n; i++ {
			if err := connect(g, cfg, MethodCycle, i, (i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}
