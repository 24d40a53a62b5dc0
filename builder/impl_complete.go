// SPDX-License-Identifier: MIT
// Package: mstkit/builder
//
// impl_complete.go — implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices); range must fit (else ErrVertexRange).
//   • Emits every unordered pair {i,j}, i<j, in lexicographic order.
//
// Complexity:
//   • Time: O(n²) edges.
//   • Space: O(1) extra.

package builder

import "github.com/katalvlaran/mstkit/core"

// Complete returns a Constructor that builds the complete simple graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodComplete, "n", n, MinCompleteNodes); err != nil {
			return err
		}
		if err := validateSpan(g, cfg, MethodComplete, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := connect(g, cfg, MethodComplete, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
