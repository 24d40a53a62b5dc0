// SPDX-License-Identifier: MIT
// Package: mstkit/builder
//
// impl_path.go — implementation of Path(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices); range must fit (else ErrVertexRange).
//   • Emits edges i—(i+1) for i = 0..n-2, in that order.
//
// Complexity: O(n) edges, O(1) extra space.
// Its MST is the path itself.

package builder

import "github.com/katalvlaran/mstkit/core"

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodPath, "n", n, MinPathNodes); err != nil {
			return err
		}
		if err := validateSpan(g, cfg, MethodPath, n); err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err := connect(g, cfg, MethodPath, i, i+1); err != nil {
				return err
			}
		}

		return nil
	}
}
