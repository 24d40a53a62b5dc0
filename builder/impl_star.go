// SPDX-License-Identifier: MIT
// Package: mstkit/builder
//
// impl_star.go — implementation of Star(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices); range must fit (else ErrVertexRange).
//   • Center is the first vertex of the range; leaves are the next n-1.
//   • Emits spokes 0—i for i = 1..n-1.
//
// Complexity: O(n) edges, O(1) extra space.

package builder

import "github.com/katalvlaran/mstkit/core"

// Star returns a Constructor that builds a star with one center and n-1 leaves.
// A star is a tree, so its MST is the star itself.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodStar, "n", n, MinStarNodes); err != nil {
			return err
		}
		if err := validateSpan(g, cfg, MethodStar, n); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := connect(g, cfg, MethodStar, 0, i); err != nil {
				return err
			}
		}

		return nil
	}
}
