// SPDX-License-Identifier: MIT
// Package: mstkit/builder
//
// impl_wheel.go — implementation of Wheel(n) constructor.
//
// Contract:
//   • rim n ≥ 3 (else ErrTooFewVertices); n+1 vertices must fit (else ErrVertexRange).
//   • Hub is the first vertex of the range; the rim occupies the next n.
//   • Emits the rim cycle 1—2, …, n—1 first, then spokes 0—1 … 0—n.
//
// Complexity: O(n) vertices touched, 2n edges, O(1) extra space.

package builder

import "github.com/katalvlaran/mstkit/core"

// Wheel returns a Constructor that builds W_n: a rim cycle C_n plus a hub joined to every rim vertex.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodWheel, "n", n, MinWheelRim); err != nil {
			return err
		}
		if err := validateSpan(g, cfg, MethodWheel, n+1); err != nil {
			return err
		}

		// 1) Rim: vertices 1..n in a ring.
		for i := 1; i <= n; i++ {
			next := i%n + 1
			if err := connect(g, cfg, MethodWheel, i, next); err != nil {
				return err
			}
		}
		// 2) Spokes from the hub.
		for i := 1; i <= n; i++ {
			if err := connect(g, cfg, MethodWheel, 0, i); err != nil {
				return err
			}
		}

		return nil
	}
}
