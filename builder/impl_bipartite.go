// SPDX-License-Identifier: MIT
// Package: mstkit/builder
//
// impl_bipartite.go — implementation of CompleteBipartite(n1, n2) constructor.
//
// Contract:
//   • n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices); n1+n2 must fit (else ErrVertexRange).
//   • Left side is [0,n1), right side is [n1,n1+n2), relative to the offset.
//   • Emits edges l—r for l asc, then r asc.
//
// Complexity: O(n1·n2) edges, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mstkit/core"
)

// CompleteBipartite returns a Constructor that builds the simple complete bipartite graph K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n1 < MinPartition || n2 < MinPartition {
			return fmt.Errorf("%s: partition sizes %d and %d (each must be ≥ %d): %w",
				MethodCompleteBipartite, n1, n2, MinPartition, ErrTooFewVertices)
		}
		if err := validateSpan(g, cfg, MethodCompleteBipartite, n1+n2); err != nil {
			return err
		}
		for l := 0; l < n1; l++ {
			for r := n1; r < n1+n2; r++ {
				if err := connect(g, cfg, MethodCompleteBipartite, l, r); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
