// SPDX-License-Identifier: MIT

// Package builder provides internal helper functions
// used by Constructor implementations to build common topologies.
package builder

import (
	"fmt"

	"github.com/katalvlaran/mstkit/core"
)

// validateMin ensures that got ≥ min for the named constructor.
// Complexity: O(1).
func validateMin(method, param string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: %s=%d < min=%d: %w", method, param, got, min, ErrTooFewVertices)
	}

	return nil
}

// validateProbability enforces p ∈ [MinProbability, MaxProbability].
// Complexity: O(1).
func validateProbability(method string, p float64) error {
	// Negated so that NaN is rejected.
	if !(p >= MinProbability && p <= MaxProbability) {
		return fmt.Errorf("%s: p=%g not in [%.1f,%.1f]: %w",
			method, p, MinProbability, MaxProbability, ErrInvalidProbability)
	}

	return nil
}

// validateSpan checks that the n vertices [cfg.offset, cfg.offset+n) exist in g.
// Complexity: O(1).
func validateSpan(g *core.Graph, cfg builderConfig, method string, n int) error {
	if cfg.offset+n > g.V() {
		return fmt.Errorf("%s: vertices [%d,%d) exceed V=%d: %w",
			method, cfg.offset, cfg.offset+n, g.V(), ErrVertexRange)
	}

	return nil
}

// connect adds the edge {offset+u, offset+v} with the next configured weight.
// Complexity: O(1) amortized.
func connect(g *core.Graph, cfg builderConfig, method string, u, v int) error {
	a, b := cfg.offset+u, cfg.offset+v
	w := cfg.weight()
	if _, err := g.Connect(a, b, w); err != nil {
		return fmt.Errorf("%s: Connect(%d—%d, w=%g): %w", method, a, b, w, err)
	}

	return nil
}
