// SPDX-License-Identifier: MIT
// Package: mstkit/builder
//
// impl_shift.go — Shift(offset, c) combinator.
//
// Contract:
//   • offset ≥ 0 (else ErrVertexRange); c != nil (else ErrConstructFailed).
//   • Runs c with its vertex range moved up by offset. Offsets nest additively.
//
// Complexity: O(1) on top of c.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mstkit/core"
)

// Shift returns a Constructor that runs c on vertices [offset, offset+size(c)).
//
// Example: BuildGraph(7, nil, nil, Path(3), Shift(3, Cycle(4))) yields two components,
// a path on 0..2 and a cycle on 3..6.
func Shift(offset int, c Constructor) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if offset < 0 {
			return fmt.Errorf("%s: offset=%d < 0: %w", MethodShift, offset, ErrVertexRange)
		}
		if c == nil {
			return fmt.Errorf("%s: nil constructor: %w", MethodShift, ErrConstructFailed)
		}
		cfg.offset += offset

		return c(g, cfg)
	}
}
