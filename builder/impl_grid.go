// SPDX-License-Identifier: MIT
// Package: mstkit/builder
//
// impl_grid.go — implementation of Grid(rows, cols) constructor.
//
// Canonical model:
//   • 2D orthogonal grid with 4-neighborhood (right & bottom neighbors per cell).
//   • Cell (r,c) is vertex r*cols + c (row-major), relative to the offset.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices); rows*cols must fit (else ErrVertexRange).
//   • For each cell in row-major order emit Right (r,c+1) then Bottom (r+1,c) where present.
//
// Complexity:
//   • Time: O(rows*cols) edges (2·rows·cols − rows − cols of them).
//   • Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mstkit/core"
)

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate parameters early (fail fast; no partial work).
		if rows < MinGridDim || cols < MinGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				MethodGrid, rows, cols, MinGridDim, ErrTooFewVertices)
		}
		if err := validateSpan(g, cfg, MethodGrid, rows*cols); err != nil {
			return err
		}

		// 2) Emit edges: for each (r,c), connect to Right and Bottom neighbors if they exist.
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := r*cols + c
				if c+1 < cols {
					if err := connect(g, cfg, MethodGrid, u, u+1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := connect(g, cfg, MethodGrid, u, u+cols); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
