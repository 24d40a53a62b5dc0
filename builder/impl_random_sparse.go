// SPDX-License-Identifier: MIT
// Package: mstkit/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Canonical model:
//   - Erdős–Rényi G(n,p): include each unordered pair {i,j}, i<j, independently with prob p.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource);
//     p ∈ {0,1} is deterministic and needs no RNG.
//   - Range must fit (else ErrVertexRange).
//
// Complexity:
//   - Time: O(n²) Bernoulli trials.
//   - Space: O(1) extra.
//
// Determinism:
//   - Stable trial order: for each i asc, j asc (j>i); the weight is drawn right
//     after a successful trial, from the same RNG.
//   - Small p usually yields a disconnected graph: a natural spanning-forest fixture.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mstkit/core"
)

// RandomSparse returns a Constructor that samples a G(n,p) graph over n vertices.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate parameters early (fail fast, zero side-effects on invalid input).
		if err := validateMin(MethodRandomSparse, "n", n, MinRandomSparseNodes); err != nil {
			return err
		}
		if err := validateProbability(MethodRandomSparse, p); err != nil {
			return err
		}
		if cfg.rng == nil && p > MinProbability && p < MaxProbability {
			return fmt.Errorf("%s: rng is required: %w", MethodRandomSparse, ErrNeedRandSource)
		}
		if err := validateSpan(g, cfg, MethodRandomSparse, n); err != nil {
			return err
		}

		// 2) Sample edges in stable order.
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if !trial(cfg, p) {
					continue
				}
				if err := connect(g, cfg, MethodRandomSparse, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// trial reports a Bernoulli(p) outcome. p ∈ {0,1} never consumes randomness.
func trial(cfg builderConfig, p float64) bool {
	switch p {
	case MinProbability:
		return false
	case MaxProbability:
		return true
	}

	// Float64 is in [0,1), so the event has probability exactly p.
	return cfg.rng.Float64() < p
}
