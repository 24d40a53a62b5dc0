// SPDX-License-Identifier: MIT
// Package: mstkit/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults (no surprises):
//   • rng      = nil              (pure/deterministic unless seeded)
//   • weightFn = DefaultWeightFn  (every edge weighs DefaultEdgeWeight)
//   • offset   = 0                (constructors start at vertex 0)

package builder

import (
	"math/rand" // RNG for stochastic builders
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors, so Shift can move offset for one call only.
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Weight generator, called once per emitted edge.
	weightFn WeightFn
	// First vertex of the constructor's range.
	offset int
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// weight draws the next edge weight.
func (c builderConfig) weight() float64 {
	return c.weightFn(c.rng)
}
