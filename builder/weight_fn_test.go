// SPDX-License-Identifier: MIT

// Package builder_test contains unit tests for the WeightFn implementations
// in the builder package, covering both correct behavior and panic conditions.
package builder_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/mstkit/builder"
	"github.com/stretchr/testify/assert"
)

// TestWeightFnConstructors verifies that WeightFn constructors panic
// on invalid parameters according to their documented contracts.
func TestWeightFnConstructors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		constructor func() builder.WeightFn
	}{
		{"ConstantWeightFn_NaN", func() builder.WeightFn { return builder.ConstantWeightFn(math.NaN()) }},
		{"ConstantWeightFn_Inf", func() builder.WeightFn { return builder.ConstantWeightFn(math.Inf(1)) }},
		{"UniformWeightFn_maxLessThanMin", func() builder.WeightFn { return builder.UniformWeightFn(5, 4) }},
		{"UniformWeightFn_infiniteMax", func() builder.WeightFn { return builder.UniformWeightFn(0, math.Inf(1)) }},
		{"NormalWeightFn_stddevNegative", func() builder.WeightFn { return builder.NormalWeightFn(0, -0.1) }},
		{"ExponentialWeightFn_zeroRate", func() builder.WeightFn { return builder.ExponentialWeightFn(0) }},
		{"ExponentialWeightFn_negativeRate", func() builder.WeightFn { return builder.ExponentialWeightFn(-1) }},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Panics(t, func() { tc.constructor() })
		})
	}

	assert.NotPanics(t, func() { builder.ConstantWeightFn(-3) }, "negative weights are valid MST input")
}

// TestWeightFnBehavior covers the runtime behavior of each WeightFn:
//   - DefaultWeightFn always returns DefaultEdgeWeight.
//   - ConstantWeightFn returns the fixed value.
//   - Random distributions return DefaultEdgeWeight on a nil RNG and stay in range otherwise.
func TestWeightFnBehavior(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(42))

	assert.Equal(t, builder.DefaultEdgeWeight, builder.DefaultWeightFn(nil))
	assert.Equal(t, builder.DefaultEdgeWeight, builder.DefaultWeightFn(rng))
	assert.Equal(t, -3.0, builder.ConstantWeightFn(-3)(rng))

	uniform := builder.UniformWeightFn(2, 5)
	assert.Equal(t, builder.DefaultEdgeWeight, uniform(nil))
	for i := 0; i < 1000; i++ {
		w := uniform(rng)
		assert.GreaterOrEqual(t, w, 2.0)
		assert.Less(t, w, 5.0)
	}
	assert.Equal(t, 7.0, builder.UniformWeightFn(7, 7)(rng))

	normal := builder.NormalWeightFn(10, 0)
	assert.Equal(t, builder.DefaultEdgeWeight, normal(nil))
	assert.Equal(t, 10.0, normal(rng), "zero stddev collapses to the mean")

	exp := builder.ExponentialWeightFn(2)
	assert.Equal(t, builder.DefaultEdgeWeight, exp(nil))
	for i := 0; i < 1000; i++ {
		assert.GreaterOrEqual(t, exp(rng), 0.0)
	}
}
