// SPDX-License-Identifier: MIT

// Package builder provides helper functions and types
// for configuring edge-weight distributions in graph constructors.
package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// DefaultEdgeWeight is the default weight assigned to each edge when no
// custom WeightFn is provided.
const DefaultEdgeWeight float64 = 1

// WeightFn produces an edge weight given an optional *rand.Rand source.
// It must be deterministic for a given RNG state and must return a finite value;
// core.Graph rejects NaN and ±Inf.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns the constant DefaultEdgeWeight.
// Complexity: O(1) time, O(1) space. Never panics.
func DefaultWeightFn(_ *rand.Rand) float64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns a WeightFn that always yields the provided value.
// Negative values are fine for MST fixtures. Panics if value is NaN or ±Inf.
// Complexity: O(1) time, O(1) space.
func ConstantWeightFn(value float64) WeightFn {
	if !finite(value) {
		panic(fmt.Sprintf("ConstantWeightFn: value must be finite, got %g", value))
	}

	return func(_ *rand.Rand) float64 {
		return value
	}
}

// UniformWeightFn returns a WeightFn sampling uniformly in [min, max).
// Panics if a bound is not finite or max < min.
// If rng is nil, yields DefaultEdgeWeight to maintain deterministic fallback.
// Complexity: O(1) time, O(1) space.
func UniformWeightFn(min, max float64) WeightFn {
	if !finite(min) || !finite(max) || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require finite min ≤ max, got min=%g, max=%g", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}
		if max == min {
			// Degenerate interval: constant
			return min
		}
		// Continuous uniform on [min, max) (Float64() returns [0,1))
		return min + rng.Float64()*(max-min)
	}
}

// NormalWeightFn returns a WeightFn sampling from N(mean, stddev).
// Panics if stddev < 0 or either parameter is not finite.
// If rng is nil, yields DefaultEdgeWeight.
// Complexity: O(1) time, O(1) space.
func NormalWeightFn(mean, stddev float64) WeightFn {
	if !finite(mean) || !finite(stddev) || stddev < 0 {
		panic(fmt.Sprintf("NormalWeightFn: require finite mean and stddev ≥ 0, got mean=%g, stddev=%g", mean, stddev))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}

		return rng.NormFloat64()*stddev + mean
	}
}

// ExponentialWeightFn returns a WeightFn sampling from an exponential distribution
// with rate λ, i.e. PDF λ e^(−λx). Panics if rate ≤ 0 or rate is not finite.
// If rng is nil, yields DefaultEdgeWeight.
// Complexity: O(1) time, O(1) space.
func ExponentialWeightFn(rate float64) WeightFn {
	if !finite(rate) || rate <= 0 {
		panic(fmt.Sprintf("ExponentialWeightFn: rate must be > 0, got %g", rate))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}
		// rng.ExpFloat64 has mean 1; dividing by rate yields mean 1/rate.
		return rng.ExpFloat64() / rate
	}
}

// WithConstantWeight sets a fixed edge weight via ConstantWeightFn.
func WithConstantWeight(w float64) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight sets weights ∼ U[min,max) via UniformWeightFn.
func WithUniformWeight(min, max float64) BuilderOption {
	return WithWeightFn(UniformWeightFn(min, max))
}

// WithNormalWeight sets weights ∼ N(mean,stddev) via NormalWeightFn.
func WithNormalWeight(mean, stddev float64) BuilderOption {
	return WithWeightFn(NormalWeightFn(mean, stddev))
}

// WithExponentialWeight sets weights ∼ Exp(rate) via ExponentialWeightFn.
func WithExponentialWeight(rate float64) BuilderOption {
	return WithWeightFn(ExponentialWeightFn(rate))
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
