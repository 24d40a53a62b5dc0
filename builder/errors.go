// SPDX-License-Identifier: MIT
// Package: mstkit/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers branch with errors.Is(err, ErrX); implementations attach
//     "<Method>: ..." context with %w.
//   • Validation panics are confined to option constructors (WithX...).
//
// Priority when several validations fail:
//   ErrTooFewVertices → ErrInvalidProbability → ErrNeedRandSource → ErrVertexRange.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols, partition)
// is smaller than the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability value is outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrVertexRange indicates that the constructor's vertex range does not fit
// into the target graph, or that Shift got a negative offset.
var ErrVertexRange = errors.New("builder: vertex range exceeds graph")

// ErrConstructFailed indicates a construction that cannot proceed at all,
// e.g. a nil constructor or a nil target graph.
var ErrConstructFailed = errors.New("builder: construction failed")
