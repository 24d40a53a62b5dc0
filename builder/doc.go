// SPDX-License-Identifier: MIT

// Package builder assembles deterministic fixture graphs over *core.Graph for
// tests, examples and benchmarks of the MST algorithms.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph(v, gopts, bopts, cons...): create a V-vertex graph and run constructors in order.
//     – Apply(g, bopts, cons...):           run constructors against an existing graph.
//   - Configuration primitives:
//     – BuilderOption:  a function that mutates builderConfig before use.
//     – builderConfig:  holds RNG, weight function and the current vertex offset.
//   - Topologies (Constructor factories), each over vertices [offset, offset+n):
//     – Path(n), Cycle(n), Star(n), Wheel(n), Complete(n),
//     CompleteBipartite(n1, n2), Grid(rows, cols), RandomSparse(n, p).
//     – Shift(offset, c): run c on a higher vertex range, e.g. to lay out
//     several components side by side in one disconnected graph.
//   - Edge-weight distributions (WeightFn implementations):
//     – DefaultWeightFn:     constant DefaultEdgeWeight.
//     – ConstantWeightFn:    fixed user-provided value.
//     – UniformWeightFn:     uniform ∼U[min,max).
//     – NormalWeightFn:      Gaussian ∼N(mean,stddev).
//     – ExponentialWeightFn: exponential ∼Exp(rate).
//
// Guarantees:
//
//   - Determinism: same V, options, seed and constructor order ⇒ identical graphs,
//     including adjacency order.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Constructors never panic; they return errors wrapping the package sentinels
//     (ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource, ErrVertexRange,
//     ErrConstructFailed) with "<Method>: ..." context.
//
// Unlike string-keyed graphs, a core.Graph has a fixed vertex count, so a constructor
// does not add vertices: it fails with ErrVertexRange when its range does not fit.
package builder
