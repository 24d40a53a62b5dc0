// SPDX-License-Identifier: MIT

// Package core provides the edge-weighted, undirected multigraph that every
// spanning-tree algorithm in mstkit consumes, together with its immutable Edge
// value type and a plain-text edge-list reader/writer.
//
// The Graph G = (V,E) is deliberately small:
//
//   - Vertices are the integers 0..V-1; V is fixed by NewGraph.
//   - Edges are immutable values (two endpoints + a finite float64 weight).
//   - Parallel edges are always permitted (multigraph).
//   - Self-loops are rejected unless the graph was built WithLoops().
//   - Adjacency lists keep insertion order; every edge is appended to the
//     lists of both endpoints, so E() == Σ deg(v) / 2 holds at all times.
//   - A sync.RWMutex guards the adjacency so a fully built graph can be read
//     from many goroutines.
//
// Core Methods:
//
//	NewGraph(v int, opts ...GraphOption) (*Graph, error) // O(V)
//	AddEdge(e Edge) error                                 // O(1) amortized
//	Connect(v, w int, weight float64) (Edge, error)       // NewEdge + AddEdge
//	Adj(v int) ([]Edge, error)                            // O(deg v) snapshot
//	Degree(v int) (int, error)                            // O(1)
//	Edges() []Edge                                        // O(V+E), each edge once
//	V() int, E() int                                      // O(1)
//
// Text format (ReadGraph / WriteTo):
//
//	V
//	E
//	v w weight   (E lines)
//
// Errors:
//
//	ErrNegativeVertexCount – NewGraph with v < 0
//	ErrVertexCountTooLarge – NewGraph with v > MaxVertices
//	ErrVertexOutOfRange    – endpoint outside [0,V)
//	ErrBadWeight           – NaN or ±Inf weight
//	ErrLoopNotAllowed      – self-loop when loops are disabled
//	ErrNotIncident         – Edge.Other called with a non-endpoint
//	ErrMalformedInput      – unreadable edge-list input, or tokens after the last edge
package core
