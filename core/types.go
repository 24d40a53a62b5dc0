// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Edge and Graph declarations, sentinel errors, options, constructors.
// Policy:
//   - Edge is an immutable value; fields are unexported.
//   - Graph vertex count is fixed at construction; only edges grow.

package core

import (
	"errors"
	"fmt"
	"math"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNegativeVertexCount indicates NewGraph was called with v < 0.
	ErrNegativeVertexCount = errors.New("core: vertex count must be non-negative")

	// ErrVertexCountTooLarge indicates NewGraph was called with v > MaxVertices.
	ErrVertexCountTooLarge = errors.New("core: vertex count too large")

	// ErrVertexOutOfRange indicates a vertex outside [0,V) (or a negative endpoint).
	ErrVertexOutOfRange = errors.New("core: vertex out of range")

	// ErrBadWeight indicates a NaN or infinite edge weight.
	ErrBadWeight = errors.New("core: edge weight must be finite")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrNotIncident indicates Edge.Other was asked about a vertex that is not an endpoint.
	ErrNotIncident = errors.New("core: vertex is not an endpoint of edge")

	// ErrMalformedInput indicates edge-list input that cannot be parsed.
	ErrMalformedInput = errors.New("core: malformed edge-list input")
)

// Edge is an undirected, weighted connection between two vertices.
//
// Endpoints are unordered: Either returns one of them, Other the opposite one.
// Edge is comparable, so identical parallel edges compare equal.
type Edge struct {
	v      int     // one endpoint
	w      int     // the other endpoint
	weight float64 // finite cost
}

// NewEdge creates the edge v—w with the given weight.
// Returns ErrVertexOutOfRange for negative endpoints and ErrBadWeight for NaN/±Inf.
// Upper bounds are checked when the edge is added to a Graph.
// Complexity: O(1).
func NewEdge(v, w int, weight float64) (Edge, error) {
	if v < 0 || w < 0 {
		return Edge{}, fmt.Errorf("edge %d-%d: %w", v, w, ErrVertexOutOfRange)
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return Edge{}, fmt.Errorf("edge %d-%d weight=%g: %w", v, w, weight, ErrBadWeight)
	}

	return Edge{v: v, w: w, weight: weight}, nil
}

// MaxVertices is the largest vertex count NewGraph accepts.
const MaxVertices = math.MaxInt32

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is an edge-weighted undirected multigraph over vertices 0..V-1.
//
// mu protects adj and e; v and allowLoops are immutable after NewGraph.
type Graph struct {
	mu sync.RWMutex

	allowLoops bool // allow self-loops

	v   int      // vertex count, fixed
	e   int      // edge count, monotonically increasing
	adj [][]Edge // adj[x] = edges incident to x, insertion order
}

// NewGraph creates a Graph with v isolated vertices.
// By default self-loops are rejected; pass WithLoops() to allow them.
// Returns ErrNegativeVertexCount if v < 0 and ErrVertexCountTooLarge if v > MaxVertices.
// Complexity: O(V).
func NewGraph(v int, opts ...GraphOption) (*Graph, error) {
	if v < 0 {
		return nil, fmt.Errorf("NewGraph(%d): %w", v, ErrNegativeVertexCount)
	}
	if v > MaxVertices {
		return nil, fmt.Errorf("NewGraph(%d): max %d: %w", v, MaxVertices, ErrVertexCountTooLarge)
	}
	g := &Graph{
		v:   v,
		adj: make([][]Edge, v),
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}
