// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: Graph mutation and query methods.
// Policy:
//   - Every method validates vertex bounds and fails fast (never clamps).
//   - Query methods return snapshots; callers may keep or mutate them freely.

package core

import (
	"fmt"
	"strings"
)

// V returns the number of vertices.
// Complexity: O(1).
func (g *Graph) V() int {
	// v is immutable after NewGraph; no lock needed.
	return g.v
}

// E returns the number of edges added so far.
// Complexity: O(1).
func (g *Graph) E() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.e
}

// Looped reports whether self-loops are permitted by policy.
func (g *Graph) Looped() bool { return g.allowLoops }

// AddEdge appends e to the adjacency lists of both endpoints.
// A self-loop is appended twice to its vertex' list so that E == Σdeg/2.
//
// Returns ErrVertexOutOfRange if an endpoint is outside [0,V),
// ErrLoopNotAllowed for a self-loop on a graph built without WithLoops().
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(e Edge) error {
	// 1) Bounds of both endpoints
	if err := g.validateVertex(e.v); err != nil {
		return fmt.Errorf("AddEdge(%s): %w", e, err)
	}
	if err := g.validateVertex(e.w); err != nil {
		return fmt.Errorf("AddEdge(%s): %w", e, err)
	}
	// 2) Loop policy
	if e.v == e.w && !g.allowLoops {
		return fmt.Errorf("AddEdge(%s): %w", e, ErrLoopNotAllowed)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// 3) Record in both endpoints' lists (twice in the same list for loops).
	g.adj[e.v] = append(g.adj[e.v], e)
	g.adj[e.w] = append(g.adj[e.w], e)
	g.e++

	return nil
}

// Connect builds the edge v—w with the given weight and adds it to g.
// It is shorthand for NewEdge followed by AddEdge and returns the stored edge.
// Complexity: O(1) amortized.
func (g *Graph) Connect(v, w int, weight float64) (Edge, error) {
	e, err := NewEdge(v, w, weight)
	if err != nil {
		return Edge{}, err
	}
	if err = g.AddEdge(e); err != nil {
		return Edge{}, err
	}

	return e, nil
}

// Adj returns a snapshot of the edges incident to v in insertion order.
// Parallel edges appear once per edge; self-loops appear twice.
// Returns ErrVertexOutOfRange if v is outside [0,V).
// Complexity: O(deg v).
func (g *Graph) Adj(v int) ([]Edge, error) {
	if err := g.validateVertex(v); err != nil {
		return nil, fmt.Errorf("Adj: %w", err)
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.adj[v]))
	copy(out, g.adj[v])

	return out, nil
}

// Degree returns the number of adjacency entries of v (a self-loop counts twice).
// Returns ErrVertexOutOfRange if v is outside [0,V).
// Complexity: O(1).
func (g *Graph) Degree(v int) (int, error) {
	if err := g.validateVertex(v); err != nil {
		return 0, fmt.Errorf("Degree: %w", err)
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adj[v]), nil
}

// Edges returns every edge of g exactly once.
//
// Order: by lower endpoint ascending, then adjacency order of that endpoint.
// Self-loops, stored twice in one list, are reported on every second sighting.
// Complexity: O(V+E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.e)
	for v := 0; v < g.v; v++ {
		loops := 0 // loop sightings at v
		for _, e := range g.adj[v] {
			other := e.w
			if other == v {
				other = e.v
			}
			switch {
			case other > v:
				out = append(out, e)
			case other == v:
				// Each loop shows up twice in adj[v]; keep one copy.
				if loops%2 == 0 {
					out = append(out, e)
				}
				loops++
			}
		}
	}

	return out
}

// String renders g as "V vertices, E edges" followed by one adjacency line per vertex.
func (g *Graph) String() string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d vertices, %d edges\n", g.v, g.e)
	for v := 0; v < g.v; v++ {
		fmt.Fprintf(&sb, "%d:", v)
		for _, e := range g.adj[v] {
			fmt.Fprintf(&sb, " %s", e)
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// validateVertex returns ErrVertexOutOfRange unless 0 <= v < V.
func (g *Graph) validateVertex(v int) error {
	if v < 0 || v >= g.v {
		return fmt.Errorf("vertex %d not in [0,%d): %w", v, g.v, ErrVertexOutOfRange)
	}

	return nil
}
