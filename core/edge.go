// SPDX-License-Identifier: MIT

package core

import (
	"cmp"
	"fmt"
)

// Either returns one endpoint of e (the first one given to NewEdge).
func (e Edge) Either() int { return e.v }

// Other returns the endpoint of e opposite to vertex.
// For a self-loop the opposite endpoint is the vertex itself.
// Returns ErrNotIncident if vertex is not an endpoint of e.
// Complexity: O(1).
func (e Edge) Other(vertex int) (int, error) {
	switch vertex {
	case e.v:
		return e.w, nil
	case e.w:
		return e.v, nil
	default:
		return 0, fmt.Errorf("edge %s, vertex %d: %w", e, vertex, ErrNotIncident)
	}
}

// Weight returns the weight of e.
func (e Edge) Weight() float64 { return e.weight }

// Compare orders edges by weight: -1 if e is lighter than f, +1 if heavier, 0 if equal.
func (e Edge) Compare(f Edge) int { return cmp.Compare(e.weight, f.weight) }

// IsLoop reports whether both endpoints of e are the same vertex.
func (e Edge) IsLoop() bool { return e.v == e.w }

// String renders e as "v-w weight" with five decimals, e.g. "0-1 0.50000".
func (e Edge) String() string {
	return fmt.Sprintf("%d-%d %.5f", e.v, e.w, e.weight)
}
