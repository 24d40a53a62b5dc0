// SPDX-License-Identifier: MIT

// Package prim_kruskal provides an implementation of Kruskal's Minimum Spanning Tree algorithm.
// It scans all edges of a *core.Graph in ascending weight order and joins components with union-find.
package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/mstkit/core"
	"github.com/katalvlaran/mstkit/unionfind"
)

// Kruskal computes a minimum spanning forest of g.
// The Root option is ignored; RequireConnected is honored.
//
// Error Conditions:
//   - ErrNilGraph     : if g is nil.
//   - ErrDisconnected : under WithRequireConnected() only, if more than one tree results.
//
// Steps:
//  1. Validate; V == 0 returns an empty MST.
//  2. Collect all edges via g.Edges(), skip self-loops.
//  3. Sort edges by ascending weight (sort.SliceStable keeps g.Edges() order among equal weights).
//  4. For each edge {v,w}: if Union(v,w) merges two components, include the edge.
//  5. Stop early once V−1 edges are chosen.
//
// Complexity: O(E log E + E·α(V)). Memory: O(E + V).
func Kruskal(g *core.Graph, opts ...Option) (*MST, error) {
	// 1. Validate graph and options.
	cfg, err := resolve(g, opts)
	if err != nil {
		return nil, err
	}
	n := g.V()
	mst := &MST{Vertices: n, Edges: make([]core.Edge, 0, max(n-1, 0))}
	if n == 0 {
		return mst, nil
	}

	// 2. Collect all edges, skipping self-loops: they can never join two components.
	all := g.Edges()
	edges := all[:0]
	for _, e := range all {
		if !e.IsLoop() {
			edges = append(edges, e)
		}
	}

	// 3. Sort edges by ascending weight.
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Compare(edges[j]) < 0
	})

	// 4. Merge components.
	uf, err := unionfind.New(n)
	if err != nil {
		return nil, err
	}
	skipped := 0
	for _, e := range edges {
		if len(mst.Edges) == n-1 {
			break
		}
		v := e.Either()
		w, _ := e.Other(v) // v is an endpoint of e
		merged, err := uf.Union(v, w)
		if err != nil {
			return nil, err
		}
		if !merged {
			skipped++
			continue
		}
		mst.Edges = append(mst.Edges, e)
		mst.Weight += e.Weight()
	}
	tracer().Debugf("kruskal: %d edges, weight %g, %d cycle edges skipped, %d components",
		len(mst.Edges), mst.Weight, skipped, uf.Count())

	// 5. Connectivity policy.
	return finish(mst, cfg)
}
