// SPDX-License-Identifier: MIT

// Package prim_kruskal provides the eager variant of Prim's algorithm.
// Every non-tree vertex keeps only its lightest known connection to the tree,
// held in an indexed priority queue and improved with decrease-key.
package prim_kruskal

import (
	"math"

	"github.com/katalvlaran/mstkit/core"
	"github.com/katalvlaran/mstkit/indexpq"
)

// Prim computes a minimum spanning forest of g with the eager version of Prim's algorithm.
//
// Error Conditions:
//   - ErrNilGraph       : if g is nil.
//   - ErrRootOutOfRange : if WithRoot names a vertex outside [0,V) on a non-empty graph.
//   - ErrDisconnected   : under WithRequireConnected() only, if more than one tree results.
//
// Steps:
//  1. Validate options; V == 0 returns an empty MST.
//  2. distTo[v] = +Inf for all v; edgeTo unset; pq an IndexMinPQ over [0,V).
//  3. For each start vertex s (the root, then ascending) that is not marked:
//     a. distTo[s] = 0; insert s.
//     b. While pq is non-empty: v = DeleteMin; record edgeTo[v] unless v == s; scan(v).
//  4. scan(v): mark v; for each e = {v,w} with w unmarked and weight(e) < distTo[w]:
//     distTo[w] = weight(e), edgeTo[w] = e, then DecreaseKey(w) if queued, else Insert(w).
//  5. Enforce RequireConnected and return.
//
// Complexity: O(E log V) time, O(V) extra memory.
func Prim(g *core.Graph, opts ...Option) (*MST, error) {
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

	// 2. Initialize working state.
	pq, err := indexpq.New[float64](n)
	if err != nil {
		return nil, err
	}
	p := &eagerPrim{
		g:      g,
		edgeTo: make([]core.Edge, n),
		distTo: make([]float64, n),
		marked: make([]bool, n),
		pq:     pq,
	}
	for v := range p.distTo {
		p.distTo[v] = math.Inf(1)
	}

	// 3. Grow one tree per component.
	for _, s := range startOrder(cfg.Root, n) {
		if p.marked[s] {
			continue
		}
		tracer().Debugf("prim: growing tree from vertex %d", s)
		p.distTo[s] = 0
		if err = p.pq.Insert(s, 0); err != nil {
			return nil, err
		}
		for !p.pq.IsEmpty() {
			v, err := p.pq.DeleteMin()
			if err != nil {
				return nil, err
			}
			if v != s {
				mst.Edges = append(mst.Edges, p.edgeTo[v])
				mst.Weight += p.edgeTo[v].Weight()
			}
			if err = p.scan(v); err != nil {
				return nil, err
			}
		}
	}
	tracer().Debugf("prim: %d edges, weight %g, %d decrease-key updates",
		len(mst.Edges), mst.Weight, p.decreases)

	// 5. Connectivity policy.
	return finish(mst, cfg)
}

// eagerPrim holds the working state of one Prim run.
type eagerPrim struct {
	g         *core.Graph
	edgeTo    []core.Edge // edgeTo[v] = lightest known edge from v to the tree
	distTo    []float64   // distTo[v] = weight of edgeTo[v], +Inf if none
	marked    []bool      // marked[v] = true iff v is on a tree
	pq        *indexpq.IndexMinPQ[float64]
	decreases int
}

// scan marks v and relaxes every edge from v to an unmarked vertex.
func (p *eagerPrim) scan(v int) error {
	p.marked[v] = true
	adj, err := p.g.Adj(v)
	if err != nil {
		return err
	}
	for _, e := range adj {
		w, err := e.Other(v)
		if err != nil {
			return err
		}
		if p.marked[w] || e.Weight() >= p.distTo[w] {
			continue
		}
		p.distTo[w] = e.Weight()
		p.edgeTo[w] = e
		queued, err := p.pq.Contains(w)
		if err != nil {
			return err
		}
		if queued {
			p.decreases++
			err = p.pq.DecreaseKey(w, e.Weight())
		} else {
			err = p.pq.Insert(w, e.Weight())
		}
		if err != nil {
			return err
		}
	}

	return nil
}
