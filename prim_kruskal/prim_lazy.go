// SPDX-License-Identifier: MIT

// Package prim_kruskal provides the lazy variant of Prim's algorithm.
// It grows the tree from the root using an ordinary min-heap of candidate edges
// and discards obsolete candidates only when they surface at the top.
package prim_kruskal

import (
	"container/heap"

	"github.com/katalvlaran/mstkit/core"
)

// LazyPrim computes a minimum spanning forest of g with the lazy version of Prim's algorithm.
//
// Error Conditions:
//   - ErrNilGraph       : if g is nil.
//   - ErrRootOutOfRange : if WithRoot names a vertex outside [0,V) on a non-empty graph.
//   - ErrDisconnected   : under WithRequireConnected() only, if more than one tree results.
//
// Steps:
//  1. Validate options; V == 0 returns an empty MST.
//  2. For each start vertex (the root, then every vertex in ascending order) that is not yet marked:
//     a. visit(start): mark it and push every incident edge whose other end is unmarked.
//     b. While the heap is non-empty:
//     – pop the lightest edge e = {v,w};
//     – if both v and w are marked, e is stale: skip it;
//     – otherwise append e, add its weight, and visit whichever endpoint was unmarked.
//  3. Enforce RequireConnected and return.
//
// Complexity: O(E log E) time, O(E) memory (the heap may hold every edge).
func LazyPrim(g *core.Graph, opts ...Option) (*MST, error) {
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

	l := &lazyPrim{
		g:      g,
		marked: make([]bool, n),
		pq:     &edgePQ{},
	}
	heap.Init(l.pq)

	// 2. Grow one tree per component.
	for _, s := range startOrder(cfg.Root, n) {
		if l.marked[s] {
			continue
		}
		tracer().Debugf("lazy prim: growing tree from vertex %d", s)
		if err = l.visit(s); err != nil {
			return nil, err
		}
		for l.pq.Len() > 0 {
			e := heap.Pop(l.pq).(core.Edge)
			v := e.Either()
			w, _ := e.Other(v) // v is an endpoint of e
			if l.marked[v] && l.marked[w] {
				l.stale++
				continue
			}
			mst.Edges = append(mst.Edges, e)
			mst.Weight += e.Weight()
			if !l.marked[v] {
				if err = l.visit(v); err != nil {
					return nil, err
				}
			}
			if !l.marked[w] {
				if err = l.visit(w); err != nil {
					return nil, err
				}
			}
		}
	}
	tracer().Debugf("lazy prim: %d edges, weight %g, %d stale candidates skipped",
		len(mst.Edges), mst.Weight, l.stale)

	// 3. Connectivity policy.
	return finish(mst, cfg)
}

// lazyPrim holds the working state of one LazyPrim run.
type lazyPrim struct {
	g      *core.Graph
	marked []bool // marked[v] = true iff v is on a tree
	pq     *edgePQ
	stale  int // candidates discarded because both endpoints were already marked
}

// visit marks v and queues every edge from v to an unmarked vertex.
func (l *lazyPrim) visit(v int) error {
	l.marked[v] = true
	adj, err := l.g.Adj(v)
	if err != nil {
		return err
	}
	for _, e := range adj {
		w, err := e.Other(v)
		if err != nil {
			return err
		}
		// Self-loops land here too: w == v is already marked.
		if !l.marked[w] {
			heap.Push(l.pq, e)
		}
	}

	return nil
}

// edgePQ implements heap.Interface for a min-heap of core.Edge, ordered by weight.
type edgePQ []core.Edge

// Len returns the number of edges in the priority queue.
// Complexity: O(1).
func (pq edgePQ) Len() int { return len(pq) }

// Less reports whether element i should sort before j.
// We compare by edge weight for ascending order.
// Complexity: O(1).
func (pq edgePQ) Less(i, j int) bool { return pq[i].Compare(pq[j]) < 0 }

// Swap swaps elements at indices i and j.
func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends a new core.Edge to the heap. Called by heap.Push.
func (pq *edgePQ) Push(x any) { *pq = append(*pq, x.(core.Edge)) }

// Pop removes and returns the last element; heap.Pop has already moved
// the lightest edge there.
func (pq *edgePQ) Pop() any {
	old := *pq
	n := len(old)
	edge := old[n-1]
	*pq = old[:n-1]

	return edge
}
