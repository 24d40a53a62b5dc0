// SPDX-License-Identifier: MIT

// Package prim_kruskal computes minimum spanning trees (and, on disconnected
// input, minimum spanning forests) of an undirected, edge-weighted *core.Graph.
//
// What & Why
//
//   - What is an MST?
//     Given an undirected, connected, weighted graph G = (V, E), an MST is a subset T ⊆ E such that
//     T connects all vertices in V and the sum of weights of edges in T is minimized.
//     On a graph with C connected components the same algorithms return one tree per component:
//     a spanning forest with V − C edges.
//
//   - Cut property: for any cut (S, V∖S), a lightest edge crossing the cut belongs to some MST.
//     All three algorithms below are greedy applications of it.
//
// Algorithms Provided
//
//   - LazyPrim(g, opts...) (*MST, error)
//
//   - Strategy: grow a tree from the root, keeping every edge that leaves a visited vertex in an
//     ordinary min-heap. Edges whose endpoints both became visited are NOT removed eagerly; they are
//     discarded when popped (lazy deletion). The heap may therefore hold O(E) entries.
//
//   - Complexity: Time O((V+E) log E), Space O(E).
//
//   - Prim(g, opts...) (*MST, error)
//
//   - Strategy (eager): keep, per non-tree vertex, only the lightest known edge to the tree (edgeTo)
//     and its weight (distTo) in an indexed priority queue keyed by vertex; improve it with
//     decrease-key. Only eligible vertices are ever queued.
//
//   - Complexity: Time O(E log V), Space O(V).
//
//   - Kruskal(g, opts...) (*MST, error)
//
//   - Strategy: stable-sort all edges by weight and merge components with union-find, skipping
//     edges whose endpoints are already connected.
//
//   - Complexity: Time O(E log E), Space O(V + E).
//
// Roots and forests
//
//	Both Prim variants start at WithRoot(r) (default 0). When the queue runs dry with vertices still
//	unvisited, the algorithm restarts from the lowest-numbered unvisited vertex, so the result always
//	spans every component. Pass WithRequireConnected() to get ErrDisconnected instead of a forest.
//
// Error Conditions
//
//	- ErrNilGraph        graph is nil.
//	- ErrRootOutOfRange  WithRoot(r) with r ∉ [0,V) on a non-empty graph.
//	- ErrUnknownMethod   Compute with an unrecognized WithMethod value.
//	- ErrDisconnected    only with WithRequireConnected(), when V > 1 and the result is a forest.
//
// A graph with V == 0 yields an empty MST with zero weight; V == 1 yields an empty tree.
//
// Determinism
//
//	Adjacency lists are scanned in insertion order and ties are broken by the heaps' fixed
//	sift rules, so the same graph always yields the same edge sequence. Different algorithms may
//	select different (equally light) trees when weights tie; total weights always agree.
package prim_kruskal

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'mstkit'
func tracer() tracing.Trace {
	return tracing.Select("mstkit")
}
