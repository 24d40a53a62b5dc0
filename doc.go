// SPDX-License-Identifier: MIT

// Package mstkit computes and checks minimum spanning trees of undirected,
// edge-weighted graphs.
//
// 🚀 What is in the box?
//
//	• core/          Edge and the fixed-vertex-count Graph (adjacency lists, edge-list I/O)
//	• unionfind/     disjoint sets with path compression and union by size
//	• indexpq/       indexed min-priority queue with DecreaseKey
//	• prim_kruskal/  lazy Prim, eager Prim and Kruskal behind one Compute entry point
//	• verify/        an independent checker for weight, acyclicity, spanning and cut optimality
//	• builder/       deterministic topology constructors for fixtures and benchmarks
//	• cmd/mstkit     command line front end (mst, gen)
//
// Disconnected input yields a minimum spanning forest. Every algorithm is
// deterministic: equal input and options give the same edges in the same
// order.
//
// Quick ASCII example:
//
//	    0───1       0-1:1  1-2:2  2-3:3
//	    │ ╲ │       0-3:4  0-2:5
//	    3───2       MST: 0-1, 1-2, 2-3 (weight 6)
//
//	g, _ := core.NewGraph(4)
//	g.Connect(0, 1, 1)
//	...
//	mst, _ := prim_kruskal.Compute(g, prim_kruskal.WithMethod(prim_kruskal.MethodKruskal))
//	v, _ := verify.Check(g, mst.Edges, mst.Weight)
//
//	go get github.com/katalvlaran/mstkit
package mstkit
