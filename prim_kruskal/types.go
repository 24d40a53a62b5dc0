// SPDX-License-Identifier: MIT

// Package prim_kruskal defines configuration options, sentinel errors and the MST result type.
package prim_kruskal

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mstkit/core"
)

// ErrNilGraph indicates that a nil *core.Graph was passed.
var ErrNilGraph = errors.New("prim_kruskal: graph is nil")

// ErrRootOutOfRange indicates that the requested root is not a vertex of the graph.
var ErrRootOutOfRange = errors.New("prim_kruskal: root vertex out of range")

// ErrDisconnected indicates that the graph is not fully connected, so a spanning
// tree covering all vertices cannot be formed. Only returned under WithRequireConnected().
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// ErrUnknownMethod indicates that Compute was asked for an algorithm it does not know.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown MST method")

// MethodPrim selects eager Prim (indexed priority queue of vertices).
const MethodPrim = "prim"

// MethodLazyPrim selects lazy Prim (min-heap of edges, stale entries skipped on pop).
const MethodLazyPrim = "lazy-prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MSTOptions configures which MST algorithm to run and how.
// Use DefaultOptions() to get a default setup (eager Prim, root 0, forests allowed).
//
// Fields:
//
//	Method           string — one of MethodPrim, MethodLazyPrim, MethodKruskal (Compute only).
//	Root             int    — first start vertex for the Prim variants; ignored by Kruskal.
//	RequireConnected bool   — fail with ErrDisconnected instead of returning a forest.
type MSTOptions struct {
	Method           string
	Root             int
	RequireConnected bool
}

// Option configures MSTOptions. All Option functions should modify the pointed MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method used by Compute.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the starting vertex for the Prim variants.
func WithRoot(root int) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// WithRequireConnected makes the algorithms return ErrDisconnected rather than
// a spanning forest when the graph has more than one component.
func WithRequireConnected() Option {
	return func(opts *MSTOptions) {
		opts.RequireConnected = true
	}
}

// DefaultOptions returns MSTOptions initialized for eager Prim:
//
//	– Method           = MethodPrim
//	– Root             = 0
//	– RequireConnected = false (spanning forests are returned)
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method: MethodPrim,
	}
}

// MST is the result of a spanning-tree computation.
//
// Edges are listed in the order the algorithm selected them; Weight is their sum,
// accumulated in that same order.
type MST struct {
	Edges    []core.Edge
	Weight   float64
	Vertices int // vertex count of the source graph
}

// Len returns the number of selected edges.
func (m *MST) Len() int { return len(m.Edges) }

// Trees returns the number of trees in the spanning forest (connected
// components of the source graph). Zero for an empty graph.
func (m *MST) Trees() int { return m.Vertices - len(m.Edges) }

// Compute selects and runs the MST algorithm based on the Method option.
//
//	– MethodPrim:     Prim(g, opts...)
//	– MethodLazyPrim: LazyPrim(g, opts...)
//	– MethodKruskal:  Kruskal(g, opts...)
//	– otherwise:      ErrUnknownMethod.
func Compute(g *core.Graph, opts ...Option) (*MST, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	// Dispatch by method name
	switch cfg.Method {
	case MethodPrim:
		return Prim(g, opts...)
	case MethodLazyPrim:
		return LazyPrim(g, opts...)
	case MethodKruskal:
		return Kruskal(g, opts...)
	default:
		return nil, fmt.Errorf("method %q: %w", cfg.Method, ErrUnknownMethod)
	}
}

// resolve applies opts over the defaults and validates them against g.
func resolve(g *core.Graph, opts []Option) (MSTOptions, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return cfg, ErrNilGraph
	}
	if g.V() > 0 && (cfg.Root < 0 || cfg.Root >= g.V()) {
		return cfg, fmt.Errorf("root %d not in [0,%d): %w", cfg.Root, g.V(), ErrRootOutOfRange)
	}

	return cfg, nil
}

// finish enforces RequireConnected on a completed result.
func finish(mst *MST, cfg MSTOptions) (*MST, error) {
	if cfg.RequireConnected && mst.Vertices > 1 && mst.Trees() > 1 {
		return nil, fmt.Errorf("%d components: %w", mst.Trees(), ErrDisconnected)
	}

	return mst, nil
}

// startOrder lists the vertices from which a Prim variant may (re)start:
// the root first, then every vertex in ascending order.
func startOrder(root, n int) []int {
	order := make([]int, 0, n+1)
	order = append(order, root)
	for v := 0; v < n; v++ {
		order = append(order, v)
	}

	return order
}
