// SPDX-License-Identifier: MIT

package verify

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/mstkit/core"
	"github.com/katalvlaran/mstkit/unionfind"
)

// ErrNilGraph indicates that a nil *core.Graph was passed to Check.
var ErrNilGraph = errors.New("verify: graph is nil")

// ErrNotMinimal is wrapped by Verdict.Err for every failed verdict.
var ErrNotMinimal = errors.New("verify: not a minimum spanning forest")

// DefaultTolerance is the absolute tolerance of the weight check.
const DefaultTolerance = 1e-12

// Condition names one of the checks performed by Check.
type Condition int

// Conditions in the order Check evaluates them.
const (
	ConditionNone Condition = iota
	ConditionWeight
	ConditionAcyclic
	ConditionSpanning
	ConditionCutOptimal
	ConditionMember
)

func (c Condition) String() string {
	switch c {
	case ConditionNone:
		return "none"
	case ConditionWeight:
		return "weight"
	case ConditionAcyclic:
		return "acyclic"
	case ConditionSpanning:
		return "spanning"
	case ConditionCutOptimal:
		return "cut-optimal"
	case ConditionMember:
		return "member"
	}

	return fmt.Sprintf("Condition(%d)", int(c))
}

// Verdict is the outcome of Check.
//
// When Passed is false, Failed names the first condition that did not hold and
// Reason describes it. Edge is the offending tree edge (acyclic, cut-optimal, member);
// Witness is the graph edge that proves the failure (spanning, cut-optimal).
// Unused edge fields are zero.
type Verdict struct {
	Passed  bool
	Failed  Condition
	Edge    core.Edge
	Witness core.Edge
	Reason  string
}

// Err returns nil for a passing verdict, otherwise an error wrapping ErrNotMinimal.
func (v Verdict) Err() error {
	if v.Passed {
		return nil
	}

	return fmt.Errorf("%s: %s: %w", v.Failed, v.Reason, ErrNotMinimal)
}

// Option configures Check.
type Option func(*config)

type config struct {
	tolerance float64
}

// WithTolerance sets the absolute tolerance of the weight check.
// Panics if eps is negative or NaN.
func WithTolerance(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) {
		panic(fmt.Sprintf("verify: WithTolerance(%v): tolerance must be a non-negative number", eps))
	}

	return func(c *config) {
		c.tolerance = eps
	}
}

// Check verifies that edges, with claimed total weight, form a minimum spanning
// forest of g. See the package documentation for the conditions.
//
// Errors:
//   - ErrNilGraph if g is nil.
//   - unionfind.ErrIndexOutOfRange (wrapped) if an edge endpoint is not a vertex of g.
func Check(g *core.Graph, edges []core.Edge, weight float64, opts ...Option) (Verdict, error) {
	cfg := config{tolerance: DefaultTolerance}
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return Verdict{}, ErrNilGraph
	}
	n := g.V()

	// Endpoints must be vertices of g before any condition is meaningful.
	probe, err := unionfind.New(n)
	if err != nil {
		return Verdict{}, err
	}
	for i, e := range edges {
		v, w := endpoints(e)
		if _, err := probe.Connected(v, w); err != nil {
			return Verdict{}, fmt.Errorf("edge %d (%v): %w", i, e, err)
		}
	}

	all := g.Edges()
	checks := []func() Verdict{
		func() Verdict { return checkWeight(edges, weight, cfg.tolerance) },
		func() Verdict { return checkAcyclic(n, edges) },
		func() Verdict { return checkSpanning(n, edges, all) },
		func() Verdict { return checkCutOptimal(n, edges, all) },
		func() Verdict { return checkMember(edges, all) },
	}
	for _, check := range checks {
		if v := check(); !v.Passed {
			tracer().Debugf("verify: %s failed: %s", v.Failed, v.Reason)
			return v, nil
		}
	}

	return Verdict{Passed: true}, nil
}

// checkWeight compares the claimed weight with the sum of the edge weights.
func checkWeight(edges []core.Edge, weight, tolerance float64) Verdict {
	sum := 0.0
	for _, e := range edges {
		sum += e.Weight()
	}
	// Written so that a NaN claim fails.
	if !(math.Abs(sum-weight) <= tolerance) {
		return Verdict{
			Failed: ConditionWeight,
			Reason: fmt.Sprintf("claimed weight %g differs from edge sum %g", weight, sum),
		}
	}

	return Verdict{Passed: true}
}

// checkAcyclic replays edges into a fresh union-find; a redundant union closes a cycle.
func checkAcyclic(n int, edges []core.Edge) Verdict {
	uf, _ := unionfind.New(n)
	for _, e := range edges {
		v, w := endpoints(e)
		if merged, _ := uf.Union(v, w); !merged {
			return Verdict{
				Failed: ConditionAcyclic,
				Edge:   e,
				Reason: fmt.Sprintf("edge %v closes a cycle", e),
			}
		}
	}

	return Verdict{Passed: true}
}

// checkSpanning requires both endpoints of every graph edge to share a tree.
func checkSpanning(n int, edges, all []core.Edge) Verdict {
	uf := forest(n, edges, -1)
	for _, f := range all {
		v, w := endpoints(f)
		if ok, _ := uf.Connected(v, w); !ok {
			return Verdict{
				Failed:  ConditionSpanning,
				Witness: f,
				Reason:  fmt.Sprintf("vertices %d and %d are joined by %v but not by the forest", v, w, f),
			}
		}
	}

	return Verdict{Passed: true}
}

// checkCutOptimal removes each tree edge in turn and looks for a strictly lighter
// graph edge across the resulting cut.
func checkCutOptimal(n int, edges, all []core.Edge) Verdict {
	for i, e := range edges {
		uf := forest(n, edges, i)
		for _, f := range all {
			v, w := endpoints(f)
			if ok, _ := uf.Connected(v, w); !ok && f.Weight() < e.Weight() {
				return Verdict{
					Failed:  ConditionCutOptimal,
					Edge:    e,
					Witness: f,
					Reason:  fmt.Sprintf("edge %v crosses the cut of %v and is lighter", f, e),
				}
			}
		}
	}

	return Verdict{Passed: true}
}

// edgeKey identifies an edge by its ordered endpoints and weight.
type edgeKey struct {
	lo, hi int
	weight float64
}

func keyOf(e core.Edge) edgeKey {
	v, w := endpoints(e)
	if w < v {
		v, w = w, v
	}

	return edgeKey{lo: v, hi: w, weight: e.Weight()}
}

// checkMember requires every tree edge to be an edge of the graph, endpoints
// unordered and weight exact.
func checkMember(edges, all []core.Edge) Verdict {
	known := make(map[edgeKey]struct{}, len(all))
	for _, f := range all {
		known[keyOf(f)] = struct{}{}
	}
	for _, e := range edges {
		if _, ok := known[keyOf(e)]; !ok {
			return Verdict{
				Failed: ConditionMember,
				Edge:   e,
				Reason: fmt.Sprintf("edge %v is not an edge of the graph", e),
			}
		}
	}

	return Verdict{Passed: true}
}

// forest builds a union-find of edges, leaving out edges[skip] (skip < 0 keeps all).
// Endpoints were validated by Check.
func forest(n int, edges []core.Edge, skip int) *unionfind.UnionFind {
	uf, _ := unionfind.New(n)
	for i, e := range edges {
		if i == skip {
			continue
		}
		v, w := endpoints(e)
		_, _ = uf.Union(v, w)
	}

	return uf
}

func endpoints(e core.Edge) (int, int) {
	v := e.Either()
	w, _ := e.Other(v)

	return v, w
}
