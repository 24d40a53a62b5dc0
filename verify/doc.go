// SPDX-License-Identifier: MIT

// Package verify checks a claimed minimum spanning tree (or forest) against its graph.
//
// Check runs five conditions in order and stops at the first that fails:
//
//  1. ConditionWeight      the claimed total equals the sum of the edge weights, within a tolerance.
//  2. ConditionAcyclic     no edge joins two vertices the previous edges already connect.
//  3. ConditionSpanning    every graph edge has both endpoints in the same tree.
//  4. ConditionCutOptimal  removing any tree edge e splits its tree; no graph edge crossing
//     that cut is strictly lighter than e.
//  5. ConditionMember      every tree edge is an edge of the graph (same endpoints, same weight).
//
// Conditions 2-4 together are the cut optimality criterion: a spanning forest is
// minimal iff every tree edge is a lightest edge across the cut it defines.
// Condition 5 rejects trees built from edges the graph does not have.
//
// A failed condition is reported as a Verdict value, never as an error. Errors are
// returned only for a nil graph or an edge whose endpoint lies outside [0,V).
//
// Complexity: O(V·E·α(V)) time, dominated by the cut check, and O(V) extra memory.
// Check never mutates its inputs, so repeated calls return equal verdicts.
package verify

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'mstkit'
func tracer() tracing.Trace {
	return tracing.Select("mstkit")
}
