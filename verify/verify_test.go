// SPDX-License-Identifier: MIT

package verify_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/mstkit/core"
	"github.com/katalvlaran/mstkit/unionfind"
	"github.com/katalvlaran/mstkit/verify"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// diamond holds the graph 0—1 (1), 1—2 (2), 2—3 (3), 0—3 (4), 0—2 (5)
// together with its edges, named by endpoints.
type diamond struct {
	g *core.Graph

	e01, e12, e23, e03, e02 core.Edge
}

func buildDiamond(t *testing.T) diamond {
	t.Helper()
	g, err := core.NewGraph(4)
	require.NoError(t, err)
	connect := func(v, w int, weight float64) core.Edge {
		e, err := g.Connect(v, w, weight)
		require.NoError(t, err)
		return e
	}
	d := diamond{g: g}
	d.e01 = connect(0, 1, 1)
	d.e12 = connect(1, 2, 2)
	d.e23 = connect(2, 3, 3)
	d.e03 = connect(0, 3, 4)
	d.e02 = connect(0, 2, 5)

	return d
}

func TestCheck_Passes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mstkit")
	defer teardown()

	d := buildDiamond(t)
	verdict, err := verify.Check(d.g, []core.Edge{d.e01, d.e12, d.e23}, 6)
	require.NoError(t, err)
	assert.True(t, verdict.Passed)
	assert.Equal(t, verify.ConditionNone, verdict.Failed)
	assert.NoError(t, verdict.Err())

	// Edge order is irrelevant.
	verdict, err = verify.Check(d.g, []core.Edge{d.e23, d.e01, d.e12}, 6)
	require.NoError(t, err)
	assert.True(t, verdict.Passed)
}

func TestCheck_Weight(t *testing.T) {
	d := buildDiamond(t)
	tree := []core.Edge{d.e01, d.e12, d.e23}

	verdict, err := verify.Check(d.g, tree, 6.5)
	require.NoError(t, err)
	assert.False(t, verdict.Passed)
	assert.Equal(t, verify.ConditionWeight, verdict.Failed)
	assert.ErrorIs(t, verdict.Err(), verify.ErrNotMinimal)

	verdict, err = verify.Check(d.g, tree, math.NaN())
	require.NoError(t, err)
	assert.Equal(t, verify.ConditionWeight, verdict.Failed)

	// Within tolerance.
	verdict, err = verify.Check(d.g, tree, 6+1e-13)
	require.NoError(t, err)
	assert.True(t, verdict.Passed)

	verdict, err = verify.Check(d.g, tree, 6.01, verify.WithTolerance(0.1))
	require.NoError(t, err)
	assert.True(t, verdict.Passed)
}

func TestCheck_Acyclic(t *testing.T) {
	d := buildDiamond(t)
	verdict, err := verify.Check(d.g, []core.Edge{d.e01, d.e12, d.e02}, 8)
	require.NoError(t, err)
	assert.Equal(t, verify.ConditionAcyclic, verdict.Failed)
	assert.Equal(t, d.e02, verdict.Edge)

	// The same edge twice is a cycle of length two.
	verdict, err = verify.Check(d.g, []core.Edge{d.e01, d.e01}, 2)
	require.NoError(t, err)
	assert.Equal(t, verify.ConditionAcyclic, verdict.Failed)
}

func TestCheck_Spanning(t *testing.T) {
	d := buildDiamond(t)
	verdict, err := verify.Check(d.g, []core.Edge{d.e01, d.e12}, 3)
	require.NoError(t, err)
	assert.Equal(t, verify.ConditionSpanning, verdict.Failed)
	assert.Equal(t, d.e03, verdict.Witness, "first uncovered edge in Edges() order")

	verdict, err = verify.Check(d.g, nil, 0)
	require.NoError(t, err)
	assert.Equal(t, verify.ConditionSpanning, verdict.Failed)
}

func TestCheck_CutOptimal(t *testing.T) {
	d := buildDiamond(t)
	// Spanning and acyclic, but 0—3 (4) is beaten by 2—3 (3) across its cut.
	verdict, err := verify.Check(d.g, []core.Edge{d.e01, d.e12, d.e03}, 7)
	require.NoError(t, err)
	assert.False(t, verdict.Passed)
	assert.Equal(t, verify.ConditionCutOptimal, verdict.Failed)
	assert.Equal(t, d.e03, verdict.Edge)
	assert.Equal(t, d.e23, verdict.Witness)
	assert.NotEmpty(t, verdict.Reason)
}

// TestCheck_Member rejects trees that use edges the graph does not have, even
// when they satisfy every cut condition.
func TestCheck_Member(t *testing.T) {
	g, err := core.NewGraph(3)
	require.NoError(t, err)
	e01, _ := g.Connect(0, 1, 5)
	e12, _ := g.Connect(1, 2, 5)

	shortcut, err := core.NewEdge(0, 2, 1)
	require.NoError(t, err)
	verdict, err := verify.Check(g, []core.Edge{e01, shortcut}, 6)
	require.NoError(t, err)
	assert.False(t, verdict.Passed)
	assert.Equal(t, verify.ConditionMember, verdict.Failed)
	assert.Equal(t, shortcut, verdict.Edge)
	assert.ErrorIs(t, verdict.Err(), verify.ErrNotMinimal)

	// Same endpoints, different weight.
	cheaper, err := core.NewEdge(0, 1, 4)
	require.NoError(t, err)
	verdict, err = verify.Check(g, []core.Edge{cheaper, e12}, 9)
	require.NoError(t, err)
	assert.Equal(t, verify.ConditionMember, verdict.Failed)
	assert.Equal(t, cheaper, verdict.Edge)

	// Endpoint order does not matter.
	reversed, err := core.NewEdge(1, 0, 5)
	require.NoError(t, err)
	verdict, err = verify.Check(g, []core.Edge{reversed, e12}, 10)
	require.NoError(t, err)
	assert.True(t, verdict.Passed, verdict.Reason)
}

func TestCheck_Forest(t *testing.T) {
	g, err := core.NewGraph(5)
	require.NoError(t, err)
	a, _ := g.Connect(0, 1, 1)
	b, _ := g.Connect(2, 3, 2)
	_, _ = g.Connect(2, 3, 2.5)

	verdict, err := verify.Check(g, []core.Edge{a, b}, 3)
	require.NoError(t, err)
	assert.True(t, verdict.Passed, verdict.Reason)
}

func TestCheck_TrivialGraphs(t *testing.T) {
	single, err := core.NewGraph(1)
	require.NoError(t, err)
	verdict, err := verify.Check(single, nil, 0)
	require.NoError(t, err)
	assert.True(t, verdict.Passed)

	empty, err := core.NewGraph(0)
	require.NoError(t, err)
	verdict, err = verify.Check(empty, nil, 0)
	require.NoError(t, err)
	assert.True(t, verdict.Passed)
}

func TestCheck_Errors(t *testing.T) {
	_, err := verify.Check(nil, nil, 0)
	assert.ErrorIs(t, err, verify.ErrNilGraph)

	d := buildDiamond(t)
	foreign, err := core.NewEdge(1, 7, 1)
	require.NoError(t, err)
	_, err = verify.Check(d.g, []core.Edge{d.e01, foreign}, 2)
	assert.ErrorIs(t, err, unionfind.ErrIndexOutOfRange)

	assert.Panics(t, func() { verify.WithTolerance(-1) })
}

func TestCheck_Idempotent(t *testing.T) {
	d := buildDiamond(t)
	for _, tree := range [][]core.Edge{
		{d.e01, d.e12, d.e23},
		{d.e01, d.e12, d.e03},
		{d.e01, d.e12},
	} {
		first, err := verify.Check(d.g, tree, 7)
		require.NoError(t, err)
		second, err := verify.Check(d.g, tree, 7)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	}
}

func TestCondition_String(t *testing.T) {
	assert.Equal(t, "weight", verify.ConditionWeight.String())
	assert.Equal(t, "cut-optimal", verify.ConditionCutOptimal.String())
	assert.Equal(t, "member", verify.ConditionMember.String())
	assert.Equal(t, "Condition(9)", verify.Condition(9).String())
}
