// SPDX-License-Identifier: MIT

package core_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/katalvlaran/mstkit/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tinyEWG is the classic 8-vertex, 16-edge sample graph.
const tinyEWG = `8
16
4 5 0.35
4 7 0.37
5 7 0.28
0 7 0.16
1 5 0.32
0 4 0.38
2 3 0.17
1 7 0.19
0 2 0.26
1 2 0.36
1 3 0.29
2 7 0.34
6 2 0.40
3 6 0.52
6 0 0.58
6 4 0.93
`

func TestReadGraph_Tiny(t *testing.T) {
	g, err := core.ReadGraph(strings.NewReader(tinyEWG))
	require.NoError(t, err)
	assert.Equal(t, 8, g.V())
	assert.Equal(t, 16, g.E())

	adj, err := g.Adj(6)
	require.NoError(t, err)
	require.Len(t, adj, 4)
	assert.Equal(t, "6-2 0.40000", adj[0].String())
}

func TestReadGraph_Errors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  error
	}{
		{"empty", "", core.ErrMalformedInput},
		{"bad vertex count", "x\n0\n", core.ErrMalformedInput},
		{"negative vertex count", "-2\n0\n", core.ErrMalformedInput},
		{"negative edge count", "2\n-1\n", core.ErrMalformedInput},
		{"missing edge", "2\n2\n0 1 0.5\n", core.ErrMalformedInput},
		{"bad weight", "2\n1\n0 1 heavy\n", core.ErrMalformedInput},
		{"vertex out of range", "2\n1\n0 2 0.5\n", core.ErrVertexOutOfRange},
		{"non-finite weight", "2\n1\n0 1 NaN\n", core.ErrBadWeight},
		{"loop", "2\n1\n1 1 0.5\n", core.ErrLoopNotAllowed},
		{"vertex count too large", "9223372036854775807\n0\n", core.ErrVertexCountTooLarge},
		{"vertex count too large is malformed", "2147483648\n0\n", core.ErrMalformedInput},
		{"trailing edge", "2\n1\n0 1 0.5\n1 0 0.25\n", core.ErrMalformedInput},
		{"trailing token", "2\n0\nx", core.ErrMalformedInput},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := core.ReadGraph(strings.NewReader(tc.input))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestNewGraph_MaxVertices(t *testing.T) {
	n := core.MaxVertices
	_, err := core.NewGraph(n + 1)
	assert.ErrorIs(t, err, core.ErrVertexCountTooLarge)
	assert.NotErrorIs(t, err, core.ErrMalformedInput)
}

func TestReadGraph_WithLoops(t *testing.T) {
	g, err := core.ReadGraph(strings.NewReader("2 1 1 1 0.5"), core.WithLoops())
	require.NoError(t, err)
	assert.Equal(t, 1, g.E())
}

func TestWriteTo_RoundTrip(t *testing.T) {
	g, err := core.ReadGraph(strings.NewReader(tinyEWG))
	require.NoError(t, err)

	var buf bytes.Buffer
	n, err := g.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)

	back, err := core.ReadGraph(&buf)
	require.NoError(t, err)
	assert.Equal(t, g.V(), back.V())
	assert.Equal(t, g.E(), back.E())
	assert.ElementsMatch(t, g.Edges(), back.Edges())
}
