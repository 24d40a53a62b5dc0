// SPDX-License-Identifier: MIT
// Package core_test locks in Edge construction rules and endpoint queries.

package core_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/mstkit/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewEdge_Validation rejects negative endpoints and non-finite weights.
func TestNewEdge_Validation(t *testing.T) {
	cases := []struct {
		name   string
		v, w   int
		weight float64
		want   error
	}{
		{"negative v", -1, 2, 1, core.ErrVertexOutOfRange},
		{"negative w", 0, -3, 1, core.ErrVertexOutOfRange},
		{"NaN", 0, 1, math.NaN(), core.ErrBadWeight},
		{"+Inf", 0, 1, math.Inf(1), core.ErrBadWeight},
		{"-Inf", 0, 1, math.Inf(-1), core.ErrBadWeight},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := core.NewEdge(tc.v, tc.w, tc.weight)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	// Negative but finite weights are legal for MST computation.
	e, err := core.NewEdge(3, 4, -2.5)
	require.NoError(t, err)
	assert.Equal(t, -2.5, e.Weight())
}

// TestEdge_EitherOther checks endpoint symmetry and the non-incident error.
func TestEdge_EitherOther(t *testing.T) {
	e, err := core.NewEdge(4, 7, 0.37)
	require.NoError(t, err)

	v := e.Either()
	assert.Equal(t, 4, v)

	w, err := e.Other(v)
	require.NoError(t, err)
	assert.Equal(t, 7, w)

	back, err := e.Other(w)
	require.NoError(t, err)
	assert.Equal(t, v, back)

	_, err = e.Other(5)
	assert.ErrorIs(t, err, core.ErrNotIncident)

	loop, err := core.NewEdge(2, 2, 1)
	require.NoError(t, err)
	assert.True(t, loop.IsLoop())
	self, err := loop.Other(2)
	require.NoError(t, err)
	assert.Equal(t, 2, self)
}

// TestEdge_CompareAndString checks weight ordering and the textual form.
func TestEdge_CompareAndString(t *testing.T) {
	light, _ := core.NewEdge(0, 1, 0.5)
	heavy, _ := core.NewEdge(1, 2, 1.25)
	same, _ := core.NewEdge(5, 6, 0.5)

	assert.Equal(t, -1, light.Compare(heavy))
	assert.Equal(t, 1, heavy.Compare(light))
	assert.Equal(t, 0, light.Compare(same))

	assert.Equal(t, "0-1 0.50000", light.String())
	assert.Equal(t, "1-2 1.25000", heavy.String())
}
