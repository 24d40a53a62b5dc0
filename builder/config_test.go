// SPDX-License-Identifier: MIT

// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption) to ensure correct application and override behavior.
package builder

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/mstkit/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig()
	assert.Nil(t, cfg.rng)
	assert.Equal(t, 0, cfg.offset)
	assert.Equal(t, DefaultEdgeWeight, cfg.weight())
}

// TestRNGOptions verifies that RNG options configure the rng field correctly,
// including reproducibility with WithSeed and last-wins ordering.
func TestRNGOptions(t *testing.T) {
	t.Parallel()

	a := newBuilderConfig(WithSeed(42))
	b := newBuilderConfig(WithSeed(42))
	require.NotNil(t, a.rng)
	assert.Equal(t, a.rng.Int63(), b.rng.Int63(), "same seed, same stream")

	r := rand.New(rand.NewSource(1))
	c := newBuilderConfig(WithSeed(42), WithRand(r))
	assert.Same(t, r, c.rng, "later option wins")

	assert.Panics(t, func() { WithRand(nil) })
}

func TestWeightOptions(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig(WithConstantWeight(3), WithConstantWeight(4))
	assert.Equal(t, 4.0, cfg.weight())

	assert.Panics(t, func() { WithWeightFn(nil) })
}

// TestShift_Nests checks that offsets accumulate and only apply to the wrapped call.
func TestShift_Nests(t *testing.T) {
	t.Parallel()

	var seen []int
	probe := func(_ *core.Graph, cfg builderConfig) error {
		seen = append(seen, cfg.offset)
		return nil
	}
	g, err := core.NewGraph(1)
	require.NoError(t, err)

	cfg := newBuilderConfig()
	require.NoError(t, apply(g, cfg, []Constructor{Shift(2, Shift(3, probe)), probe}))
	assert.Equal(t, []int{5, 0}, seen)
}
