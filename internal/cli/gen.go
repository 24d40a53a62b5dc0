// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/katalvlaran/mstkit/builder"
	"github.com/katalvlaran/mstkit/core"
	"github.com/spf13/cobra"
)

// ErrUnknownTopology is returned by "gen" for a topology name it does not know.
var ErrUnknownTopology = errors.New("cli: unknown topology")

// genParams carries the "gen" flags.
type genParams struct {
	n, cols int
	p       float64
}

// topology maps a parameter set to the vertex count and constructor.
type topology func(genParams) (int, builder.Constructor)

var topologies = map[string]topology{
	"path":      func(p genParams) (int, builder.Constructor) { return p.n, builder.Path(p.n) },
	"cycle":     func(p genParams) (int, builder.Constructor) { return p.n, builder.Cycle(p.n) },
	"star":      func(p genParams) (int, builder.Constructor) { return p.n, builder.Star(p.n) },
	"wheel":     func(p genParams) (int, builder.Constructor) { return p.n + 1, builder.Wheel(p.n) },
	"complete":  func(p genParams) (int, builder.Constructor) { return p.n, builder.Complete(p.n) },
	"bipartite": func(p genParams) (int, builder.Constructor) { return p.n + p.cols, builder.CompleteBipartite(p.n, p.cols) },
	"grid":      func(p genParams) (int, builder.Constructor) { return p.n * p.cols, builder.Grid(p.n, p.cols) },
	"random":    func(p genParams) (int, builder.Constructor) { return p.n, builder.RandomSparse(p.n, p.p) },
}

func topologyNames() []string {
	names := make([]string, 0, len(topologies))
	for k := range topologies {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// NewGenCommand returns the "gen" command, which writes a generated graph in
// the edge-list format read by "mst".
func NewGenCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen <topology>",
		Short: "Generate a weighted graph (" + strings.Join(topologyNames(), ", ") + ")",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			topo, ok := topologies[args[0]]
			if !ok {
				return fmt.Errorf("%q: %w", args[0], ErrUnknownTopology)
			}

			var p genParams
			p.n, _ = cmd.Flags().GetInt("nodes")
			p.cols, _ = cmd.Flags().GetInt("cols")
			p.p, _ = cmd.Flags().GetFloat64("prob")
			seed, _ := cmd.Flags().GetInt64("seed")
			weight, _ := cmd.Flags().GetFloat64("weight")
			maxWeight, _ := cmd.Flags().GetFloat64("max-weight")

			for _, w := range []float64{weight, maxWeight} {
				if math.IsNaN(w) || math.IsInf(w, 0) {
					return fmt.Errorf("weight %g: %w", w, core.ErrBadWeight)
				}
			}

			bopts := []builder.BuilderOption{builder.WithSeed(seed)}
			if cmd.Flags().Changed("max-weight") {
				if !(maxWeight >= weight) {
					return fmt.Errorf("max-weight %g < weight %g", maxWeight, weight)
				}
				bopts = append(bopts, builder.WithUniformWeight(weight, maxWeight))
			} else {
				bopts = append(bopts, builder.WithConstantWeight(weight))
			}

			v, ctor := topo(p)
			if v < 0 {
				v = 0
			}
			g, err := builder.BuildGraph(v, nil, bopts, ctor)
			if err != nil {
				return err
			}
			_, err = g.WriteTo(cmd.OutOrStdout())

			return err
		},
	}

	cmd.Flags().IntP("nodes", "n", 4, "vertex count (rows for grid, left side for bipartite, rim for wheel)")
	cmd.Flags().Int("cols", 4, "columns for grid, right side for bipartite")
	cmd.Flags().Float64P("prob", "p", 0.5, "edge probability for random")
	cmd.Flags().Int64("seed", 1, "random seed")
	cmd.Flags().Float64P("weight", "w", builder.DefaultEdgeWeight, "edge weight, or lower bound with --max-weight")
	cmd.Flags().Float64("max-weight", 0, "upper bound for uniform random weights")

	return cmd
}
