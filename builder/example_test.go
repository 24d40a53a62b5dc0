// SPDX-License-Identifier: MIT

package builder_test

import (
	"fmt"

	"github.com/katalvlaran/mstkit/builder"
	"github.com/katalvlaran/mstkit/prim_kruskal"
)

// ExampleBuildGraph lays a path and a cycle side by side and computes the
// spanning forest of the resulting two-component graph.
func ExampleBuildGraph() {
	g, err := builder.BuildGraph(7, nil, nil,
		builder.Path(3),                    // 0—1—2
		builder.Shift(3, builder.Cycle(4)), // 3—4—5—6—3
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("V=%d E=%d\n", g.V(), g.E())

	mst, _ := prim_kruskal.Kruskal(g)
	fmt.Printf("forest: %d edges, weight %g, %d trees\n", mst.Len(), mst.Weight, mst.Trees())
	// Output:
	// V=7 E=6
	// forest: 5 edges, weight 5, 2 trees
}

// ExampleGrid prints the edges of a 2×2 grid in emission order.
func ExampleGrid() {
	g, _ := builder.BuildGraph(4, nil, []builder.BuilderOption{builder.WithConstantWeight(0.5)},
		builder.Grid(2, 2))
	for _, e := range g.Edges() {
		fmt.Println(e)
	}
	// Output:
	// 0-1 0.50000
	// 0-2 0.50000
	// 1-3 0.50000
	// 2-3 0.50000
}
