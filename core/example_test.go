// SPDX-License-Identifier: MIT

package core_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/mstkit/core"
)

// ExampleGraph_Connect builds a square with one diagonal and lists its edges.
//
//	0───1
//	│ ╲ │
//	3───2
func ExampleGraph_Connect() {
	g, _ := core.NewGraph(4)
	_, _ = g.Connect(0, 1, 1)
	_, _ = g.Connect(1, 2, 2)
	_, _ = g.Connect(2, 3, 3)
	_, _ = g.Connect(3, 0, 4)
	_, _ = g.Connect(0, 2, 5)

	fmt.Println(g.V(), g.E())
	for _, e := range g.Edges() {
		fmt.Println(e)
	}
	// Output:
	// 4 5
	// 0-1 1.00000
	// 3-0 4.00000
	// 0-2 5.00000
	// 1-2 2.00000
	// 2-3 3.00000
}

// ExampleReadGraph parses the edge-list format and writes it back.
func ExampleReadGraph() {
	g, err := core.ReadGraph(strings.NewReader("3\n2\n0 1 0.5\n1 2 0.25\n"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	_, _ = g.WriteTo(os.Stdout)
	// Output:
	// 3
	// 2
	// 0 1 0.5
	// 1 2 0.25
}
