// SPDX-License-Identifier: MIT

package prim_kruskal_test

import (
	"testing"

	"github.com/katalvlaran/mstkit/prim_kruskal"
)

// benchmarkMethod measures one method on a random graph with 500 vertices and 2000 edges.
func benchmarkMethod(b *testing.B, method string) {
	g := buildRandomGraph(b, 500, 2000, 42) // pre-build graph once
	b.ResetTimer()                          // exclude graph construction
	for i := 0; i < b.N; i++ {
		_, _ = prim_kruskal.Compute(g, prim_kruskal.WithMethod(method))
	}
}

func BenchmarkLazyPrim(b *testing.B) { benchmarkMethod(b, prim_kruskal.MethodLazyPrim) }

func BenchmarkPrim(b *testing.B) { benchmarkMethod(b, prim_kruskal.MethodPrim) }

func BenchmarkKruskal(b *testing.B) { benchmarkMethod(b, prim_kruskal.MethodKruskal) }
