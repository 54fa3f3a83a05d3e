package dfs_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/mstlab/core"
	"github.com/katalvlaran/mstlab/dfs"
)

// BenchmarkDFS_Chain measures DFS on a linear chain graph of size N.
func BenchmarkDFS_Chain(b *testing.B) {
	const N = 10000
	g := core.NewGraph()
	for i := 0; i < N; i++ {
		_, _ = g.AddEdge(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", i+1), 1)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.DFS(g, "v0")
	}
}

// BenchmarkDFS_Grid measures DFS on a 50×50 grid.
func BenchmarkDFS_Grid(b *testing.B) {
	const side = 50
	g := core.NewGraph()
	for r := 0; r < side; r++ {
		for c := 0; c < side; c++ {
			id := fmt.Sprintf("%d_%d", r, c)
			if c+1 < side {
				_, _ = g.AddEdge(id, fmt.Sprintf("%d_%d", r, c+1), 1)
			}
			if r+1 < side {
				_, _ = g.AddEdge(id, fmt.Sprintf("%d_%d", r+1, c), 1)
			}
		}
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.DFS(g, "0_0", dfs.WithFullTraversal())
	}
}
