// Package core_test provides benchmarks for core.Graph operations.
package core_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/mstlab/core"
)

// BenchmarkAddEdge measures adding fresh edges around a single hub.
func BenchmarkAddEdge(b *testing.B) {
	g := core.NewGraph()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.AddEdge("Root", fmt.Sprintf("N%d", i), float64(i))
	}
}

// BenchmarkAddEdge_Overwrite measures the last-write-wins path on one pair.
func BenchmarkAddEdge_Overwrite(b *testing.B) {
	g := core.NewGraph()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.AddEdge("A", "B", float64(i))
	}
}

// BenchmarkNeighbors measures ordered neighbor retrieval on a 1000-degree hub.
func BenchmarkNeighbors(b *testing.B) {
	g := core.NewGraph()
	for i := 0; i < 1000; i++ {
		_, _ = g.AddEdge("Hub", fmt.Sprintf("N%d", i), 1)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.Neighbors("Hub")
	}
}

// BenchmarkClone measures deep copy cost for a 1000-vertex path.
func BenchmarkClone(b *testing.B) {
	g := core.NewGraph()
	for i := 1; i < 1000; i++ {
		_, _ = g.AddEdge(fmt.Sprintf("N%d", i-1), fmt.Sprintf("N%d", i), float64(i))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Clone()
	}
}
