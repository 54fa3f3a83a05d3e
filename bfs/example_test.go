package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/mstlab/bfs"
	"github.com/katalvlaran/mstlab/core"
)

// ExampleBFS_gridTraversal demonstrates BFS layering on a 3×3 grid (9 vertices).
func ExampleBFS_gridTraversal() {
	g := core.NewGraph()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if j+1 < 3 {
				_, _ = g.AddEdge(fmt.Sprintf("%d_%d", i, j), fmt.Sprintf("%d_%d", i, j+1), 1)
			}
			if i+1 < 3 {
				_, _ = g.AddEdge(fmt.Sprintf("%d_%d", i, j), fmt.Sprintf("%d_%d", i+1, j), 1)
			}
		}
	}

	res, err := bfs.BFS(g, "0_0")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(res.Order)
	// Output:
	// [0_0 0_1 1_0 0_2 1_1 2_0 1_2 2_1 2_2]
}

// ExampleBFSResult_PathTo finds the fewest-hop route between two vertices.
func ExampleBFSResult_PathTo() {
	g := core.NewGraph()
	// Route1: A–B–C–D–K (4 hops); Route2: A–E–F–K (3 hops)
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", 1)
	_, _ = g.AddEdge("C", "D", 1)
	_, _ = g.AddEdge("D", "K", 1)
	_, _ = g.AddEdge("A", "E", 1)
	_, _ = g.AddEdge("E", "F", 1)
	_, _ = g.AddEdge("F", "K", 1)

	res, _ := bfs.BFS(g, "A")
	path, _ := res.PathTo("K")
	fmt.Println(path, res.Depth["K"])
	// Output: [A E F K] 3
}

// ExampleBFS_disconnected shows that only the start's component is visited.
func ExampleBFS_disconnected() {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 1)
	_ = g.AddVertex("C")

	res, _ := bfs.BFS(g, "C")
	fmt.Println(res.Order)
	// Output: [C]
}
