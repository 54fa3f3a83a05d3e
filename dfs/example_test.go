package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/mstlab/core"
	"github.com/katalvlaran/mstlab/dfs"
)

// ExampleDFS demonstrates pre-order and post-order on a small diamond.
//
//	A ── B
//	│    │
//	C ── D
func ExampleDFS() {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("A", "C", 1)
	_, _ = g.AddEdge("B", "D", 1)
	_, _ = g.AddEdge("C", "D", 1)

	res, _ := dfs.DFS(g, "A")
	fmt.Println(res.Order)
	fmt.Println(res.Finish)
	// Output:
	// [A B D C]
	// [C D B A]
}

// ExampleWithFullTraversal covers every component of a disconnected graph.
func ExampleWithFullTraversal() {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("X", "Y", 1)

	res, _ := dfs.DFS(g, "", dfs.WithFullTraversal())
	fmt.Println(res.Order)
	// Output: [A B X Y]
}
