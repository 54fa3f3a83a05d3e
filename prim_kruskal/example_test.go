package prim_kruskal_test

import (
	"fmt"

	"github.com/katalvlaran/mstlab/core"
	"github.com/katalvlaran/mstlab/prim_kruskal"
)

// ExampleKruskal_triangle demonstrates Kruskal’s algorithm on a triangle graph.
// Each step adds one edge; the final MST is {A–B, B–C} with total weight 3.
func ExampleKruskal_triangle() {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", 2)
	_, _ = g.AddEdge("A", "C", 4)

	steps, err := prim_kruskal.Kruskal(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for i, s := range steps {
		fmt.Printf("step %d: %v\n", i+1, s)
	}
	fmt.Printf("Total: %g\n", steps.Final().TotalWeight())
	// Output:
	// step 1: [A-B(1)]
	// step 2: [A-B(1) B-C(2)]
	// Total: 3
}

// ExamplePrim_pentagon demonstrates Prim’s algorithm on a simple 5‐vertex pentagon graph.
// Vertices: A, B, C, D, E. Edges: A–B (1), B–C (2), C–D (3), D–E (5), A–E (12)
// The MST in this graph is edges {A–B, B–C, C-D, D-E} with total weight = 11.
func ExamplePrim_pentagon() {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("A", "E", 12)
	_, _ = g.AddEdge("B", "C", 2)
	_, _ = g.AddEdge("C", "D", 3)
	_, _ = g.AddEdge("D", "E", 5)

	steps, err := prim_kruskal.Prim(g, "A")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("steps:", steps.Len())
	fmt.Println("first:", steps[0])
	fmt.Println("final:", steps.Final())
	fmt.Printf("Total: %g\n", steps.Final().TotalWeight())
	// Output:
	// steps: 5
	// first: []
	// final: [A-B(1) B-C(2) C-D(3) D-E(5)]
	// Total: 11
}

// ExampleForest shows a disconnected graph producing a spanning forest.
func ExampleForest() {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("X", "Y", 2)

	steps, _ := prim_kruskal.Kruskal(g)
	n, _ := prim_kruskal.Forest(g, steps.Final())
	fmt.Println(steps.Final(), "components:", n)
	// Output: [A-B(1) X-Y(2)] components: 2
}

// ExampleCompute selects the algorithm by name.
func ExampleCompute() {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", 2)

	method, _ := prim_kruskal.ParseMethod("Prim")
	steps, _ := prim_kruskal.Compute(g, prim_kruskal.NewOptions(
		prim_kruskal.WithMethod(method),
		prim_kruskal.WithRoot("C"),
	))
	fmt.Println(steps.Final())
	// Output: [C-B(2) B-A(1)]
}
