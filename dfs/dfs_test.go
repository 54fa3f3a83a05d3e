package dfs_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mstlab/core"
	"github.com/katalvlaran/mstlab/dfs"
)

// diamond builds A–B, A–C, B–D, C–D in that insertion order.
func diamond(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range [][2]string{{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "D"}} {
		_, err := g.AddEdge(e[0], e[1], 1)
		require.NoError(t, err)
	}

	return g
}

// TestDFS_Errors verifies nil graph and missing start handling.
func TestDFS_Errors(t *testing.T) {
	_, err := dfs.DFS(nil, "A")
	require.ErrorIs(t, err, dfs.ErrGraphNil)

	g := core.NewGraph()
	_, err = dfs.DFS(g, "A")
	require.ErrorIs(t, err, dfs.ErrStartVertexNotFound)
	require.ErrorIs(t, err, core.ErrInvalidStart)

	// Full traversal ignores startID.
	res, err := dfs.DFS(g, "", dfs.WithFullTraversal())
	require.NoError(t, err)
	assert.Empty(t, res.Order)
}

// TestDFS_PreOrder checks the recursive pre-order sequence and the trees.
func TestDFS_PreOrder(t *testing.T) {
	g := diamond(t)

	res, err := dfs.DFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D", "C"}, res.Order)
	assert.Equal(t, []string{"C", "D", "B", "A"}, res.Finish)
	assert.Equal(t, map[string]int{"A": 0, "B": 1, "D": 2, "C": 3}, res.Depth)
	assert.Equal(t, map[string]string{"B": "A", "D": "B", "C": "D"}, res.Parent)
	assert.Len(t, res.Visited, 4)
}

// TestDFS_TriangleOrder follows neighbor insertion order on the triangle.
func TestDFS_TriangleOrder(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", 2)
	_, _ = g.AddEdge("A", "C", 3)

	res, err := dfs.DFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, res.Order)

	res, err = dfs.DFS(g, "C")
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "B", "A"}, res.Order)
}

// TestDFS_Disconnected ensures a single-source run stays in its component
// and that full traversal builds a forest.
func TestDFS_Disconnected(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("C", "D", 1)
	require.NoError(t, g.AddVertex("E"))

	res, err := dfs.DFS(g, "C")
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "D"}, res.Order)

	res, err = dfs.DFS(g, "", dfs.WithFullTraversal())
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, res.Order)
	assert.Equal(t, 0, res.Depth["C"])
	assert.Equal(t, 0, res.Depth["E"])
	_, hasParent := res.Parent["C"]
	assert.False(t, hasParent, "roots have no parent")
}

// TestDFS_Isolated returns just the start vertex.
func TestDFS_Isolated(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("X"))

	res, err := dfs.DFS(g, "X")
	require.NoError(t, err)
	assert.Equal(t, []string{"X"}, res.Order)
	assert.Equal(t, []string{"X"}, res.Finish)
}

// TestDFS_MaxDepth limits the descent.
func TestDFS_MaxDepth(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", 1)
	_, _ = g.AddEdge("C", "D", 1)

	res, err := dfs.DFS(g, "A", dfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, res.Order)

	res, err = dfs.DFS(g, "A", dfs.WithMaxDepth(0))
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, res.Order)
}

// TestDFS_FilterNeighbor skips filtered vertices and counts them.
func TestDFS_FilterNeighbor(t *testing.T) {
	g := diamond(t)

	res, err := dfs.DFS(g, "A", dfs.WithFilterNeighbor(func(id string) bool { return id != "D" }))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, res.Order)
	assert.Equal(t, 2, res.SkippedNeighbors, "D is skipped from B and from C")
}

// TestDFS_Hooks verifies hook ordering and error propagation.
func TestDFS_Hooks(t *testing.T) {
	g := diamond(t)

	var events []string
	_, err := dfs.DFS(g, "A",
		dfs.WithOnVisit(func(id string) error { events = append(events, "+"+id); return nil }),
		dfs.WithOnExit(func(id string) error { events = append(events, "-"+id); return nil }),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"+A", "+B", "+D", "+C", "-C", "-D", "-B", "-A"}, events)

	boom := errors.New("boom")
	res, err := dfs.DFS(g, "A", dfs.WithOnVisit(func(id string) error {
		if id == "D" {
			return boom
		}
		return nil
	}))
	require.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"A", "B", "D"}, res.Order, "partial result is returned")

	_, err = dfs.DFS(g, "A", dfs.WithOnExit(func(string) error { return boom }))
	require.ErrorIs(t, err, boom)
}

// TestDFS_Cancel aborts on a cancelled context.
func TestDFS_Cancel(t *testing.T) {
	g := diamond(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := dfs.DFS(g, "A", dfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

// TestDFS_DeepChain walks a long path without exhausting the stack.
func TestDFS_DeepChain(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping deep chain in -short mode")
	}
	const n = 100000
	g := core.NewGraph()
	for i := 0; i < n-1; i++ {
		_, err := g.AddEdge(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", i+1), 1)
		require.NoError(t, err)
	}

	res, err := dfs.DFS(g, "v0")
	require.NoError(t, err)
	require.Len(t, res.Order, n)
	assert.Equal(t, "v99999", res.Order[n-1])
	assert.Equal(t, n-1, res.Depth["v99999"])
	assert.Equal(t, "v99999", res.Finish[0])
}

// TestDFS_Reproducible checks repeated runs produce identical output.
func TestDFS_Reproducible(t *testing.T) {
	g := diamond(t)
	first, err := dfs.DFS(g, "D")
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := dfs.DFS(g, "D")
		require.NoError(t, err)
		require.Equal(t, first.Order, again.Order)
	}
}
