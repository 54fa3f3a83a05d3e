// Package prim_kruskal provides an implementation of Prim’s Minimum Spanning Tree (MST) algorithm.
// It assumes an undirected, weighted *core.Graph and grows the MST from a specified root vertex using a min‐heap.
package prim_kruskal

import (
	"container/heap"

	"github.com/katalvlaran/mstlab/core"
)

// Prim computes the Minimum Spanning Tree of the component containing root
// by growing outwards from root with a min‐heap frontier, and returns the
// sequence of growing edge sets. The first snapshot is always empty.
//
// Error Conditions:
//   - ErrInvalidGraph : if graph is nil.
//   - ErrInvalidStart : if the graph has no vertices or root is not a vertex
//     (an empty root is never a vertex).
//
// Steps:
//  1. Validate graph and root.
//  2. Emit the initial empty snapshot.
//  3. Mark root visited and push its incident edges, oriented root→v.
//  4. While the frontier is not empty:
//     a. Pop the minimum (weight, from, to) edge.
//     b. If its far endpoint is already visited, discard it (lazy deletion;
//     duplicates toward the same vertex are expected).
//     c. Otherwise mark it visited, append the edge, emit a snapshot copy and
//     push every edge from the new vertex to a still-unvisited neighbor.
//  5. Vertices unreachable from root are simply not spanned; no error.
//
// Tie-breaking: equal weights are ordered by From then To, lexicographically,
// so a fixed graph always yields the same sequence.
//
// Complexity: O(E log E) time, O(V + E) memory besides the O(V²) snapshots.
func Prim(graph *core.Graph, root string) (Steps, error) {
	// 1. Validate.
	if graph == nil {
		return nil, ErrInvalidGraph
	}
	if graph.VertexCount() == 0 || !graph.HasVertex(root) {
		return nil, ErrInvalidStart
	}

	// 2. Initial empty state.
	n := graph.VertexCount()
	steps := make(Steps, 0, n)
	steps = append(steps, Snapshot{})

	visited := make(map[string]bool, n)
	mst := make([]core.Edge, 0, n-1)
	pq := &edgePQ{}

	// 3. Seed from root.
	visited[root] = true
	if err := pushFrontier(graph, pq, root, visited); err != nil {
		return nil, err
	}

	// 4. Grow.
	for pq.Len() > 0 {
		e := heap.Pop(pq).(core.Edge)
		if visited[e.To] {
			continue
		}
		visited[e.To] = true
		mst = append(mst, e)
		steps = append(steps, cloneSnapshot(mst))

		if err := pushFrontier(graph, pq, e.To, visited); err != nil {
			return nil, err
		}
	}

	return steps, nil
}

// pushFrontier pushes every edge from id to an unvisited neighbor.
func pushFrontier(graph *core.Graph, pq *edgePQ, id string, visited map[string]bool) error {
	nbrs, err := graph.Neighbors(id)
	if err != nil {
		return err
	}
	for _, e := range nbrs {
		if !visited[e.To] {
			heap.Push(pq, e)
		}
	}

	return nil
}

// edgePQ implements heap.Interface for a min‐heap of core.Edge ordered by
// (Weight, From, To).
type edgePQ []core.Edge

// Len returns the number of edges in the priority queue.
func (pq edgePQ) Len() int { return len(pq) }

// Less orders by weight, then From, then To.
func (pq edgePQ) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.Weight != b.Weight {
		return a.Weight < b.Weight
	}
	if a.From != b.From {
		return a.From < b.From
	}

	return a.To < b.To
}

// Swap swaps elements at indices i and j.
func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends a new core.Edge to the heap. Called by heap.Push.
func (pq *edgePQ) Push(x interface{}) { *pq = append(*pq, x.(core.Edge)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *edgePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	edge := old[n-1]
	*pq = old[:n-1]

	return edge
}
