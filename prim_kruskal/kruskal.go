// Package prim_kruskal provides an implementation of Kruskal’s Minimum Spanning Tree algorithm.
// It assumes an undirected, weighted *core.Graph and produces the replayable
// sequence of growing edge sets.
package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/mstlab/core"
	"github.com/katalvlaran/mstlab/unionfind"
)

// Kruskal computes the Minimum Spanning Tree (or forest) of an undirected,
// weighted graph and returns one Snapshot per accepted edge.
//
// Error Conditions:
//   - ErrInvalidGraph : if graph is nil.
//
// Steps:
//  1. Validate graph != nil.
//  2. Collect graph.Edges() (creation order) and stable-sort by ascending
//     weight, so equal weights keep their insertion order.
//  3. Seed a unionfind.Set with every vertex as a singleton.
//  4. For each edge (u,v): if Union(u,v) merges two components, append the
//     edge and emit a fresh copy of the accumulated list as a Snapshot.
//     Otherwise the edge closes a cycle and emits nothing.
//  5. Stop early once |V|-1 edges are accepted; any further edge would
//     close a cycle, so the output is unchanged.
//
// A disconnected graph yields a spanning forest with fewer than |V|-1 edges;
// this is not an error. An empty or edgeless graph yields empty Steps.
//
// Complexity: O(E log E + α(V)·E) time, O(E + V²) memory including the snapshots.
func Kruskal(graph *core.Graph) (Steps, error) {
	// 1. Validate.
	if graph == nil {
		return nil, ErrInvalidGraph
	}

	// 2. Snapshot the store once; the run works on copies.
	vertices := graph.Vertices()
	edges := graph.Edges()
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	// 3. Disjoint sets over all vertices.
	set := unionfind.New(vertices...)

	// 4. Greedy selection.
	var (
		mst   = make([]core.Edge, 0, max(len(vertices)-1, 0))
		steps = make(Steps, 0, max(len(vertices)-1, 0))
	)
	for _, e := range edges {
		if !set.Union(e.From, e.To) {
			continue
		}
		mst = append(mst, e)
		steps = append(steps, cloneSnapshot(mst))

		// 5. Tree complete.
		if len(mst) == len(vertices)-1 {
			break
		}
	}

	return steps, nil
}

// cloneSnapshot copies the accumulator so earlier snapshots never alias later growth.
func cloneSnapshot(acc []core.Edge) Snapshot {
	out := make(Snapshot, len(acc))
	copy(out, acc)

	return out
}
