// Package prim_kruskal provides two algorithms for computing the Minimum Spanning Tree (MST)
// on an undirected, weighted *core.Graph: Prim’s algorithm and Kruskal’s algorithm.
// Both return the full replayable sequence of intermediate states, not only the answer.
//
// What & Why
//
//   - What is an MST?
//     Given an undirected, connected, weighted graph G = (V, E), an MST is a subset T ⊆ E such that
//     T connects all vertices in V and the sum of weights of edges in T is minimized.
//     On a disconnected graph the same greedy rules produce a minimum spanning forest.
//
//   - Why steps?
//     Each Snapshot is the edge set selected so far. Replaying Steps one by one
//     shows how the tree grows, which is what the renderers and the CLI display.
//
// Algorithms Provided
//
//   - Kruskal(g *core.Graph) (Steps, error)
//     Sort all edges by weight (stable, so ties keep insertion order), then
//     accept every edge whose endpoints lie in different unionfind components.
//     One snapshot per accepted edge. Disconnected input → spanning forest.
//
//   - Prim(g *core.Graph, root string) (Steps, error)
//     Grow one tree from root with a lazy min-heap frontier ordered by
//     (weight, from, to). The first snapshot is the empty edge set, then one
//     snapshot per accepted edge. Only root's component is spanned.
//
//   - Compute(g, MSTOptions) dispatches by method; ParseMethod validates names.
//
//   - Forest(g, snapshot) counts the components a snapshot leaves.
//
// Snapshot Ownership
//
//	Every Snapshot owns its backing array. Appending to, or mutating, one
//	snapshot never changes another, and the engine never touches a snapshot
//	after returning it.
//
// Error Conditions
//
//   - ErrInvalidGraph     graph is nil.
//   - ErrInvalidStart     (Prim) empty graph, or root not in graph; wraps core.ErrInvalidStart.
//   - ErrUnknownMethod    (Compute, ParseMethod) method is not "kruskal" or "prim".
//
// Complexity
//
//   - Kruskal: O(E log E + α(V)·E) time.
//   - Prim:    O(E log E) time (each edge may enter the heap twice).
//   - Both keep up to |V|-1 snapshots of up to |V|-1 edges: O(V²) output.
package prim_kruskal
