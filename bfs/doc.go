// Package bfs provides breadth-first search over a core.Graph,
// returning hop distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Returns a BFSResult containing:
//   - Order: visit sequence (each reachable vertex exactly once)
//   - Depth: map from vertex → distance (edges) from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - Supports functional hooks at three stages:
//   - OnEnqueue (each push, duplicates included)
//   - OnDequeue (each pop, stale duplicates included)
//   - OnVisit   (first pop of a vertex; may abort with an error)
//   - Allows filtering of individual neighbor edges via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Queue policy
//
//	A dequeued vertex that was already visited is skipped. A vertex may sit in
//	the queue several times before its first visit; it is visited at its
//	earliest position, so Depth is still the minimum hop count.
//
// Determinism
//
//	core.Graph.NeighborIDs returns neighbors in creation order of the incident
//	edges, and BFS enqueues them in that order, so the visit sequence is fully
//	reproducible for a fixed mutation history.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E log Δ)  (neighbor lists are ordered per visit)
//   - Memory: O(V + E)        (queue may hold one entry per edge endpoint)
//
// Usage
//
//	result, err := bfs.BFS(g, "start")
//	if err != nil {
//	    // ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation, ErrNeighbors,
//	    // context errors or hook errors
//	}
//
//	result, err := bfs.BFS(
//	    g, "start",
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(3),
//	    bfs.WithOnVisit(func(id string, depth int) error { return nil }),
//	)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist (wraps core.ErrInvalidStart).
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - ErrNeighbors            if core.NeighborIDs fails for any vertex.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
