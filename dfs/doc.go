// Package dfs implements depth-first search traversal on a core.Graph.
//
// What:
//
//   - DFS (Depth-First Search): explores as far as possible along each
//     branch before backtracking. Supports:
//   - Pre-order (OnVisit) and post-order (OnExit) hooks
//   - Cancellation via context.Context
//   - Depth limiting (MaxDepth)
//   - Neighbor filtering (FilterNeighbor)
//   - Forest mode (FullTraversal) covering every component
//
// Why:
//   - Enumerate the connected component of a vertex in "deep first" order
//   - Compare traversal shapes against BFS on the same graph
//   - Provide parent/depth trees for path reconstruction
//
// Ordering:
//
//	Order is the pre-order visit sequence: a vertex is appended when first
//	discovered, then each of its neighbors (in core.Graph.NeighborIDs order)
//	is explored if not yet visited. The walk uses an explicit stack, so the
//	sequence is identical to the recursive formulation without its depth cap.
//	A 100 000-vertex chain is traversed with constant goroutine stack.
//
// Complexity:
//
//   - Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartVertexNotFound  start vertex ID not in graph (wraps core.ErrInvalidStart)
//   - context.Canceled        DFS canceled via context
//   - hook errors             propagated (wrapped) from OnVisit or OnExit
//
// Functions:
//
//   - DFS(g *core.Graph, startID string, opts ...Option) (*DFSResult, error)
//     perform depth-first traversal from startID (or over all vertices
//     with WithFullTraversal)
package dfs
