// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin read-only facade: aggregate statistics for diagnostics and rendering.
// Policy:
//   - No algorithms or hidden state here.

package core

// Stats produces a read-only snapshot of catalog sizes and the total edge weight.
//
// Implementation:
//   - Stage 1: Acquire the read lock.
//   - Stage 2: Count vertices and edges; sum weights in one pass over the edge catalog.
//
// Returns:
//   - *GraphStats: immutable-by-convention snapshot.
//
// Determinism:
//   - Counts are exact; TotalWeight is summed in map order, so the last bits of a
//     float sum may differ between runs for non-integral weights.
//
// Complexity:
//   - Time O(E), Space O(1).
func (g *Graph) Stats() *GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		VertexCount: len(g.vertices),
		EdgeCount:   len(g.edges),
	}
	for _, rec := range g.edges {
		stats.TotalWeight += rec.edge.Weight
	}

	return &stats
}
