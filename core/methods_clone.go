// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Determinism:
//   - Clone carries over insertion sequences and the edge counter, so iteration
//     order and future edge IDs on the clone match the source.
// Concurrency:
//   - Clone holds the source read lock; Clear holds the write lock.

package core

// Clone returns a deep copy of the Graph: vertices, edges, adjacency and counters.
//
// The clone is fully independent: mutating either graph never affects the other.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := NewGraph()
	clone.nextVertexSeq = g.nextVertexSeq
	clone.nextEdgeID = g.nextEdgeID

	for id, seq := range g.vertices {
		clone.vertices[id] = seq
		bucket := make(map[string]string, len(g.adjacency[id]))
		for nbr, eid := range g.adjacency[id] {
			bucket[nbr] = eid
		}
		clone.adjacency[id] = bucket
	}
	for eid, rec := range g.edges {
		clone.edges[eid] = &edgeRecord{edge: rec.edge, seq: rec.seq}
	}

	return clone
}

// Clear removes every vertex and edge and resets the counters.
// Complexity: O(1) (old maps are released to the GC).
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.nextVertexSeq = 0
	g.nextEdgeID = 0
	g.vertices = make(map[string]uint64)
	g.edges = make(map[string]*edgeRecord)
	g.adjacency = make(map[string]map[string]string)
}
