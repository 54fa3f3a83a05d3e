// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborIDs, AdjacencyList).
// Determinism:
//   - Neighbors()/NeighborIDs() follow creation order of the incident edges.
//   - AdjacencyList() slices follow the same order.
// Concurrency:
//   - Read operations hold the mu read lock.

package core

import "sort"

// Neighbors returns every edge incident to id, each copy oriented so that
// From == id and To is the adjacent vertex.
//
// Implementation:
//   - Stage 1: Validate id (ErrEmptyVertexID).
//   - Stage 2: Under the read lock, validate presence (ErrVertexNotFound).
//   - Stage 3: Collect incident edge records and sort them by creation sequence.
//   - Stage 4: Emit re-oriented copies.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity:
//   - Time O(d log d), Space O(d), where d = deg(id).
func (g *Graph) Neighbors(id string) ([]Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.neighborsLocked(id)
}

// neighborsLocked implements Neighbors. Caller holds g.mu.
func (g *Graph) neighborsLocked(id string) ([]Edge, error) {
	bucket, ok := g.adjacency[id]
	if !ok {
		return nil, ErrVertexNotFound
	}

	recs := make([]*edgeRecord, 0, len(bucket))
	for _, eid := range bucket {
		recs = append(recs, g.edges[eid])
	}
	sort.Slice(recs, func(i, j int) bool { return recs[i].seq < recs[j].seq })

	out := make([]Edge, len(recs))
	var e Edge
	for i, rec := range recs {
		e = rec.edge
		if e.From != id {
			e.From, e.To = e.To, e.From
		}
		out[i] = e
	}

	return out, nil
}

// NeighborIDs returns the vertices adjacent to id, in the same order as Neighbors.
//
// Errors:
//   - Propagates ErrEmptyVertexID / ErrVertexNotFound from Neighbors.
//
// Complexity: O(d log d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(edges))
	for i, e := range edges {
		ids[i] = e.To
	}

	return ids, nil
}

// AdjacencyList returns a snapshot mapping each vertex to its ordered neighbor IDs.
// Isolated vertices map to an empty, non-nil slice.
//
// Map key iteration order is not deterministic in Go; use Vertices() for a
// stable key order.
//
// Complexity: O(V + E log E).
func (g *Graph) AdjacencyList() map[string][]string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[string][]string, len(g.vertices))
	for id := range g.vertices {
		edges, _ := g.neighborsLocked(id) // id comes from the catalog, cannot fail
		nbrs := make([]string, len(edges))
		for i, e := range edges {
			nbrs[i] = e.To
		}
		out[id] = nbrs
	}

	return out
}
