// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/Weight/GetEdge/Edges/EdgeCount.
//       Also: nextEdgeID().
// Determinism:
//   - Edges() returns edges in creation order; overwriting a weight keeps the position.
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under mu write lock, read queries under mu read lock.

package core

import (
	"math"
	"sort"
	"strconv"
)

// edgeIDPrefix is a private textual prefix for edge identifiers.
// Byte form allows append to a []byte buffer without fmt.
const edgeIDPrefix = 'e'

// AddEdge connects from and to with the given weight, or overwrites the
// weight of the existing edge between them.
//
// Steps:
//  1. Validate IDs (ErrEmptyVertexID), loop (ErrLoopNotAllowed), weight (ErrBadWeight).
//  2. Lock mu; create missing endpoints.
//  3. If {from,to} already exists: overwrite Weight, return the existing ID.
//  4. Otherwise generate an ID, store the record and mirror adjacency.
//
// The unordered pair is the identity: AddEdge("B","A",w) after AddEdge("A","B",v)
// updates the same edge and keeps its original From/To orientation.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight float64) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if from == to {
		return "", ErrLoopNotAllowed
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return "", ErrBadWeight
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(from)
	g.addVertexLocked(to)

	if eid, ok := g.adjacency[from][to]; ok {
		g.edges[eid].edge.Weight = weight
		return eid, nil
	}

	seq, eid := nextEdgeID(g)
	g.edges[eid] = &edgeRecord{
		edge: Edge{ID: eid, From: from, To: to, Weight: weight},
		seq:  seq,
	}
	g.adjacency[from][to] = eid
	g.adjacency[to][from] = eid

	return eid, nil
}

// RemoveEdge deletes one edge by ID, along with its mirror adjacency entry.
// Endpoints are kept.
//
// Errors:
//   - ErrEdgeNotFound: if no edge has this ID.
//
// Complexity: O(1).
func (g *Graph) RemoveEdge(eid string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	rec, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	delete(g.adjacency[rec.edge.From], rec.edge.To)
	delete(g.adjacency[rec.edge.To], rec.edge.From)
	delete(g.edges, eid)

	return nil
}

// HasEdge reports whether an edge connects from and to (in either orientation).
// Unknown vertices yield false.
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[from][to]

	return ok
}

// Weight returns the weight of the edge {from,to} and whether it exists.
func (g *Graph) Weight(from, to string) (float64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	eid, ok := g.adjacency[from][to]
	if !ok {
		return 0, false
	}

	return g.edges[eid].edge.Weight, true
}

// EdgeBetween returns a copy of the edge {from,to} in its stored orientation.
func (g *Graph) EdgeBetween(from, to string) (Edge, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	eid, ok := g.adjacency[from][to]
	if !ok {
		return Edge{}, false
	}

	return g.edges[eid].edge, true
}

// GetEdge returns a copy of the edge with the given ID.
//
// Errors:
//   - ErrEdgeNotFound: if no edge has this ID.
func (g *Graph) GetEdge(eid string) (Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	rec, ok := g.edges[eid]
	if !ok {
		return Edge{}, ErrEdgeNotFound
	}

	return rec.edge, nil
}

// Edges returns copies of all edges in creation order.
//
// Returns:
//   - []Edge: freshly allocated values; mutating them never affects the Graph.
//
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	recs := make([]*edgeRecord, 0, len(g.edges))
	for _, rec := range g.edges {
		recs = append(recs, rec)
	}
	sort.Slice(recs, func(i, j int) bool { return recs[i].seq < recs[j].seq })

	out := make([]Edge, len(recs))
	for i, rec := range recs {
		out[i] = rec.edge
	}

	return out
}

// EdgeCount returns |E|.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// nextEdgeID advances the edge counter and returns the new sequence with its
// textual ID ("e1", "e2", ...). Caller holds g.mu for writing.
func nextEdgeID(g *Graph) (uint64, string) {
	g.nextEdgeID++
	var buf [21]byte // 'e' + up to 20 decimal digits of uint64
	b := buf[:0]
	b = append(b, edgeIDPrefix)
	b = strconv.AppendUint(b, g.nextEdgeID, 10)

	return g.nextEdgeID, string(b)
}
