// Package core provides the mutable, thread-safe Graph Store behind every
// algorithm in mstlab: a simple undirected graph with one real-valued weight
// per unordered vertex pair.
//
// The Graph G = (V,E) follows a deliberately narrow policy:
//
//   - Undirected only: an edge {u,v} is mirrored in adjacency[u][v] and adjacency[v][u].
//   - One edge per unordered pair: AddEdge on an existing pair overwrites the weight
//     (last write wins) and keeps the edge ID, orientation and iteration position.
//   - No self-loops: AddEdge(v, v, w) → ErrLoopNotAllowed.
//   - Implicit vertices: AddEdge creates missing endpoints.
//   - Cascading removal: RemoveVertex drops every incident edge.
//   - Weights are float64 and must be totally ordered (NaN and ±Inf → ErrBadWeight).
//     The store does not impose a floor; range policy belongs to the caller.
//
// Determinism:
//
//	Vertices() iterates in vertex insertion order, Edges() in edge creation
//	order, and Neighbors()/NeighborIDs() in creation order of the incident
//	edges. Algorithms built on top of the store are therefore reproducible for
//	a fixed sequence of mutations.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error            // O(1)
//	HasVertex(id string) bool             // O(1)
//	RemoveVertex(id string) error         // O(deg(v))
//	Vertices() []string                   // O(V log V)
//
//	// Edge lifecycle
//	AddEdge(from, to string, weight float64) (edgeID string, err error) // O(1)
//	RemoveEdge(edgeID string) error       // O(1)
//	HasEdge(from, to string) bool         // O(1)
//	Weight(from, to string) (float64, bool)
//	Edges() []Edge                        // O(E log E)
//
//	// Neighborhood
//	Neighbors(id string) ([]Edge, error)  // incident edges oriented From == id
//	NeighborIDs(id string) ([]string, error)
//
// Concurrency:
//
//	A single sync.RWMutex guards vertices, edges and adjacency. Every exported
//	method is safe for concurrent use; queries return freshly allocated slices
//	of Edge values, so callers never alias internal state.
//
// Errors:
//
//	ErrEmptyVertexID, ErrVertexNotFound, ErrEdgeNotFound, ErrBadWeight,
//	ErrLoopNotAllowed, ErrInvalidStart.
package core
