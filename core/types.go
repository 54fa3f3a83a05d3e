// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Vertex/Edge/Graph declarations, sentinel errors and the NewGraph constructor.
// Concurrency:
//   - mu guards every field below it; see doc.go for the locking model.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a weight that is not totally ordered (NaN or ±Inf).
	ErrBadWeight = errors.New("core: weight must be a finite number")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrInvalidStart is the common cause wrapped by traversal and MST packages
	// when a start vertex is missing or the graph is empty.
	ErrInvalidStart = errors.New("core: invalid start vertex")
)

// Edge is an immutable value describing one undirected, weighted connection.
//
// From/To record the orientation of the first AddEdge call for the pair;
// Neighbors re-orients copies so that From is the queried vertex.
type Edge struct {
	// ID is the stable identifier assigned at creation ("e1", "e2", ...).
	ID string `json:"id"`

	// From is one endpoint.
	From string `json:"from"`

	// To is the other endpoint.
	To string `json:"to"`

	// Weight is the cost of the edge.
	Weight float64 `json:"weight"`
}

// Other returns the endpoint of e opposite to id.
// If id is not an endpoint, Other returns e.To.
func (e Edge) Other(id string) string {
	if e.To == id {
		return e.From
	}

	return e.To
}

// edgeRecord pairs a stored Edge with its creation sequence.
type edgeRecord struct {
	edge Edge
	seq  uint64
}

// Graph is the in-memory Graph Store.
//
// vertices maps a vertex ID to its insertion sequence; edges maps an edge ID to
// its record; adjacency[u][v] holds the ID of the edge {u,v} and is mirrored.
type Graph struct {
	mu sync.RWMutex // guards everything below

	nextVertexSeq uint64
	nextEdgeID    uint64

	vertices  map[string]uint64
	edges     map[string]*edgeRecord
	adjacency map[string]map[string]string
}

// GraphStats is a read-only summary returned by Stats.
type GraphStats struct {
	VertexCount int     `json:"vertex_count"`
	EdgeCount   int     `json:"edge_count"`
	TotalWeight float64 `json:"total_weight"`
}

// NewGraph creates an empty undirected, weighted Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		vertices:  make(map[string]uint64),
		edges:     make(map[string]*edgeRecord),
		adjacency: make(map[string]map[string]string),
	}
}
