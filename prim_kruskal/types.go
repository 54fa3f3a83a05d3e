// Package prim_kruskal defines step types, configuration options and sentinel
// errors for MST computation. It supports selecting between Kruskal and Prim
// algorithms via MSTOptions.
package prim_kruskal

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/mstlab/core"
	"github.com/katalvlaran/mstlab/unionfind"
)

// ErrInvalidGraph indicates that MST algorithms were handed a nil graph.
var ErrInvalidGraph = errors.New("prim_kruskal: graph is nil")

// ErrInvalidStart indicates that Prim was given an empty graph or a start
// vertex absent from the graph. It wraps core.ErrInvalidStart.
var ErrInvalidStart = fmt.Errorf("prim_kruskal: start vertex not in graph: %w", core.ErrInvalidStart)

// ErrUnknownMethod indicates an MST method name other than MethodPrim or MethodKruskal.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown method")

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// Snapshot is one immutable point-in-time state of an MST run: the edges
// selected so far, in selection order. Each snapshot owns its backing array.
type Snapshot []core.Edge

// TotalWeight returns the sum of the snapshot's edge weights.
func (s Snapshot) TotalWeight() float64 {
	var total float64
	for _, e := range s {
		total += e.Weight
	}

	return total
}

// Contains reports whether the snapshot holds the undirected edge {u,v}.
func (s Snapshot) Contains(u, v string) bool {
	for _, e := range s {
		if (e.From == u && e.To == v) || (e.From == v && e.To == u) {
			return true
		}
	}

	return false
}

// String renders the snapshot as "[A-B(1) B-C(2)]".
func (s Snapshot) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, e := range s {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%s-%s(%g)", e.From, e.To, e.Weight)
	}
	b.WriteByte(']')

	return b.String()
}

// Steps is the replayable sequence of snapshots produced by one MST run.
// Each snapshot extends the previous by exactly one edge.
type Steps []Snapshot

// Len returns the number of snapshots.
func (st Steps) Len() int { return len(st) }

// Final returns the last snapshot (the complete MST or spanning forest),
// or an empty snapshot when there are no steps.
func (st Steps) Final() Snapshot {
	if len(st) == 0 {
		return Snapshot{}
	}

	return st[len(st)-1]
}

// MSTOptions configures which MST algorithm to run, and for Prim, which starting vertex to use.
// Use DefaultOptions() to get a default setup (Kruskal).
//
// Fields:
//
//	Method string: one of MethodPrim or MethodKruskal.
//	Root   string: start vertex ID for Prim; ignored when Method == MethodKruskal.
//
// Complexity: O(E log E) for Prim (lazy frontier), O(E log E + α(V)·E) for Kruskal.
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the starting vertex for Prim's algorithm. Unused by Kruskal.
	Root string
}

// Option configures MSTOptions. All Option functions should modify the pointed MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
// Allowed values: MethodPrim, MethodKruskal.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the starting vertex for Prim's algorithm; ignored by Kruskal.
func WithRoot(root string) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// DefaultOptions returns MSTOptions initialized for Kruskal by default:
//
//	– Method = MethodKruskal
//	– Root   = "" (ignored by Kruskal).
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method: MethodKruskal,
		Root:   "",
	}
}

// NewOptions applies opts over DefaultOptions.
func NewOptions(opts ...Option) MSTOptions {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

// ParseMethod normalizes a user-supplied method name (case-insensitive,
// surrounding space ignored). Unknown names yield ErrUnknownMethod.
func ParseMethod(s string) (string, error) {
	switch m := strings.ToLower(strings.TrimSpace(s)); m {
	case MethodKruskal, MethodPrim:
		return m, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMethod, s)
	}
}

// Compute selects and runs the MST algorithm based on opts.Method.
//
//	– If opts.Method == MethodKruskal: calls Kruskal(graph).
//	– If opts.Method == MethodPrim:    calls Prim(graph, opts.Root).
//	– Otherwise:                        returns ErrUnknownMethod.
func Compute(graph *core.Graph, opts MSTOptions) (Steps, error) {
	switch opts.Method {
	case MethodKruskal:
		return Kruskal(graph)
	case MethodPrim:
		return Prim(graph, opts.Root)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, opts.Method)
	}
}

// Forest reports how many connected components remain when only the edges
// of snap are kept over the vertex set of graph. A spanning tree of a
// connected graph yields 1; a spanning forest yields one per component.
// An empty graph yields 0.
func Forest(graph *core.Graph, snap Snapshot) (int, error) {
	if graph == nil {
		return 0, ErrInvalidGraph
	}
	set := unionfind.New(graph.Vertices()...)
	for _, e := range snap {
		set.Union(e.From, e.To)
	}

	return set.Count(), nil
}
