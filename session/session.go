// Package session is the boundary between the graph engine and its callers
// (CLI, REPL, HTTP). A Session owns one core.Graph, validates raw input,
// serializes every call with one exclusive lock and logs what it does.
package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/mstlab/bfs"
	"github.com/katalvlaran/mstlab/builder"
	"github.com/katalvlaran/mstlab/core"
	"github.com/katalvlaran/mstlab/dfs"
	"github.com/katalvlaran/mstlab/observability"
	"github.com/katalvlaran/mstlab/prim_kruskal"
	"github.com/katalvlaran/mstlab/render"
)

// Session owns one graph. All methods are safe for concurrent use; each call
// (including a whole algorithm run) holds the session lock until it returns.
type Session struct {
	mu       sync.Mutex
	id       string
	graph    *core.Graph
	limits   Limits
	log      *zap.Logger
	now      func() time.Time
	lastUsed time.Time
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger; nil keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Session) { s.log = observability.OrNop(l) }
}

// WithLimits sets the accepted weight range.
func WithLimits(l Limits) Option {
	return func(s *Session) { s.limits = l }
}

// WithID sets the session identifier used in logs.
func WithID(id string) Option {
	return func(s *Session) { s.id = id }
}

// WithClock overrides time.Now, for idle-expiry tests.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// New returns an empty session.
func New(opts ...Option) *Session {
	s := &Session{
		graph:  core.NewGraph(),
		limits: DefaultLimits(),
		log:    zap.NewNop(),
		now:    time.Now,
	}
	for _, fn := range opts {
		fn(s)
	}
	s.log = s.log.With(zap.String("session", s.id))
	s.lastUsed = s.now()

	return s
}

// ID returns the session identifier ("" for anonymous sessions).
func (s *Session) ID() string { return s.id }

// Limits returns the accepted weight range.
func (s *Session) Limits() Limits { return s.limits }

// LastUsed returns the time of the most recent call.
func (s *Session) LastUsed() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.lastUsed
}

// lock acquires the session and stamps its use time.
func (s *Session) lock() {
	s.mu.Lock()
	s.lastUsed = s.now()
}

// fail logs err at warn and returns it.
func (s *Session) fail(op string, err error, fields ...zap.Field) error {
	s.log.Warn(op+" failed", append(fields, zap.Error(err))...)

	return err
}

// AddNode adds a vertex. Re-adding an existing vertex is accepted silently.
func (s *Session) AddNode(raw string) error {
	s.lock()
	defer s.mu.Unlock()

	id, err := ParseNodeID(raw)
	if err != nil {
		return s.fail("add_node", err)
	}
	if err = s.graph.AddVertex(id); err != nil {
		return s.fail("add_node", err, zap.String("node", id))
	}
	s.log.Debug("add_node", zap.String("node", id))

	return nil
}

// AddEdge adds {from,to} or overwrites its weight. Missing endpoints are created.
func (s *Session) AddEdge(rawFrom, rawTo string, weight float64) (core.Edge, error) {
	s.lock()
	defer s.mu.Unlock()

	from, err := ParseNodeID(rawFrom)
	if err != nil {
		return core.Edge{}, s.fail("add_edge", err)
	}
	to, err := ParseNodeID(rawTo)
	if err != nil {
		return core.Edge{}, s.fail("add_edge", err)
	}
	if err = s.limits.Check(weight); err != nil {
		return core.Edge{}, s.fail("add_edge", err, zap.String("from", from), zap.String("to", to))
	}
	eid, err := s.graph.AddEdge(from, to, weight)
	if err != nil {
		return core.Edge{}, s.fail("add_edge", err, zap.String("from", from), zap.String("to", to))
	}
	e, err := s.graph.GetEdge(eid)
	if err != nil {
		return core.Edge{}, s.fail("add_edge", err)
	}
	s.log.Debug("add_edge", zap.String("edge", eid), zap.String("from", from),
		zap.String("to", to), zap.Float64("weight", weight))

	return e, nil
}

// AddEdgeText is AddEdge with the weight given as text.
func (s *Session) AddEdgeText(from, to, weight string) (core.Edge, error) {
	w, err := ParseWeight(weight)
	if err != nil {
		return core.Edge{}, s.fail("add_edge", err)
	}

	return s.AddEdge(from, to, w)
}

// RemoveNode deletes a vertex and its incident edges. An absent vertex is a no-op.
func (s *Session) RemoveNode(raw string) error {
	s.lock()
	defer s.mu.Unlock()

	id, err := ParseNodeID(raw)
	if err != nil {
		return s.fail("remove_node", err)
	}
	if err = s.graph.RemoveVertex(id); err != nil {
		return s.fail("remove_node", err, zap.String("node", id))
	}
	s.log.Debug("remove_node", zap.String("node", id))

	return nil
}

// RemoveEdge deletes the edge {from,to}; core.ErrEdgeNotFound if absent.
func (s *Session) RemoveEdge(rawFrom, rawTo string) error {
	s.lock()
	defer s.mu.Unlock()

	from, err := ParseNodeID(rawFrom)
	if err != nil {
		return s.fail("remove_edge", err)
	}
	to, err := ParseNodeID(rawTo)
	if err != nil {
		return s.fail("remove_edge", err)
	}
	e, ok := s.graph.EdgeBetween(from, to)
	if !ok {
		return s.fail("remove_edge", fmt.Errorf("%w: %s-%s", core.ErrEdgeNotFound, from, to))
	}
	if err = s.graph.RemoveEdge(e.ID); err != nil {
		return s.fail("remove_edge", err)
	}
	s.log.Debug("remove_edge", zap.String("edge", e.ID))

	return nil
}

// Neighbors lists the vertices adjacent to id; core.ErrVertexNotFound if absent.
func (s *Session) Neighbors(raw string) ([]string, error) {
	s.lock()
	defer s.mu.Unlock()

	id, err := ParseNodeID(raw)
	if err != nil {
		return nil, s.fail("neighbors", err)
	}
	ids, err := s.graph.NeighborIDs(id)
	if err != nil {
		return nil, s.fail("neighbors", fmt.Errorf("%w: %q", err, id))
	}

	return ids, nil
}

// Nodes returns the vertex set in insertion order.
func (s *Session) Nodes() []string {
	s.lock()
	defer s.mu.Unlock()

	return s.graph.Vertices()
}

// Edges returns all edges in insertion order.
func (s *Session) Edges() []core.Edge {
	s.lock()
	defer s.mu.Unlock()

	return s.graph.Edges()
}

// Stats returns vertex/edge counts and total weight.
func (s *Session) Stats() *core.GraphStats {
	s.lock()
	defer s.mu.Unlock()

	return s.graph.Stats()
}

// View captures the graph for rendering.
func (s *Session) View() render.View {
	s.lock()
	defer s.mu.Unlock()

	return render.FromGraph(s.graph)
}

// BFS returns the breadth-first visit order from start.
func (s *Session) BFS(ctx context.Context, rawStart string) ([]string, error) {
	s.lock()
	defer s.mu.Unlock()

	start, err := ParseNodeID(rawStart)
	if err != nil {
		return nil, s.fail("bfs", fmt.Errorf("%w: %w", core.ErrInvalidStart, err))
	}
	res, err := bfs.BFS(s.graph, start, bfs.WithContext(ctx))
	if err != nil {
		return nil, s.fail("bfs", err, zap.String("start", start))
	}
	s.log.Debug("bfs", zap.String("start", start), zap.Int("visited", len(res.Order)))

	return res.Order, nil
}

// DFS returns the depth-first (pre-order) visit order from start.
func (s *Session) DFS(ctx context.Context, rawStart string) ([]string, error) {
	s.lock()
	defer s.mu.Unlock()

	start, err := ParseNodeID(rawStart)
	if err != nil {
		return nil, s.fail("dfs", fmt.Errorf("%w: %w", core.ErrInvalidStart, err))
	}
	res, err := dfs.DFS(s.graph, start, dfs.WithContext(ctx))
	if err != nil {
		return nil, s.fail("dfs", err, zap.String("start", start))
	}
	s.log.Debug("dfs", zap.String("start", start), zap.Int("visited", len(res.Order)))

	return res.Order, nil
}

// Kruskal runs Kruskal's algorithm and returns its step sequence.
func (s *Session) Kruskal(ctx context.Context) (prim_kruskal.Steps, error) {
	s.lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	steps, err := prim_kruskal.Kruskal(s.graph)
	if err != nil {
		return nil, s.fail("kruskal", err)
	}
	s.log.Debug("kruskal", zap.Int("steps", steps.Len()),
		zap.Float64("total_weight", steps.Final().TotalWeight()))

	return steps, nil
}

// Prim runs Prim's algorithm from start and returns its step sequence.
// A blank start is rejected with core.ErrInvalidStart.
func (s *Session) Prim(ctx context.Context, rawStart string) (prim_kruskal.Steps, error) {
	s.lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start, err := ParseNodeID(rawStart)
	if err != nil {
		return nil, s.fail("prim", fmt.Errorf("%w: %w", prim_kruskal.ErrInvalidStart, err))
	}
	steps, err := prim_kruskal.Prim(s.graph, start)
	if err != nil {
		return nil, s.fail("prim", err, zap.String("start", start))
	}
	s.log.Debug("prim", zap.String("start", start), zap.Int("steps", steps.Len()),
		zap.Float64("total_weight", steps.Final().TotalWeight()))

	return steps, nil
}

// Components counts the connected components left when only snap's edges
// are kept over the current vertex set.
func (s *Session) Components(snap prim_kruskal.Snapshot) (int, error) {
	s.lock()
	defer s.mu.Unlock()

	return prim_kruskal.Forest(s.graph, snap)
}

// Reset removes every vertex and edge.
func (s *Session) Reset() {
	s.lock()
	defer s.mu.Unlock()

	s.graph.Clear()
	s.log.Debug("reset")
}

// Generate replaces the graph with one built from r. A recipe without a
// weight range draws integers from the session limits; every generated weight
// must still pass them. On error the current graph is kept.
func (s *Session) Generate(r builder.Recipe) (*core.GraphStats, error) {
	s.lock()
	defer s.mu.Unlock()

	if r.MinWeight == 0 && r.MaxWeight == 0 {
		r.MinWeight, r.MaxWeight = s.limits.intRange()
	}
	g, err := r.Build()
	if err != nil {
		return nil, s.fail("generate", err, zap.String("kind", r.Kind))
	}
	for _, e := range g.Edges() {
		if err = s.limits.Check(e.Weight); err != nil {
			return nil, s.fail("generate", err, zap.String("kind", r.Kind))
		}
	}

	s.graph = g
	stats := g.Stats()
	s.log.Info("generate", zap.String("kind", r.Kind), zap.Int64("seed", r.Seed),
		zap.Int("vertices", stats.VertexCount), zap.Int("edges", stats.EdgeCount))

	return stats, nil
}
