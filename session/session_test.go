package session_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/mstlab/builder"
	"github.com/katalvlaran/mstlab/core"
	"github.com/katalvlaran/mstlab/session"
)

// SessionSuite exercises the engine boundary on a fresh triangle per test.
type SessionSuite struct {
	suite.Suite
	s    *session.Session
	logs *observer.ObservedLogs
	ctx  context.Context
}

func (ts *SessionSuite) SetupTest() {
	zc, logs := observer.New(zap.DebugLevel)
	ts.logs = logs
	ts.ctx = context.Background()
	ts.s = session.New(session.WithLogger(zap.New(zc)), session.WithID("test"))

	for _, e := range []struct {
		u, v string
		w    float64
	}{{"A", "B", 1}, {"B", "C", 2}, {"A", "C", 3}} {
		_, err := ts.s.AddEdge(e.u, e.v, e.w)
		ts.Require().NoError(err)
	}
}

func (ts *SessionSuite) TestNodesAndEdges() {
	ts.Equal([]string{"A", "B", "C"}, ts.s.Nodes())
	ts.Len(ts.s.Edges(), 3)
	ts.Equal(6.0, ts.s.Stats().TotalWeight)
}

func (ts *SessionSuite) TestAddNodeTrimsAndIgnoresDuplicates() {
	ts.Require().NoError(ts.s.AddNode("  D "))
	ts.Require().NoError(ts.s.AddNode("D"))
	ts.Equal([]string{"A", "B", "C", "D"}, ts.s.Nodes())

	err := ts.s.AddNode("   ")
	ts.ErrorIs(err, session.ErrInvalidNodeID)
	ts.ErrorIs(err, core.ErrEmptyVertexID)
}

func (ts *SessionSuite) TestAddEdgeValidation() {
	_, err := ts.s.AddEdge("A", "A", 5)
	ts.ErrorIs(err, core.ErrLoopNotAllowed)

	_, err = ts.s.AddEdge("A", "D", 0)
	ts.ErrorIs(err, session.ErrWeightOutOfRange)
	_, err = ts.s.AddEdge("A", "D", 101)
	ts.ErrorIs(err, session.ErrWeightOutOfRange)
	ts.Equal(3, ts.s.Stats().VertexCount, "rejected edges create no vertices")

	_, err = ts.s.AddEdgeText("A", "D", "heavy")
	ts.ErrorIs(err, session.ErrInvalidWeight)

	e, err := ts.s.AddEdgeText("A", "D", " 7 ")
	ts.Require().NoError(err)
	ts.Equal(core.Edge{ID: "e4", From: "A", To: "D", Weight: 7}, e)
}

func (ts *SessionSuite) TestAddEdgeOverwritesWeight() {
	e, err := ts.s.AddEdge("C", "A", 9)
	ts.Require().NoError(err)
	ts.Equal("e3", e.ID)
	ts.Equal(9.0, e.Weight)
	ts.Len(ts.s.Edges(), 3)
}

func (ts *SessionSuite) TestRemoveNode() {
	ts.Require().NoError(ts.s.RemoveNode("B"))
	ts.Equal([]string{"A", "C"}, ts.s.Nodes())
	ts.Len(ts.s.Edges(), 1)

	ts.NoError(ts.s.RemoveNode("ghost"), "absent node is a no-op")
}

func (ts *SessionSuite) TestRemoveEdge() {
	ts.Require().NoError(ts.s.RemoveEdge("C", "B"))
	ts.Len(ts.s.Edges(), 2)
	ts.ErrorIs(ts.s.RemoveEdge("B", "C"), core.ErrEdgeNotFound)
}

func (ts *SessionSuite) TestNeighbors() {
	ids, err := ts.s.Neighbors("A")
	ts.Require().NoError(err)
	ts.Equal([]string{"B", "C"}, ids)

	_, err = ts.s.Neighbors("Z")
	ts.ErrorIs(err, core.ErrVertexNotFound)
}

func (ts *SessionSuite) TestTraversals() {
	order, err := ts.s.BFS(ts.ctx, "A")
	ts.Require().NoError(err)
	ts.Equal([]string{"A", "B", "C"}, order)

	order, err = ts.s.DFS(ts.ctx, "C")
	ts.Require().NoError(err)
	ts.Equal([]string{"C", "B", "A"}, order)

	for _, start := range []string{"Z", ""} {
		_, err = ts.s.BFS(ts.ctx, start)
		ts.ErrorIs(err, core.ErrInvalidStart, "bfs %q", start)
		_, err = ts.s.DFS(ts.ctx, start)
		ts.ErrorIs(err, core.ErrInvalidStart, "dfs %q", start)
	}
}

func (ts *SessionSuite) TestMST() {
	ks, err := ts.s.Kruskal(ts.ctx)
	ts.Require().NoError(err)
	ts.Equal(2, ks.Len())
	ts.Equal(3.0, ks.Final().TotalWeight())

	ps, err := ts.s.Prim(ts.ctx, "A")
	ts.Require().NoError(err)
	ts.Equal(3, ps.Len())
	ts.Empty(ps[0])

	n, err := ts.s.Components(ps.Final())
	ts.Require().NoError(err)
	ts.Equal(1, n)
	n, err = ts.s.Components(nil)
	ts.Require().NoError(err)
	ts.Equal(3, n)

	_, err = ts.s.Prim(ts.ctx, " ")
	ts.ErrorIs(err, core.ErrInvalidStart)
	_, err = ts.s.Prim(ts.ctx, "Q")
	ts.ErrorIs(err, core.ErrInvalidStart)
}

func (ts *SessionSuite) TestCancelledContext() {
	ctx, cancel := context.WithCancel(ts.ctx)
	cancel()

	_, err := ts.s.Kruskal(ctx)
	ts.ErrorIs(err, context.Canceled)
	_, err = ts.s.BFS(ctx, "A")
	ts.ErrorIs(err, context.Canceled)
}

func (ts *SessionSuite) TestResetAndView() {
	v := ts.s.View()
	ts.Len(v.Nodes, 3)
	ts.Len(v.Edges, 3)

	ts.s.Reset()
	ts.Empty(ts.s.Nodes())

	_, err := ts.s.Prim(ts.ctx, "A")
	ts.ErrorIs(err, core.ErrInvalidStart, "empty graph")
}

func (ts *SessionSuite) TestLogging() {
	_, _ = ts.s.Neighbors("nope")

	warns := ts.logs.FilterLevelExact(zap.WarnLevel).All()
	ts.Require().Len(warns, 1)
	ts.Equal("neighbors failed", warns[0].Message)
	ts.Equal("test", warns[0].ContextMap()["session"])

	ts.Equal(3, ts.logs.FilterMessage("add_edge").Len())
}

func (ts *SessionSuite) TestGenerate() {
	stats, err := ts.s.Generate(builder.Recipe{Kind: "cycle", N: 5, Seed: 4})
	ts.Require().NoError(err)
	ts.Equal(5, stats.VertexCount)
	ts.Equal(5, stats.EdgeCount)
	ts.Equal([]string{"A", "B", "C", "D", "E"}, ts.s.Nodes())
	for _, e := range ts.s.Edges() {
		ts.NoError(ts.s.Limits().Check(e.Weight))
	}
	ts.Equal(1, ts.logs.FilterMessage("generate").Len())

	steps, err := ts.s.Kruskal(ts.ctx)
	ts.Require().NoError(err)
	ts.Len(steps.Final(), 4)
}

func (ts *SessionSuite) TestGenerateKeepsGraphOnError() {
	_, err := ts.s.Generate(builder.Recipe{Kind: "cycle", N: 2})
	ts.ErrorIs(err, builder.ErrTooFewVertices)

	_, err = ts.s.Generate(builder.Recipe{Kind: "path", N: 3, MinWeight: 500, MaxWeight: 600})
	ts.ErrorIs(err, session.ErrWeightOutOfRange)

	ts.Equal([]string{"A", "B", "C"}, ts.s.Nodes())
}

func TestSessionSuite(t *testing.T) {
	suite.Run(t, new(SessionSuite))
}

func TestSession_ConcurrentCommands(t *testing.T) {
	s := session.New(session.WithLogger(zaptest.NewLogger(t, zaptest.Level(zap.InfoLevel))))
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_, _ = s.AddEdge(string(rune('a'+i)), string(rune('a'+(i+j)%8+8)), float64(1+j%10))
				_, _ = s.Kruskal(ctx)
				_, _ = s.BFS(ctx, "a")
			}
		}(i)
	}
	wg.Wait()

	steps, err := s.Kruskal(ctx)
	require.NoError(t, err)
	assert.Len(t, steps.Final(), len(s.Nodes())-1)
}

func TestValidate(t *testing.T) {
	id, err := session.ParseNodeID("\tX\n")
	require.NoError(t, err)
	assert.Equal(t, "X", id)

	w, err := session.ParseWeight("2.5")
	require.NoError(t, err)
	assert.Equal(t, 2.5, w)

	for _, bad := range []any{nil, true, "", "abc", "NaN", "Inf"} {
		_, err = session.CoerceWeight(bad)
		assert.ErrorIs(t, err, session.ErrInvalidWeight, "%v", bad)
		assert.ErrorIs(t, err, core.ErrBadWeight)
	}
	for in, want := range map[any]float64{3: 3, int64(4): 4, 2.5: 2.5, "7": 7, uint8(9): 9} {
		got, err := session.CoerceWeight(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	l := session.Limits{Min: 0, Max: 0}
	require.NoError(t, l.Check(1e9))
	require.True(t, errors.Is(l.Check(-1), session.ErrWeightOutOfRange))
}
