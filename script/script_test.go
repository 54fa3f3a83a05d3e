package script_test

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/katalvlaran/mstlab/core"
	"github.com/katalvlaran/mstlab/prim_kruskal"
	"github.com/katalvlaran/mstlab/script"
	"github.com/katalvlaran/mstlab/session"
)

// triangleCommands is what every testdata/triangle.* file decodes to.
var triangleCommands = []script.Command{
	{Op: script.OpAddEdge, From: "A", To: "B", Weight: 1},
	{Op: script.OpAddEdge, From: "B", To: "C", Weight: 2},
	{Op: script.OpAddEdge, From: "A", To: "C", Weight: 3},
	{Op: script.OpKruskal},
	{Op: script.OpPrim, Start: "A"},
	{Op: script.OpBFS, Start: "A"},
	{Op: script.OpDFS, Start: "C"},
}

// stripSource drops positions so decoded commands compare by content.
func stripSource(cmds []script.Command) []script.Command {
	out := make([]script.Command, len(cmds))
	for i, c := range cmds {
		c.Source = ""
		out[i] = c
	}

	return out
}

func TestLoad_AllFormatsAgree(t *testing.T) {
	for _, name := range []string{"triangle.yaml", "triangle.hcl", "triangle.mst"} {
		t.Run(name, func(t *testing.T) {
			cmds, err := script.Load(filepath.Join("testdata", name))
			require.NoError(t, err)
			assert.Equal(t, triangleCommands, stripSource(cmds))
			assert.True(t, strings.HasPrefix(cmds[0].Source, name+":"), cmds[0].Source)
		})
	}
}

func TestLoad_SourcePositions(t *testing.T) {
	cmds, err := script.Load(filepath.Join("testdata", "triangle.hcl"))
	require.NoError(t, err)
	assert.Equal(t, "triangle.hcl:2", cmds[0].Source)
	assert.Equal(t, "triangle.hcl:20", cmds[3].Source)

	cmds, err = script.Load(filepath.Join("testdata", "triangle.mst"))
	require.NoError(t, err)
	assert.Equal(t, "triangle.mst:6", cmds[3].Source)

	cmds, err = script.Load(filepath.Join("testdata", "triangle.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "triangle.yaml:3", cmds[0].Source)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := script.Load(filepath.Join("testdata", "nope.yaml"))
	require.Error(t, err)
}

func TestParseLine(t *testing.T) {
	cases := []struct {
		in   string
		want *script.Command
	}{
		{"", nil},
		{"   # comment", nil},
		{"node A", &script.Command{Op: script.OpAddNode, Node: "A"}},
		{"ADD_EDGE a b 2.5", &script.Command{Op: script.OpAddEdge, From: "a", To: "b", Weight: 2.5}},
		{"rm A", &script.Command{Op: script.OpRemoveNode, Node: "A"}},
		{"unlink A B", &script.Command{Op: script.OpRemoveEdge, From: "A", To: "B"}},
		{"nbrs A", &script.Command{Op: script.OpNeighbors, Node: "A"}},
		{"bfs A", &script.Command{Op: script.OpBFS, Start: "A"}},
		{"dfs A", &script.Command{Op: script.OpDFS, Start: "A"}},
		{"prim A", &script.Command{Op: script.OpPrim, Start: "A"}},
		{"mst", &script.Command{Op: script.OpKruskal}},
		{"show DOT", &script.Command{Op: script.OpShow, Format: "dot"}},
		{"show", &script.Command{Op: script.OpShow}},
		{"clear", &script.Command{Op: script.OpReset}},
	}
	for _, tc := range cases {
		got, err := script.ParseLine(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestParseLine_Errors(t *testing.T) {
	_, err := script.ParseLine("teleport A")
	require.ErrorIs(t, err, script.ErrUnknownOp)

	for _, in := range []string{"edge A B", "bfs", "kruskal now", "show dot extra", "node"} {
		_, err = script.ParseLine(in)
		require.ErrorIs(t, err, script.ErrSyntax, in)
	}

	_, err = script.ParseLine("edge A B heavy")
	require.ErrorIs(t, err, session.ErrInvalidWeight)
}

func TestCommand_StringRoundTrip(t *testing.T) {
	for _, c := range triangleCommands {
		back, err := script.ParseLine(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, *back)
	}
}

func TestLoadYAML_Errors(t *testing.T) {
	cases := map[string]struct {
		doc  string
		want error
	}{
		"unknown op":     {"commands:\n  - op: fly\n", script.ErrUnknownOp},
		"missing weight": {"commands:\n  - op: add_edge\n    from: A\n    to: B\n", script.ErrMissingField},
		"missing start":  {"commands:\n  - op: prim\n", script.ErrMissingField},
		"bad weight":     {"commands:\n  - op: add_edge\n    from: A\n    to: B\n    weight: lots\n", core.ErrBadWeight},
		"unknown field":  {"commands:\n  - op: bfs\n    begin: A\n", script.ErrSyntax},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := script.LoadYAML("x.yaml", strings.NewReader(tc.doc))
			require.ErrorIs(t, err, tc.want)
		})
	}

	cmds, err := script.LoadYAML("empty.yaml", strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, cmds)
}

func TestLoadHCL_Errors(t *testing.T) {
	cases := map[string]struct {
		doc  string
		want error
	}{
		"syntax":         {`command "bfs" {`, script.ErrSyntax},
		"unknown block":  {`step "bfs" {}`, script.ErrSyntax},
		"unknown op":     {`command "fly" {}`, script.ErrUnknownOp},
		"missing weight": {"command \"add_edge\" {\n  from = \"A\"\n  to = \"B\"\n}\n", script.ErrMissingField},
		"bad weight":     {"command \"add_edge\" {\n  from = \"A\"\n  to = \"B\"\n  weight = \"lots\"\n}\n", session.ErrInvalidWeight},
		"missing node":   {`command "neighbors" {}`, script.ErrMissingField},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := script.LoadHCL("x.hcl", []byte(tc.doc))
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestRun_Triangle(t *testing.T) {
	sess := session.New()
	outs, err := script.Run(context.Background(), sess, triangleCommands, script.WithLogger(zaptest.NewLogger(t)))
	require.NoError(t, err)
	require.Len(t, outs, len(triangleCommands))
	for _, o := range outs {
		require.NoError(t, o.Err, o.Command.String())
	}

	assert.Equal(t, "e1", outs[0].Edge.ID)
	assert.Equal(t, 2, outs[3].Steps.Len())
	assert.Equal(t, 3, outs[4].Steps.Len())
	assert.Equal(t, []string{"A", "B", "C"}, outs[5].Order)
	assert.Equal(t, []string{"C", "B", "A"}, outs[6].Order)

	var buf bytes.Buffer
	script.Report(&buf, outs, true)
	assert.Equal(t, `kruskal step 1: [A-B(1)]
kruskal step 2: [A-B(1) B-C(2)]
kruskal: [A-B(1) B-C(2)] total=3
prim step 1: []
prim step 2: [A-B(1)]
prim step 3: [A-B(1) B-C(2)]
prim: [A-B(1) B-C(2)] total=3
BFS from A: A B C
DFS from C: C B A
`, buf.String())
}

func TestRun_ContinueAndStop(t *testing.T) {
	cmds := []script.Command{
		{Op: script.OpAddNode, Node: "A"},
		{Op: script.OpBFS, Start: "Z"},
		{Op: script.OpAddEdge, From: "A", To: "B", Weight: 1},
	}

	outs, err := script.Run(context.Background(), session.New(), cmds)
	require.NoError(t, err)
	require.Len(t, outs, 3)
	require.ErrorIs(t, outs[1].Err, core.ErrInvalidStart)
	require.NoError(t, outs[2].Err)

	outs, err = script.Run(context.Background(), session.New(), cmds, script.WithStopOnError())
	require.ErrorIs(t, err, core.ErrInvalidStart)
	assert.Len(t, outs, 2)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	outs, err = script.Run(ctx, session.New(), cmds)
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, outs)
}

func TestRun_ShowHighlightsLastMST(t *testing.T) {
	cmds := append(append([]script.Command{}, triangleCommands[:4]...),
		script.Command{Op: script.OpShow},
		script.Command{Op: script.OpShow, Format: "dot"},
		script.Command{Op: script.OpShow, Format: "svg"},
	)
	outs, err := script.Run(context.Background(), session.New(), cmds)
	require.NoError(t, err)

	assert.Equal(t, "nodes: A B C\n* A-B 1\n* B-C 2\n  A-C 3\n", outs[4].Output)
	assert.Contains(t, outs[5].Output, `"A" -- "B" [label="1", color=red, penwidth=3];`)
	assert.Contains(t, outs[5].Output, `"A" -- "C" [label="3", color=gray];`)
	assert.Error(t, outs[6].Err)
}

func TestExec_CarriesHighlight(t *testing.T) {
	ctx := context.Background()
	sess := session.New()
	hl := new(prim_kruskal.Snapshot)
	for _, c := range triangleCommands[:3] {
		require.NoError(t, script.Exec(ctx, sess, c, hl).Err)
	}
	o := script.Exec(ctx, sess, script.Command{Op: script.OpPrim, Start: "C"}, hl)
	require.NoError(t, o.Err)
	assert.Len(t, *hl, 2)

	o = script.Exec(ctx, sess, script.Command{Op: script.OpReset}, hl)
	require.NoError(t, o.Err)
	assert.Empty(t, *hl)
}

func TestUsage(t *testing.T) {
	u := script.Usage()
	assert.Contains(t, u, "add_edge     <from> <to> <weight>")
	assert.Equal(t, 11, strings.Count(u, "\n"))
}
