package script_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mstlab/builder"
	"github.com/katalvlaran/mstlab/script"
	"github.com/katalvlaran/mstlab/session"
)

func TestFromGraph_ReplaysGeneratedGraph(t *testing.T) {
	g, err := builder.Recipe{Kind: "wheel", N: 6, Seed: 11}.Build()
	require.NoError(t, err)

	cmds := script.FromGraph(g)
	require.Len(t, cmds, g.VertexCount()+g.EdgeCount())
	assert.Equal(t, script.Command{Op: script.OpAddNode, Node: "A"}, cmds[0])

	var buf bytes.Buffer
	require.NoError(t, script.WriteLines(&buf, "wheel n=6 seed=11", cmds))
	assert.Contains(t, buf.String(), "# wheel n=6 seed=11\nadd_node A\n")

	loaded, err := script.LoadLines("gen", &buf)
	require.NoError(t, err)
	require.Len(t, loaded, len(cmds))
	for i := range loaded {
		loaded[i].Source = ""
	}
	assert.Equal(t, cmds, loaded)

	sess := session.New()
	_, err = script.Run(context.Background(), sess, loaded, script.WithStopOnError())
	require.NoError(t, err)
	assert.Equal(t, g.Vertices(), sess.Nodes())
	assert.Equal(t, len(g.Edges()), len(sess.Edges()))

	steps, err := sess.Kruskal(context.Background())
	require.NoError(t, err)
	assert.Len(t, steps.Final(), g.VertexCount()-1)
}

func TestFromGraph_Nil(t *testing.T) {
	assert.Nil(t, script.FromGraph(nil))
}
