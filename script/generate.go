package script

import (
	"fmt"
	"io"

	"github.com/katalvlaran/mstlab/core"
)

// FromGraph converts g into commands that rebuild it: one add_node per
// vertex, then one add_edge per edge, both in insertion order, so replaying
// them reproduces g's iteration order exactly.
func FromGraph(g *core.Graph) []Command {
	if g == nil {
		return nil
	}
	vs, es := g.Vertices(), g.Edges()
	cmds := make([]Command, 0, len(vs)+len(es))
	for _, v := range vs {
		cmds = append(cmds, Command{Op: OpAddNode, Node: v})
	}
	for _, e := range es {
		cmds = append(cmds, Command{Op: OpAddEdge, From: e.From, To: e.To, Weight: e.Weight})
	}

	return cmds
}

// WriteLines writes cmds in the line format LoadLines reads, preceded by an
// optional "# header" comment.
func WriteLines(w io.Writer, header string, cmds []Command) error {
	if header != "" {
		if _, err := fmt.Fprintf(w, "# %s\n", header); err != nil {
			return err
		}
	}
	for _, c := range cmds {
		if _, err := fmt.Fprintln(w, c.String()); err != nil {
			return err
		}
	}

	return nil
}
