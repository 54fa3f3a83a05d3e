package script

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/mstlab/core"
	"github.com/katalvlaran/mstlab/observability"
	"github.com/katalvlaran/mstlab/prim_kruskal"
	"github.com/katalvlaran/mstlab/render"
	"github.com/katalvlaran/mstlab/session"
)

// Outcome is the result of one command.
type Outcome struct {
	Command Command
	// Order is the visit order of bfs/dfs, or the neighbor list of neighbors.
	Order []string
	// Steps is the step sequence of kruskal/prim.
	Steps prim_kruskal.Steps
	// Edge is the stored edge after add_edge.
	Edge core.Edge
	// Output is the rendered graph of show.
	Output string
	Err    error
}

// RunOption configures Run.
type RunOption func(*runner)

// WithStopOnError makes Run return after the first failing command.
func WithStopOnError() RunOption {
	return func(r *runner) { r.stopOnError = true }
}

// WithLogger sets the logger; nil keeps the no-op logger.
func WithLogger(l *zap.Logger) RunOption {
	return func(r *runner) { r.log = observability.OrNop(l) }
}

type runner struct {
	sess        *session.Session
	stopOnError bool
	log         *zap.Logger
	// lastMST is the final edge set of the latest kruskal/prim; show highlights it.
	lastMST prim_kruskal.Snapshot
}

// Run executes cmds in order and returns one Outcome per executed command.
// Without WithStopOnError every command runs and failures are recorded in
// their Outcome. A cancelled ctx stops the run before the next command.
func Run(ctx context.Context, sess *session.Session, cmds []Command, opts ...RunOption) ([]Outcome, error) {
	r := &runner{sess: sess, log: zap.NewNop()}
	for _, fn := range opts {
		fn(r)
	}

	outs := make([]Outcome, 0, len(cmds))
	for _, cmd := range cmds {
		if err := ctx.Err(); err != nil {
			return outs, err
		}
		out := r.exec(ctx, cmd)
		outs = append(outs, out)
		if out.Err != nil {
			r.log.Warn("command failed", zap.Stringer("command", cmd),
				zap.String("source", cmd.Source), zap.Error(out.Err))
			if r.stopOnError {
				return outs, fmt.Errorf("%s: %w", label(cmd), out.Err)
			}
		}
	}

	return outs, nil
}

// Exec runs a single command; the REPL uses it line by line.
// The highlight for show is the final edge set of the latest MST run in hl.
func Exec(ctx context.Context, sess *session.Session, cmd Command, hl *prim_kruskal.Snapshot) Outcome {
	r := &runner{sess: sess, log: zap.NewNop()}
	if hl != nil {
		r.lastMST = *hl
	}
	out := r.exec(ctx, cmd)
	if hl != nil {
		*hl = r.lastMST
	}

	return out
}

func label(cmd Command) string {
	if cmd.Source != "" {
		return cmd.Source
	}

	return cmd.String()
}

func (r *runner) exec(ctx context.Context, cmd Command) Outcome {
	out := Outcome{Command: cmd}
	if out.Err = cmd.Validate(); out.Err != nil {
		return out
	}

	switch cmd.Op {
	case OpAddNode:
		out.Err = r.sess.AddNode(cmd.Node)
	case OpAddEdge:
		out.Edge, out.Err = r.sess.AddEdge(cmd.From, cmd.To, cmd.Weight)
	case OpRemoveNode:
		out.Err = r.sess.RemoveNode(cmd.Node)
	case OpRemoveEdge:
		out.Err = r.sess.RemoveEdge(cmd.From, cmd.To)
	case OpNeighbors:
		out.Order, out.Err = r.sess.Neighbors(cmd.Node)
	case OpBFS:
		out.Order, out.Err = r.sess.BFS(ctx, cmd.Start)
	case OpDFS:
		out.Order, out.Err = r.sess.DFS(ctx, cmd.Start)
	case OpKruskal:
		out.Steps, out.Err = r.sess.Kruskal(ctx)
	case OpPrim:
		out.Steps, out.Err = r.sess.Prim(ctx, cmd.Start)
	case OpShow:
		out.Output, out.Err = r.show(cmd.Format)
	case OpReset:
		r.sess.Reset()
		r.lastMST = nil
	}

	if out.Err == nil && (cmd.Op == OpKruskal || cmd.Op == OpPrim) {
		r.lastMST = out.Steps.Final()
	}

	return out
}

// show renders the current graph. An empty format yields a plain listing.
func (r *runner) show(format string) (string, error) {
	view := r.sess.View()
	var buf bytes.Buffer
	if format == "" {
		writeListing(&buf, view, r.lastMST)
		return buf.String(), nil
	}
	f, err := render.ParseFormat(format)
	if err != nil {
		return "", err
	}
	if err = render.Write(&buf, f, view, r.lastMST); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// writeListing prints nodes and edges, marking edges of hl with '*'.
func writeListing(w io.Writer, v render.View, hl prim_kruskal.Snapshot) {
	fmt.Fprintf(w, "nodes: %s\n", strings.Join(v.Nodes, " "))
	for _, e := range v.Edges {
		mark := " "
		if hl.Contains(e.From, e.To) {
			mark = "*"
		}
		fmt.Fprintf(w, "%s %s-%s %g\n", mark, e.From, e.To, e.Weight)
	}
}

// Report prints outcomes in human-readable form. MST runs print every step
// when steps is true, otherwise only the final tree.
func Report(w io.Writer, outs []Outcome, steps bool) {
	for _, o := range outs {
		WriteOutcome(w, o, steps)
	}
}

// WriteOutcome prints one outcome; successful mutations print nothing.
func WriteOutcome(w io.Writer, o Outcome, steps bool) {
	if o.Err != nil {
		fmt.Fprintf(w, "error: %s: %v\n", label(o.Command), o.Err)
		return
	}

	switch o.Command.Op {
	case OpBFS, OpDFS:
		fmt.Fprintf(w, "%s from %s: %s\n", strings.ToUpper(string(o.Command.Op)),
			o.Command.Start, strings.Join(o.Order, " "))
	case OpNeighbors:
		fmt.Fprintf(w, "neighbors of %s: %s\n", o.Command.Node, strings.Join(o.Order, " "))
	case OpKruskal, OpPrim:
		if steps {
			for i, s := range o.Steps {
				fmt.Fprintf(w, "%s step %d: %v\n", o.Command.Op, i+1, s)
			}
		}
		final := o.Steps.Final()
		fmt.Fprintf(w, "%s: %v total=%g\n", o.Command.Op, final, final.TotalWeight())
	case OpShow:
		fmt.Fprint(w, o.Output)
	}
}
