package script

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/mstlab/session"
)

// ParseLine parses one REPL line such as "add_edge A B 3" or "prim A".
// Blank lines and lines starting with '#' yield (nil, nil).
//
// Grammar (fields separated by whitespace):
//
//	add_node|node <id>
//	add_edge|edge <from> <to> <weight>
//	remove_node|rm|delete <id>
//	remove_edge|unlink <from> <to>
//	neighbors|nbrs <id>
//	bfs|dfs|prim <start>
//	kruskal|mst
//	show [dot|mermaid|json]
//	reset|clear
func ParseLine(text string) (*Command, error) {
	line := strings.TrimSpace(text)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil, nil
	}
	fields := strings.Fields(line)
	op, err := ParseOp(fields[0])
	if err != nil {
		return nil, err
	}
	args := fields[1:]

	arity := func(min, max int) error {
		if len(args) < min || len(args) > max {
			return fmt.Errorf("%w: %s takes %s", ErrSyntax, op, usage[op])
		}
		return nil
	}

	cmd := &Command{Op: op}
	switch op {
	case OpAddNode, OpRemoveNode, OpNeighbors:
		if err = arity(1, 1); err != nil {
			return nil, err
		}
		cmd.Node = args[0]
	case OpAddEdge:
		if err = arity(3, 3); err != nil {
			return nil, err
		}
		cmd.From, cmd.To = args[0], args[1]
		if cmd.Weight, err = session.ParseWeight(args[2]); err != nil {
			return nil, err
		}
	case OpRemoveEdge:
		if err = arity(2, 2); err != nil {
			return nil, err
		}
		cmd.From, cmd.To = args[0], args[1]
	case OpBFS, OpDFS, OpPrim:
		if err = arity(1, 1); err != nil {
			return nil, err
		}
		cmd.Start = args[0]
	case OpShow:
		if err = arity(0, 1); err != nil {
			return nil, err
		}
		if len(args) == 1 {
			cmd.Format = strings.ToLower(args[0])
		}
	case OpKruskal, OpReset:
		if err = arity(0, 0); err != nil {
			return nil, err
		}
	}

	return cmd, nil
}

// usage describes the arguments of each op for error messages.
var usage = map[Op]string{
	OpAddNode:    "<id>",
	OpAddEdge:    "<from> <to> <weight>",
	OpRemoveNode: "<id>",
	OpRemoveEdge: "<from> <to>",
	OpNeighbors:  "<id>",
	OpBFS:        "<start>",
	OpDFS:        "<start>",
	OpPrim:       "<start>",
	OpKruskal:    "no arguments",
	OpShow:       "[dot|mermaid|json]",
	OpReset:      "no arguments",
}

// Usage returns the REPL grammar, one op per line.
func Usage() string {
	ops := []Op{OpAddNode, OpAddEdge, OpRemoveNode, OpRemoveEdge, OpNeighbors,
		OpBFS, OpDFS, OpKruskal, OpPrim, OpShow, OpReset}
	var b strings.Builder
	for _, op := range ops {
		fmt.Fprintf(&b, "  %-12s %s\n", op, usage[op])
	}

	return b.String()
}

// LoadLines parses a line-oriented script. name labels error positions.
func LoadLines(name string, r io.Reader) ([]Command, error) {
	var cmds []Command
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		cmd, err := ParseLine(sc.Text())
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", name, n, err)
		}
		if cmd == nil {
			continue
		}
		cmd.Source = fmt.Sprintf("%s:%d", name, n)
		cmds = append(cmds, *cmd)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	return cmds, nil
}
