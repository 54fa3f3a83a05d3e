// Package script parses engine commands from YAML files, HCL files and
// single REPL lines, and runs them against a session.Session.
package script

import (
	"errors"
	"fmt"
	"strings"
)

// Op names one engine command.
type Op string

const (
	OpAddNode    Op = "add_node"
	OpAddEdge    Op = "add_edge"
	OpRemoveNode Op = "remove_node"
	OpRemoveEdge Op = "remove_edge"
	OpNeighbors  Op = "neighbors"
	OpBFS        Op = "bfs"
	OpDFS        Op = "dfs"
	OpKruskal    Op = "kruskal"
	OpPrim       Op = "prim"
	OpShow       Op = "show"
	OpReset      Op = "reset"
)

var (
	// ErrUnknownOp is returned for an op name outside the command set.
	ErrUnknownOp = errors.New("script: unknown op")

	// ErrMissingField is returned when a command lacks a required argument.
	ErrMissingField = errors.New("script: missing field")

	// ErrSyntax is returned for malformed input.
	ErrSyntax = errors.New("script: syntax error")
)

// aliases maps REPL shorthands to ops.
var aliases = map[string]Op{
	"node":   OpAddNode,
	"edge":   OpAddEdge,
	"rm":     OpRemoveNode,
	"delete": OpRemoveNode,
	"unlink": OpRemoveEdge,
	"nbrs":   OpNeighbors,
	"mst":    OpKruskal,
	"clear":  OpReset,
}

// ParseOp resolves a canonical op name or REPL alias (case-insensitive).
func ParseOp(s string) (Op, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	switch op := Op(name); op {
	case OpAddNode, OpAddEdge, OpRemoveNode, OpRemoveEdge, OpNeighbors,
		OpBFS, OpDFS, OpKruskal, OpPrim, OpShow, OpReset:
		return op, nil
	}
	if op, ok := aliases[name]; ok {
		return op, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownOp, s)
}

// Command is one engine request. Only the fields its Op needs are read.
type Command struct {
	Op     Op      `json:"op"`
	Node   string  `json:"node,omitempty"`
	From   string  `json:"from,omitempty"`
	To     string  `json:"to,omitempty"`
	Weight float64 `json:"weight,omitempty"`
	Start  string  `json:"start,omitempty"`
	// Format selects the rendering of show: "", "dot", "mermaid" or "json".
	Format string `json:"format,omitempty"`

	// Source locates the command in its input ("file.yaml:3", "line 2").
	Source string `json:"-"`
}

// Validate checks that the fields required by Op are present. Value checks
// (weight range, node existence) belong to the session.
func (c Command) Validate() error {
	need := func(name, v string) error {
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("%w: %s needs %s", ErrMissingField, c.Op, name)
		}
		return nil
	}

	switch c.Op {
	case OpAddNode, OpRemoveNode, OpNeighbors:
		return need("node", c.Node)
	case OpAddEdge, OpRemoveEdge:
		if err := need("from", c.From); err != nil {
			return err
		}
		return need("to", c.To)
	case OpBFS, OpDFS, OpPrim:
		return need("start", c.Start)
	case OpKruskal, OpShow, OpReset:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOp, c.Op)
	}
}

// String renders c in REPL syntax.
func (c Command) String() string {
	switch c.Op {
	case OpAddNode, OpRemoveNode, OpNeighbors:
		return fmt.Sprintf("%s %s", c.Op, c.Node)
	case OpAddEdge:
		return fmt.Sprintf("%s %s %s %g", c.Op, c.From, c.To, c.Weight)
	case OpRemoveEdge:
		return fmt.Sprintf("%s %s %s", c.Op, c.From, c.To)
	case OpBFS, OpDFS, OpPrim:
		return fmt.Sprintf("%s %s", c.Op, c.Start)
	case OpShow:
		if c.Format != "" {
			return fmt.Sprintf("%s %s", c.Op, c.Format)
		}
	}

	return string(c.Op)
}
