package script

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/katalvlaran/mstlab/session"
)

// hclFile is the HCL document layout:
//
//	command "add_edge" {
//	  from   = "A"
//	  to     = "B"
//	  weight = 3
//	}
//	command "prim" { start = "A" }
type hclFile struct {
	Commands []*hclCommand `hcl:"command,block"`
}

type hclCommand struct {
	Op     string         `hcl:"op,label"`
	Node   string         `hcl:"node,optional"`
	From   string         `hcl:"from,optional"`
	To     string         `hcl:"to,optional"`
	Weight hcl.Expression `hcl:"weight,optional"`
	Start  string         `hcl:"start,optional"`
	Format string         `hcl:"format,optional"`
}

// LoadHCL parses an HCL command document held in src; name is used for
// diagnostics. Weights may be numbers or numeric strings.
func LoadHCL(name string, src []byte) ([]Command, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, name)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: %w", ErrSyntax, diags)
	}

	var doc hclFile
	if diags = gohcl.DecodeBody(file.Body, nil, &doc); diags.HasErrors() {
		return nil, fmt.Errorf("%w: %w", ErrSyntax, diags)
	}

	lines := blockLines(file.Body)
	cmds := make([]Command, 0, len(doc.Commands))
	for i, hc := range doc.Commands {
		where := fmt.Sprintf("%s: command %d", name, i+1)
		if i < len(lines) {
			where = fmt.Sprintf("%s:%d", name, lines[i])
		}
		op, err := ParseOp(hc.Op)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", where, err)
		}
		cmd := Command{
			Op:     op,
			Node:   hc.Node,
			From:   hc.From,
			To:     hc.To,
			Start:  hc.Start,
			Format: hc.Format,
			Source: where,
		}
		if op == OpAddEdge {
			if cmd.Weight, err = hclWeight(hc.Weight); err != nil {
				return nil, fmt.Errorf("%s: %w", where, err)
			}
		}
		if err = cmd.Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", where, err)
		}
		cmds = append(cmds, cmd)
	}

	return cmds, nil
}

// blockLines returns the starting line of each block in native-syntax bodies.
// The decoder accepts only command blocks, so positions line up with doc.Commands.
func blockLines(body hcl.Body) []int {
	sb, ok := body.(*hclsyntax.Body)
	if !ok {
		return nil
	}
	lines := make([]int, 0, len(sb.Blocks))
	for _, b := range sb.Blocks {
		lines = append(lines, b.DefRange().Start.Line)
	}

	return lines
}

// hclWeight evaluates a literal weight expression and converts it to a
// finite float64. Missing attributes evaluate to null.
func hclWeight(expr hcl.Expression) (float64, error) {
	if expr == nil {
		return 0, fmt.Errorf("%w: add_edge needs weight", ErrMissingField)
	}
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return 0, fmt.Errorf("%w: %w", ErrSyntax, diags)
	}
	if val.IsNull() {
		return 0, fmt.Errorf("%w: add_edge needs weight", ErrMissingField)
	}
	num, err := convert.Convert(val, cty.Number)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", session.ErrInvalidWeight, err)
	}
	var w float64
	if err = gocty.FromCtyValue(num, &w); err != nil {
		return 0, fmt.Errorf("%w: %w", session.ErrInvalidWeight, err)
	}

	return session.CoerceWeight(w)
}
