package script

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mstlab/session"
)

// yamlFile is the YAML document layout:
//
//	commands:
//	  - op: add_edge
//	    from: A
//	    to: B
//	    weight: 3
type yamlFile struct {
	Commands []yamlCommand `yaml:"commands"`
}

type yamlCommand struct {
	Op     string `yaml:"op"`
	Node   string `yaml:"node"`
	From   string `yaml:"from"`
	To     string `yaml:"to"`
	Weight any    `yaml:"weight"`
	Start  string `yaml:"start"`
	Format string `yaml:"format"`
}

// LoadYAML parses a YAML command document. Weights may be numbers or numeric
// strings; unknown keys are rejected.
func LoadYAML(name string, r io.Reader) ([]Command, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	var doc yamlFile
	dec := yaml.NewDecoder(bytes.NewReader(src))
	dec.KnownFields(true)
	if err = dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w: %w", name, ErrSyntax, err)
	}
	lines := yamlLines(src)

	cmds := make([]Command, 0, len(doc.Commands))
	for i, yc := range doc.Commands {
		where := fmt.Sprintf("%s: command %d", name, i+1)
		if i < len(lines) {
			where = fmt.Sprintf("%s:%d", name, lines[i])
		}
		op, err := ParseOp(yc.Op)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", where, err)
		}
		cmd := Command{
			Op:     op,
			Node:   yc.Node,
			From:   yc.From,
			To:     yc.To,
			Start:  yc.Start,
			Format: yc.Format,
			Source: where,
		}
		if op == OpAddEdge {
			if yc.Weight == nil {
				return nil, fmt.Errorf("%s: %w: add_edge needs weight", where, ErrMissingField)
			}
			if cmd.Weight, err = session.CoerceWeight(yc.Weight); err != nil {
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

// yamlLines returns the line of each item under the top-level "commands" key.
func yamlLines(src []byte) []int {
	var root yaml.Node
	if err := yaml.Unmarshal(src, &root); err != nil || len(root.Content) == 0 {
		return nil
	}
	top := root.Content[0]
	if top.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(top.Content); i += 2 {
		if top.Content[i].Value != "commands" {
			continue
		}
		items := top.Content[i+1].Content
		lines := make([]int, len(items))
		for j, it := range items {
			lines[j] = it.Line
		}
		return lines
	}

	return nil
}
