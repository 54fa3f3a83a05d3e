// Package render turns a graph plus one highlighted edge set (typically the
// current MST step) into text formats that external viewers draw: Graphviz
// DOT, Mermaid and JSON. Layout is left to the viewer.
package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/mstlab/core"
)

// Format names an export format.
type Format string

const (
	FormatDOT     Format = "dot"
	FormatMermaid Format = "mermaid"
	FormatJSON    Format = "json"
)

// Highlight style, matching the step drawing of the interactive tool.
const (
	HighlightColor = "red"
	HighlightWidth = 3
)

// ErrUnknownFormat is returned for an unsupported export format.
var ErrUnknownFormat = errors.New("render: unknown format")

// View is a point-in-time copy of a graph's nodes and edges.
type View struct {
	Nodes []string    `json:"nodes"`
	Edges []core.Edge `json:"edges"`
}

// FromGraph captures g. A nil graph yields an empty view.
func FromGraph(g *core.Graph) View {
	if g == nil {
		return View{Nodes: []string{}, Edges: []core.Edge{}}
	}

	return View{Nodes: g.Vertices(), Edges: g.Edges()}
}

// ParseFormat validates a format name (case-insensitive).
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatDOT, FormatMermaid, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Write renders v in format f to w.
func Write(w io.Writer, f Format, v View, highlight []core.Edge) error {
	switch f {
	case FormatDOT:
		return DOT(w, v, highlight)
	case FormatMermaid:
		return Mermaid(w, v, highlight)
	case FormatJSON:
		return JSON(w, v, highlight)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

// ContentType returns the MIME type for f.
func (f Format) ContentType() string {
	switch f {
	case FormatJSON:
		return "application/json"
	case FormatDOT:
		return "text/vnd.graphviz; charset=utf-8"
	default:
		return "text/plain; charset=utf-8"
	}
}

// pairKey is the orientation-free key of {u,v}.
func pairKey(u, v string) string {
	if v < u {
		u, v = v, u
	}

	return u + "\x00" + v
}

// highlightSet indexes highlighted edges by unordered pair.
func highlightSet(hl []core.Edge) map[string]bool {
	set := make(map[string]bool, len(hl))
	for _, e := range hl {
		set[pairKey(e.From, e.To)] = true
	}

	return set
}

// formatWeight prints integral weights without a fractional part.
func formatWeight(w float64) string {
	return strconv.FormatFloat(w, 'g', -1, 64)
}

// DOT writes an undirected Graphviz graph. Highlighted edges are red with
// penwidth 3; the rest are gray.
func DOT(w io.Writer, v View, highlight []core.Edge) error {
	hl := highlightSet(highlight)
	ew := &errWriter{w: w}

	ew.printf("graph mst {\n")
	ew.printf("  node [shape=circle];\n")
	for _, n := range v.Nodes {
		ew.printf("  %s;\n", strconv.Quote(n))
	}
	for _, e := range v.Edges {
		attrs := fmt.Sprintf("label=%s", strconv.Quote(formatWeight(e.Weight)))
		if hl[pairKey(e.From, e.To)] {
			attrs += fmt.Sprintf(", color=%s, penwidth=%d", HighlightColor, HighlightWidth)
		} else {
			attrs += ", color=gray"
		}
		ew.printf("  %s -- %s [%s];\n", strconv.Quote(e.From), strconv.Quote(e.To), attrs)
	}
	ew.printf("}\n")

	return ew.err
}

// Mermaid writes a flowchart. Node IDs are positional (n0, n1, ...) so any
// vertex name is safe; the name is the label. Highlighted edges get a
// linkStyle line.
func Mermaid(w io.Writer, v View, highlight []core.Edge) error {
	hl := highlightSet(highlight)
	ew := &errWriter{w: w}

	ids := make(map[string]string, len(v.Nodes))
	ew.printf("graph LR\n")
	for i, n := range v.Nodes {
		ids[n] = "n" + strconv.Itoa(i)
		ew.printf("  %s[\"%s\"]\n", ids[n], mermaidEscape(n))
	}

	var marked []string
	for i, e := range v.Edges {
		ew.printf("  %s ---|%s| %s\n", ids[e.From], formatWeight(e.Weight), ids[e.To])
		if hl[pairKey(e.From, e.To)] {
			marked = append(marked, strconv.Itoa(i))
		}
	}
	if len(marked) > 0 {
		ew.printf("  linkStyle %s stroke:%s,stroke-width:%dpx\n",
			strings.Join(marked, ","), HighlightColor, HighlightWidth)
	}

	return ew.err
}

func mermaidEscape(s string) string {
	return strings.ReplaceAll(s, `"`, "#quot;")
}

// jsonEdge is the JSON shape of one rendered edge.
type jsonEdge struct {
	core.Edge
	Highlighted bool `json:"highlighted"`
}

// jsonDoc is the JSON document written by JSON.
type jsonDoc struct {
	Nodes       []string   `json:"nodes"`
	Edges       []jsonEdge `json:"edges"`
	TotalWeight float64    `json:"highlight_weight"`
}

// JSON writes {"nodes": [...], "edges": [{..., "highlighted": bool}], "highlight_weight": w}.
func JSON(w io.Writer, v View, highlight []core.Edge) error {
	hl := highlightSet(highlight)
	doc := jsonDoc{
		Nodes: v.Nodes,
		Edges: make([]jsonEdge, 0, len(v.Edges)),
	}
	if doc.Nodes == nil {
		doc.Nodes = []string{}
	}
	for _, e := range v.Edges {
		on := hl[pairKey(e.From, e.To)]
		doc.Edges = append(doc.Edges, jsonEdge{Edge: e, Highlighted: on})
		if on {
			doc.TotalWeight += e.Weight
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(doc)
}

// errWriter keeps the first write error and drops later writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
