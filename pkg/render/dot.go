package render

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/utkarsh5026/vcsgraph/pkg/graph"
	"github.com/utkarsh5026/vcsgraph/pkg/layout"
)

// ToDOT renders the graph in Graphviz DOT format.
//
// Nodes sharing a layout index share a DOT group, which keeps each lane
// straight. Edges to not-loaded parents end in a small point node. labels
// may be nil, in which case node indices are used.
func ToDOT(g Graph, l *layout.Layout, labels LabelFunc) string {
	var buf strings.Builder

	buf.WriteString("digraph commits {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fontname=\"monospace\", fontsize=10];\n")

	n := g.NodesCount()
	for i := 0; i < n; i++ {
		label := fmt.Sprintf("%d", i)
		if labels != nil {
			if text := labels(i); text != "" {
				label = text
			}
		}

		li := l.LayoutIndex(i)
		color := laneColors[li%len(laneColors)]
		fmt.Fprintf(&buf, "  n%d [label=%q, group=\"lane%d\", fillcolor=%q];\n", i, label, li, string(color))
	}

	for i := 0; i < n; i++ {
		for k, edge := range g.DownEdges(i) {
			switch edge.Kind {
			case graph.EdgeResolved:
				fmt.Fprintf(&buf, "  n%d -> n%d;\n", i, edge.Node)
			case graph.EdgeNotLoaded:
				fmt.Fprintf(&buf, "  missing%d_%d [shape=point, label=\"\"];\n", i, k)
				fmt.Fprintf(&buf, "  n%d -> missing%d_%d [style=dashed];\n", i, i, k)
			}
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
