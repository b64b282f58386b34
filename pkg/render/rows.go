// Package render draws a laid-out permanent graph, either as coloured text
// for the terminal or as Graphviz DOT/SVG.
package render

import (
	"cmp"
	"slices"

	"github.com/utkarsh5026/vcsgraph/pkg/graph"
	"github.com/utkarsh5026/vcsgraph/pkg/layout"
)

// ElementKind tells what occupies a column of a row
type ElementKind uint8

const (
	// ElementNode is the commit of the row itself
	ElementNode ElementKind = iota

	// ElementEdge is an edge passing through the row
	ElementEdge
)

// Element is one column of a row
type Element struct {
	Kind ElementKind

	// Up is the child node of an edge, or the node itself
	Up int

	// Down is the parent node of an edge, -1 for a not-loaded parent
	Down int

	// LayoutIndex orders the element within its row
	LayoutIndex int
}

// Row is the rendered form of one node
type Row struct {
	Node       int
	NodeColumn int
	Elements   []Element

	// IsMerge is set when the node has more than one down edge
	IsMerge bool

	// IsInitial is set when the node has no parents at all
	IsInitial bool

	// HasNotLoaded is set when at least one parent is outside the history
	HasNotLoaded bool
}

// Graph is the view of a permanent graph needed for rendering
type Graph interface {
	NodesCount() int
	DownEdges(node int) []graph.EdgeTarget
}

// Rows computes the columns of every node row.
//
// A row holds its node and every edge that spans it, that is every edge
// from a node above to a node below. Edges to not-loaded parents span all
// rows below their child. Elements are sorted by layout index, the node
// winning ties, then by child node.
func Rows(g Graph, l *layout.Layout) []Row {
	n := g.NodesCount()
	rows := make([]Row, n)

	var active []Element

	for r := 0; r < n; r++ {
		// Edges ending here are represented by the node itself
		active = slices.DeleteFunc(active, func(e Element) bool {
			return e.Down == r
		})

		self := Element{Kind: ElementNode, Up: r, Down: r, LayoutIndex: l.LayoutIndex(r)}
		elements := make([]Element, 0, len(active)+1)
		elements = append(elements, active...)
		elements = append(elements, self)
		slices.SortFunc(elements, compareElements)

		edges := g.DownEdges(r)
		row := Row{
			Node:      r,
			Elements:  elements,
			IsMerge:   len(edges) > 1,
			IsInitial: len(edges) == 0,
		}
		for col, e := range elements {
			if e.Kind == ElementNode {
				row.NodeColumn = col
				break
			}
		}

		for _, edge := range edges {
			switch edge.Kind {
			case graph.EdgeResolved:
				if edge.Node > r+1 {
					active = append(active, Element{
						Kind:        ElementEdge,
						Up:          r,
						Down:        edge.Node,
						LayoutIndex: max(l.LayoutIndex(r), l.LayoutIndex(edge.Node)),
					})
				}
			case graph.EdgeNotLoaded:
				row.HasNotLoaded = true
				active = append(active, Element{
					Kind:        ElementEdge,
					Up:          r,
					Down:        -1,
					LayoutIndex: l.LayoutIndex(r),
				})
			}
		}

		rows[r] = row
	}

	return rows
}

// Width returns the largest number of columns in any row
func Width(rows []Row) int {
	w := 0
	for _, r := range rows {
		w = max(w, len(r.Elements))
	}
	return w
}

func compareElements(a, b Element) int {
	if c := cmp.Compare(a.LayoutIndex, b.LayoutIndex); c != 0 {
		return c
	}
	if a.Kind != b.Kind {
		return cmp.Compare(a.Kind, b.Kind)
	}
	if c := cmp.Compare(a.Up, b.Up); c != 0 {
		return c
	}
	return cmp.Compare(a.Down, b.Down)
}
