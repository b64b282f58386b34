// Package layout computes the lane layout of a permanent commit graph.
package layout

import (
	"slices"

	"github.com/utkarsh5026/vcsgraph/pkg/common/logger"
	"github.com/utkarsh5026/vcsgraph/pkg/graph"
)

// Graph is the adjacency view the layout needs
type Graph interface {
	NodesCount() int
	UpNodes(node int) []int
	DownNodes(node int) []int
}

// Build lays out g.
//
// Heads are the nodes without up nodes. They are sorted with cmp (stable,
// starting from node order) and walked depth-first one after another. A walk
// gives the current layout index to every node it reaches for the first
// time, always descends into the first down node that has no index yet, and
// moves to the next layout index whenever a newly indexed node turns out to
// have nothing left to descend into.
//
// Nodes that no head reaches can only come from a cyclic Graph; they are
// walked afterwards in node order as if they were heads.
func Build(g Graph, cmp HeadComparator, dfs *graph.DFSUtil) *Layout {
	log := logger.With("component", "layoutbuilder")

	n := g.NodesCount()
	layoutIndex := make([]int, n)

	var heads []int
	for i := 0; i < n; i++ {
		if len(g.UpNodes(i)) == 0 {
			heads = append(heads, i)
		}
	}
	if cmp != nil {
		slices.SortStableFunc(heads, cmp)
	}

	current := 1
	starts := make([]int, 0, len(heads))

	walk := func(head int) {
		dfs.Walk(head, func(node int) int {
			firstVisit := layoutIndex[node] == 0
			if firstVisit {
				layoutIndex[node] = current
			}

			for _, down := range g.DownNodes(node) {
				if layoutIndex[down] == 0 {
					return down
				}
			}

			if firstVisit {
				current++
			}
			return graph.NodeNotFound
		})
	}

	for _, head := range heads {
		starts = append(starts, current)
		walk(head)
	}

	orphans := 0
	for i := 0; i < n; i++ {
		if layoutIndex[i] != 0 {
			continue
		}
		heads = append(heads, i)
		starts = append(starts, current)
		walk(i)
		orphans++
	}

	if orphans > 0 {
		log.Warn("nodes unreachable from any head were laid out separately", "count", orphans)
	}
	log.Debug("layout built", "nodes", n, "heads", len(heads), "maxLayoutIndex", current-1)

	return &Layout{
		layoutIndex: layoutIndex,
		heads:       heads,
		starts:      starts,
		maxIndex:    current - 1,
	}
}
