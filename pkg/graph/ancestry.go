package graph

// IsAncestor reports whether ancestor is reachable from node by following
// down-edges. A node is its own ancestor.
//
// Like MergeBases it expects parents to come after their children, which
// holds for every PermanentGraph.
func IsAncestor(g DownGraph, ancestor, node int, dfs *DFSUtil) bool {
	if ancestor == node {
		return true
	}
	// parents always come after their children
	if ancestor < node {
		return false
	}
	return ReachableNodes(g, []int{node}, dfs).Get(ancestor)
}

// MergeBases returns the best common ancestors of a and b in node order:
// the common ancestors that are not an ancestor of another common ancestor.
// The result is empty when the loaded histories of a and b do not meet.
func MergeBases(g DownGraph, a, b int, dfs *DFSUtil) []int {
	common := ReachableNodes(g, []int{a}, dfs).Intersect(ReachableNodes(g, []int{b}, dfs))
	excluded := NewFlags(g.NodesCount())

	var bases []int
	for node, ok := common.NextSet(0); ok; node, ok = common.NextSet(node + 1) {
		if excluded.Get(node) {
			continue
		}
		bases = append(bases, node)

		// descendants come first, so everything below a base is worse
		excluded.Union(ReachableNodes(g, []int{node}, dfs))
	}

	return bases
}
