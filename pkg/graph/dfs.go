package graph

// NodeNotFound is returned by a DFS step function when the current node has
// nothing left to visit
const NodeNotFound = -1

// DFSUtil runs depth-first walks on an explicit stack so that long linear
// histories cannot overflow the goroutine stack.
//
// A DFSUtil reuses its stack between walks and is not safe for concurrent use.
type DFSUtil struct {
	stack []int
}

// NewDFSUtil creates a DFSUtil
func NewDFSUtil() *DFSUtil {
	return &DFSUtil{
		stack: make([]int, 0, 64),
	}
}

// Walk pushes start and then repeatedly calls next with the node on top of
// the stack. A returned node is pushed; NodeNotFound pops the top. The walk
// ends when the stack is empty.
func (d *DFSUtil) Walk(start int, next func(node int) int) {
	d.stack = append(d.stack[:0], start)

	for len(d.stack) > 0 {
		top := d.stack[len(d.stack)-1]
		child := next(top)
		if child == NodeNotFound {
			d.stack = d.stack[:len(d.stack)-1]
		} else {
			d.stack = append(d.stack, child)
		}
	}
}

// DownGraph is the part of a graph needed to walk from children to parents
type DownGraph interface {
	NodesCount() int
	DownNodes(node int) []int
}

// ReachableNodes marks every node reachable from the start nodes by following
// down-edges, the start nodes included.
func ReachableNodes(g DownGraph, starts []int, dfs *DFSUtil) *Flags {
	visited := NewFlags(g.NodesCount())

	for _, start := range starts {
		if visited.Get(start) {
			continue
		}
		visited.Set(start, true)

		dfs.Walk(start, func(node int) int {
			for _, down := range g.DownNodes(node) {
				if !visited.Get(down) {
					visited.Set(down, true)
					return down
				}
			}
			return NodeNotFound
		})
	}

	return visited
}
