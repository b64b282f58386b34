package layout

// Layout assigns every node of a graph a layout index (its lane in the
// rendered graph) and remembers which head's walk produced each index.
//
// Layout indices start at 1. Heads are walked in order and each walk only
// claims nodes no earlier walk reached, so the start index of each head is
// non-decreasing in head order.
//
// Thread Safety:
// A Layout is immutable once Build returns and may be read concurrently.
type Layout struct {
	layoutIndex []int
	heads       []int
	starts      []int
	maxIndex    int
}

// LayoutIndex returns the layout index of a node
func (l *Layout) LayoutIndex(node int) int {
	return l.layoutIndex[node]
}

// OneOfHeadNodeIndex returns the head whose walk claimed the node
func (l *Layout) OneOfHeadNodeIndex(node int) int {
	return l.HeadNodeIndex(l.LayoutIndex(node))
}

// HeadNodeIndex returns the head that owns a layout index, or -1 when the
// layout has no heads
func (l *Layout) HeadNodeIndex(layoutIndex int) int {
	order := l.headOrder(layoutIndex)
	if order < 0 {
		return -1
	}
	return l.heads[order]
}

// StartLayout returns the first layout index of the head that owns a layout
// index, or -1 when the layout has no heads
func (l *Layout) StartLayout(layoutIndex int) int {
	order := l.headOrder(layoutIndex)
	if order < 0 {
		return -1
	}
	return l.starts[order]
}

// Heads returns the head nodes in walk order
func (l *Layout) Heads() []int {
	return append([]int(nil), l.heads...)
}

// HeadStart returns the first layout index assigned by the i-th head
func (l *Layout) HeadStart(order int) int {
	return l.starts[order]
}

// MaxLayoutIndex returns the largest layout index in use, 0 for an empty
// layout
func (l *Layout) MaxLayoutIndex() int {
	return l.maxIndex
}

// NodesCount returns the number of nodes covered by the layout
func (l *Layout) NodesCount() int {
	return len(l.layoutIndex)
}

// headOrder finds the last head whose start is <= layoutIndex. Indices below
// the first start map to the first head.
func (l *Layout) headOrder(layoutIndex int) int {
	if len(l.starts) == 0 {
		return -1
	}

	a, b := 0, len(l.starts)-1
	for b-a > 1 {
		middle := (a + b) / 2
		if l.starts[middle] <= layoutIndex {
			a = middle
		} else {
			b = middle
		}
	}

	if l.starts[b] <= layoutIndex {
		return b
	}
	return a
}
