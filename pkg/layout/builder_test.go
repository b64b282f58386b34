package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utkarsh5026/vcsgraph/pkg/graph"
)

func TestBuild_NodeOrderHeads(t *testing.T) {
	g := buildGraph(t, createBranchyHistory())

	l := Build(g, ByNodeIndex, graph.NewDFSUtil())

	assert.Equal(t, []int{0, 6}, l.Heads())
	assert.Equal(t, []int{1, 1, 1, 2, 2, 1, 3}, layoutIndices(l))
	assert.Equal(t, 3, l.MaxLayoutIndex())

	assert.Equal(t, 0, l.HeadNodeIndex(1))
	assert.Equal(t, 0, l.HeadNodeIndex(2))
	assert.Equal(t, 6, l.HeadNodeIndex(3))
	assert.Equal(t, 1, l.StartLayout(2))
	assert.Equal(t, 3, l.StartLayout(3))
	assert.Equal(t, 0, l.OneOfHeadNodeIndex(4))
	assert.Equal(t, 6, l.OneOfHeadNodeIndex(6))
}

func TestBuild_TimestampHeads(t *testing.T) {
	g := buildGraph(t, createBranchyHistory())
	timestamps := []int64{100, 90, 80, 70, 60, 50, 200}

	l := Build(g, ByTimestamp(timestamps), graph.NewDFSUtil())

	assert.Equal(t, []int{6, 0}, l.Heads())
	assert.Equal(t, []int{2, 2, 2, 3, 3, 2, 1}, layoutIndices(l))
	assert.Equal(t, 6, l.HeadNodeIndex(1))
	assert.Equal(t, 0, l.HeadNodeIndex(3))
	assert.Equal(t, 2, l.StartLayout(3))
}

func TestBuild_EarlierHeadsKeepTheirNodes(t *testing.T) {
	// Two tips sharing a long trunk: 0 -> 2 -> 3 -> 4 and 1 -> 2
	commits := []graph.Commit{
		{Hash: 10, Parents: []int{12}},
		{Hash: 11, Parents: []int{12}},
		{Hash: 12, Parents: []int{13}},
		{Hash: 13, Parents: []int{14}},
		{Hash: 14},
	}
	g := buildGraph(t, commits)

	first := Build(g, ByNodeIndex, graph.NewDFSUtil())
	assert.Equal(t, []int{1, 2, 1, 1, 1}, layoutIndices(first))

	reversed := HeadComparator(ByNodeIndex)
	second := Build(g, func(a, b int) int { return reversed(b, a) }, graph.NewDFSUtil())
	assert.Equal(t, []int{1, 0}, second.Heads())
	assert.Equal(t, []int{2, 1, 1, 1, 1}, layoutIndices(second))
	for node := 2; node < 5; node++ {
		assert.Equal(t, 1, second.OneOfHeadNodeIndex(node), "trunk belongs to the first walked head")
	}
}

func TestBuild_StartsAreMonotonic(t *testing.T) {
	g := buildGraph(t, createBranchyHistory())
	l := Build(g, ByNodeIndex, graph.NewDFSUtil())

	heads := l.Heads()
	for i := 1; i < len(heads); i++ {
		assert.LessOrEqual(t, l.HeadStart(i-1), l.HeadStart(i))
	}

	for node := 0; node < l.NodesCount(); node++ {
		li := l.LayoutIndex(node)
		require.Positive(t, li, "node %d has no layout index", node)

		head := l.OneOfHeadNodeIndex(node)
		order := indexOf(heads, head)
		require.GreaterOrEqual(t, order, 0)
		assert.Equal(t, l.HeadStart(order), l.StartLayout(li))
		assert.GreaterOrEqual(t, li, l.StartLayout(li))
	}
}

func TestBuild_DeepLinearHistory(t *testing.T) {
	const depth = 100_000
	commits := make([]graph.Commit, depth)
	for i := range commits {
		commits[i] = graph.Commit{Hash: depth - i}
		if i < depth-1 {
			commits[i].Parents = []int{depth - i - 1}
		}
	}
	g := buildGraph(t, commits)

	l := Build(g, ByNodeIndex, graph.NewDFSUtil())

	assert.Equal(t, []int{0}, l.Heads())
	assert.Equal(t, 1, l.MaxLayoutIndex())
	assert.Equal(t, 1, l.LayoutIndex(depth-1))
}

func TestBuild_EmptyGraph(t *testing.T) {
	g := buildGraph(t, nil)

	l := Build(g, nil, graph.NewDFSUtil())

	assert.Empty(t, l.Heads())
	assert.Equal(t, 0, l.MaxLayoutIndex())
	assert.Equal(t, -1, l.HeadNodeIndex(1))
	assert.Equal(t, -1, l.StartLayout(1))
}

func TestBuild_CycleWithoutHead(t *testing.T) {
	// 0 <-> 1 form a cycle, 2 is an ordinary head
	g := &adjacencyGraph{
		down: [][]int{{1}, {0}, {}},
		up:   [][]int{{1}, {0}, {}},
	}

	l := Build(g, ByNodeIndex, graph.NewDFSUtil())

	assert.Equal(t, []int{2, 0}, l.Heads())
	assert.Equal(t, []int{2, 2, 1}, layoutIndices(l))
	assert.Equal(t, 0, l.OneOfHeadNodeIndex(1))
}

func TestComparators(t *testing.T) {
	priority := map[int]int{3: 0, 5: 1}
	byRef := ByRefPriority(func(node int) int {
		if p, ok := priority[node]; ok {
			return p
		}
		return 10
	}, ByNodeIndex)

	assert.Negative(t, byRef(3, 5))
	assert.Positive(t, byRef(7, 5))
	assert.Negative(t, byRef(1, 2), "unranked heads fall back to node order")

	noFallback := ByRefPriority(func(int) int { return 0 }, nil)
	assert.Negative(t, noFallback(1, 2))

	chained := HeadComparator(func(a, b int) int { return 0 }).Then(ByNodeIndex)
	assert.Positive(t, chained(4, 2))

	byTime := ByTimestamp([]int64{5, 5, 9})
	assert.Negative(t, byTime(2, 0))
	assert.Negative(t, byTime(0, 1))
}

// Helpers

type adjacencyGraph struct {
	down [][]int
	up   [][]int
}

func (g *adjacencyGraph) NodesCount() int          { return len(g.down) }
func (g *adjacencyGraph) UpNodes(node int) []int   { return g.up[node] }
func (g *adjacencyGraph) DownNodes(node int) []int { return g.down[node] }

// createBranchyHistory returns a merge at node 0 of the branches 1-2 and
// 3-4 over the root 5, plus tip 6 whose parent is listed before it
func createBranchyHistory() []graph.Commit {
	return []graph.Commit{
		{Hash: 100, Parents: []int{101, 103}},
		{Hash: 101, Parents: []int{102}},
		{Hash: 102, Parents: []int{105}},
		{Hash: 103, Parents: []int{104}},
		{Hash: 104, Parents: []int{105, 999}},
		{Hash: 105},
		{Hash: 106, Parents: []int{105}},
	}
}

func buildGraph(t *testing.T, commits []graph.Commit) *graph.PermanentGraph {
	t.Helper()
	result, err := graph.Build(commits, graph.NewFlags(len(commits)))
	require.NoError(t, err)
	return result.Graph
}

func layoutIndices(l *Layout) []int {
	out := make([]int, l.NodesCount())
	for i := range out {
		out[i] = l.LayoutIndex(i)
	}
	return out
}

func indexOf(values []int, v int) int {
	for i, x := range values {
		if x == v {
			return i
		}
	}
	return -1
}
