package graph

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_LinearHistory(t *testing.T) {
	// 14 <- 13 <- 12 <- 11 <- 10, newest first
	commits := createLinearHistory(5)

	g := mustBuild(t, commits)

	require.Equal(t, 5, g.NodesCount())
	assert.Equal(t, 0, g.LongEdgesCount(), "linear history should not allocate edge slots")

	for i := 0; i < 4; i++ {
		assert.True(t, g.IsSimple(i), "node %d should be simple", i)
		assert.Equal(t, []int{i + 1}, g.DownNodes(i))
		assert.Contains(t, g.UpNodes(i+1), i)
	}

	assert.False(t, g.IsSimple(4), "last node has no next node")
	assert.Empty(t, g.DownNodes(4))
	assert.Empty(t, g.UpNodes(0))
}

func TestBuild_TwoChildrenOfOneParent(t *testing.T) {
	// node 0 = C (parent A), node 1 = B (parent A), node 2 = A
	const a, b, c = 1, 2, 3
	commits := []Commit{
		newCommit(c, a),
		newCommit(b, a),
		newCommit(a),
	}

	g := mustBuild(t, commits)

	assert.False(t, g.IsSimple(0), "next node is B, not A")
	assert.True(t, g.IsSimple(1))
	assert.Equal(t, []int{2}, g.DownNodes(0))
	assert.Equal(t, []int{2}, g.DownNodes(1))
	assert.ElementsMatch(t, []int{0, 1}, g.UpNodes(2))
	assert.Empty(t, g.DownNodes(2))
	assert.Equal(t, 2, g.LongEdgesCount())
}

func TestBuild_MergeCommit(t *testing.T) {
	tests := []struct {
		name     string
		parents  []int
		wantDown []int
	}{
		{
			name:     "parents in node order",
			parents:  []int{300, 400},
			wantDown: []int{2, 3},
		},
		{
			name:     "parents in reverse node order",
			parents:  []int{400, 300},
			wantDown: []int{3, 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			commits := []Commit{
				newCommit(100, tt.parents...),
				newCommit(200, 300),
				newCommit(300),
				newCommit(400),
			}

			g := mustBuild(t, commits)

			assert.False(t, g.IsSimple(0))
			assert.True(t, g.IsSimple(1))
			assert.Equal(t, tt.wantDown, g.DownNodes(0))
			assert.ElementsMatch(t, []int{0, 1}, g.UpNodes(2))
			assert.Equal(t, []int{0}, g.UpNodes(3))
			assert.Empty(t, g.UpNodes(0))
		})
	}
}

func TestBuild_NotLoadedParents(t *testing.T) {
	t.Run("merge with one missing parent", func(t *testing.T) {
		commits := []Commit{
			newCommit(1, 2, 99),
			newCommit(2),
		}

		result := mustBuildResult(t, commits)
		g := result.Graph

		assert.Equal(t, []int{1}, g.DownNodes(0))
		assert.Equal(t, []EdgeTarget{
			{Kind: EdgeResolved, Node: 1},
			{Kind: EdgeNotLoaded, Node: -1},
		}, g.DownEdges(0))
		assert.Equal(t, map[int][]int{1: {99}}, result.NotLoaded)
		assert.Equal(t, 4, g.LongEdgesCount())
	})

	t.Run("last node with single parent", func(t *testing.T) {
		commits := []Commit{
			newCommit(1, 2),
			newCommit(2, 3),
		}

		result := mustBuildResult(t, commits)
		g := result.Graph

		assert.True(t, g.IsSimple(0))
		assert.False(t, g.IsSimple(1), "no next node exists")
		assert.Empty(t, g.DownNodes(1))
		assert.Equal(t, []EdgeTarget{{Kind: EdgeNotLoaded, Node: -1}}, g.DownEdges(1))
		assert.Equal(t, map[int][]int{2: {3}}, result.NotLoaded)
	})

	t.Run("parent listed before child", func(t *testing.T) {
		commits := []Commit{
			newCommit(5),
			newCommit(6, 5),
		}

		result := mustBuildResult(t, commits)

		assert.Empty(t, result.Graph.UpNodes(0))
		assert.Empty(t, result.Graph.DownNodes(1))
		assert.Equal(t, map[int][]int{6: {5}}, result.NotLoaded)
	})

	t.Run("complete history", func(t *testing.T) {
		result := mustBuildResult(t, createLinearHistory(3))
		assert.Empty(t, result.NotLoaded)
	})
}

func TestBuild_NoNextNodeIsNotSimple(t *testing.T) {
	// The only parent equals NotLoadedHash; a raw -1 "no next node" marker
	// would wrongly make this node simple.
	commits := []Commit{newCommit(7, NotLoadedHash)}

	g := mustBuild(t, commits)

	assert.False(t, g.IsSimple(0))
	assert.Empty(t, g.DownNodes(0))
}

func TestBuild_FlagsSizeMismatch(t *testing.T) {
	_, err := Build(createLinearHistory(3), NewFlags(2))
	require.Error(t, err)

	var sizeErr *FlagsSizeError
	require.True(t, errors.As(err, &sizeErr))
	assert.Equal(t, 2, sizeErr.FlagsSize)
	assert.Equal(t, 3, sizeErr.CommitCount)

	_, err = Build(createLinearHistory(1), nil)
	assert.True(t, errors.As(err, &sizeErr))
}

func TestBuild_EmptyHistory(t *testing.T) {
	result, err := Build([]Commit{}, NewFlags(0))
	require.NoError(t, err)

	assert.Equal(t, 0, result.Graph.NodesCount())
	assert.Equal(t, NotLoadedHash, result.Graph.HashIndex(0))
	assert.Empty(t, result.NotLoaded)
}

func TestBuild_FillsCallerFlags(t *testing.T) {
	flags := NewFlags(4)
	flags.SetAll(true)

	_, err := Build(createLinearHistory(4), flags)
	require.NoError(t, err)

	assert.Equal(t, 3, flags.Count())
	assert.False(t, flags.Get(3))
}

func TestBuild_EdgeSymmetry(t *testing.T) {
	commits := createBranchyHistory()
	g := mustBuild(t, commits)

	for u := 0; u < g.NodesCount(); u++ {
		for _, v := range g.DownNodes(u) {
			assert.Greater(t, v, u, "down node of %d", u)
			assert.Contains(t, g.UpNodes(v), u, "up nodes of %d", v)
		}
		for _, v := range g.UpNodes(u) {
			assert.Less(t, v, u, "up node of %d", u)
			assert.Contains(t, g.DownNodes(v), u, "down nodes of %d", v)
		}
	}
}

func TestBuild_LongEdgeSlotsPerParent(t *testing.T) {
	commits := createBranchyHistory()
	g := mustBuild(t, commits)

	long := 0
	for i, c := range commits {
		if !g.IsSimple(i) {
			long += len(c.Parents)
		}
	}

	assert.Equal(t, 2*long, g.LongEdgesCount())
}

func TestFillPending_NoMatchingSlot(t *testing.T) {
	b := &builder[Commit]{
		commits:   []Commit{newCommit(1, 2)},
		hashes:    []int{1},
		edgeStart: []int{0, 1},
		links:     []int32{5},
	}

	err := b.fillPending(0, 2, 7)

	var edgeErr *UnresolvedEdgeError
	require.True(t, errors.As(err, &edgeErr))
	assert.Equal(t, 0, edgeErr.ChildNode)
	assert.Equal(t, 2, edgeErr.ParentHash)
	assert.Contains(t, err.Error(), "node 0")
}

func TestFixDuplicateParents(t *testing.T) {
	commits := []Commit{
		newCommit(1, 2, 3, 2),
		newCommit(2, 3),
		newCommit(3),
	}

	fixed := FixDuplicateParents(commits)

	assert.Equal(t, []int{2, 3}, fixed[0].Parents)
	assert.Equal(t, []int{2, 3, 2}, commits[0].Parents, "input must not be modified")

	clean := createLinearHistory(3)
	assert.Same(t, &clean[0], &FixDuplicateParents(clean)[0], "clean input is returned as-is")

	g := mustBuild(t, fixed)
	assert.Equal(t, []int{1, 2}, g.DownNodes(0))
}

func TestTimestamps(t *testing.T) {
	commits := []Commit{
		{Hash: 1, Parents: []int{2, 2}, Timestamp: 300},
		{Hash: 2, Timestamp: 100},
	}

	assert.Equal(t, []int64{300, 100}, Timestamps(FixDuplicateParents(commits)))
	assert.Empty(t, Timestamps(nil))
}

// Helper functions to create test commits

func newCommit(hash int, parents ...int) Commit {
	return Commit{Hash: hash, Parents: parents}
}

// createLinearHistory returns count commits, newest first, with hashes
// 10+count-1 down to 10
func createLinearHistory(count int) []Commit {
	commits := make([]Commit, count)
	for i := 0; i < count; i++ {
		hash := 10 + count - 1 - i
		if i == count-1 {
			commits[i] = newCommit(hash)
		} else {
			commits[i] = newCommit(hash, hash-1)
		}
	}
	return commits
}

// createBranchyHistory returns:
//
//	0 M  merge of 1 and 3
//	1 B  -> 2
//	2 A  -> 5
//	3 F  -> 4
//	4 E  -> 5 and a missing parent
//	5 R  root
//	6 T  -> 5, listed after its parent so the edge is not loaded
func createBranchyHistory() []Commit {
	return []Commit{
		newCommit(100, 101, 103),
		newCommit(101, 102),
		newCommit(102, 105),
		newCommit(103, 104),
		newCommit(104, 105, 999),
		newCommit(105),
		newCommit(106, 105),
	}
}

func mustBuildResult(t *testing.T, commits []Commit) *BuildResult {
	t.Helper()
	result, err := Build(commits, NewFlags(len(commits)))
	require.NoError(t, err)
	return result
}

func mustBuild(t *testing.T, commits []Commit) *PermanentGraph {
	t.Helper()
	return mustBuildResult(t, commits).Graph
}
