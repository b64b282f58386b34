package graph

// GraphCommit is the minimal view of a commit the graph builder needs.
//
// ID is the commit's hash index: a stable non-negative integer handed out by
// a hash storage. ParentIDs are the hash indices of its parents, first parent
// first.
type GraphCommit interface {
	ID() int
	ParentIDs() []int
}

// Commit is a plain GraphCommit carrying the committer timestamp used for
// ordering heads.
type Commit struct {
	// Hash is the commit's hash index
	Hash int

	// Parents are the hash indices of the parent commits, in order
	Parents []int

	// Timestamp is the committer time in unix seconds
	Timestamp int64
}

// ID implements GraphCommit
func (c Commit) ID() int {
	return c.Hash
}

// ParentIDs implements GraphCommit
func (c Commit) ParentIDs() []int {
	return c.Parents
}

// Timestamps returns the timestamp of every commit, indexed like commits
func Timestamps(commits []Commit) []int64 {
	ts := make([]int64, len(commits))
	for i, c := range commits {
		ts[i] = c.Timestamp
	}
	return ts
}

// FixDuplicateParents drops repeated parent ids from every commit, keeping
// the first occurrence of each. Commits without duplicates are returned as
// they are.
//
// Build assumes its input went through this step: a parent listed twice
// would otherwise wait for the same node twice.
func FixDuplicateParents(commits []Commit) []Commit {
	fixed := commits
	copied := false

	for i, c := range commits {
		if !hasDuplicates(c.Parents) {
			continue
		}

		if !copied {
			fixed = make([]Commit, len(commits))
			copy(fixed, commits)
			copied = true
		}

		seen := make(map[int]struct{}, len(c.Parents))
		parents := make([]int, 0, len(c.Parents))
		for _, p := range c.Parents {
			if _, ok := seen[p]; ok {
				continue
			}
			seen[p] = struct{}{}
			parents = append(parents, p)
		}

		fixed[i].Parents = parents
	}

	return fixed
}

func hasDuplicates(parents []int) bool {
	// Merge commits rarely have more than a handful of parents.
	for i := 1; i < len(parents); i++ {
		for j := 0; j < i; j++ {
			if parents[i] == parents[j] {
				return true
			}
		}
	}
	return false
}
