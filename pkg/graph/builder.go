package graph

import (
	"log/slog"
	"math"

	"github.com/utkarsh5026/vcsgraph/pkg/common/logger"
)

// BuildResult is the output of Build
type BuildResult struct {
	// Graph is the immutable permanent graph
	Graph *PermanentGraph

	// NotLoaded maps the hash of every commit that references at least one
	// parent outside the loaded history to those parent hashes, in parent
	// order
	NotLoaded map[int][]int
}

// builder holds the state of a single Build call.
//
// Each node owns the edge range [edgeStart[i], edgeStart[i+1]) of links:
// first the up-edges from children that were waiting for it, then one slot
// per parent when the node is not simple.
type builder[C GraphCommit] struct {
	commits   []C
	flags     *Flags
	hashes    []int
	edgeStart []int
	links     []int32

	// waiting maps a parent hash to the child nodes holding a pending slot
	// for it, in visiting order
	waiting map[int][]int

	logger *slog.Logger
}

// Build converts an ordered commit list into a PermanentGraph.
//
// Commits must be ordered so that children come before their parents
// (newest first, as printed by a VCS log) and duplicate parents must already
// be removed (see FixDuplicateParents). flags must have exactly len(commits)
// bits; Build fills it with the simple-node marks and the returned graph
// keeps it.
//
// A parent that appears only before its child, or not at all, is treated
// as not loaded.
func Build[C GraphCommit](commits []C, flags *Flags) (*BuildResult, error) {
	if flags == nil || flags.Size() != len(commits) {
		size := 0
		if flags != nil {
			size = flags.Size()
		}
		return nil, NewFlagsSizeError(size, len(commits))
	}

	n := len(commits)
	if n >= math.MaxInt32 {
		return nil, &TooManyNodesError{Count: n}
	}

	b := &builder[C]{
		commits:   commits,
		flags:     flags,
		hashes:    make([]int, n),
		edgeStart: make([]int, n+1),
		waiting:   make(map[int][]int),
		logger:    logger.With("component", "graphbuilder"),
	}

	longEdges := b.markSimpleNodes()
	b.links = make([]int32, 2*longEdges)

	for i := 0; i < n; i++ {
		if err := b.step(i); err != nil {
			return nil, err
		}
	}

	if err := b.resolveNotLoaded(); err != nil {
		return nil, err
	}

	g := newPermanentGraph(b.hashes, flags, b.edgeStart, b.links)
	notLoaded := b.collectNotLoaded()

	b.logger.Debug("permanent graph built",
		"nodes", n,
		"simple", flags.Count(),
		"longEdges", longEdges,
		"notLoadedCommits", len(notLoaded))

	return &BuildResult{
		Graph:     g,
		NotLoaded: notLoaded,
	}, nil
}

// markSimpleNodes sets the flag of every simple node and returns the number
// of long parent-edges
func (b *builder[C]) markSimpleNodes() int {
	longEdges := 0
	b.flags.SetAll(false)

	for i, c := range b.commits {
		parents := c.ParentIDs()

		hasNext := i+1 < len(b.commits)
		simple := false
		if hasNext && len(parents) == 1 {
			simple = parents[0] == b.commits[i+1].ID()
		}

		if simple {
			b.flags.Set(i, true)
		} else {
			longEdges += len(parents)
		}
	}

	return longEdges
}

// step records node i: fills the slots of children waiting for it, writes
// the reciprocal up-edges, then opens pending slots for its own parents
func (b *builder[C]) step(i int) error {
	c := b.commits[i]
	hash := c.ID()
	b.hashes[i] = hash

	edge := b.edgeStart[i]

	if children, ok := b.waiting[hash]; ok {
		delete(b.waiting, hash)
		for _, child := range children {
			if err := b.fillPending(child, hash, int32(i)); err != nil {
				return err
			}
			b.links[edge] = int32(child)
			edge++
		}
	}

	if !b.flags.Get(i) {
		for _, parent := range c.ParentIDs() {
			b.links[edge] = pendingSlot
			b.waiting[parent] = append(b.waiting[parent], i)
			edge++
		}
	}

	b.edgeStart[i+1] = edge
	return nil
}

// fillPending writes value into the first pending down slot of child whose
// parent is parentHash
func (b *builder[C]) fillPending(child, parentHash int, value int32) error {
	parents := b.commits[child].ParentIDs()
	base := b.edgeStart[child+1] - len(parents)

	for k, p := range parents {
		if p == parentHash && b.links[base+k] == pendingSlot {
			b.links[base+k] = value
			return nil
		}
	}

	return NewUnresolvedEdgeError(child, b.hashes[child], parentHash)
}

// resolveNotLoaded marks every slot still pending after the forward pass as
// pointing outside the loaded history
func (b *builder[C]) resolveNotLoaded() error {
	for parentHash, children := range b.waiting {
		for _, child := range children {
			if err := b.fillPending(child, parentHash, notLoadedSlot); err != nil {
				return err
			}
		}
	}
	clear(b.waiting)
	return nil
}

func (b *builder[C]) collectNotLoaded() map[int][]int {
	result := make(map[int][]int)

	for i, c := range b.commits {
		if b.flags.Get(i) {
			continue
		}

		parents := c.ParentIDs()
		base := b.edgeStart[i+1] - len(parents)
		for k, p := range parents {
			if b.links[base+k] == notLoadedSlot {
				result[b.hashes[i]] = append(result[b.hashes[i]], p)
			}
		}
	}

	return result
}
