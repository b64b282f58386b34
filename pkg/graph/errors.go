package graph

import (
	"fmt"
)

// FlagsSizeError is returned when the flags passed to Build do not match the
// number of commits
type FlagsSizeError struct {
	FlagsSize   int
	CommitCount int
}

func (e *FlagsSizeError) Error() string {
	return fmt.Sprintf("flags size %d does not match commit count %d", e.FlagsSize, e.CommitCount)
}

// NewFlagsSizeError creates a new FlagsSizeError
func NewFlagsSizeError(flagsSize, commitCount int) *FlagsSizeError {
	return &FlagsSizeError{
		FlagsSize:   flagsSize,
		CommitCount: commitCount,
	}
}

// UnresolvedEdgeError is returned when a child waiting for a parent has no
// pending edge slot for that parent. The input is inconsistent: usually the
// same commit hash appears twice, or duplicate parents were not removed.
type UnresolvedEdgeError struct {
	ChildNode  int
	ChildHash  int
	ParentHash int
}

func (e *UnresolvedEdgeError) Error() string {
	return fmt.Sprintf("node %d (hash %d) has no pending edge to parent hash %d",
		e.ChildNode, e.ChildHash, e.ParentHash)
}

// NewUnresolvedEdgeError creates a new UnresolvedEdgeError
func NewUnresolvedEdgeError(childNode, childHash, parentHash int) *UnresolvedEdgeError {
	return &UnresolvedEdgeError{
		ChildNode:  childNode,
		ChildHash:  childHash,
		ParentHash: parentHash,
	}
}

// TooManyNodesError is returned when the commit list cannot be indexed by the
// packed edge array
type TooManyNodesError struct {
	Count int
}

func (e *TooManyNodesError) Error() string {
	return fmt.Sprintf("too many commits for a permanent graph: %d", e.Count)
}

func newIndexError(what string, index, size int) string {
	return fmt.Sprintf("%s index %d out of range [0, %d)", what, index, size)
}
