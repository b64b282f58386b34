package graph

import "math"

// NotLoadedHash is returned by HashIndex for the virtual node one past the
// last loaded node. It stands for any commit outside the loaded history.
const NotLoadedHash = -1

// Edge slots are packed into an []int32. A slot holds either a node index
// (>= 0) or one of the two markers below.
const (
	pendingSlot   int32 = -1
	notLoadedSlot int32 = math.MinInt32
)

// EdgeKind tells how an edge slot was resolved
type EdgeKind uint8

const (
	// EdgeResolved points at a loaded node
	EdgeResolved EdgeKind = iota

	// EdgeNotLoaded points at a parent commit that was never supplied
	EdgeNotLoaded

	// EdgePending is only seen while the graph is being built
	EdgePending
)

func (k EdgeKind) String() string {
	switch k {
	case EdgeResolved:
		return "resolved"
	case EdgeNotLoaded:
		return "not-loaded"
	case EdgePending:
		return "pending"
	default:
		return "unknown"
	}
}

// EdgeTarget is the decoded form of one edge slot
type EdgeTarget struct {
	Kind EdgeKind

	// Node is the adjacent node index. Only meaningful for EdgeResolved.
	Node int
}

// Resolved reports whether the target is a loaded node
func (e EdgeTarget) Resolved() bool {
	return e.Kind == EdgeResolved
}

func decodeSlot(v int32) EdgeTarget {
	switch v {
	case pendingSlot:
		return EdgeTarget{Kind: EdgePending, Node: -1}
	case notLoadedSlot:
		return EdgeTarget{Kind: EdgeNotLoaded, Node: -1}
	default:
		return EdgeTarget{Kind: EdgeResolved, Node: int(v)}
	}
}
