package layout

import "cmp"

// HeadComparator orders head nodes. Heads that compare lower are walked
// first and get the lower layout indices.
type HeadComparator func(a, b int) int

// ByNodeIndex keeps heads in node order
func ByNodeIndex(a, b int) int {
	return cmp.Compare(a, b)
}

// ByTimestamp puts heads with newer timestamps first. timestamps is indexed
// by node; equal timestamps fall back to node order.
func ByTimestamp(timestamps []int64) HeadComparator {
	return func(a, b int) int {
		if c := cmp.Compare(timestamps[b], timestamps[a]); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	}
}

// ByRefPriority puts heads with a lower priority value first, e.g. the
// current branch before other branches before unnamed tips. Ties are broken
// by fallback.
func ByRefPriority(priority func(node int) int, fallback HeadComparator) HeadComparator {
	return func(a, b int) int {
		if c := cmp.Compare(priority(a), priority(b)); c != 0 {
			return c
		}
		if fallback != nil {
			return fallback(a, b)
		}
		return cmp.Compare(a, b)
	}
}

// Then returns a comparator that consults next when c reports a tie
func (c HeadComparator) Then(next HeadComparator) HeadComparator {
	return func(a, b int) int {
		if r := c(a, b); r != 0 {
			return r
		}
		return next(a, b)
	}
}
