package tbt

import "sort"

// NextLeafIndex computes, for every leaf reachable from root, the set of
// leaf ids that may immediately follow it along a Sequence's left-to-right
// ordering. It is purely informational: evaluation and segmentation never
// consult it.
//
// The walk tracks, for each node on the current path, the first-reachable
// leaves of the *nearest* enclosing Sequence's (or Kleene's, which shares
// the same left-right recurrence) right side while descending through its
// left side — entering a new Sequence/Kleene frame replaces that pending
// set rather than adding to it, per the nearest-frame rule.
func NextLeafIndex(root Node) map[int][]int {
	raw := make(map[int]map[int]struct{})
	walkNextLeaf(root, nil, raw)

	out := make(map[int][]int, len(raw))
	for leafID, set := range raw {
		ids := make([]int, 0, len(set))
		for id := range set {
			ids = append(ids, id)
		}
		sort.Ints(ids)
		out[leafID] = ids
	}

	return out
}

func walkNextLeaf(node Node, pendingRight []int, raw map[int]map[int]struct{}) {
	switch n := node.(type) {
	case Leaf:
		if len(pendingRight) == 0 {
			return
		}
		set, ok := raw[n.ID()]
		if !ok {
			set = make(map[int]struct{})
			raw[n.ID()] = set
		}
		for _, id := range pendingRight {
			set[id] = struct{}{}
		}

	case Sequence:
		walkNextLeaf(n.Left, firstLeaves(n.Right), raw)
		walkNextLeaf(n.Right, pendingRight, raw)

	case Fallback:
		for _, c := range n.Children {
			walkNextLeaf(c, pendingRight, raw)
		}

	case Parallel:
		for _, c := range n.Children {
			walkNextLeaf(c, pendingRight, raw)
		}

	case Timeout:
		walkNextLeaf(n.Child, pendingRight, raw)

	case Kleene:
		if n.N == 0 {
			walkNextLeaf(n.Child, pendingRight, raw)
			return
		}
		walkNextLeaf(n.Child, firstLeaves(n.Next), raw)
		walkNextLeaf(n.Next, pendingRight, raw)

	default:
		panic("tbt: unreachable node variant in NextLeafIndex")
	}
}

// firstLeaves returns the ids of every leaf reachable by always descending
// into the leftmost/first branch of node — for Sequence and Kleene(n>0)
// that means the left/child side only, matching the recurrence both share.
func firstLeaves(node Node) []int {
	switch n := node.(type) {
	case Leaf:
		return []int{n.ID()}

	case Sequence:
		return firstLeaves(n.Left)

	case Fallback:
		var out []int
		for _, c := range n.Children {
			out = append(out, firstLeaves(c)...)
		}

		return out

	case Parallel:
		var out []int
		for _, c := range n.Children {
			out = append(out, firstLeaves(c)...)
		}

		return out

	case Timeout:
		return firstLeaves(n.Child)

	case Kleene:
		return firstLeaves(n.Child)
	}

	panic("tbt: unreachable node variant in firstLeaves")
}
