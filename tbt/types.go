package tbt

import "github.com/katalvlaran/tbt/stl"

// Node is any node of a Temporal Behavior Tree. Every node
// carries a stable integer id assigned at construction by a Builder. Node
// is a closed interface, matching the Rust source's closed enum — the
// variant set below (Leaf, Sequence, Fallback, Parallel, Timeout, Kleene)
// is exhaustive.
type Node interface {
	// ID returns this node's construction-time id.
	ID() int

	node()
}

type id int

func (i id) ID() int { return int(i) }

// Leaf wraps an STL formula as a TBT leaf.
type Leaf struct {
	id
	Formula stl.Formula
	Name    string
}

func (Leaf) node() {}

// Sequence composes Left then Right: Left must hold up to some split
// point, Right from the next point onward.
type Sequence struct {
	id
	Left, Right Node
}

func (Sequence) node() {}

// Fallback tries its children in order, taking the best start/child pair.
type Fallback struct {
	id
	Children []Node
}

func (Fallback) node() {}

// Parallel requires at least M of its Children to hold over the same
// window.
type Parallel struct {
	id
	M        int
	Children []Node
}

func (Parallel) node() {}

// Timeout restricts Child's window to at most T steps from the start.
type Timeout struct {
	id
	T     int
	Child Node
}

func (Timeout) node() {}

// Kleene is the n-fold sequential self-composition of Child. Next is the
// (n-1)-level unrolling, built by the Builder at construction time; it is
// nil exactly when N == 0. Each level owns a distinct id so the two
// levels get independent memoization cells.
type Kleene struct {
	id
	N     int
	Child Node
	Next  Node // nil iff N == 0
}

func (Kleene) node() {}
