package tbt

import "github.com/katalvlaran/tbt/stl"

// Builder assigns dense, monotonically increasing ids to the TBT nodes it
// constructs — the same id-ownership pattern as stl.Builder, replacing the
// original tool's global mutable node counter.
type Builder struct {
	next int
}

// NewBuilder returns a Builder whose first-constructed node gets id 0.
func NewBuilder() *Builder {
	return &Builder{}
}

// Count returns the number of nodes this Builder has constructed so far —
// the K needed to size a memo.Table for the tree it built.
func (b *Builder) Count() int {
	return b.next
}

// Reset zeroes the id counter so the next constructed node again gets id
// 0. Not required for correctness — each Builder already owns its own
// counter — but lets callers (tests, mainly) reuse one Builder value
// across independent trees instead of allocating a fresh one.
func (b *Builder) Reset() {
	b.next = 0
}

func (b *Builder) alloc() id {
	i := id(b.next)
	b.next++

	return i
}

// Leaf constructs a Leaf node wrapping formula, labeled name for
// human-readable reporting.
func (b *Builder) Leaf(formula stl.Formula, name string) Node {
	return Leaf{id: b.alloc(), Formula: formula, Name: name}
}

// Sequence constructs Left-then-Right composition.
func (b *Builder) Sequence(left, right Node) Node {
	return Sequence{id: b.alloc(), Left: left, Right: right}
}

// Fallback constructs a Fallback over children, tried in order.
// Panics if children is empty — a Fallback requires at least one child.
func (b *Builder) Fallback(children ...Node) Node {
	if len(children) == 0 {
		panic("tbt: Fallback requires at least one child")
	}

	return Fallback{id: b.alloc(), Children: append([]Node(nil), children...)}
}

// Parallel constructs an m-of-n node. Panics if m is out of [1,len(children)].
func (b *Builder) Parallel(m int, children ...Node) Node {
	if m < 1 || m > len(children) {
		panic("tbt: Parallel requires 1 <= m <= len(children)")
	}

	return Parallel{id: b.alloc(), M: m, Children: append([]Node(nil), children...)}
}

// Timeout constructs a window-restricting node. Panics if t <= 0.
func (b *Builder) Timeout(t int, child Node) Node {
	if t <= 0 {
		panic("tbt: Timeout requires a positive window")
	}

	return Timeout{id: b.alloc(), T: t, Child: child}
}

// Kleene constructs the n-fold self-composition of child, building the
// chain of decreasing-n unrolled levels. Each level gets its own id (so
// each unrolling has its own memoization namespace); the wrapped child is
// the same Node value at every level, since Node values are immutable
// and carry their own stable id already — physically cloning it would
// add nothing.
func (b *Builder) Kleene(n int, child Node) Node {
	if n < 0 {
		panic("tbt: Kleene requires n >= 0")
	}
	self := b.alloc()
	var next Node
	if n > 0 {
		next = b.Kleene(n-1, child)
	}

	return Kleene{id: self, N: n, Child: child, Next: next}
}

// KleeneInf expands to Parallel(1, [Kleene(n), Kleene(n-1), ..., Kleene(1)])
// with n = max(1, horizonLen) — "at least one of the unrollings matches".
func (b *Builder) KleeneInf(child Node, horizonLen int) Node {
	n := horizonLen
	if n < 1 {
		n = 1
	}

	top := b.Kleene(n, child).(Kleene)
	levels := make([]Node, 0, n)
	cur := top
	for {
		levels = append(levels, cur)
		if cur.N == 1 {
			break
		}
		cur = cur.Next.(Kleene)
	}

	return b.Parallel(1, levels...)
}
