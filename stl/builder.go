package stl

// Builder assigns dense, monotonically increasing ids to the formula
// nodes it constructs. This replaces the original tool's process-wide
// mutable id counter (reset before every tree build) with a value owned
// by the builder itself: trees built by independent Builders never
// collide, and nothing needs resetting between builds.
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

// AtomicProp constructs an Atomic node over the given channel names.
func (b *Builder) AtomicProp(names []string, f AtomicFunc) Formula {
	return Atomic{id: b.alloc(), Names: names, F: f}
}

// Neg constructs a negation of child.
func (b *Builder) Neg(child Formula) Formula {
	return Neg{id: b.alloc(), Child: child}
}

// Conjunction constructs the min-combination of left and right.
func (b *Builder) Conjunction(left, right Formula) Formula {
	return Conjunction{id: b.alloc(), Left: left, Right: right}
}

// Disjunction constructs the max-combination of left and right.
func (b *Builder) Disjunction(left, right Formula) Formula {
	return Disjunction{id: b.alloc(), Left: left, Right: right}
}

// Next constructs the one-step-forward operator over child.
func (b *Builder) Next(child Formula) Formula {
	return Next{id: b.alloc(), Child: child}
}

// Eventually constructs the unbounded "exists a time" operator.
func (b *Builder) Eventually(child Formula) Formula {
	return Eventually{id: b.alloc(), Child: child}
}

// Globally constructs the unbounded "for all times" operator.
func (b *Builder) Globally(child Formula) Formula {
	return Globally{id: b.alloc(), Child: child}
}

// Until constructs the unbounded binary temporal operator.
func (b *Builder) Until(left, right Formula) Formula {
	return Until{id: b.alloc(), Left: left, Right: right}
}

// EventuallyInterval constructs the [l,u]-bounded Eventually operator.
func (b *Builder) EventuallyInterval(l, u int, child Formula) Formula {
	return EventuallyInterval{id: b.alloc(), L: l, U: u, Child: child}
}

// GloballyInterval constructs the [l,u]-bounded Globally operator.
func (b *Builder) GloballyInterval(l, u int, child Formula) Formula {
	return GloballyInterval{id: b.alloc(), L: l, U: u, Child: child}
}

// UntilInterval constructs the [l,u]-bounded Until operator.
func (b *Builder) UntilInterval(l, u int, left, right Formula) Formula {
	return UntilInterval{id: b.alloc(), L: l, U: u, Left: left, Right: right}
}
