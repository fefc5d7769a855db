package segment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// With tauDelta below zero every candidate's tau (always >= 0) exceeds it
// immediately, so each alternative is the greedy best-rho reconstruction
// of its round — a degenerate but well-defined corner of the search.
func TestAlternatives_ReturnsKRowSetsWithRootAndOneBranch(t *testing.T) {
	tr := buildTrace(t, []float32{1, 1, 1, 1, 1, 1, 1, 1, 1, -1, -1})
	h := newHarness(t, tr)

	a := h.tbtB.Leaf(h.stlB.Globally(h.stlB.AtomicProp([]string{"a"}, identity)), "a")
	negA := h.tbtB.Leaf(h.stlB.Globally(h.stlB.Neg(h.stlB.AtomicProp([]string{"a"}, identity))), "negA")
	root := h.tbtB.Fallback(a, negA)

	_, tables := h.eval(root, 0, tr.N()-1)
	best := h.seg.Segment(root, tables, tr, 0, tr.N()-1, false)

	alts := h.seg.Alternatives(best, root, tables, tr, -1, -1000, 3)
	require.Len(t, alts, 3)
	for _, rows := range alts {
		rootRow, ok := rowFor(rows, root.ID())
		assert.True(t, ok)
		assert.False(t, rootRow.Lo > rootRow.Hi)

		_, hasA := rowFor(rows, a.ID())
		_, hasNegA := rowFor(rows, negA.ID())
		assert.True(t, hasA != hasNegA, "Fallback must report exactly one branch per alternative")
	}
}

// A Sequence's alternative must still satisfy min(left,right) == its own
// reported root value, same as the original segmentation.
func TestAlternatives_SequenceSplitStillRealizesOwnRoot(t *testing.T) {
	tr := buildTrace(t, []float32{1, 1, 1, 1, -0.5, -1, -1, -1, -1, -1, -1})
	h := newHarness(t, tr)

	left := h.tbtB.Leaf(h.stlB.Globally(h.stlB.AtomicProp([]string{"a"}, identity)), "left")
	neg := h.stlB.Neg(h.stlB.AtomicProp([]string{"a"}, identity))
	right := h.tbtB.Leaf(h.stlB.Globally(neg), "right")
	root := h.tbtB.Sequence(left, right)

	_, tables := h.eval(root, 0, tr.N()-1)
	best := h.seg.Segment(root, tables, tr, 0, tr.N()-1, false)

	alts := h.seg.Alternatives(best, root, tables, tr, -1, -1000, 2)
	require.Len(t, alts, 2)
	for _, rows := range alts {
		rootRow, ok := rowFor(rows, root.ID())
		require.True(t, ok)
		lRow, ok := rowFor(rows, left.ID())
		require.True(t, ok)
		rRow, ok := rowFor(rows, right.ID())
		require.True(t, ok)
		assert.Equal(t, rootRow.V, min32(lRow.V, rRow.V))
	}
}
