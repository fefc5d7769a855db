package segment_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tbt/memo"
	"github.com/katalvlaran/tbt/segment"
	"github.com/katalvlaran/tbt/stl"
	"github.com/katalvlaran/tbt/tbt"
	"github.com/katalvlaran/tbt/trace"
)

func identity(samples []float32) float32 { return samples[0] }

func buildTrace(t *testing.T, values []float32) *trace.Trace {
	t.Helper()
	tr, err := trace.New(map[string][]float32{"a": values})
	require.NoError(t, err)

	return tr
}

type harness struct {
	stlB *stl.Builder
	tbtB *tbt.Builder
	tr   *trace.Trace
	ev   *tbt.Evaluator
	seg  *segment.Segmenter
	tTbl *memo.Table
	sTbl *memo.Table
}

func newHarness(t *testing.T, tr *trace.Trace) *harness {
	t.Helper()
	stlEv := stl.NewEvaluator()

	return &harness{
		stlB: stl.NewBuilder(),
		tbtB: tbt.NewBuilder(),
		tr:   tr,
		ev:   tbt.NewEvaluator(stlEv),
		seg:  segment.NewSegmenter(stlEv),
	}
}

// eval runs a strict (non-lazy) evaluation and returns the populated
// tables alongside the root robustness, ready for Segment to read from.
func (h *harness) eval(root tbt.Node, lo, hi int) (float32, *segment.Tables) {
	h.tTbl = memo.NewTable(h.tbtB.Count(), h.tr.N())
	h.sTbl = memo.NewTable(h.stlB.Count(), h.tr.N())
	v := h.ev.Evaluate(root, h.tr, lo, hi, false, h.tTbl, h.sTbl)

	return v, &segment.Tables{Tree: h.tTbl, Stl: h.sTbl}
}

func rowFor(rows []segment.Row, nodeID int) (segment.Row, bool) {
	for _, r := range rows {
		if r.NodeID == nodeID {
			return r, true
		}
	}

	return segment.Row{}, false
}

// Sequence(Leaf(Globally(a)), Leaf(Globally(-a))): the reported split must
// realize min(rowL.V, rowR.V) == root robustness.
func TestSegment_SequenceSplitRealizesRoot(t *testing.T) {
	tr := buildTrace(t, []float32{1, 1, 1, 1, -0.5, -1, -1, -1, -1, -1, -1})
	h := newHarness(t, tr)

	left := h.tbtB.Leaf(h.stlB.Globally(h.stlB.AtomicProp([]string{"a"}, identity)), "left")
	neg := h.stlB.Neg(h.stlB.AtomicProp([]string{"a"}, identity))
	right := h.tbtB.Leaf(h.stlB.Globally(neg), "right")
	root := h.tbtB.Sequence(left, right)

	rootV, tables := h.eval(root, 0, tr.N()-1)
	rows := h.seg.Segment(root, tables, tr, 0, tr.N()-1, false)

	lRow, ok := rowFor(rows, left.ID())
	require.True(t, ok)
	rRow, ok := rowFor(rows, right.ID())
	require.True(t, ok)

	assert.Equal(t, 0, lRow.Lo)
	assert.Equal(t, 3, lRow.Hi)
	assert.Equal(t, 4, rRow.Lo)
	assert.Equal(t, tr.N()-1, rRow.Hi)
	assert.Equal(t, rootV, min32(lRow.V, rRow.V))
}

// Fallback([Leaf(Globally(a)), Leaf(Globally(-a))]) picks the branch whose
// robustness matches root and reports its start index: Globally(a) is -1
// from every start, Globally(-a) is 1 from index 9, so negA wins there.
func TestSegment_FallbackPicksWinningBranch(t *testing.T) {
	tr := buildTrace(t, []float32{1, 1, 1, 1, 1, 1, 1, 1, 1, -1, -1})
	h := newHarness(t, tr)

	a := h.tbtB.Leaf(h.stlB.Globally(h.stlB.AtomicProp([]string{"a"}, identity)), "a")
	negA := h.tbtB.Leaf(h.stlB.Globally(h.stlB.Neg(h.stlB.AtomicProp([]string{"a"}, identity))), "negA")
	root := h.tbtB.Fallback(a, negA)

	rootV, tables := h.eval(root, 0, tr.N()-1)
	rows := h.seg.Segment(root, tables, tr, 0, tr.N()-1, false)

	negRow, ok := rowFor(rows, negA.ID())
	require.True(t, ok)
	assert.Equal(t, rootV, negRow.V)
	assert.Equal(t, 9, negRow.Lo)
	_, hasA := rowFor(rows, a.ID())
	assert.False(t, hasA, "Fallback must report only the winning branch")
}

// Parallel(2, c1, c2) reports both children since m equals the child count.
func TestSegment_ParallelReportsTopM(t *testing.T) {
	tr := buildTrace(t, []float32{1, 1, 1, 1, 1, 1, 1, -1, 1, 1, 1})
	h := newHarness(t, tr)

	shifted := func(samples []float32) float32 { return samples[0] - 0.5 }
	c1 := h.tbtB.Leaf(h.stlB.Globally(h.stlB.AtomicProp([]string{"a"}, shifted)), "c1")
	c2 := h.tbtB.Leaf(h.stlB.Eventually(h.stlB.Neg(h.stlB.AtomicProp([]string{"a"}, identity))), "c2")
	root := h.tbtB.Parallel(2, c1, c2)

	_, tables := h.eval(root, 0, tr.N()-1)
	rows := h.seg.Segment(root, tables, tr, 0, tr.N()-1, false)

	_, ok1 := rowFor(rows, c1.ID())
	_, ok2 := rowFor(rows, c2.ID())
	assert.True(t, ok1)
	assert.True(t, ok2)
}

// Timeout(4, Leaf(Globally(a))) reconstructs the child over the truncated
// window, not the outer one.
func TestSegment_TimeoutTruncatesChildWindow(t *testing.T) {
	tr := buildTrace(t, []float32{1, 1, 1, 1, -1, -1, -1, -1, -1, -1, -1})
	h := newHarness(t, tr)

	leaf := h.tbtB.Leaf(h.stlB.Globally(h.stlB.AtomicProp([]string{"a"}, identity)), "leaf")
	root := h.tbtB.Timeout(4, leaf)

	_, tables := h.eval(root, 0, tr.N()-1)
	rows := h.seg.Segment(root, tables, tr, 0, tr.N()-1, false)

	leafRow, ok := rowFor(rows, leaf.ID())
	require.True(t, ok)
	assert.Equal(t, 0, leafRow.Lo)
	assert.Equal(t, 3, leafRow.Hi)
}

// KleeneInf expands to a Parallel(1, ...) of decreasing unrollings; the
// reconstruction must bottom out in concrete leaf rows, not panic.
func TestSegment_KleeneInfReconstructsWithoutPanicking(t *testing.T) {
	tr := buildTrace(t, []float32{-1, -1, -1, 1, -3, 4})
	h := newHarness(t, tr)

	leaf := h.tbtB.Leaf(h.stlB.Eventually(h.stlB.AtomicProp([]string{"a"}, identity)), "leaf")
	root := h.tbtB.KleeneInf(leaf, 6)

	_, tables := h.eval(root, 0, tr.N()-1)
	rows := h.seg.Segment(root, tables, tr, 0, tr.N()-1, false)

	_, ok := rowFor(rows, leaf.ID())
	assert.True(t, ok)
}

// Kleene on an empty horizon emits a sentinel +Inf row with no children.
func TestSegment_KleeneEmptyHorizonSentinel(t *testing.T) {
	tr := buildTrace(t, []float32{1, 2, 3})
	h := newHarness(t, tr)

	leaf := h.tbtB.Leaf(h.stlB.AtomicProp([]string{"a"}, identity), "leaf")
	k2 := h.tbtB.Kleene(2, leaf)

	tables := &segment.Tables{
		Tree: memo.NewTable(h.tbtB.Count(), tr.N()),
		Stl:  memo.NewTable(h.stlB.Count(), tr.N()),
	}
	rows := h.seg.Segment(k2, tables, tr, 2, 1, false)

	require.Len(t, rows, 1)
	assert.True(t, math.IsInf(float64(rows[0].V), 1))
}

// A non-lazy Segment over a table that was only ever populated under lazy
// evaluation must panic: the tree was not fully evaluated.
func TestSegment_MissingCellPanicsUnderStrictReconstruction(t *testing.T) {
	tr := buildTrace(t, []float32{1, 2, 3, -1, -2})
	h := newHarness(t, tr)

	leaf := h.tbtB.Leaf(h.stlB.Eventually(h.stlB.AtomicProp([]string{"a"}, identity)), "leaf")
	other := h.tbtB.Leaf(h.stlB.Globally(h.stlB.AtomicProp([]string{"a"}, identity)), "other")
	root := h.tbtB.Fallback(leaf, other)

	h.tTbl = memo.NewTable(h.tbtB.Count(), tr.N())
	h.sTbl = memo.NewTable(h.stlB.Count(), tr.N())
	h.ev.Evaluate(root, tr, 0, tr.N()-1, true, h.tTbl, h.sTbl)

	assert.Panics(t, func() {
		h.seg.Segment(root, &segment.Tables{Tree: h.tTbl, Stl: h.sTbl}, tr, 0, tr.N()-1, false)
	})
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}

	return b
}
