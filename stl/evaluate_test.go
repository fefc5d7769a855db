package stl_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tbt/memo"
	"github.com/katalvlaran/tbt/stl"
	"github.com/katalvlaran/tbt/trace"
)

func identity(samples []float32) float32 { return samples[0] }

func buildTrace(t *testing.T, values []float32) *trace.Trace {
	t.Helper()
	tr, err := trace.New(map[string][]float32{"a": values})
	require.NoError(t, err)

	return tr
}

// Globally(a) over a 12-point trace.
func TestEvaluate_Scenario1_Globally(t *testing.T) {
	tr := buildTrace(t, []float32{1, 2, 3, 4, 5, 1, 2, -1, 2, 3, 4, 5})
	b := stl.NewBuilder()
	f := b.Globally(b.AtomicProp([]string{"a"}, identity))
	table := memo.NewTable(b.Count(), tr.N())

	v := stl.NewEvaluator().Evaluate(f, tr, 0, tr.N()-1, false, table)
	assert.Equal(t, float32(-1.0), v)
}

// EventuallyInterval(3,5,a).
func TestEvaluate_Scenario2_EventuallyInterval(t *testing.T) {
	tr := buildTrace(t, []float32{1, 2, 3, 4, 5, 10, 2, -1, 2, 3, 4, 5})
	b := stl.NewBuilder()
	f := b.EventuallyInterval(3, 5, b.AtomicProp([]string{"a"}, identity))
	table := memo.NewTable(b.Count(), tr.N())

	v := stl.NewEvaluator().Evaluate(f, tr, 0, tr.N()-1, false, table)
	assert.Equal(t, float32(10.0), v)
}

func TestEvaluate_MemoizationIsPure(t *testing.T) {
	tr := buildTrace(t, []float32{1, 2, 3, -1, -2})
	b := stl.NewBuilder()
	f := b.Eventually(b.AtomicProp([]string{"a"}, identity))
	table := memo.NewTable(b.Count(), tr.N())
	ev := stl.NewEvaluator()

	v1 := ev.Evaluate(f, tr, 0, tr.N()-1, false, table)
	v2 := ev.Evaluate(f, tr, 0, tr.N()-1, false, table)
	assert.Equal(t, v1, v2)
}

func TestEvaluate_NegationInvolution(t *testing.T) {
	tr := buildTrace(t, []float32{1, -2, 3, 4, -5})
	b := stl.NewBuilder()
	atom := b.AtomicProp([]string{"a"}, identity)
	f := b.Neg(b.Neg(atom))
	table := memo.NewTable(b.Count(), tr.N())
	ev := stl.NewEvaluator()

	got := ev.Evaluate(f, tr, 1, 3, false, table)

	b2 := stl.NewBuilder()
	atom2 := b2.AtomicProp([]string{"a"}, identity)
	table2 := memo.NewTable(b2.Count(), tr.N())
	want := ev.Evaluate(atom2, tr, 1, 3, false, table2)

	assert.Equal(t, want, got)
}

func TestEvaluate_GloballyEventuallyDuality(t *testing.T) {
	tr := buildTrace(t, []float32{1, -2, 3, 4, -5, 6})

	b1 := stl.NewBuilder()
	g := b1.Globally(b1.AtomicProp([]string{"a"}, identity))
	table1 := memo.NewTable(b1.Count(), tr.N())

	b2 := stl.NewBuilder()
	fEv := b2.Eventually(b2.Neg(b2.AtomicProp([]string{"a"}, identity)))
	table2 := memo.NewTable(b2.Count(), tr.N())

	ev := stl.NewEvaluator()
	lhs := ev.Evaluate(g, tr, 0, tr.N()-1, false, table1)
	rhs := -ev.Evaluate(fEv, tr, 0, tr.N()-1, false, table2)

	assert.InDelta(t, float64(lhs), float64(rhs), 1e-6)
}

func TestEvaluate_EmptyHorizonAtomicIsNegInf(t *testing.T) {
	tr := buildTrace(t, []float32{1, 2, 3})
	b := stl.NewBuilder()
	f := b.AtomicProp([]string{"a"}, identity)
	table := memo.NewTable(b.Count(), tr.N())

	v := stl.NewEvaluator().Evaluate(f, tr, 2, 1, false, table)
	assert.True(t, math.IsInf(float64(v), -1), "empty horizon atomic must be -Inf")
}
