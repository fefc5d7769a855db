package tbt

import (
	"math"
	"sort"

	"github.com/katalvlaran/tbt/memo"
	"github.com/katalvlaran/tbt/stl"
	"github.com/katalvlaran/tbt/trace"
)

// resumeState is the lazy-evaluation "resume past the last positive
// success" bookkeeping for Fallback/Sequence/Kleene, keyed per node id and
// validated against the outer (lo,hi) window that produced it: resumption
// is only valid while the same outer window persists, so a stored state
// is only reused when the current call's window exactly matches
// winLo/winHi — otherwise the outer loop restarts fresh, avoiding
// cross-contamination between unrelated windows. Because a fully-computed
// window is already served by the memo table before this code ever runs,
// resumption only matters within a single in-progress evaluation, never
// across it.
type resumeState struct {
	l            int
	v            float32
	winLo, winHi int
}

// Evaluator computes TBT robustness with memoization into a shared
// memo.Table, delegating to an stl.Evaluator at leaves.
type Evaluator struct {
	stlEval *stl.Evaluator
	resume  map[int]resumeState
}

// NewEvaluator returns an Evaluator that delegates STL leaves to stlEval.
func NewEvaluator(stlEval *stl.Evaluator) *Evaluator {
	return &Evaluator{stlEval: stlEval, resume: make(map[int]resumeState)}
}

// Evaluate computes the robustness of node over [lo,hi], memoizing every
// computed cell (lo<=hi) into treeTable. Leaves delegate to stlEval using
// stlTable. lazy enables the short-circuit resume behavior described on
// resumeState and on Fallback/Sequence/Kleene below.
func (e *Evaluator) Evaluate(node Node, tr *trace.Trace, lo, hi int, lazy bool, treeTable, stlTable *memo.Table) float32 {
	if lo <= hi {
		if v, ok := treeTable.Lookup(node.ID(), lo, hi); ok {
			return v
		}
	}

	v := e.compute(node, tr, lo, hi, lazy, treeTable, stlTable)
	if math.IsNaN(float64(v)) {
		panic(NaNRobustnessError{NodeID: node.ID()})
	}
	if lo <= hi {
		treeTable.Set(node.ID(), lo, hi, v)
	}

	return v
}

func (e *Evaluator) compute(node Node, tr *trace.Trace, lo, hi int, lazy bool, treeTable, stlTable *memo.Table) float32 {
	switch n := node.(type) {
	case Leaf:
		return e.stlEval.Evaluate(n.Formula, tr, lo, hi, lazy, stlTable)

	case Fallback:
		return e.evalFallback(n, tr, lo, hi, lazy, treeTable, stlTable)

	case Parallel:
		return e.evalParallel(n, tr, lo, hi, lazy, treeTable, stlTable)

	case Sequence:
		return e.evalSplit(n.ID(), n.Left, n.Right, tr, lo, hi, lazy, treeTable, stlTable)

	case Timeout:
		return e.Evaluate(n.Child, tr, lo, minInt(hi, lo+n.T-1), lazy, treeTable, stlTable)

	case Kleene:
		if lo > hi {
			return posInf
		}
		if n.N == 0 {
			return e.Evaluate(n.Child, tr, lo, hi, lazy, treeTable, stlTable)
		}
		if n.Next == nil {
			panic(MissingKleeneLevelError{NodeID: n.ID(), N: n.N})
		}

		return e.evalSplit(n.ID(), n.Child, n.Next, tr, lo, hi, lazy, treeTable, stlTable)
	}

	panic("tbt: unreachable node variant")
}

func (e *Evaluator) evalFallback(n Fallback, tr *trace.Trace, lo, hi int, lazy bool, treeTable, stlTable *memo.Table) float32 {
	l, v := lo, negInf
	if lazy {
		if st, ok := e.resume[n.ID()]; ok && st.winLo == lo && st.winHi == hi {
			l, v = st.l, st.v
		}
	}

	for i := l; i <= hi; i++ {
		for _, c := range n.Children {
			sv := e.Evaluate(c, tr, i, hi, lazy, treeTable, stlTable)
			v = max32(v, sv)
			if lazy && v > 0 {
				break
			}
		}
		if lazy && v > 0 {
			e.resume[n.ID()] = resumeState{l: i + 1, v: v, winLo: lo, winHi: hi}
			return v
		}
	}

	return v
}

// evalSplit implements the shared Sequence/Kleene(n>0) recurrence:
// max_{i in [lo,hi]} min(left.evaluate(lo,i), right.evaluate(i+1,hi)).
func (e *Evaluator) evalSplit(nodeID int, left, right Node, tr *trace.Trace, lo, hi int, lazy bool, treeTable, stlTable *memo.Table) float32 {
	l, v := lo, negInf
	if lazy {
		if st, ok := e.resume[nodeID]; ok && st.winLo == lo && st.winHi == hi {
			l, v = st.l, st.v
		}
	}

	for i := l; i <= hi; i++ {
		lv := e.Evaluate(left, tr, lo, i, lazy, treeTable, stlTable)
		rv := e.Evaluate(right, tr, i+1, hi, lazy, treeTable, stlTable)
		v = max32(v, min32(lv, rv))
		if lazy && v > 0 {
			e.resume[nodeID] = resumeState{l: i + 1, v: v, winLo: lo, winHi: hi}
			return v
		}
	}

	return v
}

func (e *Evaluator) evalParallel(n Parallel, tr *trace.Trace, lo, hi int, lazy bool, treeTable, stlTable *memo.Table) float32 {
	vs := make([]float32, len(n.Children))
	for i, c := range n.Children {
		vs[i] = e.Evaluate(c, tr, lo, hi, lazy, treeTable, stlTable)
	}
	sort.Sort(sort.Reverse(byFloat32(vs)))

	return vs[n.M-1]
}

type byFloat32 []float32

func (s byFloat32) Len() int           { return len(s) }
func (s byFloat32) Less(i, j int) bool { return s[i] < s[j] }
func (s byFloat32) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }

var (
	negInf = float32(math.Inf(-1))
	posInf = float32(math.Inf(1))
)

func min32(a, b float32) float32 {
	if a < b {
		return a
	}

	return b
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}

	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}

	return b
}
