package segment

import (
	"math"
	"sort"

	"github.com/katalvlaran/tbt/stl"
	"github.com/katalvlaran/tbt/tbt"
	"github.com/katalvlaran/tbt/trace"
)

var (
	negInf = float32(math.Inf(-1))
	posInf = float32(math.Inf(1))
)

// Segmenter reconstructs the interval choices an Evaluator's max/min
// reductions made, reading from the same tables the evaluation populated.
// It recomputes a value only for a Leaf: on an empty horizon, where
// evaluation itself never memoizes a cell, and when the Leaf's cell is
// missing from the tree table.
type Segmenter struct {
	stlEval *stl.Evaluator
}

// NewSegmenter returns a Segmenter that recomputes empty-horizon leaves
// with stlEval.
func NewSegmenter(stlEval *stl.Evaluator) *Segmenter {
	return &Segmenter{stlEval: stlEval}
}

// Segment emits one Row per subtree visited while reconstructing the
// optimal choice at node over [lo,hi]. Under lazy, a subtree/window whose
// cell was never memoized (because evaluation short-circuited past it) is
// silently skipped rather than treated as fatal. Under strict evaluation
// a missing Fallback child or Sequence/Kleene left-hand cell panics with a
// MissingCellError; a missing Parallel child or right-hand cell is read as
// -Inf, and a missing Leaf cell is recomputed. Timeout and Kleene(0) panic
// with a MissingCellError on a missing child cell under lazy as well.
func (s *Segmenter) Segment(node tbt.Node, tables *Tables, tr *trace.Trace, lo, hi int, lazy bool) []Row {
	switch n := node.(type) {
	case tbt.Leaf:
		return s.segLeaf(n, tables, tr, lo, hi, lazy)
	case tbt.Fallback:
		return s.segFallback(n, tables, tr, lo, hi, lazy)
	case tbt.Parallel:
		return s.segParallel(n, tables, tr, lo, hi, lazy)
	case tbt.Sequence:
		return s.segSplit(n.ID(), n.Left, n.Right, tables, tr, lo, hi, lazy)
	case tbt.Timeout:
		return s.segTimeout(n, tables, tr, lo, hi, lazy)
	case tbt.Kleene:
		return s.segKleene(n, tables, tr, lo, hi, lazy)
	}
	panic("segment: unreachable node variant")
}

func (s *Segmenter) segLeaf(n tbt.Leaf, tables *Tables, tr *trace.Trace, lo, hi int, lazy bool) []Row {
	var v float32
	if lo > hi {
		v = s.stlEval.Evaluate(n.Formula, tr, lo, hi, lazy, tables.Stl)
	} else if stored, ok := tables.Tree.Lookup(n.ID(), lo, hi); ok {
		v = stored
	} else {
		v = s.stlEval.Evaluate(n.Formula, tr, lo, hi, lazy, tables.Stl)
	}

	return []Row{{NodeID: n.ID(), Lo: lo, Hi: hi, V: v}}
}

func (s *Segmenter) segFallback(n tbt.Fallback, tables *Tables, tr *trace.Trace, lo, hi int, lazy bool) []Row {
	v, begin := negInf, lo
	var chosen tbt.Node
	for i := lo; i <= hi; i++ {
		for _, c := range n.Children {
			sv, ok := tables.Tree.Lookup(c.ID(), i, hi)
			if !ok {
				if lazy {
					continue
				}
				panic(MissingCellError{NodeID: c.ID(), Lo: i, Hi: hi})
			}
			if sv > v {
				v, begin, chosen = sv, i, c
			}
		}
	}
	if chosen == nil {
		return []Row{{NodeID: n.ID(), Lo: lo, Hi: hi, V: v}}
	}

	rows := []Row{{NodeID: n.ID(), Lo: lo, Hi: hi, V: v}}

	return append(rows, s.Segment(chosen, tables, tr, begin, hi, lazy)...)
}

func (s *Segmenter) segParallel(n tbt.Parallel, tables *Tables, tr *trace.Trace, lo, hi int, lazy bool) []Row {
	type candidate struct {
		v float32
		c tbt.Node
	}
	var candidates []candidate
	for _, c := range n.Children {
		sv, ok := tables.Tree.Lookup(c.ID(), lo, hi)
		if !ok {
			if lazy {
				continue
			}
			sv = negInf
		}
		candidates = append(candidates, candidate{v: sv, c: c})
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].v > candidates[j].v })
	if len(candidates) < n.M {
		panic(MissingCellError{NodeID: n.ID(), Lo: lo, Hi: hi})
	}

	rows := []Row{{NodeID: n.ID(), Lo: lo, Hi: hi, V: candidates[n.M-1].v}}
	for _, cand := range candidates[:n.M] {
		rows = append(rows, s.Segment(cand.c, tables, tr, lo, hi, lazy)...)
	}

	return rows
}

// segSplit implements the shared Sequence/Kleene(n>0) reconstruction:
// scan split points u in [lo,hi], pick the one maximizing min(vL,vR),
// smallest u wins ties since later equal candidates fail the strict ">"
// update check. Per the original implementation, a right side whose
// window is empty (u+1 > hi) contributes a hardcoded -Inf rather than the
// right child's own vacuous value. This can change the V reported for the
// node, not only the split point: where the evaluator's best split gave the
// right child an empty window, the V here is lower than the evaluator's
// value (Sequence(Globally(a), Globally(-a)) over a = [1,1,1] evaluates to
// 1, and its Row here has V = -1).
func (s *Segmenter) segSplit(nodeID int, left, right tbt.Node, tables *Tables, tr *trace.Trace, lo, hi int, lazy bool) []Row {
	v, change := negInf, hi
	for u := lo; u <= hi; u++ {
		t1, ok := tables.Tree.Lookup(left.ID(), lo, u)
		if !ok {
			if lazy {
				continue
			}
			panic(MissingCellError{NodeID: left.ID(), Lo: lo, Hi: u})
		}
		t2 := negInf
		if u+1 <= hi {
			var present bool
			t2, present = tables.Tree.Lookup(right.ID(), u+1, hi)
			if !present {
				if lazy {
					continue
				}
				t2 = negInf
			}
		}
		minV := t1
		if t2 < minV {
			minV = t2
		}
		if minV > v {
			v, change = minV, u
		}
	}

	rows := []Row{{NodeID: nodeID, Lo: lo, Hi: hi, V: v}}
	rows = append(rows, s.Segment(left, tables, tr, lo, change, lazy)...)
	rows = append(rows, s.Segment(right, tables, tr, change+1, hi, lazy)...)

	return rows
}

func (s *Segmenter) segTimeout(n tbt.Timeout, tables *Tables, tr *trace.Trace, lo, hi int, lazy bool) []Row {
	truncHi := hi
	if lo+n.T-1 < truncHi {
		truncHi = lo + n.T - 1
	}

	var v float32
	if lo > truncHi {
		v = negInf
	} else {
		stored, ok := tables.Tree.Lookup(n.Child.ID(), lo, truncHi)
		if !ok {
			panic(MissingCellError{NodeID: n.Child.ID(), Lo: lo, Hi: truncHi})
		}
		v = stored
	}

	rows := []Row{{NodeID: n.ID(), Lo: lo, Hi: hi, V: v}}

	return append(rows, s.Segment(n.Child, tables, tr, lo, truncHi, lazy)...)
}

func (s *Segmenter) segKleene(n tbt.Kleene, tables *Tables, tr *trace.Trace, lo, hi int, lazy bool) []Row {
	if n.N > 0 && lo <= hi {
		return s.segSplit(n.ID(), n.Child, n.Next, tables, tr, lo, hi, lazy)
	}
	if n.N == 0 && lo < hi {
		stored, ok := tables.Tree.Lookup(n.Child.ID(), lo, hi)
		if !ok {
			panic(MissingCellError{NodeID: n.Child.ID(), Lo: lo, Hi: hi})
		}
		rows := []Row{{NodeID: n.ID(), Lo: lo, Hi: hi, V: stored}}

		return append(rows, s.Segment(n.Child, tables, tr, lo, hi, lazy)...)
	}

	return []Row{{NodeID: n.ID(), Lo: lo, Hi: hi, V: posInf}}
}
