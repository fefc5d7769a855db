package segment

import (
	"math"
	"sort"

	"github.com/katalvlaran/tbt/tbt"
	"github.com/katalvlaran/tbt/trace"
)

const maxTau = math.MaxInt

// Alternatives produces up to k further segmentations of node, each
// maximizing the minimum time-distance ("tau difference") from best and
// every previously produced alternative, restricted to subtrees whose
// robustness strictly exceeds rhoDelta. root's window is read off the row
// best carries for node itself.
//
// Unlike Segment, this reconstruction never treats a missing cell as a
// lazy short-circuit — callers must supply tables from a strict (non-lazy)
// evaluation pass, matching the original tool's alternative-segmentation
// entry point.
func (s *Segmenter) Alternatives(best []Row, node tbt.Node, tables *Tables, tr *trace.Trace, tauDelta int, rhoDelta float32, k int) [][]Row {
	lo, hi, ok := rootWindow(best, node.ID())
	if !ok {
		panic(MissingCellError{NodeID: node.ID()})
	}

	segmentations := [][]Row{best}
	out := make([][]Row, 0, k)
	for i := 0; i < k; i++ {
		res := s.underRestriction(node, tables, tr, lo, hi, tauDelta, rhoDelta, segmentations)
		segmentations = append(segmentations, res.rows)
		out = append(out, res.rows)
	}

	return out
}

func rootWindow(rows []Row, nodeID int) (lo, hi int, ok bool) {
	for _, r := range rows {
		if r.NodeID == nodeID {
			return r.Lo, r.Hi, true
		}
	}

	return 0, 0, false
}

type restricted struct {
	tau  int
	rows []Row
}

func (s *Segmenter) underRestriction(node tbt.Node, tables *Tables, tr *trace.Trace, lo, hi, tauDelta int, rhoDelta float32, prior [][]Row) restricted {
	switch n := node.(type) {
	case tbt.Leaf:
		return s.restrictLeaf(n, tables, tr, lo, hi, prior)
	case tbt.Fallback:
		return s.restrictFallback(n, tables, tr, lo, hi, tauDelta, rhoDelta, prior)
	case tbt.Parallel:
		return s.restrictParallel(n, tables, tr, lo, hi, tauDelta, rhoDelta, prior)
	case tbt.Sequence:
		return s.restrictSplit(n.ID(), n.Left, n.Right, tables, tr, lo, hi, tauDelta, rhoDelta, prior)
	case tbt.Timeout:
		return s.restrictTimeout(n, tables, tr, lo, hi, tauDelta, rhoDelta, prior)
	case tbt.Kleene:
		return s.restrictKleene(n, tables, tr, lo, hi, tauDelta, rhoDelta, prior)
	}
	panic("segment: unreachable node variant")
}

func (s *Segmenter) restrictLeaf(n tbt.Leaf, tables *Tables, tr *trace.Trace, lo, hi int, prior [][]Row) restricted {
	var v float32
	if lo > hi {
		v = s.stlEval.Evaluate(n.Formula, tr, lo, hi, false, tables.Stl)
	} else if stored, ok := tables.Tree.Lookup(n.ID(), lo, hi); ok {
		v = stored
	} else {
		v = s.stlEval.Evaluate(n.Formula, tr, lo, hi, false, tables.Stl)
	}

	tau, found := tauDiff(n.ID(), lo, hi, prior)
	if !found {
		tau = maxTau
	}

	return restricted{tau: tau, rows: []Row{{NodeID: n.ID(), Lo: lo, Hi: hi, V: v}}}
}

func (s *Segmenter) restrictFallback(n tbt.Fallback, tables *Tables, tr *trace.Trace, lo, hi, tauDelta int, rhoDelta float32, prior [][]Row) restricted {
	type candidate struct {
		v    float32
		i    int
		node tbt.Node
	}
	var candidates []candidate
	for i := lo; i <= hi; i++ {
		for _, c := range n.Children {
			sv, ok := tables.Tree.Lookup(c.ID(), i, hi)
			if !ok {
				panic(MissingCellError{NodeID: c.ID(), Lo: i, Hi: hi})
			}
			candidates = append(candidates, candidate{v: sv, i: i, node: c})
		}
	}
	sort.Slice(candidates, func(a, b int) bool { return candidates[a].v > candidates[b].v })
	filtered := candidates[:0]
	for _, cand := range candidates {
		if cand.v > rhoDelta {
			filtered = append(filtered, cand)
		}
	}

	bestTau, bestV := 0, -math.MaxFloat32
	var bestRows []Row
	for _, cand := range filtered {
		child := s.underRestriction(cand.node, tables, tr, cand.i, hi, tauDelta, rhoDelta, prior)
		if child.tau > tauDelta {
			rows := append([]Row{{NodeID: n.ID(), Lo: lo, Hi: hi, V: cand.v}}, child.rows...)

			return restricted{tau: child.tau, rows: rows}
		}
		if child.tau > bestTau {
			bestTau, bestRows, bestV = child.tau, child.rows, float64(cand.v)
		}
	}

	rows := append([]Row{{NodeID: n.ID(), Lo: lo, Hi: hi, V: float32(bestV)}}, bestRows...)

	return restricted{tau: bestTau, rows: rows}
}

func (s *Segmenter) restrictParallel(n tbt.Parallel, tables *Tables, tr *trace.Trace, lo, hi, tauDelta int, rhoDelta float32, prior [][]Row) restricted {
	type candidate struct {
		v    float32
		node tbt.Node
	}
	candidates := make([]candidate, 0, len(n.Children))
	for _, c := range n.Children {
		sv, ok := tables.Tree.Lookup(c.ID(), lo, hi)
		if !ok {
			sv = negInf
		}
		candidates = append(candidates, candidate{v: sv, node: c})
	}
	sort.Slice(candidates, func(a, b int) bool { return candidates[a].v > candidates[b].v })
	filtered := candidates[:0]
	for _, cand := range candidates {
		if cand.v > rhoDelta {
			filtered = append(filtered, cand)
		}
	}
	if len(filtered) < n.M {
		panic(MissingCellError{NodeID: n.ID(), Lo: lo, Hi: hi})
	}

	rows := []Row{{NodeID: n.ID(), Lo: lo, Hi: hi, V: filtered[n.M-1].v}}
	sumTau := 0
	for _, cand := range filtered[:n.M] {
		child := s.underRestriction(cand.node, tables, tr, lo, hi, tauDelta, rhoDelta, prior)
		sumTau = saturatingAdd(sumTau, child.tau)
		rows = append(rows, child.rows...)
	}

	return restricted{tau: sumTau, rows: rows}
}

func (s *Segmenter) restrictSplit(nodeID int, left, right tbt.Node, tables *Tables, tr *trace.Trace, lo, hi, tauDelta int, rhoDelta float32, prior [][]Row) restricted {
	type candidate struct {
		v        float32
		lLo, lHi int
		rLo, rHi int
	}
	var candidates []candidate
	for u := lo; u <= hi; u++ {
		t1, ok := tables.Tree.Lookup(left.ID(), lo, u)
		if !ok {
			panic(MissingCellError{NodeID: left.ID(), Lo: lo, Hi: u})
		}
		if u+1 > hi {
			candidates = append(candidates, candidate{v: t1, lLo: lo, lHi: u, rLo: u + 1, rHi: hi})
			continue
		}
		t2, ok := tables.Tree.Lookup(right.ID(), u+1, hi)
		if !ok {
			candidates = append(candidates, candidate{v: t1, lLo: lo, lHi: u, rLo: u + 1, rHi: hi})
			continue
		}
		minV := t1
		if t2 < minV {
			minV = t2
		}
		candidates = append(candidates, candidate{v: minV, lLo: lo, lHi: u, rLo: u + 1, rHi: hi})
	}
	sort.Slice(candidates, func(a, b int) bool { return candidates[a].v > candidates[b].v })
	filtered := candidates[:0]
	for _, cand := range candidates {
		if cand.v > rhoDelta {
			filtered = append(filtered, cand)
		}
	}

	bestTau, bestV := 0, -math.MaxFloat32
	var bestLeftRows, bestRightRows []Row
	for _, cand := range filtered {
		leftRes := s.underRestriction(left, tables, tr, cand.lLo, cand.lHi, tauDelta, rhoDelta, prior)
		rightRes := s.underRestriction(right, tables, tr, cand.rLo, cand.rHi, tauDelta, rhoDelta, prior)
		sumTau := saturatingAdd(leftRes.tau, rightRes.tau)
		if sumTau > tauDelta {
			rows := []Row{{NodeID: nodeID, Lo: lo, Hi: hi, V: cand.v}}
			rows = append(rows, leftRes.rows...)
			rows = append(rows, rightRes.rows...)

			return restricted{tau: sumTau, rows: rows}
		}
		if sumTau > bestTau {
			bestTau, bestLeftRows, bestRightRows, bestV = sumTau, leftRes.rows, rightRes.rows, float64(cand.v)
		}
	}

	rows := []Row{{NodeID: nodeID, Lo: lo, Hi: hi, V: float32(bestV)}}
	rows = append(rows, bestLeftRows...)
	rows = append(rows, bestRightRows...)

	return restricted{tau: bestTau, rows: rows}
}

func (s *Segmenter) restrictTimeout(n tbt.Timeout, tables *Tables, tr *trace.Trace, lo, hi, tauDelta int, rhoDelta float32, prior [][]Row) restricted {
	truncHi := hi
	if lo+n.T-1 < truncHi {
		truncHi = lo + n.T - 1
	}
	v, ok := tables.Tree.Lookup(n.Child.ID(), lo, truncHi)
	if !ok {
		panic(MissingCellError{NodeID: n.Child.ID(), Lo: lo, Hi: truncHi})
	}
	child := s.underRestriction(n.Child, tables, tr, lo, truncHi, tauDelta, rhoDelta, prior)
	rows := append([]Row{{NodeID: n.ID(), Lo: lo, Hi: hi, V: v}}, child.rows...)

	return restricted{tau: child.tau, rows: rows}
}

func (s *Segmenter) restrictKleene(n tbt.Kleene, tables *Tables, tr *trace.Trace, lo, hi, tauDelta int, rhoDelta float32, prior [][]Row) restricted {
	if n.N > 0 && lo <= hi {
		return s.restrictSplit(n.ID(), n.Child, n.Next, tables, tr, lo, hi, tauDelta, rhoDelta, prior)
	}
	if n.N == 0 && lo < hi {
		v, ok := tables.Tree.Lookup(n.Child.ID(), lo, hi)
		if !ok {
			panic(MissingCellError{NodeID: n.Child.ID(), Lo: lo, Hi: hi})
		}
		child := s.underRestriction(n.Child, tables, tr, lo, hi, tauDelta, rhoDelta, prior)
		rows := append([]Row{{NodeID: n.ID(), Lo: lo, Hi: hi, V: v}}, child.rows...)

		return restricted{tau: child.tau, rows: rows}
	}

	return restricted{tau: 0, rows: []Row{{NodeID: n.ID(), Lo: lo, Hi: hi, V: posInf}}}
}

// tauDiff returns the minimum time-distance between (lo,hi) and every row
// for nodeID across prior, or (0,false) if nodeID never appears.
func tauDiff(nodeID, lo, hi int, prior [][]Row) (int, bool) {
	found := false
	best := 0
	for _, seg := range prior {
		for _, row := range seg {
			if row.NodeID != nodeID {
				continue
			}
			d := absInt(lo-row.Lo) + absInt(hi-row.Hi)
			if !found || d < best {
				best, found = d, true
			}
		}
	}

	return best, found
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

func saturatingAdd(a, b int) int {
	sum := a + b
	if sum < a || sum < b {
		return maxTau
	}

	return sum
}
