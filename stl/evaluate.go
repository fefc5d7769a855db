package stl

import (
	"math"

	"github.com/katalvlaran/tbt/memo"
	"github.com/katalvlaran/tbt/trace"
)

// Evaluator computes STL robustness with memoization into a shared
// memo.Table. An Evaluator is stateless beyond the table it is given on
// each call, so a single Evaluator may be reused across independent
// Evaluate calls as long as each call supplies the table that matches its
// formula tree's id namespace.
type Evaluator struct{}

// NewEvaluator returns a ready-to-use Evaluator.
func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

// Evaluate computes ρ(f, tr, lo, hi), memoizing every computed cell into
// table. Under lazy, Eventually/Until/Disjunction-flavored max-reductions
// stop as soon as a running value exceeds zero, and Globally-flavored
// min-reductions stop as soon as one drops below zero — this trades
// exactness for speed and only preserves the sign of the result, not its
// magnitude.
func (e *Evaluator) Evaluate(f Formula, tr *trace.Trace, lo, hi int, lazy bool, table *memo.Table) float32 {
	if lo <= hi {
		if v, ok := table.Lookup(f.ID(), lo, hi); ok {
			return v
		}
	}

	v := e.compute(f, tr, lo, hi, lazy, table)
	if math.IsNaN(float64(v)) {
		panic(NaNRobustnessError{NodeID: f.ID()})
	}
	if lo <= hi {
		table.Set(f.ID(), lo, hi, v)
	}

	return v
}

func (e *Evaluator) compute(f Formula, tr *trace.Trace, lo, hi int, lazy bool, table *memo.Table) float32 {
	switch n := f.(type) {
	case Atomic:
		if lo > hi {
			return negInf
		}

		return e.sampleAtomic(n, tr, lo)

	case Neg:
		return -e.Evaluate(n.Child, tr, lo, hi, lazy, table)

	case Conjunction:
		return min32(
			e.Evaluate(n.Left, tr, lo, hi, lazy, table),
			e.Evaluate(n.Right, tr, lo, hi, lazy, table),
		)

	case Disjunction:
		left := e.Evaluate(n.Left, tr, lo, hi, lazy, table)
		if lazy && left > 0 {
			return left
		}

		return max32(left, e.Evaluate(n.Right, tr, lo, hi, lazy, table))

	case Next:
		return e.Evaluate(n.Child, tr, lo+1, hi, lazy, table)

	case Eventually:
		v := negInf
		for i := lo; i <= hi; i++ {
			v = max32(v, e.Evaluate(n.Child, tr, i, hi, lazy, table))
			if lazy && v > 0 {
				break
			}
		}

		return v

	case Globally:
		v := posInf
		for i := lo; i <= hi; i++ {
			v = min32(v, e.Evaluate(n.Child, tr, i, hi, lazy, table))
			if lazy && v < 0 {
				break
			}
		}

		return v

	case Until:
		v := negInf
		for i := lo; i <= hi; i++ {
			minV := e.Evaluate(n.Right, tr, i, hi, lazy, table)
			for j := lo; j < i; j++ {
				minV = min32(minV, e.Evaluate(n.Left, tr, j, hi, lazy, table))
			}
			v = max32(v, minV)
			if lazy && v > 0 {
				break
			}
		}

		return v

	case EventuallyInterval:
		v := negInf
		u := minInt(hi, n.U)
		for i := n.L; i <= u; i++ {
			v = max32(v, e.Evaluate(n.Child, tr, lo+i, hi, lazy, table))
			if lazy && v > 0 {
				break
			}
		}

		return v

	case GloballyInterval:
		u := minInt(hi, n.U)
		if n.L > u {
			return negInf
		}
		v := posInf
		for i := n.L; i <= u; i++ {
			v = min32(v, e.Evaluate(n.Child, tr, lo+i, hi, lazy, table))
			if lazy && v < 0 {
				break
			}
		}

		return v

	case UntilInterval:
		v := negInf
		u := minInt(hi, n.U)
		for i := n.L; i <= u; i++ {
			minV := e.Evaluate(n.Right, tr, lo+i, hi, lazy, table)
			for j := n.L; j < i; j++ {
				minV = min32(minV, e.Evaluate(n.Left, tr, lo+j, hi, lazy, table))
			}
			v = max32(v, minV)
			if lazy && v > 0 {
				break
			}
		}

		return v
	}

	panic("stl: unreachable formula variant")
}

func (e *Evaluator) sampleAtomic(a Atomic, tr *trace.Trace, lo int) float32 {
	samples := make([]float32, len(a.Names))
	for i, name := range a.Names {
		samples[i] = tr.Sample(name, lo)
	}

	return a.F(samples)
}

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
