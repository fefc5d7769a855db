package stl

import "fmt"

// Atomics returns every Atomic leaf reachable from f, in left-to-right
// order, mirroring Stl::get_atomics of the original implementation. The
// CLI's subsampling heuristic (trace.GetBestNumberSkipped) walks this list
// to build one trace.AtomicSampler per atomic.
func Atomics(f Formula) []Atomic {
	var out []Atomic
	collectAtomics(f, &out)

	return out
}

func collectAtomics(f Formula, out *[]Atomic) {
	switch n := f.(type) {
	case Atomic:
		*out = append(*out, n)
	case Conjunction:
		collectAtomics(n.Left, out)
		collectAtomics(n.Right, out)
	case Disjunction:
		collectAtomics(n.Left, out)
		collectAtomics(n.Right, out)
	case Until:
		collectAtomics(n.Left, out)
		collectAtomics(n.Right, out)
	case UntilInterval:
		collectAtomics(n.Left, out)
		collectAtomics(n.Right, out)
	case Neg:
		collectAtomics(n.Child, out)
	case Next:
		collectAtomics(n.Child, out)
	case Eventually:
		collectAtomics(n.Child, out)
	case Globally:
		collectAtomics(n.Child, out)
	case EventuallyInterval:
		collectAtomics(n.Child, out)
	case GloballyInterval:
		collectAtomics(n.Child, out)
	default:
		panic("stl: unreachable formula variant in Atomics")
	}
}

// PrettyPrint renders f as a compact STL formula string, mirroring
// Stl::pretty_print of the original implementation — used by the CLI
// banner to show the formulas composing a TBT leaf.
func PrettyPrint(f Formula) string {
	switch n := f.(type) {
	case Atomic:
		return fmt.Sprintf("AP(%d)", n.ID())
	case Neg:
		return fmt.Sprintf("!(%s)", PrettyPrint(n.Child))
	case Conjunction:
		return fmt.Sprintf("(%s and %s)", PrettyPrint(n.Left), PrettyPrint(n.Right))
	case Disjunction:
		return fmt.Sprintf("(%s or %s)", PrettyPrint(n.Left), PrettyPrint(n.Right))
	case Next:
		return fmt.Sprintf("X(%s)", PrettyPrint(n.Child))
	case Eventually:
		return fmt.Sprintf("F(%s)", PrettyPrint(n.Child))
	case Globally:
		return fmt.Sprintf("G(%s)", PrettyPrint(n.Child))
	case Until:
		return fmt.Sprintf("(%s U %s)", PrettyPrint(n.Left), PrettyPrint(n.Right))
	case EventuallyInterval:
		return fmt.Sprintf("F[%d,%d](%s)", n.L, n.U, PrettyPrint(n.Child))
	case GloballyInterval:
		return fmt.Sprintf("G[%d,%d](%s)", n.L, n.U, PrettyPrint(n.Child))
	case UntilInterval:
		return fmt.Sprintf("(%s U[%d,%d] %s)", PrettyPrint(n.Left), n.L, n.U, PrettyPrint(n.Right))
	}
	panic("stl: unreachable formula variant in PrettyPrint")
}
