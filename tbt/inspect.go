package tbt

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/tbt/stl"
)

// PrettyPrint renders node as a compact tree string, naming each leaf and
// inlining its STL formula via stl.PrettyPrint — used by the CLI banner
// to show the tree being evaluated.
func PrettyPrint(node Node) string {
	switch n := node.(type) {
	case Leaf:
		return fmt.Sprintf("%s:%s", n.Name, stl.PrettyPrint(n.Formula))
	case Sequence:
		return fmt.Sprintf("Seq(%s, %s)", PrettyPrint(n.Left), PrettyPrint(n.Right))
	case Fallback:
		children := make([]string, len(n.Children))
		for i, c := range n.Children {
			children[i] = PrettyPrint(c)
		}

		return fmt.Sprintf("Fallback(%s)", strings.Join(children, ", "))
	case Parallel:
		children := make([]string, len(n.Children))
		for i, c := range n.Children {
			children[i] = PrettyPrint(c)
		}

		return fmt.Sprintf("Parallel(%d, %s)", n.M, strings.Join(children, ", "))
	case Timeout:
		return fmt.Sprintf("Timeout(%d, %s)", n.T, PrettyPrint(n.Child))
	case Kleene:
		return fmt.Sprintf("Kleene(%d, %s)", n.N, PrettyPrint(n.Child))
	}
	panic("tbt: unreachable node variant in PrettyPrint")
}
