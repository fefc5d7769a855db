package segment

import "github.com/katalvlaran/tbt/memo"

// Row is one line of a segmentation: the subtree NodeID, the window
// [Lo,Hi] it was evaluated on at the optimum, and its robustness V.
type Row struct {
	NodeID int
	Lo, Hi int
	V      float32
}

// Tables bundles the two memo.Table instances a segmentation reads from:
// Tree holds TBT combinator cells, Stl holds STL formula cells reached
// through Leaf nodes.
type Tables struct {
	Tree *memo.Table
	Stl  *memo.Table
}
