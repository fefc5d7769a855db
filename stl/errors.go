package stl

import "fmt"

// NaNRobustnessError is a programmer error: some atomic or combinator
// produced NaN. This is fatal — atomics must be total — since well-formed
// atomics and the arithmetic this package performs on finite floats and
// ±∞ never naturally produce NaN.
type NaNRobustnessError struct {
	NodeID int
}

func (e NaNRobustnessError) Error() string {
	return fmt.Sprintf("stl: NaN robustness at node %d", e.NodeID)
}
