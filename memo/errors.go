package memo

import "fmt"

// OutOfBoundsError is a programmer error: Set was called with an id or
// window outside the table's allocated shape. It always indicates a bug in
// tree construction or evaluator bookkeeping, never bad input data, so
// callers are expected to let it propagate as a panic rather than recover.
type OutOfBoundsError struct {
	ID, Lo, Hi, K, N int
}

func (e OutOfBoundsError) Error() string {
	return fmt.Sprintf("memo: set out of bounds: id=%d lo=%d hi=%d (K=%d N=%d)", e.ID, e.Lo, e.Hi, e.K, e.N)
}
