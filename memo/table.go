package memo

import "sync/atomic"

// Table is the triangular memoization store shared by the STL and TBT
// evaluators. For K node ids and a trace of length N, Table holds, for each id and each
// lo in [0,N), exactly N-lo cells for hi in [lo,N). Cells start empty; once
// set, a cell is never overwritten with a different id/lo/hi — evaluators
// only ever Set a given (id,lo,hi) once, so Set does not need to guard
// against clobbering a previous value.
//
// The counters are atomic.Int64 rather than plain ints: Set/Lookup are
// only ever called from the evaluator's goroutine, but Progress and
// LookupHits are also polled from a separate reporting goroutine while
// evaluation is still running, so the counters themselves need to be
// safe for that concurrent read.
type Table struct {
	values [][][]float32
	filled [][][]bool

	k, n int

	setCalls   atomic.Int64
	lookupHits atomic.Int64
	totalCells atomic.Int64
}

// NewTable allocates a Table for k node ids over a trace of length n.
// Complexity: O(k*n^2) time and memory for the allocation itself.
func NewTable(k, n int) *Table {
	values := make([][][]float32, k)
	filled := make([][][]bool, k)
	total := 0
	for id := 0; id < k; id++ {
		values[id] = make([][]float32, n)
		filled[id] = make([][]bool, n)
		for lo := 0; lo < n; lo++ {
			width := n - lo
			values[id][lo] = make([]float32, width)
			filled[id][lo] = make([]bool, width)
			total += width
		}
	}

	t := &Table{
		values: values,
		filled: filled,
		k:      k,
		n:      n,
	}
	t.totalCells.Store(int64(total))

	return t
}

// Lookup returns the stored value for (id,lo,hi) and whether it was
// present. When lo > hi it always returns (0, false) — callers interpret
// an empty horizon themselves.
func (t *Table) Lookup(id, lo, hi int) (float32, bool) {
	if lo > hi {
		return 0, false
	}
	if !t.present(id, lo, hi) {
		return 0, false
	}

	t.lookupHits.Add(1)

	return t.values[id][lo][hi-lo], true
}

func (t *Table) present(id, lo, hi int) bool {
	if id < 0 || id >= t.k || lo < 0 || lo >= t.n || hi < lo || hi >= t.n {
		return false
	}

	return t.filled[id][lo][hi-lo]
}

// Set stores v at (id,lo,hi). It panics with OutOfBoundsError if
// lo > hi, hi >= N, or id >= K — a fatal programmer error, never a
// recoverable one, since it can only be reached by a construction or
// evaluator bug.
func (t *Table) Set(id, lo, hi int, v float32) {
	if lo > hi || lo < 0 || hi < 0 || hi >= t.n || id < 0 || id >= t.k {
		panic(OutOfBoundsError{ID: id, Lo: lo, Hi: hi, K: t.k, N: t.n})
	}

	t.values[id][lo][hi-lo] = v
	t.filled[id][lo][hi-lo] = true
	t.setCalls.Add(1)
}

// Progress reports (set calls so far, total addressable cells), for the
// periodic progress prints the CLI runner emits every 10,000 cell-sets.
func (t *Table) Progress() (setCalls, totalCells int) {
	return int(t.setCalls.Load()), int(t.totalCells.Load())
}

// LookupHits reports how many Lookup calls found a present cell — used by
// the statistics line in the CLI's final report.
func (t *Table) LookupHits() int {
	return int(t.lookupHits.Load())
}
