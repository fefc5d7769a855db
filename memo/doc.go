// Package memo implements the triangular memoization table shared by the
// STL and TBT evaluators.
//
// Both evaluators compute a robustness value for a (node id, lower, upper)
// trace window and must never recompute a cell once it is filled. Storage
// is triangular rather than a full N×N grid because only lower ≤ upper
// cells are ever addressed: for each node id and each lo in [0,N), exactly
// N-lo entries exist for hi in [lo,N).
//
// Two independent Table instances are expected in normal use — one sized
// to the STL formula tree's node count, one to the TBT tree's — since the
// two trees assign ids from disjoint, independently-starting counters.
package memo
