// Package segment reconstructs the interval assignment behind a robustness
// value an Evaluator already computed, and — given that best segmentation —
// searches for diverse alternatives separated from it (and from each other)
// by a minimum time distance, among subtrees whose own robustness clears a
// threshold.
//
// Both operations read memo.Table cells an Evaluator populated; they never
// mutate those tables and never re-run STL evaluation except for a Leaf on
// an empty horizon, which evaluation itself leaves unmemoized.
package segment
