// Package tbt implements Temporal Behavior Trees: Sequence, Fallback,
// Parallel(m-of-n), Timeout, and Kleene composition over stl.Formula
// leaves, plus the robustness evaluator, per the original tool's
// behaviortree module.
//
// A Node tree is built once via a Builder, which assigns each node a
// stable, dense integer id scoped to that builder — independent of the
// stl.Builder used for the leaves' formula trees, since the two packages
// maintain separate memo.Table id namespaces. Evaluator computes
// robustness over a trace.Trace window, delegating to an stl.Evaluator at
// every Leaf and memoizing combinator results into its own memo.Table.
package tbt
