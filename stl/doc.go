// Package stl implements Signal Temporal Logic formula trees and their
// real-valued robustness evaluator.
//
// A Formula tree is built once via a Builder, which assigns each node a
// stable, dense integer id; it is immutable thereafter. Evaluator computes
// robustness over a trace.Trace window, memoizing into a shared
// memo.Table so that repeated sub-windows (as arise constantly in the TBT
// evaluator built on top of this package) are computed once.
package stl
