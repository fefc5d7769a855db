// Package shipdeck supplies a concrete worked example for the stl and tbt
// evaluators: atomic propositions over a ship-deck landing trace (UAS and
// ship position, velocity, and heading), four landing maneuvers built
// from them, and a tree that tries each in Fallback before a final
// descend-and-touchdown leaf.
//
// LoadTrace ingests the two-file SIMOUT_Ship.csv/SIMOUT_UAS.csv log
// format this package's atomics were ported against; BuildTree assembles
// the tree from a stl.Builder and tbt.Builder so callers retain the node
// counts needed to size memo.Table.
package shipdeck
