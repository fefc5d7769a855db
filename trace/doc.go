// Package trace defines the immutable, fixed-length multivariate numeric
// trace consumed by the stl and tbt evaluators, plus the CSV ingestion and
// subsampling heuristic that turn flight-log CSV files into one.
//
// A Trace is a column store: a length N and a map from channel name to a
// length-N []float32 vector. It never mutates after construction — the
// evaluators only ever read it.
//
// # CSV ingestion
//
// LoadCSV reads one CSV file per call, selecting the requested columns by
// header name. A record with a malformed numeric field is skipped and
// described in the returned warnings;
// a missing column is a configuration error (ErrColumnNotFound) since it
// cannot be recovered from within the ingester.
//
// # Subsampling
//
// GetBestNumberSkipped implements the subsampling heuristic, ported from
// the original Rust implementation's get_best_number_skipped, bug-for-bug
// (see its doc comment and DESIGN.md for the one known aliasing defect
// that is preserved rather than silently fixed).
package trace
