// Package pipeline runs the batch from map files to a merged schema set.
//
// Key capabilities:
//   - bounded worker pool decoding input files concurrently
//   - per-worker memoized classification
//   - deterministic merge: partials fold in input order regardless of
//     completion order
//   - fail-fast on the first broken input, reported by input position
package pipeline
