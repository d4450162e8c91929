// Package classify implements value type inference for entity property
// values.
//
// Every raw value is assigned a TypeKind, the most specific type it can be
// parsed as. Candidates are probed in strict specificity order: boolean
// literals first, then 32-bit integers, then decimal floats, then vectors
// by ascending arity, with the opaque string as the always-valid fallback.
// Classification is pure and total: it never fails and depends only on the
// value itself.
//
// Widen combines two kinds into the least specific of the two, the merge
// rule used when the same field is observed with differently-shaped values.
// The full widening behavior is written out as a literal table so it can be
// checked exhaustively.
//
// Key names:
//   - TypeKind: the inferred type enum, in specificity order
//   - Classify: raw value -> TypeKind
//   - Widen: the pairwise merge table
//   - Cached: an LRU-memoized classifier for repetitive inputs
package classify
