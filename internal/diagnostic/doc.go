// Package diagnostic provides structured warnings and infos collected while
// extracting entities and applying overrides.
//
// Key capabilities:
//   - Duplicate and empty key warnings from entity lump scanning
//   - Classless property bag warnings
//   - Override misses (unknown classname or field)
//
// Diagnostics never abort a run; they are merged across inputs in a fixed
// order and surfaced by the caller.
package diagnostic
