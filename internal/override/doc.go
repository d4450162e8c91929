// Package override loads declared field types from YAML and applies them on
// top of inferred schemas.
//
// Key capabilities:
//   - Global overrides keyed by field name, applied to every class
//   - Per-class overrides that win over global ones
//   - Misses (unknown classname or field) reported as diagnostics
//
// Overrides replace the inferred type only; required flags and counts stay
// as observed. Typical use is pinning keys whose engine type is known from
// game SDK headers but unrecoverable from map files alone.
package override
