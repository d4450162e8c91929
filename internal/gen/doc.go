// Package gen emits Go source from an inferred schema set.
//
// Generation approach uses text/template + go/format for readable,
// allocation-light Go code.
//
// Emitted surface:
//   - One struct per classname, fields in first-seen order
//   - Optional fields lifted to pointers
//   - A parse function per struct plus a classname dispatch function
//   - An Entity interface implemented by every generated struct
//
// Output is deterministic: identical schema sets produce byte-identical
// files.
package gen
