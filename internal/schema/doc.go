// Package schema holds the inferred entity schema model and the two fold
// steps that produce it: the per-file Builder and the cross-file Merge.
//
// A SchemaSet maps classnames to entity schemas; an EntitySchema maps field
// names to typed, presence-annotated field schemas. Both keep first-seen
// insertion order so code emission is deterministic for a given input
// order.
//
// The computation is a pure fold. A Builder consumes one file's property
// bags and produces an isolated partial SchemaSet; Merge combines the
// partials left-to-right. Merge never mutates its inputs and never fails:
// type conflicts widen toward string and presence conflicts only narrow
// required to optional.
//
// Key types:
//   - FieldSchema, EntitySchema, SchemaSet: the model
//   - Builder: one file's bags -> partial SchemaSet
//   - Merge: partial SchemaSets -> canonical SchemaSet
package schema
