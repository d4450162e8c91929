// Package keyvalues holds the entity property-bag model and the value
// grammar shared between schema inference and generated code.
//
// An Entity is one block of the entities lump: a classname plus the ordered
// key/value pairs observed in the file. The Parse* functions define what a
// boolean, integer, float or vector value looks like; the type inference
// engine probes these same functions, so a field inferred as Float is
// guaranteed to parse with ParseFloat at runtime.
//
// Key types:
//   - Entity, Prop: one property bag as read from a map file
//   - ParseBool, ParseInt, ParseFloat, ParseVec2/3/4: value parsers used by
//     generated code
//   - IsNumeric: the shared numeric token grammar
package keyvalues
