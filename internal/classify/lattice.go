package classify

type kindPair struct {
	a, b TypeKind
}

// widenTable is the complete pairwise merge table. The result of merging
// two kinds is the less specific of the two; the three vector arities are
// mutually incomparable, so differing arities fall all the way to string.
// Written out in full so the merge behavior is exhaustively checkable.
var widenTable = map[kindPair]TypeKind{
	// boolean row
	{KindBoolean, KindBoolean}: KindBoolean,
	{KindBoolean, KindInteger}: KindInteger,
	{KindBoolean, KindFloat}:   KindFloat,
	{KindBoolean, KindVector2}: KindVector2,
	{KindBoolean, KindVector3}: KindVector3,
	{KindBoolean, KindVector4}: KindVector4,
	{KindBoolean, KindString}:  KindString,

	// integer row
	{KindInteger, KindBoolean}: KindInteger,
	{KindInteger, KindInteger}: KindInteger,
	{KindInteger, KindFloat}:   KindFloat,
	{KindInteger, KindVector2}: KindVector2,
	{KindInteger, KindVector3}: KindVector3,
	{KindInteger, KindVector4}: KindVector4,
	{KindInteger, KindString}:  KindString,

	// float row
	{KindFloat, KindBoolean}: KindFloat,
	{KindFloat, KindInteger}: KindFloat,
	{KindFloat, KindFloat}:   KindFloat,
	{KindFloat, KindVector2}: KindVector2,
	{KindFloat, KindVector3}: KindVector3,
	{KindFloat, KindVector4}: KindVector4,
	{KindFloat, KindString}:  KindString,

	// vector2 row
	{KindVector2, KindBoolean}: KindVector2,
	{KindVector2, KindInteger}: KindVector2,
	{KindVector2, KindFloat}:   KindVector2,
	{KindVector2, KindVector2}: KindVector2,
	{KindVector2, KindVector3}: KindString,
	{KindVector2, KindVector4}: KindString,
	{KindVector2, KindString}:  KindString,

	// vector3 row
	{KindVector3, KindBoolean}: KindVector3,
	{KindVector3, KindInteger}: KindVector3,
	{KindVector3, KindFloat}:   KindVector3,
	{KindVector3, KindVector2}: KindString,
	{KindVector3, KindVector3}: KindVector3,
	{KindVector3, KindVector4}: KindString,
	{KindVector3, KindString}:  KindString,

	// vector4 row
	{KindVector4, KindBoolean}: KindVector4,
	{KindVector4, KindInteger}: KindVector4,
	{KindVector4, KindFloat}:   KindVector4,
	{KindVector4, KindVector2}: KindString,
	{KindVector4, KindVector3}: KindString,
	{KindVector4, KindVector4}: KindVector4,
	{KindVector4, KindString}:  KindString,

	// string row
	{KindString, KindBoolean}: KindString,
	{KindString, KindInteger}: KindString,
	{KindString, KindFloat}:   KindString,
	{KindString, KindVector2}: KindString,
	{KindString, KindVector3}: KindString,
	{KindString, KindVector4}: KindString,
	{KindString, KindString}:  KindString,
}

// Widen merges two kinds into the least specific of the two. It is
// commutative, associative and idempotent, and never produces a kind more
// specific than either input. Widen is total: pairs outside the table
// (invalid kinds) resolve to string, the top of the lattice.
func Widen(a, b TypeKind) TypeKind {
	if result, ok := widenTable[kindPair{a, b}]; ok {
		return result
	}

	return KindString
}
