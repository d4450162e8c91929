package gen

import (
	"bsp-entity-generator/internal/classify"
)

// goType returns the generated Go type for a kind. Optional fields are
// lifted to pointers so "absent" stays distinguishable from the zero value.
func goType(kind classify.TypeKind, optional bool) string {
	var base string

	switch kind {
	case classify.KindBoolean:
		base = "bool"
	case classify.KindInteger:
		base = "int32"
	case classify.KindFloat:
		base = "float32"
	case classify.KindVector2:
		base = "mgl32.Vec2"
	case classify.KindVector3:
		base = "mgl32.Vec3"
	case classify.KindVector4:
		base = "mgl32.Vec4"
	default:
		base = "string"
	}

	if optional {
		return "*" + base
	}

	return base
}

// parseFunc returns the runtime helper that parses a raw value into the
// kind's Go type, or "" for plain strings, which need no parsing. prefix is
// the runtime package identifier in the generated file.
func parseFunc(kind classify.TypeKind, prefix string) string {
	switch kind {
	case classify.KindBoolean:
		return prefix + ".ParseBool"
	case classify.KindInteger:
		return prefix + ".ParseInt"
	case classify.KindFloat:
		return prefix + ".ParseFloat"
	case classify.KindVector2:
		return prefix + ".ParseVec2"
	case classify.KindVector3:
		return prefix + ".ParseVec3"
	case classify.KindVector4:
		return prefix + ".ParseVec4"
	default:
		return ""
	}
}
