package classify

import "bsp-entity-generator/internal/common"

//go:generate go tool stringer -type=TypeKind -output=kind_string.go

// TypeKind is the inferred type of an entity value. Declaration order is
// specificity order, most specific first; the three vector arities occupy
// one specificity level and are mutually incomparable.
type TypeKind int

const (
	_ TypeKind = iota // skip zero value, use it as a default (invalid) value for TypeKind

	KindBoolean
	KindInteger
	KindFloat
	KindVector2
	KindVector3
	KindVector4
	KindString

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// kindNames maps kinds to the short lowercase names used in override files
// and reports.
var kindNames = map[TypeKind]string{
	KindBoolean: "bool",
	KindInteger: "int",
	KindFloat:   "float",
	KindVector2: "vec2",
	KindVector3: "vec3",
	KindVector4: "vec4",
	KindString:  "string",
}

// IsValid reports whether k is one of the defined kinds.
func (k TypeKind) IsValid() bool {
	return k > 0 && int(k) < KindTotal
}

// IsVector reports whether k is one of the vector kinds.
func (k TypeKind) IsVector() bool {
	switch k {
	default:
		return false
	case KindVector2, KindVector3, KindVector4:
		return true
	}
}

// Arity returns the component count of a vector kind.
func (k TypeKind) Arity() int {
	switch k {
	default:
		panic("only vector kinds have an arity, but requested for: " + k.String())
	case KindVector2:
		return 2
	case KindVector3:
		return 3
	case KindVector4:
		return 4
	}
}

// Name returns the short lowercase name of the kind ("bool", "vec3", ...).
func (k TypeKind) Name() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return common.UnknownStr
}

// KindFromName resolves a short lowercase name back to its kind.
func KindFromName(name string) (TypeKind, bool) {
	for k, n := range kindNames {
		if n == name {
			return k, true
		}
	}

	return 0, false
}

// rank is the specificity level of a kind: higher means less specific. All
// vector arities share one level.
func (k TypeKind) rank() int {
	switch k {
	case KindBoolean:
		return 1
	case KindInteger:
		return 2
	case KindFloat:
		return 3
	case KindVector2, KindVector3, KindVector4:
		return 4
	case KindString:
		return 5
	default:
		return 0
	}
}
