package classify

import (
	"strings"

	"bsp-entity-generator/keyvalues"
	"bsp-entity-generator/utils"
)

// Supported vector arities. Arity is part of the type identity: "0 0" and
// "0 0 0" are different, incomparable kinds.
const (
	VectorMinArity = 2
	VectorMaxArity = 4
)

// Classify returns the most specific kind the raw value can be parsed as.
// Candidates are probed in specificity order and the first match wins, so
// "1" is a boolean (it is in the boolean literal set) while "2" is an
// integer. Classify is total: anything unparseable is a string.
//
// The probes are the keyvalues parse functions themselves, which keeps
// classification and runtime parseability in agreement.
func Classify(raw string) TypeKind {
	if _, err := keyvalues.ParseBool(raw); err == nil {
		return KindBoolean
	}

	if _, err := keyvalues.ParseInt(raw); err == nil {
		return KindInteger
	}

	if _, err := keyvalues.ParseFloat(raw); err == nil {
		return KindFloat
	}

	if k, ok := classifyVector(raw); ok {
		return k
	}

	return KindString
}

// classifyVector checks the vector candidates by ascending arity. The token
// count selects at most one arity; every token must independently satisfy
// the numeric grammar.
func classifyVector(raw string) (TypeKind, bool) {
	tokens := strings.Fields(raw)
	if !utils.IsInRange(VectorMinArity, len(tokens), VectorMaxArity) {
		return 0, false
	}

	for _, tok := range tokens {
		if !keyvalues.IsNumeric(tok) {
			return 0, false
		}
	}

	switch len(tokens) {
	case 2:
		return KindVector2, true
	case 3:
		return KindVector3, true
	default:
		return KindVector4, true
	}
}
