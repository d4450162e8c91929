package keyvalues

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// Boolean literal sets. Entity values never spell booleans as "true" or
// "false"; the map compiler writes "0"/"1" and some editor keys use
// "no"/"yes". Matching is exact and case-sensitive.
var (
	falseLiterals = map[string]struct{}{"0": {}, "no": {}}
	trueLiterals  = map[string]struct{}{"1": {}, "yes": {}}
)

// ParseBool parses a boolean entity value. Accepted literals are exactly
// "0" and "no" for false, "1" and "yes" for true.
func ParseBool(s string) (bool, error) {
	if _, ok := trueLiterals[s]; ok {
		return true, nil
	}
	if _, ok := falseLiterals[s]; ok {
		return false, nil
	}

	return false, fmt.Errorf("not a boolean literal: %q", s)
}

// ParseInt parses a signed base-10 integer entity value. Entity data is
// 32-bit, so values outside the int32 range are rejected.
func ParseInt(s string) (int32, error) {
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("not an integer: %q", s)
	}

	return int32(n), nil
}

// ParseFloat parses a decimal float entity value: optional sign, digits
// with an optional fraction, optional e/E exponent. The hex float, Inf and
// NaN spellings accepted by strconv are not part of the entity grammar.
func ParseFloat(s string) (float32, error) {
	if !IsNumeric(s) {
		return 0, fmt.Errorf("not a number: %q", s)
	}

	f, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", s)
	}

	return float32(f), nil
}

// IsNumeric reports whether s satisfies the numeric token grammar shared by
// integers, floats and vector components.
func IsNumeric(s string) bool {
	if s == "" {
		return false
	}

	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c >= '0' && c <= '9':
		case c == '+' || c == '-' || c == '.' || c == 'e' || c == 'E':
		default:
			return false
		}
	}

	_, err := strconv.ParseFloat(s, 32)

	return err == nil
}

// ParseVec2 parses two whitespace-separated numeric tokens.
func ParseVec2(s string) (mgl32.Vec2, error) {
	f, err := parseVector(s, 2)
	if err != nil {
		return mgl32.Vec2{}, err
	}

	return mgl32.Vec2{f[0], f[1]}, nil
}

// ParseVec3 parses three whitespace-separated numeric tokens.
func ParseVec3(s string) (mgl32.Vec3, error) {
	f, err := parseVector(s, 3)
	if err != nil {
		return mgl32.Vec3{}, err
	}

	return mgl32.Vec3{f[0], f[1], f[2]}, nil
}

// ParseVec4 parses four whitespace-separated numeric tokens.
func ParseVec4(s string) (mgl32.Vec4, error) {
	f, err := parseVector(s, 4)
	if err != nil {
		return mgl32.Vec4{}, err
	}

	return mgl32.Vec4{f[0], f[1], f[2], f[3]}, nil
}

func parseVector(s string, arity int) ([]float32, error) {
	tokens := strings.Fields(s)
	if len(tokens) != arity {
		return nil, fmt.Errorf("not a %d-component vector: %q", arity, s)
	}

	out := make([]float32, arity)
	for i, tok := range tokens {
		f, err := ParseFloat(tok)
		if err != nil {
			return nil, fmt.Errorf("not a %d-component vector: %q", arity, s)
		}
		out[i] = f
	}

	return out, nil
}
