package bsp

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"bsp-entity-generator/internal/diagnostic"
	"bsp-entity-generator/keyvalues"
)

// ClassnameKey is the reserved key naming each bag's entity class.
const ClassnameKey = "classname"

// scanEntities parses the text form of the entities lump: a sequence of
// `{ "key" "value" ... }` blocks. Structural damage is a hard error;
// recoverable oddities (duplicate keys, empty keys, classless bags) become
// diagnostics.
func scanEntities(text, source string) ([]keyvalues.Entity, *diagnostic.Diagnostics, error) {
	diags := &diagnostic.Diagnostics{}

	var entities []keyvalues.Entity

	pos := 0
	for index := 0; ; index++ {
		pos = skipSpace(text, pos)
		if pos >= len(text) {
			return entities, diags, nil
		}

		if text[pos] != '{' {
			return nil, nil, errors.Errorf("%s: unexpected %q at offset %d, want '{'", source, text[pos], pos)
		}

		pairs, next, err := scanBlock(text, pos+1, source)
		if err != nil {
			return nil, nil, err
		}
		pos = next

		if ent, ok := buildEntity(pairs, source, index, diags); ok {
			entities = append(entities, ent)
		}
	}
}

// scanBlock collects the raw quoted pairs of one block, duplicates
// included, with pos just past the opening brace.
func scanBlock(text string, pos int, source string) ([]keyvalues.Prop, int, error) {
	var pairs []keyvalues.Prop

	for {
		pos = skipSpace(text, pos)
		if pos >= len(text) {
			return nil, 0, errors.Errorf("%s: unterminated block at end of lump", source)
		}

		switch text[pos] {
		case '}':
			return pairs, pos + 1, nil
		case '"':
			key, next, err := scanQuoted(text, pos, source)
			if err != nil {
				return nil, 0, err
			}

			pos = skipSpace(text, next)
			if pos >= len(text) || text[pos] != '"' {
				return nil, 0, errors.Errorf("%s: key %q missing value at offset %d", source, key, pos)
			}

			value, next2, err := scanQuoted(text, pos, source)
			if err != nil {
				return nil, 0, err
			}
			pos = next2

			pairs = append(pairs, keyvalues.Prop{Key: key, Value: value})
		default:
			return nil, 0, errors.Errorf("%s: unexpected %q at offset %d in block", source, text[pos], pos)
		}
	}
}

// scanQuoted reads a quoted string with pos at the opening quote. Values
// never contain escaped quotes in this format.
func scanQuoted(text string, pos int, source string) (string, int, error) {
	start := pos + 1

	end := strings.IndexByte(text[start:], '"')
	if end < 0 {
		return "", 0, errors.Errorf("%s: unterminated quoted string at offset %d", source, pos)
	}

	return text[start : start+end], start + end + 1, nil
}

// buildEntity turns one block's raw pairs into an entity, dropping bags
// without a usable classname. The first occurrence of a duplicated key
// wins.
func buildEntity(pairs []keyvalues.Prop, source string, index int, diags *diagnostic.Diagnostics) (keyvalues.Entity, bool) {
	classname := ""
	for _, p := range pairs {
		if p.Key == ClassnameKey {
			classname = p.Value
			break
		}
	}

	if classname == "" {
		diags.AddWarning("missing_classname",
			fmt.Sprintf("entity %d has no usable classname, skipped", index), source, "")

		return keyvalues.Entity{}, false
	}

	ent := keyvalues.Entity{Classname: classname}
	seen := make(map[string]bool, len(pairs))

	for _, p := range pairs {
		if p.Key == "" {
			diags.AddWarning("empty_key",
				fmt.Sprintf("entity %d has a pair with an empty key, dropped", index), source, classname)

			continue
		}

		if seen[p.Key] {
			diags.AddWarning("duplicate_key",
				fmt.Sprintf("entity %d repeats key %q, first value kept", index, p.Key),
				source, classname+"."+p.Key)

			continue
		}
		seen[p.Key] = true

		ent.Props = append(ent.Props, p)
	}

	return ent, true
}

func skipSpace(text string, pos int) int {
	for pos < len(text) {
		switch text[pos] {
		case ' ', '\t', '\r', '\n':
			pos++
		default:
			return pos
		}
	}

	return pos
}
