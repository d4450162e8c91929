package schema

import (
	"bsp-entity-generator/internal/classify"
)

// Merge folds partial schema sets left-to-right into the canonical set.
// Input order matters only for first-seen ordering of classnames and
// fields; the inferred types and required flags are independent of it.
// Merge never fails and never mutates its inputs. Zero partials produce an
// empty, non-nil set.
func Merge(partials []*SchemaSet) *SchemaSet {
	acc := NewSchemaSet()

	for _, partial := range partials {
		if partial == nil {
			continue
		}

		mergeInto(acc, partial)
	}

	return acc
}

func mergeInto(acc, partial *SchemaSet) {
	for _, in := range partial.Classes {
		current, ok := acc.Class(in.Classname)
		if !ok {
			acc.addClass(in.clone())

			continue
		}

		mergeClass(current, in)
	}
}

// mergeClass folds one partial's view of a classname into the accumulated
// one. The rules, in order:
//   - fields present in both widen their type, AND their required flags and
//     sum their seen counts;
//   - fields the accumulator has but this partial's occurrences lack flip
//     to optional;
//   - fields new to the accumulator append at the end, demoted to optional
//     when the class had prior instances without them.
func mergeClass(acc, in *EntitySchema) {
	priorInstances := acc.Instances
	acc.Instances += in.Instances

	for _, field := range in.Fields {
		existing, ok := acc.Field(field.Name)
		if !ok {
			copied := *field
			if priorInstances > 0 {
				copied.Required = false
			}
			acc.addField(&copied)

			continue
		}

		existing.Type = classify.Widen(existing.Type, field.Type)
		existing.Required = existing.Required && field.Required
		existing.Seen += field.Seen
	}

	for _, existing := range acc.Fields {
		if _, ok := in.Field(existing.Name); !ok {
			existing.Required = false
		}
	}
}
