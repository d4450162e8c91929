package override

import (
	"fmt"
	"maps"
	"slices"

	"bsp-entity-generator/internal/diagnostic"
	"bsp-entity-generator/internal/match"
	"bsp-entity-generator/internal/schema"
)

// Apply rewrites inferred field types with declared ones. Per-class entries
// win over global ones. Entries naming an unobserved classname or field are
// diagnostics, never errors; the schema must stay usable with a stale
// overrides file. source labels the diagnostics, typically the overrides
// file path.
func Apply(set *schema.SchemaSet, o *Overrides, source string) *diagnostic.Diagnostics {
	diags := &diagnostic.Diagnostics{}
	if set == nil || o.IsEmpty() {
		return diags
	}

	globalHits := make(map[string]bool, len(o.Global))

	for _, class := range set.Classes {
		classOverrides := o.Classes[class.Classname]

		for _, field := range class.Fields {
			if _, ok := o.Global[field.Name]; ok {
				globalHits[field.Name] = true
			}

			declared, ok := classOverrides[field.Name]
			if !ok {
				declared, ok = o.Global[field.Name]
			}
			if !ok {
				continue
			}

			if field.Type == declared.Kind() {
				diags.AddInfo("override_redundant",
					fmt.Sprintf("declared type %s was already inferred", declared.Kind().Name()),
					source, class.Classname+"."+field.Name)

				continue
			}

			field.Type = declared.Kind()
		}
	}

	reportMisses(set, o, globalHits, source, diags)

	return diags
}

// reportMisses warns about override entries that matched nothing, attaching
// a closest-name hint when one scores high enough. Keys are sorted so
// diagnostics come out in a stable order.
func reportMisses(set *schema.SchemaSet, o *Overrides, globalHits map[string]bool, source string, diags *diagnostic.Diagnostics) {
	allFields := fieldNames(set)

	for _, key := range slices.Sorted(maps.Keys(o.Global)) {
		if !globalHits[key] {
			diags.AddWarning("override_unknown_field",
				fmt.Sprintf("global override %q matches no observed field%s", key, hint(key, allFields)),
				source, key)
		}
	}

	for _, classname := range slices.Sorted(maps.Keys(o.Classes)) {
		class, ok := set.Class(classname)
		if !ok {
			diags.AddWarning("override_unknown_class",
				fmt.Sprintf("override block %q matches no observed classname%s", classname, hint(classname, classnames(set))),
				source, classname)

			continue
		}

		for _, key := range slices.Sorted(maps.Keys(o.Classes[classname])) {
			if _, ok := class.Field(key); !ok {
				diags.AddWarning("override_unknown_field",
					fmt.Sprintf("override %q matches no observed field of %q%s", key, classname, hint(key, fieldsOf(class))),
					source, classname+"."+key)
			}
		}
	}
}

// hint formats a did-you-mean suffix, or "" when no candidate is close.
func hint(target string, candidates []string) string {
	nearest, ok := match.Nearest(target, candidates, match.DefaultMinScore)
	if !ok {
		return ""
	}

	return fmt.Sprintf(" (did you mean %q)", nearest)
}

// fieldNames collects every observed field name across classes, first seen
// order, without duplicates.
func fieldNames(set *schema.SchemaSet) []string {
	seen := make(map[string]bool)

	var names []string

	for _, class := range set.Classes {
		for _, field := range class.Fields {
			if !seen[field.Name] {
				seen[field.Name] = true
				names = append(names, field.Name)
			}
		}
	}

	return names
}

func classnames(set *schema.SchemaSet) []string {
	names := make([]string, len(set.Classes))
	for i, class := range set.Classes {
		names[i] = class.Classname
	}

	return names
}

func fieldsOf(class *schema.EntitySchema) []string {
	names := make([]string, len(class.Fields))
	for i, field := range class.Fields {
		names[i] = field.Name
	}

	return names
}
