package override

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"bsp-entity-generator/internal/classify"
)

// Overrides pins field types that inference cannot recover, typically taken
// from game SDK headers.
type Overrides struct {
	// Global applies to the named field in every class.
	Global map[string]TypeName `yaml:"global"`
	// Classes applies to one classname and wins over Global.
	Classes map[string]map[string]TypeName `yaml:"classes"`
}

// IsEmpty returns true if the overrides declare nothing.
func (o *Overrides) IsEmpty() bool {
	return o == nil || (len(o.Global) == 0 && len(o.Classes) == 0)
}

// TypeName is a declared field type in an override file, written with the
// short kind names ("bool", "int", "float", "vec2", "vec3", "vec4",
// "string").
type TypeName classify.TypeKind

// Kind returns the declared kind.
func (n TypeName) Kind() classify.TypeKind {
	return classify.TypeKind(n)
}

// UnmarshalYAML implements custom YAML unmarshaling for TypeName.
// Accepts a single scalar kind name.
func (n *TypeName) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var s string

		err := node.Decode(&s)
		if err != nil {
			return err
		}

		kind, ok := classify.KindFromName(s)
		if !ok {
			return fmt.Errorf("line %d: unknown type name %q (want bool, int, float, vec2, vec3, vec4 or string)", node.Line, s)
		}

		*n = TypeName(kind)

		return nil

	default:
		return fmt.Errorf("line %d: expected a type name, got %v", node.Line, node.Kind)
	}
}
