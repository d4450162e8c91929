package schema

import (
	"bsp-entity-generator/internal/classify"
)

// FieldSchema is the inferred schema of one property key within one
// classname.
type FieldSchema struct {
	// Name is the raw property key as it appears in the map file.
	Name string
	// Type is the widened kind covering every value observed for this key.
	Type classify.TypeKind
	// Required is true while the key has been present in every observed
	// instance of the classname. It can flip to false, never back.
	Required bool
	// Seen counts the instances that carried the key.
	Seen int
}

// EntitySchema is the inferred schema of one classname. Fields keep
// first-seen order.
type EntitySchema struct {
	// Classname is case-sensitive, exactly as written in the map file.
	Classname string
	// Fields in first-seen order across all observations.
	Fields []*FieldSchema
	// Instances counts the observed property bags of this classname.
	Instances int

	index map[string]int
}

func newEntitySchema(classname string) *EntitySchema {
	return &EntitySchema{
		Classname: classname,
		index:     make(map[string]int),
	}
}

// Field returns the schema of the named field, if present.
func (s *EntitySchema) Field(name string) (*FieldSchema, bool) {
	i, ok := s.index[name]
	if !ok {
		return nil, false
	}

	return s.Fields[i], true
}

func (s *EntitySchema) addField(f *FieldSchema) {
	s.index[f.Name] = len(s.Fields)
	s.Fields = append(s.Fields, f)
}

func (s *EntitySchema) clone() *EntitySchema {
	out := newEntitySchema(s.Classname)
	out.Instances = s.Instances

	for _, f := range s.Fields {
		copied := *f
		out.addField(&copied)
	}

	return out
}

// SchemaSet is the full inference result: every observed classname in
// first-seen order. Once a class is created it is never removed.
type SchemaSet struct {
	// Classes in first-seen order across the whole input batch.
	Classes []*EntitySchema

	index map[string]int
}

// NewSchemaSet returns an empty schema set.
func NewSchemaSet() *SchemaSet {
	return &SchemaSet{index: make(map[string]int)}
}

// Class returns the schema of the named classname, if present.
func (s *SchemaSet) Class(name string) (*EntitySchema, bool) {
	i, ok := s.index[name]
	if !ok {
		return nil, false
	}

	return s.Classes[i], true
}

// Len returns the number of classnames in the set.
func (s *SchemaSet) Len() int {
	return len(s.Classes)
}

func (s *SchemaSet) addClass(class *EntitySchema) {
	s.index[class.Classname] = len(s.Classes)
	s.Classes = append(s.Classes, class)
}

func (s *SchemaSet) ensureClass(name string) *EntitySchema {
	if class, ok := s.Class(name); ok {
		return class
	}

	class := newEntitySchema(name)
	s.addClass(class)

	return class
}
