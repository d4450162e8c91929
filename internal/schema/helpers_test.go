package schema

import (
	"bsp-entity-generator/keyvalues"
)

// entity builds a property bag from alternating key/value pairs.
func entity(classname string, pairs ...string) keyvalues.Entity {
	if len(pairs)%2 != 0 {
		panic("entity: odd key/value list")
	}

	e := keyvalues.Entity{Classname: classname}
	for i := 0; i < len(pairs); i += 2 {
		e.Props = append(e.Props, keyvalues.Prop{Key: pairs[i], Value: pairs[i+1]})
	}

	return e
}

// buildPartial runs one builder over the given bags, as the pipeline does
// for a single file.
func buildPartial(entities ...keyvalues.Entity) *SchemaSet {
	b := NewBuilder(BuilderConfig{})
	for _, e := range entities {
		b.Observe(e)
	}

	return b.Finish()
}

// fieldView is the order-insensitive value of one field, for comparing
// merge results across input permutations.
type fieldView struct {
	Type      string
	Required  bool
	Seen      int
	Instances int
}

// viewOf flattens a schema set into (classname, field) -> values.
func viewOf(set *SchemaSet) map[[2]string]fieldView {
	out := make(map[[2]string]fieldView)

	for _, class := range set.Classes {
		for _, f := range class.Fields {
			out[[2]string{class.Classname, f.Name}] = fieldView{
				Type:      f.Type.Name(),
				Required:  f.Required,
				Seen:      f.Seen,
				Instances: class.Instances,
			}
		}
	}

	return out
}
