package schema

import (
	"bsp-entity-generator/internal/classify"
	"bsp-entity-generator/keyvalues"
)

// DefaultSkipKeys are property keys that never become schema fields:
// "classname" carries the entity's type and "hammerid" is editor
// bookkeeping.
func DefaultSkipKeys() []string {
	return []string{"classname", "hammerid"}
}

// BuilderConfig configures a per-file schema builder.
type BuilderConfig struct {
	// Classify maps a raw value to its kind. Nil means classify.Classify.
	Classify func(string) classify.TypeKind
	// SkipKeys are property keys excluded from schemas. Nil means
	// DefaultSkipKeys; an explicit empty slice skips nothing.
	SkipKeys []string
}

// Builder folds one file's property bags into a partial SchemaSet. A
// builder serves exactly one file; the partial it produces is merged with
// the other files' partials by Merge.
type Builder struct {
	classify func(string) classify.TypeKind
	skip     map[string]struct{}
	set      *SchemaSet
}

// NewBuilder creates a builder with the given configuration.
func NewBuilder(cfg BuilderConfig) *Builder {
	classifyFn := cfg.Classify
	if classifyFn == nil {
		classifyFn = classify.Classify
	}

	skipKeys := cfg.SkipKeys
	if skipKeys == nil {
		skipKeys = DefaultSkipKeys()
	}

	skip := make(map[string]struct{}, len(skipKeys))
	for _, k := range skipKeys {
		skip[k] = struct{}{}
	}

	return &Builder{
		classify: classifyFn,
		skip:     skip,
		set:      NewSchemaSet(),
	}
}

// Observe folds one property bag into the partial schema. The first sight
// of a key creates its field as required; later sights widen the type.
// Bags without a classname are ignored (the reader warns about them
// upstream).
func (b *Builder) Observe(e keyvalues.Entity) {
	if e.Classname == "" {
		return
	}

	class := b.set.ensureClass(e.Classname)
	class.Instances++

	for _, p := range e.Props {
		if _, skip := b.skip[p.Key]; skip {
			continue
		}

		field, ok := class.Field(p.Key)
		if !ok {
			class.addField(&FieldSchema{
				Name:     p.Key,
				Type:     b.classify(p.Value),
				Required: true,
				Seen:     1,
			})

			continue
		}

		field.Type = classify.Widen(field.Type, b.classify(p.Value))
		field.Seen++
	}
}

// Finish demotes every field that was absent from at least one of its
// class's instances to optional, and returns the partial set. The builder
// must not be observed into afterwards.
func (b *Builder) Finish() *SchemaSet {
	for _, class := range b.set.Classes {
		for _, field := range class.Fields {
			if field.Seen < class.Instances {
				field.Required = false
			}
		}
	}

	return b.set
}
