package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bsp-entity-generator/internal/classify"
)

// File A has light{brightness:"1"}; file B has light{brightness:"1.5",
// color:"255 0 0"}. The merged schema widens brightness to float and keeps
// it required; color is a vec3 that file A's instance lacked, so optional.
func TestMerge_WorkedExample_Light(t *testing.T) {
	fileA := buildPartial(entity("light", "brightness", "1"))
	fileB := buildPartial(entity("light", "brightness", "1.5", "color", "255 0 0"))

	merged := Merge([]*SchemaSet{fileA, fileB})

	class, ok := merged.Class("light")
	require.True(t, ok)
	assert.Equal(t, 2, class.Instances)

	brightness, ok := class.Field("brightness")
	require.True(t, ok)
	assert.Equal(t, classify.KindFloat, brightness.Type)
	assert.True(t, brightness.Required)

	color, ok := class.Field("color")
	require.True(t, ok)
	assert.Equal(t, classify.KindVector3, color.Type)
	assert.False(t, color.Required)
}

func TestMerge_SingleObservation(t *testing.T) {
	partial := buildPartial(entity("info_player_start", "origin", "0 0 0"))

	merged := Merge([]*SchemaSet{partial})

	class, ok := merged.Class("info_player_start")
	require.True(t, ok)
	require.Len(t, class.Fields, 1)

	origin := class.Fields[0]
	assert.Equal(t, "origin", origin.Name)
	assert.Equal(t, classify.KindVector3, origin.Type)
	assert.True(t, origin.Required)
}

func TestMerge_UnknownClassnameInserted(t *testing.T) {
	fileA := buildPartial(entity("light", "brightness", "1"))
	fileB := buildPartial(entity("info_player_start", "origin", "0 0 0"))

	merged := Merge([]*SchemaSet{fileA, fileB})

	require.Equal(t, 2, merged.Len())
	assert.Equal(t, "light", merged.Classes[0].Classname)
	assert.Equal(t, "info_player_start", merged.Classes[1].Classname)

	origin, _ := merged.Classes[1].Field("origin")
	assert.True(t, origin.Required, "arrival values are preserved for new classes")
}

// With the boolean literal set fixed to 0/no/1/yes, "true" is a plain
// string, so a field seen as "1" and "true" widens all the way to string.
func TestMerge_BooleanLiteralPolicy(t *testing.T) {
	fileA := buildPartial(entity("func_button", "locked", "1"))
	fileB := buildPartial(entity("func_button", "locked", "true"))

	merged := Merge([]*SchemaSet{fileA, fileB})

	locked, _ := mustClass(t, merged, "func_button").Field("locked")
	assert.Equal(t, classify.KindString, locked.Type)
	assert.True(t, locked.Required, "present in both instances")
}

func TestMerge_AbsentFieldFlipsOptional(t *testing.T) {
	fileA := buildPartial(entity("light", "style", "1"))
	fileB := buildPartial(entity("light", "brightness", "200"))

	merged := Merge([]*SchemaSet{fileA, fileB})
	class := mustClass(t, merged, "light")

	style, _ := class.Field("style")
	assert.False(t, style.Required, "file B's instance lacked it")

	brightness, _ := class.Field("brightness")
	assert.False(t, brightness.Required, "file A's instance lacked it")
}

func TestMerge_ZeroFieldObservationFlips(t *testing.T) {
	fileA := buildPartial(entity("light", "origin", "0 0 0"))
	fileB := buildPartial(entity("light"))

	merged := Merge([]*SchemaSet{fileA, fileB})
	class := mustClass(t, merged, "light")
	assert.Equal(t, 2, class.Instances)

	origin, _ := class.Field("origin")
	assert.False(t, origin.Required)
}

func TestMerge_ClassAbsentFromPartialUntouched(t *testing.T) {
	fileA := buildPartial(entity("light", "origin", "0 0 0"))
	fileB := buildPartial(entity("info_player_start", "origin", "0 0 0"))

	merged := Merge([]*SchemaSet{fileA, fileB})

	origin, _ := mustClass(t, merged, "light").Field("origin")
	assert.True(t, origin.Required, "file B never observed this classname")
}

func TestMerge_EmptyInput(t *testing.T) {
	merged := Merge(nil)
	require.NotNil(t, merged)
	assert.Equal(t, 0, merged.Len())

	merged = Merge([]*SchemaSet{})
	require.NotNil(t, merged)
	assert.Equal(t, 0, merged.Len())

	merged = Merge([]*SchemaSet{NewSchemaSet(), nil, NewSchemaSet()})
	require.NotNil(t, merged)
	assert.Equal(t, 0, merged.Len())
}

func TestMerge_AppendOrdering(t *testing.T) {
	fileA := buildPartial(entity("light", "b", "1", "a", "2"))
	fileB := buildPartial(entity("light", "c", "3", "a", "4"))

	merged := Merge([]*SchemaSet{fileA, fileB})

	names := []string{}
	for _, f := range mustClass(t, merged, "light").Fields {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"b", "a", "c"}, names)
}

func TestMerge_DoesNotMutateInputs(t *testing.T) {
	fileA := buildPartial(entity("light", "brightness", "1"))
	fileB := buildPartial(entity("light", "brightness", "1.5", "color", "255 0 0"))

	before := viewOf(fileA)
	_ = Merge([]*SchemaSet{fileA, fileB})

	assert.Equal(t, before, viewOf(fileA))

	brightness, _ := mustClass(t, fileA, "light").Field("brightness")
	assert.Equal(t, classify.KindBoolean, brightness.Type, "partial keeps its own view")
}

func mustClass(t *testing.T, set *SchemaSet, name string) *EntitySchema {
	t.Helper()

	class, ok := set.Class(name)
	require.True(t, ok, "classname %q missing", name)

	return class
}
