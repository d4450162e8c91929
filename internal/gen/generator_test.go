package gen

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bsp-entity-generator/internal/schema"
	"bsp-entity-generator/keyvalues"
)

// inferredSet builds a schema with a float, an optional vector and a
// required vector across two classnames.
func inferredSet(t *testing.T) *schema.SchemaSet {
	t.Helper()

	b := schema.NewBuilder(schema.BuilderConfig{})
	b.Observe(keyvalues.Entity{Classname: "light", Props: []keyvalues.Prop{
		{Key: "brightness", Value: "1"},
		{Key: "color", Value: "255 255 255"},
	}})
	b.Observe(keyvalues.Entity{Classname: "light", Props: []keyvalues.Prop{
		{Key: "brightness", Value: "1.5"},
	}})
	b.Observe(keyvalues.Entity{Classname: "info_player_start", Props: []keyvalues.Prop{
		{Key: "origin", Value: "0 0 64"},
	}})

	return b.Finish()
}

func TestGenerate(t *testing.T) {
	gen := NewGenerator(DefaultConfig())

	files, err := gen.Generate(inferredSet(t))
	require.NoError(t, err)
	require.Len(t, files, 1)

	spew.Dump(files)

	assert.Equal(t, "entities.go", files[0].Filename)

	content := string(files[0].Content)

	assert.Contains(t, content, "// Code generated by bsp-entity-generator. DO NOT EDIT.")
	assert.Contains(t, content, "package entities")

	// Imports: runtime always, mgl32 for the vectors, errors for the
	// required fields.
	assert.Contains(t, content, `"bsp-entity-generator/keyvalues"`)
	assert.Contains(t, content, `"github.com/go-gl/mathgl/mgl32"`)
	assert.Contains(t, content, `"errors"`)

	// Dispatch covers both classnames.
	assert.Contains(t, content, `case "light":`)
	assert.Contains(t, content, "return ParseLight(e)")
	assert.Contains(t, content, `case "info_player_start":`)
	assert.Contains(t, content, "return ParseInfoPlayerStart(e)")
	assert.Contains(t, content, `return nil, fmt.Errorf("unknown classname %q", e.Classname)`)

	// Structs: brightness widened to float, color optional so lifted to a
	// pointer with a coverage note.
	assert.Contains(t, content, "type Light struct {")
	assert.Contains(t, content, "Brightness float32")
	assert.Contains(t, content, "Color      *mgl32.Vec3")
	assert.Contains(t, content, "optional, seen in 1 of 2 instances")
	assert.Contains(t, content, "type InfoPlayerStart struct {")
	assert.Contains(t, content, "Origin mgl32.Vec3")

	assert.Contains(t, content, `func (*Light) Classname() string { return "light" }`)

	// Parse functions: required fields error when absent, optional fields
	// assign through a pointer.
	assert.Contains(t, content, "func ParseLight(e keyvalues.Entity) (*Light, error) {")
	assert.Contains(t, content, `if raw, ok := e.Get("brightness"); ok {`)
	assert.Contains(t, content, "v, err := keyvalues.ParseFloat(raw)")
	assert.Contains(t, content, "out.Brightness = v")
	assert.Contains(t, content, `light: missing required key \"brightness\"`)
	assert.Contains(t, content, "v, err := keyvalues.ParseVec3(raw)")
	assert.Contains(t, content, "out.Color = &v")
}

func TestGenerate_Deterministic(t *testing.T) {
	gen := NewGenerator(DefaultConfig())

	first, err := gen.Generate(inferredSet(t))
	require.NoError(t, err)

	second, err := gen.Generate(inferredSet(t))
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestGenerate_EmptySet(t *testing.T) {
	gen := NewGenerator(DefaultConfig())

	files, err := gen.Generate(schema.NewSchemaSet())
	require.NoError(t, err)
	require.Len(t, files, 1)

	content := string(files[0].Content)

	assert.Contains(t, content, "type Entity interface {")
	assert.Contains(t, content, "unknown classname")
	assert.NotContains(t, content, `"errors"`)
	assert.NotContains(t, content, "mgl32")
}

func TestGenerate_StringFields(t *testing.T) {
	b := schema.NewBuilder(schema.BuilderConfig{})
	b.Observe(keyvalues.Entity{Classname: "trigger_once", Props: []keyvalues.Prop{
		{Key: "targetname", Value: "relay_1"},
	}})
	b.Observe(keyvalues.Entity{Classname: "trigger_once", Props: []keyvalues.Prop{
		{Key: "targetname", Value: "relay_2"},
		{Key: "filtername", Value: "player_filter"},
	}})

	gen := NewGenerator(DefaultConfig())

	files, err := gen.Generate(b.Finish())
	require.NoError(t, err)

	content := string(files[0].Content)

	// Strings assign the raw value directly, optionals via pointer.
	assert.Contains(t, content, "Targetname string")
	assert.Contains(t, content, "Filtername *string")
	assert.Contains(t, content, "out.Targetname = raw")
	assert.Contains(t, content, "out.Filtername = &raw")
	assert.NotContains(t, content, "mgl32")
}

func TestGenerate_NameCollisions(t *testing.T) {
	b := schema.NewBuilder(schema.BuilderConfig{})
	b.Observe(keyvalues.Entity{Classname: "func_door", Props: []keyvalues.Prop{
		{Key: "speed", Value: "100"},
	}})
	b.Observe(keyvalues.Entity{Classname: "FuncDoor", Props: []keyvalues.Prop{
		{Key: "Classname", Value: "shadowed"},
	}})

	gen := NewGenerator(DefaultConfig())

	files, err := gen.Generate(b.Finish())
	require.NoError(t, err)

	content := string(files[0].Content)

	// Both classnames sanitize to FuncDoor; the second gets a suffix, and
	// its raw "Classname" key must not collide with the method.
	assert.Contains(t, content, "type FuncDoor struct {")
	assert.Contains(t, content, "type FuncDoor2 struct {")
	assert.Contains(t, content, "func ParseFuncDoor2(e keyvalues.Entity) (*FuncDoor2, error) {")
	assert.Contains(t, content, "Classname2 string")
	assert.Contains(t, content, `func (*FuncDoor2) Classname() string { return "FuncDoor" }`)
}

func TestGenerate_RuntimeAlias(t *testing.T) {
	config := DefaultConfig()
	config.RuntimeImport = "gopkg.in/kv.v2"

	b := schema.NewBuilder(schema.BuilderConfig{})
	b.Observe(keyvalues.Entity{Classname: "light", Props: []keyvalues.Prop{
		{Key: "brightness", Value: "1.5"},
	}})

	files, err := NewGenerator(config).Generate(b.Finish())
	require.NoError(t, err)

	content := string(files[0].Content)

	assert.Contains(t, content, `kvv2 "gopkg.in/kv.v2"`)
	assert.Contains(t, content, "func Parse(e kvv2.Entity) (Entity, error) {")
	assert.Contains(t, content, "v, err := kvv2.ParseFloat(raw)")
}

func TestGenerate_NoComments(t *testing.T) {
	config := DefaultConfig()
	config.GenerateComments = false

	files, err := NewGenerator(config).Generate(inferredSet(t))
	require.NoError(t, err)

	content := string(files[0].Content)

	assert.NotContains(t, content, "optional, seen in")
	assert.NotContains(t, content, "// Light is entity class")
	// The fixed header and interface docs stay.
	assert.Contains(t, content, "// Code generated by bsp-entity-generator. DO NOT EDIT.")
}

func TestWriteFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")

	files := []GeneratedFile{
		{Filename: "entities.go", Content: []byte("package entities\n")},
	}

	require.NoError(t, WriteFiles(files, dir))

	content, err := os.ReadFile(filepath.Join(dir, "entities.go"))
	require.NoError(t, err)
	assert.Equal(t, "package entities\n", string(content))
}

func TestWriteTo(t *testing.T) {
	var sb strings.Builder

	files := []GeneratedFile{
		{Filename: "a.go", Content: []byte("package a\n")},
		{Filename: "b.go", Content: []byte("package b\n")},
	}

	require.NoError(t, WriteTo(&sb, files))
	assert.Equal(t, "package a\npackage b\n", sb.String())
}
