package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"sort"
	"strconv"
	"strings"
	"text/template"
	"unicode"

	"bsp-entity-generator/internal/common"
	"bsp-entity-generator/internal/schema"
)

// Config holds configuration for code generation.
type Config struct {
	// PackageName is the name of the generated package.
	PackageName string
	// OutputDir is the directory where generated files are written. Empty
	// means the caller streams the output elsewhere.
	OutputDir string
	// RuntimeImport is the import path of the package providing the parse
	// helpers and the property bag type.
	RuntimeImport string
	// GenerateComments enables doc comments on generated declarations.
	GenerateComments bool
}

// DefaultConfig returns the default generator configuration.
func DefaultConfig() Config {
	return Config{
		PackageName:      "entities",
		RuntimeImport:    "bsp-entity-generator/keyvalues",
		GenerateComments: true,
	}
}

// Generator generates Go code from an inferred schema set.
type Generator struct {
	config Config
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config Config) *Generator {
	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g. "entities.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Generate emits the structs and parse functions for every class in the
// set, in the set's first-seen order.
func (g *Generator) Generate(set *schema.SchemaSet) ([]GeneratedFile, error) {
	data := g.buildTemplateData(set)

	var buf bytes.Buffer
	if err := entitiesTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		// Keep the broken code inspectable: sidecar on disk, raw bytes in
		// the return value.
		if g.config.OutputDir != "" {
			_ = writeDebugUnformatted(g.config.OutputDir, data.Filename, buf.Bytes())
		}

		return []GeneratedFile{{
			Filename: data.Filename,
			Content:  buf.Bytes(),
		}}, fmt.Errorf("formatting code: %w (unformatted code returned)", err)
	}

	return []GeneratedFile{{
		Filename: data.Filename,
		Content:  formatted,
	}}, nil
}

// templateData holds all data needed for the entities template.
type templateData struct {
	PackageName      string
	Filename         string
	Imports          []importSpec
	Runtime          string
	Entities         []entityData
	GenerateComments bool
}

// importSpec represents an import statement.
type importSpec struct {
	Alias string
	Path  string
}

// entityData is one generated struct with its parse function.
type entityData struct {
	TypeName     string
	ParseName    string
	ClassnameLit string
	Instances    int
	Fields       []fieldData
}

// fieldData is a single struct field plus the strings its parse block
// needs, pre-quoted where they land in string literal position.
type fieldData struct {
	Name       string
	KeyLit     string
	Type       string
	ParseFunc  string
	Required   bool
	Pointer    bool
	LabelLit   string
	MissingLit string
	Comment    string
}

// buildTemplateData constructs the template data from a schema set.
func (g *Generator) buildTemplateData(set *schema.SchemaSet) *templateData {
	runtimePrefix, runtimeSpec := runtimeImport(g.config.RuntimeImport)

	data := &templateData{
		PackageName:      g.config.PackageName,
		Filename:         g.config.PackageName + ".go",
		Runtime:          runtimePrefix,
		GenerateComments: g.config.GenerateComments,
	}

	// Package-level declarations share one scope with the fixed ones.
	names := newNamePool("Entity", "Parse")

	hasVector := false
	hasRequired := false

	for _, class := range set.Classes {
		typeName := names.Claim(GoName(class.Classname))

		ent := entityData{
			TypeName:     typeName,
			ParseName:    names.Claim("Parse" + typeName),
			ClassnameLit: strconv.Quote(class.Classname),
			Instances:    class.Instances,
		}

		// The Classname method occupies the field scope too.
		fieldNames := newNamePool("Classname")

		for _, field := range class.Fields {
			optional := !field.Required

			fd := fieldData{
				Name:      fieldNames.Claim(GoName(field.Name)),
				KeyLit:    strconv.Quote(field.Name),
				Type:      goType(field.Type, optional),
				ParseFunc: parseFunc(field.Type, runtimePrefix),
				Required:  field.Required,
				Pointer:   optional,
				LabelLit:  strconv.Quote(class.Classname + "." + field.Name),
			}

			if field.Required {
				hasRequired = true
				fd.MissingLit = strconv.Quote(fmt.Sprintf("%s: missing required key %q", class.Classname, field.Name))
			}

			if field.Type.IsVector() {
				hasVector = true
			}

			if g.config.GenerateComments && optional {
				fd.Comment = fmt.Sprintf("optional, seen in %d of %d instances", field.Seen, class.Instances)
			}

			ent.Fields = append(ent.Fields, fd)
		}

		data.Entities = append(data.Entities, ent)
	}

	imports := []importSpec{{Path: "fmt"}, runtimeSpec}
	if hasRequired {
		imports = append(imports, importSpec{Path: "errors"})
	}

	if hasVector {
		imports = append(imports, importSpec{Path: "github.com/go-gl/mathgl/mgl32"})
	}

	sort.Slice(imports, func(i, j int) bool {
		return imports[i].Path < imports[j].Path
	})
	data.Imports = imports

	return data
}

// runtimeImport resolves the identifier generated code uses for the runtime
// package, adding an import alias when the path's base is not a usable
// package identifier (e.g. versioned module paths).
func runtimeImport(path string) (string, importSpec) {
	base := common.PkgAlias(path)

	cleaned := identOnly(base)
	if cleaned == base {
		return base, importSpec{Path: path}
	}

	return cleaned, importSpec{Alias: cleaned, Path: path}
}

// identOnly strips base down to a valid Go identifier.
func identOnly(base string) string {
	var b strings.Builder

	for _, r := range base {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			b.WriteRune(r)
		}
	}

	s := b.String()
	if s == "" || (s[0] >= '0' && s[0] <= '9') {
		return "runtime" + s
	}

	return s
}

// Template for the generated entities file

var entitiesTemplate = template.Must(template.New("entities").Parse(`// Code generated by bsp-entity-generator. DO NOT EDIT.

package {{.PackageName}}

{{if .Imports}}
import (
{{range .Imports}}	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{end}})
{{end}}
// Entity is implemented by every generated entity struct.
type Entity interface {
	Classname() string
}

// Parse dispatches a property bag to the parser for its classname.
func Parse(e {{.Runtime}}.Entity) (Entity, error) {
	switch e.Classname {
{{range .Entities}}	case {{.ClassnameLit}}:
		return {{.ParseName}}(e)
{{end}}	default:
		return nil, fmt.Errorf("unknown classname %q", e.Classname)
	}
}
{{range .Entities}}
{{if $.GenerateComments}}// {{.TypeName}} is entity class {{.ClassnameLit}} ({{.Instances}} observed).
{{end}}type {{.TypeName}} struct {
{{range .Fields}}	{{.Name}} {{.Type}}{{if .Comment}} // {{.Comment}}{{end}}
{{end}}}

// Classname implements Entity.
func (*{{.TypeName}}) Classname() string { return {{.ClassnameLit}} }

func {{.ParseName}}(e {{$.Runtime}}.Entity) (*{{.TypeName}}, error) {
	out := &{{.TypeName}}{}
{{range .Fields}}{{if .ParseFunc}}	if raw, ok := e.Get({{.KeyLit}}); ok {
		v, err := {{.ParseFunc}}(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", {{.LabelLit}}, err)
		}
		out.{{.Name}} = {{if .Pointer}}&v{{else}}v{{end}}
	}{{if .Required}} else {
		return nil, errors.New({{.MissingLit}})
	}{{end}}
{{else}}	if raw, ok := e.Get({{.KeyLit}}); ok {
		out.{{.Name}} = {{if .Pointer}}&raw{{else}}raw{{end}}
	}{{if .Required}} else {
		return nil, errors.New({{.MissingLit}})
	}{{end}}
{{end}}{{end}}	return out, nil
}
{{end}}
`))
