package golang

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/broady/jsonstruct/jsonstructgen/defaults"
	"github.com/broady/jsonstruct/jsonstructgen/ir"
)

// Emitter renders IR declarations as Go source. An Emitter collects the
// imports its output needs; use one per file.
type Emitter struct {
	schema  *ir.Schema
	config  GeneratorConfig
	imports map[string]bool
}

// NewEmitter returns an Emitter that resolves references against schema.
func NewEmitter(schema *ir.Schema, config GeneratorConfig) *Emitter {
	return &Emitter{schema: schema, config: config, imports: make(map[string]bool)}
}

// Imports returns the import paths used so far.
func (e *Emitter) Imports() []string {
	paths := make([]string, 0, len(e.imports))
	for p := range e.imports {
		paths = append(paths, p)
	}
	return paths
}

func (e *Emitter) use(path string) {
	e.imports[path] = true
}

// runtime qualifies a name from the runtime support package.
func (e *Emitter) runtime(name string) string {
	e.use(ir.RuntimePackage)
	return "jsonstruct." + name
}

// EmitType emits a top-level declaration.
func (e *Emitter) EmitType(buf *bytes.Buffer, typ ir.TypeDescriptor) ([]ir.Warning, error) {
	if e.config.EmitComments {
		e.emitDoc(buf, typ.TypeName().Name, typ.Doc())
	}

	switch t := typ.(type) {
	case *ir.StructDescriptor:
		return e.emitStruct(buf, t)
	case *ir.EnumDescriptor:
		return e.emitEnum(buf, t)
	default:
		return nil, fmt.Errorf("unsupported top-level type kind: %s", typ.Kind())
	}
}

// emitStruct emits the struct and its New constructor.
func (e *Emitter) emitStruct(buf *bytes.Buffer, s *ir.StructDescriptor) ([]ir.Warning, error) {
	var warnings []ir.Warning
	name := s.Name.Name

	fmt.Fprintf(buf, "type %s struct {\n", name)
	for _, f := range s.Fields {
		if e.config.EmitComments && !f.Documentation.IsZero() {
			e.emitDoc(buf, "", f.Documentation)
		}
		typ, err := e.EmitTypeExpr(f.Type)
		if err != nil {
			return nil, fmt.Errorf("failed to emit field %s type: %w", f.Name, err)
		}
		fmt.Fprintf(buf, "%s %s `json:\"%s\"`\n", f.Name, typ, jsonTag(f))
	}
	buf.WriteString("}\n\n")

	fmt.Fprintf(buf, "// New%s returns a %s with its schema defaults applied.\n", name, name)
	fmt.Fprintf(buf, "func New%s() *%s {\n", name, name)
	fmt.Fprintf(buf, "return &%s{\n", name)
	for _, f := range s.Fields {
		if f.Init == nil {
			continue
		}
		value, ok, err := e.EmitValue(f.Init, f.Type)
		if err != nil {
			return nil, fmt.Errorf("failed to emit default of %s.%s: %w", name, f.Name, err)
		}
		if !ok {
			warnings = append(warnings, ir.Warning{
				Code:     "null_default_ignored",
				Message:  "null default on a field that cannot be nil",
				TypeName: name,
				Property: f.JSONName,
			})
			continue
		}
		fmt.Fprintf(buf, "%s: %s,\n", f.Name, value)
	}
	buf.WriteString("}\n}\n")

	return warnings, nil
}

// jsonTag returns the json struct tag value for f.
func jsonTag(f ir.FieldDescriptor) string {
	name := f.JSONName
	if name == "" {
		name = f.Name
	}
	if !f.Required {
		name += ",omitempty"
	}
	return name
}

// emitEnum emits the enum type, its constants and the Parse and MustParse
// lookup functions.
func (e *Emitter) emitEnum(buf *bytes.Buffer, enum *ir.EnumDescriptor) ([]ir.Warning, error) {
	if enum.Backing == nil {
		return nil, fmt.Errorf("enum %s has no backing type", enum.Name.Name)
	}
	name := enum.Name.Name
	backing, err := e.EmitTypeExpr(enum.Backing)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(buf, "type %s %s\n\n", name, backing)

	consts := make([]string, 0, len(enum.Members))
	if len(enum.Members) > 0 {
		buf.WriteString("const (\n")
		for _, m := range enum.Members {
			lit, err := defaults.Literal(enum.Backing, m.Value)
			if err != nil {
				return nil, fmt.Errorf("enum %s member %s: %w", name, m.Name, err)
			}
			if isNonFinite(lit) {
				return nil, fmt.Errorf("enum %s member %s: %s cannot be a constant", name, m.Name, m.Value)
			}
			value, err := e.EmitExpr(lit, false)
			if err != nil {
				return nil, err
			}
			if e.config.EmitComments && !m.Documentation.IsZero() {
				e.emitDoc(buf, m.Name, m.Documentation)
			}
			fmt.Fprintf(buf, "%s %s = %s\n", m.Name, name, value)
			consts = append(consts, m.Name)
		}
		buf.WriteString(")\n\n")
	}

	parse := "Parse" + name
	fmt.Fprintf(buf, "// %s returns the %s with the given value.\n", parse, name)
	fmt.Fprintf(buf, "func %s(v %s) (%s, error) {\n", parse, backing, name)
	if len(consts) > 0 {
		fmt.Fprintf(buf, "switch %s(v) {\ncase %s:\nreturn %s(v), nil\n}\n", name, strings.Join(consts, ", "), name)
	}
	e.use("fmt")
	fmt.Fprintf(buf, "var zero %s\nreturn zero, fmt.Errorf(\"invalid %s value %%v\", v)\n}\n\n", name, name)

	lookup := enum.Lookup.Name
	if lookup == "" {
		lookup = "MustParse" + name
	}
	fmt.Fprintf(buf, "// %s is like %s but panics on an unknown value.\n", lookup, parse)
	fmt.Fprintf(buf, "func %s(v %s) %s {\nm, err := %s(v)\nif err != nil {\npanic(err)\n}\nreturn m\n}\n", lookup, backing, name, parse)

	return nil, nil
}

// emitDoc writes a doc comment. When name is set and the text does not
// already start with it, the summary is written as "<name> is ...".
func (e *Emitter) emitDoc(buf *bytes.Buffer, name string, doc ir.Documentation) {
	if doc.IsZero() {
		return
	}
	var lines []string
	if doc.Summary != "" && !strings.HasPrefix(doc.Body, doc.Summary) {
		lines = append(lines, doc.Summary)
		if doc.Body != "" {
			lines = append(lines, "")
		}
	}
	if doc.Body != "" {
		lines = append(lines, strings.Split(doc.Body, "\n")...)
	}
	if name != "" && strings.EqualFold(exportedWords(lines[0]), name) {
		// A title that only repeats the type name says nothing.
		lines = lines[1:]
		for len(lines) > 0 && lines[0] == "" {
			lines = lines[1:]
		}
	}
	if len(lines) == 0 {
		return
	}
	if name != "" && !strings.HasPrefix(lines[0], name+" ") {
		lines[0] = name + " is " + lowerFirst(lines[0])
	}
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			buf.WriteString("//\n")
			continue
		}
		buf.WriteString("// ")
		buf.WriteString(line)
		buf.WriteString("\n")
	}
}

// exportedWords drops the spaces from s, so "Service config" compares
// equal to "ServiceConfig".
func exportedWords(s string) string {
	return strings.ReplaceAll(s, " ", "")
}

// lowerFirst lower-cases a leading capital unless it starts an acronym.
func lowerFirst(s string) string {
	if len(s) < 2 || s[0] < 'A' || s[0] > 'Z' || (s[1] >= 'A' && s[1] <= 'Z') {
		return s
	}
	return string(s[0]+('a'-'A')) + s[1:]
}
