package golang

import (
	"bytes"
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/tools/imports"

	"github.com/broady/jsonstruct/jsonstructgen/ir"
)

// GoGenerator writes one Go file per named schema type.
type GoGenerator struct{}

// Name returns "go".
func (g *GoGenerator) Name() string { return "go" }

// Generate emits every struct and enum in schema and writes the files to
// opts.Sink. Initializers must already be attached to the fields.
func (g *GoGenerator) Generate(ctx context.Context, schema *ir.Schema, opts GenerateOptions) (*GenerateResult, error) {
	if opts.Sink == nil {
		return nil, fmt.Errorf("no output sink")
	}
	if !isValidPackageName(opts.Config.PackageName) {
		return nil, fmt.Errorf("invalid package name %q", opts.Config.PackageName)
	}

	result := &GenerateResult{}
	seen := make(map[string]string)
	for _, typ := range schema.Types {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		name := typ.TypeName().Name
		path := fileName(name)
		if other, dup := seen[path]; dup {
			return nil, fmt.Errorf("types %s and %s both map to file %s", other, name, path)
		}
		seen[path] = name

		content, warnings, err := EmitFile(schema, typ, opts.Config)
		if err != nil {
			return nil, fmt.Errorf("failed to emit %s: %w", name, err)
		}
		if err := opts.Sink.WriteFile(ctx, path, content); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", path, err)
		}

		result.Files = append(result.Files, OutputFile{Path: path, Size: int64(len(content))})
		result.TypesGenerated++
		result.Warnings = append(result.Warnings, warnings...)
	}
	return result, nil
}

// EmitFile renders the complete, formatted source file declaring typ.
func EmitFile(schema *ir.Schema, typ ir.TypeDescriptor, config GeneratorConfig) ([]byte, []ir.Warning, error) {
	e := NewEmitter(schema, config)

	var body bytes.Buffer
	warnings, err := e.EmitType(&body, typ)
	if err != nil {
		return nil, nil, err
	}

	var buf bytes.Buffer
	if config.Header != "" {
		for _, line := range strings.Split(strings.TrimRight(config.Header, "\n"), "\n") {
			buf.WriteString("// " + line + "\n")
		}
		buf.WriteString("\n")
	}
	buf.WriteString("// Code generated by jsonstruct. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", config.PackageName)

	paths := e.Imports()
	slices.Sort(paths)
	switch len(paths) {
	case 0:
	case 1:
		fmt.Fprintf(&buf, "import %s\n\n", strconv.Quote(paths[0]))
	default:
		buf.WriteString("import (\n")
		for _, p := range paths {
			buf.WriteString(strconv.Quote(p) + "\n")
		}
		buf.WriteString(")\n\n")
	}
	buf.Write(body.Bytes())

	filename := fileName(typ.TypeName().Name)
	out, err := imports.Process(filename, buf.Bytes(), &imports.Options{
		Comments:  true,
		TabIndent: true,
		TabWidth:  8,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to format generated code: %w\n%s", err, buf.Bytes())
	}
	return out, warnings, nil
}
