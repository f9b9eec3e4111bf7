// Package provider reads JSON Schema documents (JSON or YAML) and resolves
// them into the intermediate representation: named structs and enums, field
// types and the raw default node of every property.
package provider

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/broady/jsonstruct/jsonstructgen/ir"
)

// Options controls how schema types map to Go types.
type Options struct {
	// UsePrimitives maps integer, number and boolean properties to value
	// types. When false they become pointers so an absent value is nil.
	UsePrimitives bool

	// UseLongIntegers maps "integer" to int64 instead of int32.
	UseLongIntegers bool

	// UseBigIntegers maps "integer" to *big.Int. It wins over
	// UseLongIntegers.
	UseBigIntegers bool

	// UseFloat32 maps "number" to float32 instead of float64.
	UseFloat32 bool

	// UseBigDecimals maps "number" to *apd.Decimal. It wins over UseFloat32.
	UseBigDecimals bool

	// UseCivilDates maps the "date" and "time" string formats to
	// jsonstruct.Date and jsonstruct.TimeOfDay instead of string.
	UseCivilDates bool
}

// SchemaProvider builds an ir.Schema from schema documents.
type SchemaProvider struct {
	Options Options
}

// SchemaInputOptions configures document-based type extraction.
type SchemaInputOptions struct {
	// Files are the schema documents to read. Types from all files are
	// merged into one schema; a type name declared twice is an error.
	Files []string

	// RootName overrides the root type name of a single input file.
	RootName string
}

// BuildSchema reads every file in opts and returns the merged Schema.
func (p *SchemaProvider) BuildSchema(ctx context.Context, opts SchemaInputOptions) (*ir.Schema, error) {
	if len(opts.Files) == 0 {
		return nil, fmt.Errorf("no schema files specified")
	}
	if opts.RootName != "" && len(opts.Files) > 1 {
		return nil, fmt.Errorf("root name %q needs exactly one schema file", opts.RootName)
	}

	merged := &ir.Schema{}
	for _, path := range opts.Files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		s, err := p.Load(path, opts.RootName)
		if err != nil {
			return nil, err
		}
		if err := Merge(merged, s); err != nil {
			return nil, err
		}
	}
	return merged, nil
}

// Load reads and resolves one schema file. The format follows the file
// extension. rootName may be empty.
func (p *SchemaProvider) Load(path, rootName string) (*ir.Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema: %w", err)
	}
	if rootName == "" {
		rootName = baseName(path)
	}
	s, err := p.Parse(data, FormatFromPath(path), path, rootName)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse resolves a schema document held in memory. file is used for
// source locations only. The root type is named from the document
// "title", falling back to rootName.
func (p *SchemaProvider) Parse(data []byte, format Format, file, rootName string) (*ir.Schema, error) {
	root, err := decode(data, format)
	if err != nil {
		return nil, err
	}

	b := newBuilder(p.Options, root, file)
	name := exportedName(root.string("title"))
	if name == "" {
		name = exportedName(rootName)
	}
	if name == "" {
		return nil, fmt.Errorf("cannot name root type: schema has no title")
	}
	if _, err := b.buildObject(name, "#", root); err != nil {
		return nil, err
	}
	if err := b.resolveDefinitions(); err != nil {
		return nil, err
	}
	return b.schema, nil
}

// Merge appends the types and warnings of src to dst. A type name that is
// already declared in dst is an error.
func Merge(dst, src *ir.Schema) error {
	for _, t := range src.Types {
		if existing := dst.FindType(t.TypeName()); existing != nil {
			return fmt.Errorf("type %s declared in %s and %s",
				t.TypeName().Name, existing.Src().File, t.Src().File)
		}
		dst.AddType(t)
	}
	dst.Warnings = append(dst.Warnings, src.Warnings...)
	return nil
}

func baseName(path string) string {
	base := filepath.Base(path)
	for {
		ext := filepath.Ext(base)
		if ext == "" {
			return base
		}
		base = strings.TrimSuffix(base, ext)
	}
}
