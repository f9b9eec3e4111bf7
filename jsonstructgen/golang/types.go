package golang

import (
	"context"

	"github.com/broady/jsonstruct/jsonstructgen/ir"
	"github.com/broady/jsonstruct/jsonstructgen/sink"
)

// Generator transforms a resolved schema into source code.
type Generator interface {
	// Name returns the generator's identifier.
	Name() string

	// Generate writes source code for schema to opts.Sink.
	Generate(ctx context.Context, schema *ir.Schema, opts GenerateOptions) (*GenerateResult, error)
}

// GenerateOptions configures a generation run.
type GenerateOptions struct {
	// Sink receives generated files.
	Sink sink.OutputSink

	// Config controls the emitted code.
	Config GeneratorConfig
}

// GenerateResult describes the files a run produced.
type GenerateResult struct {
	// Files lists the written files in schema order.
	Files []OutputFile

	// TypesGenerated counts emitted struct and enum declarations.
	TypesGenerated int

	// Warnings contains non-fatal issues encountered.
	Warnings []ir.Warning
}

// OutputFile describes a generated file.
type OutputFile struct {
	// Path is the slash separated path relative to the sink root.
	Path string

	// Size is the number of bytes written.
	Size int64
}

// GeneratorConfig controls Go output.
type GeneratorConfig struct {
	// PackageName is the package clause of every file. Required.
	PackageName string

	// EmitComments copies schema titles and descriptions into doc comments.
	EmitComments bool

	// Header is written as a comment block above the generated-code marker.
	Header string
}
