// Package jsonstructgen generates Go structs from JSON Schema documents.
//
// A run reads each schema, resolves its types, turns every "default" into
// an initializer expression and writes one Go file per struct or enum:
//
//	result, err := jsonstructgen.FromFiles("order.schema.json").
//	    WithPackage("models").
//	    ToDir("./models")
package jsonstructgen

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/broady/jsonstruct/jsonstructgen/defaults"
	"github.com/broady/jsonstruct/jsonstructgen/golang"
	"github.com/broady/jsonstruct/jsonstructgen/ir"
	"github.com/broady/jsonstruct/jsonstructgen/provider"
	"github.com/broady/jsonstruct/jsonstructgen/sink"
)

// maxConcurrentLoads bounds how many schema files are read at once.
const maxConcurrentLoads = 8

// GenerateResult describes a finished run.
type GenerateResult struct {
	// Files lists the written files.
	Files []golang.OutputFile

	// Warnings collects non-fatal issues from every stage.
	Warnings []ir.Warning

	// Output holds the file contents when the run wrote to memory.
	Output map[string][]byte
}

// Generate runs the whole pipeline for cfg. Files go to out, or to OutDir
// when out is nil, or to memory when OutDir is empty too.
func Generate(ctx context.Context, cfg *Config, out sink.OutputSink) (*GenerateResult, error) {
	cfg = applyConfigDefaults(cfg)
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	log := cfg.Logger
	start := time.Now()

	schema, warnings, err := check(ctx, cfg)
	if err != nil {
		return nil, err
	}

	var mem *sink.MemorySink
	if out == nil {
		if cfg.OutDir != "" {
			out = sink.NewFilesystemSink(cfg.OutDir)
		} else {
			mem = sink.NewMemorySink()
			out = mem
		}
	}

	gen := &golang.GoGenerator{}
	res, err := gen.Generate(ctx, schema, golang.GenerateOptions{
		Sink: out,
		Config: golang.GeneratorConfig{
			PackageName:  cfg.PackageName,
			EmitComments: *cfg.EmitComments,
			Header:       cfg.Header,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate %s code: %w", gen.Name(), err)
	}

	result := &GenerateResult{
		Files:    res.Files,
		Warnings: append(warnings, res.Warnings...),
	}
	if mem != nil {
		result.Output = mem.Files()
	}
	for _, w := range result.Warnings {
		log.Warn(w.Message,
			slog.String("code", w.Code),
			slog.String("type", w.TypeName),
			slog.String("property", w.Property))
	}
	log.Info("generated go types",
		slog.Int("files", len(res.Files)),
		slog.Int("types", res.TypesGenerated),
		slog.Int("warnings", len(result.Warnings)),
		slog.Duration("elapsed", time.Since(start)))
	return result, nil
}

// Check loads the sources of cfg, resolves their types and synthesizes
// every default without writing anything. The returned schema carries the
// initializers.
func Check(ctx context.Context, cfg *Config) (*ir.Schema, []ir.Warning, error) {
	cfg = applyConfigDefaults(cfg)
	if err := Validate(cfg); err != nil {
		return nil, nil, err
	}
	return check(ctx, cfg)
}

func check(ctx context.Context, cfg *Config) (*ir.Schema, []ir.Warning, error) {
	schema, err := load(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	if errs := schema.Validate(); len(errs) > 0 {
		return nil, nil, fmt.Errorf("invalid schema: %w", errors.Join(errs...))
	}

	synth := defaults.New(defaults.Policy{InitializeCollections: *cfg.InitializeCollections}, schema)
	if err := applyDefaults(ctx, synth, schema); err != nil {
		return nil, nil, err
	}

	warnings := slices.Concat(schema.Warnings, synth.Warnings())
	slices.SortStableFunc(warnings, compareWarnings)
	return schema, warnings, nil
}

// compareWarnings orders warnings by type and property, so output does not
// depend on which struct finished first.
func compareWarnings(a, b ir.Warning) int {
	return cmp.Or(
		cmp.Compare(a.TypeName, b.TypeName),
		cmp.Compare(a.Property, b.Property),
		cmp.Compare(a.Code, b.Code),
		cmp.Compare(a.Message, b.Message),
	)
}

// load reads every source concurrently and merges them in source order.
func load(ctx context.Context, cfg *Config) (*ir.Schema, error) {
	p := &provider.SchemaProvider{Options: cfg.Options}
	schemas := make([]*ir.Schema, len(cfg.Sources))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentLoads)
	for i, path := range cfg.Sources {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			s, err := p.Load(path, cfg.RootName)
			if err != nil {
				return err
			}
			cfg.Logger.Debug("loaded schema",
				slog.String("path", path),
				slog.Int("types", len(s.Types)))
			schemas[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := &ir.Schema{Package: ir.PackageInfo{Name: cfg.PackageName}}
	for _, s := range schemas {
		if err := provider.Merge(merged, s); err != nil {
			return nil, err
		}
	}
	return merged, nil
}

// applyDefaults synthesizes the initializers of each struct in parallel.
// Structs share no fields, and the synthesizer is safe for concurrent use.
func applyDefaults(ctx context.Context, synth *defaults.Synthesizer, schema *ir.Schema) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, sd := range schema.Structs() {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			for i := range sd.Fields {
				if err := synth.ApplyField(&sd.Fields[i]); err != nil {
					return fmt.Errorf("%s: %w", sd.Name.Name, err)
				}
			}
			return nil
		})
	}
	return g.Wait()
}
