package jsonstructgen

import (
	"context"
	"log/slog"

	"github.com/broady/jsonstruct/jsonstructgen/provider"
	"github.com/broady/jsonstruct/jsonstructgen/sink"
)

// Generator provides a fluent API for code generation.
// Create with FromFiles and configure with method chaining.
//
// Example:
//
//	jsonstructgen.FromFiles("schemas/order.json", "schemas/customer.yaml").
//	    WithPackage("models").
//	    InitializeCollections(false).
//	    ToDir("./models")
type Generator struct {
	cfg Config
}

// FromFiles creates a Generator for the given schema documents.
func FromFiles(paths ...string) *Generator {
	return &Generator{cfg: Config{Sources: paths}}
}

// WithPackage sets the package clause of generated files.
func (g *Generator) WithPackage(name string) *Generator {
	g.cfg.PackageName = name
	return g
}

// WithRootName names the root type of a schema that has no title.
func (g *Generator) WithRootName(name string) *Generator {
	g.cfg.RootName = name
	return g
}

// WithOptions sets how schema types map to Go types.
func (g *Generator) WithOptions(opts provider.Options) *Generator {
	g.cfg.Options = opts
	return g
}

// InitializeCollections controls whether list and set fields without a
// default start out empty (true, the default) or nil.
func (g *Generator) InitializeCollections(v bool) *Generator {
	g.cfg.InitializeCollections = &v
	return g
}

// WithoutComments drops schema titles and descriptions from the output.
func (g *Generator) WithoutComments() *Generator {
	emit := false
	g.cfg.EmitComments = &emit
	return g
}

// WithHeader adds a comment to the top of every generated file.
func (g *Generator) WithHeader(header string) *Generator {
	g.cfg.Header = header
	return g
}

// WithLogger sets the logger for progress messages.
func (g *Generator) WithLogger(logger *slog.Logger) *Generator {
	g.cfg.Logger = logger
	return g
}

// ToDir generates files into dir.
func (g *Generator) ToDir(dir string) (*GenerateResult, error) {
	g.cfg.OutDir = dir
	return Generate(context.Background(), &g.cfg, nil)
}

// ToSink generates files into s.
func (g *Generator) ToSink(ctx context.Context, s sink.OutputSink) (*GenerateResult, error) {
	return Generate(ctx, &g.cfg, s)
}

// Generate returns generated files in memory without writing to disk.
func (g *Generator) Generate() (*GenerateResult, error) {
	g.cfg.OutDir = ""
	return Generate(context.Background(), &g.cfg, nil)
}
