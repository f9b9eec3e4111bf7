package gen

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/broady/jsonstruct/jsonstructgen"
	"github.com/broady/jsonstruct/jsonstructgen/sink"
)

type Cmd struct {
	Out               string   `arg:"" help:"Output directory for generated files, or - for stdout."`
	Schemas           []string `arg:"" name:"schema" help:"JSON or YAML schema files." type:"existingfile"`
	Package           string   `help:"Package name (default: output directory name)." short:"p"`
	Root              string   `help:"Name of the root type when the schema has no title."`
	Set               []string `help:"Override a setting, e.g. use-primitives=true." placeholder:"KEY=VALUE" sep:"none"`
	NoInitCollections bool     `help:"Leave list and set fields without a default nil."`

	Stdout io.Writer `kong:"-"`
}

// Config builds the generator configuration from the flags.
func (c *Cmd) Config(logger *slog.Logger) (*jsonstructgen.Config, error) {
	cfg := &jsonstructgen.Config{
		Sources:     c.Schemas,
		PackageName: c.Package,
		RootName:    c.Root,
		Logger:      logger,
	}
	if c.Out != "-" {
		cfg.OutDir = c.Out
	}
	if c.NoInitCollections {
		off := false
		cfg.InitializeCollections = &off
	}
	if err := jsonstructgen.ParseOptions(cfg, c.Set); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Cmd) Run(ctx context.Context, logger *slog.Logger) error {
	stdout := c.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}

	cfg, err := c.Config(logger)
	if err != nil {
		return err
	}

	var out sink.OutputSink
	if c.Out == "-" {
		out = sink.NewWriterSink(stdout)
	}
	result, err := jsonstructgen.Generate(ctx, cfg, out)
	if err != nil {
		return err
	}
	if out != nil {
		return nil
	}

	for _, f := range result.Files {
		fmt.Fprintf(stdout, "✓ %s (%d bytes)\n", f.Path, f.Size)
	}
	if n := len(result.Warnings); n > 0 {
		fmt.Fprintf(stdout, "! %d warnings\n", n)
	}
	return nil
}
