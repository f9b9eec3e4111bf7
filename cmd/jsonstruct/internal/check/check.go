package check

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/davecgh/go-spew/spew"
	json "github.com/goccy/go-json"

	"github.com/broady/jsonstruct/jsonstructgen"
	"github.com/broady/jsonstruct/jsonstructgen/ir"
)

type Cmd struct {
	Schemas []string `arg:"" name:"schema" help:"JSON or YAML schema files." type:"existingfile"`
	Root    string   `help:"Name of the root type when the schema has no title."`
	Set     []string `help:"Override a setting, e.g. use-primitives=true." placeholder:"KEY=VALUE" sep:"none"`
	Dump    bool     `help:"Print the resolved types with go-spew." xor:"format"`
	JSON    bool     `help:"Print the resolved types as JSON." name:"json" xor:"format"`

	Stdout io.Writer `kong:"-"`
}

var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

func (c *Cmd) Run(ctx context.Context, logger *slog.Logger) error {
	stdout := c.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}

	cfg := &jsonstructgen.Config{Sources: c.Schemas, RootName: c.Root, Logger: logger}
	if err := jsonstructgen.ParseOptions(cfg, c.Set); err != nil {
		return err
	}
	schema, warnings, err := jsonstructgen.Check(ctx, cfg)
	if err != nil {
		return err
	}

	switch {
	case c.Dump:
		dumper.Fdump(stdout, schema.Types)
		return nil
	case c.JSON:
		data, err := json.MarshalIndent(schema, "", "  ")
		if err != nil {
			return fmt.Errorf("encode schema: %w", err)
		}
		_, err = fmt.Fprintln(stdout, string(data))
		return err
	}

	structs, enums, defaults := summarize(schema)
	fmt.Fprintf(stdout, "✓ %d structs, %d enums\n", structs, enums)
	fmt.Fprintf(stdout, "✓ %d defaults synthesized\n", defaults)
	for _, w := range warnings {
		where := w.TypeName
		if w.Property != "" {
			where += "." + w.Property
		}
		if where != "" {
			where += ": "
		}
		fmt.Fprintf(stdout, "! %s%s (%s)\n", where, w.Message, w.Code)
	}
	return nil
}

func summarize(schema *ir.Schema) (structs, enums, defaults int) {
	for _, t := range schema.Types {
		switch d := t.(type) {
		case *ir.StructDescriptor:
			structs++
			for _, f := range d.Fields {
				if f.Init != nil {
					defaults++
				}
			}
		case *ir.EnumDescriptor:
			enums++
		}
	}
	return structs, enums, defaults
}
