package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"

	"github.com/broady/jsonstruct/cmd/jsonstruct/internal/check"
	"github.com/broady/jsonstruct/cmd/jsonstruct/internal/gen"
	"github.com/broady/jsonstruct/cmd/jsonstruct/internal/logging"
)

type CLI struct {
	Verbose int `help:"Log more; repeat for debug output." short:"v" type:"counter"`

	Version VersionCmd `cmd:"" help:"Print version information."`
	Gen     gen.Cmd    `cmd:"" help:"Generate Go types from JSON Schema documents."`
	Check   check.Cmd  `cmd:"" help:"Resolve types and defaults without writing files."`
}

type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Println(Version())
	return nil
}

func main() {
	cli := &CLI{}
	kctx := kong.Parse(cli,
		kong.Name("jsonstruct"),
		kong.Description("Generate Go structs with default constructors from JSON Schema."),
		kong.UsageOnError(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	kctx.BindTo(ctx, (*context.Context)(nil))
	kctx.Bind(logging.New(os.Stderr, cli.Verbose))
	err := kctx.Run()
	kctx.FatalIfErrorf(err)
}
