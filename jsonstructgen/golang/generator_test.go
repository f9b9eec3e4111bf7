package golang

import (
	"context"
	"strings"
	"testing"

	"github.com/broady/jsonstruct/jsonstructgen/ir"
	"github.com/broady/jsonstruct/jsonstructgen/sink"
)

func orderSchema() *ir.Schema {
	s := testSchema()
	s.AddType(&ir.StructDescriptor{
		Name: ir.GoIdentifier{Name: "Order"},
		Fields: []ir.FieldDescriptor{
			{Name: "Placed", JSONName: "placed", Type: ir.Time(),
				Init: ir.New(ir.Time(), ir.Lit(ir.Int(64), int64(1704067200000)))},
			{Name: "Tags", JSONName: "tags", Type: ir.Set(ir.String()),
				Init: ir.New(ir.Set(ir.String()), ir.StringLit("new"), ir.StringLit("new"))},
			{Name: "Total", JSONName: "total", Type: ir.Decimal(),
				Init: ir.New(ir.Decimal(), ir.StringLit("12.50"))},
			{Name: "Count", JSONName: "count", Type: ir.Ptr(ir.Int(32)),
				Init: ir.Lit(ir.Int(32), int32(2))},
			{Name: "Link", JSONName: "link", Type: ir.URI()},
		},
	})
	return s
}

func TestGoGenerator_Generate(t *testing.T) {
	mem := sink.NewMemorySink()
	gen := &GoGenerator{}
	if gen.Name() != "go" {
		t.Errorf("Name() = %q", gen.Name())
	}

	result, err := gen.Generate(context.Background(), orderSchema(), GenerateOptions{
		Sink:   mem,
		Config: GeneratorConfig{PackageName: "models", Header: "Source: order.schema.json"},
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if result.TypesGenerated != 3 {
		t.Errorf("TypesGenerated = %d, want 3", result.TypesGenerated)
	}
	wantPaths := []string{"status_gen.go", "address_gen.go", "order_gen.go"}
	if len(result.Files) != len(wantPaths) {
		t.Fatalf("Files = %+v", result.Files)
	}
	for i, f := range result.Files {
		if f.Path != wantPaths[i] {
			t.Errorf("Files[%d].Path = %q, want %q", i, f.Path, wantPaths[i])
		}
		if f.Size != int64(len(mem.Get(f.Path))) {
			t.Errorf("Files[%d].Size = %d, sink has %d bytes", i, f.Size, len(mem.Get(f.Path)))
		}
	}

	order := squash(string(mem.Get("order_gen.go")))
	for _, want := range []string{
		"// Source: order.schema.json\n",
		"// Code generated by jsonstruct. DO NOT EDIT.\n",
		"package models\n",
		"\"github.com/cockroachdb/apd/v3\"\n",
		"\"net/url\"\n",
		"\"time\"\n",
		"\"github.com/broady/jsonstruct\"\n",
		"Placed time.Time `json:\"placed,omitempty\"`\n",
		"Tags *jsonstruct.Set[string] `json:\"tags,omitempty\"`\n",
		"Total *apd.Decimal `json:\"total,omitempty\"`\n",
		"Count *int32 `json:\"count,omitempty\"`\n",
		"Link *url.URL `json:\"link,omitempty\"`\n",
		"Placed: time.UnixMilli(1704067200000),\n",
		"Tags: jsonstruct.NewSet[string](\"new\", \"new\"),\n",
		"Total: jsonstruct.NewDecimal(\"12.50\"),\n",
		"Count: jsonstruct.Ptr(int32(2)),\n",
	} {
		if !strings.Contains(order, want) {
			t.Errorf("order_gen.go missing %q\n%s", want, order)
		}
	}

	status := string(mem.Get("status_gen.go"))
	if !strings.Contains(status, "import \"fmt\"\n") {
		t.Errorf("status_gen.go should import only fmt\n%s", status)
	}
	address := string(mem.Get("address_gen.go"))
	if strings.Contains(address, "import") {
		t.Errorf("address_gen.go should have no imports\n%s", address)
	}
}

func TestGoGenerator_Errors(t *testing.T) {
	gen := &GoGenerator{}
	ctx := context.Background()

	if _, err := gen.Generate(ctx, orderSchema(), GenerateOptions{Config: GeneratorConfig{PackageName: "models"}}); err == nil {
		t.Error("expected error without sink")
	}
	if _, err := gen.Generate(ctx, orderSchema(), GenerateOptions{Sink: sink.NewMemorySink(), Config: GeneratorConfig{PackageName: "func"}}); err == nil {
		t.Error("expected error for keyword package name")
	}

	clash := &ir.Schema{}
	clash.AddType(&ir.StructDescriptor{Name: ir.GoIdentifier{Name: "OrderID"}})
	clash.AddType(&ir.StructDescriptor{Name: ir.GoIdentifier{Name: "OrderId"}})
	_, err := gen.Generate(ctx, clash, GenerateOptions{Sink: sink.NewMemorySink(), Config: GeneratorConfig{PackageName: "models"}})
	if err == nil || !strings.Contains(err.Error(), "both map to file") {
		t.Errorf("expected file clash error, got %v", err)
	}

	canceled, cancel := context.WithCancel(ctx)
	cancel()
	if _, err := gen.Generate(canceled, orderSchema(), GenerateOptions{Sink: sink.NewMemorySink(), Config: GeneratorConfig{PackageName: "models"}}); err == nil {
		t.Error("expected error for canceled context")
	}
}
