package provider

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/broady/jsonstruct/jsonstructgen/ir"
)

func findStruct(t *testing.T, s *ir.Schema, name string) *ir.StructDescriptor {
	t.Helper()
	sd, ok := s.FindType(ir.GoIdentifier{Name: name}).(*ir.StructDescriptor)
	require.True(t, ok, "struct %s not found", name)
	return sd
}

func findField(t *testing.T, sd *ir.StructDescriptor, jsonName string) ir.FieldDescriptor {
	t.Helper()
	for _, f := range sd.Fields {
		if f.JSONName == jsonName {
			return f
		}
	}
	t.Fatalf("field %s not found in %s", jsonName, sd.Name.Name)
	return ir.FieldDescriptor{}
}

func TestLoadJSON(t *testing.T) {
	p := &SchemaProvider{Options: Options{UsePrimitives: true}}
	s, err := p.Load("testdata/order.schema.json", "")
	require.NoError(t, err)
	require.Empty(t, s.Validate())

	order := findStruct(t, s, "Order")
	assert.Equal(t, "Order", order.Documentation.Summary)
	assert.Equal(t, "A customer order.\nCreated by the storefront.", order.Documentation.Body)
	assert.Equal(t, ir.Source{File: "testdata/order.schema.json", Pointer: "#"}, order.Source)

	var names []string
	for _, f := range order.Fields {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"ID", "Quantity", "Price", "Gift", "Placed", "Tags", "Lines", "Status", "Shipping", "Note", "Attributes"}, names)

	id := findField(t, order, "id")
	assert.True(t, id.Required)
	assert.False(t, id.Default.Present())

	quantity := findField(t, order, "quantity")
	assert.Equal(t, ir.Int(32), quantity.Type)
	assert.Equal(t, ir.Scalar("1"), quantity.Default)

	// Number text keeps its document spelling.
	assert.Equal(t, ir.Scalar("9.90"), findField(t, order, "price").Default)
	assert.Equal(t, ir.Scalar("false"), findField(t, order, "gift").Default)
	assert.Equal(t, ir.Time(), findField(t, order, "placed").Type)

	tags := findField(t, order, "tags")
	assert.Equal(t, ir.Set(ir.String()), tags.Type)
	assert.Equal(t, ir.Sequence(ir.Scalar("new"), ir.Scalar("new"), ir.Scalar("unpaid")), tags.Default)

	assert.Equal(t, ir.Slice(ir.Ref("Line", "")), findField(t, order, "lines").Type)
	assert.Equal(t, ir.Ref("Address", ""), findField(t, order, "shipping").Type)
	assert.Equal(t, ir.Null(), findField(t, order, "note").Default)
	assert.Equal(t, ir.Map(ir.String(), ir.String()), findField(t, order, "attributes").Type)

	status, ok := s.FindType(ir.GoIdentifier{Name: "Status"}).(*ir.EnumDescriptor)
	require.True(t, ok)
	assert.Equal(t, ir.String(), status.Backing)
	assert.Equal(t, ir.GoIdentifier{Name: "MustParseStatus"}, status.Lookup)
	assert.Equal(t, []ir.EnumMember{
		{Name: "StatusOpen", Value: "OPEN"},
		{Name: "StatusInProgress", Value: "IN_PROGRESS"},
		{Name: "StatusClosed", Value: "CLOSED"},
	}, status.Members)

	// Recursive references resolve to the same type.
	addr := findStruct(t, s, "Address")
	assert.Equal(t, ir.Ref("Address", ""), findField(t, addr, "next").Type)

	// Unreferenced definitions are still declared.
	findStruct(t, s, "Unused")
	findStruct(t, s, "Line")
}

func TestLoadYAML(t *testing.T) {
	p := &SchemaProvider{Options: Options{UseCivilDates: true}}
	s, err := p.Load("testdata/config.yaml", "")
	require.NoError(t, err)

	cfg := findStruct(t, s, "ServiceConfig")
	port := findField(t, cfg, "port")
	assert.Equal(t, ir.Ptr(ir.Int(32)), port.Type)
	assert.Equal(t, ir.Scalar("8080"), port.Default)
	assert.Equal(t, ir.Scalar("1.50"), findField(t, cfg, "ratio").Default)
	assert.Equal(t, ir.Date(), findField(t, cfg, "started").Type)
	assert.Equal(t, ir.Sequence(ir.Scalar("a"), ir.Scalar("b")), findField(t, cfg, "hosts").Default)

	mode, ok := s.FindType(ir.GoIdentifier{Name: "Mode"}).(*ir.EnumDescriptor)
	require.True(t, ok)
	assert.Len(t, mode.Members, 2)
	assert.Equal(t, "ModeFast", mode.Members[0].Name)
}

func TestTypeOptions(t *testing.T) {
	doc := []byte(`{
		"type": "object",
		"properties": {
			"n": {"type": "integer"},
			"f": {"type": "number"},
			"d": {"type": "string", "format": "date"},
			"u": {"type": "string", "format": "uri"},
			"ms": {"type": "string", "format": "utc-millisec"},
			"big": {"type": "integer", "format": "int64"},
			"nullable": {"type": ["integer", "null"]},
			"anything": {}
		}
	}`)

	tests := []struct {
		name string
		opts Options
		want map[string]ir.TypeDescriptor
	}{
		{
			name: "defaults",
			opts: Options{},
			want: map[string]ir.TypeDescriptor{
				"n":        ir.Ptr(ir.Int(32)),
				"f":        ir.Ptr(ir.Float(64)),
				"d":        ir.String(),
				"u":        ir.URI(),
				"ms":       ir.Ptr(ir.Int(64)),
				"big":      ir.Ptr(ir.Int(64)),
				"nullable": ir.Ptr(ir.Int(32)),
				"anything": ir.Any(),
			},
		},
		{
			name: "primitives",
			opts: Options{UsePrimitives: true, UseLongIntegers: true, UseFloat32: true, UseCivilDates: true},
			want: map[string]ir.TypeDescriptor{
				"n":        ir.Int(64),
				"f":        ir.Float(32),
				"d":        ir.Date(),
				"nullable": ir.Ptr(ir.Int(64)),
			},
		},
		{
			name: "big numbers",
			opts: Options{UsePrimitives: true, UseBigIntegers: true, UseBigDecimals: true},
			want: map[string]ir.TypeDescriptor{
				"n":   ir.BigInt(),
				"f":   ir.Decimal(),
				"big": ir.BigInt(),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &SchemaProvider{Options: tt.opts}
			s, err := p.Parse(doc, FormatJSON, "mem.json", "thing")
			require.NoError(t, err)
			sd := findStruct(t, s, "Thing")
			for prop, want := range tt.want {
				assert.Equal(t, want, findField(t, sd, prop).Type, prop)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"not json", `{"type":`, "invalid JSON"},
		{"trailing", `{} {}`, "trailing data"},
		{"not an object", `[1, 2]`, "must be an object"},
		{"bad ref", `{"properties": {"a": {"$ref": "#/definitions/Nope"}}}`, "unresolved reference"},
		{"empty enum", `{"properties": {"a": {"enum": []}}}`, "non-empty array"},
		{"bad property", `{"properties": {"a": 3}}`, "must be an object"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := (&SchemaProvider{}).Parse([]byte(tt.doc), FormatJSON, "x.json", "x")
			require.ErrorContains(t, err, tt.want)
		})
	}
}

func TestExternalRefWarning(t *testing.T) {
	s, err := (&SchemaProvider{}).Parse([]byte(`{"properties": {"a": {"$ref": "other.json#/A"}}}`), FormatJSON, "x.json", "x")
	require.NoError(t, err)
	require.Len(t, s.Warnings, 1)
	assert.Equal(t, "unsupported_ref", s.Warnings[0].Code)
	assert.Equal(t, ir.Any(), findStruct(t, s, "X").Fields[0].Type)
}

func TestIntegerEnum(t *testing.T) {
	s, err := (&SchemaProvider{}).Parse([]byte(`{
		"properties": {"level": {"type": "integer", "enum": [1, 2, 2, 3], "default": 2}}
	}`), FormatJSON, "x.json", "x")
	require.NoError(t, err)

	level := s.FindType(ir.GoIdentifier{Name: "Level"}).(*ir.EnumDescriptor)
	assert.Equal(t, ir.Int(32), level.Backing)
	assert.Equal(t, []string{"Level1", "Level2", "Level3"}, []string{level.Members[0].Name, level.Members[1].Name, level.Members[2].Name})
	assert.Equal(t, "2", level.Members[1].Value)
}

func TestBuildSchemaMerges(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.json")
	b := filepath.Join(dir, "b.yaml")
	require.NoError(t, os.WriteFile(a, []byte(`{"title": "A", "properties": {"x": {"type": "string"}}}`), 0o644))
	require.NoError(t, os.WriteFile(b, []byte("title: B\nproperties:\n  y:\n    type: boolean\n"), 0o644))

	p := &SchemaProvider{}
	s, err := p.BuildSchema(context.Background(), SchemaInputOptions{Files: []string{a, b}})
	require.NoError(t, err)
	assert.Len(t, s.Types, 2)

	dup := filepath.Join(dir, "dup.json")
	require.NoError(t, os.WriteFile(dup, []byte(`{"title": "A"}`), 0o644))
	_, err = p.BuildSchema(context.Background(), SchemaInputOptions{Files: []string{a, dup}})
	require.ErrorContains(t, err, "type A declared in")

	_, err = p.BuildSchema(context.Background(), SchemaInputOptions{})
	require.Error(t, err)
}

func TestNaming(t *testing.T) {
	tests := map[string]string{
		"first_name": "FirstName",
		"user-id":    "UserID",
		"userID":     "UserID",
		"url":        "URL",
		"3":          "X3",
		"$":          "",
	}
	for in, want := range tests {
		assert.Equal(t, want, exportedName(in), in)
	}

	assert.Equal(t, "InProgress", memberName("IN_PROGRESS"))
	assert.Equal(t, "Empty", memberName(""))
	assert.Equal(t, "Empty", memberName("--"))

	names := make(nameSet)
	assert.Equal(t, "A", names.claim("A"))
	assert.Equal(t, "A2", names.claim("A"))
	assert.Equal(t, "A3", names.claim("A"))
}

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, FormatYAML, FormatFromPath("x.YML"))
	assert.Equal(t, FormatYAML, FormatFromPath("a/b.yaml"))
	assert.Equal(t, FormatJSON, FormatFromPath("x.schema.json"))
	assert.Equal(t, FormatJSON, FormatFromPath("noext"))
	assert.Equal(t, "order", baseName("dir/order.schema.json"))
}
