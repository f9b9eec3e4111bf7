package defaults

import (
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/broady/jsonstruct/jsonstructgen/ir"
)

func TestLiteralString(t *testing.T) {
	for _, text := range []string{"", "hello", "with \"quotes\"", "null"} {
		expr, err := Literal(ir.String(), text)
		require.NoError(t, err)
		require.Equal(t, ir.StringLit(text), expr)
	}
}

func TestLiteralIntegers(t *testing.T) {
	tests := []struct {
		td   ir.TypeDescriptor
		text string
		want any
	}{
		{ir.Int(32), "42", int32(42)},
		{ir.Int(32), "-2147483648", int32(-2147483648)},
		{ir.Ptr(ir.Int(32)), "7", int32(7)},
		{ir.Int(8), "-5", int32(-5)},
		{ir.Int(64), "9223372036854775807", int64(9223372036854775807)},
		{ir.Int(0), "0", int64(0)},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			expr, err := Literal(tt.td, tt.text)
			require.NoError(t, err)
			lit, ok := expr.(*ir.LiteralExpr)
			require.True(t, ok)
			require.Equal(t, tt.want, lit.Value)
			require.Same(t, ir.Unwrap(tt.td), lit.Type)

			// Formatting the literal back reproduces the parsed value.
			formatted := ""
			switch v := lit.Value.(type) {
			case int32:
				formatted = strconv.FormatInt(int64(v), 10)
			case int64:
				formatted = strconv.FormatInt(v, 10)
			}
			want, _ := strconv.ParseInt(tt.text, 10, 64)
			got, _ := strconv.ParseInt(formatted, 10, 64)
			require.Equal(t, want, got)
		})
	}
}

func TestLiteralIntegerErrors(t *testing.T) {
	tests := []struct {
		name string
		td   ir.TypeDescriptor
		text string
	}{
		{"not a number", ir.Int(32), "abc"},
		{"overflow int32", ir.Int(32), "2147483648"},
		{"overflow int8", ir.Int(8), "300"},
		{"fraction", ir.Int(64), "1.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Literal(tt.td, tt.text)
			require.Error(t, err)
			require.True(t, errors.Is(err, ErrParse))

			var de *Error
			require.True(t, errors.As(err, &de))
			require.Equal(t, tt.text, de.Value)
		})
	}
}

func TestLiteralFloats(t *testing.T) {
	expr, err := Literal(ir.Float(32), "1.5")
	require.NoError(t, err)
	require.Equal(t, float32(1.5), expr.(*ir.LiteralExpr).Value)

	expr, err = Literal(ir.Float(64), "2.25")
	require.NoError(t, err)
	require.Equal(t, 2.25, expr.(*ir.LiteralExpr).Value)

	_, err = Literal(ir.Float(64), "two")
	require.ErrorIs(t, err, ErrParse)
}

func TestLiteralFloatsNonFinite(t *testing.T) {
	expr, err := Literal(ir.Float(32), "1e39")
	require.NoError(t, err)
	require.True(t, math.IsInf(float64(expr.(*ir.LiteralExpr).Value.(float32)), 1))

	expr, err = Literal(ir.Float(64), "-1e400")
	require.NoError(t, err)
	require.True(t, math.IsInf(expr.(*ir.LiteralExpr).Value.(float64), -1))

	expr, err = Literal(ir.Float(64), "Infinity")
	require.NoError(t, err)
	require.True(t, math.IsInf(expr.(*ir.LiteralExpr).Value.(float64), 1))

	expr, err = Literal(ir.Float(64), "NaN")
	require.NoError(t, err)
	require.True(t, math.IsNaN(expr.(*ir.LiteralExpr).Value.(float64)))
}

func TestLiteralBool(t *testing.T) {
	for text, want := range map[string]bool{"true": true, "false": false, "TRUE": true, "True": true, "yes": false} {
		expr, err := Literal(ir.Bool(), text)
		require.NoError(t, err)
		require.Equal(t, want, expr.(*ir.LiteralExpr).Value, text)
	}
}

func TestLiteralConstructors(t *testing.T) {
	for _, td := range []ir.TypeDescriptor{ir.BigInt(), ir.Decimal(), ir.Date(), ir.TimeOfDay()} {
		expr, err := Literal(td, "not-validated-here")
		require.NoError(t, err)
		require.Equal(t, ir.New(td, ir.StringLit("not-validated-here")), expr)
	}
}

func TestLiteralURI(t *testing.T) {
	expr, err := Literal(ir.URI(), "https://example.com/a b")
	require.NoError(t, err)

	call, ok := expr.(*ir.CallExpr)
	require.True(t, ok)
	require.Equal(t, ir.URIFactory, call.Func)
	require.Equal(t, []ir.Expr{ir.StringLit("https://example.com/a b")}, call.Args)
}

func TestLiteralDateTime(t *testing.T) {
	tests := []struct {
		text string
		want int64
	}{
		{"1700000000000", 1700000000000},
		{"-1", -1},
		{"2024-01-01T00:00:00Z", 1704067200000},
		{"2024-01-01T01:00:00+01:00", 1704067200000},
		{"2024-01-01", 1704067200000},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			expr, err := Literal(ir.Time(), tt.text)
			require.NoError(t, err)

			n, ok := expr.(*ir.NewExpr)
			require.True(t, ok)
			require.Len(t, n.Args, 1)
			require.Equal(t, tt.want, n.Args[0].(*ir.LiteralExpr).Value)
		})
	}

	_, err := Literal(ir.Time(), "next tuesday")
	require.ErrorIs(t, err, ErrParse)
}

func TestLiteralEnum(t *testing.T) {
	enum := statusEnum()

	expr, err := Literal(enum, "OPEN")
	require.NoError(t, err)

	call, ok := expr.(*ir.CallExpr)
	require.True(t, ok)
	require.Equal(t, ir.GoIdentifier{Name: "MustParseStatus"}, call.Func)
	require.Equal(t, []ir.Expr{ir.StringLit("OPEN")}, call.Args)
}

func TestLiteralEnumReference(t *testing.T) {
	schema := &ir.Schema{}
	schema.AddType(statusEnum())
	s := New(Policy{}, schema)

	ref := ir.Ref("Status", "")
	expr, err := s.Literal(ref, "CLOSED")
	require.NoError(t, err)

	call := expr.(*ir.CallExpr)
	require.Same(t, ref, call.Type)
	require.Empty(t, s.Warnings())
}

func TestLiteralEnumIntegerBacking(t *testing.T) {
	enum := &ir.EnumDescriptor{
		Name:    ir.GoIdentifier{Name: "Level"},
		Backing: ir.Int(32),
		Lookup:  ir.GoIdentifier{Name: "MustParseLevel"},
	}

	expr, err := Literal(enum, "3")
	require.NoError(t, err)
	require.Equal(t, []ir.Expr{ir.Lit(ir.Int(32), int32(3))}, expr.(*ir.CallExpr).Args)

	_, err = Literal(enum, "high")
	require.ErrorIs(t, err, ErrParse)
}

func TestLiteralEnumMalformed(t *testing.T) {
	enum := statusEnum()
	enum.Backing = nil

	_, err := Literal(enum, "OPEN")
	require.ErrorIs(t, err, ErrMalformedType)
	require.False(t, errors.Is(err, ErrParse))
}

func TestLiteralEnumUnknownMember(t *testing.T) {
	s := New(Policy{}, nil)

	_, err := s.Literal(statusEnum(), "OPNE")
	require.NoError(t, err)

	warnings := s.Warnings()
	require.Len(t, warnings, 1)
	require.Equal(t, "unknown_enum_default", warnings[0].Code)
	require.Contains(t, warnings[0].Message, `did you mean "OPEN"?`)
}

func TestLiteralEnumNumericMemberSpelling(t *testing.T) {
	tests := []struct {
		name    string
		backing ir.TypeDescriptor
		member  string
		text    string
	}{
		{"float trailing zero", ir.Float(64), "1.5", "1.50"},
		{"float exponent", ir.Float(32), "0.25", "2.5e-1"},
		{"int leading zero", ir.Int(64), "7", "007"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enum := &ir.EnumDescriptor{
				Name:    ir.GoIdentifier{Name: "Ratio"},
				Backing: tt.backing,
				Lookup:  ir.GoIdentifier{Name: "MustParseRatio"},
				Members: []ir.EnumMember{{Name: "RatioA", Value: tt.member}},
			}
			s := New(Policy{}, nil)
			_, err := s.Literal(enum, tt.text)
			require.NoError(t, err)
			require.Empty(t, s.Warnings())

			_, err = s.Literal(enum, "9")
			require.NoError(t, err)
			require.Len(t, s.Warnings(), 1)
		})
	}
}

func TestLiteralOpaque(t *testing.T) {
	for _, td := range []ir.TypeDescriptor{
		ir.Ref("Address", ""),
		ir.Map(ir.String(), ir.String()),
		ir.Any(),
		ir.Uint(32),
		nil,
	} {
		expr, err := Literal(td, "{\"street\":\"x\"}")
		require.NoError(t, err)
		require.Equal(t, ir.NullExpr{}, expr)
	}
}
