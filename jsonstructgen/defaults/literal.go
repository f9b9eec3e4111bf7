package defaults

import (
	"errors"
	"strconv"
	"strings"

	"github.com/broady/jsonstruct/jsonstructgen/ir"
)

// Literal synthesizes a value of type t from default text without a
// resolver. Enum references cannot be followed, so they yield the null
// marker; pass an *ir.EnumDescriptor directly to get a lookup call.
func Literal(t ir.TypeDescriptor, text string) (ir.Expr, error) {
	return New(Policy{}, nil).Literal(t, text)
}

// Literal synthesizes a value of type t from default text. Kinds without a
// rule, including unresolved object types, yield the null marker.
func (s *Synthesizer) Literal(t ir.TypeDescriptor, text string) (ir.Expr, error) {
	td := ir.Unwrap(t)

	switch kind := Classify(td, s.resolver); kind {
	case KindString:
		return ir.StringLit(text), nil

	case KindInt32:
		v, err := strconv.ParseInt(text, 10, bitSize(td, 32))
		if err != nil {
			return nil, parseError("cannot parse integer default", text, err)
		}
		return ir.Lit(td, int32(v)), nil

	case KindInt64:
		v, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return nil, parseError("cannot parse integer default", text, err)
		}
		return ir.Lit(td, v), nil

	case KindFloat32:
		v, err := parseFloat(text, 32)
		if err != nil {
			return nil, err
		}
		return ir.Lit(td, float32(v)), nil

	case KindFloat64:
		v, err := parseFloat(text, 64)
		if err != nil {
			return nil, err
		}
		return ir.Lit(td, v), nil

	case KindBool:
		return ir.Lit(td, strings.EqualFold(text, "true")), nil

	case KindBigInt, KindBigDecimal, KindDate, KindTimeOfDay:
		return ir.New(td, ir.StringLit(text)), nil

	case KindDateTime:
		ms, err := parseDateToMillis(text)
		if err != nil {
			return nil, err
		}
		return ir.New(td, ir.Lit(ir.Int(64), ms)), nil

	case KindURI:
		return ir.Call(td, ir.URIFactory, ir.StringLit(text)), nil

	case KindEnum:
		return s.enumLiteral(td, text)

	default:
		return ir.NullExpr{}, nil
	}
}

// enumLiteral synthesizes the backing value and wraps it in the enum's
// lookup factory.
func (s *Synthesizer) enumLiteral(td ir.TypeDescriptor, text string) (ir.Expr, error) {
	enum, _ := resolveEnum(td, s.resolver)
	if enum.Backing == nil {
		return nil, malformedType("enum %s has no backing value type", enum.Name.Name)
	}
	if enum.Lookup.Name == "" {
		return nil, malformedType("enum %s has no lookup factory", enum.Name.Name)
	}

	value, err := s.Literal(enum.Backing, text)
	if err != nil {
		return nil, err
	}
	if len(enum.Members) > 0 && !s.hasMember(enum, text, value) {
		s.warn(unknownMemberWarning(enum, text))
	}
	return ir.Call(td, enum.Lookup, value), nil
}

// hasMember reports whether value equals a member once both are read as
// the backing type, so "1.50" matches a member declared as 1.5.
func (s *Synthesizer) hasMember(enum *ir.EnumDescriptor, text string, value ir.Expr) bool {
	want, ok := value.(*ir.LiteralExpr)
	if !ok {
		_, found := enum.Member(text)
		return found
	}
	for _, m := range enum.Members {
		got, err := s.Literal(enum.Backing, m.Value)
		if err != nil {
			continue
		}
		if lit, ok := got.(*ir.LiteralExpr); ok && lit.Value == want.Value {
			return true
		}
	}
	return false
}

// parseFloat reads text at the given width. Values beyond the range of the
// width become signed infinities.
func parseFloat(text string, bits int) (float64, error) {
	v, err := strconv.ParseFloat(text, bits)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, parseError("cannot parse number default", text, err)
	}
	return v, nil
}

// bitSize returns the declared width of an integer primitive, or def.
func bitSize(td ir.TypeDescriptor, def int) int {
	if p, ok := td.(*ir.PrimitiveDescriptor); ok && p.BitSize > 0 {
		return p.BitSize
	}
	return def
}
