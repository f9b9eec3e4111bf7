// Package defaults synthesizes initializer expressions for schema default
// values. Classify normalizes a field type to the kind that decides how a
// default is built; Synthesizer turns a default node into an ir.Expr.
package defaults

import "github.com/broady/jsonstruct/jsonstructgen/ir"

// NormalizedKind is the classification used to dispatch default synthesis.
type NormalizedKind int

const (
	KindOpaque NormalizedKind = iota // Anything without a default rule
	KindString
	KindInt32
	KindInt64
	KindFloat32
	KindFloat64
	KindBool
	KindBigInt
	KindBigDecimal
	KindDateTime
	KindDate
	KindTimeOfDay
	KindURI
	KindEnum
	KindList
	KindSet
)

// String returns the string representation of the kind.
func (k NormalizedKind) String() string {
	switch k {
	case KindOpaque:
		return "Opaque"
	case KindString:
		return "String"
	case KindInt32:
		return "Int32"
	case KindInt64:
		return "Int64"
	case KindFloat32:
		return "Float32"
	case KindFloat64:
		return "Float64"
	case KindBool:
		return "Bool"
	case KindBigInt:
		return "BigInt"
	case KindBigDecimal:
		return "BigDecimal"
	case KindDateTime:
		return "DateTime"
	case KindDate:
		return "Date"
	case KindTimeOfDay:
		return "TimeOfDay"
	case KindURI:
		return "URI"
	case KindEnum:
		return "Enum"
	case KindList:
		return "List"
	case KindSet:
		return "Set"
	default:
		return "Unknown"
	}
}

// Resolver looks up named types referenced from field types.
// *ir.Schema implements Resolver.
type Resolver interface {
	FindType(name ir.GoIdentifier) ir.TypeDescriptor
}

// Classify returns the normalized kind of td. Pointer wrappers are removed
// first, so *int32 and int32 classify identically. References are resolved
// through r, which may be nil; unresolved references are opaque.
func Classify(td ir.TypeDescriptor, r Resolver) NormalizedKind {
	switch d := ir.Unwrap(td).(type) {
	case *ir.PrimitiveDescriptor:
		return classifyPrimitive(d)
	case *ir.ArrayDescriptor:
		return KindList
	case *ir.SetDescriptor:
		return KindSet
	case *ir.EnumDescriptor:
		return KindEnum
	case *ir.ReferenceDescriptor:
		if _, ok := resolveEnum(d, r); ok {
			return KindEnum
		}
	}
	return KindOpaque
}

func classifyPrimitive(p *ir.PrimitiveDescriptor) NormalizedKind {
	switch p.PrimitiveKind {
	case ir.PrimitiveString:
		return KindString
	case ir.PrimitiveInt:
		if p.BitSize > 0 && p.BitSize <= 32 {
			return KindInt32
		}
		return KindInt64
	case ir.PrimitiveFloat:
		if p.BitSize == 32 {
			return KindFloat32
		}
		return KindFloat64
	case ir.PrimitiveBool:
		return KindBool
	case ir.PrimitiveBigInt:
		return KindBigInt
	case ir.PrimitiveDecimal:
		return KindBigDecimal
	case ir.PrimitiveTime:
		return KindDateTime
	case ir.PrimitiveDate:
		return KindDate
	case ir.PrimitiveTimeOfDay:
		return KindTimeOfDay
	case ir.PrimitiveURI:
		return KindURI
	}
	return KindOpaque
}

// IsPrimitive reports whether td is an unboxed numeric or boolean value
// type, which cannot hold the null marker.
func IsPrimitive(td ir.TypeDescriptor) bool {
	p, ok := td.(*ir.PrimitiveDescriptor)
	if !ok {
		return false
	}
	switch p.PrimitiveKind {
	case ir.PrimitiveBool, ir.PrimitiveInt, ir.PrimitiveUint, ir.PrimitiveFloat:
		return true
	}
	return false
}

// resolveEnum returns the enum descriptor behind td, following a reference
// through r when needed.
func resolveEnum(td ir.TypeDescriptor, r Resolver) (*ir.EnumDescriptor, bool) {
	switch d := ir.Unwrap(td).(type) {
	case *ir.EnumDescriptor:
		return d, true
	case *ir.ReferenceDescriptor:
		if r == nil {
			return nil, false
		}
		e, ok := r.FindType(d.Target).(*ir.EnumDescriptor)
		return e, ok
	}
	return nil, false
}

// elementType returns the element descriptor of a list or set type.
func elementType(td ir.TypeDescriptor) ir.TypeDescriptor {
	switch d := ir.Unwrap(td).(type) {
	case *ir.ArrayDescriptor:
		return d.Element
	case *ir.SetDescriptor:
		return d.Element
	}
	return nil
}
