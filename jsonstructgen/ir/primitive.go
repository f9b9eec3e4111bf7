package ir

// RuntimePackage is the import path of the support package that generated
// code uses for sets, civil dates, arbitrary-precision numbers and URIs.
const RuntimePackage = "github.com/broady/jsonstruct"

// DecimalPackage is the import path of the decimal type behind
// PrimitiveDecimal.
const DecimalPackage = "github.com/cockroachdb/apd/v3"

// URIFactory is the string-based factory for PrimitiveURI values.
var URIFactory = GoIdentifier{Name: "MustParseURI", Package: RuntimePackage}

// PrimitiveKind identifies the category of a primitive type.
type PrimitiveKind int

const (
	PrimitiveBool      PrimitiveKind = iota
	PrimitiveInt                     // Signed integer (see BitSize)
	PrimitiveUint                    // Unsigned integer (see BitSize)
	PrimitiveFloat                   // Floating point (see BitSize)
	PrimitiveString                  // string
	PrimitiveBigInt                  // Arbitrary-precision integer (*big.Int)
	PrimitiveDecimal                 // Arbitrary-precision decimal (*apd.Decimal)
	PrimitiveTime                    // Date-time instant (time.Time)
	PrimitiveDate                    // Calendar date without zone (jsonstruct.Date)
	PrimitiveTimeOfDay               // Wall-clock time without date (jsonstruct.TimeOfDay)
	PrimitiveURI                     // URI reference (*url.URL)
	PrimitiveAny                     // Untyped JSON value (any)
)

// String returns the string representation of the primitive kind.
func (k PrimitiveKind) String() string {
	switch k {
	case PrimitiveBool:
		return "Bool"
	case PrimitiveInt:
		return "Int"
	case PrimitiveUint:
		return "Uint"
	case PrimitiveFloat:
		return "Float"
	case PrimitiveString:
		return "String"
	case PrimitiveBigInt:
		return "BigInt"
	case PrimitiveDecimal:
		return "Decimal"
	case PrimitiveTime:
		return "Time"
	case PrimitiveDate:
		return "Date"
	case PrimitiveTimeOfDay:
		return "TimeOfDay"
	case PrimitiveURI:
		return "URI"
	case PrimitiveAny:
		return "Any"
	default:
		return "Unknown"
	}
}

// PrimitiveDescriptor represents a scalar type.
type PrimitiveDescriptor struct {
	exprBase
	PrimitiveKind PrimitiveKind

	// BitSize specifies the size for numeric types (PrimitiveInt, PrimitiveUint, PrimitiveFloat).
	// Valid values:
	// - 0: Platform-dependent size (Go's `int`, `uint`); treated as 64 for floats
	// - 8, 16, 32, 64: Explicit bit width
	//
	// Ignored for non-numeric primitive kinds.
	BitSize int
}

// Kind returns KindPrimitive.
func (d *PrimitiveDescriptor) Kind() DescriptorKind { return KindPrimitive }

// Convenience constructors for common primitives.

// Bool returns a PrimitiveDescriptor for bool.
func Bool() *PrimitiveDescriptor {
	return &PrimitiveDescriptor{PrimitiveKind: PrimitiveBool}
}

// String returns a PrimitiveDescriptor for string.
func String() *PrimitiveDescriptor {
	return &PrimitiveDescriptor{PrimitiveKind: PrimitiveString}
}

// Int returns a PrimitiveDescriptor for int with the given bit size.
// Use 0 for platform-dependent int.
func Int(bitSize int) *PrimitiveDescriptor {
	return &PrimitiveDescriptor{PrimitiveKind: PrimitiveInt, BitSize: bitSize}
}

// Uint returns a PrimitiveDescriptor for uint with the given bit size.
func Uint(bitSize int) *PrimitiveDescriptor {
	return &PrimitiveDescriptor{PrimitiveKind: PrimitiveUint, BitSize: bitSize}
}

// Float returns a PrimitiveDescriptor for float with the given bit size.
func Float(bitSize int) *PrimitiveDescriptor {
	return &PrimitiveDescriptor{PrimitiveKind: PrimitiveFloat, BitSize: bitSize}
}

// BigInt returns a PrimitiveDescriptor for an arbitrary-precision integer.
func BigInt() *PrimitiveDescriptor {
	return &PrimitiveDescriptor{PrimitiveKind: PrimitiveBigInt}
}

// Decimal returns a PrimitiveDescriptor for an arbitrary-precision decimal.
func Decimal() *PrimitiveDescriptor {
	return &PrimitiveDescriptor{PrimitiveKind: PrimitiveDecimal}
}

// Time returns a PrimitiveDescriptor for time.Time.
func Time() *PrimitiveDescriptor {
	return &PrimitiveDescriptor{PrimitiveKind: PrimitiveTime}
}

// Date returns a PrimitiveDescriptor for a calendar date.
func Date() *PrimitiveDescriptor {
	return &PrimitiveDescriptor{PrimitiveKind: PrimitiveDate}
}

// TimeOfDay returns a PrimitiveDescriptor for a wall-clock time.
func TimeOfDay() *PrimitiveDescriptor {
	return &PrimitiveDescriptor{PrimitiveKind: PrimitiveTimeOfDay}
}

// URI returns a PrimitiveDescriptor for a URI.
func URI() *PrimitiveDescriptor {
	return &PrimitiveDescriptor{PrimitiveKind: PrimitiveURI}
}

// Any returns a PrimitiveDescriptor for an untyped JSON value.
func Any() *PrimitiveDescriptor {
	return &PrimitiveDescriptor{PrimitiveKind: PrimitiveAny}
}
