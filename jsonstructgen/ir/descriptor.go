package ir

// DescriptorKind identifies the category of a type descriptor.
type DescriptorKind int

const (
	// Named type descriptors (appear in Schema.Types)
	KindStruct DescriptorKind = iota // Object type with named fields
	KindEnum                         // Enumeration over a backing type

	// Expression type descriptors (appear nested in fields)
	KindPrimitive // Built-in or runtime-provided scalar type
	KindArray     // Ordered list container ([]T)
	KindSet       // Insertion-ordered unique container
	KindMap       // String-keyed mapping (map[string]T)
	KindReference // Reference to a named type
	KindPtr       // Pointer wrapper (*T), the boxed form of a value type
)

// String returns the string representation of the descriptor kind.
func (k DescriptorKind) String() string {
	switch k {
	case KindStruct:
		return "Struct"
	case KindEnum:
		return "Enum"
	case KindPrimitive:
		return "Primitive"
	case KindArray:
		return "Array"
	case KindSet:
		return "Set"
	case KindMap:
		return "Map"
	case KindReference:
		return "Reference"
	case KindPtr:
		return "Ptr"
	default:
		return "Unknown"
	}
}

// TypeDescriptor is the base interface for all type descriptors.
type TypeDescriptor interface {
	// Kind returns the descriptor kind for type switching.
	Kind() DescriptorKind

	// TypeName returns the canonical name of this type.
	// Returns zero value for expression types (primitives, arrays, etc).
	TypeName() GoIdentifier

	// Doc returns associated documentation.
	// Returns zero value for expression types.
	Doc() Documentation

	// Src returns the schema location of the definition.
	// Returns zero value for expression types.
	Src() Source

	// Ensure only types in this package can implement TypeDescriptor.
	sealed()
}

// exprBase provides zero-value implementations of TypeDescriptor methods
// for expression type descriptors that don't have names, docs, or source.
type exprBase struct{}

func (exprBase) TypeName() GoIdentifier { return GoIdentifier{} }
func (exprBase) Doc() Documentation     { return Documentation{} }
func (exprBase) Src() Source            { return Source{} }
func (exprBase) sealed()                {}
