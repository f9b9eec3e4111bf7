package ir

// ArrayDescriptor represents an ordered list container ([]T).
//
// Nullability: Go slices can be nil. Whether a list field without a default
// starts out nil or empty is decided by the generation policy, not here.
type ArrayDescriptor struct {
	exprBase

	// Element is the list element type.
	Element TypeDescriptor
}

// Kind returns KindArray.
func (d *ArrayDescriptor) Kind() DescriptorKind { return KindArray }

// Slice returns an ArrayDescriptor for a slice type.
func Slice(element TypeDescriptor) *ArrayDescriptor {
	return &ArrayDescriptor{Element: element}
}

// SetDescriptor represents a container of unique elements that keeps
// insertion order (JSON Schema "uniqueItems": true). Generated code uses
// *jsonstruct.Set[T].
type SetDescriptor struct {
	exprBase

	// Element is the set element type. It must be comparable in Go.
	Element TypeDescriptor
}

// Kind returns KindSet.
func (d *SetDescriptor) Kind() DescriptorKind { return KindSet }

// Set returns a SetDescriptor for the given element type.
func Set(element TypeDescriptor) *SetDescriptor {
	return &SetDescriptor{Element: element}
}

// MapDescriptor represents a string-keyed mapping, produced for objects
// that only declare additionalProperties.
type MapDescriptor struct {
	exprBase

	// Key is the map key type. Always a string primitive for JSON objects.
	Key TypeDescriptor

	// Value is the map value type.
	Value TypeDescriptor
}

// Kind returns KindMap.
func (d *MapDescriptor) Kind() DescriptorKind { return KindMap }

// Map returns a MapDescriptor for a map type.
func Map(key, value TypeDescriptor) *MapDescriptor {
	return &MapDescriptor{Key: key, Value: value}
}

// ReferenceDescriptor represents a reference to a named type.
type ReferenceDescriptor struct {
	exprBase

	// Target is the referenced type's identifier.
	Target GoIdentifier
}

// Kind returns KindReference.
func (d *ReferenceDescriptor) Kind() DescriptorKind { return KindReference }

// Ref returns a ReferenceDescriptor for a named type.
func Ref(name string, pkg string) *ReferenceDescriptor {
	return &ReferenceDescriptor{Target: GoIdentifier{Name: name, Package: pkg}}
}

// PtrDescriptor represents a Go pointer type (*T). For numeric and boolean
// primitives this is the boxed, nullable form of the value type.
type PtrDescriptor struct {
	exprBase

	// Element is the pointed-to type.
	Element TypeDescriptor
}

// Kind returns KindPtr.
func (d *PtrDescriptor) Kind() DescriptorKind { return KindPtr }

// Ptr returns a PtrDescriptor for a pointer type.
func Ptr(element TypeDescriptor) *PtrDescriptor {
	return &PtrDescriptor{Element: element}
}

// Unwrap strips any number of pointer wrappers from td.
func Unwrap(td TypeDescriptor) TypeDescriptor {
	for {
		p, ok := td.(*PtrDescriptor)
		if !ok {
			return td
		}
		td = p.Element
	}
}
