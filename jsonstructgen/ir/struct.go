package ir

// StructDescriptor represents an object type with named properties.
type StructDescriptor struct {
	// Name is the type identifier.
	Name GoIdentifier

	// Fields contains one entry per schema property, in document order.
	Fields []FieldDescriptor

	// Documentation for this type.
	Documentation Documentation

	// Source location in the schema document.
	Source Source
}

// Kind returns KindStruct.
func (d *StructDescriptor) Kind() DescriptorKind { return KindStruct }

// TypeName returns the struct's name.
func (d *StructDescriptor) TypeName() GoIdentifier { return d.Name }

// Doc returns the struct's documentation.
func (d *StructDescriptor) Doc() Documentation { return d.Documentation }

// Src returns the struct's source location.
func (d *StructDescriptor) Src() Source { return d.Source }

func (*StructDescriptor) sealed() {}

// FieldDescriptor represents a single schema property.
type FieldDescriptor struct {
	// Name is the Go field name.
	Name string

	// JSONName is the property name in the schema document.
	JSONName string

	// Type is the resolved field type.
	Type TypeDescriptor

	// Required reports whether the property is listed in "required".
	Required bool

	// Default is the schema "default" node. The zero value means the
	// property declares no default.
	Default Node

	// Init is the initializer synthesized from Default, or nil when the
	// field keeps its zero value.
	Init Expr

	// Documentation for this field.
	Documentation Documentation
}
