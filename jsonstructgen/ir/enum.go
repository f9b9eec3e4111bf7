package ir

// EnumDescriptor represents an enumeration declared with the schema "enum"
// keyword. Generated code declares a defined type over Backing with one
// constant per member and a lookup factory that maps a backing value to
// its member.
type EnumDescriptor struct {
	// Name is the type identifier.
	Name GoIdentifier

	// Backing is the type of the stored value (string, integer or number).
	// A nil Backing is a malformed enum; default synthesis rejects it.
	Backing TypeDescriptor

	// Lookup names the factory that returns the member for a backing value.
	// It panics on an unknown value.
	Lookup GoIdentifier

	// Members contains all enum variants.
	Members []EnumMember

	// Documentation for this type.
	Documentation Documentation

	// Source location in the schema document.
	Source Source
}

// Kind returns KindEnum.
func (d *EnumDescriptor) Kind() DescriptorKind { return KindEnum }

// TypeName returns the enum's name.
func (d *EnumDescriptor) TypeName() GoIdentifier { return d.Name }

// Doc returns the enum's documentation.
func (d *EnumDescriptor) Doc() Documentation { return d.Documentation }

// Src returns the enum's source location.
func (d *EnumDescriptor) Src() Source { return d.Source }

func (*EnumDescriptor) sealed() {}

// EnumMember represents a single enum variant.
type EnumMember struct {
	// Name is the constant name.
	Name string

	// Value is the raw schema text of the member value, e.g. "OPEN" or "3".
	Value string

	// Documentation for this member.
	Documentation Documentation
}

// Member returns the member whose raw value equals value.
func (d *EnumDescriptor) Member(value string) (EnumMember, bool) {
	for _, m := range d.Members {
		if m.Value == value {
			return m, true
		}
	}
	return EnumMember{}, false
}
