// Package ir defines the intermediate representation shared by the schema
// provider, the default value synthesizer and the Go emitter: type
// descriptors, schema default nodes and initializer expressions.
package ir

// GoIdentifier names a Go entity together with the package that declares it.
type GoIdentifier struct {
	// Name is a valid Go identifier.
	Name string

	// Package is the import path. Empty means the package being generated.
	Package string
}

// IsZero returns true if the identifier is empty.
func (id GoIdentifier) IsZero() bool {
	return id.Name == "" && id.Package == ""
}

// Documentation holds the description carried over from the schema.
type Documentation struct {
	// Summary is the schema "title" or the first line of the description.
	Summary string

	// Body is the complete "description" text.
	Body string
}

// IsZero returns true if the documentation is empty.
func (d Documentation) IsZero() bool {
	return d.Summary == "" && d.Body == ""
}

// Source locates a definition inside a schema document.
type Source struct {
	// File is the schema document path.
	File string

	// Pointer is the JSON pointer of the definition, e.g. "#/properties/name".
	Pointer string
}

// IsZero returns true if the source location is empty.
func (s Source) IsZero() bool {
	return s.File == "" && s.Pointer == ""
}

// Warning represents a non-fatal issue encountered during generation.
type Warning struct {
	// Code is a machine-readable warning identifier.
	Code string

	// Message is a human-readable description.
	Message string

	// TypeName is the type that triggered the warning, if applicable.
	TypeName string

	// Property is the property that triggered the warning, if applicable.
	Property string
}

// PackageInfo describes the Go package being generated.
type PackageInfo struct {
	// Path is the import path, if known.
	Path string

	// Name is the package clause name.
	Name string
}

// IsZero returns true if the package info is empty.
func (p PackageInfo) IsZero() bool {
	return p.Path == "" && p.Name == ""
}
