package ir

// Schema represents the set of named types resolved from one or more schema
// documents.
type Schema struct {
	// Package is the Go package the types are generated into.
	Package PackageInfo

	// Types contains named type descriptors to generate.
	// Only Struct and Enum descriptors appear here; expression types appear
	// nested within struct fields.
	Types []TypeDescriptor

	// Warnings contains non-fatal issues encountered while building the schema.
	Warnings []Warning
}

// AddType adds a named type descriptor to the schema.
func (s *Schema) AddType(t TypeDescriptor) {
	s.Types = append(s.Types, t)
}

// AddWarning adds a warning to the schema.
func (s *Schema) AddWarning(w Warning) {
	s.Warnings = append(s.Warnings, w)
}

// FindType looks up a type by name. Returns nil if not found.
// An empty Package in name matches types of any package.
func (s *Schema) FindType(name GoIdentifier) TypeDescriptor {
	if s == nil {
		return nil
	}
	for _, t := range s.Types {
		tn := t.TypeName()
		if tn == name || (name.Package == "" && tn.Name == name.Name) {
			return t
		}
	}
	return nil
}

// Structs returns the struct descriptors in declaration order.
func (s *Schema) Structs() []*StructDescriptor {
	var out []*StructDescriptor
	for _, t := range s.Types {
		if sd, ok := t.(*StructDescriptor); ok {
			out = append(out, sd)
		}
	}
	return out
}

// Validate checks the schema for structural issues.
// Returns all validation errors found (not just the first).
func (s *Schema) Validate() []error {
	var errors []*ValidationError

	typeNames := make(map[GoIdentifier]bool)
	for _, t := range s.Types {
		name := t.TypeName()
		if name.IsZero() {
			continue
		}
		if typeNames[name] {
			errors = append(errors, &ValidationError{
				Code:    "duplicate_type",
				Message: "duplicate type name: " + name.Name,
			})
		}
		typeNames[name] = true
	}

	for _, t := range s.Types {
		switch d := t.(type) {
		case *StructDescriptor:
			for _, field := range d.Fields {
				ctx := "field " + d.Name.Name + "." + field.Name
				errors = append(errors, validateTypeReferences(field.Type, typeNames, ctx)...)
				errors = append(errors, validateSetElements(field.Type, ctx)...)
			}
		case *EnumDescriptor:
			if d.Backing == nil {
				errors = append(errors, &ValidationError{
					Code:    "missing_enum_backing",
					Message: "enum " + d.Name.Name + " has no backing type",
				})
			}
			if d.Lookup.Name == "" {
				errors = append(errors, &ValidationError{
					Code:    "missing_enum_lookup",
					Message: "enum " + d.Name.Name + " has no lookup factory",
				})
			}
		}
	}

	var result []error
	for _, e := range errors {
		result = append(result, e)
	}
	return result
}

// validateTypeReferences recursively walks a TypeDescriptor and checks that all
// ReferenceDescriptors point to types that exist in typeNames.
func validateTypeReferences(td TypeDescriptor, typeNames map[GoIdentifier]bool, context string) []*ValidationError {
	if td == nil {
		return nil
	}

	var errors []*ValidationError

	switch d := td.(type) {
	case *ReferenceDescriptor:
		if !typeNames[d.Target] {
			errors = append(errors, &ValidationError{
				Code:    "missing_type_reference",
				Message: context + " references unknown type: " + d.Target.Name,
			})
		}
	case *ArrayDescriptor:
		errors = append(errors, validateTypeReferences(d.Element, typeNames, context)...)
	case *SetDescriptor:
		errors = append(errors, validateTypeReferences(d.Element, typeNames, context)...)
	case *MapDescriptor:
		errors = append(errors, validateTypeReferences(d.Key, typeNames, context)...)
		errors = append(errors, validateTypeReferences(d.Value, typeNames, context)...)
	case *PtrDescriptor:
		errors = append(errors, validateTypeReferences(d.Element, typeNames, context)...)
	}

	return errors
}

// validateSetElements rejects set element types that are not comparable in Go.
func validateSetElements(td TypeDescriptor, context string) []*ValidationError {
	switch d := td.(type) {
	case *SetDescriptor:
		switch d.Element.(type) {
		case *ArrayDescriptor, *SetDescriptor, *MapDescriptor:
			return []*ValidationError{{
				Code:    "incomparable_set_element",
				Message: context + ": set elements must be comparable, got " + d.Element.Kind().String(),
			}}
		}
		return validateSetElements(d.Element, context)
	case *ArrayDescriptor:
		return validateSetElements(d.Element, context)
	case *MapDescriptor:
		return validateSetElements(d.Value, context)
	case *PtrDescriptor:
		return validateSetElements(d.Element, context)
	}
	return nil
}

// ValidationError represents a schema validation error.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
