package defaults

import (
	"sync"

	"github.com/broady/jsonstruct/jsonstructgen/ir"
)

// Policy is the part of the generation configuration that affects defaults.
type Policy struct {
	// InitializeCollections makes list and set fields without a default
	// start out as empty containers instead of nil.
	InitializeCollections bool
}

// Synthesizer builds initializer expressions for schema defaults.
// It keeps no per-property state and is safe for concurrent use.
type Synthesizer struct {
	policy   Policy
	resolver Resolver

	mu       sync.Mutex
	warnings []ir.Warning
}

// New returns a Synthesizer. r resolves enum references and may be nil.
func New(policy Policy, r Resolver) *Synthesizer {
	return &Synthesizer{policy: policy, resolver: r}
}

// Apply decides the initializer for a property with the given default node
// and field type. ok is false when the field keeps its zero value.
//
// The first matching rule wins:
//  1. an explicit null default on a non-primitive field is the null marker,
//     and on a primitive field it is ignored;
//  2. list fields follow the container rule;
//  3. set fields follow the container rule;
//  4. string fields with any default node get a string literal;
//  5. any other non-empty default goes through Literal;
//  6. otherwise there is no initializer.
func (s *Synthesizer) Apply(name string, node ir.Node, fieldType ir.TypeDescriptor) (expr ir.Expr, ok bool, err error) {
	present := node.Present() && node.AsText() != ""
	kind := Classify(fieldType, s.resolver)

	switch {
	case present && node.IsNull() && !IsPrimitive(fieldType):
		return ir.NullExpr{}, true, nil
	case node.IsNull() && IsPrimitive(fieldType):
		return nil, false, nil
	case kind == KindList, kind == KindSet:
		expr, err = s.Container(fieldType, node)
	case kind == KindString && node.Present():
		expr = ir.StringLit(node.AsText())
	case present:
		expr, err = s.Literal(fieldType, node.AsText())
	default:
		return nil, false, nil
	}
	if err != nil {
		return nil, false, withProperty(err, name)
	}
	return expr, true, nil
}

// ApplyField runs Apply for f and stores the result in f.Init.
func (s *Synthesizer) ApplyField(f *ir.FieldDescriptor) error {
	name := f.JSONName
	if name == "" {
		name = f.Name
	}
	expr, ok, err := s.Apply(name, f.Default, f.Type)
	if err != nil {
		return err
	}
	if ok {
		f.Init = expr
	}
	return nil
}

// ApplySchema runs ApplyField over every field of every struct in schema.
// It stops at the first error.
func (s *Synthesizer) ApplySchema(schema *ir.Schema) error {
	for _, sd := range schema.Structs() {
		for i := range sd.Fields {
			if err := s.ApplyField(&sd.Fields[i]); err != nil {
				return err
			}
		}
	}
	return nil
}

// Warnings returns the warnings recorded so far.
func (s *Synthesizer) Warnings() []ir.Warning {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]ir.Warning, len(s.warnings))
	copy(out, s.warnings)
	return out
}

func (s *Synthesizer) warn(w ir.Warning) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.warnings = append(s.warnings, w)
}
