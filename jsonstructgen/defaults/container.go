package defaults

import "github.com/broady/jsonstruct/jsonstructgen/ir"

// Container builds the initializer for a list or set field.
//
// A non-empty sequence becomes a new container holding one synthesized
// element per item, in order. Anything else, including an empty sequence,
// yields an empty container when the policy initializes collections and
// the null marker otherwise. Duplicate set items are kept; the runtime set
// constructor drops them.
func (s *Synthesizer) Container(containerType ir.TypeDescriptor, node ir.Node) (ir.Expr, error) {
	container := ir.Unwrap(containerType)
	elem := elementType(container)

	if node.Kind == ir.NodeSequence && len(node.Items) > 0 {
		args := make([]ir.Expr, 0, len(node.Items))
		for _, item := range node.Items {
			if item.IsNull() {
				args = append(args, ir.NullExpr{})
				continue
			}
			e, err := s.Literal(elem, item.AsText())
			if err != nil {
				return nil, err
			}
			args = append(args, e)
		}
		return ir.New(container, args...), nil
	}

	if s.policy.InitializeCollections {
		return ir.New(container), nil
	}
	return ir.NullExpr{}, nil
}
