package provider

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/broady/jsonstruct/jsonstructgen/ir"
)

// builder resolves one schema document into named types.
type builder struct {
	opts   Options
	root   *object
	file   string
	schema *ir.Schema

	// named caches the reference to each definition by JSON pointer, so
	// shared and recursive $refs resolve to one type.
	named map[string]ir.TypeDescriptor
	names nameSet
}

func newBuilder(opts Options, root *object, file string) *builder {
	return &builder{
		opts:   opts,
		root:   root,
		file:   file,
		schema: &ir.Schema{},
		named:  make(map[string]ir.TypeDescriptor),
		names:  make(nameSet),
	}
}

// resolve returns the type of the schema node at pointer. hint names any
// struct or enum the node declares inline.
func (b *builder) resolve(hint, pointer string, node *object) (ir.TypeDescriptor, error) {
	if node == nil {
		return ir.Any(), nil
	}
	if ref := node.string("$ref"); ref != "" {
		return b.resolveRef(ref)
	}

	typ, nullable := schemaType(node)
	if _, ok := node.get("enum"); ok {
		return b.buildEnum(hint, pointer, typ, node)
	}

	var td ir.TypeDescriptor
	switch typ {
	case "string":
		td = b.stringType(node.string("format"))
	case "integer":
		td = b.integerType(node.string("format"))
	case "number":
		td = b.numberType()
	case "boolean":
		td = ir.Bool()
	case "array":
		elem, err := b.resolve(hint+"Item", pointer+"/items", node.object("items"))
		if err != nil {
			return nil, err
		}
		if node.bool("uniqueItems") {
			return ir.Set(elem), nil
		}
		return ir.Slice(elem), nil
	case "object", "":
		if node.object("properties") != nil {
			return b.buildObject(hint, pointer, node)
		}
		if typ == "" {
			return ir.Any(), nil
		}
		value := ir.TypeDescriptor(ir.Any())
		if ap := node.object("additionalProperties"); ap != nil {
			var err error
			value, err = b.resolve(hint+"Value", pointer+"/additionalProperties", ap)
			if err != nil {
				return nil, err
			}
		}
		return ir.Map(ir.String(), value), nil
	default:
		return ir.Any(), nil
	}

	if (nullable || !b.opts.UsePrimitives) && isValueScalar(td) {
		return ir.Ptr(td), nil
	}
	return td, nil
}

// schemaType returns the non-null entry of "type" and whether "null" was
// also allowed.
func schemaType(node *object) (string, bool) {
	v, _ := node.get("type")
	switch t := v.(type) {
	case string:
		return t, false
	case []any:
		var typ string
		nullable := false
		for _, item := range t {
			s, _ := item.(string)
			if s == "null" {
				nullable = true
			} else if typ == "" {
				typ = s
			}
		}
		return typ, nullable
	}
	return "", false
}

func (b *builder) stringType(format string) ir.TypeDescriptor {
	switch format {
	case "date-time":
		return ir.Time()
	case "date":
		if b.opts.UseCivilDates {
			return ir.Date()
		}
	case "time":
		if b.opts.UseCivilDates {
			return ir.TimeOfDay()
		}
	case "uri":
		return ir.URI()
	case "utc-millisec":
		return ir.Int(64)
	}
	return ir.String()
}

func (b *builder) integerType(format string) ir.TypeDescriptor {
	switch {
	case b.opts.UseBigIntegers:
		return ir.BigInt()
	case b.opts.UseLongIntegers, format == "int64":
		return ir.Int(64)
	default:
		return ir.Int(32)
	}
}

func (b *builder) numberType() ir.TypeDescriptor {
	switch {
	case b.opts.UseBigDecimals:
		return ir.Decimal()
	case b.opts.UseFloat32:
		return ir.Float(32)
	default:
		return ir.Float(64)
	}
}

// isValueScalar reports whether td is a number or boolean that needs a
// pointer to be optional.
func isValueScalar(td ir.TypeDescriptor) bool {
	p, ok := td.(*ir.PrimitiveDescriptor)
	if !ok {
		return false
	}
	switch p.PrimitiveKind {
	case ir.PrimitiveBool, ir.PrimitiveInt, ir.PrimitiveFloat:
		return true
	}
	return false
}

// resolveRef follows a local reference such as "#/definitions/Address".
func (b *builder) resolveRef(ref string) (ir.TypeDescriptor, error) {
	if td, ok := b.named[ref]; ok {
		return td, nil
	}
	if !strings.HasPrefix(ref, "#") {
		b.schema.AddWarning(ir.Warning{
			Code:    "unsupported_ref",
			Message: fmt.Sprintf("external reference %q is not followed; using any", ref),
		})
		return ir.Any(), nil
	}

	target, err := b.lookup(ref)
	if err != nil {
		return nil, err
	}
	segments := strings.Split(ref, "/")
	hint := exportedName(target.string("title"))
	if hint == "" {
		hint = exportedName(unescapePointer(segments[len(segments)-1]))
	}
	if hint == "" {
		hint = "Definition"
	}
	return b.resolve(hint, ref, target)
}

// resolveDefinitions declares every object and enum under "definitions"
// and "$defs", including those no property refers to.
func (b *builder) resolveDefinitions() error {
	for _, section := range []string{"definitions", "$defs"} {
		defs := b.root.object(section)
		if defs == nil {
			continue
		}
		for _, key := range defs.keys {
			ref := "#/" + section + "/" + strings.NewReplacer("~", "~0", "/", "~1").Replace(key)
			if _, err := b.resolveRef(ref); err != nil {
				return err
			}
		}
	}
	return nil
}

// lookup walks a JSON pointer from the document root.
func (b *builder) lookup(ref string) (*object, error) {
	node := b.root
	pointer := strings.TrimPrefix(strings.TrimPrefix(ref, "#"), "/")
	if pointer == "" {
		return node, nil
	}
	for _, seg := range strings.Split(pointer, "/") {
		next := node.object(unescapePointer(seg))
		if next == nil {
			return nil, fmt.Errorf("unresolved reference %q", ref)
		}
		node = next
	}
	return node, nil
}

func unescapePointer(s string) string {
	return strings.NewReplacer("~1", "/", "~0", "~").Replace(s)
}

// buildObject declares a struct for node and returns a reference to it.
func (b *builder) buildObject(hint, pointer string, node *object) (ir.TypeDescriptor, error) {
	name := b.names.claim(cmp.Or(hint, "Object"))
	ref := ir.Ref(name, "")
	b.named[pointer] = ref

	sd := &ir.StructDescriptor{
		Name:          ir.GoIdentifier{Name: name},
		Documentation: documentation(node),
		Source:        ir.Source{File: b.file, Pointer: pointer},
	}
	b.schema.AddType(sd)

	required := make(map[string]bool)
	if list, ok := node.get("required"); ok {
		items, _ := list.([]any)
		for _, item := range items {
			if s, ok := item.(string); ok {
				required[s] = true
			}
		}
	}

	props := node.object("properties")
	if props == nil {
		return ref, nil
	}
	fieldNames := make(nameSet)
	for _, key := range props.keys {
		prop, ok := props.values[key].(*object)
		if !ok {
			return nil, fmt.Errorf("%s/properties/%s: property schema must be an object", pointer, key)
		}
		goName := exportedName(key)
		if goName == "" {
			goName = "Field"
		}
		goName = fieldNames.claim(goName)

		hint := exportedName(prop.string("title"))
		if hint == "" {
			hint = goName
		}
		td, err := b.resolve(hint, pointer+"/properties/"+key, prop)
		if err != nil {
			return nil, err
		}
		sd.Fields = append(sd.Fields, ir.FieldDescriptor{
			Name:          goName,
			JSONName:      key,
			Type:          td,
			Required:      required[key],
			Default:       defaultNode(prop),
			Documentation: documentation(prop),
		})
	}
	return ref, nil
}

// buildEnum declares an enum for node and returns a reference to it.
func (b *builder) buildEnum(hint, pointer, typ string, node *object) (ir.TypeDescriptor, error) {
	if td, ok := b.named[pointer]; ok {
		return td, nil
	}
	name := b.names.claim(cmp.Or(hint, "Enum"))
	ref := ir.Ref(name, "")
	b.named[pointer] = ref

	values, _ := node.get("enum")
	items, ok := values.([]any)
	if !ok || len(items) == 0 {
		return nil, fmt.Errorf("%s: enum must be a non-empty array", pointer)
	}

	var backing ir.TypeDescriptor
	switch typ {
	case "integer":
		backing = b.integerType(node.string("format"))
	case "number":
		backing = b.numberType()
	case "string", "":
		backing = ir.String()
	default:
		return nil, fmt.Errorf("%s: enum of type %q is not supported", pointer, typ)
	}
	// Constants need a basic backing type.
	switch backing.(*ir.PrimitiveDescriptor).PrimitiveKind {
	case ir.PrimitiveBigInt:
		backing = ir.Int(64)
	case ir.PrimitiveDecimal:
		backing = ir.Float(64)
	}

	ed := &ir.EnumDescriptor{
		Name:          ir.GoIdentifier{Name: name},
		Backing:       backing,
		Lookup:        ir.GoIdentifier{Name: "MustParse" + name},
		Documentation: documentation(node),
		Source:        ir.Source{File: b.file, Pointer: pointer},
	}

	memberNames := make(nameSet)
	var seen []string
	for _, item := range items {
		if item == nil {
			continue
		}
		value := scalarText(item)
		if slices.Contains(seen, value) {
			continue
		}
		seen = append(seen, value)
		ed.Members = append(ed.Members, ir.EnumMember{
			Name:  memberNames.claim(name + memberName(value)),
			Value: value,
		})
	}
	b.schema.AddType(ed)
	return ref, nil
}

func defaultNode(prop *object) ir.Node {
	v, ok := prop.get("default")
	if !ok {
		return ir.Node{}
	}
	return ir.NodeFromValue(plain(v))
}

func scalarText(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	default:
		return ir.NodeFromValue(v).AsText()
	}
}

// documentation takes the summary from "title", or from the first line of
// "description".
func documentation(node *object) ir.Documentation {
	desc := strings.TrimSpace(node.string("description"))
	summary := strings.TrimSpace(node.string("title"))
	if summary == "" {
		summary, _, _ = strings.Cut(desc, "\n")
	}
	return ir.Documentation{Summary: summary, Body: desc}
}
