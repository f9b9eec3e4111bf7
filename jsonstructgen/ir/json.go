package ir

import json "github.com/goccy/go-json"

// JSON serialization support for IR types.
// All descriptors include a "kind" field for type discrimination.

// MarshalJSON implements json.Marshaler for StructDescriptor.
func (d *StructDescriptor) MarshalJSON() ([]byte, error) {
	type Alias StructDescriptor
	return json.Marshal(&struct {
		Kind string `json:"kind"`
		*Alias
	}{
		Kind:  "struct",
		Alias: (*Alias)(d),
	})
}

// MarshalJSON implements json.Marshaler for EnumDescriptor.
func (d *EnumDescriptor) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Kind    string         `json:"kind"`
		Name    GoIdentifier   `json:"name"`
		Backing TypeDescriptor `json:"backing"`
		Lookup  GoIdentifier   `json:"lookup"`
		Members []EnumMember   `json:"members"`
	}{
		Kind:    "enum",
		Name:    d.Name,
		Backing: d.Backing,
		Lookup:  d.Lookup,
		Members: d.Members,
	})
}

// MarshalJSON implements json.Marshaler for PrimitiveDescriptor.
func (d *PrimitiveDescriptor) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Kind          string `json:"kind"`
		PrimitiveKind string `json:"primitiveKind"`
		BitSize       int    `json:"bitSize,omitempty"`
	}{
		Kind:          "primitive",
		PrimitiveKind: d.PrimitiveKind.String(),
		BitSize:       d.BitSize,
	})
}

// MarshalJSON implements json.Marshaler for ArrayDescriptor.
func (d *ArrayDescriptor) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Kind    string         `json:"kind"`
		Element TypeDescriptor `json:"element"`
	}{
		Kind:    "array",
		Element: d.Element,
	})
}

// MarshalJSON implements json.Marshaler for SetDescriptor.
func (d *SetDescriptor) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Kind    string         `json:"kind"`
		Element TypeDescriptor `json:"element"`
	}{
		Kind:    "set",
		Element: d.Element,
	})
}

// MarshalJSON implements json.Marshaler for MapDescriptor.
func (d *MapDescriptor) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Kind  string         `json:"kind"`
		Key   TypeDescriptor `json:"key"`
		Value TypeDescriptor `json:"value"`
	}{
		Kind:  "map",
		Key:   d.Key,
		Value: d.Value,
	})
}

// MarshalJSON implements json.Marshaler for ReferenceDescriptor.
func (d *ReferenceDescriptor) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Kind string `json:"kind"`
		Name string `json:"name"`
		Pkg  string `json:"package,omitempty"`
	}{
		Kind: "reference",
		Name: d.Target.Name,
		Pkg:  d.Target.Package,
	})
}

// MarshalJSON implements json.Marshaler for PtrDescriptor.
func (d *PtrDescriptor) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Kind    string         `json:"kind"`
		Element TypeDescriptor `json:"element"`
	}{
		Kind:    "ptr",
		Element: d.Element,
	})
}

// MarshalJSON implements json.Marshaler for GoIdentifier.
func (id GoIdentifier) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Name    string `json:"name"`
		Package string `json:"package,omitempty"`
	}{
		Name:    id.Name,
		Package: id.Package,
	})
}

// MarshalJSON implements json.Marshaler for FieldDescriptor.
func (f FieldDescriptor) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Name     string         `json:"name"`
		JSONName string         `json:"jsonName"`
		Type     TypeDescriptor `json:"type"`
		Required bool           `json:"required,omitempty"`
		Default  *Node          `json:"default,omitempty"`
		Init     Expr           `json:"init,omitempty"`
		Doc      string         `json:"doc,omitempty"`
	}{
		Name:     f.Name,
		JSONName: f.JSONName,
		Type:     f.Type,
		Required: f.Required,
		Default:  nodeOrNil(f.Default),
		Init:     f.Init,
		Doc:      f.Documentation.Summary,
	})
}

func nodeOrNil(n Node) *Node {
	if !n.Present() {
		return nil
	}
	return &n
}

// MarshalJSON implements json.Marshaler for EnumMember.
func (m EnumMember) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Name  string `json:"name"`
		Value string `json:"value"`
		Doc   string `json:"doc,omitempty"`
	}{
		Name:  m.Name,
		Value: m.Value,
		Doc:   m.Documentation.Summary,
	})
}

// MarshalJSON implements json.Marshaler for Node.
func (n Node) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Kind  string `json:"kind"`
		Text  string `json:"text,omitempty"`
		Items []Node `json:"items,omitempty"`
	}{
		Kind:  n.Kind.String(),
		Text:  n.Text,
		Items: n.Items,
	})
}

// MarshalJSON implements json.Marshaler for NullExpr.
func (NullExpr) MarshalJSON() ([]byte, error) {
	return []byte(`{"expr":"null"}`), nil
}

// MarshalJSON implements json.Marshaler for LiteralExpr.
func (e *LiteralExpr) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Expr  string         `json:"expr"`
		Type  TypeDescriptor `json:"type"`
		Value any            `json:"value"`
	}{
		Expr:  "literal",
		Type:  e.Type,
		Value: e.Value,
	})
}

// MarshalJSON implements json.Marshaler for NewExpr.
func (e *NewExpr) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Expr string         `json:"expr"`
		Type TypeDescriptor `json:"type"`
		Args []Expr         `json:"args"`
	}{
		Expr: "new",
		Type: e.Type,
		Args: e.Args,
	})
}

// MarshalJSON implements json.Marshaler for CallExpr.
func (e *CallExpr) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Expr string         `json:"expr"`
		Type TypeDescriptor `json:"type"`
		Func GoIdentifier   `json:"func"`
		Args []Expr         `json:"args"`
	}{
		Expr: "call",
		Type: e.Type,
		Func: e.Func,
		Args: e.Args,
	})
}
