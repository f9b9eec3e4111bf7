package ir

import (
	"encoding/json"
	"testing"
)

func TestNode_AsText(t *testing.T) {
	tests := []struct {
		name string
		node Node
		want string
	}{
		{"absent", Node{}, ""},
		{"null", Null(), "null"},
		{"scalar", Scalar("abc"), "abc"},
		{"empty scalar", Scalar(""), ""},
		{"sequence", Sequence(Scalar("a")), ""},
		{"object", Node{Kind: NodeObject}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.AsText(); got != tt.want {
				t.Errorf("AsText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNode_Present(t *testing.T) {
	var absent Node
	if absent.Present() {
		t.Error("zero Node should be absent")
	}
	if !Scalar("").Present() {
		t.Error("empty scalar should still be present")
	}
	if !Null().Present() || !Null().IsNull() {
		t.Error("null marker should be present and null")
	}
}

func TestNodeFromValue(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		wantKind NodeKind
		wantText string
	}{
		{"nil", nil, NodeNull, ""},
		{"string", "hello", NodeScalar, "hello"},
		{"true", true, NodeScalar, "true"},
		{"false", false, NodeScalar, "false"},
		{"json number keeps spelling", json.Number("1.50"), NodeScalar, "1.50"},
		{"float64", float64(2.5), NodeScalar, "2.5"},
		{"int", 42, NodeScalar, "42"},
		{"object", map[string]any{"a": 1}, NodeObject, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := NodeFromValue(tt.value)
			if n.Kind != tt.wantKind {
				t.Errorf("Kind = %v, want %v", n.Kind, tt.wantKind)
			}
			if n.Text != tt.wantText {
				t.Errorf("Text = %q, want %q", n.Text, tt.wantText)
			}
		})
	}
}

func TestNodeFromValue_Sequence(t *testing.T) {
	n := NodeFromValue([]any{"a", nil, json.Number("3")})
	if n.Kind != NodeSequence {
		t.Fatalf("Kind = %v, want NodeSequence", n.Kind)
	}
	if len(n.Items) != 3 {
		t.Fatalf("len(Items) = %d, want 3", len(n.Items))
	}
	if n.Items[0].Text != "a" || !n.Items[1].IsNull() || n.Items[2].Text != "3" {
		t.Errorf("unexpected items: %+v", n.Items)
	}
}
