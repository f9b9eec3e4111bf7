package ir

import (
	"fmt"
	"strconv"
)

// NodeKind identifies the shape of a schema default value.
type NodeKind int

const (
	NodeAbsent   NodeKind = iota // No "default" keyword
	NodeNull                     // "default": null
	NodeScalar                   // String, number or boolean
	NodeSequence                 // Array
	NodeObject                   // Object; carries no scalar text
)

// String returns the string representation of the node kind.
func (k NodeKind) String() string {
	switch k {
	case NodeAbsent:
		return "Absent"
	case NodeNull:
		return "Null"
	case NodeScalar:
		return "Scalar"
	case NodeSequence:
		return "Sequence"
	case NodeObject:
		return "Object"
	default:
		return "Unknown"
	}
}

// Node is a schema default value. The zero Node is absent.
type Node struct {
	Kind NodeKind

	// Text is the scalar text for NodeScalar. Numbers keep their document
	// spelling ("1.50" stays "1.50").
	Text string

	// Items holds the elements of a NodeSequence in document order.
	Items []Node
}

// Null returns the explicit null marker.
func Null() Node { return Node{Kind: NodeNull} }

// Scalar returns a scalar node with the given text.
func Scalar(text string) Node { return Node{Kind: NodeScalar, Text: text} }

// Sequence returns a sequence node.
func Sequence(items ...Node) Node {
	return Node{Kind: NodeSequence, Items: items}
}

// Present reports whether the schema declared a default at all.
func (n Node) Present() bool { return n.Kind != NodeAbsent }

// IsNull reports whether n is the explicit null marker.
func (n Node) IsNull() bool { return n.Kind == NodeNull }

// AsText returns the textual form of n: the scalar text, "null" for the
// null marker and "" for absent, sequence and object nodes.
func (n Node) AsText() string {
	switch n.Kind {
	case NodeScalar:
		return n.Text
	case NodeNull:
		return "null"
	default:
		return ""
	}
}

// NodeFromValue converts a decoded JSON or YAML value into a Node.
// Numbers should be decoded as json.Number (or any fmt.Stringer) so their
// text survives unchanged; float64 and int values are formatted back.
func NodeFromValue(v any) Node {
	switch t := v.(type) {
	case nil:
		return Null()
	case string:
		return Scalar(t)
	case bool:
		return Scalar(strconv.FormatBool(t))
	case float64:
		return Scalar(strconv.FormatFloat(t, 'f', -1, 64))
	case int:
		return Scalar(strconv.Itoa(t))
	case int64:
		return Scalar(strconv.FormatInt(t, 10))
	case uint64:
		return Scalar(strconv.FormatUint(t, 10))
	case []any:
		items := make([]Node, len(t))
		for i, item := range t {
			items[i] = NodeFromValue(item)
		}
		return Node{Kind: NodeSequence, Items: items}
	case map[string]any:
		return Node{Kind: NodeObject}
	case fmt.Stringer:
		return Scalar(t.String())
	default:
		return Scalar(fmt.Sprint(t))
	}
}
