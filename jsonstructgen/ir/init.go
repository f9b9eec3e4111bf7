package ir

// ExprKind identifies the category of an initializer expression.
type ExprKind int

const (
	ExprNull    ExprKind = iota // The null/nil marker
	ExprLiteral                 // A typed literal
	ExprNew                     // A constructor invocation
	ExprCall                    // A static factory invocation
)

// String returns the string representation of the expression kind.
func (k ExprKind) String() string {
	switch k {
	case ExprNull:
		return "Null"
	case ExprLiteral:
		return "Literal"
	case ExprNew:
		return "New"
	case ExprCall:
		return "Call"
	default:
		return "Unknown"
	}
}

// Expr is an initializer expression produced by default value synthesis
// and rendered by an emitter. Expressions are immutable once built.
type Expr interface {
	// ExprKind returns the expression kind for type switching.
	ExprKind() ExprKind

	sealedExpr()
}

// NullExpr is the null marker. Emitters render it as nil, or leave a
// non-nilable field at its zero value.
type NullExpr struct{}

// ExprKind returns ExprNull.
func (NullExpr) ExprKind() ExprKind { return ExprNull }
func (NullExpr) sealedExpr()        {}

// LiteralExpr is a literal of a primitive type.
type LiteralExpr struct {
	// Type is the literal's type. Emitters use it to keep numeric width,
	// e.g. a float32 literal is never rendered as an untyped float64.
	Type TypeDescriptor

	// Value is one of string, int32, int64, float32, float64 or bool.
	Value any
}

// ExprKind returns ExprLiteral.
func (*LiteralExpr) ExprKind() ExprKind { return ExprLiteral }
func (*LiteralExpr) sealedExpr()        {}

// NewExpr constructs a value of Type from Args. For container types
// (ArrayDescriptor, SetDescriptor) Args are the elements, in order; an
// empty Args builds an empty container.
type NewExpr struct {
	Type TypeDescriptor
	Args []Expr
}

// ExprKind returns ExprNew.
func (*NewExpr) ExprKind() ExprKind { return ExprNew }
func (*NewExpr) sealedExpr()        {}

// CallExpr invokes the factory Func, which returns a value of Type.
type CallExpr struct {
	Type TypeDescriptor
	Func GoIdentifier
	Args []Expr
}

// ExprKind returns ExprCall.
func (*CallExpr) ExprKind() ExprKind { return ExprCall }
func (*CallExpr) sealedExpr()        {}

// Lit returns a LiteralExpr.
func Lit(t TypeDescriptor, v any) *LiteralExpr {
	return &LiteralExpr{Type: t, Value: v}
}

// StringLit returns a string LiteralExpr.
func StringLit(s string) *LiteralExpr {
	return &LiteralExpr{Type: String(), Value: s}
}

// New returns a NewExpr.
func New(t TypeDescriptor, args ...Expr) *NewExpr {
	return &NewExpr{Type: t, Args: args}
}

// Call returns a CallExpr.
func Call(t TypeDescriptor, fn GoIdentifier, args ...Expr) *CallExpr {
	return &CallExpr{Type: t, Func: fn, Args: args}
}
