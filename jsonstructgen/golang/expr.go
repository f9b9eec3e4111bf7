package golang

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/broady/jsonstruct/jsonstructgen/ir"
)

// EmitTypeExpr renders a type expression.
func (e *Emitter) EmitTypeExpr(td ir.TypeDescriptor) (string, error) {
	switch t := td.(type) {
	case *ir.PrimitiveDescriptor:
		return e.emitPrimitive(t), nil
	case *ir.ArrayDescriptor:
		elem, err := e.EmitTypeExpr(t.Element)
		if err != nil {
			return "", err
		}
		return "[]" + elem, nil
	case *ir.SetDescriptor:
		elem, err := e.EmitTypeExpr(t.Element)
		if err != nil {
			return "", err
		}
		return "*" + e.runtime("Set") + "[" + elem + "]", nil
	case *ir.MapDescriptor:
		key, err := e.EmitTypeExpr(t.Key)
		if err != nil {
			return "", err
		}
		value, err := e.EmitTypeExpr(t.Value)
		if err != nil {
			return "", err
		}
		return "map[" + key + "]" + value, nil
	case *ir.ReferenceDescriptor:
		name := e.qualify(t.Target)
		if _, ok := e.schema.FindType(t.Target).(*ir.StructDescriptor); ok {
			return "*" + name, nil
		}
		return name, nil
	case *ir.EnumDescriptor:
		return e.qualify(t.Name), nil
	case *ir.StructDescriptor:
		return "*" + e.qualify(t.Name), nil
	case *ir.PtrDescriptor:
		elem, err := e.EmitTypeExpr(t.Element)
		if err != nil {
			return "", err
		}
		if e.isNilable(t.Element) {
			return elem, nil
		}
		return "*" + elem, nil
	case nil:
		return "", fmt.Errorf("missing type")
	default:
		return "", fmt.Errorf("unsupported type kind: %s", td.Kind())
	}
}

func (e *Emitter) emitPrimitive(p *ir.PrimitiveDescriptor) string {
	switch p.PrimitiveKind {
	case ir.PrimitiveBool:
		return "bool"
	case ir.PrimitiveInt:
		if p.BitSize == 0 {
			return "int"
		}
		return "int" + strconv.Itoa(p.BitSize)
	case ir.PrimitiveUint:
		if p.BitSize == 0 {
			return "uint"
		}
		return "uint" + strconv.Itoa(p.BitSize)
	case ir.PrimitiveFloat:
		if p.BitSize == 32 {
			return "float32"
		}
		return "float64"
	case ir.PrimitiveString:
		return "string"
	case ir.PrimitiveBigInt:
		e.use("math/big")
		return "*big.Int"
	case ir.PrimitiveDecimal:
		e.use(ir.DecimalPackage)
		return "*" + packageAlias(ir.DecimalPackage) + ".Decimal"
	case ir.PrimitiveTime:
		e.use("time")
		return "time.Time"
	case ir.PrimitiveDate:
		return e.runtime("Date")
	case ir.PrimitiveTimeOfDay:
		return e.runtime("TimeOfDay")
	case ir.PrimitiveURI:
		e.use("net/url")
		return "*url.URL"
	default:
		return "any"
	}
}

// qualify renders a named type or function, importing its package when it
// is not the package being generated.
func (e *Emitter) qualify(id ir.GoIdentifier) string {
	if id.Package == "" || id.Package == e.schema.Package.Path {
		return id.Name
	}
	e.use(id.Package)
	return packageAlias(id.Package) + "." + id.Name
}

// isNilable reports whether the Go type emitted for td has nil as a value.
func (e *Emitter) isNilable(td ir.TypeDescriptor) bool {
	switch t := td.(type) {
	case *ir.PtrDescriptor, *ir.ArrayDescriptor, *ir.SetDescriptor, *ir.MapDescriptor, *ir.StructDescriptor:
		return true
	case *ir.ReferenceDescriptor:
		_, isStruct := e.schema.FindType(t.Target).(*ir.StructDescriptor)
		return isStruct
	case *ir.PrimitiveDescriptor:
		switch t.PrimitiveKind {
		case ir.PrimitiveBigInt, ir.PrimitiveDecimal, ir.PrimitiveURI, ir.PrimitiveAny:
			return true
		}
	}
	return false
}

// EmitValue renders expr as a value of type target. ok is false for a null
// expression against a type that cannot be nil; the caller then leaves the
// zero value in place.
func (e *Emitter) EmitValue(expr ir.Expr, target ir.TypeDescriptor) (value string, ok bool, err error) {
	if expr.ExprKind() == ir.ExprNull {
		if !e.isNilable(target) {
			return "", false, nil
		}
		return "nil", true, nil
	}
	if p, isPtr := target.(*ir.PtrDescriptor); isPtr && !e.isNilable(p.Element) {
		inner, ok, err := e.EmitValue(expr, p.Element)
		if err != nil || !ok {
			return "", ok, err
		}
		return e.runtime("Ptr") + "(" + inner + ")", true, nil
	}
	value, err = e.EmitExpr(expr, true)
	return value, err == nil, err
}

// element renders a container element, using the zero value for a null
// element of a type that cannot be nil.
func (e *Emitter) element(expr ir.Expr, elem ir.TypeDescriptor) (string, error) {
	value, ok, err := e.EmitValue(expr, elem)
	if err != nil {
		return "", err
	}
	if !ok {
		return e.zeroValue(elem)
	}
	return value, nil
}

// EmitExpr renders an initializer expression. typed wraps numeric
// literals in a conversion to their declared width, which generic calls
// such as jsonstruct.Ptr need to infer the right type.
func (e *Emitter) EmitExpr(expr ir.Expr, typed bool) (string, error) {
	switch x := expr.(type) {
	case ir.NullExpr:
		return "nil", nil
	case *ir.LiteralExpr:
		return e.emitLiteral(x, typed)
	case *ir.NewExpr:
		return e.emitNew(x)
	case *ir.CallExpr:
		fn := e.qualify(x.Func)
		args, err := e.emitArgs(x.Args)
		if err != nil {
			return "", err
		}
		return fn + "(" + args + ")", nil
	default:
		return "", fmt.Errorf("unsupported expression %T", expr)
	}
}

func (e *Emitter) emitArgs(args []ir.Expr) (string, error) {
	parts := make([]string, len(args))
	for i, arg := range args {
		s, err := e.EmitExpr(arg, false)
		if err != nil {
			return "", err
		}
		parts[i] = s
	}
	return strings.Join(parts, ", "), nil
}

func (e *Emitter) emitLiteral(lit *ir.LiteralExpr, typed bool) (string, error) {
	var text string
	switch v := lit.Value.(type) {
	case string:
		return strconv.Quote(v), nil
	case bool:
		return strconv.FormatBool(v), nil
	case int32:
		text = strconv.FormatInt(int64(v), 10)
	case int64:
		text = strconv.FormatInt(v, 10)
	case float32:
		if special := e.nonFinite(float64(v)); special != "" {
			return "float32(" + special + ")", nil
		}
		text = formatFloat(float64(v), 32)
	case float64:
		if special := e.nonFinite(v); special != "" {
			return special, nil
		}
		text = formatFloat(v, 64)
	default:
		return "", fmt.Errorf("unsupported literal value %T", lit.Value)
	}
	if !typed || lit.Type == nil {
		return text, nil
	}
	typ, err := e.EmitTypeExpr(lit.Type)
	if err != nil {
		return "", err
	}
	return typ + "(" + text + ")", nil
}

// nonFinite renders NaN and the infinities, which have no literal form.
// It returns "" for finite values.
func (e *Emitter) nonFinite(f float64) string {
	var text string
	switch {
	case math.IsNaN(f):
		text = "math.NaN()"
	case math.IsInf(f, 1):
		text = "math.Inf(1)"
	case math.IsInf(f, -1):
		text = "math.Inf(-1)"
	default:
		return ""
	}
	e.use("math")
	return text
}

// isNonFinite reports whether expr is a NaN or infinite float literal.
func isNonFinite(expr ir.Expr) bool {
	lit, ok := expr.(*ir.LiteralExpr)
	if !ok {
		return false
	}
	switch v := lit.Value.(type) {
	case float32:
		return math.IsNaN(float64(v)) || math.IsInf(float64(v), 0)
	case float64:
		return math.IsNaN(v) || math.IsInf(v, 0)
	}
	return false
}

// formatFloat keeps a decimal point or exponent so the literal reads as a
// float.
func formatFloat(f float64, bits int) string {
	s := strconv.FormatFloat(f, 'g', -1, bits)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}

// emitNew renders a constructor for the type of n.
func (e *Emitter) emitNew(n *ir.NewExpr) (string, error) {
	switch t := ir.Unwrap(n.Type).(type) {
	case *ir.ArrayDescriptor:
		elemType, err := e.EmitTypeExpr(t.Element)
		if err != nil {
			return "", err
		}
		elems, err := e.elements(n.Args, t.Element)
		if err != nil {
			return "", err
		}
		return "[]" + elemType + "{" + elems + "}", nil
	case *ir.SetDescriptor:
		elemType, err := e.EmitTypeExpr(t.Element)
		if err != nil {
			return "", err
		}
		elems, err := e.elements(n.Args, t.Element)
		if err != nil {
			return "", err
		}
		return e.runtime("NewSet") + "[" + elemType + "](" + elems + ")", nil
	case *ir.PrimitiveDescriptor:
		args, err := e.emitArgs(n.Args)
		if err != nil {
			return "", err
		}
		switch t.PrimitiveKind {
		case ir.PrimitiveTime:
			e.use("time")
			return "time.UnixMilli(" + args + ")", nil
		case ir.PrimitiveBigInt:
			return e.runtime("NewBigInt") + "(" + args + ")", nil
		case ir.PrimitiveDecimal:
			return e.runtime("NewDecimal") + "(" + args + ")", nil
		case ir.PrimitiveDate:
			return e.runtime("NewDate") + "(" + args + ")", nil
		case ir.PrimitiveTimeOfDay:
			return e.runtime("NewTimeOfDay") + "(" + args + ")", nil
		}
	}
	return "", fmt.Errorf("no constructor for type kind %s", n.Type.Kind())
}

func (e *Emitter) elements(args []ir.Expr, elem ir.TypeDescriptor) (string, error) {
	parts := make([]string, len(args))
	for i, arg := range args {
		s, err := e.element(arg, elem)
		if err != nil {
			return "", err
		}
		parts[i] = s
	}
	return strings.Join(parts, ", "), nil
}

// zeroValue renders the zero value of a type that cannot be nil.
func (e *Emitter) zeroValue(td ir.TypeDescriptor) (string, error) {
	switch t := td.(type) {
	case *ir.PrimitiveDescriptor:
		switch t.PrimitiveKind {
		case ir.PrimitiveBool:
			return "false", nil
		case ir.PrimitiveString:
			return `""`, nil
		case ir.PrimitiveInt, ir.PrimitiveUint, ir.PrimitiveFloat:
			return "0", nil
		}
	}
	typ, err := e.EmitTypeExpr(td)
	if err != nil {
		return "", err
	}
	return "*new(" + typ + ")", nil
}
