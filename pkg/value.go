package tlox

import "strconv"

// ValueKind identifies which alternative of ValueType a Value currently holds.
// It exists separately from Value so that runtime errors (MismatchedTypesError)
// can name a kind without carrying a whole value around.
type ValueKind int

const (
	KindNumber ValueKind = iota
	KindString
	KindBoolean
	KindNil
	KindFunction
	KindNativeFunction
	KindClass
	KindObject
)

func (k ValueKind) String() string {
	switch k {
	case KindNumber:
		return "Number"
	case KindString:
		return "String"
	case KindBoolean:
		return "Boolean"
	case KindNil:
		return "Nil"
	case KindFunction:
		return "Function"
	case KindNativeFunction:
		return "NativeFunction"
	case KindClass:
		return "Class"
	case KindObject:
		return "Object"
	default:
		return "?"
	}
}

// Function is a user-declared callable: its parameter list, its body, and the
// span of its declaration. Functions are shared by reference: every binding
// that holds one shares the same *Function, so none of the body's statements
// are ever copied.
type Function struct {
	Name   string
	Params []string
	Body   []Stmt
	Span   CodeSpan
}

// NativeImpl is the Go function a NativeFunction dispatches to. It receives the
// already-evaluated argument values (arity already checked by the caller) and
// the span of the call expression, for error reporting.
type NativeImpl func(args []Value, callSpan CodeSpan) (Value, RuntimeError)

// NativeFunction is a host-implemented callable registered in the native
// prelude.
type NativeFunction struct {
	Name  string
	Arity int
	Impl  NativeImpl
}

// Class is a user-declared class. Method bodies are preserved but dispatch is
// not implemented: instantiation allocates an Object, but the methods map
// exists only so a complete implementation has somewhere to grow into.
type Class struct {
	Name    string
	Methods map[string]*Function
}

// Object is an instance of a Class with an, as yet unused, property bag:
// Get/Set on objects is reserved, not implemented.
type Object struct {
	Class      *Class
	Properties map[string]Value
}

// Value is a runtime value together with the span of the expression that
// produced it. Numbers, booleans and nil are copied by value; strings,
// functions, classes and instances are reference-shared.
type Value struct {
	Kind ValueKind
	Span CodeSpan

	Number float64
	Str    string
	Bool   bool
	Func   *Function
	Native *NativeFunction
	Class  *Class
	Object *Object
}

// NilValue builds a Nil value at the given span.
func NilValue(span CodeSpan) Value {
	return Value{Kind: KindNil, Span: span}
}

// NumberValue builds a Number value at the given span.
func NumberValue(n float64, span CodeSpan) Value {
	return Value{Kind: KindNumber, Number: n, Span: span}
}

// StringValue builds a String value at the given span.
func StringValue(s string, span CodeSpan) Value {
	return Value{Kind: KindString, Str: s, Span: span}
}

// BooleanValue builds a Boolean value at the given span.
func BooleanValue(b bool, span CodeSpan) Value {
	return Value{Kind: KindBoolean, Bool: b, Span: span}
}

// FunctionValue builds a Function value at the given span.
func FunctionValue(f *Function, span CodeSpan) Value {
	return Value{Kind: KindFunction, Func: f, Span: span}
}

// NativeFunctionValue builds a NativeFunction value at the given span.
func NativeFunctionValue(f *NativeFunction, span CodeSpan) Value {
	return Value{Kind: KindNativeFunction, Native: f, Span: span}
}

// ClassValue builds a Class value at the given span.
func ClassValue(c *Class, span CodeSpan) Value {
	return Value{Kind: KindClass, Class: c, Span: span}
}

// ObjectValue builds an Object value at the given span.
func ObjectValue(o *Object, span CodeSpan) Value {
	return Value{Kind: KindObject, Object: o, Span: span}
}

// WithSpan returns a copy of v with its span replaced, for re-attributing a
// value produced deeper in an expression to an enclosing span. The evaluator
// does not call it: an assignment, for example, yields the right-hand value
// with that value's own span.
func (v Value) WithSpan(span CodeSpan) Value {
	v.Span = span
	return v
}

// isTruthy implements the language's truthiness rule: nil and false are falsy,
// everything else — including 0 and the empty string — is truthy.
func isTruthy(v Value) bool {
	switch v.Kind {
	case KindNil:
		return false
	case KindBoolean:
		return v.Bool
	default:
		return true
	}
}

// valuesEqual implements '==': equal only when both operands share a kind and
// their payloads compare equal. Cross-kind comparisons are always unequal.
// Function equality is identity (same shared *Function). Object equality is
// also identity, the safe default where no field-by-field comparison is
// defined (see DESIGN.md).
func valuesEqual(a, b Value) bool {
	if a.Kind != b.Kind {
		return false
	}

	switch a.Kind {
	case KindNumber:
		return a.Number == b.Number
	case KindString:
		return a.Str == b.Str
	case KindBoolean:
		return a.Bool == b.Bool
	case KindNil:
		return true
	case KindFunction:
		return a.Func == b.Func
	case KindNativeFunction:
		return a.Native == b.Native
	case KindClass:
		return a.Class == b.Class
	case KindObject:
		return a.Object == b.Object
	default:
		return false
	}
}

// render produces the textual form `print` writes for v.
func render(v Value) string {
	switch v.Kind {
	case KindNumber:
		return strconv.FormatFloat(v.Number, 'f', -1, 64)
	case KindString:
		return v.Str
	case KindBoolean:
		if v.Bool {
			return "true"
		}
		return "false"
	case KindNil:
		return "nil"
	case KindFunction:
		return "<function>"
	case KindNativeFunction:
		return "<native fn>"
	case KindClass:
		return v.Class.Name
	case KindObject:
		return v.Object.Class.Name + " instance"
	default:
		return "?"
	}
}
