package tlox

// Evaluator walks a parsed program and executes it directly against an
// Environment, without any intermediate bytecode or compilation pass. It owns
// exactly one Environment for the lifetime of a REPL session or file run, so
// top-level `var` declarations persist across successive REPL inputs.
type Evaluator struct {
	env *Environment
	out OutputSink
}

// NewEvaluator creates an evaluator with a fresh global environment, writing
// `print` output to out.
func NewEvaluator(out OutputSink) *Evaluator {
	return &Evaluator{env: NewEnvironment(), out: out}
}

// Env exposes the global environment so a driver can register the native
// prelude before running any program.
func (ev *Evaluator) Env() *Environment {
	return ev.env
}

// Interpret runs a sequence of top-level statements in order, stopping at the
// first error: a runtime error aborts the statement and everything after it in
// the same run.
func (ev *Evaluator) Interpret(stmts []Stmt) error {
	for _, stmt := range stmts {
		if err := ev.execute(stmt); err != nil {
			return err
		}
	}

	return nil
}

func (ev *Evaluator) execute(stmt Stmt) RuntimeError {
	switch s := stmt.(type) {
	case *PrintStmt:
		v, err := ev.eval(s.Expr)
		if err != nil {
			return err
		}
		if writeErr := ev.out.Write(render(v)); writeErr != nil {
			return &WriteError{Span: s.Span}
		}
		return nil

	case *ExprStmt:
		_, err := ev.eval(s.Expr)
		return err

	case *VarDeclStmt:
		v, err := ev.eval(s.Init)
		if err != nil {
			return err
		}
		ev.env.Define(s.Name, v)
		return nil

	case *BlockStmt:
		ev.env.PushFrame()
		defer ev.env.PopFrame()

		for _, inner := range s.Stmts {
			if err := ev.execute(inner); err != nil {
				return err
			}
		}
		return nil

	case *IfStmt:
		cond, err := ev.eval(s.Cond)
		if err != nil {
			return err
		}
		if isTruthy(cond) {
			return ev.execute(s.Then)
		}
		if s.Else != nil {
			return ev.execute(s.Else)
		}
		return nil

	case *WhileStmt:
		for {
			cond, err := ev.eval(s.Cond)
			if err != nil {
				return err
			}
			if !isTruthy(cond) {
				return nil
			}
			if err := ev.execute(s.Body); err != nil {
				return err
			}
		}

	case *ForStmt:
		// The initializer's variable, if any, is scoped to the loop alone.
		ev.env.PushFrame()
		defer ev.env.PopFrame()

		if s.Init != nil {
			if err := ev.execute(s.Init); err != nil {
				return err
			}
		}

		for {
			if s.Cond != nil {
				cond, err := ev.eval(s.Cond)
				if err != nil {
					return err
				}
				if !isTruthy(cond) {
					return nil
				}
			}

			if err := ev.execute(s.Body); err != nil {
				return err
			}

			if s.Step != nil {
				if _, err := ev.eval(s.Step); err != nil {
					return err
				}
			}
		}

	case *FunDeclStmt:
		ev.env.Define(s.Name, FunctionValue(s.Fn, s.Fn.Span))
		return nil

	case *ReturnStmt:
		v, err := ev.eval(s.Expr)
		if err != nil {
			return err
		}
		return &returnSignal{Value: v}

	case *ClassDeclStmt:
		methods := make(map[string]*Function, len(s.Methods))
		for _, m := range s.Methods {
			methods[m.Name] = m
		}
		ev.env.Define(s.Name, ClassValue(&Class{Name: s.Name, Methods: methods}, CodeSpan{}))
		return nil

	default:
		panic("tlox: unhandled statement type")
	}
}

func (ev *Evaluator) eval(expr Expr) (Value, RuntimeError) {
	switch e := expr.(type) {
	case *LiteralExpr:
		switch e.Kind {
		case LiteralNumber:
			return NumberValue(e.Num, e.span), nil
		case LiteralString:
			return StringValue(e.Str, e.span), nil
		case LiteralTrue:
			return BooleanValue(true, e.span), nil
		case LiteralFalse:
			return BooleanValue(false, e.span), nil
		default:
			return NilValue(e.span), nil
		}

	case *IdentifierExpr:
		v, ok := ev.env.Get(e.Name)
		if !ok {
			return Value{}, &UnboundNameError{Span: e.span, Name: e.Name}
		}
		return v, nil

	case *AssignmentExpr:
		v, err := ev.eval(e.Value)
		if err != nil {
			return Value{}, err
		}
		if !ev.env.Assign(e.Name, v) {
			return Value{}, &UnboundNameError{Span: e.span, Name: e.Name}
		}
		return v, nil

	case *UnaryExpr:
		return ev.evalUnary(e)

	case *BinaryExpr:
		return ev.evalBinary(e)

	case *CallExpr:
		return ev.evalCall(e)

	case *GetExpr:
		obj, err := ev.eval(e.Object)
		if err != nil {
			return Value{}, err
		}
		if obj.Kind != KindObject {
			return Value{}, &GetOnNonObjectError{Span: e.span}
		}
		v, ok := obj.Object.Properties[e.Property]
		if !ok {
			return Value{}, &UndefinedPropertyError{Span: e.span, Property: e.Property}
		}
		return v, nil

	default:
		panic("tlox: unhandled expression type")
	}
}

func (ev *Evaluator) evalUnary(e *UnaryExpr) (Value, RuntimeError) {
	v, err := ev.eval(e.Operand)
	if err != nil {
		return Value{}, err
	}

	switch e.Op {
	case UnaryMinus:
		if v.Kind != KindNumber {
			return Value{}, &MismatchedTypesError{Span: e.span, Actual: v.Kind, Allowed: []ValueKind{KindNumber}}
		}
		return NumberValue(-v.Number, e.span), nil
	default: // UnaryNot
		return BooleanValue(!isTruthy(v), e.span), nil
	}
}

// evalBinary evaluates and/or with short-circuiting ahead of everything else,
// since their right operand must not be evaluated when the result is already
// determined.
func (ev *Evaluator) evalBinary(e *BinaryExpr) (Value, RuntimeError) {
	if e.Op == BinaryAnd || e.Op == BinaryOr {
		left, err := ev.eval(e.Left)
		if err != nil {
			return Value{}, err
		}

		truthy := isTruthy(left)
		if (e.Op == BinaryAnd && !truthy) || (e.Op == BinaryOr && truthy) {
			return left, nil
		}

		return ev.eval(e.Right)
	}

	left, err := ev.eval(e.Left)
	if err != nil {
		return Value{}, err
	}
	right, err := ev.eval(e.Right)
	if err != nil {
		return Value{}, err
	}

	switch e.Op {
	case BinaryAdd:
		if left.Kind == KindNumber {
			if right.Kind != KindNumber {
				return Value{}, &MismatchedTypesError{Span: e.span, Actual: right.Kind, Allowed: []ValueKind{KindNumber}}
			}
			return NumberValue(left.Number+right.Number, e.span), nil
		}
		if left.Kind == KindString {
			if right.Kind != KindString {
				return Value{}, &MismatchedTypesError{Span: e.span, Actual: right.Kind, Allowed: []ValueKind{KindString}}
			}
			return StringValue(left.Str+right.Str, e.span), nil
		}
		return Value{}, &MismatchedTypesError{Span: e.span, Actual: left.Kind, Allowed: []ValueKind{KindNumber, KindString}}

	case BinaryEqual:
		return BooleanValue(valuesEqual(left, right), e.span), nil

	case BinaryNotEqual:
		return BooleanValue(!valuesEqual(left, right), e.span), nil

	default:
		if left.Kind != KindNumber {
			return Value{}, &MismatchedTypesError{Span: e.span, Actual: left.Kind, Allowed: []ValueKind{KindNumber}}
		}
		if right.Kind != KindNumber {
			return Value{}, &MismatchedTypesError{Span: e.span, Actual: right.Kind, Allowed: []ValueKind{KindNumber}}
		}

		switch e.Op {
		case BinarySub:
			return NumberValue(left.Number-right.Number, e.span), nil
		case BinaryMul:
			return NumberValue(left.Number*right.Number, e.span), nil
		case BinaryDiv:
			if right.Number == 0 {
				return Value{}, &DivisionByZeroError{Span: e.span}
			}
			return NumberValue(left.Number/right.Number, e.span), nil
		case BinaryLess:
			return BooleanValue(left.Number < right.Number, e.span), nil
		case BinaryLessEqual:
			return BooleanValue(left.Number <= right.Number, e.span), nil
		case BinaryGreater:
			return BooleanValue(left.Number > right.Number, e.span), nil
		default: // BinaryGreaterEqual
			return BooleanValue(left.Number >= right.Number, e.span), nil
		}
	}
}

func (ev *Evaluator) evalCall(e *CallExpr) (Value, RuntimeError) {
	callee, err := ev.eval(e.Callee)
	if err != nil {
		return Value{}, err
	}

	args := make([]Value, len(e.Args))
	for i, a := range e.Args {
		v, err := ev.eval(a)
		if err != nil {
			return Value{}, err
		}
		args[i] = v
	}

	switch callee.Kind {
	case KindFunction:
		return ev.callFunction(callee.Func, args, e.span)
	case KindNativeFunction:
		return ev.callNative(callee.Native, args, e.span)
	case KindClass:
		return ev.callClass(callee.Class, args, e.span)
	default:
		return Value{}, &NotCallableError{Span: e.span}
	}
}

// callFunction runs fn's body in a fresh frame holding its parameter bindings.
// A return statement surfaces as a returnSignal, caught here and turned back
// into a plain value; any other error propagates to the caller.
func (ev *Evaluator) callFunction(fn *Function, args []Value, callSpan CodeSpan) (Value, RuntimeError) {
	if len(args) != len(fn.Params) {
		return Value{}, &InvalidArgumentCountError{Span: callSpan, Expected: len(fn.Params), Actual: len(args)}
	}

	ev.env.PushFrame()
	defer ev.env.PopFrame()

	for i, param := range fn.Params {
		ev.env.Define(param, args[i])
	}

	for _, stmt := range fn.Body {
		err := ev.execute(stmt)
		if err == nil {
			continue
		}
		if ret, ok := err.(*returnSignal); ok {
			return ret.Value, nil
		}
		return Value{}, err
	}

	return NilValue(callSpan), nil
}

func (ev *Evaluator) callNative(fn *NativeFunction, args []Value, callSpan CodeSpan) (Value, RuntimeError) {
	if len(args) != fn.Arity {
		return Value{}, &InvalidArgumentCountError{Span: callSpan, Expected: fn.Arity, Actual: len(args)}
	}

	return fn.Impl(args, callSpan)
}

// callClass instantiates cls. Methods are carried on the class for future
// dispatch but are not yet reachable at runtime: the parser never emits a
// GetExpr, so an instance's properties and methods can only be observed by a
// driver holding the Go Object value directly.
func (ev *Evaluator) callClass(cls *Class, args []Value, callSpan CodeSpan) (Value, RuntimeError) {
	if len(args) != 0 {
		return Value{}, &InvalidArgumentCountError{Span: callSpan, Expected: 0, Actual: len(args)}
	}

	obj := &Object{Class: cls, Properties: make(map[string]Value)}
	return ObjectValue(obj, callSpan), nil
}
