package tlox

import "time"

// DefaultPrelude returns the native callables loaded at startup. clock is the
// only one the language itself specifies; a host embedding the interpreter may
// register further natives with NewNativeFunction and RegisterPrelude.
func DefaultPrelude() []*NativeFunction {
	return []*NativeFunction{clockNative()}
}

// NewNativeFunction builds a host-registered native callable: a (name,
// function, arity) triple.
func NewNativeFunction(name string, arity int, impl NativeImpl) *NativeFunction {
	return &NativeFunction{Name: name, Arity: arity, Impl: impl}
}

// RegisterPrelude defines every function in fns as a global NativeFunction
// binding in env.
func RegisterPrelude(env *Environment, fns []*NativeFunction) {
	for _, f := range fns {
		env.Define(f.Name, NativeFunctionValue(f, CodeSpan{}))
	}
}

// clockNative reports the current wall-clock time as seconds since the Unix
// epoch.
func clockNative() *NativeFunction {
	return NewNativeFunction("clock", 0, func(args []Value, callSpan CodeSpan) (Value, RuntimeError) {
		seconds := float64(time.Now().UnixNano()) / 1e9
		return NumberValue(seconds, callSpan), nil
	})
}
