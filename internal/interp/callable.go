package interp

import (
	"github.com/cwbudde/golox/internal/environment"
	"github.com/cwbudde/golox/internal/value"
)

// Callable is the uniform call contract shared by native functions,
// user functions, and classes-as-constructors.
type Callable interface {
	Arity() int
	Call(i *Interpreter, args []value.Value) (value.Value, error)
}

// asCallable returns a uniform callable view of v, or false if v cannot
// be called.
func asCallable(v value.Value) (Callable, bool) {
	switch c := v.(type) {
	case *value.Native:
		return nativeCallable{c}, true
	case *value.Function:
		return functionCallable{c}, true
	case *value.Class:
		return classCallable{c}, true
	default:
		return nil, false
	}
}

type nativeCallable struct{ fn *value.Native }

func (n nativeCallable) Arity() int { return n.fn.Arity }

func (n nativeCallable) Call(_ *Interpreter, args []value.Value) (value.Value, error) {
	return n.fn.Fn(args)
}

type functionCallable struct{ fn *value.Function }

func (f functionCallable) Arity() int { return len(f.fn.Declaration.Params) }

// Call invokes a user function in a fresh scope enclosed by its
// closure, binds parameters to args, and runs the body. A `return`
// unwinds as a *returnSignal caught right here and converted into the
// call's result; falling off the end of the body yields nil — except
// for an initializer, which always yields its bound `this` regardless
// of a bare `return;` (spec's initializer special case).
func (f functionCallable) Call(i *Interpreter, args []value.Value) (value.Value, error) {
	env := environment.NewEnclosed(f.fn.Closure)
	for idx, param := range f.fn.Declaration.Params {
		var arg value.Value
		if idx < len(args) {
			arg = args[idx]
		}
		env.Define(param.Lexeme, arg)
	}

	err := i.execBlock(f.fn.Declaration.Body, env)
	if err == nil {
		if f.fn.IsInitializer {
			return thisFromClosure(f.fn), nil
		}
		return nil, nil
	}

	if rs, ok := asReturn(err); ok {
		if f.fn.IsInitializer {
			return thisFromClosure(f.fn), nil
		}
		return rs.Value, nil
	}
	return nil, err
}

// thisFromClosure reads the receiver an initializer was bound to,
// directly out of its own closure (the scope Bind introduced one hop
// outside the call's parameter scope), rather than depending on the
// resolver distance map being populated.
func thisFromClosure(fn *value.Function) value.Value {
	v, _ := fn.Closure.Get("this")
	return v
}

type classCallable struct{ class *value.Class }

// Arity is the arity of the class's own `init`, or 0 if it declares
// none — even when an ancestor does. A subclass's own `init` replaces
// its parent's for this purpose; it is not inherited for arity, though
// the inherited `init` remains the one actually invoked by Call below,
// and `super.init` remains callable explicitly from inside the
// subclass's initializer.
func (c classCallable) Arity() int {
	if init, ok := c.class.Methods["init"]; ok {
		return len(init.Declaration.Params)
	}
	return 0
}

// Call constructs a fresh instance, invokes its bound `init` (if any)
// with args, and always returns the instance — even though `init`
// itself, as an initializer, also returns `this` via its own Call path.
func (c classCallable) Call(i *Interpreter, args []value.Value) (value.Value, error) {
	instance := value.NewInstance(c.class)
	if init := c.class.FindMethod("init"); init != nil {
		bound := init.Bind(instance)
		if _, err := (functionCallable{bound}).Call(i, args); err != nil {
			return nil, err
		}
	}
	return instance, nil
}
