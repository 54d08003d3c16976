package value

import (
	"github.com/cwbudde/golox/internal/ast"
	"github.com/cwbudde/golox/internal/environment"
)

// Native is a built-in function (clock, log) with fixed arity and no
// user-visible environment.
type Native struct {
	NameStr string
	Arity   int
	Fn      func(args []Value) (Value, error)
}

// Function is a user-declared function or method: its declaration plus
// the environment it closed over at the point of declaration.
type Function struct {
	Declaration   *ast.FunctionStmt
	Closure       *environment.Environment
	IsInitializer bool
	// Bound is the receiver this function is bound to, set when the
	// function was produced by Get/Super method lookup (see Bind).
	Bound *Instance
}

// Bind returns a copy of f whose closure additionally defines `this` as
// instance. The resolver allocates exactly one scope distance for `this`
// inside method bodies; this extra environment hop is what that
// distance refers to.
func (f *Function) Bind(instance *Instance) *Function {
	env := environment.NewEnclosed(f.Closure)
	env.Define("this", instance)
	return &Function{
		Declaration:   f.Declaration,
		Closure:       env,
		IsInitializer: f.IsInitializer,
		Bound:         instance,
	}
}

// Class is a class value: its method table and an optional superclass.
type Class struct {
	Name       string
	Methods    map[string]*Function
	Superclass *Class
}

// FindMethod searches c's own method table, then its superclass chain,
// parent-last (the subclass's own method always wins).
func (c *Class) FindMethod(name string) *Function {
	if m, ok := c.Methods[name]; ok {
		return m
	}
	if c.Superclass != nil {
		return c.Superclass.FindMethod(name)
	}
	return nil
}

// Instance is a runtime object: a class pointer plus a mutable field
// map. Equality is reference identity (see Equal in value.go).
type Instance struct {
	Class  *Class
	Fields map[string]Value
}

func NewInstance(class *Class) *Instance {
	return &Instance{Class: class, Fields: make(map[string]Value)}
}

// Get reads a field, falling back to a bound method lookup. The second
// return value is false when neither a field nor a method named name
// exists.
func (i *Instance) Get(name string) (Value, bool) {
	if v, ok := i.Fields[name]; ok {
		return v, true
	}
	if m := i.Class.FindMethod(name); m != nil {
		return m.Bind(i), true
	}
	return nil, false
}

// Set writes a field unconditionally; Lox instances are not restricted
// to a fixed field set declared up front.
func (i *Instance) Set(name string, v Value) {
	i.Fields[name] = v
}
