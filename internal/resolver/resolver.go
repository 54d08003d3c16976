// Package resolver performs the single static pass over the AST that
// computes, for each variable-reference expression, the lexical
// scope-distance at which its binding lives, and enforces the
// language's static-semantic rules (duplicate local declarations,
// illegal return/this/super, self-inheritance, return-from-initializer).
package resolver

import (
	"fmt"

	"github.com/cwbudde/golox/internal/ast"
)

// functionType tracks what kind of function body the resolver is
// currently inside, so `return`/`this` can be validated contextually.
type functionType int

const (
	funcNone functionType = iota
	funcFunction
	funcMethod
	funcInitializer
)

// classType tracks whether the resolver is inside a class body, and
// whether that class has a superclass (so `super` can be validated).
type classType int

const (
	classNone classType = iota
	classClass
	classSubclass
)

// Error reports a static-semantic violation found during resolving.
type Error struct {
	Line    int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("[line %d] Error: %s", e.Line, e.Message)
}

// Locals is the resolver's sole output: a map from Expr identity
// (pointer equality) to scope distance. An expression absent from this
// map is global.
type Locals map[ast.Expr]int

// scope maps a name to whether it has finished being defined (false
// while its own initializer is being resolved).
type scope map[string]bool

// Resolver walks a whole program once before evaluation begins.
type Resolver struct {
	scopes          []scope
	currentFunction functionType
	currentClass    classType
	locals          Locals
	errors          []*Error
}

func New() *Resolver {
	return &Resolver{locals: make(Locals)}
}

// Resolve walks stmts and returns the distance map plus any static
// errors found. Evaluation must not proceed if errors is non-empty.
func (r *Resolver) Resolve(stmts []ast.Stmt) (Locals, []*Error) {
	r.resolveStmts(stmts)
	return r.locals, r.errors
}

func (r *Resolver) resolveStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *Resolver) resolveStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.BlockStmt:
		r.beginScope()
		r.resolveStmts(s.Statements)
		r.endScope()

	case *ast.VarStmt:
		r.declare(s.Name.Lexeme, s.Name.Line)
		if s.Initializer != nil {
			r.resolveExpr(s.Initializer)
		}
		r.define(s.Name.Lexeme)

	case *ast.FunctionStmt:
		r.declare(s.Name.Lexeme, s.Name.Line)
		r.define(s.Name.Lexeme)
		r.resolveFunction(s, funcFunction)

	case *ast.ClassStmt:
		r.resolveClass(s)

	case *ast.ExpressionStmt:
		r.resolveExpr(s.Expression)

	case *ast.IfStmt:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.ThenBranch)
		if s.ElseBranch != nil {
			r.resolveStmt(s.ElseBranch)
		}

	case *ast.PrintStmt:
		r.resolveExpr(s.Expression)

	case *ast.ReturnStmt:
		if r.currentFunction == funcNone {
			r.error(s.Keyword.Line, "Can't return from top-level code.")
		}
		if s.Value != nil {
			if r.currentFunction == funcInitializer {
				r.error(s.Keyword.Line, "Can't return a value from an initializer.")
			}
			r.resolveExpr(s.Value)
		}

	case *ast.WhileStmt:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.Body)

	default:
		panic(fmt.Sprintf("resolver: unhandled statement %T", stmt))
	}
}

func (r *Resolver) resolveClass(s *ast.ClassStmt) {
	enclosingClass := r.currentClass
	r.currentClass = classClass

	r.declare(s.Name.Lexeme, s.Name.Line)
	r.define(s.Name.Lexeme)

	if s.Superclass != nil {
		if s.Superclass.Name.Lexeme == s.Name.Lexeme {
			r.error(s.Superclass.Name.Line, "A class can't inherit from itself.")
		}
		r.currentClass = classSubclass
		r.resolveExpr(s.Superclass)

		r.beginScope()
		r.scopes[len(r.scopes)-1]["super"] = true
	}

	r.beginScope()
	r.scopes[len(r.scopes)-1]["this"] = true

	for _, method := range s.Methods {
		kind := funcMethod
		if method.Name.Lexeme == "init" {
			kind = funcInitializer
		}
		r.resolveFunction(method, kind)
	}

	r.endScope()
	if s.Superclass != nil {
		r.endScope()
	}

	r.currentClass = enclosingClass
}

func (r *Resolver) resolveFunction(fn *ast.FunctionStmt, kind functionType) {
	enclosingFunction := r.currentFunction
	r.currentFunction = kind

	r.beginScope()
	for _, param := range fn.Params {
		r.declare(param.Lexeme, param.Line)
		r.define(param.Lexeme)
	}
	r.resolveStmts(fn.Body)
	r.endScope()

	r.currentFunction = enclosingFunction
}

func (r *Resolver) resolveExpr(expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.VariableExpr:
		if len(r.scopes) > 0 {
			if defined, ok := r.scopes[len(r.scopes)-1][e.Name.Lexeme]; ok && !defined {
				r.error(e.Name.Line, "Can't read local variable in its own initializer.")
			}
		}
		r.resolveLocal(e, e.Name.Lexeme)

	case *ast.AssignExpr:
		r.resolveExpr(e.Value)
		r.resolveLocal(e, e.Name.Lexeme)

	case *ast.BinaryExpr:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)

	case *ast.LogicalExpr:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)

	case *ast.UnaryExpr:
		r.resolveExpr(e.Right)

	case *ast.GroupingExpr:
		r.resolveExpr(e.Expression)

	case *ast.LiteralExpr:
		// nothing to resolve

	case *ast.CallExpr:
		r.resolveExpr(e.Callee)
		for _, arg := range e.Arguments {
			r.resolveExpr(arg)
		}

	case *ast.GetExpr:
		r.resolveExpr(e.Object)

	case *ast.SetExpr:
		r.resolveExpr(e.Value)
		r.resolveExpr(e.Object)

	case *ast.ThisExpr:
		if r.currentClass == classNone {
			r.error(e.Keyword.Line, "Can't use 'this' outside of a class.")
			return
		}
		r.resolveLocal(e, "this")

	case *ast.SuperExpr:
		switch r.currentClass {
		case classNone:
			r.error(e.Keyword.Line, "Can't use 'super' outside of a class.")
		case classClass:
			r.error(e.Keyword.Line, "Can't use 'super' in a class with no superclass.")
		}
		r.resolveLocal(e, "super")

	default:
		panic(fmt.Sprintf("resolver: unhandled expression %T", expr))
	}
}

// resolveLocal finds the innermost scope that declares name and
// annotates expr with the number of hops out to reach it. No match
// means the binding is global, and expr is left unannotated.
func (r *Resolver) resolveLocal(expr ast.Expr, name string) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name]; ok {
			r.locals[expr] = len(r.scopes) - 1 - i
			return
		}
	}
}

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, make(scope))
}

func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

// declare records name as present but not yet readable in the current
// scope. Redeclaring a name already present in the current (innermost)
// scope is a static error; shadowing a name from an outer scope is not,
// and globals (no scope on the stack) are never checked.
func (r *Resolver) declare(name string, line int) {
	if len(r.scopes) == 0 {
		return
	}
	current := r.scopes[len(r.scopes)-1]
	if _, ok := current[name]; ok {
		r.error(line, "Already a variable with this name in this scope.")
	}
	current[name] = false
}

func (r *Resolver) define(name string) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name] = true
}

func (r *Resolver) error(line int, message string) {
	r.errors = append(r.errors, &Error{Line: line, Message: message})
}
