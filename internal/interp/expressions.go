package interp

import (
	"github.com/cwbudde/golox/internal/ast"
	"github.com/cwbudde/golox/internal/token"
	"github.com/cwbudde/golox/internal/value"
)

// Eval evaluates one expression and returns its value, or a
// *RuntimeError.
func (i *Interpreter) Eval(expr ast.Expr) (value.Value, error) {
	switch e := expr.(type) {
	case *ast.LiteralExpr:
		return e.Value, nil

	case *ast.GroupingExpr:
		return i.Eval(e.Expression)

	case *ast.VariableExpr:
		return i.lookUpVariable(e.Name, e)

	case *ast.AssignExpr:
		v, err := i.Eval(e.Value)
		if err != nil {
			return nil, err
		}
		if i.useLocals {
			if distance, ok := i.locals[e]; ok {
				i.environment.AssignAt(distance, e.Name.Lexeme, v)
				return v, nil
			}
			if err := i.globals.Assign(e.Name.Lexeme, v); err != nil {
				return nil, runtimeErr(e.Name.Line, "Assign to undefined variable '%s'.", e.Name.Lexeme)
			}
			return v, nil
		}
		if err := i.environment.Assign(e.Name.Lexeme, v); err != nil {
			return nil, runtimeErr(e.Name.Line, "Assign to undefined variable '%s'.", e.Name.Lexeme)
		}
		return v, nil

	case *ast.UnaryExpr:
		return i.evalUnary(e)

	case *ast.BinaryExpr:
		return i.evalBinary(e)

	case *ast.LogicalExpr:
		return i.evalLogical(e)

	case *ast.CallExpr:
		return i.evalCall(e)

	case *ast.GetExpr:
		return i.evalGet(e)

	case *ast.SetExpr:
		return i.evalSet(e)

	case *ast.ThisExpr:
		return i.lookUpVariable(e.Keyword, e)

	case *ast.SuperExpr:
		return i.evalSuper(e)

	default:
		return nil, runtimeErr(0, "unhandled expression %T", expr)
	}
}

// lookUpVariable reads name via the resolver's distance annotation for
// expr when one exists, else falls back to the global environment —
// and, when the resolver pass was skipped entirely (--resolver=false),
// to a dynamic search from the active environment.
func (i *Interpreter) lookUpVariable(name token.Token, expr ast.Expr) (value.Value, error) {
	if i.useLocals {
		if distance, ok := i.locals[expr]; ok {
			if v, ok := i.environment.GetAt(distance, name.Lexeme); ok {
				return v, nil
			}
		}
		if v, ok := i.globals.Get(name.Lexeme); ok {
			return v, nil
		}
		return nil, runtimeErr(name.Line, "Undefined variable '%s'.", name.Lexeme)
	}
	if v, ok := i.environment.Get(name.Lexeme); ok {
		return v, nil
	}
	return nil, runtimeErr(name.Line, "Undefined variable '%s'.", name.Lexeme)
}

func (i *Interpreter) evalUnary(e *ast.UnaryExpr) (value.Value, error) {
	right, err := i.Eval(e.Right)
	if err != nil {
		return nil, err
	}
	switch e.Operator.Kind {
	case token.BANG:
		return !value.Truthy(right), nil
	case token.MINUS:
		n, ok := right.(float64)
		if !ok {
			return nil, runtimeErr(e.Operator.Line, "Operand must be a number.")
		}
		return -n, nil
	}
	return nil, runtimeErr(e.Operator.Line, "Unknown unary operator '%s'.", e.Operator.Lexeme)
}

func (i *Interpreter) evalBinary(e *ast.BinaryExpr) (value.Value, error) {
	left, err := i.Eval(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := i.Eval(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Kind {
	case token.PLUS:
		if ln, ok := left.(float64); ok {
			if rn, ok := right.(float64); ok {
				return ln + rn, nil
			}
		}
		if ls, ok := left.(string); ok {
			if rs, ok := right.(string); ok {
				return ls + rs, nil
			}
		}
		return nil, runtimeErr(e.Operator.Line, "Operands must be two numbers or two strings.")

	case token.MINUS, token.STAR, token.SLASH,
		token.GREATER, token.GREATER_EQUAL, token.LESS, token.LESS_EQUAL:
		ln, lok := left.(float64)
		rn, rok := right.(float64)
		if !lok || !rok {
			return nil, runtimeErr(e.Operator.Line, "Operands must be numbers.")
		}
		switch e.Operator.Kind {
		case token.MINUS:
			return ln - rn, nil
		case token.STAR:
			return ln * rn, nil
		case token.SLASH:
			return ln / rn, nil
		case token.GREATER:
			return ln > rn, nil
		case token.GREATER_EQUAL:
			return ln >= rn, nil
		case token.LESS:
			return ln < rn, nil
		case token.LESS_EQUAL:
			return ln <= rn, nil
		}

	case token.BANG_EQUAL:
		return !value.Equal(left, right), nil
	case token.EQUAL_EQUAL:
		return value.Equal(left, right), nil
	}
	return nil, runtimeErr(e.Operator.Line, "Unknown binary operator '%s'.", e.Operator.Lexeme)
}

func (i *Interpreter) evalLogical(e *ast.LogicalExpr) (value.Value, error) {
	left, err := i.Eval(e.Left)
	if err != nil {
		return nil, err
	}
	if e.Operator.Kind == token.OR {
		if value.Truthy(left) {
			return left, nil
		}
	} else {
		if !value.Truthy(left) {
			return left, nil
		}
	}
	return i.Eval(e.Right)
}

func (i *Interpreter) evalCall(e *ast.CallExpr) (value.Value, error) {
	callee, err := i.Eval(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]value.Value, len(e.Arguments))
	for idx, a := range e.Arguments {
		v, err := i.Eval(a)
		if err != nil {
			return nil, err
		}
		args[idx] = v
	}

	callable, ok := asCallable(callee)
	if !ok {
		return nil, runtimeErr(e.Paren.Line, "Can only call functions and classes.")
	}
	if len(args) != callable.Arity() {
		return nil, runtimeErr(e.Paren.Line, "Expected %d arguments but got %d.", callable.Arity(), len(args))
	}
	return callable.Call(i, args)
}

func (i *Interpreter) evalGet(e *ast.GetExpr) (value.Value, error) {
	obj, err := i.Eval(e.Object)
	if err != nil {
		return nil, err
	}
	inst, ok := obj.(*value.Instance)
	if !ok {
		return nil, runtimeErr(e.Name.Line, "Only instances have properties.")
	}
	v, ok := inst.Get(e.Name.Lexeme)
	if !ok {
		return nil, runtimeErr(e.Name.Line, "Undefined property '%s'.", e.Name.Lexeme)
	}
	return v, nil
}

func (i *Interpreter) evalSet(e *ast.SetExpr) (value.Value, error) {
	obj, err := i.Eval(e.Object)
	if err != nil {
		return nil, err
	}
	inst, ok := obj.(*value.Instance)
	if !ok {
		return nil, runtimeErr(e.Name.Line, "Only instances have fields.")
	}
	v, err := i.Eval(e.Value)
	if err != nil {
		return nil, err
	}
	inst.Set(e.Name.Lexeme, v)
	return v, nil
}

func (i *Interpreter) evalSuper(e *ast.SuperExpr) (value.Value, error) {
	var superVal, thisVal any
	if i.useLocals {
		distance, ok := i.locals[e]
		if !ok {
			return nil, runtimeErr(e.Keyword.Line, "Can't use 'super' outside of a class.")
		}
		superVal, _ = i.environment.GetAt(distance, "super")
		thisVal, _ = i.environment.GetAt(distance-1, "this")
	} else {
		superVal, _ = i.environment.Get("super")
		thisVal, _ = i.environment.Get("this")
	}

	superclass, ok := superVal.(*value.Class)
	if !ok {
		return nil, runtimeErr(e.Keyword.Line, "Can't use 'super' outside of a class.")
	}
	instance, _ := thisVal.(*value.Instance)

	method := superclass.FindMethod(e.Method.Lexeme)
	if method == nil {
		return nil, runtimeErr(e.Method.Line, "Undefined property '%s'.", e.Method.Lexeme)
	}
	return method.Bind(instance), nil
}
