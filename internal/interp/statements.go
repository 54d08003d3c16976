package interp

import (
	"github.com/cwbudde/golox/internal/ast"
	"github.com/cwbudde/golox/internal/environment"
	"github.com/cwbudde/golox/internal/value"
)

// Exec executes one statement. It returns nil on normal completion, a
// *returnSignal when a `return` is unwinding through this frame, or a
// *RuntimeError on failure.
func (i *Interpreter) Exec(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.ExpressionStmt:
		_, err := i.Eval(s.Expression)
		return err

	case *ast.PrintStmt:
		v, err := i.Eval(s.Expression)
		if err != nil {
			return err
		}
		_, werr := i.stdout.Write([]byte(value.Display(v) + "\n"))
		return werr

	case *ast.VarStmt:
		var v value.Value
		if s.Initializer != nil {
			var err error
			v, err = i.Eval(s.Initializer)
			if err != nil {
				return err
			}
		}
		i.environment.Define(s.Name.Lexeme, v)
		return nil

	case *ast.BlockStmt:
		return i.execBlock(s.Statements, environment.NewEnclosed(i.environment))

	case *ast.IfStmt:
		cond, err := i.Eval(s.Condition)
		if err != nil {
			return err
		}
		if value.Truthy(cond) {
			return i.Exec(s.ThenBranch)
		} else if s.ElseBranch != nil {
			return i.Exec(s.ElseBranch)
		}
		return nil

	case *ast.WhileStmt:
		for {
			cond, err := i.Eval(s.Condition)
			if err != nil {
				return err
			}
			if !value.Truthy(cond) {
				return nil
			}
			if err := i.Exec(s.Body); err != nil {
				return err
			}
		}

	case *ast.FunctionStmt:
		fn := &value.Function{Declaration: s, Closure: i.environment}
		i.environment.Define(s.Name.Lexeme, fn)
		return nil

	case *ast.ReturnStmt:
		var v value.Value
		if s.Value != nil {
			var err error
			v, err = i.Eval(s.Value)
			if err != nil {
				return err
			}
		}
		return &returnSignal{Value: v}

	case *ast.ClassStmt:
		return i.execClass(s)

	default:
		return runtimeErr(0, "unhandled statement %T", stmt)
	}
}

// execBlock runs stmts against env and restores the previously active
// environment under every exit path: normal completion, a runtime
// error, or a return unwinding through this block.
func (i *Interpreter) execBlock(stmts []ast.Stmt, env *environment.Environment) error {
	previous := i.environment
	i.environment = env
	defer func() { i.environment = previous }()

	for _, s := range stmts {
		if err := i.Exec(s); err != nil {
			return err
		}
	}
	return nil
}

func (i *Interpreter) execClass(s *ast.ClassStmt) error {
	var superclass *value.Class
	if s.Superclass != nil {
		v, err := i.Eval(s.Superclass)
		if err != nil {
			return err
		}
		sc, ok := v.(*value.Class)
		if !ok {
			return runtimeErr(s.Superclass.Name.Line, "Superclass must be a class.")
		}
		superclass = sc
	}

	// Define the name now (bound to nil) so methods whose bodies
	// reference the class itself close over the slot the resolver
	// already allocated for it.
	i.environment.Define(s.Name.Lexeme, nil)

	methodEnv := i.environment
	if superclass != nil {
		methodEnv = environment.NewEnclosed(i.environment)
		methodEnv.Define("super", superclass)
	}

	methods := make(map[string]*value.Function, len(s.Methods))
	for _, m := range s.Methods {
		methods[m.Name.Lexeme] = &value.Function{
			Declaration:   m,
			Closure:       methodEnv,
			IsInitializer: m.Name.Lexeme == "init",
		}
	}

	class := &value.Class{Name: s.Name.Lexeme, Methods: methods, Superclass: superclass}
	i.environment.Assign(s.Name.Lexeme, class)
	return nil
}
