// Package astprinter renders an AST back to a parenthesized, Lisp-like
// text form. It backs the `lox parse` subcommand and the parser's
// round-trip testable property (parse then print is a fixpoint modulo
// whitespace).
package astprinter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cwbudde/golox/internal/ast"
)

// Print renders a single expression.
func Print(expr ast.Expr) string {
	switch e := expr.(type) {
	case *ast.LiteralExpr:
		return printLiteral(e.Value)
	case *ast.GroupingExpr:
		return parenthesize("group", e.Expression)
	case *ast.UnaryExpr:
		return parenthesize(e.Operator.Lexeme, e.Right)
	case *ast.BinaryExpr:
		return parenthesize(e.Operator.Lexeme, e.Left, e.Right)
	case *ast.LogicalExpr:
		return parenthesize(e.Operator.Lexeme, e.Left, e.Right)
	case *ast.VariableExpr:
		return e.Name.Lexeme
	case *ast.AssignExpr:
		return parenthesize("= "+e.Name.Lexeme, e.Value)
	case *ast.CallExpr:
		return parenthesize("call", append([]ast.Expr{e.Callee}, e.Arguments...)...)
	case *ast.GetExpr:
		return parenthesize(". "+e.Name.Lexeme, e.Object)
	case *ast.SetExpr:
		return parenthesize("set "+e.Name.Lexeme, e.Object, e.Value)
	case *ast.ThisExpr:
		return "this"
	case *ast.SuperExpr:
		return "(super " + e.Method.Lexeme + ")"
	default:
		return fmt.Sprintf("<?%T>", e)
	}
}

// PrintStmts renders a whole statement list, one printed form per line.
func PrintStmts(stmts []ast.Stmt) string {
	var sb strings.Builder
	for _, s := range stmts {
		sb.WriteString(printStmt(s))
		sb.WriteString("\n")
	}
	return sb.String()
}

func printStmt(stmt ast.Stmt) string {
	switch s := stmt.(type) {
	case *ast.ExpressionStmt:
		return Print(s.Expression)
	case *ast.PrintStmt:
		return "(print " + Print(s.Expression) + ")"
	case *ast.VarStmt:
		if s.Initializer == nil {
			return "(var " + s.Name.Lexeme + ")"
		}
		return "(var " + s.Name.Lexeme + " " + Print(s.Initializer) + ")"
	case *ast.BlockStmt:
		var sb strings.Builder
		sb.WriteString("(block")
		for _, inner := range s.Statements {
			sb.WriteString(" ")
			sb.WriteString(printStmt(inner))
		}
		sb.WriteString(")")
		return sb.String()
	case *ast.IfStmt:
		if s.ElseBranch == nil {
			return "(if " + Print(s.Condition) + " " + printStmt(s.ThenBranch) + ")"
		}
		return "(if " + Print(s.Condition) + " " + printStmt(s.ThenBranch) + " " + printStmt(s.ElseBranch) + ")"
	case *ast.WhileStmt:
		return "(while " + Print(s.Condition) + " " + printStmt(s.Body) + ")"
	case *ast.FunctionStmt:
		return "(fun " + s.Name.Lexeme + ")"
	case *ast.ReturnStmt:
		if s.Value == nil {
			return "(return)"
		}
		return "(return " + Print(s.Value) + ")"
	case *ast.ClassStmt:
		if s.Superclass == nil {
			return "(class " + s.Name.Lexeme + ")"
		}
		return "(class " + s.Name.Lexeme + " < " + s.Superclass.Name.Lexeme + ")"
	default:
		return fmt.Sprintf("<?%T>", s)
	}
}

func printLiteral(v any) string {
	switch x := v.(type) {
	case nil:
		return "nil"
	case bool:
		if x {
			return "true"
		}
		return "false"
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case string:
		return x
	default:
		return fmt.Sprintf("%v", x)
	}
}

func parenthesize(name string, exprs ...ast.Expr) string {
	var sb strings.Builder
	sb.WriteString("(")
	sb.WriteString(name)
	for _, e := range exprs {
		sb.WriteString(" ")
		sb.WriteString(Print(e))
	}
	sb.WriteString(")")
	return sb.String()
}
