package ast

import "github.com/cwbudde/golox/internal/token"

// Stmt is any AST node executed for its side effect.
type Stmt interface {
	stmtNode()
}

// ExpressionStmt evaluates Expression and discards the result.
type ExpressionStmt struct {
	Expression Expr
}

// PrintStmt evaluates Expression and writes its display form followed by
// a newline.
type PrintStmt struct {
	Expression Expr
}

// VarStmt declares Name in the active environment, bound to Initializer's
// value (or nil if Initializer is nil).
type VarStmt struct {
	Name        token.Token
	Initializer Expr
}

// BlockStmt is an ordered list of statements executed in a new child
// environment.
type BlockStmt struct {
	Statements []Stmt
}

// IfStmt runs ThenBranch when Condition is truthy, else ElseBranch (which
// may be nil).
type IfStmt struct {
	Condition  Expr
	ThenBranch Stmt
	ElseBranch Stmt
}

// WhileStmt runs Body while Condition remains truthy. 'for' loops are
// desugared into this by the parser; there is no ForStmt node.
type WhileStmt struct {
	Condition Expr
	Body      Stmt
}

// FunctionStmt declares a named function (or, inside a ClassStmt's
// Methods list, a method).
type FunctionStmt struct {
	Name   token.Token
	Params []token.Token
	Body   []Stmt
}

// ReturnStmt unwinds to the nearest enclosing function call frame with
// Value's result (nil if Value is nil).
type ReturnStmt struct {
	Keyword token.Token
	Value   Expr
}

// ClassStmt declares a class. Superclass is a *VariableExpr reference to
// another class, or nil.
type ClassStmt struct {
	Name       token.Token
	Superclass *VariableExpr
	Methods    []*FunctionStmt
}

func (*ExpressionStmt) stmtNode() {}
func (*PrintStmt) stmtNode()      {}
func (*VarStmt) stmtNode()        {}
func (*BlockStmt) stmtNode()      {}
func (*IfStmt) stmtNode()         {}
func (*WhileStmt) stmtNode()      {}
func (*FunctionStmt) stmtNode()   {}
func (*ReturnStmt) stmtNode()     {}
func (*ClassStmt) stmtNode()      {}
