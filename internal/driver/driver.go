// Package driver wires the scanner, parser, resolver, and evaluator
// together for whole-program execution and single-expression
// evaluation, and classifies failures into the scan/parse/static/
// runtime buckets the CLI reports against (spec's §7 error contract,
// localized here instead of a process-wide global flag).
package driver

import (
	"io"

	"github.com/cwbudde/golox/internal/ast"
	"github.com/cwbudde/golox/internal/interp"
	"github.com/cwbudde/golox/internal/loxerr"
	"github.com/cwbudde/golox/internal/parser"
	"github.com/cwbudde/golox/internal/resolver"
	"github.com/cwbudde/golox/internal/scanner"
	"github.com/cwbudde/golox/internal/token"
	"github.com/cwbudde/golox/internal/value"
)

// Options configures one run.
type Options struct {
	Stdout      io.Writer
	Stderr      io.Writer
	UseResolver bool
}

// Result reports what happened, for the CLI to turn into an exit code.
type Result struct {
	Diagnostics []loxerr.Diagnostic
}

// ExitCode returns 0 if Result carries no diagnostics, else the exit
// code of its most severe diagnostic (scan/parse/static: 65, runtime: 70).
func (r Result) ExitCode() int {
	code := 0
	for _, d := range r.Diagnostics {
		if d.ExitCode() > code {
			code = d.ExitCode()
		}
	}
	return code
}

func scanErrDiags(errs []*scanner.Error) []loxerr.Diagnostic {
	var diags []loxerr.Diagnostic
	for _, e := range errs {
		diags = append(diags, loxerr.Diagnostic{Kind: loxerr.Scan, Line: e.Line, Message: e.Message})
	}
	return diags
}

func parseErrDiags(errs []*parser.Error) []loxerr.Diagnostic {
	var diags []loxerr.Diagnostic
	for _, e := range errs {
		diags = append(diags, loxerr.Diagnostic{Kind: loxerr.Parse, Line: e.Token.Line, Lexeme: e.Token.Lexeme, AtEnd: e.Token.Kind == token.EOF, Message: e.Message})
	}
	return diags
}

// Scan runs only the scanner, for the `tokenize` subcommand.
func Scan(source string) ([]token.Token, []loxerr.Diagnostic) {
	toks, errs := scanner.New(source).ScanTokens()
	return toks, scanErrDiags(errs)
}

// ParseProgram runs the scanner and parser, for the `parse` subcommand.
func ParseProgram(source string) ([]ast.Stmt, []loxerr.Diagnostic) {
	toks, scanErrs := scanner.New(source).ScanTokens()
	diags := scanErrDiags(scanErrs)

	stmts, parseErrs := parser.New(toks).Parse()
	diags = append(diags, parseErrDiags(parseErrs)...)
	return stmts, diags
}

// ParseExpr parses a single expression, for the `evaluate` subcommand.
func ParseExpr(source string) (ast.Expr, []loxerr.Diagnostic) {
	toks, scanErrs := scanner.New(source).ScanTokens()
	diags := scanErrDiags(scanErrs)

	expr, parseErrs := parser.New(toks).ParseExpression()
	diags = append(diags, parseErrDiags(parseErrs)...)
	return expr, diags
}

func runtimeDiag(err error) (loxerr.Diagnostic, bool) {
	rt, ok := err.(*interp.RuntimeError)
	if !ok {
		return loxerr.Diagnostic{}, false
	}
	return loxerr.Diagnostic{Kind: loxerr.Runtime, Line: rt.Line, Message: rt.Message}, true
}

// Run executes a whole program end to end: scan, parse, resolve
// (unless UseResolver is false), then evaluate. Any scan/parse/static
// diagnostics stop execution before the evaluator ever runs.
func Run(source string, opts Options) Result {
	stmts, diags := ParseProgram(source)
	if len(diags) > 0 {
		return Result{Diagnostics: diags}
	}

	interpOpts := interp.Options{Stdout: opts.Stdout, Stderr: opts.Stderr}
	if opts.UseResolver {
		locals, resErrs := resolver.New().Resolve(stmts)
		if len(resErrs) > 0 {
			for _, e := range resErrs {
				diags = append(diags, loxerr.Diagnostic{Kind: loxerr.Static, Line: e.Line, Message: e.Message})
			}
			return Result{Diagnostics: diags}
		}
		interpOpts.Locals = locals
	}

	if err := interp.New(interpOpts).Run(stmts); err != nil {
		if d, ok := runtimeDiag(err); ok {
			diags = append(diags, d)
		}
	}
	return Result{Diagnostics: diags}
}

// RunExpression evaluates a single expression (the `evaluate`
// subcommand) and, on success, writes its display form to Stdout.
func RunExpression(source string, opts Options) Result {
	expr, diags := ParseExpr(source)
	if len(diags) > 0 {
		return Result{Diagnostics: diags}
	}

	it := interp.New(interp.Options{Stdout: opts.Stdout, Stderr: opts.Stderr})
	v, err := it.EvalExpression(expr)
	if err != nil {
		if d, ok := runtimeDiag(err); ok {
			diags = append(diags, d)
		}
		return Result{Diagnostics: diags}
	}
	io.WriteString(opts.Stdout, value.Display(v)+"\n")
	return Result{}
}
