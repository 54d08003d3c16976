// Package interp is the recursive tree-walking evaluator: it dispatches
// on AST node variants, mutates the active environment, consults the
// resolver's distance annotations for variable lookup, and encodes
// `return` as a structured non-local exit.
package interp

import (
	"fmt"
	"io"
	"time"

	"github.com/cwbudde/golox/internal/ast"
	"github.com/cwbudde/golox/internal/environment"
	"github.com/cwbudde/golox/internal/resolver"
	"github.com/cwbudde/golox/internal/value"
)

// RuntimeError is a runtime failure: a message plus the source line
// where it occurred. It unwinds the current top-level statement.
type RuntimeError struct {
	Line    int
	Message string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s\n[line %d]", e.Message, e.Line)
}

func runtimeErr(line int, format string, args ...any) error {
	return &RuntimeError{Line: line, Message: fmt.Sprintf(format, args...)}
}

// returnSignal is not an error in the user-facing sense: it is the
// mechanism that carries a `return` statement's value back out to the
// function-call frame that catches it, reusing Go's error-return
// channel as the vehicle (spec's non-local-control-flow design note;
// Go has no exceptions, so this is chosen over panic/recover to keep a
// clean, typed propagation path through Exec/Eval).
type returnSignal struct {
	Value value.Value
}

func (r *returnSignal) Error() string { return "return" }

// asReturn reports whether err is a returnSignal, unwrapping it.
func asReturn(err error) (*returnSignal, bool) {
	rs, ok := err.(*returnSignal)
	return rs, ok
}

// Options configures an Interpreter's native surface and I/O.
type Options struct {
	Stdout io.Writer
	Stderr io.Writer
	// Locals is the resolver's distance map. A nil map means every
	// variable reference is looked up dynamically against the active
	// environment instead of the global scope (the --resolver=false
	// fallback described in the CLI contract).
	Locals resolver.Locals
}

// Interpreter holds the mutable evaluation state for one program run.
type Interpreter struct {
	globals     *environment.Environment
	environment *environment.Environment
	locals      resolver.Locals
	useLocals   bool
	stdout      io.Writer
	stderr      io.Writer
}

// New builds an Interpreter with a freshly seeded global environment
// (native bindings clock and log).
func New(opts Options) *Interpreter {
	globals := environment.New()
	i := &Interpreter{
		globals:     globals,
		environment: globals,
		locals:      opts.Locals,
		useLocals:   opts.Locals != nil,
		stdout:      opts.Stdout,
		stderr:      opts.Stderr,
	}
	i.defineNatives()
	return i
}

func (i *Interpreter) defineNatives() {
	i.globals.Define("clock", &value.Native{
		NameStr: "clock",
		Arity:   0,
		Fn: func(args []value.Value) (value.Value, error) {
			return float64(time.Now().UnixNano()) / 1e9, nil
		},
	})
	i.globals.Define("log", &value.Native{
		NameStr: "log",
		Arity:   1,
		Fn: func(args []value.Value) (value.Value, error) {
			fmt.Fprintf(i.stderr, "[log] %s\n", value.Display(args[0]))
			return nil, nil
		},
	})
}

// Globals exposes the root environment (the one seeded with the native
// bindings).
func (i *Interpreter) Globals() *environment.Environment {
	return i.globals
}

// Run executes a whole program: each top-level statement in turn. It
// stops at the first runtime error (matching the single-shot CLI `run`
// subcommand); a long-lived embedding could instead continue past a
// runtime error at each top-level statement (spec's REPL note).
func (i *Interpreter) Run(stmts []ast.Stmt) error {
	for _, s := range stmts {
		if err := i.Exec(s); err != nil {
			if _, ok := asReturn(err); ok {
				// A bare top-level `return` cannot occur: the resolver
				// rejects it before evaluation starts.
				continue
			}
			return err
		}
	}
	return nil
}

// EvalExpression evaluates a single expression against the global
// environment, for the `evaluate` CLI subcommand.
func (i *Interpreter) EvalExpression(expr ast.Expr) (value.Value, error) {
	return i.Eval(expr)
}
