// Package loxerr renders scan, parse, static-resolution, and runtime
// errors for the CLI. The line-numbered, optionally colored rendering is
// a generalization of the teacher's own error-formatting package; the
// wire forms ("[line N] Error at 'LEX': MSG" for scan/parse errors,
// "MSG\n[line N]" for runtime errors) are the language's error contract.
package loxerr

import (
	"fmt"
	"io"
	"strings"
)

// Kind distinguishes the four failure modes the language defines. Scan,
// Parse, and Static errors all exit the process with code 65; Runtime
// errors exit with code 70.
type Kind int

const (
	Scan Kind = iota
	Parse
	Static
	Runtime
)

// Diagnostic is one reported problem, already reduced to a line number
// and message regardless of which pipeline stage produced it.
type Diagnostic struct {
	Kind    Kind
	Line    int
	Lexeme  string // set for Parse diagnostics; empty otherwise
	AtEnd   bool   // set for Parse diagnostics at the EOF token
	Message string
}

func (d Diagnostic) wireForm() string {
	if d.Kind == Runtime {
		return fmt.Sprintf("%s\n[line %d]", d.Message, d.Line)
	}
	if d.AtEnd {
		return fmt.Sprintf("[line %d] Error at end: %s", d.Line, d.Message)
	}
	if d.Lexeme != "" {
		return fmt.Sprintf("[line %d] Error at '%s': %s", d.Line, d.Lexeme, d.Message)
	}
	return fmt.Sprintf("[line %d] Error: %s", d.Line, d.Message)
}

// ExitCode reports the process exit code this diagnostic's kind maps
// to, per the CLI contract (65 for scan/parse/static, 70 for runtime).
func (d Diagnostic) ExitCode() int {
	if d.Kind == Runtime {
		return 70
	}
	return 65
}

// Report renders one or more diagnostics to w. When color is true,
// the message portion is wrapped in a bold-red ANSI sequence — the CLI
// decides color by auto-detecting whether stderr is a terminal
// (github.com/mattn/go-isatty), matching how the teacher's own
// CompilerError.Format(color bool) is driven.
func Report(w io.Writer, diags []Diagnostic, color bool) {
	var sb strings.Builder
	for _, d := range diags {
		if color {
			sb.WriteString("\033[1;31m")
			sb.WriteString(d.wireForm())
			sb.WriteString("\033[0m")
		} else {
			sb.WriteString(d.wireForm())
		}
		sb.WriteString("\n")
	}
	fmt.Fprint(w, sb.String())
}
