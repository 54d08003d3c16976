package parser

import (
	"testing"

	"github.com/cwbudde/golox/internal/astprinter"
	"github.com/cwbudde/golox/internal/scanner"
	"github.com/cwbudde/golox/internal/token"
)

func mustScan(t *testing.T, source string) []token.Token {
	t.Helper()
	toks, errs := scanner.New(source).ScanTokens()
	if len(errs) != 0 {
		t.Fatalf("scan(%q) errored: %v", source, errs)
	}
	return toks
}

func TestParseExpressionPrecedence(t *testing.T) {
	tests := []struct {
		source string
		want   string
	}{
		{"1 + 2 * 3", "(+ 1 (* 2 3))"},
		{"(1 + 2) * 3", "(* (group (+ 1 2)) 3)"},
		{"-1 + 2", "(+ (- 1) 2)"},
		{"1 == 2 and 3 < 4", "(and (== 1 2) (< 3 4))"},
		{"a = b = 1", "(= a (= b 1))"},
	}
	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			expr, errs := New(mustScan(t, tt.source)).ParseExpression()
			if len(errs) != 0 {
				t.Fatalf("parse errors: %v", errs)
			}
			if got := astprinter.Print(expr); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseInvalidAssignmentTargetReportsError(t *testing.T) {
	_, errs := New(mustScan(t, "1 = 2")).ParseExpression()
	if len(errs) != 1 || errs[0].Message != "Invalid assignment target." {
		t.Fatalf("got %v, want a single 'Invalid assignment target.' error", errs)
	}
}

func TestParseProgramStatements(t *testing.T) {
	source := `var a = 1;
print a;
{ var b = 2; }
if (a) print a; else print b;
while (a) print a;
fun f(x, y) { return x + y; }
class A < B { init() { return; } }`

	stmts, errs := New(mustScan(t, source)).Parse()
	if len(errs) != 0 {
		t.Fatalf("parse errors: %v", errs)
	}
	if len(stmts) != 7 {
		t.Fatalf("got %d statements, want 7", len(stmts))
	}
}

func TestParseForDesugarsToWhileWithNoForStmt(t *testing.T) {
	stmts, errs := New(mustScan(t, "for (var i = 0; i < 3; i = i + 1) print i;")).Parse()
	if len(errs) != 0 {
		t.Fatalf("parse errors: %v", errs)
	}
	got := astprinter.PrintStmts(stmts)
	want := "(block (var i 0) (while (< i 3) (block (print i) (= i (+ i 1)))))\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestParseMissingSemicolonRecordsError(t *testing.T) {
	_, errs := New(mustScan(t, "var a = 1")).Parse()
	if len(errs) != 1 || errs[0].Message != "Expect ';' after variable declaration." {
		t.Fatalf("got %v", errs)
	}
}

func TestParseSynchronizesAfterErrorAndKeepsGoing(t *testing.T) {
	stmts, errs := New(mustScan(t, "var ; var b = 2;")).Parse()
	if len(errs) == 0 {
		t.Fatal("expected at least one error")
	}
	if len(stmts) != 1 {
		t.Fatalf("got %d recovered statements, want 1 (the second var decl)", len(stmts))
	}
}

func TestParseMoreThan255ArgumentsReportsError(t *testing.T) {
	src := "f("
	for i := 0; i < 256; i++ {
		if i > 0 {
			src += ","
		}
		src += "1"
	}
	src += ")"
	_, errs := New(mustScan(t, src)).ParseExpression()
	found := false
	for _, e := range errs {
		if e.Message == "Can't have more than 255 arguments." {
			found = true
		}
	}
	if !found {
		t.Errorf("got %v, want a 'Can't have more than 255 arguments.' error", errs)
	}
}

func TestParseErrorMessageFormatting(t *testing.T) {
	_, errs := New(mustScan(t, "var a = ;")).Parse()
	if len(errs) != 1 {
		t.Fatalf("got %v", errs)
	}
	want := "[line 1] Error at ';': Expect expression."
	if got := errs[0].Error(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestParseErrorAtEOF(t *testing.T) {
	_, errs := New(mustScan(t, "1 +")).ParseExpression()
	if len(errs) != 1 {
		t.Fatalf("got %v", errs)
	}
	want := "[line 1] Error at end: Expect expression."
	if got := errs[0].Error(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestParseSuperExpression(t *testing.T) {
	expr, errs := New(mustScan(t, "super.method")).ParseExpression()
	if len(errs) != 0 {
		t.Fatalf("parse errors: %v", errs)
	}
	if got, want := astprinter.Print(expr), "(super method)"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
