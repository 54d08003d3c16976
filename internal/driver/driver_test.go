package driver

import (
	"strings"
	"testing"

	"github.com/cwbudde/golox/internal/loxerr"
)

func TestScanReturnsTokensAndDiagnostics(t *testing.T) {
	toks, diags := Scan("1 + 2")
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if len(toks) != 4 { // NUMBER PLUS NUMBER EOF
		t.Fatalf("got %d tokens, want 4", len(toks))
	}
}

func TestScanDiagnosticKind(t *testing.T) {
	_, diags := Scan("@")
	if len(diags) != 1 || diags[0].Kind != loxerr.Scan {
		t.Fatalf("got %v, want a single Scan diagnostic", diags)
	}
}

func TestParseProgramDiagnosticKind(t *testing.T) {
	_, diags := ParseProgram("var a = ;")
	if len(diags) != 1 || diags[0].Kind != loxerr.Parse {
		t.Fatalf("got %v, want a single Parse diagnostic", diags)
	}
}

func TestParseProgramAtEOFReportsErrorAtEnd(t *testing.T) {
	_, diags := ParseProgram("print 1 +")
	if len(diags) != 1 {
		t.Fatalf("got %v, want a single Parse diagnostic", diags)
	}
	if !diags[0].AtEnd {
		t.Fatalf("got %+v, want AtEnd set", diags[0])
	}
}

func TestRunSuccessProducesNoDiagnostics(t *testing.T) {
	var out, errOut strings.Builder
	result := Run(`print "hi";`, Options{Stdout: &out, Stderr: &errOut, UseResolver: true})
	if len(result.Diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %v", result.Diagnostics)
	}
	if out.String() != "hi\n" {
		t.Errorf("stdout = %q, want hi\\n", out.String())
	}
	if result.ExitCode() != 0 {
		t.Errorf("ExitCode() = %d, want 0", result.ExitCode())
	}
}

func TestRunStaticErrorStopsBeforeEvaluation(t *testing.T) {
	var out, errOut strings.Builder
	result := Run(`
fun f() { return 1; }
print f();
return 2;
`, Options{Stdout: &out, Stderr: &errOut, UseResolver: true})
	if len(result.Diagnostics) != 1 || result.Diagnostics[0].Kind != loxerr.Static {
		t.Fatalf("got %v, want one Static diagnostic", result.Diagnostics)
	}
	if out.String() != "" {
		t.Errorf("stdout = %q, want empty (evaluation must not run)", out.String())
	}
	if result.ExitCode() != 65 {
		t.Errorf("ExitCode() = %d, want 65", result.ExitCode())
	}
}

func TestRunRuntimeErrorReportsDiagnosticAndExitCode70(t *testing.T) {
	var out, errOut strings.Builder
	result := Run(`print 1 + "a";`, Options{Stdout: &out, Stderr: &errOut, UseResolver: true})
	if len(result.Diagnostics) != 1 || result.Diagnostics[0].Kind != loxerr.Runtime {
		t.Fatalf("got %v, want one Runtime diagnostic", result.Diagnostics)
	}
	if result.ExitCode() != 70 {
		t.Errorf("ExitCode() = %d, want 70", result.ExitCode())
	}
}

func TestRunWithoutResolverStillExecutes(t *testing.T) {
	var out, errOut strings.Builder
	result := Run(`var a = 1; print a;`, Options{Stdout: &out, Stderr: &errOut, UseResolver: false})
	if len(result.Diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %v", result.Diagnostics)
	}
	if out.String() != "1\n" {
		t.Errorf("stdout = %q, want 1\\n", out.String())
	}
}

func TestRunExpressionWritesDisplayFormToStdout(t *testing.T) {
	var out, errOut strings.Builder
	result := RunExpression(`1 + 2`, Options{Stdout: &out, Stderr: &errOut})
	if len(result.Diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %v", result.Diagnostics)
	}
	if out.String() != "3\n" {
		t.Errorf("stdout = %q, want 3\\n", out.String())
	}
}

func TestRunExpressionRuntimeErrorReported(t *testing.T) {
	var out, errOut strings.Builder
	result := RunExpression(`1 + "a"`, Options{Stdout: &out, Stderr: &errOut})
	if len(result.Diagnostics) != 1 || result.Diagnostics[0].Kind != loxerr.Runtime {
		t.Fatalf("got %v, want one Runtime diagnostic", result.Diagnostics)
	}
}
