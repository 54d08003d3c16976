package cmd

import (
	"fmt"
	"os"

	"github.com/cwbudde/golox/internal/driver"
	"github.com/cwbudde/golox/internal/loxerr"
	"github.com/cwbudde/golox/internal/token"
	"github.com/spf13/cobra"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize FILE",
	Short: "Print the token stream for a Lox source file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := readSource(args[0])
		if err != nil {
			return err
		}
		toks, diags := driver.Scan(source)
		for _, t := range toks {
			printToken(t)
		}
		return reportAndExit(diags)
	},
}

func init() {
	rootCmd.AddCommand(tokenizeCmd)
}

func printToken(t token.Token) {
	if t.Kind == token.EOF {
		fmt.Println("EOF  null")
		return
	}
	literal := "null"
	if t.Literal != nil {
		literal = fmt.Sprintf("%v", t.Literal)
	}
	fmt.Printf("%s %s %s\n", t.Kind, t.Lexeme, literal)
}

func readSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return string(data), nil
}

// ExitError carries the process exit code a subcommand wants once its
// diagnostics have been printed, without calling os.Exit directly — so
// RunE handlers stay callable from tests. main() is the only place that
// turns this into an actual process exit.
type ExitError struct{ Code int }

func (e *ExitError) Error() string { return fmt.Sprintf("exit status %d", e.Code) }

// reportAndExit prints any diagnostics to stderr (colored per
// --color) and, when any are present, returns an *ExitError carrying
// the scan/parse/static/runtime exit code contract (65/70).
func reportAndExit(diags []loxerr.Diagnostic) error {
	if len(diags) == 0 {
		return nil
	}
	loxerr.Report(os.Stderr, diags, stderrColor())
	return &ExitError{Code: exitCodeOf(diags)}
}

func exitCodeOf(diags []loxerr.Diagnostic) int {
	code := 0
	for _, d := range diags {
		if d.ExitCode() > code {
			code = d.ExitCode()
		}
	}
	return code
}
