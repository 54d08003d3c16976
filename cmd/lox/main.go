// Command lox is the Lox interpreter CLI: tokenize, parse, evaluate,
// and run subcommands over the tree-walking interpreter in
// internal/driver.
package main

import (
	"fmt"
	"os"

	"github.com/cwbudde/golox/cmd/lox/cmd"
)

func main() {
	err := cmd.Execute()
	if err == nil {
		return
	}
	if exitErr, ok := err.(*cmd.ExitError); ok {
		os.Exit(exitErr.Code)
	}
	fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(1)
}
