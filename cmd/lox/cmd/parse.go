package cmd

import (
	"fmt"

	"github.com/cwbudde/golox/internal/astprinter"
	"github.com/cwbudde/golox/internal/driver"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse FILE",
	Short: "Print the parsed AST for a Lox source file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := readSource(args[0])
		if err != nil {
			return err
		}
		stmts, diags := driver.ParseProgram(source)
		fmt.Print(astprinter.PrintStmts(stmts))
		return reportAndExit(diags)
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
}
