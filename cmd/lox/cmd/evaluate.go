package cmd

import (
	"os"

	"github.com/cwbudde/golox/internal/driver"
	"github.com/spf13/cobra"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate FILE",
	Short: "Evaluate a single Lox expression and print its value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := readSource(args[0])
		if err != nil {
			return err
		}
		result := driver.RunExpression(source, driver.Options{
			Stdout:      os.Stdout,
			Stderr:      os.Stderr,
			UseResolver: useResolver,
		})
		return reportAndExit(result.Diagnostics)
	},
}

func init() {
	rootCmd.AddCommand(evaluateCmd)
}
