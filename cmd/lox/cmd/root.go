package cmd

import (
	"fmt"
	"os"

	"github.com/cwbudde/golox/internal/loxconfig"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var (
	// Version is set by build flags.
	Version = "0.1.0-dev"

	useResolver bool
	colorFlag   string
	config      loxconfig.Config
)

var rootCmd = &cobra.Command{
	Use:     "lox",
	Short:   "A tree-walking interpreter for Lox",
	Version: Version,
	Long: `lox is a tree-walking interpreter for Lox: a small dynamically-typed
language with first-class functions, lexical closures, single-inheritance
classes, and 'this'/'super'.

Subcommands mirror the interpreter's own pipeline stages:
  tokenize  byte buffer -> token stream
  parse     tokens -> abstract syntax tree
  evaluate  a single expression -> its value
  run       a whole program, executed for effect`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loxconfig.Load(".loxrc.yaml")
		if err != nil {
			return fmt.Errorf("loading .loxrc.yaml: %w", err)
		}
		config = cfg
		if !cmd.Flags().Changed("resolver") {
			useResolver = config.Resolver
		}
		if !cmd.Flags().Changed("color") && config.Color != "" {
			colorFlag = config.Color
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// The subcommands render their own diagnostics and carry the exit
	// code in *ExitError; cobra's default error/usage printing would
	// just duplicate that.
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	rootCmd.PersistentFlags().BoolVar(&useResolver, "resolver", true,
		"resolve variable scope statically before evaluating; when false, fall back to dynamic name search")
	rootCmd.PersistentFlags().StringVar(&colorFlag, "color", "auto",
		"colorize diagnostics: auto, always, or never")
}

// stderrColor decides whether diagnostics printed to stderr should be
// ANSI-colored, honoring --color and otherwise auto-detecting a
// terminal (mirrors funvibe/funxy's use of go-isatty for its own
// terminal-output decisions).
func stderrColor() bool {
	switch colorFlag {
	case "always":
		return true
	case "never":
		return false
	default:
		return isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
	}
}
