package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/rscript"
)

var (
	runEvalExpr     string
	runDumpAST      bool
	runNoArrays     bool
	runNoObjects    bool
	runNoUserFuncs  bool
	runIntWidth     int
	runUnchecked    bool
	runFuel         uint64
	runMaxCallDepth int
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run an rscript file or expression",
	Long: `Execute an rscript program from a file or inline expression.

Examples:
  # Run a script file
  rscript run script.rs

  # Evaluate an inline expression
  rscript run -e "1 + 2"

  # Run with AST dump (for debugging)
  rscript run --dump-ast script.rs

  # Bound the run with an operation fuel and call-depth limit
  rscript run --fuel 100000 --max-depth 64 script.rs`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runEvalExpr, "eval", "e", "", "evaluate inline code instead of reading from file")
	runCmd.Flags().BoolVar(&runDumpAST, "dump-ast", false, "dump the parsed AST (for debugging)")
	runCmd.Flags().BoolVar(&runNoArrays, "no-arrays", false, "disable array literal/indexing syntax")
	runCmd.Flags().BoolVar(&runNoObjects, "no-objects", false, "disable map literal/member-access syntax")
	runCmd.Flags().BoolVar(&runNoUserFuncs, "no-user-functions", false, "disable top-level fn declarations")
	runCmd.Flags().IntVar(&runIntWidth, "integer-width", 64, "integer width in bits (32 or 64)")
	runCmd.Flags().BoolVar(&runUnchecked, "unchecked-arithmetic", false, "disable overflow/div-zero checks on integer arithmetic")
	runCmd.Flags().Uint64Var(&runFuel, "fuel", 0, "maximum AST nodes to evaluate (0 = unlimited)")
	runCmd.Flags().IntVar(&runMaxCallDepth, "max-depth", 0, "maximum user-function call depth (0 = unlimited)")
}

func runScript(_ *cobra.Command, args []string) error {
	input, filename, err := readScriptInput(runEvalExpr, args)
	if err != nil {
		return err
	}

	e := rscript.New(
		rscript.WithArrays(!runNoArrays),
		rscript.WithObjects(!runNoObjects),
		rscript.WithUserFunctions(!runNoUserFuncs),
		rscript.WithIntegerWidth(runIntWidth),
		rscript.WithUncheckedArithmetic(runUnchecked),
		rscript.WithOperationFuel(runFuel),
		rscript.WithMaxCallDepth(runMaxCallDepth),
	)

	if runDumpAST {
		// Compile here uses the default grammar (spec.md §6); it's a
		// tooling convenience, not the grammar run actually evaluates
		// under, so a disabled-syntax script can still be inspected.
		program, err := rscript.Compile(input)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", filename, err)
			return fmt.Errorf("parsing failed")
		}
		fmt.Println("AST:")
		fmt.Println(program.String())
		fmt.Println()
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "running %s\n", filename)
	}

	result, err := e.Eval(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", filename, err)
		return fmt.Errorf("execution failed")
	}

	if !result.IsUnit() {
		fmt.Println(result.String())
	}

	return nil
}

// readScriptInput resolves the run and lex subcommands' shared input
// convention: -e for inline code or a single file argument; with neither
// it returns an error.
func readScriptInput(evalExpr string, args []string) (input, filename string, err error) {
	switch {
	case evalExpr != "":
		return evalExpr, "<eval>", nil
	case len(args) == 1:
		content, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		return string(content), args[0], nil
	default:
		return "", "", fmt.Errorf("either provide a file path or use -e flag for inline code")
	}
}
