package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/rscript"
)

var (
	fmtWrite bool
	fmtList  bool
	fmtDiff  bool
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [files...]",
	Short: "Format rscript source files",
	Long: `Format rscript source files by parsing them into an AST and
re-printing the AST's canonical source form.

By default fmt writes formatted output to stdout. If no file is
given it reads from stdin.

  rscript fmt script.rs        # format to stdout
  rscript fmt -w script.rs     # overwrite the file with formatted output
  rscript fmt -l *.rs          # list files that are not already formatted
  rscript fmt -d script.rs     # show a line diff of what would change`,
	RunE: runFmt,
}

func init() {
	rootCmd.AddCommand(fmtCmd)

	fmtCmd.Flags().BoolVarP(&fmtWrite, "write", "w", false, "write result to source file instead of stdout")
	fmtCmd.Flags().BoolVarP(&fmtList, "list", "l", false, "list files whose formatting differs")
	fmtCmd.Flags().BoolVarP(&fmtDiff, "diff", "d", false, "display a line diff instead of rewriting files")
}

func runFmt(_ *cobra.Command, args []string) error {
	if fmtWrite && fmtList {
		return fmt.Errorf("cannot use -w and -l together")
	}
	if fmtWrite && fmtDiff {
		return fmt.Errorf("cannot use -w and -d together")
	}

	if len(args) == 0 {
		src, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("error reading stdin: %w", err)
		}
		formatted, err := formatSource(string(src))
		if err != nil {
			return err
		}
		fmt.Print(formatted)
		return nil
	}

	hasErrors := false
	for _, path := range args {
		if err := formatFile(path); err != nil {
			fmt.Fprintf(os.Stderr, "Error processing %s: %v\n", path, err)
			hasErrors = true
		}
	}

	if hasErrors {
		return fmt.Errorf("formatting failed for one or more files")
	}
	return nil
}

func formatFile(filename string) error {
	src, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("error reading file: %w", err)
	}
	original := string(src)

	formatted, err := formatSource(original)
	if err != nil {
		return err
	}
	changed := original != formatted

	switch {
	case fmtList:
		if changed {
			fmt.Println(filename)
		}
	case fmtDiff:
		if changed {
			fmt.Printf("--- %s (original)\n", filename)
			fmt.Printf("+++ %s (formatted)\n", filename)
			showDiff(original, formatted)
		}
	case fmtWrite:
		if changed {
			if err := os.WriteFile(filename, []byte(formatted), 0644); err != nil {
				return fmt.Errorf("error writing file: %w", err)
			}
			if verbose {
				fmt.Printf("Formatted %s\n", filename)
			}
		}
	default:
		fmt.Print(formatted)
	}

	return nil
}

// formatSource parses source and re-renders it via the AST's own
// String() form; rscript has no separate pretty-printer package, the
// grammar's String() methods double as its canonical formatter.
func formatSource(source string) (string, error) {
	program, err := rscript.Compile(source)
	if err != nil {
		return "", err
	}
	return program.String(), nil
}

func showDiff(original, formatted string) {
	origLines := bytes.Split([]byte(original), []byte("\n"))
	fmtLines := bytes.Split([]byte(formatted), []byte("\n"))

	max := len(origLines)
	if len(fmtLines) > max {
		max = len(fmtLines)
	}
	for i := 0; i < max; i++ {
		var o, f string
		if i < len(origLines) {
			o = string(origLines[i])
		}
		if i < len(fmtLines) {
			f = string(fmtLines[i])
		}
		if o != f {
			if o != "" {
				fmt.Printf("- %s\n", o)
			}
			if f != "" {
				fmt.Printf("+ %s\n", f)
			}
		}
	}
}
