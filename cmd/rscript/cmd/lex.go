package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/rscript/internal/lexer"
	"github.com/cwbudde/rscript/pkg/token"
)

var (
	lexEvalExpr string
	lexShowPos  bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize an rscript file or expression",
	Long: `Tokenize (lex) an rscript program and print the resulting tokens.

Examples:
  # Tokenize a script file
  rscript lex script.rs

  # Tokenize an inline expression
  rscript lex -e "let x = 42;"

  # Show token positions (line L, position C)
  rscript lex --show-pos script.rs`,
	Args: cobra.MaximumNArgs(1),
	RunE: lexScript,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&lexEvalExpr, "eval", "e", "", "tokenize inline code instead of reading from file")
	lexCmd.Flags().BoolVar(&lexShowPos, "show-pos", false, "show token positions (line and column)")
}

func lexScript(_ *cobra.Command, args []string) error {
	input, filename, err := readScriptInput(lexEvalExpr, args)
	if err != nil {
		return err
	}

	if verbose {
		fmt.Printf("Tokenizing: %s\n", filename)
		fmt.Printf("Input length: %d bytes\n", len(input))
		fmt.Println("---")
	}

	l := lexer.New(input, 64)
	count := 0
	for {
		tok, lexErr := l.Next()
		if lexErr != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", filename, lexErr)
			return fmt.Errorf("lexing failed")
		}

		printToken(tok)
		count++
		if tok.Type == token.EOF {
			break
		}
	}

	if verbose {
		fmt.Println("---")
		fmt.Printf("Total tokens: %d\n", count)
	}

	return nil
}

func printToken(tok token.Token) {
	output := fmt.Sprintf("[%-12s]", tok.Type)

	if tok.Type == token.EOF {
		output += " EOF"
	} else if tok.Literal == "" {
		output += fmt.Sprintf(" %s", tok.Type)
	} else {
		output += fmt.Sprintf(" %q", tok.Literal)
	}

	if lexShowPos {
		output += fmt.Sprintf(" @%s", tok.Pos)
	}

	fmt.Println(output)
}
