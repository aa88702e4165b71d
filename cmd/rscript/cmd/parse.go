package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/rscript"
	"github.com/cwbudde/rscript/pkg/ast"
)

var (
	parseExpression bool
	parseDumpAST    bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse rscript source and display the AST",
	Long: `Parse rscript source code and display the Abstract Syntax Tree.

If no file is provided, reads from stdin. Use -e to parse a single
expression from the command line. Use --dump-ast to show the full
AST node structure instead of the re-printed source form.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().BoolVarP(&parseExpression, "expression", "e", false, "parse an expression from the command line")
	parseCmd.Flags().BoolVar(&parseDumpAST, "dump-ast", false, "dump the full AST node structure")
}

func runParse(_ *cobra.Command, args []string) error {
	var input string

	switch {
	case parseExpression:
		if len(args) == 0 {
			return fmt.Errorf("no expression provided")
		}
		input = args[0]
	case len(args) > 0:
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("error reading file: %w", err)
		}
		input = string(data)
	default:
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("error reading stdin: %w", err)
		}
		input = string(data)
	}

	program, err := rscript.Compile(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return fmt.Errorf("parsing failed")
	}

	if parseDumpAST {
		fmt.Println("Abstract Syntax Tree:")
		fmt.Println("=====================")
		dumpASTNode(program, 0)
	} else {
		fmt.Println(program.String())
	}

	return nil
}

func dumpASTNode(node any, indent int) {
	pad := ""
	for i := 0; i < indent; i++ {
		pad += "  "
	}

	switch n := node.(type) {
	case *ast.Program:
		fmt.Printf("%sProgram (%d statements)\n", pad, len(n.Statements))
		for _, stmt := range n.Statements {
			dumpASTNode(stmt, indent+1)
		}
	case *ast.BlockStmt:
		fmt.Printf("%sBlockStmt (%d statements)\n", pad, len(n.Statements))
		for _, stmt := range n.Statements {
			dumpASTNode(stmt, indent+1)
		}
	case *ast.ExpressionStmt:
		fmt.Printf("%sExpressionStmt\n", pad)
		dumpASTNode(n.Expression, indent+1)
	case *ast.LetStmt:
		fmt.Printf("%sLetStmt %s (const=%v)\n", pad, n.Name, n.Const)
		dumpASTNode(n.Value, indent+1)
	case *ast.BinaryExpr:
		fmt.Printf("%sBinaryExpr (%s)\n", pad, n.Op)
		dumpASTNode(n.Left, indent+1)
		dumpASTNode(n.Right, indent+1)
	case *ast.UnaryExpr:
		fmt.Printf("%sUnaryExpr (%s)\n", pad, n.Op)
		dumpASTNode(n.Operand, indent+1)
	case *ast.CallExpr:
		fmt.Printf("%sCallExpr %s (%d args)\n", pad, n.Name, len(n.Args))
		for _, a := range n.Args {
			dumpASTNode(a, indent+1)
		}
	case *ast.IntegerLiteral:
		fmt.Printf("%sIntegerLiteral: %d\n", pad, n.Value)
	case *ast.FloatLiteral:
		fmt.Printf("%sFloatLiteral: %g\n", pad, n.Value)
	case *ast.StringLiteral:
		fmt.Printf("%sStringLiteral: %q\n", pad, n.Value)
	case *ast.BoolLiteral:
		fmt.Printf("%sBoolLiteral: %v\n", pad, n.Value)
	case *ast.Identifier:
		fmt.Printf("%sIdentifier: %s\n", pad, n.Name)
	default:
		fmt.Printf("%s%T: %s\n", pad, node, node)
	}
}
